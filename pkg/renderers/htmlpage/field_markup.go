package htmlpage

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
)

// buildFieldMarkup emits one field block: wrapper, label chrome, control.
func buildFieldMarkup(d preview.InputDescriptor) string {
	var builder strings.Builder
	builder.Grow(256)

	builder.WriteString(`    <div class="fb-field" data-kind="`)
	builder.WriteString(html.EscapeString(string(d.Kind)))
	builder.WriteString("\">\n")

	if shouldRenderLabel(d) {
		builder.WriteString(`      <label for="`)
		builder.WriteString(controlID(d.ID))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(d.Label))
		if d.Constraints.Required {
			builder.WriteString(" *")
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(controlMarkup(d), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("      ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	builder.WriteString("    </div>\n")
	return builder.String()
}

func controlMarkup(d preview.InputDescriptor) string {
	switch d.Kind {
	case preview.KindInput:
		return inputControl(d, d.InputType)
	case preview.KindEmail:
		return inputControl(d, "email")
	case preview.KindPhone:
		return inputControl(d, "tel")
	case preview.KindNumber:
		return inputControl(d, "number")
	case preview.KindTextarea:
		return textareaControl(d)
	case preview.KindCheckbox:
		return checkboxControl(d)
	case preview.KindSelect:
		return selectControl(d)
	case preview.KindSelectBoxes:
		return optionGroup(d, "checkbox")
	case preview.KindRadio:
		return optionGroup(d, "radio")
	case preview.KindAutocomplete:
		return autocompleteControl(d)
	case preview.KindButton:
		return `<button type="submit">` + html.EscapeString(d.Label) + `</button>`
	default:
		return ""
	}
}

func inputControl(d preview.InputDescriptor, inputType string) string {
	var b strings.Builder
	b.WriteString(`<input id="`)
	b.WriteString(controlID(d.ID))
	b.WriteString(`" type="`)
	b.WriteString(html.EscapeString(inputType))
	b.WriteByte('"')
	if d.Placeholder != "" {
		writeAttr(&b, "placeholder", d.Placeholder)
	}
	writeConstraintAttrs(&b, d.Constraints)
	b.WriteString(">")
	return b.String()
}

func textareaControl(d preview.InputDescriptor) string {
	var b strings.Builder
	b.WriteString(`<textarea id="`)
	b.WriteString(controlID(d.ID))
	b.WriteString(`" rows="`)
	b.WriteString(strconv.Itoa(d.Rows))
	b.WriteByte('"')
	if d.Placeholder != "" {
		writeAttr(&b, "placeholder", d.Placeholder)
	}
	writeConstraintAttrs(&b, d.Constraints)
	b.WriteString("></textarea>")
	return b.String()
}

func checkboxControl(d preview.InputDescriptor) string {
	var b strings.Builder
	b.WriteString(`<input id="`)
	b.WriteString(controlID(d.ID))
	b.WriteString(`" type="checkbox"`)
	if d.Constraints.Required {
		b.WriteString(" required")
	}
	b.WriteString(">")
	return b.String()
}

func selectControl(d preview.InputDescriptor) string {
	var b strings.Builder
	b.WriteString(`<select id="`)
	b.WriteString(controlID(d.ID))
	b.WriteByte('"')
	if d.Constraints.Required {
		b.WriteString(" required")
	}
	b.WriteString(">\n")
	for _, opt := range d.Options {
		b.WriteString(`  <option value="`)
		b.WriteString(html.EscapeString(opt))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(opt))
		b.WriteString("</option>\n")
	}
	b.WriteString("</select>")
	return b.String()
}

func optionGroup(d preview.InputDescriptor, inputType string) string {
	var b strings.Builder
	b.WriteString("<fieldset>\n")
	b.WriteString("  <legend>")
	b.WriteString(html.EscapeString(d.Label))
	b.WriteString("</legend>\n")
	for _, opt := range d.Options {
		b.WriteString(`  <label><input type="`)
		b.WriteString(inputType)
		b.WriteString(`" name="`)
		b.WriteString(controlID(d.ID))
		b.WriteString(`" value="`)
		b.WriteString(html.EscapeString(opt))
		b.WriteString(`"> `)
		b.WriteString(html.EscapeString(opt))
		b.WriteString("</label>\n")
	}
	b.WriteString("</fieldset>")
	return b.String()
}

func autocompleteControl(d preview.InputDescriptor) string {
	listID := controlID(d.ID) + "-options"
	var b strings.Builder
	b.WriteString(`<input id="`)
	b.WriteString(controlID(d.ID))
	b.WriteString(`" type="text" list="`)
	b.WriteString(listID)
	b.WriteByte('"')
	if d.Placeholder != "" {
		writeAttr(&b, "placeholder", d.Placeholder)
	}
	if d.Constraints.Required {
		b.WriteString(" required")
	}
	b.WriteString(">\n")
	b.WriteString(`<datalist id="`)
	b.WriteString(listID)
	b.WriteString("\">\n")
	for _, opt := range d.Options {
		b.WriteString(`  <option value="`)
		b.WriteString(html.EscapeString(opt))
		b.WriteString("\">\n")
	}
	b.WriteString("</datalist>")
	return b.String()
}

func writeConstraintAttrs(b *strings.Builder, c model.Constraints) {
	if c.Required {
		b.WriteString(" required")
	}
	if c.MinLength != nil {
		writeAttr(b, "minlength", strconv.Itoa(*c.MinLength))
	}
	if c.MaxLength != nil {
		writeAttr(b, "maxlength", strconv.Itoa(*c.MaxLength))
	}
	if c.Min != nil {
		writeAttr(b, "min", strconv.FormatFloat(*c.Min, 'f', -1, 64))
	}
	if c.Max != nil {
		writeAttr(b, "max", strconv.FormatFloat(*c.Max, 'f', -1, 64))
	}
	if c.Pattern != nil && *c.Pattern != "" {
		writeAttr(b, "pattern", *c.Pattern)
	}
	if c.InputMode != "" {
		writeAttr(b, "inputmode", c.InputMode)
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

func controlID(id string) string {
	return "fb-" + id
}

// Button and grouped controls carry their caption inside the control itself.
func shouldRenderLabel(d preview.InputDescriptor) bool {
	if strings.TrimSpace(d.Label) == "" {
		return false
	}
	switch d.Kind {
	case preview.KindButton, preview.KindSelectBoxes, preview.KindRadio:
		return false
	default:
		return true
	}
}
