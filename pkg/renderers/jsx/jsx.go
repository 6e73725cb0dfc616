// Package jsx generates MUI-flavoured JSX source text from a form document.
// It consumes the same resolved constraint set as the preview descriptors, so
// for any record the attributes emitted here match the preview byte for byte
// under the widget-kind to markup-attribute mapping.
package jsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Generate produces one JSX block per field, concatenated in document order
// and separated by a blank line. Fields with an unrecognized type contribute
// nothing, including no separator artifact.
func Generate(doc model.FormDocument) string {
	blocks := make([]string, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		if block := generateField(field); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func generateField(field model.FieldRecord) string {
	c := model.ResolveConstraints(field)

	switch field.Type {
	case model.FieldTypeText:
		return textBlock(field, c)
	case model.FieldTypeTextarea:
		return textareaBlock(field, c)
	case model.FieldTypeNumber:
		return numberBlock(field, c)
	case model.FieldTypePassword:
		return passwordBlock(field, c)
	case model.FieldTypePhone:
		return phoneBlock(field, c)
	case model.FieldTypeEmail:
		return emailBlock(field, c)
	case model.FieldTypeCheckbox:
		return checkboxBlock(field, c)
	case model.FieldTypeSelect:
		return selectBlock(field, c)
	case model.FieldTypeSelectBoxes:
		return selectBoxesBlock(field)
	case model.FieldTypeRadio:
		return radioBlock(field)
	case model.FieldTypeAutocomplete:
		return autocompleteBlock(field, c)
	case model.FieldTypeButton:
		return buttonBlock(field)
	default:
		return ""
	}
}

func textBlock(field model.FieldRecord, c model.Constraints) string {
	inputType := field.InputType
	if inputType == "" {
		inputType = "text"
	}
	return fmt.Sprintf(`
<TextField
  label=%s
  placeholder=%s
  required={%t}
  type=%s
  fullWidth
  inputProps={{
    minLength: %d,
    maxLength: %d,
    pattern: %s,
  }}
  sx={{ mb: 2 }}
/>`, attr(field.Label), attr(field.Placeholder), c.Required, attr(inputType),
		*c.MinLength, *c.MaxLength, attr(*c.Pattern))
}

func textareaBlock(field model.FieldRecord, c model.Constraints) string {
	return fmt.Sprintf(`
<TextField
  label=%s
  placeholder=%s
  required={%t}
  multiline
  rows={%d}
  fullWidth
  inputProps={{
    minLength: %d,
    maxLength: %d,
    pattern: %s,
  }}
  sx={{ mb: 2 }}
/>`, attr(field.Label), attr(field.Placeholder), c.Required,
		model.EffectiveRows(field), *c.MinLength, *c.MaxLength, attr(*c.Pattern))
}

func numberBlock(field model.FieldRecord, c model.Constraints) string {
	return fmt.Sprintf(`
<TextField
  label=%s
  type="number"
  required={%t}
  fullWidth
  inputProps={{
    min: %s,
    max: %s,
  }}
  sx={{ mb: 2 }}
/>`, attr(field.Label), c.Required, num(*c.Min), num(*c.Max))
}

func passwordBlock(field model.FieldRecord, c model.Constraints) string {
	return fmt.Sprintf(`
<TextField
  label=%s
  type="password"
  required={%t}
  fullWidth
  inputProps={{
    minLength: %d,
    maxLength: %d,
  }}
  sx={{ mb: 2 }}
/>`, attr(field.Label), c.Required, *c.MinLength, *c.MaxLength)
}

func phoneBlock(field model.FieldRecord, c model.Constraints) string {
	return fmt.Sprintf(`
<TextField
  label=%s
  placeholder=%s
  required={%t}
  type="tel"
  fullWidth
  inputProps={{
    inputMode: "numeric",
    pattern: %s,
    minLength: %d,
    maxLength: %d,
  }}
  sx={{ mb: 2 }}
/>`, attr(field.Label), attr(field.Placeholder), c.Required,
		attr(*c.Pattern), *c.MinLength, *c.MaxLength)
}

func emailBlock(field model.FieldRecord, c model.Constraints) string {
	return fmt.Sprintf(`
<TextField
  label=%s
  placeholder=%s
  required={%t}
  type="email"
  fullWidth
  inputProps={{
    inputMode: "email",
    pattern: %s,
    minLength: %d,
    maxLength: %d,
  }}
  sx={{ mb: 2 }}
/>`, attr(field.Label), attr(field.Placeholder), c.Required,
		attr(*c.Pattern), *c.MinLength, *c.MaxLength)
}

func checkboxBlock(field model.FieldRecord, c model.Constraints) string {
	return fmt.Sprintf(`
<FormControlLabel
  control={<Checkbox required={%t} />}
  label=%s
  sx={{ mb: 2 }}
/>`, c.Required, attr(field.Label))
}

func selectBlock(field model.FieldRecord, c model.Constraints) string {
	items := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		items = append(items, fmt.Sprintf(`<MenuItem value=%s>%s</MenuItem>`, attr(opt), escape(opt)))
	}
	return fmt.Sprintf(`
<FormControl fullWidth sx={{ mb: 2 }}>
  <InputLabel>%s</InputLabel>
  <Select required={%t} label=%s>
    %s
  </Select>
</FormControl>`, escape(field.Label), c.Required, attr(field.Label),
		strings.Join(items, "\n    "))
}

func selectBoxesBlock(field model.FieldRecord) string {
	items := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		items = append(items, fmt.Sprintf(`<FormControlLabel control={<Checkbox />} label=%s />`, attr(opt)))
	}
	return fmt.Sprintf(`
<FormGroup sx={{ mb: 2 }}>
  <FormLabel>%s</FormLabel>
  %s
</FormGroup>`, escape(field.Label), strings.Join(items, "\n  "))
}

func radioBlock(field model.FieldRecord) string {
	items := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		items = append(items, fmt.Sprintf(`<FormControlLabel value=%s control={<Radio />} label=%s />`, attr(opt), attr(opt)))
	}
	return fmt.Sprintf(`
<FormControl component="fieldset" sx={{ mb: 2 }}>
  <FormLabel>%s</FormLabel>
  <RadioGroup>
    %s
  </RadioGroup>
</FormControl>`, escape(field.Label), strings.Join(items, "\n    "))
}

func autocompleteBlock(field model.FieldRecord, c model.Constraints) string {
	values := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		values = append(values, attr(opt))
	}
	return fmt.Sprintf(`
<Autocomplete
  multiple
  options={[%s]}
  freeSolo
  renderInput={(params) => (
    <TextField {...params} label=%s placeholder=%s required={%t} />
  )}
  sx={{ mb: 2 }}
/>`, strings.Join(values, ", "), attr(field.Label), attr(field.Placeholder), c.Required)
}

func buttonBlock(field model.FieldRecord) string {
	return fmt.Sprintf(`
<Button variant="contained" color="primary" fullWidth sx={{ mb: 2 }}>
  %s
</Button>`, escape(model.ButtonText(field)))
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// attr quotes and escapes a value for an attribute position. Quote and
// angle-bracket characters are escaped so user-entered labels cannot break
// the generated markup; plain text passes through unchanged.
func attr(value string) string {
	return `"` + attrEscaper.Replace(value) + `"`
}

func escape(value string) string {
	return attrEscaper.Replace(value)
}

func num(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Renderer exposes the generator through the render.Renderer contract.
type Renderer struct{}

// New constructs the JSX renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "jsx"
}

func (r *Renderer) ContentType() string {
	return "text/jsx; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc model.FormDocument) ([]byte, error) {
	return []byte(Generate(doc)), nil
}
