// Package preview maps a form document onto the ordered descriptor list the
// interactive preview consumes. Render is pure and cheap, so callers invoke
// it on every document mutation instead of caching.
package preview

import (
	"context"
	"encoding/json"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Kind identifies the widget a descriptor renders as. Kinds map 1:1 from the
// field type, except that text and password share KindInput and are told
// apart by InputType.
type Kind string

const (
	KindInput        Kind = "input"
	KindEmail        Kind = "email"
	KindTextarea     Kind = "textarea"
	KindNumber       Kind = "number"
	KindPhone        Kind = "phone"
	KindCheckbox     Kind = "checkbox"
	KindSelect       Kind = "select"
	KindSelectBoxes  Kind = "selectboxes"
	KindRadio        Kind = "radio"
	KindAutocomplete Kind = "autocomplete"
	KindButton       Kind = "button"
)

// InputDescriptor describes one interactive input: the widget kind, its
// display strings, and the resolved constraint set. Options are carried
// verbatim from the record, including an empty list, which renders as "no
// choices" rather than erroring.
type InputDescriptor struct {
	ID          string            `json:"id"`
	Kind        Kind              `json:"kind"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder,omitempty"`
	InputType   string            `json:"inputType,omitempty"`
	Rows        int               `json:"rows,omitempty"`
	Options     []string          `json:"options,omitempty"`
	Constraints model.Constraints `json:"constraints"`
}

// Render derives one descriptor per field in document order. Fields with an
// unrecognized type yield no descriptor so the preview degrades gracefully on
// legacy documents.
func Render(doc model.FormDocument) []InputDescriptor {
	out := make([]InputDescriptor, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		kind, ok := kindFor(field.Type)
		if !ok {
			continue
		}

		descriptor := InputDescriptor{
			ID:          field.ID,
			Kind:        kind,
			Label:       field.Label,
			Constraints: model.ResolveConstraints(field),
		}

		if model.PlaceholderEligible(field.Type) {
			descriptor.Placeholder = field.Placeholder
		}
		if kind == KindInput {
			descriptor.InputType = field.InputType
			if descriptor.InputType == "" {
				descriptor.InputType = model.DefaultInputType(field.Type)
			}
		}
		if field.Type == model.FieldTypeTextarea {
			descriptor.Rows = model.EffectiveRows(field)
		}
		if model.OptionBearing(field.Type) {
			descriptor.Options = field.Options
		}
		if field.Type == model.FieldTypeButton {
			descriptor.Label = model.ButtonText(field)
		}

		out = append(out, descriptor)
	}
	return out
}

func kindFor(t model.FieldType) (Kind, bool) {
	switch t {
	case model.FieldTypeText, model.FieldTypePassword:
		return KindInput, true
	case model.FieldTypeEmail:
		return KindEmail, true
	case model.FieldTypeTextarea:
		return KindTextarea, true
	case model.FieldTypeNumber:
		return KindNumber, true
	case model.FieldTypePhone:
		return KindPhone, true
	case model.FieldTypeCheckbox:
		return KindCheckbox, true
	case model.FieldTypeSelect:
		return KindSelect, true
	case model.FieldTypeSelectBoxes:
		return KindSelectBoxes, true
	case model.FieldTypeRadio:
		return KindRadio, true
	case model.FieldTypeAutocomplete:
		return KindAutocomplete, true
	case model.FieldTypeButton:
		return KindButton, true
	default:
		return "", false
	}
}

// Renderer exposes the descriptor projection through the render.Renderer
// contract by serialising it to JSON.
type Renderer struct{}

// New constructs the preview renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(_ context.Context, doc model.FormDocument) ([]byte, error) {
	return json.MarshalIndent(Render(doc), "", "  ")
}
