package model

// FieldType is the closed enumeration of supported field kinds. Unknown
// values are tolerated everywhere (records still insert, renderers skip them)
// so documents persisted by newer versions keep loading.
type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeTextarea     FieldType = "textarea"
	FieldTypeNumber       FieldType = "number"
	FieldTypePassword     FieldType = "password"
	FieldTypePhone        FieldType = "phone"
	FieldTypeEmail        FieldType = "email"
	FieldTypeCheckbox     FieldType = "checkbox"
	FieldTypeSelect       FieldType = "select"
	FieldTypeSelectBoxes  FieldType = "selectboxes"
	FieldTypeRadio        FieldType = "radio"
	FieldTypeAutocomplete FieldType = "autocomplete"
	FieldTypeButton       FieldType = "button"
)

// ValidationSpec carries the optional validation attributes of a record.
// Zero values mean "absent"; generation-time defaults are applied by
// ResolveConstraints and are never written back into the spec.
type ValidationSpec struct {
	Required  bool    `json:"required"`
	MinLength int     `json:"minLength,omitempty"`
	MaxLength int     `json:"maxLength,omitempty"`
	Min       float64 `json:"min,omitempty"`
	Max       float64 `json:"max,omitempty"`
	Pattern   string  `json:"pattern,omitempty"`
}

// FieldRecord models one input inside a form document. ID is assigned at
// creation and immutable thereafter. Which of the optional attributes are
// meaningful depends on Type; see the trait lookups in traits.go.
type FieldRecord struct {
	ID          string         `json:"id"`
	Type        FieldType      `json:"type"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder,omitempty"`
	InputType   string         `json:"inputType,omitempty"`
	Rows        int            `json:"rows,omitempty"`
	Options     []string       `json:"options,omitempty"`
	Validate    ValidationSpec `json:"validate"`
}

// Clone returns a copy of the record that shares no mutable state with the
// receiver.
func (f FieldRecord) Clone() FieldRecord {
	out := f
	if f.Options != nil {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}

// FormDocument is the ordered collection of field records under active edit.
// Field order is significant: it defines both visual stacking and generated
// code order.
type FormDocument struct {
	Name   string        `json:"name"`
	Fields []FieldRecord `json:"fields"`
}

// Clone returns a deep copy of the document. Stores hand out clones so a
// loaded document never aliases the persisted snapshot.
func (d FormDocument) Clone() FormDocument {
	out := FormDocument{Name: d.Name}
	if d.Fields != nil {
		out.Fields = make([]FieldRecord, len(d.Fields))
		for i, field := range d.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	return out
}
