package model

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidBounds signals an update whose merged validation spec carries an
// inverted range (minLength > maxLength or min > max). The record is left
// untouched when this is returned.
var ErrInvalidBounds = errors.New("model: validation bounds are inverted")

// DefaultTextareaRows is the row count used when a textarea record does not
// set one.
const DefaultTextareaRows = 4

var defaultOptionSeed = []string{"Option 1", "Option 2"}

// ValidationPatch is a partial update for a ValidationSpec. Nil members are
// absent from the patch and preserve the prior value (deep-merge semantics).
type ValidationPatch struct {
	Required  *bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
	Pattern   *string
}

// FieldPatch is a partial update for a FieldRecord. The record id is not part
// of the patch surface: ids are immutable after creation. Options replaces
// the whole list when present (an empty list is a valid value).
type FieldPatch struct {
	Label       *string
	Placeholder *string
	InputType   *string
	Rows        *int
	Options     *[]string
	Validate    *ValidationPatch
}

// InsertField appends a new record of the given type with defaulted
// attributes and a fresh unique id, returning the inserted record. It never
// fails: unrecognized types insert with fallback defaults.
func (d *FormDocument) InsertField(t FieldType) FieldRecord {
	return d.InsertFieldWithID(t, uuid.NewString())
}

// InsertFieldWithID is InsertField with a caller-supplied id. Callers own the
// uniqueness of ids they provide; the builder session uses this to support
// custom id generators.
func (d *FormDocument) InsertFieldWithID(t FieldType, id string) FieldRecord {
	field := FieldRecord{
		ID:        id,
		Type:      t,
		Label:     DefaultLabel(t),
		InputType: DefaultInputType(t),
		Validate:  ValidationSpec{Required: false},
	}
	if OptionBearing(t) {
		field.Options = append([]string(nil), defaultOptionSeed...)
	}
	d.Fields = append(d.Fields, field)
	return field
}

// UpdateField merges the patch into the record with the matching id. Unknown
// ids are a silent no-op. The only failure mode is ErrInvalidBounds, in which
// case the document is unchanged.
func (d *FormDocument) UpdateField(id string, patch FieldPatch) error {
	for i := range d.Fields {
		if d.Fields[i].ID != id {
			continue
		}

		merged := d.Fields[i].Clone()
		if patch.Label != nil {
			merged.Label = *patch.Label
		}
		if patch.Placeholder != nil {
			merged.Placeholder = *patch.Placeholder
		}
		if patch.InputType != nil {
			merged.InputType = *patch.InputType
		}
		if patch.Rows != nil {
			merged.Rows = *patch.Rows
		}
		if patch.Options != nil {
			merged.Options = append([]string(nil), (*patch.Options)...)
		}
		if patch.Validate != nil {
			merged.Validate = mergeValidation(merged.Validate, *patch.Validate)
		}

		if err := checkBounds(merged.Validate); err != nil {
			return err
		}

		d.Fields[i] = merged
		return nil
	}
	return nil
}

// DeleteField removes the record with the matching id; no-op when absent.
func (d *FormDocument) DeleteField(id string) {
	for i := range d.Fields {
		if d.Fields[i].ID == id {
			d.Fields = append(d.Fields[:i], d.Fields[i+1:]...)
			return
		}
	}
}

// MoveField removes the record at from and reinserts it at to within the
// post-removal sequence (list-splice semantics, matching drag reorder).
// Out-of-range indices leave the document unchanged; there is never a
// partial mutation.
func (d *FormDocument) MoveField(from, to int) {
	if from < 0 || from >= len(d.Fields) || to < 0 || to >= len(d.Fields) {
		return
	}
	if from == to {
		return
	}

	moved := d.Fields[from]
	rest := make([]FieldRecord, 0, len(d.Fields)-1)
	rest = append(rest, d.Fields[:from]...)
	rest = append(rest, d.Fields[from+1:]...)

	result := make([]FieldRecord, 0, len(rest)+1)
	result = append(result, rest[:to]...)
	result = append(result, moved)
	result = append(result, rest[to:]...)
	d.Fields = result
}

// SetName replaces the document name. Blank names are allowed in-session;
// they are only rejected at save time by the store.
func (d *FormDocument) SetName(name string) {
	d.Name = name
}

func mergeValidation(current ValidationSpec, patch ValidationPatch) ValidationSpec {
	if patch.Required != nil {
		current.Required = *patch.Required
	}
	if patch.MinLength != nil {
		current.MinLength = *patch.MinLength
	}
	if patch.MaxLength != nil {
		current.MaxLength = *patch.MaxLength
	}
	if patch.Min != nil {
		current.Min = *patch.Min
	}
	if patch.Max != nil {
		current.Max = *patch.Max
	}
	if patch.Pattern != nil {
		current.Pattern = *patch.Pattern
	}
	return current
}

// checkBounds only compares bounds when both sides are present; a zero value
// means the attribute is absent.
func checkBounds(spec ValidationSpec) error {
	if spec.MinLength != 0 && spec.MaxLength != 0 && spec.MinLength > spec.MaxLength {
		return ErrInvalidBounds
	}
	if spec.Min != 0 && spec.Max != 0 && spec.Min > spec.Max {
		return ErrInvalidBounds
	}
	return nil
}
