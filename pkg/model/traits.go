package model

// DefaultFieldLabel is used when a record is created with a type the label
// table does not know about.
const DefaultFieldLabel = "Untitled Field"

// Types lists the supported field types in palette order.
var Types = []FieldType{
	FieldTypeText,
	FieldTypeTextarea,
	FieldTypeNumber,
	FieldTypePassword,
	FieldTypePhone,
	FieldTypeEmail,
	FieldTypeCheckbox,
	FieldTypeSelect,
	FieldTypeSelectBoxes,
	FieldTypeRadio,
	FieldTypeAutocomplete,
	FieldTypeButton,
}

var defaultLabels = map[FieldType]string{
	FieldTypeText:         "Text Field",
	FieldTypeTextarea:     "Text Area",
	FieldTypeNumber:       "Number",
	FieldTypePassword:     "Password",
	FieldTypePhone:        "Phone Number",
	FieldTypeEmail:        "Email",
	FieldTypeCheckbox:     "Checkbox",
	FieldTypeSelect:       "Select",
	FieldTypeSelectBoxes:  "Select Boxes",
	FieldTypeRadio:        "Radio Group",
	FieldTypeAutocomplete: "Tags",
	FieldTypeButton:       "Submit",
}

// Known reports whether the type belongs to the supported enumeration.
func Known(t FieldType) bool {
	_, ok := defaultLabels[t]
	return ok
}

// DefaultLabel returns the label seeded onto freshly inserted records,
// falling back to DefaultFieldLabel for unrecognized types.
func DefaultLabel(t FieldType) string {
	if label, ok := defaultLabels[t]; ok {
		return label
	}
	return DefaultFieldLabel
}

// OptionBearing reports whether records of the type carry an options list.
func OptionBearing(t FieldType) bool {
	switch t {
	case FieldTypeSelect, FieldTypeSelectBoxes, FieldTypeRadio, FieldTypeAutocomplete:
		return true
	default:
		return false
	}
}

// TextLike reports whether the type takes length/pattern validation. Email is
// deliberately excluded: it is handled as its own constraint branch even
// though it accepts a placeholder.
func TextLike(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypePassword, FieldTypePhone:
		return true
	default:
		return false
	}
}

// Numeric reports whether the type takes min/max range validation.
func Numeric(t FieldType) bool {
	return t == FieldTypeNumber
}

// PlaceholderEligible reports whether the type exposes a configurable
// placeholder.
func PlaceholderEligible(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeAutocomplete, FieldTypePhone, FieldTypeEmail:
		return true
	default:
		return false
	}
}

// DefaultInputType returns the inputType seeded at creation: password and
// email fields pin their own mode, everything else starts as plain text.
func DefaultInputType(t FieldType) string {
	switch t {
	case FieldTypePassword:
		return "password"
	case FieldTypeEmail:
		return "email"
	default:
		return "text"
	}
}
