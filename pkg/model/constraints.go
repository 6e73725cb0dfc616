package model

// Default patterns applied when a phone or email record does not override
// validate.pattern.
const (
	PhonePattern = `[0-9]{10}`
	EmailPattern = `[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`
)

// Constraints is the resolved constraint-prop set for one record: record
// values where present, per-type generation defaults otherwise, nil where
// the attribute does not apply. Both the preview descriptors and the code
// generator consume this struct, which is what keeps the two projections in
// lockstep.
type Constraints struct {
	Required  bool     `json:"required"`
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`
	InputMode string   `json:"inputMode,omitempty"`
}

// ResolveConstraints computes the generation-time constraint set for a
// record. Defaults are applied per type and never written back to the
// record:
//
//	text      minLength 0,  maxLength 100
//	textarea  minLength 0,  maxLength 500
//	number    min 0, max 100
//	password  minLength 6,  maxLength 20
//	phone     pattern [0-9]{10}, minLength 10, maxLength 10
//	email     RFC-light pattern, minLength 5, maxLength 100
//
// Option-bearing types, checkbox and button carry nothing beyond required.
func ResolveConstraints(f FieldRecord) Constraints {
	c := Constraints{Required: f.Validate.Required}

	switch f.Type {
	case FieldTypeText:
		c.MinLength = intOr(f.Validate.MinLength, 0)
		c.MaxLength = intOr(f.Validate.MaxLength, 100)
		c.Pattern = strPtr(f.Validate.Pattern)
	case FieldTypeTextarea:
		c.MinLength = intOr(f.Validate.MinLength, 0)
		c.MaxLength = intOr(f.Validate.MaxLength, 500)
		c.Pattern = strPtr(f.Validate.Pattern)
	case FieldTypeNumber:
		c.Min = floatOr(f.Validate.Min, 0)
		c.Max = floatOr(f.Validate.Max, 100)
		c.InputMode = "numeric"
	case FieldTypePassword:
		c.MinLength = intOr(f.Validate.MinLength, 6)
		c.MaxLength = intOr(f.Validate.MaxLength, 20)
	case FieldTypePhone:
		c.Pattern = strPtr(patternOr(f.Validate.Pattern, PhonePattern))
		c.MinLength = intOr(f.Validate.MinLength, 10)
		c.MaxLength = intOr(f.Validate.MaxLength, 10)
		c.InputMode = "numeric"
	case FieldTypeEmail:
		c.Pattern = strPtr(patternOr(f.Validate.Pattern, EmailPattern))
		c.MinLength = intOr(f.Validate.MinLength, 5)
		c.MaxLength = intOr(f.Validate.MaxLength, 100)
		c.InputMode = "email"
	}

	return c
}

// EffectiveRows returns the textarea row count, defaulting to
// DefaultTextareaRows when unset.
func EffectiveRows(f FieldRecord) int {
	if f.Rows > 0 {
		return f.Rows
	}
	return DefaultTextareaRows
}

// ButtonText returns the rendered button caption; the label doubles as the
// button text with "Submit" as the fallback.
func ButtonText(f FieldRecord) string {
	if f.Label != "" {
		return f.Label
	}
	return "Submit"
}

func intOr(value, fallback int) *int {
	if value != 0 {
		return &value
	}
	return &fallback
}

func floatOr(value, fallback float64) *float64 {
	if value != 0 {
		return &value
	}
	return &fallback
}

func patternOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func strPtr(value string) *string {
	return &value
}
