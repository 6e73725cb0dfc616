package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intp(v int) *int          { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }

func TestResolveConstraintsDefaults(t *testing.T) {
	tests := []struct {
		name  string
		field FieldRecord
		want  Constraints
	}{
		{
			name:  "text",
			field: FieldRecord{Type: FieldTypeText},
			want:  Constraints{MinLength: intp(0), MaxLength: intp(100), Pattern: strp("")},
		},
		{
			name:  "textarea",
			field: FieldRecord{Type: FieldTypeTextarea},
			want:  Constraints{MinLength: intp(0), MaxLength: intp(500), Pattern: strp("")},
		},
		{
			name:  "number",
			field: FieldRecord{Type: FieldTypeNumber},
			want:  Constraints{Min: floatp(0), Max: floatp(100), InputMode: "numeric"},
		},
		{
			name:  "password",
			field: FieldRecord{Type: FieldTypePassword},
			want:  Constraints{MinLength: intp(6), MaxLength: intp(20)},
		},
		{
			name:  "phone",
			field: FieldRecord{Type: FieldTypePhone},
			want: Constraints{
				Pattern:   strp(PhonePattern),
				MinLength: intp(10),
				MaxLength: intp(10),
				InputMode: "numeric",
			},
		},
		{
			name:  "email",
			field: FieldRecord{Type: FieldTypeEmail},
			want: Constraints{
				Pattern:   strp(EmailPattern),
				MinLength: intp(5),
				MaxLength: intp(100),
				InputMode: "email",
			},
		},
		{
			name:  "checkbox carries only required",
			field: FieldRecord{Type: FieldTypeCheckbox, Validate: ValidationSpec{Required: true}},
			want:  Constraints{Required: true},
		},
		{
			name:  "select carries only required",
			field: FieldRecord{Type: FieldTypeSelect},
			want:  Constraints{},
		},
		{
			name:  "button",
			field: FieldRecord{Type: FieldTypeButton},
			want:  Constraints{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveConstraints(tc.field)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("constraints mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveConstraintsRecordValuesWin(t *testing.T) {
	field := FieldRecord{
		Type: FieldTypePhone,
		Validate: ValidationSpec{
			Required:  true,
			MinLength: 7,
			MaxLength: 12,
			Pattern:   `[0-9+]+`,
		},
	}

	want := Constraints{
		Required:  true,
		Pattern:   strp(`[0-9+]+`),
		MinLength: intp(7),
		MaxLength: intp(12),
		InputMode: "numeric",
	}
	if diff := cmp.Diff(want, ResolveConstraints(field)); diff != "" {
		t.Fatalf("constraints mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConstraintsDoesNotWriteBack(t *testing.T) {
	field := FieldRecord{Type: FieldTypePassword}
	ResolveConstraints(field)
	if field.Validate.MinLength != 0 || field.Validate.MaxLength != 0 {
		t.Fatalf("defaults leaked into the record: %+v", field.Validate)
	}
}

func TestEffectiveRows(t *testing.T) {
	if got := EffectiveRows(FieldRecord{Type: FieldTypeTextarea}); got != 4 {
		t.Fatalf("default rows = %d, want 4", got)
	}
	if got := EffectiveRows(FieldRecord{Type: FieldTypeTextarea, Rows: 8}); got != 8 {
		t.Fatalf("explicit rows = %d, want 8", got)
	}
}

func TestButtonText(t *testing.T) {
	if got := ButtonText(FieldRecord{Type: FieldTypeButton}); got != "Submit" {
		t.Fatalf("fallback caption = %q", got)
	}
	if got := ButtonText(FieldRecord{Type: FieldTypeButton, Label: "Send"}); got != "Send" {
		t.Fatalf("caption = %q, want Send", got)
	}
}
