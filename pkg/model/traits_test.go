package model

import "testing"

func TestTraitGroups(t *testing.T) {
	for _, typ := range []FieldType{FieldTypeSelect, FieldTypeSelectBoxes, FieldTypeRadio, FieldTypeAutocomplete} {
		if !OptionBearing(typ) {
			t.Errorf("%s should be option-bearing", typ)
		}
	}
	if OptionBearing(FieldTypeCheckbox) {
		t.Error("checkbox is not option-bearing")
	}

	for _, typ := range []FieldType{FieldTypeText, FieldTypeTextarea, FieldTypePassword, FieldTypePhone} {
		if !TextLike(typ) {
			t.Errorf("%s should be text-like", typ)
		}
	}
	// Email keeps its own constraint branch despite accepting a placeholder.
	if TextLike(FieldTypeEmail) {
		t.Error("email must not be grouped as text-like")
	}
	if !PlaceholderEligible(FieldTypeEmail) {
		t.Error("email accepts a placeholder")
	}

	if !Numeric(FieldTypeNumber) || Numeric(FieldTypeText) {
		t.Error("only number is numeric")
	}
}

func TestDefaultLabelFallback(t *testing.T) {
	if got := DefaultLabel(FieldTypePhone); got != "Phone Number" {
		t.Fatalf("phone label = %q", got)
	}
	if got := DefaultLabel(FieldType("holo-input")); got != DefaultFieldLabel {
		t.Fatalf("unknown label = %q, want %q", got, DefaultFieldLabel)
	}
}

func TestDefaultInputType(t *testing.T) {
	cases := map[FieldType]string{
		FieldTypePassword: "password",
		FieldTypeEmail:    "email",
		FieldTypeText:     "text",
		FieldTypeNumber:   "text",
	}
	for typ, want := range cases {
		if got := DefaultInputType(typ); got != want {
			t.Errorf("DefaultInputType(%s) = %q, want %q", typ, got, want)
		}
	}
}

func TestTypesCoversLabelTable(t *testing.T) {
	if len(Types) != len(defaultLabels) {
		t.Fatalf("palette lists %d types, label table has %d", len(Types), len(defaultLabels))
	}
	for _, typ := range Types {
		if !Known(typ) {
			t.Errorf("palette type %s missing from label table", typ)
		}
	}
}
