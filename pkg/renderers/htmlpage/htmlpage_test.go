package htmlpage

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestRendererContract(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := renderer.Name(); got != "html" {
		t.Errorf("Name() = %q, want %q", got, "html")
	}
	if got := renderer.ContentType(); got != "text/html; charset=utf-8" {
		t.Errorf("ContentType() = %q, want %q", got, "text/html; charset=utf-8")
	}
}

func TestRenderPageStructure(t *testing.T) {
	doc := model.FormDocument{Name: "Contact <Us>"}
	doc.InsertField(model.FieldTypeText)

	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := renderer.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Contact &lt;Us&gt;</title>",
		`<form class="fb-form" novalidate>`,
		`<h1 class="fb-form-title">Contact &lt;Us&gt;</h1>`,
		`<div class="fb-field" data-kind="input">`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Render() output missing %q\n%s", want, page)
		}
	}
}

func TestRenderTextInputAttributes(t *testing.T) {
	doc := model.FormDocument{Name: "Signup"}
	field := doc.InsertField(model.FieldTypeText)
	if err := doc.UpdateField(field.ID, model.FieldPatch{
		Label:       strPtr("Full Name"),
		Placeholder: strPtr("Jane Doe"),
		Validate:    &model.ValidationPatch{Required: boolPtr(true), MinLength: intPtr(2)},
	}); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}

	page := renderPage(t, doc)

	for _, want := range []string{
		`<label for="fb-` + field.ID + `">Full Name *</label>`,
		`<input id="fb-` + field.ID + `" type="text"`,
		`placeholder="Jane Doe"`,
		" required",
		`minlength="2"`,
		`maxlength="100"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Render() output missing %q\n%s", want, page)
		}
	}
}

func TestRenderPhoneDefaults(t *testing.T) {
	doc := model.FormDocument{Name: "Callback"}
	field := doc.InsertField(model.FieldTypePhone)

	page := renderPage(t, doc)

	for _, want := range []string{
		`<input id="fb-` + field.ID + `" type="tel"`,
		`minlength="10"`,
		`maxlength="10"`,
		`pattern="[0-9]{10}"`,
		`inputmode="numeric"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Render() output missing %q\n%s", want, page)
		}
	}
}

func TestRenderSelectOptions(t *testing.T) {
	doc := model.FormDocument{Name: "Survey"}
	field := doc.InsertField(model.FieldTypeSelect)
	if err := doc.UpdateField(field.ID, model.FieldPatch{
		Options: &[]string{"Red & Blue", "Green"},
	}); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}

	page := renderPage(t, doc)

	first := strings.Index(page, `<option value="Red &amp; Blue">Red &amp; Blue</option>`)
	second := strings.Index(page, `<option value="Green">Green</option>`)
	if first < 0 || second < 0 {
		t.Fatalf("Render() output missing select options\n%s", page)
	}
	if first > second {
		t.Errorf("options rendered out of order: first=%d second=%d", first, second)
	}
}

func TestRenderRadioGroupUsesFieldset(t *testing.T) {
	doc := model.FormDocument{Name: "Poll"}
	field := doc.InsertField(model.FieldTypeRadio)

	page := renderPage(t, doc)

	if strings.Contains(page, `<label for="fb-`+field.ID+`">`) {
		t.Errorf("radio group should not render an outer label\n%s", page)
	}
	for _, want := range []string{
		"<legend>Radio Group</legend>",
		`<input type="radio" name="fb-` + field.ID + `" value="Option 1">`,
		`<input type="radio" name="fb-` + field.ID + `" value="Option 2">`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Render() output missing %q\n%s", want, page)
		}
	}
}

func TestRenderButtonAndTextarea(t *testing.T) {
	doc := model.FormDocument{Name: "Feedback"}
	area := doc.InsertField(model.FieldTypeTextarea)
	doc.InsertField(model.FieldTypeButton)

	page := renderPage(t, doc)

	for _, want := range []string{
		`<textarea id="fb-` + area.ID + `" rows="4"`,
		`maxlength="500"`,
		`<button type="submit">Submit</button>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Render() output missing %q\n%s", want, page)
		}
	}
}

func TestRenderSkipsUnknownTypes(t *testing.T) {
	doc := model.FormDocument{Name: "Legacy"}
	doc.InsertField(model.FieldType("wizard"))
	doc.InsertField(model.FieldTypeCheckbox)

	page := renderPage(t, doc)

	if strings.Contains(page, "wizard") {
		t.Errorf("unknown field type leaked into output\n%s", page)
	}
	if !strings.Contains(page, `type="checkbox"`) {
		t.Errorf("known field missing from output\n%s", page)
	}
}

func renderPage(t *testing.T, doc model.FormDocument) string {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := renderer.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
