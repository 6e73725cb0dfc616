package openapi

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const signupDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "accounts", "version": "1.0.0"},
  "paths": {
    "/signup": {
      "post": {
        "operationId": "createAccount",
        "summary": "Create Account",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email", "password"],
                "properties": {
                  "email": {"type": "string", "format": "email"},
                  "password": {"type": "string", "format": "password", "minLength": 8, "maxLength": 64},
                  "displayName": {"type": "string", "maxLength": 40, "description": "Shown on your profile"},
                  "plan": {"type": "string", "enum": ["free", "pro", "team"]},
                  "seats": {"type": "integer", "minimum": 1, "maximum": 500},
                  "newsletter": {"type": "boolean"},
                  "tags": {"type": "array", "items": {"type": "string", "enum": ["beta", "design", "eng"]}}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func TestImportOperation(t *testing.T) {
	doc, err := ImportOperation(context.Background(), []byte(signupDoc), "createAccount")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if doc.Name != "Create Account" {
		t.Fatalf("name = %q", doc.Name)
	}

	byLabel := make(map[string]model.FieldRecord, len(doc.Fields))
	for _, field := range doc.Fields {
		byLabel[field.Label] = field
	}

	email := byLabel["Email"]
	if email.Type != model.FieldTypeEmail || !email.Validate.Required {
		t.Fatalf("email field = %+v", email)
	}

	password := byLabel["Password"]
	if password.Type != model.FieldTypePassword {
		t.Fatalf("password type = %s", password.Type)
	}
	if password.Validate.MinLength != 8 || password.Validate.MaxLength != 64 {
		t.Fatalf("password bounds = %d/%d", password.Validate.MinLength, password.Validate.MaxLength)
	}

	display := byLabel["Display Name"]
	if display.Type != model.FieldTypeText {
		t.Fatalf("displayName type = %s", display.Type)
	}
	if display.Placeholder != "Shown on your profile" {
		t.Fatalf("placeholder = %q", display.Placeholder)
	}
	if display.Validate.Required {
		t.Fatal("displayName must not be required")
	}

	plan := byLabel["Plan"]
	if plan.Type != model.FieldTypeSelect {
		t.Fatalf("plan type = %s", plan.Type)
	}
	if diff := cmp.Diff([]string{"free", "pro", "team"}, plan.Options); diff != "" {
		t.Fatalf("plan options mismatch (-want +got):\n%s", diff)
	}

	seats := byLabel["Seats"]
	if seats.Type != model.FieldTypeNumber {
		t.Fatalf("seats type = %s", seats.Type)
	}
	if seats.Validate.Min != 1 || seats.Validate.Max != 500 {
		t.Fatalf("seats range = %v/%v", seats.Validate.Min, seats.Validate.Max)
	}

	if byLabel["Newsletter"].Type != model.FieldTypeCheckbox {
		t.Fatalf("newsletter type = %s", byLabel["Newsletter"].Type)
	}

	tags := byLabel["Tags"]
	if tags.Type != model.FieldTypeAutocomplete {
		t.Fatalf("tags type = %s", tags.Type)
	}
	if diff := cmp.Diff([]string{"beta", "design", "eng"}, tags.Options); diff != "" {
		t.Fatalf("tags options mismatch (-want +got):\n%s", diff)
	}
}

func TestImportOperationFieldsAreSorted(t *testing.T) {
	doc, err := ImportOperation(context.Background(), []byte(signupDoc), "createAccount")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	labels := make([]string, len(doc.Fields))
	for i, field := range doc.Fields {
		labels[i] = field.Label
	}
	want := []string{"Display Name", "Email", "Newsletter", "Password", "Plan", "Seats", "Tags"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestImportOperationNotFound(t *testing.T) {
	_, err := ImportOperation(context.Background(), []byte(signupDoc), "deleteAccount")
	if !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("err = %v, want ErrOperationNotFound", err)
	}
}

func TestHumanizeLabel(t *testing.T) {
	cases := map[string]string{
		"email":       "Email",
		"displayName": "Display Name",
		"first_name":  "First Name",
		"api-key-2":   "Api Key 2",
		"caféSize":    "Café Size",
		"année2024":   "Année 2024",
		"":            "",
	}
	for in, want := range cases {
		if got := humanizeLabel(in); got != want {
			t.Errorf("humanizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
