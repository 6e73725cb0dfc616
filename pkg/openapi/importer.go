// Package openapi seeds a form document from an OpenAPI operation. The
// request-body schema of the chosen operation maps onto the field vocabulary
// (string→text, enum→select, boolean→checkbox, and so on) so an API-backed
// form starts from the contract instead of an empty canvas.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrOperationNotFound is returned when the document holds no operation with
// the requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// ImportOperation parses raw as an OpenAPI 3 document and converts the
// request-body schema of the operation with the given id into a form
// document. Operations without a JSON request body yield a named, empty
// document.
func ImportOperation(ctx context.Context, raw []byte, operationID string) (model.FormDocument, error) {
	if len(raw) == 0 {
		return model.FormDocument{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormDocument{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return model.FormDocument{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	var doc model.FormDocument
	doc.SetName(formName(operation, operationID))

	schema := requestSchema(operation)
	if schema == nil {
		return doc, nil
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if err := appendField(&doc, name, ref.Value, required[name]); err != nil {
			return model.FormDocument{}, fmt.Errorf("openapi: field %q: %w", name, err)
		}
	}
	return doc, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func formName(op *openapi3.Operation, fallback string) string {
	if op.Summary != "" {
		return op.Summary
	}
	return fallback
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func appendField(doc *model.FormDocument, name string, schema *openapi3.Schema, required bool) error {
	fieldType, options := classify(schema)
	field := doc.InsertFieldWithID(fieldType, uuid.NewString())

	label := humanizeLabel(name)
	patch := model.FieldPatch{
		Label:    &label,
		Validate: &model.ValidationPatch{Required: &required},
	}
	if options != nil {
		patch.Options = &options
	}
	if schema.Description != "" && model.PlaceholderEligible(fieldType) {
		description := schema.Description
		patch.Placeholder = &description
	}

	if schema.Pattern != "" {
		pattern := schema.Pattern
		patch.Validate.Pattern = &pattern
	}
	if schema.MinLength > 0 {
		minLen := int(schema.MinLength)
		patch.Validate.MinLength = &minLen
	}
	if schema.MaxLength != nil {
		maxLen := int(*schema.MaxLength)
		patch.Validate.MaxLength = &maxLen
	}
	if schema.Min != nil && *schema.Min != 0 {
		minVal := *schema.Min
		patch.Validate.Min = &minVal
	}
	if schema.Max != nil && *schema.Max != 0 {
		maxVal := *schema.Max
		patch.Validate.Max = &maxVal
	}

	return doc.UpdateField(field.ID, patch)
}

// classify picks the field type (and, for option-bearing types, the option
// list) for one property schema.
func classify(schema *openapi3.Schema) (model.FieldType, []string) {
	switch firstSchemaType(schema.Type) {
	case "boolean":
		return model.FieldTypeCheckbox, nil
	case "integer", "number":
		return model.FieldTypeNumber, nil
	case "array":
		return model.FieldTypeAutocomplete, itemOptions(schema)
	default:
		if len(schema.Enum) > 0 {
			return model.FieldTypeSelect, enumStrings(schema.Enum)
		}
		switch schema.Format {
		case "email":
			return model.FieldTypeEmail, nil
		case "password":
			return model.FieldTypePassword, nil
		case "phone", "tel":
			return model.FieldTypePhone, nil
		case "textarea":
			return model.FieldTypeTextarea, nil
		default:
			return model.FieldTypeText, nil
		}
	}
}

func itemOptions(schema *openapi3.Schema) []string {
	if schema.Items == nil || schema.Items.Value == nil {
		return []string{}
	}
	return enumStrings(schema.Items.Value.Enum)
}

func enumStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := toString(value); ok {
			out = append(out, s)
		}
	}
	return out
}

func toString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil || len(*types) == 0 {
		return ""
	}
	return (*types)[0]
}
