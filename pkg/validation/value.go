// Package validation checks submitted values against the constraint set a
// field resolves to. The preview surface uses it to report issues the same
// way the generated markup would: required, length bounds, numeric range,
// and pattern all derive from the one shared constraint table.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Issue represents one violated constraint on a field.
type Issue struct {
	FieldID string `json:"fieldId,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of validating one value or a whole document.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// CheckValue validates a raw input value against the field's resolved
// constraints. An empty value on a non-required field is always valid;
// every other constraint only applies to non-empty input, matching how
// browser constraint validation treats optional fields.
func CheckValue(field model.FieldRecord, value string) Result {
	c := model.ResolveConstraints(field)
	issues := []Issue{}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if c.Required {
			issues = append(issues, issue(field, "is required"))
		}
		return resultFrom(issues)
	}

	if model.Numeric(field.Type) {
		issues = append(issues, checkNumeric(field, c, trimmed)...)
		return resultFrom(issues)
	}

	if c.MinLength != nil && len(value) < *c.MinLength {
		issues = append(issues, issue(field, fmt.Sprintf("must be at least %d characters", *c.MinLength)))
	}
	if c.MaxLength != nil && len(value) > *c.MaxLength {
		issues = append(issues, issue(field, fmt.Sprintf("must be at most %d characters", *c.MaxLength)))
	}
	if c.Pattern != nil && *c.Pattern != "" {
		re, err := regexp.Compile(anchored(*c.Pattern))
		if err != nil {
			issues = append(issues, issue(field, "has an invalid pattern"))
		} else if !re.MatchString(value) {
			issues = append(issues, issue(field, "does not match the expected format"))
		}
	}
	if model.OptionBearing(field.Type) && !containsOption(field.Options, value) {
		issues = append(issues, issue(field, "is not one of the available options"))
	}

	return resultFrom(issues)
}

// CheckDocument validates a map of field id to submitted value against every
// field in the document. Fields absent from values are treated as empty.
func CheckDocument(doc model.FormDocument, values map[string]string) Result {
	issues := []Issue{}
	for _, field := range doc.Fields {
		if field.Type == model.FieldTypeButton {
			continue
		}
		result := CheckValue(field, values[field.ID])
		issues = append(issues, result.Issues...)
	}
	return resultFrom(issues)
}

func checkNumeric(field model.FieldRecord, c model.Constraints, value string) []Issue {
	issues := []Issue{}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return append(issues, issue(field, "must be a number"))
	}
	if c.Min != nil && number < *c.Min {
		issues = append(issues, issue(field, fmt.Sprintf("must be at least %s", formatNumber(*c.Min))))
	}
	if c.Max != nil && number > *c.Max {
		issues = append(issues, issue(field, fmt.Sprintf("must be at most %s", formatNumber(*c.Max))))
	}
	return issues
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// anchored mirrors the HTML pattern attribute, which matches the whole value.
func anchored(pattern string) string {
	return "^(?:" + strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$") + ")$"
}

func issue(field model.FieldRecord, message string) Issue {
	return Issue{FieldID: field.ID, Field: field.Label, Message: message}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func resultFrom(issues []Issue) Result {
	if len(issues) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Issues: issues}
}
