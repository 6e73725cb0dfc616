// Package formfile loads and saves form documents as flat JSON or YAML
// files. Documents arriving from disk are untrusted: display strings pass
// through a strict sanitiser so markup smuggled into labels or options never
// reaches a renderer.
package formfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrEmptyDocument is returned when the input holds no content.
var ErrEmptyDocument = errors.New("formfile: document is empty")

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Load reads and parses the form document at path.
func Load(path string) (model.FormDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.FormDocument{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return model.FormDocument{}, fmt.Errorf("formfile: parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a JSON or YAML form document. YAML documents use the same
// key names as the JSON layout (id, type, label, inputType, options,
// validate); detection is by leading brace.
func Parse(raw []byte) (model.FormDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return model.FormDocument{}, ErrEmptyDocument
	}

	var doc model.FormDocument
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return model.FormDocument{}, fmt.Errorf("formfile: decode json: %w", err)
		}
	} else {
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return model.FormDocument{}, fmt.Errorf("formfile: decode yaml: %w", err)
		}
		payload, err := json.Marshal(tree)
		if err != nil {
			return model.FormDocument{}, fmt.Errorf("formfile: normalise yaml: %w", err)
		}
		if err := json.Unmarshal(payload, &doc); err != nil {
			return model.FormDocument{}, fmt.Errorf("formfile: decode yaml document: %w", err)
		}
	}

	sanitizeDocument(&doc)
	return doc, nil
}

// Marshal serialises the document as indented JSON, the canonical on-disk
// layout.
func Marshal(doc model.FormDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Write saves the document at path as JSON.
func Write(path string, doc model.FormDocument) error {
	payload, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("formfile: encode: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("formfile: write %s: %w", path, err)
	}
	return nil
}

func sanitizeDocument(doc *model.FormDocument) {
	doc.Name = sanitizeText(doc.Name)
	for i := range doc.Fields {
		field := &doc.Fields[i]
		field.Label = sanitizeText(field.Label)
		field.Placeholder = sanitizeText(field.Placeholder)
		for j, opt := range field.Options {
			field.Options[j] = sanitizeText(opt)
		}
	}
}

// sanitizeText strips every element, then unescapes entities the sanitiser
// introduced so plain text round-trips unchanged.
func sanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := textPolicy().Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}
