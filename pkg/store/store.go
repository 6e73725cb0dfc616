// Package store persists named form documents keyed by a slug derived from
// the display name. Saving is upsert-by-slug: two names that normalize to the
// same slug overwrite each other, which is how rename-then-save converges on
// one entry. Both implementations copy documents on the way in and out, so an
// in-session document never aliases a stored snapshot.
package store

import (
	"errors"
	"regexp"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrEmptyName is returned by Save when the form name trims to nothing.
// Callers must block the save and prompt for a name.
var ErrEmptyName = errors.New("store: form name is required")

var whitespaceRun = regexp.MustCompile(`\s+`)

// Store owns durable copies of form documents. Implementations exposed over
// a concurrent transport apply last-writer-wins semantics: the final save or
// delete to land wins, with no optimistic-concurrency check.
type Store interface {
	// ListAll returns every stored document keyed by form id.
	ListAll() (map[string]model.FormDocument, error)
	// Get returns the document stored under formID, reporting presence.
	Get(formID string) (model.FormDocument, bool, error)
	// Save upserts the document under the slug of name and returns the
	// form id. The stored name is the trimmed input.
	Save(name string, doc model.FormDocument) (string, error)
	// Delete removes the entry; absent ids are a no-op.
	Delete(formID string) error
}

// Slug derives the storage key from a display name: trimmed, lower-cased,
// whitespace runs collapsed to single hyphens.
func Slug(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return whitespaceRun.ReplaceAllString(strings.ToLower(trimmed), "-"), nil
}
