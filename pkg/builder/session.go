// Package builder exposes a session façade over the document, the renderer
// registry, and the store. A Session owns one active FormDocument and applies
// edits synchronously: callers drive it from a single goroutine, matching the
// event-at-a-time model of the editing surface. Wrap it yourself if you need
// to share one session across goroutines.
package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/htmlpage"
	"github.com/goliatone/go-formbuilder/pkg/renderers/jsx"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

// Option customises the session configuration.
type Option func(*Session)

// WithStore injects the persistence backend. Defaults to an in-memory store.
func WithStore(s store.Store) Option {
	return func(session *Session) {
		if s != nil {
			session.store = s
		}
	}
}

// WithRegistry injects a renderer registry. When omitted the session builds
// one preloaded with the preview, jsx, and html renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(session *Session) {
		if registry != nil {
			session.registry = registry
		}
	}
}

// WithIDGenerator overrides how inserted fields receive ids. Tests use this
// to get deterministic ids.
func WithIDGenerator(generate func() string) Option {
	return func(session *Session) {
		if generate != nil {
			session.newID = generate
		}
	}
}

// WithDocument seeds the session with an existing document instead of an
// empty one. The session works on its own copy.
func WithDocument(doc model.FormDocument) Option {
	return func(session *Session) {
		session.doc = doc.Clone()
	}
}

// Session coordinates edits, rendering, and persistence for one active form.
type Session struct {
	store         store.Store
	registry      *render.Registry
	newID         func() string
	doc           model.FormDocument
	initialiseErr error
}

// New constructs a Session applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Session {
	session := &Session{
		newID: uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(session)
	}
	session.applyDefaults()
	return session
}

func (s *Session) applyDefaults() {
	if s.store == nil {
		s.store = store.NewMemory()
	}
	if s.registry == nil {
		registry := render.NewRegistry()
		registry.MustRegister(preview.New())
		registry.MustRegister(jsx.New())

		page, err := htmlpage.New()
		if err != nil {
			s.initialiseErr = fmt.Errorf("builder: initialise html renderer: %w", err)
			return
		}
		registry.MustRegister(page)
		s.registry = registry
	}
}

// Insert appends a new field of the given type and returns the created
// record. Unknown types still insert; they simply render as nothing.
func (s *Session) Insert(t model.FieldType) model.FieldRecord {
	return s.doc.InsertFieldWithID(t, s.newID())
}

// Update applies a partial patch to the field with the given id. A missing id
// is a silent no-op; the only error surface is inverted bounds in the patch.
func (s *Session) Update(id string, patch model.FieldPatch) error {
	return s.doc.UpdateField(id, patch)
}

// Remove deletes the field with the given id, ignoring unknown ids.
func (s *Session) Remove(id string) {
	s.doc.DeleteField(id)
}

// Move reorders the field at from to sit at index to. Out-of-range indices
// are ignored.
func (s *Session) Move(from, to int) {
	s.doc.MoveField(from, to)
}

// Rename sets the form display name used as the save key.
func (s *Session) Rename(name string) {
	s.doc.SetName(name)
}

// Document returns a copy of the active document.
func (s *Session) Document() model.FormDocument {
	return s.doc.Clone()
}

// Reset discards the active document, leaving an unnamed empty form.
func (s *Session) Reset() {
	s.doc = model.FormDocument{}
}

// Save persists the active document under the slug of its current name and
// returns the form id. Saving with an empty name fails with store.ErrEmptyName.
func (s *Session) Save() (string, error) {
	return s.store.Save(s.doc.Name, s.doc)
}

// Load replaces the active document with the stored one, reporting whether
// the form id was present. A missing id leaves the session on a fresh empty
// document rather than keeping stale state.
func (s *Session) Load(formID string) (bool, error) {
	doc, ok, err := s.store.Get(formID)
	if err != nil {
		return false, err
	}
	if !ok {
		s.doc = model.FormDocument{}
		return false, nil
	}
	s.doc = doc
	return true, nil
}

// Forms lists every stored document keyed by form id.
func (s *Session) Forms() (map[string]model.FormDocument, error) {
	return s.store.ListAll()
}

// DeleteForm removes a stored form. Absent ids are a no-op.
func (s *Session) DeleteForm(formID string) error {
	return s.store.Delete(formID)
}

// Render projects the active document through the named renderer.
func (s *Session) Render(ctx context.Context, rendererName string) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("builder: context is required")
	}
	if err := s.initialiseErr; err != nil {
		return nil, err
	}
	if s.registry == nil {
		return nil, errors.New("builder: renderer registry is nil")
	}

	renderer, err := s.registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, s.doc.Clone())
	if err != nil {
		return nil, fmt.Errorf("builder: render %s output: %w", rendererName, err)
	}
	return output, nil
}

// Renderers returns the sorted renderer names the session can project to.
func (s *Session) Renderers() []string {
	if s.registry == nil {
		return nil
	}
	return s.registry.List()
}

// Preview returns the descriptor list the interactive preview consumes.
func (s *Session) Preview() []preview.InputDescriptor {
	return preview.Render(s.doc)
}

// Code returns the generated component source for the active document.
func (s *Session) Code() string {
	return jsx.Generate(s.doc)
}
