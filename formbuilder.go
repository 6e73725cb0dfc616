package formbuilder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/renderers/jsx"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
)

// FieldType aliases the field palette type exported via the root package for
// convenience.
type FieldType = model.FieldType

// FormDocument is the named, ordered collection of field records a session
// edits and renders.
type FormDocument = model.FormDocument

// FieldPatch carries a partial field update.
type FieldPatch = model.FieldPatch

// InputDescriptor describes one preview widget.
type InputDescriptor = preview.InputDescriptor

// NewSession exposes the builder session constructor from the top-level
// module so callers can start with a single import.
func NewSession(options ...builder.Option) *builder.Session {
	return builder.New(options...)
}

// GenerateJSX renders a document straight to component source, for callers
// that do not need an editing session.
func GenerateJSX(doc model.FormDocument) string {
	return jsx.Generate(doc)
}

// GenerateHTML renders a document to a standalone HTML page using a
// throwaway session with the default renderer set.
func GenerateHTML(ctx context.Context, doc model.FormDocument) ([]byte, error) {
	session := builder.New(builder.WithDocument(doc))
	return session.Render(ctx, "html")
}

// PreviewDescriptors derives the interactive preview projection for a
// document without constructing a session.
func PreviewDescriptors(doc model.FormDocument) []preview.InputDescriptor {
	return preview.Render(doc)
}
