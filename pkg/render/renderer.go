package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer converts a FormDocument into one of its byte projections (JSX
// source, preview descriptors, an HTML page). Implementations must be pure
// with respect to the document: rendering is re-invoked on every mutation and
// must not retain or modify the input.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.FormDocument) ([]byte, error)
}
