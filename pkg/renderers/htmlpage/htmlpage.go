// Package htmlpage renders a form document as a standalone HTML page. Field
// controls are built from the same preview descriptors the interactive
// preview consumes, so the constraint attributes on the HTML inputs match
// the other projections.
package htmlpage

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formbuilder/pkg/model"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits a full HTML page for a document.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmlpage renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc model.FormDocument) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmlpage renderer: template renderer is nil")
	}

	descriptors := preview.Render(doc)
	blocks := make([]string, 0, len(descriptors))
	for _, descriptor := range descriptors {
		blocks = append(blocks, buildFieldMarkup(descriptor))
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"name":   doc.Name,
		"blocks": blocks,
	})
	if err != nil {
		return nil, fmt.Errorf("htmlpage renderer: render template: %w", err)
	}
	return []byte(result), nil
}
