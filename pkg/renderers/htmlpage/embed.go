package htmlpage

import (
	"embed"
	"io/fs"
)

//go:embed templates/form.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
