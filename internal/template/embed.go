package template

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// EmbeddedTemplates returns the project templates compiled into the binary,
// rooted so that names look like "Makefile.tmpl" or "topfile/default.v.tmpl".
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedTemplates, "templates")
}
