package catalog

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// Default returns the compiled-in catalog backed by the embedded
// template root.
func Default() *Catalog {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The templates directory is embedded at build time; its
		// absence means the binary itself is broken.
		panic("catalog: embedded templates missing: " + err.Error())
	}
	return New(defaultItems, sub)
}
