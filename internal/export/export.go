// Package export serializes the catalog into shadcn-style registry
// JSON consumable by third-party tooling.
//
// Export always rewrites template imports with the default alias
// values: no consumer project exists at export time, so there is no
// consumer context to resolve. The apply path is the one that uses
// real consumer aliases.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/errors"
	"github.com/chris-lally/lally/internal/rewrite"
)

const (
	// ItemSchemaURL tags per-item registry documents.
	ItemSchemaURL = "https://ui.shadcn.com/schema/registry-item.json"

	// RegistrySchemaURL tags the aggregate manifest.
	RegistrySchemaURL = "https://ui.shadcn.com/schema/registry.json"

	// RegistryName is the aggregate manifest name.
	RegistryName = "chris-lally"

	// Homepage is the registry homepage advertised in the manifest.
	Homepage = "https://chrislally.dev"

	// ManifestFileName is the aggregate manifest file name.
	ManifestFileName = "registry.json"
)

// Registry file types, in classification priority order.
const (
	TypePage      = "registry:page"
	TypeHook      = "registry:hook"
	TypeLib       = "registry:lib"
	TypeComponent = "registry:component"
)

// ItemFile is one file entry in a registry document.
type ItemFile struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Target  string `json:"target,omitempty"`
	Content string `json:"content,omitempty"`
}

// ItemDocument is the per-item registry JSON document.
type ItemDocument struct {
	Schema               string     `json:"$schema"`
	Name                 string     `json:"name"`
	Type                 string     `json:"type"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Dependencies         []string   `json:"dependencies,omitempty"`
	RegistryDependencies []string   `json:"registryDependencies,omitempty"`
	Files                []ItemFile `json:"files"`
}

// ManifestItem is one entry in the aggregate manifest.
type ManifestItem struct {
	Name                 string     `json:"name"`
	Type                 string     `json:"type"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Dependencies         []string   `json:"dependencies,omitempty"`
	RegistryDependencies []string   `json:"registryDependencies,omitempty"`
	Files                []ItemFile `json:"files"`
}

// Manifest is the aggregate registry.json document.
type Manifest struct {
	Schema   string         `json:"$schema"`
	Name     string         `json:"name"`
	Homepage string         `json:"homepage"`
	Items    []ManifestItem `json:"items"`
}

// Result holds the built registry documents in item order.
type Result struct {
	Items    []ItemDocument
	Manifest Manifest
}

// Exporter builds and writes registry documents for a catalog.
type Exporter struct {
	catalog *catalog.Catalog
}

// New creates an Exporter for the given catalog.
func New(cat *catalog.Catalog) *Exporter {
	return &Exporter{catalog: cat}
}

// Build serializes every catalog item into registry documents without
// touching the filesystem. A missing template source is fatal: a
// partial export would leave other tools reading broken entries.
func (e *Exporter) Build() (*Result, error) {
	aliases := config.DefaultAliases()

	result := &Result{
		Manifest: Manifest{
			Schema:   RegistrySchemaURL,
			Name:     RegistryName,
			Homepage: Homepage,
		},
	}

	for _, item := range e.catalog.List() {
		doc := ItemDocument{
			Schema:               ItemSchemaURL,
			Name:                 item.Name,
			Type:                 TypeComponent,
			Title:                Title(item.ID),
			Description:          item.Description,
			Dependencies:         item.Dependencies,
			RegistryDependencies: item.RegistryDependencies,
		}

		for _, file := range item.Files {
			data, err := e.catalog.ReadSource(file)
			if err != nil {
				return nil, err
			}

			replace := rewrite.ExpandMap(file.ReplaceImports, aliases)
			content := rewrite.Imports(string(data), replace)

			doc.Files = append(doc.Files, ItemFile{
				Path:    file.Source,
				Type:    Classify(file.Target),
				Target:  file.Target,
				Content: content,
			})
		}

		result.Items = append(result.Items, doc)
		result.Manifest.Items = append(result.Manifest.Items, manifestEntry(doc))
	}

	return result, nil
}

// Export builds the registry documents and writes them under outDir:
// one <name>.json per item, then registry.json last so a reader never
// observes a manifest referencing an item file not yet written.
func (e *Exporter) Export(outDir string) (*Result, error) {
	result, err := e.Build()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.New("E122").Wrap(err)
	}

	for _, doc := range result.Items {
		path := filepath.Join(outDir, doc.Name+".json")
		if err := writeJSON(path, doc); err != nil {
			return nil, err
		}
	}

	// Aggregate manifest goes last.
	if err := writeJSON(filepath.Join(outDir, ManifestFileName), result.Manifest); err != nil {
		return nil, err
	}

	return result, nil
}

// manifestEntry derives the aggregate entry for one item document.
// File contents are dropped; the manifest lists paths only.
func manifestEntry(doc ItemDocument) ManifestItem {
	entry := ManifestItem{
		Name:                 doc.Name,
		Type:                 doc.Type,
		Title:                doc.Title,
		Description:          doc.Description,
		Dependencies:         doc.Dependencies,
		RegistryDependencies: doc.RegistryDependencies,
	}
	for _, f := range doc.Files {
		entry.Files = append(entry.Files, ItemFile{
			Path:   f.Path,
			Type:   f.Type,
			Target: f.Target,
		})
	}
	return entry
}

// Classify determines a file's registry type from its target path.
// Rules apply in fixed priority order; component is the fallback.
func Classify(target string) string {
	switch {
	case strings.HasPrefix(target, "app/"):
		return TypePage
	case strings.HasPrefix(target, "hooks/") || strings.Contains(target, "/hooks/"):
		return TypeHook
	case strings.HasPrefix(target, "lib/") || strings.Contains(target, "/lib/"),
		strings.HasPrefix(target, "types/") || strings.Contains(target, "/types/"):
		return TypeLib
	default:
		return TypeComponent
	}
}

// Title derives a display title from an item id: separators become
// spaces and each word start is capitalized.
func Title(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '/' || r == '-' || r == '_'
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.New("E122").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E122").
			WithDetail("Could not write " + path).
			Wrap(err)
	}
	return nil
}
