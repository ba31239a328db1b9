package catalog

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/chris-lally/lally/internal/errors"
)

// RegistryFile is one template file carried by a registry item.
type RegistryFile struct {
	// Source is the file path relative to the template root.
	Source string

	// Target is the output path relative to the consumer's resolved
	// source root.
	Target string

	// ReplaceImports maps literal import specifiers in the template
	// source to replacement specifiers. Replacements may contain the
	// alias placeholders {components}, {ui}, and {utils}.
	ReplaceImports map[string]string
}

// RegistryItem is one named, installable unit of UI source.
type RegistryItem struct {
	// ID is the unique namespace/name identifier.
	ID string

	// Namespace groups related items (e.g. "branding").
	Namespace string

	// Name is the item name within its namespace.
	Name string

	// Description is a human-readable summary.
	Description string

	// Dependencies are external npm package names the item needs.
	Dependencies []string

	// RegistryDependencies are ids of other registry items the item
	// builds on.
	RegistryDependencies []string

	// Files is the ordered file manifest.
	Files []RegistryFile
}

// Catalog is an immutable lookup table of registry items plus the
// template root their sources resolve against.
type Catalog struct {
	items     []RegistryItem
	byID      map[string]RegistryItem
	templates fs.FS
}

// New creates a Catalog from a list of items and a template root.
// It panics on duplicate item ids; the item table is compiled in, so a
// duplicate is a programming error, not a runtime condition.
func New(items []RegistryItem, templates fs.FS) *Catalog {
	byID := make(map[string]RegistryItem, len(items))
	for _, item := range items {
		if _, exists := byID[item.ID]; exists {
			panic("catalog: duplicate item id " + item.ID)
		}
		byID[item.ID] = item
	}
	return &Catalog{
		items:     items,
		byID:      byID,
		templates: templates,
	}
}

// List returns all items in stable (declaration) order.
func (c *Catalog) List() []RegistryItem {
	out := make([]RegistryItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the item with the given id. Absence is a valid,
// non-exceptional result.
func (c *Catalog) Find(id string) (RegistryItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Namespaces returns the sorted set of namespaces in the catalog.
func (c *Catalog) Namespaces() []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range c.items {
		if !seen[item.Namespace] {
			seen[item.Namespace] = true
			names = append(names, item.Namespace)
		}
	}
	sort.Strings(names)
	return names
}

// ItemsIn returns the items in a namespace, in declaration order.
func (c *Catalog) ItemsIn(namespace string) []RegistryItem {
	var out []RegistryItem
	for _, item := range c.items {
		if item.Namespace == namespace {
			out = append(out, item)
		}
	}
	return out
}

// HasNamespace reports whether any item uses the namespace.
func (c *Catalog) HasNamespace(namespace string) bool {
	for _, item := range c.items {
		if item.Namespace == namespace {
			return true
		}
	}
	return false
}

// Templates returns the template root filesystem.
func (c *Catalog) Templates() fs.FS {
	return c.templates
}

// WithTemplates returns a catalog with the same items backed by a
// different template root. Used by serve's --templates override, where
// sources are read from disk instead of the embedded copy.
func (c *Catalog) WithTemplates(templates fs.FS) *Catalog {
	return &Catalog{
		items:     c.items,
		byID:      c.byID,
		templates: templates,
	}
}

// ReadSource reads a registry file's source from the template root.
// A missing source is a manifest inconsistency: the declared file set
// no longer matches the shipped templates, which indicates a corrupt
// install of the tool itself.
func (c *Catalog) ReadSource(file RegistryFile) ([]byte, error) {
	data, err := fs.ReadFile(c.templates, file.Source)
	if err != nil {
		return nil, errors.New("E121").
			WithDetail("Template file '" + file.Source + "' is missing from the template root").
			Wrap(err)
	}
	return data, nil
}

// ResolveDependencies returns the requested items plus their registry
// dependencies in install order (dependencies first). Each item appears
// once regardless of how many requesters share it.
func (c *Catalog) ResolveDependencies(ids []string) ([]RegistryItem, error) {
	resolved := make(map[string]bool)
	resolving := make(map[string]bool)
	var order []RegistryItem

	var resolve func(id string) error
	resolve = func(id string) error {
		if resolved[id] {
			return nil
		}
		if resolving[id] {
			return errors.Newf(errors.CategoryRegistry, "dependency cycle involving '%s'", id)
		}
		resolving[id] = true

		item, ok := c.byID[id]
		if !ok {
			return errors.New("E112").
				WithDetail("Item '" + id + "' not found in the registry").
				WithSuggestion("Available items: " + strings.Join(c.alternativesFor(id), ", "))
		}

		// Resolve dependencies first
		for _, dep := range item.RegistryDependencies {
			if err := resolve(dep); err != nil {
				return err
			}
		}

		resolved[id] = true
		order = append(order, item)
		return nil
	}

	for _, id := range ids {
		if err := resolve(id); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// alternativesFor returns the item ids offered as alternatives for an
// unknown id: the ids in its namespace when that namespace exists,
// otherwise every id in the catalog.
func (c *Catalog) alternativesFor(id string) []string {
	namespace := id
	if i := strings.Index(id, "/"); i > 0 {
		namespace = id[:i]
	}

	items := c.ItemsIn(namespace)
	if len(items) == 0 {
		items = c.items
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// ParseID splits a namespace/name argument into its parts.
func ParseID(arg string) (namespace, name string, err error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New("E113").
			WithDetail("'" + arg + "' is not a valid item identifier").
			WithExample("lally add branding/logo-with-badge")
	}
	return parts[0], parts[1], nil
}
