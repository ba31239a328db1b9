package materialize

import (
	"os"
	"path/filepath"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/rewrite"
)

// Result reports the outcome of a write attempt.
type Result int

const (
	// Created means the file was written.
	Created Result = iota

	// Skipped means a file already existed at the path and was left
	// untouched. This is a normal outcome, not a failure.
	Skipped
)

// String returns the result as a lowercase word.
func (r Result) String() string {
	if r == Created {
		return "created"
	}
	return "skipped"
}

// WriteIfMissing writes content to path unless a file already exists
// there. Repeat invocations are never destructive: an existing file is
// reported as Skipped and its content is left exactly as found.
// Missing parent directories are created.
func WriteIfMissing(path string, content []byte) (Result, error) {
	if _, err := os.Stat(path); err == nil {
		return Skipped, nil
	} else if !os.IsNotExist(err) {
		return Skipped, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Skipped, err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return Skipped, err
	}
	return Created, nil
}

// FileResult reports what happened to one materialized file.
type FileResult struct {
	// Target is the file's path relative to the source root.
	Target string

	// Path is the absolute path that was written or skipped.
	Path string

	// Result says whether the file was created or skipped.
	Result Result
}

// Materializer copies catalog items into a consumer project, rewriting
// template imports to match the consumer's resolved aliases.
type Materializer struct {
	catalog    *catalog.Catalog
	resolution *config.Resolution
}

// New creates a Materializer for one consumer project.
func New(cat *catalog.Catalog, res *config.Resolution) *Materializer {
	return &Materializer{
		catalog:    cat,
		resolution: res,
	}
}

// Apply materializes a single item's files. A missing template source
// aborts with a fatal manifest error; existing consumer files are
// skipped, never overwritten.
func (m *Materializer) Apply(item catalog.RegistryItem) ([]FileResult, error) {
	var results []FileResult

	for _, file := range item.Files {
		data, err := m.catalog.ReadSource(file)
		if err != nil {
			return nil, err
		}

		replace := rewrite.ExpandMap(file.ReplaceImports, m.resolution.Aliases)
		content := rewrite.Imports(string(data), replace)

		dest := filepath.Join(m.resolution.SourceRoot, filepath.FromSlash(file.Target))
		result, err := WriteIfMissing(dest, []byte(content))
		if err != nil {
			return nil, err
		}

		results = append(results, FileResult{
			Target: file.Target,
			Path:   dest,
			Result: result,
		})
	}

	return results, nil
}

// TargetPath returns the absolute path a registry file would be
// written to, without writing anything.
func (m *Materializer) TargetPath(file catalog.RegistryFile) string {
	return filepath.Join(m.resolution.SourceRoot, filepath.FromSlash(file.Target))
}
