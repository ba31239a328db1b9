package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/errors"
	"github.com/chris-lally/lally/internal/materialize"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <namespace/item>...",
		Short: "Copy registry items into your project",
		Long: `Copy one or more registry items into your project.

Items are copied as source code that you own. Registry dependencies
are installed first; files that already exist are never overwritten.

Examples:
  lally add ui/badge
  lally add branding/logo-with-badge
  lally add lib/cn hooks/use-copy-to-clipboard`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
}

func runAdd(ids []string) error {
	cat := catalog.Default()

	// Validate every argument before touching the filesystem.
	for _, id := range ids {
		namespace, _, err := catalog.ParseID(id)
		if err != nil {
			return err
		}
		if !cat.HasNamespace(namespace) {
			return errors.New("E111").
				WithDetail(fmt.Sprintf("Unknown namespace '%s'", namespace)).
				WithSuggestion("Available namespaces: " + strings.Join(cat.Namespaces(), ", "))
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	resolution, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	items, err := cat.ResolveDependencies(ids)
	if err != nil {
		return err
	}

	fmt.Println("  Installing items...")
	fmt.Println()

	info("Resolving dependencies...")
	for _, id := range ids {
		if item, ok := cat.Find(id); ok && len(item.RegistryDependencies) > 0 {
			fmt.Printf("    %s → [%s]\n", id, strings.Join(item.RegistryDependencies, ", "))
		} else {
			fmt.Printf("    %s\n", id)
		}
	}
	fmt.Println()

	mat := materialize.New(cat, resolution)

	var created, skipped int
	var npmDeps []string
	seenDep := make(map[string]bool)

	for _, item := range items {
		results, err := mat.Apply(item)
		if err != nil {
			return err
		}
		for _, fr := range results {
			switch fr.Result {
			case materialize.Created:
				success("Created %s", relPath(dir, fr.Path))
				created++
			case materialize.Skipped:
				info("Skipped %s (already exists)", relPath(dir, fr.Path))
				skipped++
			}
		}
		for _, dep := range item.Dependencies {
			if !seenDep[dep] {
				seenDep[dep] = true
				npmDeps = append(npmDeps, dep)
			}
		}
	}

	fmt.Println()
	success("Done: %d created, %d skipped", created, skipped)

	if len(npmDeps) > 0 {
		fmt.Println()
		info("Install the required npm packages:")
		fmt.Println()
		fmt.Printf("    npm install %s\n", strings.Join(npmDeps, " "))
	}
	fmt.Println()

	return nil
}

// relPath renders path relative to dir for display, falling back to the
// absolute path when they share no common base.
func relPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}
