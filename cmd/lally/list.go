package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/materialize"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available registry items",
		Long: `List all items available in the registry, grouped by namespace.

When run inside an initialized project, items whose files are already
present are marked with a check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	cat := catalog.Default()

	// Installation status is best effort: outside a project the listing
	// still works, just without checkmarks.
	var mat *materialize.Materializer
	if dir, err := os.Getwd(); err == nil && config.Exists(dir) {
		if resolution, err := config.Resolve(dir); err == nil {
			mat = materialize.New(cat, resolution)
		}
	}

	fmt.Println("  Available registry items:")

	for _, namespace := range cat.Namespaces() {
		fmt.Println()
		fmt.Printf("  %s/\n", namespace)

		for _, item := range cat.ItemsIn(namespace) {
			status := "    "
			if mat != nil && isInstalled(mat, item) {
				status = " ✓  "
			}

			fmt.Printf("%s%-28s %s\n", status, item.Name, item.Description)
			if len(item.Dependencies) > 0 {
				fmt.Printf("        npm: %s\n", strings.Join(item.Dependencies, ", "))
			}
		}
	}

	fmt.Println()
	return nil
}

// isInstalled reports whether every file of the item already exists in
// the consumer project.
func isInstalled(mat *materialize.Materializer, item catalog.RegistryItem) bool {
	for _, file := range item.Files {
		if _, err := os.Stat(mat.TargetPath(file)); err != nil {
			return false
		}
	}
	return true
}
