package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/errors"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a project for registry items",
		Long: `Initialize the current project for registry items.

This creates components.json with the default aliases:

  components  ` + config.DefaultComponentsAlias + `
  ui          ` + config.DefaultUIAlias + `
  utils       ` + config.DefaultUtilsAlias + `

An existing components.json is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	fmt.Println("  Initializing project...")
	fmt.Println()

	if config.Exists(dir) {
		info("Skipped %s (already exists)", config.ConfigFileName)
	} else {
		cfg := config.New()
		if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
			return err
		}
		success("Created %s", config.ConfigFileName)
	}

	resolution, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(resolution.ComponentsRoot, 0755); err != nil {
		return errors.New("E103").
			WithDetail("Could not create " + resolution.ComponentsRoot).
			Wrap(err)
	}
	success("Ensured %s/", relPath(dir, resolution.ComponentsRoot))

	fmt.Println()
	fmt.Println("  Ready! Add items with:")
	fmt.Println()
	fmt.Println("    lally add ui/badge")
	fmt.Println()

	return nil
}
