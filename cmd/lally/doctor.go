package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/config"
	"github.com/chris-lally/lally/internal/materialize"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the project's registry setup",
		Long: `Check the current project's registry setup.

Reports the parsed aliases, the resolved components root, which items
are already installed, and the configured remote registries. Problems
are printed as warnings; a missing components.json is fatal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

func runDoctor() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	fmt.Println("  Checking project setup...")
	fmt.Println()

	success("Found %s", config.ConfigFileName)

	aliases := cfg.AliasContext()
	info("components: %s", aliases.Components)
	info("ui:         %s", aliases.UI)
	info("utils:      %s", aliases.Utils)
	fmt.Println()

	resolution, err := cfg.Resolve(dir)
	if err != nil {
		return err
	}

	if stat, statErr := os.Stat(resolution.ComponentsRoot); statErr == nil && stat.IsDir() {
		success("Components root %s/ exists", relPath(dir, resolution.ComponentsRoot))
	} else {
		warn("Components root %s/ does not exist (run 'lally init')", relPath(dir, resolution.ComponentsRoot))
	}
	fmt.Println()

	cat := catalog.Default()
	mat := materialize.New(cat, resolution)

	fmt.Println("  Installed items:")
	fmt.Println()

	installed := 0
	for _, item := range cat.List() {
		present := 0
		for _, file := range item.Files {
			if _, statErr := os.Stat(mat.TargetPath(file)); statErr == nil {
				present++
			}
		}

		switch {
		case present == len(item.Files):
			fmt.Printf(" ✓  %s\n", item.ID)
			installed++
		case present > 0:
			warn("%s is partial (%d/%d files present)", item.ID, present, len(item.Files))
		}
	}
	if installed == 0 {
		info("none")
	}
	fmt.Println()

	if len(cfg.Registries) > 0 {
		fmt.Println("  Configured registries:")
		fmt.Println()
		namespaces := make([]string, 0, len(cfg.Registries))
		for namespace := range cfg.Registries {
			namespaces = append(namespaces, namespace)
		}
		sort.Strings(namespaces)
		for _, namespace := range namespaces {
			info("%s → %s", namespace, cfg.Registries[namespace])
		}
		fmt.Println()
	} else {
		info("No remote registries configured (run 'lally registry connect')")
		fmt.Println()
	}

	return nil
}
