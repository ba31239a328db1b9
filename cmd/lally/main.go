package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-lally/lally/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ┌─┐╦  ╦  ┬ ┬
  ║  ├─┤║  ║  └┬┘
  ╩═╝┴ ┴╩═╝╩═╝ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "lally",
		Short: "The chris-lally component registry",
		Long: `lally distributes the chris-lally component library as source code
you own.

Items are copied into your project, not installed as a package.
Once copied, every file is yours to edit. Features include:

  • Copy-paste ownership of every installed file
  • Alias-aware import rewriting
  • Idempotent installs that never clobber your edits
  • shadcn-compatible registry export, serving, and publishing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		initCmd(),
		addCmd(),
		listCmd(),
		doctorCmd(),
		registryCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the lally ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
