// Package config provides consumer configuration parsing for lally.
//
// The configuration is stored in components.json at the consumer project
// root. This package handles loading, saving, per-field defaulting, and
// alias resolution.
//
// # Configuration File Structure
//
//	{
//	  "aliases": {
//	    "components": "@/components",
//	    "ui": "@/components/ui",
//	    "utils": "@/lib/utils"
//	  },
//	  "registries": {
//	    "@chris-lally": "https://registry.chrislally.dev/r/{name}.json"
//	  }
//	}
//
// Absent alias fields default independently to the values shown above.
//
// # Alias Resolution
//
// An alias beginning with the @/ shorthand maps into the project's src
// directory (@/components resolves to <cwd>/src/components); any other
// alias is treated as a filesystem path relative to the working
// directory.
//
// # Usage
//
//	res, err := config.Resolve(".")
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println("Components root:", res.ComponentsRoot)
package config
