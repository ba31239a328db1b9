// Package errors provides structured, actionable error messages for lally.
//
// The errors package implements a coded error system that:
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with command examples
//   - Renders consistently on terminals with or without color
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: consumer configuration errors (missing or invalid components.json)
//   - registry: lookup errors (unknown namespace or item)
//   - export: manifest inconsistencies and output write failures
//   - serve: registry HTTP server errors
//   - publish: S3 upload errors
//   - cli: argument and usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E101") that maps to a short message
// and a detailed explanation in the code registry.
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetail("No components.json found in " + dir).
//	    WithSuggestion("Run 'lally init' to set up this project")
//
//	errors.PrintError(err)
package errors
