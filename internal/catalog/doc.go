// Package catalog holds the registry of installable component sources.
//
// This package implements the "copy-paste ownership" model: items are
// distributed as source files that consumers add to their projects and
// own completely. The item table is compiled in and immutable; the
// canonical template sources ship embedded in the binary.
//
// A catalog is an injected lookup table, not a package-level singleton.
// Default() returns the shipped catalog; tests construct their own with
// New and a fstest.MapFS template root.
//
//	cat := catalog.Default()
//
//	item, ok := cat.Find("branding/logo-with-badge")
//	if !ok {
//	    // absence is a normal result, not an error
//	}
package catalog
