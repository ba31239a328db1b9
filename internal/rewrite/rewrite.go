package rewrite

import (
	"regexp"
	"strings"

	"github.com/chris-lally/lally/internal/config"
)

// Alias placeholder tokens usable in replacement specifiers.
const (
	PlaceholderComponents = "{components}"
	PlaceholderUI         = "{ui}"
	PlaceholderUtils      = "{utils}"
)

// ExpandAliases substitutes the alias placeholder tokens in a
// replacement specifier with the resolved alias values. Substitution is
// literal string interpolation; the result is not validated as a path.
func ExpandAliases(spec string, ctx config.AliasContext) string {
	r := strings.NewReplacer(
		PlaceholderComponents, ctx.Components,
		PlaceholderUI, ctx.UI,
		PlaceholderUtils, ctx.Utils,
	)
	return r.Replace(spec)
}

// ExpandMap returns a copy of the replacement map with alias
// placeholders expanded in every value. A nil map yields nil.
func ExpandMap(replace map[string]string, ctx config.AliasContext) map[string]string {
	if replace == nil {
		return nil
	}
	out := make(map[string]string, len(replace))
	for old, spec := range replace {
		out[old] = ExpandAliases(spec, ctx)
	}
	return out
}

// Imports rewrites the module specifier of matching import statements.
//
// Only the single canonical form used by the shipped templates is
// recognized: a quoted string literal following the `from` keyword.
// Dynamic import() calls and bare re-export forms are deliberately
// outside the supported grammar. Specifiers are matched as whole
// literals; regex metacharacters in a key have no special meaning.
//
// With a nil or empty map the input is returned unchanged.
func Imports(src string, replace map[string]string) string {
	if len(replace) == 0 {
		return src
	}

	out := src
	for old, repl := range replace {
		re := regexp.MustCompile(`(from\s+['"])` + regexp.QuoteMeta(old) + `(['"])`)
		// $ in the replacement text must stay literal.
		escaped := strings.ReplaceAll(repl, "$", "$$")
		out = re.ReplaceAllString(out, "${1}"+escaped+"${2}")
	}
	return out
}
