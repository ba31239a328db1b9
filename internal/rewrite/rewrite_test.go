package rewrite

import (
	"strings"
	"testing"

	"github.com/chris-lally/lally/internal/config"
)

func TestImports_RoundTrip(t *testing.T) {
	src := `import * as React from 'react';
import { cn } from '../../../lib/cn';

export function Thing() {}
`
	out := Imports(src, map[string]string{"../../../lib/cn": "@/lib/utils"})

	if !strings.Contains(out, `import { cn } from '@/lib/utils';`) {
		t.Errorf("rewritten import missing:\n%s", out)
	}
	if !strings.Contains(out, `import * as React from 'react';`) {
		t.Error("unrelated import was changed")
	}

	// Everything except the specifier is preserved.
	want := strings.Replace(src, "'../../../lib/cn'", "'@/lib/utils'", 1)
	if out != want {
		t.Errorf("output differs beyond the specifier:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestImports_EmptyMapIsNoOp(t *testing.T) {
	src := `import { cn } from '../../../lib/cn';`

	if got := Imports(src, nil); got != src {
		t.Errorf("nil map: got %q", got)
	}
	if got := Imports(src, map[string]string{}); got != src {
		t.Errorf("empty map: got %q", got)
	}
}

func TestImports_LiteralMatch(t *testing.T) {
	// Dots in the key must not act as regex wildcards.
	src := `import { a } from 'libXcn';
import { b } from 'lib.cn';
`
	out := Imports(src, map[string]string{"lib.cn": "@/lib/utils"})

	if !strings.Contains(out, `from 'libXcn'`) {
		t.Error("wildcard match rewrote a non-matching specifier")
	}
	if !strings.Contains(out, `from '@/lib/utils'`) {
		t.Error("exact specifier was not rewritten")
	}
}

func TestImports_MultipleMatches(t *testing.T) {
	src := `import { cn } from '../../../lib/cn';
import type { ClassValue } from '../../../lib/cn';
`
	out := Imports(src, map[string]string{"../../../lib/cn": "@/lib/utils"})

	if strings.Contains(out, "../../../lib/cn") {
		t.Errorf("not all matches replaced:\n%s", out)
	}
	if strings.Count(out, "@/lib/utils") != 2 {
		t.Errorf("expected 2 replacements:\n%s", out)
	}
}

func TestImports_DoubleQuotes(t *testing.T) {
	src := `import { cn } from "../../../lib/cn";`
	out := Imports(src, map[string]string{"../../../lib/cn": "@/lib/utils"})
	if out != `import { cn } from "@/lib/utils";` {
		t.Errorf("got %q", out)
	}
}

func TestImports_IgnoresDynamicImport(t *testing.T) {
	// Only `from`-style statements are in the supported grammar.
	src := `const mod = await import('../../../lib/cn');`
	out := Imports(src, map[string]string{"../../../lib/cn": "@/lib/utils"})
	if out != src {
		t.Errorf("dynamic import was rewritten: %q", out)
	}
}

func TestExpandAliases(t *testing.T) {
	ctx := config.AliasContext{
		Components: "@/components",
		UI:         "@/components/ui",
		Utils:      "@/lib/utils",
	}

	tests := []struct {
		spec string
		want string
	}{
		{spec: "{utils}", want: "@/lib/utils"},
		{spec: "{ui}/badge", want: "@/components/ui/badge"},
		{spec: "{components}/logo-with-badge", want: "@/components/logo-with-badge"},
		{spec: "react", want: "react"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if got := ExpandAliases(tt.spec, ctx); got != tt.want {
				t.Errorf("ExpandAliases(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestExpandMap(t *testing.T) {
	ctx := config.AliasContext{
		Components: "@/components",
		UI:         "@/components/ui",
		Utils:      "@/lib/utils",
	}

	got := ExpandMap(map[string]string{
		"../../../lib/cn": "{utils}",
		"../ui/badge":     "{ui}/badge",
	}, ctx)

	if got["../../../lib/cn"] != "@/lib/utils" {
		t.Errorf("utils expansion = %q", got["../../../lib/cn"])
	}
	if got["../ui/badge"] != "@/components/ui/badge" {
		t.Errorf("ui expansion = %q", got["../ui/badge"])
	}

	if ExpandMap(nil, ctx) != nil {
		t.Error("ExpandMap(nil) should be nil")
	}
}

func TestImports_DollarInReplacement(t *testing.T) {
	src := `import { x } from 'old';`
	out := Imports(src, map[string]string{"old": "new$1pkg"})
	if out != `import { x } from 'new$1pkg';` {
		t.Errorf("got %q", out)
	}
}
