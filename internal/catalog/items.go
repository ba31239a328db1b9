package catalog

// defaultItems is the compiled-in registry. Order here is the order
// items appear in listings and exports.
var defaultItems = []RegistryItem{
	{
		ID:          "lib/cn",
		Namespace:   "lib",
		Name:        "cn",
		Description: "Class name helper combining clsx and tailwind-merge.",
		Dependencies: []string{
			"clsx",
			"tailwind-merge",
		},
		Files: []RegistryFile{
			{
				Source: "lib/cn.ts",
				Target: "lib/utils.ts",
			},
		},
	},
	{
		ID:          "ui/badge",
		Namespace:   "ui",
		Name:        "badge",
		Description: "Small status badge with brand color variants.",
		RegistryDependencies: []string{
			"lib/cn",
		},
		Files: []RegistryFile{
			{
				Source: "ui/badge.tsx",
				Target: "components/ui/badge.tsx",
				ReplaceImports: map[string]string{
					"../../../lib/cn": "{utils}",
				},
			},
		},
	},
	{
		ID:          "branding/logo",
		Namespace:   "branding",
		Name:        "logo",
		Description: "The chris-lally wordmark as an inline SVG component.",
		Files: []RegistryFile{
			{
				Source: "branding/logo.tsx",
				Target: "components/logo.tsx",
			},
		},
	},
	{
		ID:          "branding/logo-with-badge",
		Namespace:   "branding",
		Name:        "logo-with-badge",
		Description: "Wordmark paired with a configurable status badge.",
		Dependencies: []string{
			"clsx",
			"tailwind-merge",
		},
		RegistryDependencies: []string{
			"lib/cn",
			"ui/badge",
			"branding/logo",
		},
		Files: []RegistryFile{
			{
				Source: "branding/logo-with-badge.tsx",
				Target: "components/logo-with-badge.tsx",
				ReplaceImports: map[string]string{
					"../../../lib/cn": "{utils}",
					"../ui/badge":     "{ui}/badge",
				},
			},
		},
	},
	{
		ID:          "branding/brand-page",
		Namespace:   "branding",
		Name:        "brand-page",
		Description: "Standalone brand showcase page for Next.js app routers.",
		RegistryDependencies: []string{
			"branding/logo-with-badge",
		},
		Files: []RegistryFile{
			{
				Source: "app/brand/page.tsx",
				Target: "app/brand/page.tsx",
				ReplaceImports: map[string]string{
					"../../components/logo-with-badge": "{components}/logo-with-badge",
				},
			},
		},
	},
	{
		ID:          "hooks/use-copy-to-clipboard",
		Namespace:   "hooks",
		Name:        "use-copy-to-clipboard",
		Description: "React hook wrapping the async clipboard API with a copied flag.",
		Files: []RegistryFile{
			{
				Source: "hooks/use-copy-to-clipboard.ts",
				Target: "hooks/use-copy-to-clipboard.ts",
			},
		},
	},
}
