package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E101-E109)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "No components.json found",
		Detail:   "This project has not been initialized for lally components.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid components.json",
		Detail:   "The components.json file could not be parsed.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Could not write components.json",
		Detail:   "The components.json file could not be written.",
	},

	// ============================================
	// Lookup Errors (E111-E119)
	// ============================================

	"E111": {
		Category: CategoryRegistry,
		Message:  "Unknown namespace",
		Detail:   "The requested namespace does not exist in the registry.",
	},
	"E112": {
		Category: CategoryRegistry,
		Message:  "Unknown registry item",
		Detail:   "The requested item does not exist in the registry.",
	},
	"E113": {
		Category: CategoryRegistry,
		Message:  "Invalid item identifier",
		Detail:   "Registry items are addressed as namespace/name, e.g. branding/logo.",
	},

	// ============================================
	// Manifest & Export Errors (E121-E129)
	// ============================================

	"E121": {
		Category: CategoryExport,
		Message:  "Template source missing",
		Detail:   "A file declared in the registry manifest is absent from the template root. This indicates a corrupt installation of the lally tool itself, not a problem with your project.",
	},
	"E122": {
		Category: CategoryExport,
		Message:  "Could not write registry output",
		Detail:   "A registry JSON document could not be written to the output directory.",
	},

	// ============================================
	// Serve & Publish Errors (E131-E139)
	// ============================================

	"E131": {
		Category: CategoryServe,
		Message:  "Could not start registry server",
		Detail:   "The registry HTTP server failed to bind or serve.",
	},
	"E132": {
		Category: CategoryPublish,
		Message:  "Registry upload failed",
		Detail:   "A registry document could not be uploaded to the S3 bucket.",
	},
}
