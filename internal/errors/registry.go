package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// Error codes.
const (
	CodeUnknownType           = "E100"
	CodeUnsupportedVariant    = "E101"
	CodeUnknownBackgroundMode = "E102"
	CodeInvalidConfig         = "E110"
	CodeConfigRead            = "E111"
	CodeExportFailed          = "E120"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Variant Errors (E100-E109)
	// ============================================

	CodeUnknownType: {
		Category:   CategoryVariant,
		Message:    "Unknown button type",
		Suggestion: "Use one of the button.Type constants, e.g. button.Primary.",
	},
	CodeUnsupportedVariant: {
		Category:   CategoryVariant,
		Message:    "Unsupported button variant",
		Suggestion: "Run `commonui variants` to list every supported type and background mode pair.",
	},
	CodeUnknownBackgroundMode: {
		Category:   CategoryVariant,
		Message:    "Unknown background mode",
		Suggestion: "Use one of Normal, Terminal, Red, Green, Blue, Black or Purple.",
	},

	// ============================================
	// Config Errors (E110-E119)
	// ============================================

	CodeInvalidConfig: {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Check commonui.json against the documented fields.",
	},
	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Cannot read configuration",
	},

	// ============================================
	// Export Errors (E120-E129)
	// ============================================

	CodeExportFailed: {
		Category:   CategoryExport,
		Message:    "Gallery export failed",
		Suggestion: "Verify the bucket exists and the AWS credentials in the environment can write to it.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns every registered code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for c := range registry {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
