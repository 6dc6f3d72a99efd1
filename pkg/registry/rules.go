// Package registry validates the aiscouncil registry documents: the model
// catalog, the package marketplace, themes, templates, and standalone
// package manifests.
//
// Every validator is a pure function from a decoded JSON document to a list
// of human-readable error strings. Validators never stop at the first
// failure: every check that can run independently of the others runs, so a
// single invocation surfaces the complete defect list. Only structural
// failures (unreadable file, malformed JSON, non-object root) short-circuit.
package registry

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Required field sets per record kind.
var (
	RequiredModelFields    = []string{"id", "name", "provider", "context", "maxOutput", "pricing", "capabilities", "tier"}
	RequiredProviderFields = []string{"name", "baseUrl", "authType", "format"}
)

// Allowed vocabularies. Order is the order reported in error messages.
var (
	AllowedCapabilities = []string{"vision", "tools", "streaming", "json_mode", "reasoning", "code"}
	AllowedTiers        = []string{"free", "paid", "enterprise"}

	AllowedPackageTypes      = []string{"plugin", "addon", "mini-program"}
	AllowedRegistryTiers     = []string{"community", "ai-verified", "verified", "platform"}
	AllowedVerificationTiers = []string{"quick", "full", "deep"}
	AllowedPermissions       = []string{
		"storage", "chat:read", "chat:write", "config:read", "config:write",
		"auth:read", "ui:toast", "ui:modal", "hooks:action", "hooks:filter",
		"network:fetch", "secrets:sync",
	}

	AllowedCouncilStyles = []string{"research", "compare", "arena", "moa", "router", "debate", "consensus"}

	AllowedSidebarPanels  = []string{"left", "chat", "right"}
	AllowedWelcomeActions = []string{"focus-input", "open-config", "new-council", "open-settings"}
)

// Shape patterns for string-valued fields.
var (
	nameRe    = regexp.MustCompile(`^[a-z0-9-]+$`)
	versionRe = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	hashRe    = regexp.MustCompile(`^[0-9a-f]{64}$`)
	dateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	jobIDRe   = regexp.MustCompile(`^ver_[a-zA-Z0-9]+$`)

	cssPropNameRe = regexp.MustCompile(`^--[a-z][-a-z0-9]+$`)
)

// MaxNameLength bounds package and manifest names.
const MaxNameLength = 64

// allowedList renders a vocabulary for inclusion in an error message.
func allowedList(values []string) string {
	return strings.Join(values, ", ")
}

// isAllowed reports whether value is a member of the vocabulary.
func isAllowed(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}

// missingFields returns the required fields absent from the record,
// in the declared order of the required set.
func missingFields(record map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := record[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// stringField returns the record's field as a string, or fallback when the
// field is absent or not a string. Used for record prefixes in messages.
func stringField(record map[string]any, field, fallback string) string {
	if v, ok := record[field].(string); ok {
		return v
	}
	return fallback
}

// numberValue extracts a numeric value from a decoded JSON or YAML scalar.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// sortedKeys returns the map's keys in sorted order so iteration-dependent
// error output is deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// recordPrefix builds the standard "Kind [i] 'id'" message prefix.
func recordPrefix(kind string, index int, id string) string {
	return fmt.Sprintf("%s [%d] '%s'", kind, index, id)
}
