// This file validates the theme registry (themes.json).
//
// # Checks
//
//   - Top-level structure: version marker, themes array
//   - Themes: id presence and uniqueness, name presence
//   - light/dark blocks: CSS custom-property naming, string-typed values,
//     forbidden-CSS and XSS denylist scans on every value
//   - layout.sidebarOrder: panel vocabulary
//   - css: string-typed, bounded length, both denylist scans
//
// The two denylist scans run independently everywhere: a value like
// url(javascript:alert(1)) is reported by both.

package registry

import (
	"fmt"

	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var themesLog = logger.New("registry:themes")

// MaxCustomCSSLength bounds a theme's custom CSS block.
const MaxCustomCSSLength = 50000

// ValidateThemesFile loads and validates a theme registry file.
// Structural failures produce a single-element error list.
func ValidateThemesFile(path string) []string {
	doc, err := LoadDocument(path)
	if err != nil {
		return []string{err.Error()}
	}
	return ValidateThemes(doc)
}

// ValidateThemes validates a decoded theme registry document and returns
// the complete list of violations.
func ValidateThemes(doc map[string]any) []string {
	var errors []string

	if _, ok := doc["version"]; !ok {
		errors = append(errors, "Missing top-level 'version' field")
	}
	themesVal, ok := doc["themes"]
	if !ok {
		errors = append(errors, "Missing 'themes' array")
		return errors
	}
	themes, ok := themesVal.([]any)
	if !ok {
		errors = append(errors, "'themes' must be an array")
		return errors
	}

	themesLog.Printf("Validating %d themes", len(themes))

	seenIDs := make(map[string]bool)
	for i, entry := range themes {
		theme, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Theme [%d]: must be an object", i))
			continue
		}
		prefix := recordPrefix("Theme", i, stringField(theme, "id", "?"))

		if idVal, ok := theme["id"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'id'", prefix))
		} else if id := fmt.Sprintf("%v", idVal); seenIDs[id] {
			errors = append(errors, fmt.Sprintf("%s: duplicate theme ID", prefix))
		} else {
			seenIDs[id] = true
		}

		if _, ok := theme["name"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'name'", prefix))
		}

		for _, mode := range []string{"light", "dark"} {
			errors = append(errors, validateThemeProperties(theme, mode, prefix)...)
		}
		errors = append(errors, validateThemeLayout(theme, prefix)...)
		errors = append(errors, validateCustomCSS(theme, prefix)...)
	}

	themesLog.Printf("Theme registry validation complete: %d error(s)", len(errors))
	return errors
}

// validateThemeProperties checks one mode block (light or dark): property
// naming, string typing, and the denylist scans on each value.
func validateThemeProperties(theme map[string]any, mode, prefix string) []string {
	raw, ok := theme[mode]
	if !ok {
		return nil
	}
	props, isObj := raw.(map[string]any)
	if !isObj {
		return []string{fmt.Sprintf("%s: '%s' must be an object", prefix, mode)}
	}

	var errors []string
	for _, propName := range sortedKeys(props) {
		if !cssPropNameRe.MatchString(propName) {
			errors = append(errors, fmt.Sprintf("%s: %s property name '%s' must match --[a-z][-a-z0-9]+", prefix, mode, propName))
		}
		value, isStr := props[propName].(string)
		if !isStr {
			errors = append(errors, fmt.Sprintf("%s: %s property '%s' value must be a string", prefix, mode, propName))
			continue
		}
		if ContainsForbiddenCSS(value) {
			errors = append(errors, fmt.Sprintf("%s: %s property '%s' contains forbidden value pattern (url(), expression(), javascript:, @import)", prefix, mode, propName))
		}
		if ContainsXSS(value) {
			errors = append(errors, fmt.Sprintf("%s: %s property '%s' contains XSS pattern", prefix, mode, propName))
		}
	}
	return errors
}

func validateThemeLayout(theme map[string]any, prefix string) []string {
	raw, ok := theme["layout"]
	if !ok {
		return nil
	}
	layout, isObj := raw.(map[string]any)
	if !isObj {
		return []string{fmt.Sprintf("%s: 'layout' must be an object", prefix)}
	}

	orderRaw, ok := layout["sidebarOrder"]
	if !ok {
		return nil
	}
	order, isList := orderRaw.([]any)
	if !isList {
		return []string{fmt.Sprintf("%s: layout.sidebarOrder must be an array", prefix)}
	}

	var errors []string
	for _, val := range order {
		panel, ok := val.(string)
		if !ok {
			panel = fmt.Sprintf("%v", val)
		}
		if !isAllowed(panel, AllowedSidebarPanels) {
			errors = append(errors, fmt.Sprintf("%s: layout.sidebarOrder contains invalid panel '%s' (allowed: %s)", prefix, panel, allowedList(AllowedSidebarPanels)))
		}
	}
	return errors
}

// validateCustomCSS checks the free-form css block: type, length, and both
// denylist scans. The scans run independently here so a block tripping both
// is reported twice.
func validateCustomCSS(theme map[string]any, prefix string) []string {
	raw, ok := theme["css"]
	if !ok {
		return nil
	}
	css, isStr := raw.(string)
	if !isStr {
		return []string{fmt.Sprintf("%s: 'css' must be a string", prefix)}
	}
	if len(css) > MaxCustomCSSLength {
		return []string{fmt.Sprintf("%s: css exceeds %d characters", prefix, MaxCustomCSSLength)}
	}

	var errors []string
	if ContainsForbiddenCSS(css) {
		errors = append(errors, fmt.Sprintf("%s: css contains forbidden pattern (url(), expression(), javascript:, @import)", prefix))
	}
	if ContainsXSS(css) {
		errors = append(errors, fmt.Sprintf("%s: css contains XSS pattern", prefix))
	}
	return errors
}
