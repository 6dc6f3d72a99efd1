// Package locale validates translation files against the English source of
// truth (en.json). A candidate locale must carry every key the source
// defines, no keys the source does not, and must preserve the {placeholder}
// template variables embedded in each value. Likely-untranslated values
// (empty or whitespace-only) are surfaced through the same error list;
// there is no separate severity channel.
package locale

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/aiscouncil/registry-lint/pkg/logger"
	"github.com/aiscouncil/registry-lint/pkg/registry"
)

var localeLog = logger.New("locale:validate")

// placeholderRe matches {name}-shaped template variables inside values.
var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// metaKey is the reserved metadata block, excluded from the key diff.
const metaKey = "_meta"

// LoadSource loads the authoritative English locale file.
func LoadSource(path string) (map[string]any, error) {
	return registry.LoadDocument(path)
}

// ValidateFile loads a candidate locale file and validates it against the
// source document. Structural failures produce a single-element error list.
func ValidateFile(path string, source map[string]any) []string {
	candidate, err := registry.LoadDocument(path)
	if err != nil {
		return []string{err.Error()}
	}
	return Validate(candidate, source)
}

// Validate diffs a decoded candidate locale against the source of truth and
// returns the complete list of issues.
func Validate(candidate, source map[string]any) []string {
	var errors []string

	errors = append(errors, validateMeta(candidate, source)...)

	sourceKeys := translationKeys(source)
	candidateKeys := translationKeys(candidate)

	localeLog.Printf("Diffing %d source keys against %d candidate keys", len(sourceKeys), len(candidateKeys))

	if missing := difference(sourceKeys, candidateKeys); len(missing) > 0 {
		errors = append(errors, fmt.Sprintf("Missing keys (%d): %s", len(missing), strings.Join(missing, ", ")))
	}
	if extra := difference(candidateKeys, sourceKeys); len(extra) > 0 {
		errors = append(errors, fmt.Sprintf("Extra keys (%d): %s", len(extra), strings.Join(extra, ", ")))
	}

	shared := intersection(sourceKeys, candidateKeys)
	for _, key := range shared {
		if msg := placeholderMismatch(key, source[key], candidate[key]); msg != "" {
			errors = append(errors, msg)
		}
	}
	for _, key := range shared {
		if val, ok := candidate[key].(string); ok && strings.TrimSpace(val) == "" {
			errors = append(errors, fmt.Sprintf("Key '%s': empty value (untranslated?)", key))
		}
	}

	return errors
}

// validateMeta checks the candidate's _meta block: language tag, display
// name, and the version marker, which must match the source exactly.
func validateMeta(candidate, source map[string]any) []string {
	var errors []string

	meta, _ := candidate[metaKey].(map[string]any)
	sourceMeta, _ := source[metaKey].(map[string]any)

	lang, _ := meta["lang"].(string)
	if lang == "" {
		errors = append(errors, "_meta.lang is missing")
	} else if _, err := language.Parse(lang); err != nil {
		errors = append(errors, fmt.Sprintf("_meta.lang '%s' is not a valid BCP 47 language tag", lang))
	}

	if name, _ := meta["name"].(string); name == "" {
		errors = append(errors, "_meta.name is missing")
	}

	got := meta["version"]
	expected := sourceMeta["version"]
	if !reflect.DeepEqual(got, expected) {
		errors = append(errors, fmt.Sprintf("_meta.version mismatch: got %v, expected %v", got, expected))
	}

	return errors
}

// placeholderMismatch compares the {placeholder} sets of the source and
// translated value for one key. Returns "" when they agree.
func placeholderMismatch(key string, sourceVal, candidateVal any) string {
	sourceVars := extractVars(sourceVal)
	candidateVars := extractVars(candidateVal)
	if slices.Equal(sourceVars, candidateVars) {
		return ""
	}

	var parts []string
	if missing := difference(sourceVars, candidateVars); len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing {%s}", strings.Join(missing, ", ")))
	}
	if extra := difference(candidateVars, sourceVars); len(extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra {%s}", strings.Join(extra, ", ")))
	}
	return fmt.Sprintf("Key '%s': template variable mismatch — %s", key, strings.Join(parts, "; "))
}

// extractVars returns the sorted, deduplicated placeholder names in a
// value. Non-string values have no placeholders.
func extractVars(v any) []string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var vars []string
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}
	sort.Strings(vars)
	return vars
}

// translationKeys returns the document's sorted keys minus the _meta block.
func translationKeys(doc map[string]any) []string {
	var keys []string
	for k := range doc {
		if k != metaKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// difference returns the sorted elements of a not present in b.
// Both inputs must be sorted.
func difference(a, b []string) []string {
	var diff []string
	for _, k := range a {
		if _, found := slices.BinarySearch(b, k); !found {
			diff = append(diff, k)
		}
	}
	return diff
}

// intersection returns the sorted elements present in both a and b.
// Both inputs must be sorted.
func intersection(a, b []string) []string {
	var shared []string
	for _, k := range a {
		if _, found := slices.BinarySearch(b, k); found {
			shared = append(shared, k)
		}
	}
	return shared
}

// SiblingLocaleFiles returns every .json file beside the source file except
// the source itself, sorted by name. Used by --all mode.
func SiblingLocaleFiles(sourcePath string) ([]string, error) {
	pattern := filepath.Join(filepath.Dir(sourcePath), "*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}

	sourceBase := filepath.Base(sourcePath)
	var files []string
	for _, m := range matches {
		if filepath.Base(m) != sourceBase {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
