// This file validates the model registry (models.json).
//
// # Checks
//
//   - Top-level structure: version marker, providers mapping, models array
//   - Providers: required field presence
//   - Models: required fields, duplicate ids, provider cross-reference,
//     tier and capability vocabularies, pricing and token-limit bounds
//   - Preset councils: style vocabulary, chairman index bounds, member
//     sub-records
//
// A model missing required fields is reported once and skipped: the
// remaining checks all dereference those fields. Every other check runs
// independently so one invocation reports the full defect list.

package registry

import (
	"fmt"
	"strings"

	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var modelsLog = logger.New("registry:models")

// ValidateModelsFile loads and validates a model registry file.
// Structural failures produce a single-element error list.
func ValidateModelsFile(path string) []string {
	doc, err := LoadDocument(path)
	if err != nil {
		return []string{err.Error()}
	}
	return ValidateModels(doc)
}

// ValidateModels validates a decoded model registry document and returns
// the complete list of violations.
func ValidateModels(doc map[string]any) []string {
	var errors []string

	if _, ok := doc["version"]; !ok {
		errors = append(errors, "Missing top-level 'version' field")
	}
	providersVal, hasProviders := doc["providers"]
	if !hasProviders {
		errors = append(errors, "Missing 'providers' object")
		return errors
	}
	modelsVal, hasModels := doc["models"]
	if !hasModels {
		errors = append(errors, "Missing 'models' array")
		return errors
	}

	providers, ok := providersVal.(map[string]any)
	if !ok {
		errors = append(errors, "'providers' must be an object")
		return errors
	}
	models, ok := modelsVal.([]any)
	if !ok {
		errors = append(errors, "'models' must be an array")
		return errors
	}

	modelsLog.Printf("Validating %d providers and %d models", len(providers), len(models))

	errors = append(errors, validateProviders(providers)...)
	errors = append(errors, validateModelRecords(models, providers)...)
	errors = append(errors, validatePresetCouncils(doc)...)

	modelsLog.Printf("Model registry validation complete: %d error(s)", len(errors))
	return errors
}

// validateProviders checks required fields on every provider entry.
// Iteration follows the providers' sorted ids so output is deterministic.
func validateProviders(providers map[string]any) []string {
	var errors []string
	for _, pid := range sortedKeys(providers) {
		prov, ok := providers[pid].(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Provider '%s': must be an object", pid))
			continue
		}
		if missing := missingFields(prov, RequiredProviderFields); len(missing) > 0 {
			errors = append(errors, fmt.Sprintf("Provider '%s': missing fields: %s", pid, strings.Join(missing, ", ")))
		}
	}
	return errors
}

func validateModelRecords(models []any, providers map[string]any) []string {
	var errors []string
	seenIDs := make(map[string]bool)

	for i, entry := range models {
		model, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Model [%d]: must be an object", i))
			continue
		}
		prefix := recordPrefix("Model", i, stringField(model, "id", "?"))

		if missing := missingFields(model, RequiredModelFields); len(missing) > 0 {
			errors = append(errors, fmt.Sprintf("%s: missing fields: %s", prefix, strings.Join(missing, ", ")))
			continue
		}

		id := stringField(model, "id", "?")
		if seenIDs[id] {
			errors = append(errors, fmt.Sprintf("%s: duplicate model ID", prefix))
		}
		seenIDs[id] = true

		provider := stringField(model, "provider", "")
		if _, ok := providers[provider]; !ok {
			errors = append(errors, fmt.Sprintf("%s: unknown provider '%s'", prefix, provider))
		}

		if tier := stringField(model, "tier", ""); !isAllowed(tier, AllowedTiers) {
			errors = append(errors, fmt.Sprintf("%s: invalid tier '%s' (allowed: %s)", prefix, tier, allowedList(AllowedTiers)))
		}

		if invalid := invalidCapabilities(model["capabilities"]); len(invalid) > 0 {
			errors = append(errors, fmt.Sprintf("%s: invalid capabilities: %s", prefix, strings.Join(invalid, ", ")))
		}

		if pricingNegative(model["pricing"]) {
			errors = append(errors, fmt.Sprintf("%s: pricing must be non-negative", prefix))
		}

		if n, ok := numberValue(model["context"]); !ok || n <= 0 {
			errors = append(errors, fmt.Sprintf("%s: context must be positive", prefix))
		}
		if n, ok := numberValue(model["maxOutput"]); !ok || n <= 0 {
			errors = append(errors, fmt.Sprintf("%s: maxOutput must be positive", prefix))
		}
	}
	return errors
}

// invalidCapabilities returns the capability tags outside the allowed
// vocabulary, in declaration order.
func invalidCapabilities(v any) []string {
	caps, ok := v.([]any)
	if !ok {
		return nil
	}
	var invalid []string
	for _, c := range caps {
		name, ok := c.(string)
		if !ok {
			name = fmt.Sprintf("%v", c)
		}
		if !isAllowed(name, AllowedCapabilities) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

// pricingNegative reports whether pricing.input or pricing.output is
// negative. Absent fields default to zero, which is permitted.
func pricingNegative(v any) bool {
	pricing, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, field := range []string{"input", "output"} {
		if n, ok := numberValue(pricing[field]); ok && n < 0 {
			return true
		}
	}
	return false
}

// validatePresetCouncils checks the optional presetCouncils array: required
// name/style/members, the style vocabulary, the chairman index, and the
// provider/model pair on every member.
func validatePresetCouncils(doc map[string]any) []string {
	raw, ok := doc["presetCouncils"]
	if !ok {
		return nil
	}
	councils, ok := raw.([]any)
	if !ok {
		return []string{"'presetCouncils' must be an array"}
	}

	modelsLog.Printf("Validating %d preset councils", len(councils))

	var errors []string
	for i, entry := range councils {
		pc, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("PresetCouncil [%d]: must be an object", i))
			continue
		}
		prefix := recordPrefix("PresetCouncil", i, stringField(pc, "name", "?"))

		for _, req := range []string{"name", "style", "members"} {
			if _, ok := pc[req]; !ok {
				errors = append(errors, fmt.Sprintf("%s: missing '%s'", prefix, req))
			}
		}

		if styleVal, ok := pc["style"]; ok {
			style, _ := styleVal.(string)
			if !isAllowed(style, AllowedCouncilStyles) {
				errors = append(errors, fmt.Sprintf("%s: invalid style '%s' (allowed: %s)", prefix, style, allowedList(AllowedCouncilStyles)))
			}
		}

		if desc, ok := pc["simpleDescription"]; ok {
			if _, isStr := desc.(string); !isStr {
				errors = append(errors, fmt.Sprintf("%s: simpleDescription must be a string", prefix))
			}
		}

		errors = append(errors, validateChairman(pc, prefix)...)
		errors = append(errors, validateCouncilMembers(pc, prefix)...)
	}
	return errors
}

// validateChairman checks that chairman, when present, is an integer or
// null, and when an integer is a valid index into the members array.
func validateChairman(pc map[string]any, prefix string) []string {
	raw, ok := pc["chairman"]
	if !ok || raw == nil {
		return nil
	}

	idx, isInt := integerValue(raw)
	if !isInt {
		return []string{fmt.Sprintf("%s: chairman must be an integer or null", prefix)}
	}

	members, ok := pc["members"].([]any)
	if !ok {
		return nil
	}
	if idx < 0 || idx >= len(members) {
		return []string{fmt.Sprintf("%s: chairman index %d out of range (0-%d)", prefix, idx, len(members)-1)}
	}
	return nil
}

// integerValue extracts an integer from a decoded JSON scalar. JSON decodes
// all numbers to float64, so a float is accepted only when it is whole.
func integerValue(v any) (int, bool) {
	n, ok := numberValue(v)
	if !ok || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}

func validateCouncilMembers(pc map[string]any, prefix string) []string {
	raw, ok := pc["members"]
	if !ok {
		return nil
	}

	members, isList := raw.([]any)
	if !isList || len(members) < 2 {
		return []string{fmt.Sprintf("%s: members must be an array with at least 2 entries", prefix)}
	}

	var errors []string
	for j, entry := range members {
		m, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("%s member [%d]: must be an object", prefix, j))
			continue
		}
		_, hasProvider := m["provider"]
		_, hasModel := m["model"]
		if !hasProvider || !hasModel {
			errors = append(errors, fmt.Sprintf("%s member [%d]: missing 'provider' or 'model'", prefix, j))
		}
	}
	return errors
}
