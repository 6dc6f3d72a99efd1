// This file validates a single package manifest, independently of the
// aggregate package registry.
//
// # Checks
//
//   - name: present, lowercase kebab pattern, at most 64 characters
//   - version: present, MAJOR.MINOR.PATCH prefix
//   - abi: must equal 1 when present
//   - type: defaults to plugin, enum-checked, with type-specific required
//     fields (plugin: wasm + wasm_sha256; mini-program: entry + base_url;
//     addon: wasm or entry)
//   - permissions: array restricted to the allowed permission vocabulary
//   - description: at most 256 characters
//   - keywords: array of at most 10 entries

package registry

import (
	"fmt"
	"strings"

	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var manifestLog = logger.New("registry:manifest")

// ValidateManifestFile loads and validates a manifest file (.json, .yaml,
// or .yml). Structural failures produce a single-element error list.
func ValidateManifestFile(path string) []string {
	manifest, err := LoadManifest(path)
	if err != nil {
		return []string{err.Error()}
	}
	return ValidateManifest(manifest)
}

// ValidateManifest validates a decoded manifest object and returns the
// complete list of violations.
func ValidateManifest(manifest map[string]any) []string {
	var errors []string
	prefix := fmt.Sprintf("Manifest '%s'", stringField(manifest, "name", "?"))

	manifestLog.Printf("Validating manifest '%s'", stringField(manifest, "name", "?"))

	if nameVal, ok := manifest["name"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: missing 'name'", prefix))
	} else if name, _ := nameVal.(string); !nameRe.MatchString(name) {
		errors = append(errors, fmt.Sprintf("%s: name must match ^[a-z0-9-]+$ (got '%s')", prefix, name))
	} else if len(name) > MaxNameLength {
		errors = append(errors, fmt.Sprintf("%s: name exceeds %d characters", prefix, MaxNameLength))
	}

	if verVal, ok := manifest["version"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: missing 'version'", prefix))
	} else if ver, _ := verVal.(string); !versionRe.MatchString(ver) {
		errors = append(errors, fmt.Sprintf("%s: version must be semver (got '%s')", prefix, ver))
	}

	if abiVal, ok := manifest["abi"]; ok {
		if abi, isNum := numberValue(abiVal); !isNum || abi != 1 {
			errors = append(errors, fmt.Sprintf("%s: abi must be 1 (got %v)", prefix, abiVal))
		}
	}

	pkgType := stringField(manifest, "type", "plugin")
	if !isAllowed(pkgType, AllowedPackageTypes) {
		errors = append(errors, fmt.Sprintf("%s: invalid type '%s' (allowed: %s)", prefix, pkgType, allowedList(AllowedPackageTypes)))
	}
	errors = append(errors, validateTypeRequirements(manifest, pkgType, prefix)...)
	errors = append(errors, validatePermissions(manifest, prefix)...)

	if desc, ok := manifest["description"].(string); ok && len(desc) > 256 {
		errors = append(errors, fmt.Sprintf("%s: description exceeds 256 characters", prefix))
	}

	if raw, ok := manifest["keywords"]; ok {
		if keywords, isList := raw.([]any); !isList {
			errors = append(errors, fmt.Sprintf("%s: keywords must be an array", prefix))
		} else if len(keywords) > 10 {
			errors = append(errors, fmt.Sprintf("%s: max 10 keywords allowed", prefix))
		}
	}

	return errors
}

// validateTypeRequirements enforces the per-type required fields.
func validateTypeRequirements(manifest map[string]any, pkgType, prefix string) []string {
	var errors []string
	switch pkgType {
	case "mini-program":
		if _, ok := manifest["entry"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: mini-program requires 'entry' field", prefix))
		}
		if _, ok := manifest["base_url"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: mini-program requires 'base_url' field", prefix))
		}
	case "plugin":
		if _, ok := manifest["wasm"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: plugin requires 'wasm' field", prefix))
		}
		if shaVal, ok := manifest["wasm_sha256"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: plugin requires 'wasm_sha256' field", prefix))
		} else if sha, _ := shaVal.(string); sha != "" && !hashRe.MatchString(sha) {
			errors = append(errors, fmt.Sprintf("%s: wasm_sha256 must be 64 hex characters", prefix))
		}
	case "addon":
		_, hasWasm := manifest["wasm"]
		_, hasEntry := manifest["entry"]
		if !hasWasm && !hasEntry {
			errors = append(errors, fmt.Sprintf("%s: addon requires either 'wasm' or 'entry' field", prefix))
		}
	}
	return errors
}

func validatePermissions(manifest map[string]any, prefix string) []string {
	raw, ok := manifest["permissions"]
	if !ok {
		return nil
	}

	perms, isList := raw.([]any)
	if !isList {
		return []string{fmt.Sprintf("%s: permissions must be an array", prefix)}
	}

	var invalid []string
	for _, p := range perms {
		perm, ok := p.(string)
		if !ok {
			perm = fmt.Sprintf("%v", p)
		}
		if !isAllowed(perm, AllowedPermissions) {
			invalid = append(invalid, perm)
		}
	}
	if len(invalid) > 0 {
		return []string{fmt.Sprintf("%s: invalid permissions: %s", prefix, strings.Join(invalid, ", "))}
	}
	return nil
}
