// This file validates the package marketplace registry (packages.json).
//
// # Checks
//
//   - Top-level structure: version marker, packages array
//   - Packages: name presence and uniqueness, type and tier vocabularies,
//     semver-shaped versions, manifest URL presence
//   - Pricing: numeric non-negative price; paid packages must carry a
//     'seller' key (null means platform-owned and is permitted)
//   - Seller: object shape with name and id
//   - Verification badge: content hash, verification tier, ISO dates,
//     ver_ job id
//   - Tier rules: ai-verified requires a verification badge; platform
//     requires a null seller
//
// Unlike models, package checks are per-field independent: a missing name
// does not suppress the type or version checks for the same record.

package registry

import (
	"fmt"

	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var packagesLog = logger.New("registry:packages")

// ValidatePackagesFile loads and validates a package registry file.
// Structural failures produce a single-element error list.
func ValidatePackagesFile(path string) []string {
	doc, err := LoadDocument(path)
	if err != nil {
		return []string{err.Error()}
	}
	return ValidatePackages(doc)
}

// ValidatePackages validates a decoded package registry document and
// returns the complete list of violations.
func ValidatePackages(doc map[string]any) []string {
	var errors []string

	if _, ok := doc["version"]; !ok {
		errors = append(errors, "Missing top-level 'version' field")
	}
	packagesVal, ok := doc["packages"]
	if !ok {
		errors = append(errors, "Missing 'packages' array")
		return errors
	}
	packages, ok := packagesVal.([]any)
	if !ok {
		errors = append(errors, "'packages' must be an array")
		return errors
	}

	packagesLog.Printf("Validating %d packages", len(packages))

	seenNames := make(map[string]bool)
	for i, entry := range packages {
		pkg, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("Package [%d]: must be an object", i))
			continue
		}
		prefix := recordPrefix("Package", i, stringField(pkg, "name", "?"))

		if name, ok := pkg["name"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'name'", prefix))
		} else if nameStr := fmt.Sprintf("%v", name); seenNames[nameStr] {
			errors = append(errors, fmt.Sprintf("%s: duplicate package name", prefix))
		} else {
			seenNames[nameStr] = true
		}

		if typVal, ok := pkg["type"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'type'", prefix))
		} else if typ, _ := typVal.(string); !isAllowed(typ, AllowedPackageTypes) {
			errors = append(errors, fmt.Sprintf("%s: invalid type '%s'", prefix, typ))
		}

		if verVal, ok := pkg["version"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'version'", prefix))
		} else if ver, _ := verVal.(string); !versionRe.MatchString(ver) {
			errors = append(errors, fmt.Sprintf("%s: version must be semver", prefix))
		}

		if _, ok := pkg["manifest"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'manifest' URL", prefix))
		}

		if tierVal, ok := pkg["tier"]; ok {
			if tier, _ := tierVal.(string); !isAllowed(tier, AllowedRegistryTiers) {
				errors = append(errors, fmt.Sprintf("%s: invalid tier '%s' (allowed: %s)", prefix, tier, allowedList(AllowedRegistryTiers)))
			}
		}

		errors = append(errors, validatePackagePricing(pkg, prefix)...)
		errors = append(errors, validateSeller(pkg, prefix)...)
		errors = append(errors, validateVerificationBadge(pkg, prefix)...)
		errors = append(errors, validateTierRules(pkg, prefix)...)

		if cat, ok := pkg["category"]; ok {
			if _, isStr := cat.(string); !isStr {
				errors = append(errors, fmt.Sprintf("%s: category must be a string", prefix))
			}
		}
	}

	packagesLog.Printf("Package registry validation complete: %d error(s)", len(errors))
	return errors
}

// validatePackagePricing checks the optional price field and the
// paid-package seller requirement. A null seller is permitted: it marks a
// platform-owned package.
func validatePackagePricing(pkg map[string]any, prefix string) []string {
	raw, ok := pkg["price"]
	if !ok {
		return nil
	}

	var errors []string
	price, isNum := numberValue(raw)
	if !isNum {
		errors = append(errors, fmt.Sprintf("%s: price must be a number (cents)", prefix))
	} else if price < 0 {
		errors = append(errors, fmt.Sprintf("%s: price must be non-negative", prefix))
	}

	if isNum && price > 0 {
		if _, hasSeller := pkg["seller"]; !hasSeller {
			errors = append(errors, fmt.Sprintf("%s: paid packages require a 'seller' field (null for platform-owned, or {name, id} for third-party)", prefix))
		}
	}
	return errors
}

func validateSeller(pkg map[string]any, prefix string) []string {
	raw, ok := pkg["seller"]
	if !ok || raw == nil {
		return nil
	}

	seller, isObj := raw.(map[string]any)
	if !isObj {
		return []string{fmt.Sprintf("%s: seller must be an object or null", prefix)}
	}

	var errors []string
	if _, ok := seller["name"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: seller missing 'name'", prefix))
	}
	if _, ok := seller["id"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: seller missing 'id'", prefix))
	}
	return errors
}

// validateVerificationBadge checks the attached verification sub-object:
// content hash, verification tier, issue and expiry dates, and the review
// job id.
func validateVerificationBadge(pkg map[string]any, prefix string) []string {
	raw, ok := pkg["verification"]
	if !ok {
		return nil
	}

	v, isObj := raw.(map[string]any)
	if !isObj {
		return []string{fmt.Sprintf("%s: verification must be an object", prefix)}
	}

	var errors []string

	if hashVal, ok := v["hash"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: verification missing 'hash'", prefix))
	} else if hash, _ := hashVal.(string); !hashRe.MatchString(hash) {
		errors = append(errors, fmt.Sprintf("%s: verification hash must be 64 hex characters", prefix))
	}

	if tierVal, ok := v["tier"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: verification missing 'tier'", prefix))
	} else if tier, _ := tierVal.(string); !isAllowed(tier, AllowedVerificationTiers) {
		errors = append(errors, fmt.Sprintf("%s: invalid verification tier '%s' (allowed: %s)", prefix, tier, allowedList(AllowedVerificationTiers)))
	}

	for _, field := range []string{"date", "expires"} {
		if dateVal, ok := v[field]; !ok {
			errors = append(errors, fmt.Sprintf("%s: verification missing '%s'", prefix, field))
		} else if date, _ := dateVal.(string); !dateRe.MatchString(date) {
			errors = append(errors, fmt.Sprintf("%s: verification %s must be ISO 8601 (YYYY-MM-DD)", prefix, field))
		}
	}

	if jobVal, ok := v["job_id"]; !ok {
		errors = append(errors, fmt.Sprintf("%s: verification missing 'job_id'", prefix))
	} else if job, _ := jobVal.(string); !jobIDRe.MatchString(job) {
		errors = append(errors, fmt.Sprintf("%s: verification job_id must match ver_[a-zA-Z0-9]+", prefix))
	}

	return errors
}

// validateTierRules enforces the cross-field marketplace tier rules.
func validateTierRules(pkg map[string]any, prefix string) []string {
	var errors []string

	if tier, _ := pkg["tier"].(string); tier == "ai-verified" {
		if _, ok := pkg["verification"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: ai-verified tier requires a 'verification' object", prefix))
		}
	}

	if tier, _ := pkg["tier"].(string); tier == "platform" {
		if seller, ok := pkg["seller"]; ok && seller != nil {
			errors = append(errors, fmt.Sprintf("%s: platform tier requires seller to be null (platform-owned)", prefix))
		}
	}

	return errors
}
