package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackagesDoc() map[string]any {
	return map[string]any{
		"version": "2.0.0",
		"packages": []any{
			map[string]any{
				"name":     "weather-widget",
				"type":     "plugin",
				"version":  "1.2.3",
				"manifest": "https://packages.example.com/weather-widget/manifest.json",
				"tier":     "community",
			},
		},
	}
}

func pkgAt(doc map[string]any, i int) map[string]any {
	return doc["packages"].([]any)[i].(map[string]any)
}

func TestValidatePackagesValidDocument(t *testing.T) {
	assert.Empty(t, ValidatePackages(validPackagesDoc()))
}

func TestValidatePackagesFieldChecksAreIndependent(t *testing.T) {
	doc := validPackagesDoc()
	doc["packages"] = []any{map[string]any{}}

	errs := ValidatePackages(doc)
	assert.Contains(t, errs, "Package [0] '?': missing 'name'")
	assert.Contains(t, errs, "Package [0] '?': missing 'type'")
	assert.Contains(t, errs, "Package [0] '?': missing 'version'")
	assert.Contains(t, errs, "Package [0] '?': missing 'manifest' URL")
}

func TestValidatePackagesBasicFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(pkg map[string]any)
		wantErr string
	}{
		{
			name:    "invalid type",
			mutate:  func(p map[string]any) { p["type"] = "extension" },
			wantErr: "Package [0] 'weather-widget': invalid type 'extension'",
		},
		{
			name:    "version must be semver",
			mutate:  func(p map[string]any) { p["version"] = "1.2" },
			wantErr: "Package [0] 'weather-widget': version must be semver",
		},
		{
			name:    "invalid registry tier",
			mutate:  func(p map[string]any) { p["tier"] = "gold" },
			wantErr: "Package [0] 'weather-widget': invalid tier 'gold' (allowed: community, ai-verified, verified, platform)",
		},
		{
			name:    "price must be a number",
			mutate:  func(p map[string]any) { p["price"] = "free" },
			wantErr: "Package [0] 'weather-widget': price must be a number (cents)",
		},
		{
			name:    "price must be non-negative",
			mutate:  func(p map[string]any) { p["price"] = float64(-100) },
			wantErr: "Package [0] 'weather-widget': price must be non-negative",
		},
		{
			name:    "category must be a string",
			mutate:  func(p map[string]any) { p["category"] = float64(3) },
			wantErr: "Package [0] 'weather-widget': category must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validPackagesDoc()
			tt.mutate(pkgAt(doc, 0))
			errs := ValidatePackages(doc)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantErr, errs[0])
		})
	}
}

func TestValidatePackagesDuplicateName(t *testing.T) {
	doc := validPackagesDoc()
	dup := map[string]any{}
	for k, v := range pkgAt(doc, 0) {
		dup[k] = v
	}
	doc["packages"] = append(doc["packages"].([]any), any(dup))

	errs := ValidatePackages(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Package [1] 'weather-widget': duplicate package name", errs[0])
}

func TestValidatePackagesPaidRequiresSeller(t *testing.T) {
	doc := validPackagesDoc()
	pkg := pkgAt(doc, 0)
	pkg["price"] = float64(500)

	errs := ValidatePackages(doc)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "paid packages require a 'seller' field")

	// Explicit null seller means platform-owned and clears the error.
	pkg["seller"] = nil
	assert.Empty(t, ValidatePackages(doc))
}

func TestValidatePackagesSellerShape(t *testing.T) {
	doc := validPackagesDoc()
	pkg := pkgAt(doc, 0)
	pkg["seller"] = map[string]any{"name": "Acme"}

	errs := ValidatePackages(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Package [0] 'weather-widget': seller missing 'id'", errs[0])

	pkg["seller"] = "Acme"
	errs = ValidatePackages(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Package [0] 'weather-widget': seller must be an object or null", errs[0])
}

func TestValidatePackagesVerificationBadge(t *testing.T) {
	validBadge := func() map[string]any {
		return map[string]any{
			"hash":    strings.Repeat("ab", 32),
			"tier":    "full",
			"date":    "2025-06-01",
			"expires": "2026-06-01",
			"job_id":  "ver_abc123",
		}
	}

	t.Run("valid badge is clean", func(t *testing.T) {
		doc := validPackagesDoc()
		pkgAt(doc, 0)["verification"] = validBadge()
		assert.Empty(t, ValidatePackages(doc))
	})

	tests := []struct {
		name    string
		mutate  func(v map[string]any)
		wantErr string
	}{
		{
			name:    "hash must be 64 hex",
			mutate:  func(v map[string]any) { v["hash"] = "ABC123" },
			wantErr: "verification hash must be 64 hex characters",
		},
		{
			name:    "missing hash",
			mutate:  func(v map[string]any) { delete(v, "hash") },
			wantErr: "verification missing 'hash'",
		},
		{
			name:    "invalid tier",
			mutate:  func(v map[string]any) { v["tier"] = "shallow" },
			wantErr: "invalid verification tier 'shallow' (allowed: quick, full, deep)",
		},
		{
			name:    "date must be ISO",
			mutate:  func(v map[string]any) { v["date"] = "06/01/2025" },
			wantErr: "verification date must be ISO 8601 (YYYY-MM-DD)",
		},
		{
			name:    "expires must be ISO",
			mutate:  func(v map[string]any) { v["expires"] = "soon" },
			wantErr: "verification expires must be ISO 8601 (YYYY-MM-DD)",
		},
		{
			name:    "job id shape",
			mutate:  func(v map[string]any) { v["job_id"] = "job-1" },
			wantErr: "verification job_id must match ver_[a-zA-Z0-9]+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validPackagesDoc()
			badge := validBadge()
			tt.mutate(badge)
			pkgAt(doc, 0)["verification"] = badge

			errs := ValidatePackages(doc)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.wantErr)
		})
	}
}

func TestValidatePackagesTierRules(t *testing.T) {
	t.Run("ai-verified requires verification", func(t *testing.T) {
		doc := validPackagesDoc()
		pkgAt(doc, 0)["tier"] = "ai-verified"
		errs := ValidatePackages(doc)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "ai-verified tier requires a 'verification' object")
	})

	t.Run("platform requires null seller", func(t *testing.T) {
		doc := validPackagesDoc()
		pkg := pkgAt(doc, 0)
		pkg["tier"] = "platform"
		pkg["seller"] = map[string]any{"name": "Acme", "id": "acme"}
		errs := ValidatePackages(doc)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "platform tier requires seller to be null (platform-owned)")
	})

	t.Run("platform with null seller is clean", func(t *testing.T) {
		doc := validPackagesDoc()
		pkg := pkgAt(doc, 0)
		pkg["tier"] = "platform"
		pkg["seller"] = nil
		assert.Empty(t, ValidatePackages(doc))
	})
}

func TestValidatePackagesTopLevelStructure(t *testing.T) {
	errs := ValidatePackages(map[string]any{"version": "1"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Missing 'packages' array", errs[0])

	errs = ValidatePackages(map[string]any{"version": "1", "packages": "nope"})
	require.Len(t, errs, 1)
	assert.Equal(t, "'packages' must be an array", errs[0])
}
