package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceDoc() map[string]any {
	return map[string]any{
		"_meta": map[string]any{
			"lang":    "en",
			"name":    "English",
			"version": "1.2.0",
		},
		"app.title":       "AIs Council",
		"chat.greeting":   "Hello, {name}!",
		"chat.tokenCount": "{used} of {limit} tokens",
	}
}

func frenchDoc() map[string]any {
	return map[string]any{
		"_meta": map[string]any{
			"lang":    "fr",
			"name":    "Français",
			"version": "1.2.0",
		},
		"app.title":       "AIs Council",
		"chat.greeting":   "Bonjour, {name} !",
		"chat.tokenCount": "{used} jetons sur {limit}",
	}
}

func TestValidateCleanTranslation(t *testing.T) {
	assert.Empty(t, Validate(frenchDoc(), sourceDoc()))
}

// The source compared against itself must always come back clean.
func TestValidateSourceAgainstItself(t *testing.T) {
	assert.Empty(t, Validate(sourceDoc(), sourceDoc()))
}

func TestValidateMissingAndExtraKeys(t *testing.T) {
	candidate := frenchDoc()
	delete(candidate, "chat.greeting")
	candidate["chat.farewell"] = "Au revoir"
	candidate["app.subtitle"] = "Conseil"

	errs := Validate(candidate, sourceDoc())
	require.Len(t, errs, 2)
	assert.Equal(t, "Missing keys (1): chat.greeting", errs[0])
	assert.Equal(t, "Extra keys (2): app.subtitle, chat.farewell", errs[1])
}

func TestValidatePlaceholderDrift(t *testing.T) {
	candidate := frenchDoc()
	candidate["chat.tokenCount"] = "{utilises} jetons sur {limit}"

	errs := Validate(candidate, sourceDoc())
	require.Len(t, errs, 1)
	assert.Equal(t, "Key 'chat.tokenCount': template variable mismatch — missing {used}; extra {utilises}", errs[0])
}

func TestValidatePlaceholderMissingOnly(t *testing.T) {
	candidate := frenchDoc()
	candidate["chat.greeting"] = "Bonjour !"

	errs := Validate(candidate, sourceDoc())
	require.Len(t, errs, 1)
	assert.Equal(t, "Key 'chat.greeting': template variable mismatch — missing {name}", errs[0])
}

func TestValidateEmptyValue(t *testing.T) {
	candidate := frenchDoc()
	candidate["app.title"] = "   "

	errs := Validate(candidate, sourceDoc())
	require.Len(t, errs, 1)
	assert.Equal(t, "Key 'app.title': empty value (untranslated?)", errs[0])
}

func TestValidateMeta(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		want []string
	}{
		{
			name: "missing lang",
			meta: map[string]any{"name": "Français", "version": "1.2.0"},
			want: []string{"_meta.lang is missing"},
		},
		{
			name: "invalid language tag",
			meta: map[string]any{"lang": "not a tag", "name": "Français", "version": "1.2.0"},
			want: []string{"_meta.lang 'not a tag' is not a valid BCP 47 language tag"},
		},
		{
			name: "missing name",
			meta: map[string]any{"lang": "fr", "version": "1.2.0"},
			want: []string{"_meta.name is missing"},
		},
		{
			name: "version mismatch",
			meta: map[string]any{"lang": "fr", "name": "Français", "version": "1.1.0"},
			want: []string{"_meta.version mismatch: got 1.1.0, expected 1.2.0"},
		},
		{
			name: "regional subtag is valid",
			meta: map[string]any{"lang": "pt-BR", "name": "Português (Brasil)", "version": "1.2.0"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := frenchDoc()
			candidate["_meta"] = tt.meta
			errs := Validate(candidate, sourceDoc())
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidateMetaBlockAbsent(t *testing.T) {
	candidate := frenchDoc()
	delete(candidate, "_meta")

	errs := Validate(candidate, sourceDoc())
	assert.Contains(t, errs, "_meta.lang is missing")
	assert.Contains(t, errs, "_meta.name is missing")
	assert.Contains(t, errs, "_meta.version mismatch: got <nil>, expected 1.2.0")
}

func TestValidateFileStructuralFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de.json")
	errs := ValidateFile(path, sourceDoc())
	require.Len(t, errs, 1)
	assert.Equal(t, "file not found: "+path, errs[0])
}

func TestSiblingLocaleFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"en.json", "fr.json", "de.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	files, err := SiblingLocaleFiles(filepath.Join(dir, "en.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "de.json"),
		filepath.Join(dir, "fr.json"),
	}, files)
}

func TestExtractVars(t *testing.T) {
	assert.Equal(t, []string{"limit", "used"}, extractVars("{used} of {limit}, {used} again"))
	assert.Nil(t, extractVars(42.0))
	assert.Nil(t, extractVars("no placeholders"))
}
