package cli

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Kind: "MODELS", Count: 3}
	assert.Equal(t, "models validation failed with 3 error(s)", err.Error())
}

func TestReportFailure(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = reportFailure("PACKAGES", []string{"first problem", "second problem"})
	})

	assert.Contains(t, out, "PACKAGES FAILED — 2 error(s):")
	assert.Contains(t, out, "  - first problem")
	assert.Contains(t, out, "  - second problem")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "PACKAGES", verr.Kind)
	assert.Equal(t, 2, verr.Count)
}

func TestReportSuccess(t *testing.T) {
	out := captureStdout(t, func() {
		reportSuccess("MODELS", "12 models validated")
	})
	assert.Contains(t, out, "MODELS OK — 12 models validated")
}

func TestArrayLen(t *testing.T) {
	doc := map[string]any{
		"models":   []any{1, 2, 3},
		"packages": "not an array",
	}
	assert.Equal(t, 3, arrayLen(doc, "models"))
	assert.Equal(t, 0, arrayLen(doc, "packages"))
	assert.Equal(t, 0, arrayLen(doc, "absent"))
}
