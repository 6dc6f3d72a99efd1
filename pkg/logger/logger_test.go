package logger

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureStderr captures stderr output during test execution
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestComputeEnabled(t *testing.T) {
	tests := []struct {
		name      string
		debugEnv  string
		namespace string
		enabled   bool
	}{
		{
			name:      "empty DEBUG disables all loggers",
			debugEnv:  "",
			namespace: "registry:models",
			enabled:   false,
		},
		{
			name:      "wildcard enables all loggers",
			debugEnv:  "*",
			namespace: "registry:models",
			enabled:   true,
		},
		{
			name:      "exact match enables logger",
			debugEnv:  "registry:models",
			namespace: "registry:models",
			enabled:   true,
		},
		{
			name:      "exact match different namespace disabled",
			debugEnv:  "registry:models",
			namespace: "registry:packages",
			enabled:   false,
		},
		{
			name:      "namespace wildcard enables matching loggers",
			debugEnv:  "registry:*",
			namespace: "registry:themes",
			enabled:   true,
		},
		{
			name:      "comma separated namespaces",
			debugEnv:  "locale,registry:models",
			namespace: "locale",
			enabled:   true,
		},
		{
			name:      "exclusion takes precedence",
			debugEnv:  "registry:*,-registry:safety",
			namespace: "registry:safety",
			enabled:   false,
		},
		{
			name:      "suffix wildcard",
			debugEnv:  "*:models",
			namespace: "registry:models",
			enabled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := debugEnv
			debugEnv = tt.debugEnv
			defer func() { debugEnv = orig }()

			assert.Equal(t, tt.enabled, computeEnabled(tt.namespace))
		})
	}
}

func TestPrintfDisabledProducesNoOutput(t *testing.T) {
	log := &Logger{namespace: "registry:test", enabled: false, lastLog: time.Now()}
	out := captureStderr(func() {
		log.Printf("should not appear: %d", 42)
	})
	assert.Empty(t, out)
}

func TestPrintfIncludesNamespaceAndMessage(t *testing.T) {
	log := &Logger{namespace: "registry:test", enabled: true, lastLog: time.Now()}
	out := captureStderr(func() {
		log.Printf("validated %d records", 3)
	})
	assert.Contains(t, out, "registry:test")
	assert.Contains(t, out, "validated 3 records")
	assert.Contains(t, out, "+")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{2 * time.Millisecond, "2ms"},
		{1300 * time.Millisecond, "1.3s"},
		{2*time.Minute + 5*time.Second, "2m5s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatElapsed(tt.d))
	}
}

func TestSlogHandlerRoutesThroughLogger(t *testing.T) {
	log := &Logger{namespace: "registry:slog", enabled: true, lastLog: time.Now()}
	out := captureStderr(func() {
		l := slog.New(NewSlogHandler(log))
		l.Info("loaded document", "records", 7)
	})
	assert.Contains(t, out, "[INFO] loaded document records=7")
	assert.True(t, strings.Contains(out, "registry:slog"))
}
