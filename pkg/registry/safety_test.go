package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsForbiddenCSS(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#1a1a2e", false},
		{"rgba(0, 0, 0, 0.5)", false},
		{"url(https://evil.example/bg.png)", true},
		{"URL ( x )", true},
		{"expression(alert(1))", true},
		{"javascript:alert(1)", true},
		{"@import 'theme.css'", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsForbiddenCSS(tt.value), "value: %q", tt.value)
	}
}

func TestContainsXSS(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"A friendly greeting", false},
		{"<b>bold</b>", false},
		{"<script>alert(1)</script>", true},
		{"<SCRIPT src=x>", true},
		{"x onclick=evil()", true},
		{"img onerror=evil()", true},
		{"body onload=evil()", true},
		{"javascript:void(0)", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsXSS(tt.value), "value: %q", tt.value)
	}
}
