package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var loaderLog = logger.New("registry:loader")

// LoadDocument reads a registry file and decodes it into a generic document.
// Failures here are structural: callers report the single returned error and
// perform no further checks on the document.
func LoadDocument(path string) (map[string]any, error) {
	loaderLog.Printf("Loading document: %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var root any
	if err := json.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root must be a JSON object")
	}

	loaderLog.Printf("Document loaded: %d top-level keys", len(doc))
	return doc, nil
}

// LoadManifest reads a single package manifest. Manifests may be authored as
// JSON or YAML; the extension decides the decoder and both produce the same
// generic document shape.
func LoadManifest(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return LoadDocument(path)
	}

	loaderLog.Printf("Loading YAML manifest: %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var root map[string]any
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("root must be a mapping")
	}
	return root, nil
}
