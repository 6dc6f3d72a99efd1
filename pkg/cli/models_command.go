package cli

import (
	"fmt"

	"github.com/aiscouncil/registry-lint/pkg/logger"
	"github.com/aiscouncil/registry-lint/pkg/registry"
)

var modelsCmdLog = logger.New("cli:models")

// DefaultModelsPath is validated when the root command gets no path argument.
const DefaultModelsPath = "registry/models.json"

// RunModels validates the model registry file and prints the report.
func RunModels(path string) error {
	if path == "" {
		path = DefaultModelsPath
	}
	modelsCmdLog.Printf("Validating model registry: %s", path)

	doc, err := registry.LoadDocument(path)
	if err != nil {
		return reportFailure("MODELS", []string{err.Error()})
	}

	if errs := registry.ValidateModels(doc); len(errs) > 0 {
		return reportFailure("MODELS", errs)
	}

	reportSuccess("MODELS", fmt.Sprintf("%d models validated", arrayLen(doc, "models")))
	return nil
}
