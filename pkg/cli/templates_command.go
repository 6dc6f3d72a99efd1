package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiscouncil/registry-lint/pkg/logger"
	"github.com/aiscouncil/registry-lint/pkg/registry"
)

var templatesCmdLog = logger.New("cli:templates")

// DefaultTemplatesPath is validated when no path argument is given.
const DefaultTemplatesPath = "registry/templates.json"

// NewTemplatesCommand creates the templates command
func NewTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates [path]",
		Short: "Validate the template registry",
		Long: `Validate the template registry against the registry rules.

Checks system prompts, prompt categories, and welcome screens for required
fields, length limits, and XSS-risk patterns in free-text fields.

Examples:
  registry-lint templates
  registry-lint templates registry/templates.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultTemplatesPath
			if len(args) > 0 {
				path = args[0]
			}
			return RunTemplates(path)
		},
	}
}

// RunTemplates validates the template registry file and prints the report.
func RunTemplates(path string) error {
	templatesCmdLog.Printf("Validating template registry: %s", path)

	doc, err := registry.LoadDocument(path)
	if err != nil {
		return reportFailure("TEMPLATES", []string{err.Error()})
	}

	if errs := registry.ValidateTemplates(doc); len(errs) > 0 {
		return reportFailure("TEMPLATES", errs)
	}

	summary := fmt.Sprintf("%d prompts, %d welcome screens validated",
		arrayLen(doc, "systemPrompts"), arrayLen(doc, "welcomeScreens"))
	reportSuccess("TEMPLATES", summary)
	return nil
}
