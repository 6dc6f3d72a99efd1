package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiscouncil/registry-lint/pkg/logger"
	"github.com/aiscouncil/registry-lint/pkg/registry"
)

var themesCmdLog = logger.New("cli:themes")

// DefaultThemesPath is validated when no path argument is given.
const DefaultThemesPath = "registry/themes.json"

// NewThemesCommand creates the themes command
func NewThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes [path]",
		Short: "Validate the theme registry",
		Long: `Validate the theme registry against the registry rules.

Checks CSS custom-property naming, sidebar layout vocabulary, and scans
property values and custom CSS blocks for forbidden or XSS-risk patterns.

Examples:
  registry-lint themes
  registry-lint themes registry/themes.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultThemesPath
			if len(args) > 0 {
				path = args[0]
			}
			return RunThemes(path)
		},
	}
}

// RunThemes validates the theme registry file and prints the report.
func RunThemes(path string) error {
	themesCmdLog.Printf("Validating theme registry: %s", path)

	doc, err := registry.LoadDocument(path)
	if err != nil {
		return reportFailure("THEMES", []string{err.Error()})
	}

	if errs := registry.ValidateThemes(doc); len(errs) > 0 {
		return reportFailure("THEMES", errs)
	}

	reportSuccess("THEMES", fmt.Sprintf("%d themes validated", arrayLen(doc, "themes")))
	return nil
}
