package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiscouncil/registry-lint/pkg/logger"
	"github.com/aiscouncil/registry-lint/pkg/registry"
)

var packagesCmdLog = logger.New("cli:packages")

// DefaultPackagesPath is validated when no path argument is given.
const DefaultPackagesPath = "registry/packages.json"

// NewPackagesCommand creates the packages command
func NewPackagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packages [path]",
		Short: "Validate the package marketplace registry",
		Long: `Validate the package marketplace registry against the registry rules.

Checks package names and versions, type and tier vocabularies, pricing and
seller consistency, and verification badges.

Examples:
  registry-lint packages
  registry-lint packages registry/packages.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultPackagesPath
			if len(args) > 0 {
				path = args[0]
			}
			return RunPackages(path)
		},
	}
}

// RunPackages validates the package registry file and prints the report.
func RunPackages(path string) error {
	packagesCmdLog.Printf("Validating package registry: %s", path)

	doc, err := registry.LoadDocument(path)
	if err != nil {
		return reportFailure("PACKAGES", []string{err.Error()})
	}

	if errs := registry.ValidatePackages(doc); len(errs) > 0 {
		return reportFailure("PACKAGES", errs)
	}

	reportSuccess("PACKAGES", fmt.Sprintf("%d packages validated", arrayLen(doc, "packages")))
	return nil
}
