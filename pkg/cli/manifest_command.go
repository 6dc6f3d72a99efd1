package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiscouncil/registry-lint/pkg/logger"
	"github.com/aiscouncil/registry-lint/pkg/registry"
)

var manifestCmdLog = logger.New("cli:manifest")

// NewManifestCommand creates the manifest command
func NewManifestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <path>",
		Short: "Validate a single package manifest",
		Long: `Validate one package manifest independently of the package registry.

The manifest may be JSON or YAML. Checks the name and version patterns, the
ABI version, type-specific required fields, permissions, and length limits.

Examples:
  registry-lint manifest my-plugin/manifest.json
  registry-lint manifest my-plugin/manifest.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunManifest(args[0])
		},
	}
}

// RunManifest validates a single manifest file and prints the report.
func RunManifest(path string) error {
	manifestCmdLog.Printf("Validating manifest: %s", path)

	manifest, err := registry.LoadManifest(path)
	if err != nil {
		return reportFailure("MANIFEST", []string{err.Error()})
	}

	if errs := registry.ValidateManifest(manifest); len(errs) > 0 {
		return reportFailure("MANIFEST", errs)
	}

	name, _ := manifest["name"].(string)
	version, _ := manifest["version"].(string)
	pkgType, ok := manifest["type"].(string)
	if !ok {
		pkgType = "plugin"
	}
	reportSuccess("MANIFEST", fmt.Sprintf("'%s' v%s (%s)", name, version, pkgType))
	return nil
}
