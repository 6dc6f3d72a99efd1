// registry-lint validates the aiscouncil registry JSON files: the model
// catalog, the package marketplace, themes, templates, package manifests,
// and locale files. The bare command validates the model registry; each
// other document kind has its own subcommand. The process exits non-zero
// when any validated document has violations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiscouncil/registry-lint/pkg/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "registry-lint [path]",
	Short: "Lint the aiscouncil registry files",
	Long: `registry-lint checks the aiscouncil registry files against the registry
rules: required fields, allowed vocabularies, name/version/hash patterns,
cross-references, and content-safety scans.

Run without a subcommand to validate the model registry:

  registry-lint
  registry-lint registry/models.json

Validation failures are printed one per line and the process exits with
status 1.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return cli.RunModels(path)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the registry-lint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(cli.NewPackagesCommand())
	rootCmd.AddCommand(cli.NewThemesCommand())
	rootCmd.AddCommand(cli.NewTemplatesCommand())
	rootCmd.AddCommand(cli.NewManifestCommand())
	rootCmd.AddCommand(cli.NewLocaleCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Validation reports are already printed; anything else (usage
		// errors, bad flags) still needs to reach the user.
		var verr *cli.ValidationError
		if !errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
