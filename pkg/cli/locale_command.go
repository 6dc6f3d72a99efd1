package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aiscouncil/registry-lint/pkg/console"
	"github.com/aiscouncil/registry-lint/pkg/locale"
	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var localeCmdLog = logger.New("cli:locale")

// DefaultLocaleSourcePath is the English source of truth used by --all mode
// when --source is not given.
const DefaultLocaleSourcePath = "registry/locale/en.json"

// NewLocaleCommand creates the locale command
func NewLocaleCommand() *cobra.Command {
	var all bool
	var sourcePath string

	cmd := &cobra.Command{
		Use:   "locale [file]",
		Short: "Validate translation files against the English source",
		Long: `Validate a locale file against the English source of truth.

Checks that every source key is translated, that no extra keys crept in,
that {placeholder} template variables are preserved, and that the _meta
block is consistent. With --all, every sibling .json file of the source
is validated in one run.

The source defaults to en.json beside the validated file, or to
` + DefaultLocaleSourcePath + ` in --all mode. Override with --source.

Examples:
  registry-lint locale registry/locale/de.json
  registry-lint locale --all
  registry-lint locale --all --source i18n/en.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) > 0 {
					return fmt.Errorf("--all does not take a file argument")
				}
				src := sourcePath
				if src == "" {
					src = DefaultLocaleSourcePath
				}
				return RunLocaleAll(src)
			}
			if len(args) == 0 {
				return fmt.Errorf("a locale file argument or --all is required")
			}
			src := sourcePath
			if src == "" {
				src = filepath.Join(filepath.Dir(args[0]), "en.json")
			}
			return RunLocale(args[0], src)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "validate every locale file beside the source")
	cmd.Flags().StringVar(&sourcePath, "source", "", "path to the English source of truth")
	return cmd
}

// RunLocale validates a single locale file against the source of truth.
func RunLocale(path, sourcePath string) error {
	localeCmdLog.Printf("Validating locale %s against %s", path, sourcePath)

	source, err := locale.LoadSource(sourcePath)
	if err != nil {
		fmt.Println(console.FormatErrorMessage(fmt.Sprintf("cannot load source of truth: %v", err)))
		return &ValidationError{Kind: "LOCALE", Count: 1}
	}

	errs := locale.ValidateFile(path, source)
	printLocaleResult(filepath.Base(path), errs)
	if len(errs) > 0 {
		return &ValidationError{Kind: "LOCALE", Count: len(errs)}
	}
	return nil
}

// RunLocaleAll validates every locale file beside the source, sequentially,
// and prints a combined summary.
func RunLocaleAll(sourcePath string) error {
	source, err := locale.LoadSource(sourcePath)
	if err != nil {
		fmt.Println(console.FormatErrorMessage(fmt.Sprintf("cannot load source of truth: %v", err)))
		return &ValidationError{Kind: "LOCALE", Count: 1}
	}

	files, err := locale.SiblingLocaleFiles(sourcePath)
	if err != nil {
		fmt.Println(console.FormatErrorMessage(err.Error()))
		return &ValidationError{Kind: "LOCALE", Count: 1}
	}
	if len(files) == 0 {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("No locale files found (besides %s)", filepath.Base(sourcePath))))
		return nil
	}

	localeCmdLog.Printf("Validating %d locale files against %s", len(files), sourcePath)

	totalIssues := 0
	for _, file := range files {
		errs := locale.ValidateFile(file, source)
		printLocaleResult(filepath.Base(file), errs)
		totalIssues += len(errs)
	}

	if totalIssues > 0 {
		fmt.Println()
		fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s found.", console.FormatCountMessage(totalIssues, "total issue", "total issues"))))
		return &ValidationError{Kind: "LOCALE", Count: totalIssues}
	}
	fmt.Println()
	fmt.Println(console.FormatSuccessMessage("All locale files valid."))
	return nil
}

// printLocaleResult prints the per-file pass/fail lines.
func printLocaleResult(name string, errs []string) {
	if len(errs) == 0 {
		fmt.Println(console.FormatSuccessMessage(name + " — OK"))
		return
	}
	fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s — %d issue(s):", name, len(errs))))
	for _, e := range errs {
		fmt.Println(console.FormatListItem(e))
	}
}
