// Package cli implements the registry-lint subcommands. Each command loads
// one document, runs the matching validator, prints a pass/fail report, and
// returns a non-nil error when violations were found; the entry point turns
// that error into a non-zero exit status. Commands never call os.Exit
// themselves.
package cli

import (
	"fmt"
	"strings"

	"github.com/aiscouncil/registry-lint/pkg/console"
)

// ValidationError signals that a validation report has already been printed
// and the process should exit non-zero without further output.
type ValidationError struct {
	Kind  string
	Count int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed with %d error(s)", strings.ToLower(e.Kind), e.Count)
}

// reportFailure prints the standard failure report: a styled header naming
// the document kind and the error count, then one bullet per violation.
// The returned error carries the count for the process exit status.
func reportFailure(kind string, errs []string) error {
	fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s FAILED — %d error(s):", kind, len(errs))))
	for _, e := range errs {
		fmt.Println(console.FormatListItem(e))
	}
	return &ValidationError{Kind: kind, Count: len(errs)}
}

// reportSuccess prints the standard success summary line.
func reportSuccess(kind, summary string) {
	fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("%s OK — %s", kind, summary)))
}

// arrayLen returns the length of a top-level array field, or 0 when the
// field is absent or not an array. Used only for success summaries.
func arrayLen(doc map[string]any, field string) int {
	if arr, ok := doc[field].([]any); ok {
		return len(arr)
	}
	return 0
}
