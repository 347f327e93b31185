package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ExitError carries the process exit code a failure should produce,
// distinguishing a parse error (exit 1) from an I/O error (exit 2) so
// main can report the right status without each command calling
// os.Exit itself.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

var rootCmd = &cobra.Command{
	Use:   "grinder",
	Short: "An ECMAScript 5 source-to-AST front end",
	Long: `grinder tokenizes and parses ECMAScript 5 (plus early ES6 odds and
ends like let/const/arrow functions) source text into an ESTree-shaped AST.

It does not evaluate, type-check, or transform the program; it only
produces the tree. Downstream consumers (formatters, transpilers,
interpreters) walk the tree this front end hands back.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
