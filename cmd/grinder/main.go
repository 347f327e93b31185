// Command grinder drives the SourceReader/Lexer/Parser front end from the
// command line: tokenize a file, parse it to an ESTree-shaped AST (plain
// text or --json), or explore interactively in a REPL.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/grinder/cmd/grinder/cmd"
	cerrors "github.com/cwbudde/grinder/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		printError(err)
		code := 1
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		os.Exit(code)
	}
}

// printError renders a *cerrors.CompilerError with its source line and
// caret when one is available, falling back to the bare error text
// otherwise (e.g. an I/O error with no source to point into).
func printError(err error) {
	var cerr *cerrors.CompilerError
	if errors.As(err, &cerr) {
		fmt.Fprintln(os.Stderr, cerr.Format(true))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
