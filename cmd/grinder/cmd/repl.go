package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	cerrors "github.com/cwbudde/grinder/internal/errors"
	"github.com/cwbudde/grinder/internal/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Colors mirror the feedback scheme used for interactive exploration:
// a prompt banner, a neutral echo, and errors in red.
var (
	replBanner = color.New(color.FgGreen)
	replInfo   = color.New(color.FgCyan)
	replError  = color.New(color.FgRed)
	replResult = color.New(color.FgYellow)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parse-and-inspect session",
	Long: `Start a REPL that parses each line you enter and prints its AST.

Type '.exit' or press Ctrl+D to quit. Use up/down arrows to navigate
command history.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	replBanner.Println("grinder: an ECMAScript 5 source-to-AST front end")
	replInfo.Println("Type an expression or statement and press enter.")
	replInfo.Println("Type '.exit' to quit.")

	rl, err := readline.New("grinder> ")
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Good bye!")
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good bye!")
			break
		}

		rl.SaveHistory(line)
		evalLine(line)
	}
	return nil
}

// evalLine parses one REPL line and prints its AST, recovering from a
// fatal ParseError so the session keeps running after a mistake.
func evalLine(line string) {
	defer func() {
		if r := recover(); r != nil {
			replError.Fprintf(os.Stdout, "[error] %v\n", r)
		}
	}()

	program, err := parser.Parse(line)
	if err != nil {
		cerr := cerrors.FromError(err, line, "<repl>")
		replError.Fprintf(os.Stdout, "[parse error] %s\n", cerr.Format(false))
		return
	}
	replResult.Fprintln(os.Stdout, program.String())
}
