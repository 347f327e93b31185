package cmd

import (
	"fmt"
	"io"
	"os"

	cerrors "github.com/cwbudde/grinder/internal/errors"
	"github.com/cwbudde/grinder/internal/lexer"
	"github.com/cwbudde/grinder/internal/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file or expression",
	Long: `Tokenize (lex) a program and print the resulting token stream.

This command is useful for debugging the lexer and understanding how
source code is tokenized, independent of the parser.

Examples:
  # Tokenize a script file
  grinder lex script.js

  # Tokenize inline source
  grinder lex -e "var x = 42;"

  # Show token types and positions
  grinder lex --show-type --show-pos script.js

  # Show only illegal tokens
  grinder lex --only-errors script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)
	tokenCount, errorCount := 0, 0
	prev := token.Token{} // zero value: Type is ILLEGAL, the program-start sentinel

	for {
		regexAllowed := lexer.RegexAllowedAfter(prev)
		tok, err := l.NextToken(regexAllowed)
		if err != nil {
			errorCount++
			cerr := cerrors.FromError(err, input, filename)
			if !onlyErrors {
				fmt.Printf("[%-12s] ⚠️  %s\n", "ILLEGAL", cerr.Format(false))
			} else {
				fmt.Println(cerr)
			}
			break
		}
		prev = tok

		if onlyErrors {
			if tok.Type == token.EOF {
				break
			}
			continue
		}

		tokenCount++
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-14s]", tok.Type)
	}
	if tok.Type == token.EOF {
		output += " EOF"
	} else if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	if tok.NewlineBefore {
		output += " (newline before)"
	}
	fmt.Println(output)
}

// readSource resolves the -e flag, a file argument, or stdin (in that
// order) into source text.
func readSource(args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", &ExitError{Code: 2, Err: fmt.Errorf("failed to read file %s: %w", args[0], err)}
		}
		return string(content), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", &ExitError{Code: 2, Err: fmt.Errorf("failed to read stdin: %w", err)}
		}
		return string(data), "<stdin>", nil
	}
}
