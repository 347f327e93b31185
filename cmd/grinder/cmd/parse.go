package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/grinder/internal/ast"
	cerrors "github.com/cwbudde/grinder/internal/errors"
	"github.com/cwbudde/grinder/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpressionFlag bool
	parseDumpAST        bool
	parseJSON           bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and display the resulting AST",
	Long: `Parse ECMAScript source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse the source
given as the argument instead. Use --dump-ast to show the tree's
node hierarchy, or --json to print the ESTree-compatible JSON shape.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpressionFlag, "eval", "e", false, "parse inline source from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the AST's node hierarchy")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the AST as ESTree-shaped JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input, filename string
	var err error

	switch {
	case parseExpressionFlag:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input, filename = args[0], "<eval>"
	default:
		input, filename, err = readSource(args)
		if err != nil {
			return err
		}
	}

	program, err := parser.Parse(input)
	if err != nil {
		cerr := cerrors.FromError(err, input, filename)
		return &ExitError{Code: 1, Err: cerr}
	}

	switch {
	case parseJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.ToJSON(program))
	case parseDumpAST:
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	default:
		fmt.Println(program.String())
	}
	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	indentStr := ""
	for i := 0; i < indent; i++ {
		indentStr += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", indentStr, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", indentStr)
		dumpASTNode(n.Expr, indent+1)
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", indentStr, len(n.Body))
		for _, stmt := range n.Body {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", indentStr)
		dumpASTNode(n.Test, indent+1)
		dumpASTNode(n.Consequent, indent+1)
		if n.Alternate != nil {
			dumpASTNode(n.Alternate, indent+1)
		}
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration (%s, %d declarators)\n", indentStr, n.Kind, len(n.Declarations))
		for _, d := range n.Declarations {
			fmt.Printf("%s  %s\n", indentStr, d.ID.String())
			if d.Init != nil {
				dumpASTNode(d.Init, indent+2)
			}
		}
	case *ast.FunctionDeclaration:
		name := ""
		if n.Function.ID != nil {
			name = n.Function.ID.Name
		}
		fmt.Printf("%sFunctionDeclaration: %s (%d params)\n", indentStr, name, len(n.Function.Params))
		dumpASTNode(n.Function.Body, indent+1)
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", indentStr, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.LogicalExpression:
		fmt.Printf("%sLogicalExpression (%s)\n", indentStr, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryExpression:
		fmt.Printf("%sUnaryExpression (%s)\n", indentStr, n.Operator)
		dumpASTNode(n.Argument, indent+1)
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression (%d args)\n", indentStr, len(n.Arguments))
		dumpASTNode(n.Callee, indent+1)
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}
	case *ast.MemberExpression:
		fmt.Printf("%sMemberExpression (computed=%v)\n", indentStr, n.Computed)
		dumpASTNode(n.Object, indent+1)
		dumpASTNode(n.Property, indent+1)
	case *ast.Literal:
		fmt.Printf("%sLiteral: %s\n", indentStr, n.String())
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", indentStr, n.Name)
	default:
		fmt.Printf("%s%T: %s\n", indentStr, node, node.String())
	}
}
