package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/leonardinius/lispcalc/internal/parser"
	"github.com/leonardinius/lispcalc/internal/scanner"
)

// tokenize prints the scanned tokens of input, one per line.
func (app *LispApp) tokenize(input string) error {
	tokens, err := scanner.NewScanner(input).Scan()
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Fprintln(app.opts.stdout, tok)
	}
	return nil
}

// parse prints the expression tree of the last argument. Flags come before
// it, so an expression such as "- 10 3" is never read as a flag.
func (app *LispApp) parse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(app.opts.stderr)
	format := fs.String("format", "sexpr", "tree format (sexpr, rpn)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: lispcalc parse [-format sexpr|rpn] <expr>")
		fs.PrintDefaults()
	}

	source := args[len(args)-1]
	if isHelpFlag(source) {
		fs.Usage()
		return nil
	}

	if err := fs.Parse(args[:len(args)-1]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 0 {
		return errUsage
	}

	var render func(parser.Expr) string
	switch *format {
	case "sexpr":
		render = parser.NewAstPrinter().Print
	case "rpn":
		render = parser.NewRPNPrinter().Print
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, *format)
	}

	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		return err
	}

	expr, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, render(expr))
	return nil
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "-help", "--h", "--help":
		return true
	}
	return false
}
