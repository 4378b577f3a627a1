package interpreter

import (
	"github.com/leonardinius/lispcalc/internal/parser"
	"github.com/leonardinius/lispcalc/internal/scanner"
)

// Run scans, parses and evaluates source, returning the decimal result.
// The first lexical, syntax, numeric or evaluation error stops the pipeline.
func Run(source string, options ...InterpreterOption) (string, error) {
	opts := newInterpreterOpts(options...)
	log := opts.logger

	log.Debug().Str("source", source).Msg("run")

	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		return "", err
	}
	log.Debug().Int("tokens", len(tokens)).Msg("scanned")

	expr, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return "", err
	}
	log.Debug().Stringer("tree", astString{expr}).Msg("parsed")

	i := &interpreter{opts: opts}
	out, err := i.Interpret(expr)
	if err != nil {
		return "", err
	}
	log.Debug().Str("result", out).Msg("evaluated")

	return out, nil
}

// astString prints the tree lazily, only when the log event is enabled.
type astString struct {
	expr parser.Expr
}

func (s astString) String() string {
	return parser.NewAstPrinter().Print(s.expr)
}
