package interpreter

import (
	"github.com/rs/zerolog"
)

type interpreterOpts struct {
	arithmetic Arithmetic
	logger     zerolog.Logger
}

var defaultInterpreterOpts = interpreterOpts{
	arithmetic: ArithmeticChecked,
	logger:     zerolog.Nop(),
}

type InterpreterOption func(*interpreterOpts)

// WithArithmetic sets the overflow policy.
func WithArithmetic(a Arithmetic) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.arithmetic = a
	}
}

// WithLogger sets the logger used to trace pipeline stages.
func WithLogger(logger zerolog.Logger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.logger = logger
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
