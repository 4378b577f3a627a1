package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/leonardinius/lispcalc/internal/config"
)

type appOpts struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	configPath func() string
	terminal   func() bool
}

var defaultAppOpts = appOpts{
	stdin:      os.Stdin,
	stdout:     os.Stdout,
	stderr:     os.Stderr,
	configPath: config.DefaultPath,
}

type AppOption func(*appOpts)

func WithStdin(stdin io.Reader) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

// WithDefaultConfigPath overrides where the config is looked up when -config is not given.
func WithDefaultConfigPath(path string) AppOption {
	return func(opts *appOpts) {
		opts.configPath = func() string { return path }
	}
}

// WithTerminal forces interactive (REPL) or batch handling of stdin.
func WithTerminal(terminal bool) AppOption {
	return func(opts *appOpts) {
		opts.terminal = func() bool { return terminal }
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.terminal == nil {
		stdin := opts.stdin
		opts.terminal = func() bool { return isTerminal(stdin) }
	}

	return &opts
}

func (o *appOpts) defaultConfigPath() string {
	return o.configPath()
}

func (o *appOpts) isTerminal() bool {
	return o.terminal()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
