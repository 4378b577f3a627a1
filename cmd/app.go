package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/leonardinius/lispcalc/internal/calcerrors"
	"github.com/leonardinius/lispcalc/internal/config"
	"github.com/leonardinius/lispcalc/internal/interpreter"
)

// maxLineSize bounds a single batch line read from stdin.
const maxLineSize = 64 << 20

// Exit codes, following sysexits.h.
const (
	ExitOK     = 0
	ExitUsage  = 64
	ExitData   = 65
	ExitIOErr  = 74
	ExitConfig = 78
)

var (
	errUsage  = errors.New("Usage: lispcalc [flags] [script | evaluate <expr> | tokenize <expr> | parse [-format sexpr|rpn] <expr> | help]")
	errConfig = errors.New("config error")
)

type LispApp struct {
	err      error
	opts     *appOpts
	cfg      config.Config
	logger   zerolog.Logger
	reporter calcerrors.ErrReporter
	options  []interpreter.InterpreterOption
}

func NewLispApp(options ...AppOption) *LispApp {
	opts := newAppOpts(options...)
	return &LispApp{
		opts:     opts,
		cfg:      config.Default(),
		logger:   zerolog.Nop(),
		reporter: calcerrors.NewErrReporter(opts.stderr),
	}
}

func (app *LispApp) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *LispApp) Main(args []string) int {
	fs := flag.NewFlagSet("lispcalc", flag.ContinueOnError)
	fs.SetOutput(app.opts.stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	logLevel := fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), errUsage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if err := app.configure(*configPath, *logLevel); err != nil {
		app.reportError(err)
		return app.exitCode()
	}

	var err error
	rest := fs.Args()
	switch {
	case len(rest) == 0:
		err = app.runStdin()
	case len(rest) == 1 && rest[0] == "help":
		fs.SetOutput(app.opts.stdout)
		fs.Usage()
		return ExitOK
	case len(rest) == 2 && rest[0] == "evaluate":
		err = app.run(rest[1])
	case len(rest) == 2 && rest[0] == "tokenize":
		err = app.tokenize(rest[1])
	case len(rest) >= 2 && rest[0] == "parse":
		err = app.parse(rest[1:])
	case len(rest) == 1:
		err = app.runFile(rest[0])
	default:
		err = errUsage
	}

	if err != nil {
		app.reportError(err)
	}

	return app.exitCode()
}

func (app *LispApp) exitCode() int {
	if app.err == nil {
		return ExitOK
	}
	if errors.Is(app.err, errUsage) {
		return ExitUsage
	}
	if errors.Is(app.err, errConfig) {
		return ExitConfig
	}
	if _, ok := calcerrors.KindOf(app.err); ok {
		return ExitData
	}
	return ExitIOErr
}

func (app *LispApp) resetError() {
	app.err = nil
}

// configure loads the config file and applies flag overrides.
func (app *LispApp) configure(configPath, logLevel string) error {
	required := configPath != ""
	if !required {
		configPath = app.opts.defaultConfigPath()
	}

	cfg, err := config.Load(configPath, required)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	mode, err := cfg.ArithmeticMode()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	app.cfg = cfg
	app.logger = zerolog.New(zerolog.ConsoleWriter{Out: app.opts.stderr}).
		With().Timestamp().Str("service", "lispcalc").Logger().
		Level(level)
	app.options = []interpreter.InterpreterOption{
		interpreter.WithLogger(app.logger),
		interpreter.WithArithmetic(mode),
	}

	app.logger.Debug().
		Str("config", configPath).
		Str("arithmetic", mode.String()).
		Msg("configured")

	return nil
}

func (app *LispApp) runStdin() error {
	if app.opts.isTerminal() {
		return app.runPrompt()
	}
	return app.runBatch(app.opts.stdin)
}

func (app *LispApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      app.cfg.Prompt,
		HistoryFile: app.cfg.HistoryFile,
		Stdout:      app.opts.stdout,
		Stderr:      app.opts.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		err = app.run(line)
		if err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

// runBatch evaluates every non-empty line of r and stops at the first error.
func (app *LispApp) runBatch(r io.Reader) error {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for lines.Scan() {
		line := strings.TrimRight(lines.Text(), "\r")
		if line == "" {
			continue
		}
		if err := app.run(line); err != nil {
			return err
		}
	}
	return lines.Err()
}

func (app *LispApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(strings.TrimRight(string(bytes), "\r\n"))
}

func (app *LispApp) run(input string) error {
	out, err := interpreter.Run(input, app.options...)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, out)
	return nil
}
