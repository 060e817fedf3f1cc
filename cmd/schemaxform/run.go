package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/kschead/schemaxform"
	"github.com/kschead/schemaxform/codegen/gocodegen"
	"github.com/kschead/schemaxform/codegen/jscodegen"
	"github.com/kschead/schemaxform/codegen/tscodegen"
	"github.com/kschead/schemaxform/internal/clilog"
	"github.com/kschead/schemaxform/internal/errlocale"
	"github.com/kschead/schemaxform/internal/loader"
	"github.com/kschead/schemaxform/ir"
	"github.com/kschead/schemaxform/search"
)

var errUnknownTarget = errors.New("unknown target language")

// Process exit codes.
const (
	exitOK          = 0
	exitIOError     = 1
	exitParseError  = 2
	exitNoPathError = 3
)

// exitError carries a fixed process exit code alongside the usual error
// chain, so main can report one without run needing to touch os.Exit
// itself.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error { return &exitError{code: code, err: err} }

type runConfig struct {
	target  string
	arg     string
	retvar  string
	locale  string
	logging *clilog.Config
}

func newRunConfig() *runConfig {
	return &runConfig{logging: clilog.NewConfig()}
}

func (c *runConfig) registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.target, "target", "js", "target language: js, ts, or go")
	flags.StringVar(&c.arg, "arg", "input", "name of the generated function's parameter")
	flags.StringVar(&c.retvar, "retvar", "output", "name of the generated function's return variable")
	flags.StringVar(&c.locale, "locale", "en", "locale for diagnostic messages")
	c.logging.RegisterFlags(flags)
}

func run(cfg *runConfig, sourcePath, targetPath string, stdout, stderr io.Writer) error {
	handler, err := cfg.logging.NewHandler(stderr)
	if err != nil {
		return fail(exitIOError, err)
	}
	logger := slog.New(handler)

	loc, err := errlocale.New()
	if err != nil {
		return fail(exitIOError, err)
	}

	diag := func(code int, err error) error {
		msg := loc.Message(cfg.locale, err)
		logger.Error("schemaxform: failed", "error", err)
		printDiagnostic(stderr, msg)
		return fail(code, err)
	}

	sourceVal, err := loader.Load(sourcePath)
	if err != nil {
		return diag(exitIOError, err)
	}
	targetVal, err := loader.Load(targetPath)
	if err != nil {
		return diag(exitIOError, err)
	}

	sourceSchema, err := schemaxform.Parse(sourceVal)
	if err != nil {
		return diag(exitParseError, err)
	}
	targetSchema, err := schemaxform.Parse(targetVal)
	if err != nil {
		return diag(exitParseError, err)
	}

	prog, err := search.NewSearcher().Find(sourceSchema, targetSchema)
	if err != nil {
		if errors.Is(err, search.ErrNoPath) {
			return diag(exitNoPathError, err)
		}
		return diag(exitIOError, err)
	}

	src, err := generate(cfg.target, prog, cfg.arg, cfg.retvar)
	if err != nil {
		return diag(exitIOError, err)
	}

	fmt.Fprintln(stdout, src)
	logger.Debug("schemaxform: wrote transform", "target", cfg.target, "instructions", len(prog))
	return nil
}

func generate(target string, prog ir.Program, arg, retvar string) (string, error) {
	switch target {
	case "js", "":
		return jscodegen.Generate(prog, arg, retvar), nil
	case "ts":
		return tscodegen.Generate(prog, arg, retvar), nil
	case "go":
		return gocodegen.Generate(prog, arg, retvar)
	default:
		return "", fmt.Errorf("%w: %q", errUnknownTarget, target)
	}
}

func printDiagnostic(w io.Writer, msg string) {
	c := color.New(color.FgRed)
	c.EnableColor()
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		c.DisableColor()
	}
	c.Fprintln(w, msg)
}
