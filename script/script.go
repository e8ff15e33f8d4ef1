// Package script runs command line programs with standard flag parsing,
// env file loading, logging setup, signal handling and exit codes.
package script

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/logger"
)

// Option is a function that configures a Script.
type Option func(script *Script)

// Exit returns an error that makes the script exit with the given code
// without logging anything.
func Exit(code int) error {
	return &exitError{code: code}
}

// ExitWithError returns an error that makes the script log err and exit with code 1.
func ExitWithError(err error) error {
	return &exitError{err: err, code: 1}
}

// ExitWithErrorMessage is ExitWithError with a formatted message.
func ExitWithErrorMessage(msg string, args ...any) error {
	return &exitError{
		err:  fmt.Errorf(msg, args...), //nolint:err113
		code: 1,
	}
}

type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string {
	msg := "exit " + strconv.Itoa(e.code)

	if e.err != nil {
		return msg + ": " + e.err.Error()
	}

	return msg
}

func (e *exitError) Unwrap() error {
	return e.err
}

// LogOutput sets the output writer for the script's logger.
func LogOutput(writer io.Writer) Option {
	return func(script *Script) {
		script.loggerOpts = append(script.loggerOpts, logger.WithOutput(writer))
	}
}

// Flags makes the script parse args with fs instead of flag.CommandLine and
// os.Args. Parsing happens in Run, before env files are resolved.
func Flags(fs *flag.FlagSet, args []string) Option {
	return func(script *Script) {
		script.flags = fs
		script.args = args
	}
}

// WithEnvFileProvider layers an env file (.env, .json or .yaml) over the
// process environment for every envutil reader using the script's context.
// The path is resolved after flag parsing, so it can come from a flag. An
// empty path is skipped and a missing file fails the run.
func WithEnvFileProvider(provider func() string) Option {
	return func(script *Script) {
		script.envFiles = append(script.envFiles, provider)
	}
}

// Script represents a runnable script with configured logging and signal handling.
type Script struct {
	name       string
	flags      *flag.FlagSet
	args       []string
	envFiles   []func() string
	loggerOpts []logger.Option
}

// New creates a Script with the given name and options.
func New(scriptName string, opts ...Option) *Script {
	script := &Script{
		name: scriptName,
	}

	for _, opt := range opts {
		opt(script)
	}

	return script
}

// Run executes f and exits the process with the resulting code. The context
// passed to f is canceled on SIGINT.
func (s *Script) Run(f func(ctx context.Context) error) {
	os.Exit(s.run(context.Background(), f))
}

func (s *Script) run(parent context.Context, callback func(ctx context.Context) error) int {
	if code, ok := s.parseFlags(); !ok {
		return code
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	ctx, err := s.loadEnvFiles(ctx)
	if err != nil {
		slog.Error("error loading env file", "error", err)

		return 1
	}

	_ = logger.ConfigureLogging(ctx, s.name, s.loggerOpts...)

	log := logger.Get(ctx)

	if callback == nil {
		log.Error("callback is nil")

		return 1
	}

	err = callback(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError

	if !errors.As(err, &exitErr) {
		log.Error("error running script", "error", err)

		return 1
	}

	if exitErr.err != nil {
		log.Error("error running script", "error", exitErr.err)
	}

	return exitErr.code
}

// parseFlags returns false with the exit code to use when parsing fails.
func (s *Script) parseFlags() (int, bool) {
	if s.flags == nil {
		flag.Parse()

		return 0, true
	}

	err := s.flags.Parse(s.args)

	switch {
	case err == nil:
		return 0, true
	case errors.Is(err, flag.ErrHelp):
		return 0, false
	default:
		// The flag set has already printed the error and usage.
		return 2, false //nolint:mnd
	}
}

func (s *Script) loadEnvFiles(ctx context.Context) (context.Context, error) {
	if len(s.envFiles) == 0 {
		return ctx, nil
	}

	ldr := envutil.NewLoader()

	for _, provider := range s.envFiles {
		path := provider()
		if path == "" {
			continue
		}

		if _, err := ldr.LoadFile(path); err != nil {
			return ctx, err
		}
	}

	return ldr.EnhanceContext(ctx), nil
}
