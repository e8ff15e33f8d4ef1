// Command sortbench times the sorting algorithms on random input.
//
//	sortbench [flags] <algorithm|all> <num_elem> <num_samples>
//
// It prints the mean seconds per sort call on stdout and logs to stderr.
// Settings not given on the command line come from SORTBENCH_* environment
// variables or an -env-file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sort/bench"
	"github.com/amp-labs/amp-sort/cli"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/script"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/amp-labs/amp-sort/telemetry"
)

const (
	appName = "sortbench"

	// Quadratic sorts at or above this size ask for confirmation in
	// interactive mode.
	quadraticConfirmSize = 100_000
)

type options struct {
	format      string
	element     string
	seed        uint64
	mergeCutoff int
	quickCutoff int
	verify      bool
	metricsFile string
	envFile     string
	interactive bool

	set map[string]bool
}

func bindFlags(fs *flag.FlagSet) *options {
	opts := &options{}
	dflt := bench.DefaultConfig()

	fs.StringVar(&opts.format, "format", string(dflt.Format), "output format: plain, table, json or yaml")
	fs.StringVar(&opts.element, "element", string(dflt.Element), "element type: float32, float64 or int")
	fs.Uint64Var(&opts.seed, "seed", dflt.Seed, "random seed, 0 picks one from the clock")
	fs.IntVar(&opts.mergeCutoff, "merge-cutoff", dflt.MergeCutoff, "merge sort insertion cutoff")
	fs.IntVar(&opts.quickCutoff, "quick-cutoff", dflt.QuickCutoff, "quicksort insertion cutoff")
	fs.BoolVar(&opts.verify, "verify", dflt.Verify, "check every trial's output is a sorted permutation")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	fs.StringVar(&opts.envFile, "env-file", "", "load settings from a .env, .json or .yaml file")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for the algorithm, size and samples")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "usage: %s [flags] <algorithm|all> <num_elem> <num_samples>\n\n", appName)
		_, _ = fmt.Fprintf(out, "algorithms: %s\n\nflags:\n", strings.Join(algorithmNames(), ", "))
		fs.PrintDefaults()
	}

	return opts
}

func algorithmNames() []string {
	algs := sorting.Algorithms()
	names := make([]string, 0, len(algs)+1)

	for _, alg := range algs {
		names = append(names, alg.String())
	}

	return append(names, bench.AllAlgorithms)
}

// apply copies the flags given on the command line over cfg.
func (o *options) apply(cfg *bench.Config) {
	if o.set["format"] {
		cfg.Format = bench.Format(strings.ToLower(o.format))
	}

	if o.set["element"] {
		cfg.Element = bench.ElementKind(strings.ToLower(o.element))
	}

	if o.set["seed"] {
		cfg.Seed = o.seed
	}

	if o.set["merge-cutoff"] {
		cfg.MergeCutoff = o.mergeCutoff
	}

	if o.set["quick-cutoff"] {
		cfg.QuickCutoff = o.quickCutoff
	}

	if o.set["verify"] {
		cfg.Verify = o.verify
	}

	if o.set["metrics-file"] {
		cfg.MetricsFile = o.metricsFile
	}
}

func main() {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	opts := bindFlags(fs)

	script.New(appName,
		script.Flags(fs, os.Args[1:]),
		script.LogOutput(os.Stderr),
		script.WithEnvFileProvider(func() string { return opts.envFile }),
	).Run(func(ctx context.Context) error {
		opts.set = map[string]bool{}
		fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

		return run(ctx, fs, opts, os.Stdout)
	})
}

func run(ctx context.Context, fs *flag.FlagSet, opts *options, stdout io.Writer) error {
	cfg, err := bench.LoadConfig(ctx)
	if err != nil {
		return script.ExitWithError(err)
	}

	opts.apply(&cfg)

	args := fs.Args()

	switch {
	case opts.interactive:
		if len(args) > 3 { //nolint:mnd
			return script.ExitWithErrorMessage("expected at most 3 arguments, got %d", len(args))
		}

		var proceed bool

		proceed, err = promptMissing(&cfg, args)
		if err != nil {
			return script.ExitWithError(err)
		}

		if !proceed {
			return script.Exit(0)
		}
	case len(args) != 3: //nolint:mnd
		fs.Usage()

		return script.Exit(1)
	default:
		if err := parseArgs(&cfg, args); err != nil {
			return script.ExitWithError(err)
		}
	}

	tcfg, err := telemetry.LoadConfigFromEnv(ctx, envutil.String(ctx, "SORTBENCH_ENVIRONMENT").ValueOrElse("local"))
	if err != nil {
		return script.ExitWithError(err)
	}

	if err := telemetry.Initialize(ctx, tcfg); err != nil {
		logger.Get(ctx).Warn("tracing unavailable", "error", err)
	}

	defer func() {
		if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("error shutting down tracing", "error", err)
		}
	}()

	return benchmark(ctx, cfg, stdout)
}

func benchmark(ctx context.Context, cfg bench.Config, stdout io.Writer) error {
	var metrics *bench.Metrics

	runnerOpts := []bench.RunnerOption{bench.WithTracer(telemetry.Tracer(appName))}

	if cfg.MetricsFile != "" {
		metrics = bench.NewMetrics()
		runnerOpts = append(runnerOpts, bench.WithMetrics(metrics))
	}

	runner, err := bench.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return script.ExitWithError(err)
	}

	report, runErr := runner.Run(ctx)

	if metrics != nil {
		if err := metrics.WriteToTextfile(cfg.MetricsFile); err != nil {
			logger.Get(ctx).Error("error writing metrics", "file", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		return script.ExitWithError(runErr)
	}

	if err := report.Write(stdout, cfg.Format); err != nil {
		return script.ExitWithError(err)
	}

	return nil
}

// parseArgs reads the three positional arguments. Sizes and sample counts
// that aren't positive integers are rejected.
func parseArgs(cfg *bench.Config, args []string) error {
	algs, err := bench.ParseAlgorithms(args[0])
	if err != nil {
		return err
	}

	size, err := positiveArg(args[1], errors.ErrInvalidSize)
	if err != nil {
		return err
	}

	samples, err := positiveArg(args[2], errors.ErrInvalidSamples)
	if err != nil {
		return err
	}

	cfg.Algorithms = algs
	cfg.Sizes = []int{size}
	cfg.Samples = samples

	return nil
}

func positiveArg(arg string, sentinel error) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: got %q", sentinel, arg)
	}

	return n, nil
}

// promptMissing asks for whichever positional arguments weren't given, then
// has the user confirm a quadratic sort over a large input. It returns false
// when the user declines.
func promptMissing(cfg *bench.Config, args []string) (bool, error) {
	var name string

	if len(args) > 0 {
		name = args[0]
	} else {
		picked, err := cli.Select("Algorithm", algorithmNames())
		if err != nil {
			return false, err
		}

		name = picked
	}

	algs, err := bench.ParseAlgorithms(name)
	if err != nil {
		return false, err
	}

	size, err := argOrPrompt(args, 1, "Number of elements", errors.ErrInvalidSize)
	if err != nil {
		return false, err
	}

	samples, err := argOrPrompt(args, 2, "Number of samples", errors.ErrInvalidSamples) //nolint:mnd
	if err != nil {
		return false, err
	}

	cfg.Algorithms = algs
	cfg.Sizes = []int{size}
	cfg.Samples = samples

	if !needsConfirmation(algs, size) {
		return true, nil
	}

	return cli.PromptConfirm(fmt.Sprintf("Quadratic sorts over %d elements can take minutes. Continue", size))
}

func needsConfirmation(algs []sorting.Algorithm, size int) bool {
	if size < quadraticConfirmSize {
		return false
	}

	return slices.ContainsFunc(algs, sorting.Algorithm.Quadratic)
}

func argOrPrompt(args []string, idx int, label string, sentinel error) (int, error) {
	if idx < len(args) {
		return positiveArg(args[idx], sentinel)
	}

	return cli.PromptInt(label, func(n int) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", sentinel, n)
		}

		return nil
	})
}
