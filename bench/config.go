package bench

import (
	"context"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorting"
)

// ElementKind selects the element type the benchmark sorts.
type ElementKind string

const (
	Float32 ElementKind = "float32"
	Float64 ElementKind = "float64"
	Int     ElementKind = "int"
)

// Format selects how a Report is written.
type Format string

const (
	Plain Format = "plain"
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// AllAlgorithms is the algorithm argument that selects every sort.
const AllAlgorithms = "all"

const envPrefix = "SORTBENCH_"

// Config describes one benchmark run. Every (algorithm, size) pair is a case
// and every case is timed Samples times.
type Config struct {
	Algorithms  []sorting.Algorithm
	Sizes       []int
	Samples     int
	Seed        uint64
	Element     ElementKind
	MergeCutoff int
	QuickCutoff int
	Verify      bool
	Format      Format
	MetricsFile string
}

// DefaultConfig returns every algorithm over 1000 float32 elements, ten
// samples each, with verification on.
func DefaultConfig() Config {
	return Config{
		Algorithms:  sorting.Algorithms(),
		Sizes:       []int{1000}, //nolint:mnd
		Samples:     10,          //nolint:mnd
		Element:     Float32,
		MergeCutoff: sorting.DefaultMergeCutoff,
		QuickCutoff: sorting.DefaultQuickCutoff,
		Verify:      true,
		Format:      Plain,
	}
}

// ParseAlgorithms resolves a single algorithm name, a comma separated list of
// names, or "all".
func ParseAlgorithms(names string) ([]sorting.Algorithm, error) {
	return parseAlgorithmList(strings.Split(names, ","))
}

func parseAlgorithmList(names []string) ([]sorting.Algorithm, error) {
	if len(names) == 1 && strings.EqualFold(strings.TrimSpace(names[0]), AllAlgorithms) {
		return sorting.Algorithms(), nil
	}

	algs := make([]sorting.Algorithm, 0, len(names))

	for _, name := range names {
		alg, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}

		algs = append(algs, alg)
	}

	return algs, nil
}

func parseElementKind(name string) (ElementKind, error) {
	kind := ElementKind(strings.ToLower(name))

	if err := envutil.OneOf(Float32, Float64, Int)(kind); err != nil {
		return kind, fmt.Errorf("%w: %w", errors.ErrUnknownElement, err)
	}

	return kind, nil
}

func parseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(name))

	if err := envutil.OneOf(Plain, Table, JSON, YAML)(format); err != nil {
		return format, fmt.Errorf("%w: %w", errors.ErrUnknownFormat, err)
	}

	return format, nil
}

// LoadConfig overlays SORTBENCH_* variables on DefaultConfig:
// ALGORITHMS, SIZES, SAMPLES, SEED, ELEMENT, MERGE_CUTOFF, QUICK_CUTOFF,
// VERIFY, FORMAT and METRICS_FILE. Every unparsable or out of range variable
// is reported and leaves its default in place.
func LoadConfig(ctx context.Context) (Config, error) {
	cfg := DefaultConfig()

	var errs errors.Collection

	read := func(err error) {
		errs.Add(err)
	}

	cfg.Algorithms = readValue(
		envutil.Map(envutil.Strings(ctx, envPrefix+"ALGORITHMS"), parseAlgorithmList),
		cfg.Algorithms, read)
	cfg.Sizes = readValue(envutil.Ints(ctx, envPrefix+"SIZES"), cfg.Sizes, read)
	cfg.Samples = readValue(
		envutil.Int(ctx, envPrefix+"SAMPLES", envutil.Validate(envutil.Positive[int])),
		cfg.Samples, read)
	cfg.Seed = readValue(envutil.Uint64(ctx, envPrefix+"SEED"), cfg.Seed, read)
	cfg.MergeCutoff = readValue(envutil.Int(ctx, envPrefix+"MERGE_CUTOFF"), cfg.MergeCutoff, read)
	cfg.QuickCutoff = readValue(envutil.Int(ctx, envPrefix+"QUICK_CUTOFF"), cfg.QuickCutoff, read)
	cfg.Verify = readValue(envutil.Bool(ctx, envPrefix+"VERIFY"), cfg.Verify, read)
	cfg.MetricsFile = readValue(envutil.String(ctx, envPrefix+"METRICS_FILE"), cfg.MetricsFile, read)
	cfg.Element = readValue(
		envutil.Map(envutil.String(ctx, envPrefix+"ELEMENT"), parseElementKind),
		cfg.Element, read)
	cfg.Format = readValue(
		envutil.Map(envutil.String(ctx, envPrefix+"FORMAT"), parseFormat),
		cfg.Format, read)

	return cfg, errs.GetError()
}

// readValue returns the reader's value, or dflt when the variable is unset.
// Parse errors are handed to report and also fall back to dflt.
func readValue[T any](rdr envutil.Reader[T], dflt T, report func(error)) T {
	val, err := rdr.WithDefault(dflt).Value()
	if err != nil {
		report(err)

		return dflt
	}

	return val
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs errors.Collection

	if len(c.Algorithms) == 0 {
		errs.Add(fmt.Errorf("%w: no algorithms selected", errors.ErrUnknownAlgorithm))
	}

	for _, alg := range c.Algorithms {
		if !alg.Valid() {
			errs.Add(fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, string(alg)))
		}
	}

	if len(c.Sizes) == 0 {
		errs.Add(fmt.Errorf("%w: no sizes given", errors.ErrInvalidSize))
	}

	for _, size := range c.Sizes {
		if size <= 0 {
			errs.Add(fmt.Errorf("%w: got %d", errors.ErrInvalidSize, size))
		}
	}

	if c.Samples <= 0 {
		errs.Add(fmt.Errorf("%w: got %d", errors.ErrInvalidSamples, c.Samples))
	}

	switch c.Element {
	case Float32, Float64, Int:
	default:
		errs.Add(fmt.Errorf("%w: %q", errors.ErrUnknownElement, string(c.Element)))
	}

	switch c.Format {
	case Plain, Table, JSON, YAML:
	default:
		errs.Add(fmt.Errorf("%w: %q", errors.ErrUnknownFormat, string(c.Format)))
	}

	errs.Add((sorting.Options{MergeCutoff: c.MergeCutoff, QuickCutoff: c.QuickCutoff}).Validate())

	return errs.GetError()
}

// sorterOptions turns the configured cutoffs into sorting options.
func (c Config) sorterOptions() []sorting.Option {
	return []sorting.Option{
		sorting.WithMergeCutoff(c.MergeCutoff),
		sorting.WithQuickCutoff(c.QuickCutoff),
	}
}
