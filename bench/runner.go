// Package bench times the sorting algorithms over freshly generated random
// buffers and reports mean trial times as text, JSON or YAML. Runs can also
// feed Prometheus metrics and OpenTelemetry spans.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/amp-labs/amp-sort/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/amp-labs/amp-sort/bench"

// Result aggregates the trials of one case.
type Result struct {
	Algorithm sorting.Algorithm
	Size      int
	Samples   int
	Total     time.Duration
	Min       time.Duration
	Max       time.Duration
}

// Mean returns the average time of a trial, or zero before any trial ran.
func (r Result) Mean() time.Duration {
	if r.Samples == 0 {
		return 0
	}

	return r.Total / time.Duration(r.Samples)
}

func (r *Result) add(elapsed time.Duration) {
	if r.Samples == 0 || elapsed < r.Min {
		r.Min = elapsed
	}

	if elapsed > r.Max {
		r.Max = elapsed
	}

	r.Samples++
	r.Total += elapsed
}

type benchCase struct {
	algorithm sorting.Algorithm
	size      int
	element   ElementKind
}

// Runner executes the cases of a Config.
type Runner struct {
	cfg     Config
	tracer  trace.Tracer
	metrics *Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTracer sets the tracer used for case spans. By default the global
// provider's tracer is used.
func WithTracer(tracer trace.Tracer) RunnerOption {
	return func(r *Runner) {
		r.tracer = tracer
	}
}

// WithMetrics makes the runner record every trial in m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{cfg: cfg}

	for _, opt := range opts {
		opt(r)
	}

	if r.tracer == nil {
		r.tracer = telemetry.Tracer(tracerName)
	}

	return r, nil
}

// Run times every case in order: sizes in the outer loop, algorithms in the
// inner one. Each trial refills the buffer with fresh random values and times
// exactly one sort call. It stops at the first failed verification, or
// between trials once ctx is done, returning the partial report with the error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	gen := NewGenerator(r.cfg.Seed)

	report, err := newReport(r.cfg, gen.Seed())
	if err != nil {
		return nil, err
	}

	ctx = logger.With(ctx, "run_id", report.RunID)

	logger.Get(ctx).Debug("benchmark starting",
		"algorithms", len(r.cfg.Algorithms), "sizes", r.cfg.Sizes,
		"samples", r.cfg.Samples, "element", r.cfg.Element, "seed", report.Seed)

	switch r.cfg.Element {
	case Float32:
		err = runCases(ctx, r, float32Element, gen, report)
	case Float64:
		err = runCases(ctx, r, float64Element, gen, report)
	case Int:
		err = runCases(ctx, r, intElement, gen, report)
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownElement, string(r.cfg.Element))
	}

	return report, err
}

func runCases[T sortable.Sortable[T]](
	ctx context.Context,
	r *Runner,
	el element[T],
	gen *Generator,
	report *Report,
) error {
	sorter, err := sorting.NewSorter[T](r.cfg.sorterOptions()...)
	if err != nil {
		return err
	}

	for _, size := range r.cfg.Sizes {
		buf := make([]T, size)

		for _, alg := range r.cfg.Algorithms {
			c := benchCase{algorithm: alg, size: size, element: el.kind}

			res, err := runCase(ctx, r, sorter, el, gen, c, buf)
			if res.Samples > 0 {
				report.Results = append(report.Results, res)
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}

func runCase[T sortable.Sortable[T]](
	ctx context.Context,
	r *Runner,
	sorter *sorting.Sorter[T],
	el element[T],
	gen *Generator,
	c benchCase,
	buf []T,
) (Result, error) {
	ctx, span := r.tracer.Start(ctx, "sortbench.case", trace.WithAttributes(
		attribute.String("sort.algorithm", c.algorithm.String()),
		attribute.Int("sort.size", c.size),
		attribute.String("sort.element", string(c.element)),
		attribute.Int("sort.samples", r.cfg.Samples),
	))
	defer span.End()

	res := Result{Algorithm: c.algorithm, Size: c.size}

	for trial := range r.cfg.Samples {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "canceled")

			return res, err
		}

		elapsed, err := runTrial(sorter, el, gen, c.algorithm, buf, r.cfg.Verify)

		if r.metrics != nil {
			r.metrics.observe(c, elapsed, err)
		}

		if err != nil {
			err = logger.AnnotateError(fmt.Errorf("trial %d: %w", trial, err),
				"algorithm", c.algorithm.String(), "size", c.size, "element", string(c.element))

			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return res, err
		}

		res.add(elapsed)
	}

	span.SetAttributes(attribute.Float64("sort.mean_seconds", res.Mean().Seconds()))

	logger.Get(ctx).Debug("case finished",
		"algorithm", c.algorithm, "size", c.size, "mean", res.Mean(), "min", res.Min, "max", res.Max)

	return res, nil
}

// runTrial refills buf, times one sort call and optionally verifies it.
func runTrial[T sortable.Sortable[T]](
	sorter *sorting.Sorter[T],
	el element[T],
	gen *Generator,
	alg sorting.Algorithm,
	buf []T,
	verify bool,
) (time.Duration, error) {
	el.fill(gen, buf)

	var before hashing.Fingerprint

	if verify {
		before = hashing.Of(buf, el.encode)
	}

	start := time.Now()
	err := sorter.Sort(alg, buf)
	elapsed := time.Since(start)

	if err != nil {
		return elapsed, err
	}

	if verify {
		return elapsed, verifySorted(buf, before, el.encode)
	}

	return elapsed, nil
}

// verifySorted checks that seq is ordered and holds the multiset that was
// fingerprinted as before.
func verifySorted[T sortable.Sortable[T]](seq []T, before hashing.Fingerprint, encode hashing.Encoder[T]) error {
	if !sortable.IsSorted(seq) {
		return errors.ErrNotSorted
	}

	if !hashing.Of(seq, encode).Equals(before) {
		return errors.ErrNotPermutation
	}

	return nil
}
