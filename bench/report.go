package bench

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"facette.io/natsort"
	"github.com/amp-labs/amp-sort/cli"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const tableWidth = 64

// Report is the outcome of a Runner.Run.
type Report struct {
	RunID       string
	StartedAt   time.Time
	Element     ElementKind
	Seed        uint64
	Samples     int
	MergeCutoff int
	QuickCutoff int
	Results     []Result
}

func newReport(cfg Config, seed uint64) (*Report, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Report{
		RunID:       id.String(),
		StartedAt:   time.Now().UTC(),
		Element:     cfg.Element,
		Seed:        seed,
		Samples:     cfg.Samples,
		MergeCutoff: cfg.MergeCutoff,
		QuickCutoff: cfg.QuickCutoff,
	}, nil
}

// key names a case as algorithm/size, e.g. "merge/1000".
func (r Result) key() string {
	return r.Algorithm.String() + "/" + strconv.Itoa(r.Size)
}

// Sorted returns the results in natural order of their keys, so that
// "quick/9" comes before "quick/10".
func (r *Report) Sorted() []Result {
	out := slices.Clone(r.Results)

	slices.SortStableFunc(out, func(a, b Result) int {
		ka, kb := a.key(), b.key()

		switch {
		case natsort.Compare(ka, kb):
			return -1
		case natsort.Compare(kb, ka):
			return 1
		default:
			return cmp.Compare(ka, kb)
		}
	})

	return out
}

// Write renders the report in the given format.
//
// Plain prints the mean seconds of each case on its own line, in run order;
// with more than one case each line is prefixed by the case key. Table prints
// an aligned summary, JSON and YAML encode the whole report.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case Plain:
		return r.writePlain(w)
	case Table:
		return r.writeTable(w)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r.document())
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(r.document()); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownFormat, string(format))
	}
}

func (r *Report) writePlain(w io.Writer) error {
	for _, res := range r.Results {
		var err error

		if len(r.Results) == 1 {
			_, err = fmt.Fprintf(w, "%f\n", res.Mean().Seconds())
		} else {
			_, err = fmt.Fprintf(w, "%s %f\n", res.key(), res.Mean().Seconds())
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Report) writeTable(w io.Writer) error {
	p := message.NewPrinter(language.English)

	title := fmt.Sprintf("sortbench %s\n%s elements, %d samples, seed %d",
		r.RunID, r.Element, r.Samples, r.Seed)

	if _, err := fmt.Fprintln(w, cli.Banner(title, tableWidth, cli.AlignCenter)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight) //nolint:mnd

	if _, err := fmt.Fprintln(tw, "algorithm\tsize\tmean (s)\tmin (s)\tmax (s)\t"); err != nil {
		return err
	}

	for _, res := range r.Sorted() {
		_, err := p.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.6f\t\n", res.Algorithm.String(), res.Size,
			res.Mean().Seconds(), res.Min.Seconds(), res.Max.Seconds())
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}

type resultDocument struct {
	Algorithm    string  `json:"algorithm"     yaml:"algorithm"`
	Size         int     `json:"size"          yaml:"size"`
	Samples      int     `json:"samples"       yaml:"samples"`
	MeanSeconds  float64 `json:"mean_seconds"  yaml:"mean_seconds"`
	MinSeconds   float64 `json:"min_seconds"   yaml:"min_seconds"`
	MaxSeconds   float64 `json:"max_seconds"   yaml:"max_seconds"`
	TotalSeconds float64 `json:"total_seconds" yaml:"total_seconds"`
}

type reportDocument struct {
	RunID       string           `json:"run_id"       yaml:"run_id"`
	StartedAt   time.Time        `json:"started_at"   yaml:"started_at"`
	Element     string           `json:"element"      yaml:"element"`
	Seed        uint64           `json:"seed"         yaml:"seed"`
	Samples     int              `json:"samples"      yaml:"samples"`
	MergeCutoff int              `json:"merge_cutoff" yaml:"merge_cutoff"`
	QuickCutoff int              `json:"quick_cutoff" yaml:"quick_cutoff"`
	Results     []resultDocument `json:"results"      yaml:"results"`
}

func (r *Report) document() reportDocument {
	doc := reportDocument{
		RunID:       r.RunID,
		StartedAt:   r.StartedAt,
		Element:     string(r.Element),
		Seed:        r.Seed,
		Samples:     r.Samples,
		MergeCutoff: r.MergeCutoff,
		QuickCutoff: r.QuickCutoff,
		Results:     make([]resultDocument, 0, len(r.Results)),
	}

	for _, res := range r.Sorted() {
		doc.Results = append(doc.Results, resultDocument{
			Algorithm:    res.Algorithm.String(),
			Size:         res.Size,
			Samples:      res.Samples,
			MeanSeconds:  res.Mean().Seconds(),
			MinSeconds:   res.Min.Seconds(),
			MaxSeconds:   res.Max.Seconds(),
			TotalSeconds: res.Total.Seconds(),
		})
	}

	return doc
}
