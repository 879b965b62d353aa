package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/adamspatch/patch"
	"github.com/adamspatch/patch/internal/config"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// report is anything a command prints. JSON and YAML use the struct tags,
// text output is up to the report.
type report interface {
	writeText(w io.Writer) error
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case formatText, "":
		return r.writeText(w)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func num(v float64) string {
	return fmt.Sprintf("%.9g", v)
}

type problemReport struct {
	XMin           float64 `json:"xmin" yaml:"xmin"`
	XMax           float64 `json:"xmax" yaml:"xmax"`
	SeparatorWidth float64 `json:"separator_width" yaml:"separator_width"`
	Upper          string  `json:"upper" yaml:"upper"`
	Lower          string  `json:"lower" yaml:"lower"`
	TotalArea      float64 `json:"total_area" yaml:"total_area"`
}

func newProblemReport(c config.ProblemConfig) problemReport {
	return problemReport{
		XMin:           c.XMin,
		XMax:           c.XMax,
		SeparatorWidth: c.SeparatorWidth,
		Upper:          patch.Poly(c.Upper).String(),
		Lower:          patch.Poly(c.Lower).String(),
		TotalArea:      c.Problem().TotalArea(),
	}
}

func (r problemReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	r.writeRows(tw)
	return tw.Flush()
}

func (r problemReport) writeRows(w io.Writer) {
	fmt.Fprintf(w, "region\tbetween %s and %s on [%s, %s]\n", r.Lower, r.Upper, num(r.XMin), num(r.XMax))
	fmt.Fprintf(w, "separator width\t%s\n", num(r.SeparatorWidth))
	fmt.Fprintf(w, "total area\t%s\n", num(r.TotalArea))
}

type layoutReport struct {
	Problem        problemReport    `json:"problem" yaml:"problem"`
	Patches        int              `json:"patches" yaml:"patches"`
	PatchArea      float64          `json:"patch_area" yaml:"patch_area"`
	Covered        float64          `json:"covered" yaml:"covered"`
	Separators     []patch.Interval `json:"separators" yaml:"separators"`
	PatchIntervals []patch.Interval `json:"patch_intervals" yaml:"patch_intervals"`
}

func newLayoutReport(c config.ProblemConfig, npatches int, l patch.Layout) layoutReport {
	seps := l.Separators
	if seps == nil {
		seps = []patch.Interval{}
	}
	return layoutReport{
		Problem:        newProblemReport(c),
		Patches:        npatches,
		PatchArea:      l.PatchArea,
		Covered:        l.Covered,
		Separators:     seps,
		PatchIntervals: slices.Collect(l.Patches()),
	}
}

func (r layoutReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	r.Problem.writeRows(tw)
	fmt.Fprintf(tw, "patches\t%d\n", r.Patches)
	fmt.Fprintf(tw, "patch area\t%s\n", num(r.PatchArea))
	fmt.Fprintf(tw, "covered area\t%s\n", num(r.Covered))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSTART\tEND\tWIDTH")
	for i, iv := range r.PatchIntervals {
		fmt.Fprintf(tw, "patch\t%s\t%s\t%s\n", num(iv.Start), num(iv.End), num(iv.Width()))
		if i < len(r.Separators) {
			sep := r.Separators[i]
			fmt.Fprintf(tw, "separator\t%s\t%s\t%s\n", num(sep.Start), num(sep.End), num(sep.Width()))
		}
	}
	return tw.Flush()
}

type sweepRow struct {
	Patches   int     `json:"patches" yaml:"patches"`
	PatchArea float64 `json:"patch_area" yaml:"patch_area"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
}

type sweepReport struct {
	Problem   problemReport `json:"problem" yaml:"problem"`
	Solutions []sweepRow    `json:"solutions" yaml:"solutions"`
}

func (r sweepReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	r.Problem.writeRows(tw)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATCHES\tPATCH AREA")
	for _, row := range r.Solutions {
		if row.Error != "" {
			fmt.Fprintf(tw, "%d\terror: %s\n", row.Patches, row.Error)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\n", row.Patches, num(row.PatchArea))
	}
	return tw.Flush()
}
