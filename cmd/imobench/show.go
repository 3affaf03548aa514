package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/imobench"
)

type showOptions struct {
	category    string
	subcategory string
	source      string
	level       string
	problemID   string
	minPoints   int
	maxPoints   int
	limit       int
	noValidate  bool
	output      string
}

func newShowCmd(st *cliState) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show <dataset>",
		Short: "Print dataset records, optionally filtered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, st, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "filter by category (answerbench, proofbench)")
	cmd.Flags().StringVar(&opts.subcategory, "subcategory", "", "filter by subcategory (answerbench)")
	cmd.Flags().StringVar(&opts.source, "source", "", "filter by source (answerbench)")
	cmd.Flags().StringVar(&opts.level, "level", "", "filter by difficulty level (proofbench)")
	cmd.Flags().StringVar(&opts.problemID, "problem-id", "", "filter by problem id (gradingbench)")
	cmd.Flags().IntVar(&opts.minPoints, "min-points", 0, "minimum points, inclusive (gradingbench)")
	cmd.Flags().IntVar(&opts.maxPoints, "max-points", 0, "maximum points, inclusive (gradingbench)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "print at most this many records (0 = all)")
	cmd.Flags().BoolVar(&opts.noValidate, "no-validate", false, "skip semantic validation")
	cmd.Flags().StringVar(&opts.output, "output", "table", "output format: table|json|yaml")

	return cmd
}

// buildLoadOptions maps only the flags the user actually set to library
// options, so inapplicable flags surface as the library's usage errors.
func buildLoadOptions(cmd *cobra.Command, opts *showOptions) []imobench.Option {
	var out []imobench.Option
	if cmd.Flags().Changed("category") {
		out = append(out, imobench.WithCategory(opts.category))
	}
	if cmd.Flags().Changed("subcategory") {
		out = append(out, imobench.WithSubcategory(opts.subcategory))
	}
	if cmd.Flags().Changed("source") {
		out = append(out, imobench.WithSource(opts.source))
	}
	if cmd.Flags().Changed("level") {
		out = append(out, imobench.WithLevel(opts.level))
	}
	if cmd.Flags().Changed("problem-id") {
		out = append(out, imobench.WithProblemID(opts.problemID))
	}
	if cmd.Flags().Changed("min-points") {
		out = append(out, imobench.WithMinPoints(opts.minPoints))
	}
	if cmd.Flags().Changed("max-points") {
		out = append(out, imobench.WithMaxPoints(opts.maxPoints))
	}
	if opts.noValidate {
		out = append(out, imobench.WithoutValidation())
	}
	return out
}

func runShow(cmd *cobra.Command, st *cliState, dataset string, opts *showOptions) error {
	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	l, err := st.loader()
	if err != nil {
		return err
	}
	loadOpts := buildLoadOptions(cmd, opts)
	w := cmd.OutOrStdout()

	switch dataset {
	case "answerbench":
		problems, err := l.LoadAnswerBench(loadOpts...)
		if err != nil {
			return err
		}
		return renderAnswerBench(w, format, limitSlice(problems, opts.limit))
	case "proofbench":
		problems, err := l.LoadProofBench(loadOpts...)
		if err != nil {
			return err
		}
		return renderProofBench(w, format, limitSlice(problems, opts.limit))
	case "gradingbench":
		entries, err := collectGradingBench(l, loadOpts, opts.limit)
		if err != nil {
			return err
		}
		return renderGradingBench(w, format, entries)
	default:
		return fmt.Errorf("unknown dataset %q (expected answerbench|proofbench|gradingbench)", dataset)
	}
}

// collectGradingBench streams and stops at the limit instead of loading
// the whole dataset.
func collectGradingBench(l *imobench.Loader, loadOpts []imobench.Option, limit int) ([]imobench.GradingBenchEntry, error) {
	it, err := l.StreamGradingBench(loadOpts...)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []imobench.GradingBenchEntry
	for it.Next() {
		out = append(out, it.Entry())
		if limit > 0 && len(out) >= limit {
			return out, nil
		}
	}
	return out, it.Err()
}

func limitSlice[T any](in []T, limit int) []T {
	if limit <= 0 || limit >= len(in) {
		return in
	}
	return in[:limit]
}
