package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/stellarlinkco/imobench"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return formatTable, nil
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("invalid --output %q (expected table|json|yaml)", s)
	}
}

func renderAnswerBench(w io.Writer, format outputFormat, problems []imobench.AnswerBenchProblem) error {
	if format != formatTable {
		return renderMarshaled(w, format, problems)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM ID\tCATEGORY\tSUBCATEGORY\tSOURCE\tANSWER")
	for _, p := range problems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ProblemID, p.Category, p.Subcategory, truncate(p.Source, 30), truncate(p.ShortAnswer, 30))
	}
	return tw.Flush()
}

func renderProofBench(w io.Writer, format outputFormat, problems []imobench.ProofBenchProblem) error {
	if format != formatTable {
		return renderMarshaled(w, format, problems)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM ID\tCATEGORY\tLEVEL\tSOURCE\tANSWER")
	for _, p := range problems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ProblemID, p.Category, p.Level, truncate(p.Source, 30), truncate(p.ShortAnswer, 30))
	}
	return tw.Flush()
}

func renderGradingBench(w io.Writer, format outputFormat, entries []imobench.GradingBenchEntry) error {
	if format != formatTable {
		return renderMarshaled(w, format, entries)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GRADING ID\tPROBLEM ID\tPOINTS\tREWARD\tSOURCE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%s\n",
			e.GradingID, e.ProblemID, e.Points, e.Reward, truncate(e.ProblemSource, 30))
	}
	return tw.Flush()
}

func renderMarshaled(w io.Writer, format outputFormat, v any) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
