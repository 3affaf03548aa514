package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/imobench"
)

func newValidateCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate all datasets and report every violation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, st)
		},
	}
}

func runValidate(cmd *cobra.Command, st *cliState) error {
	l, err := st.loader()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	total := 0

	checks := []struct {
		name string
		load func() error
	}{
		{"answerbench", func() error { _, err := l.LoadAnswerBench(); return err }},
		{"proofbench", func() error { _, err := l.LoadProofBench(); return err }},
		{"gradingbench", func() error { _, err := l.LoadGradingBench(); return err }},
	}
	for _, c := range checks {
		err := c.load()
		if err == nil {
			continue
		}
		var verr *imobench.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, v := range verr.Violations {
			fmt.Fprintf(w, "%s: %s\n", c.name, v)
		}
		total += len(verr.Violations)
	}

	// Size check on raw counts, so it still runs when records are invalid.
	counts := make(map[string]int)
	for _, d := range datasets {
		if n, err := d.count(l); err == nil {
			counts[d.name] = n
		}
	}
	for _, v := range imobench.ValidateDatasetSizes(counts["answerbench"], counts["proofbench"], counts["gradingbench"]) {
		fmt.Fprintf(w, "dataset sizes: field %q: want %s, got %q\n", v.Field, v.Constraint, v.Value)
		total++
	}

	if total > 0 {
		fmt.Fprintf(w, "%d violation(s) found\n", total)
		return errViolationsFound
	}
	fmt.Fprintln(w, "all datasets valid")
	return nil
}
