package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/imobench"
)

type datasetInfo struct {
	name        string
	file        string
	description string
	count       func(l *imobench.Loader) (int, error)
}

var datasets = []datasetInfo{
	{
		name:        "answerbench",
		file:        "answerbench.csv",
		description: "Short-answer problems",
		count: func(l *imobench.Loader) (int, error) {
			problems, err := l.LoadAnswerBench(imobench.WithoutValidation())
			return len(problems), err
		},
	},
	{
		name:        "proofbench",
		file:        "proofbench.csv",
		description: "Proof problems with grading guidelines",
		count: func(l *imobench.Loader) (int, error) {
			problems, err := l.LoadProofBench(imobench.WithoutValidation())
			return len(problems), err
		},
	},
	{
		name:        "gradingbench",
		file:        "gradingbench.csv",
		description: "Human-graded responses",
		count:       countGradingBench,
	},
}

// countGradingBench streams instead of materializing: the dataset is the
// large one.
func countGradingBench(l *imobench.Loader) (int, error) {
	it, err := l.StreamGradingBench(imobench.WithoutValidation())
	if err != nil {
		return 0, err
	}
	defer it.Close()

	n := 0
	for it.Next() {
		n++
	}
	return n, it.Err()
}

func newListCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets and record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := st.loader()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DATASET\tFILE\tRECORDS\tDESCRIPTION")
			for _, d := range datasets {
				records := "-"
				if n, err := d.count(l); err == nil {
					records = fmt.Sprint(n)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.name, d.file, records, d.description)
			}
			return tw.Flush()
		},
	}
}
