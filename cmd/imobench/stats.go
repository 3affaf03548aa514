package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/stellarlinkco/imobench"
)

func newStatsCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <dataset>",
		Short: "Print record counts broken down by category, level, or points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := st.loader()
			if err != nil {
				return err
			}
			switch args[0] {
			case "answerbench":
				return answerBenchStats(cmd, l)
			case "proofbench":
				return proofBenchStats(cmd, l)
			case "gradingbench":
				return gradingBenchStats(cmd, l)
			default:
				return fmt.Errorf("unknown dataset %q (expected answerbench|proofbench|gradingbench)", args[0])
			}
		},
	}
}

func answerBenchStats(cmd *cobra.Command, l *imobench.Loader) error {
	problems, err := l.LoadAnswerBench(imobench.WithoutValidation())
	if err != nil {
		return err
	}

	byCategory := make(map[string]int)
	for _, p := range problems {
		byCategory[p.Category]++
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPROBLEMS")
	for _, category := range sortedKeys(byCategory) {
		fmt.Fprintf(tw, "%s\t%d\n", category, byCategory[category])
	}
	fmt.Fprintf(tw, "TOTAL\t%d\n", len(problems))
	return tw.Flush()
}

func proofBenchStats(cmd *cobra.Command, l *imobench.Loader) error {
	problems, err := l.LoadProofBench(imobench.WithoutValidation())
	if err != nil {
		return err
	}

	byCategory := make(map[string]int)
	byLevel := make(map[string]int)
	for _, p := range problems {
		byCategory[p.Category]++
		byLevel[p.Level]++
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPROBLEMS")
	for _, category := range sortedKeys(byCategory) {
		fmt.Fprintf(tw, "%s\t%d\n", category, byCategory[category])
	}
	fmt.Fprintln(tw, "\nLEVEL\tPROBLEMS")
	for _, level := range sortedKeys(byLevel) {
		fmt.Fprintf(tw, "%s\t%d\n", level, byLevel[level])
	}
	fmt.Fprintf(tw, "TOTAL\t%d\n", len(problems))
	return tw.Flush()
}

func gradingBenchStats(cmd *cobra.Command, l *imobench.Loader) error {
	it, err := l.StreamGradingBench(imobench.WithoutValidation())
	if err != nil {
		return err
	}
	defer it.Close()

	byPoints := make(map[int]int)
	var total int
	var rewardSum float64
	for it.Next() {
		e := it.Entry()
		byPoints[e.Points]++
		rewardSum += e.Reward
		total++
	}
	if err := it.Err(); err != nil {
		return err
	}

	points := make([]int, 0, len(byPoints))
	for p := range byPoints {
		points = append(points, p)
	}
	sort.Ints(points)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POINTS\tENTRIES")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%d\n", p, byPoints[p])
	}
	fmt.Fprintf(tw, "TOTAL\t%d\n", total)
	if total > 0 {
		fmt.Fprintf(tw, "MEAN REWARD\t%.3f\n", rewardSum/float64(total))
	}
	return tw.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
