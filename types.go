package imobench

import "fmt"

// Categories lists the problem categories used across the IMO Bench
// datasets. The Category field is a plain domain string and is not
// validated against this set.
var Categories = []string{"Algebra", "Combinatorics", "Geometry", "Number theory"}

// AnswerBenchProblem is a single problem from IMO-AnswerBench.
//
// The csv tags name the columns of answerbench.csv; they are fixed for
// interoperability with the published data files.
type AnswerBenchProblem struct {
	ProblemID   string `csv:"Problem ID" json:"problem_id" yaml:"problem_id" validate:"notblank"`
	Problem     string `csv:"Problem" json:"problem" yaml:"problem" validate:"notblank"`
	ShortAnswer string `csv:"Short Answer" json:"short_answer" yaml:"short_answer" validate:"notblank"`
	Category    string `csv:"Category" json:"category" yaml:"category" validate:"notblank"`
	Subcategory string `csv:"Subcategory" json:"subcategory" yaml:"subcategory" validate:"notblank"`
	Source      string `csv:"Source" json:"source" yaml:"source" validate:"notblank"`
}

func (p AnswerBenchProblem) String() string {
	return fmt.Sprintf("AnswerBenchProblem(id=%q, category=%q)", p.ProblemID, p.Category)
}

// ProofBenchProblem is a single problem from IMO-ProofBench. ShortAnswer
// may be empty: proof problems often have descriptive answers.
type ProofBenchProblem struct {
	ProblemID         string `csv:"Problem ID" json:"problem_id" yaml:"problem_id" validate:"notblank"`
	Problem           string `csv:"Problem" json:"problem" yaml:"problem" validate:"notblank"`
	Solution          string `csv:"Solution" json:"solution" yaml:"solution" validate:"notblank"`
	GradingGuidelines string `csv:"Grading guidelines" json:"grading_guidelines" yaml:"grading_guidelines" validate:"notblank"`
	Category          string `csv:"Category" json:"category" yaml:"category" validate:"notblank"`
	Level             string `csv:"Level" json:"level" yaml:"level" validate:"notblank"`
	ShortAnswer       string `csv:"Short Answer" json:"short_answer" yaml:"short_answer"`
	Source            string `csv:"Source" json:"source" yaml:"source" validate:"notblank"`
}

func (p ProofBenchProblem) String() string {
	return fmt.Sprintf("ProofBenchProblem(id=%q, level=%q)", p.ProblemID, p.Level)
}

// GradingBenchEntry is a single human-graded response from
// IMO-GradingBench. Points is on a 0-10 scale; Reward is a finite
// floating-point score.
type GradingBenchEntry struct {
	GradingID         string  `csv:"Grading ID" json:"grading_id" yaml:"grading_id" validate:"notblank"`
	ProblemID         string  `csv:"Problem ID" json:"problem_id" yaml:"problem_id" validate:"notblank"`
	Problem           string  `csv:"Problem" json:"problem" yaml:"problem" validate:"notblank"`
	Solution          string  `csv:"Solution" json:"solution" yaml:"solution" validate:"notblank"`
	GradingGuidelines string  `csv:"Grading guidelines" json:"grading_guidelines" yaml:"grading_guidelines" validate:"notblank"`
	Response          string  `csv:"Response" json:"response" yaml:"response" validate:"notblank"`
	Points            int     `csv:"Points" json:"points" yaml:"points" validate:"gte=0,lte=10"`
	Reward            float64 `csv:"Reward" json:"reward" yaml:"reward" validate:"finite"`
	ProblemSource     string  `csv:"Problem Source" json:"problem_source" yaml:"problem_source" validate:"notblank"`
}

func (e GradingBenchEntry) String() string {
	return fmt.Sprintf("GradingBenchEntry(id=%q, points=%d)", e.GradingID, e.Points)
}
