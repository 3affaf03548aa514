package imobench

import (
	"math"
	"testing"
)

func validGradingEntry() GradingBenchEntry {
	return GradingBenchEntry{
		GradingID:         "GB-0001",
		ProblemID:         "PB-Basic-001",
		Problem:           "Prove that sqrt(2) is irrational.",
		Solution:          "Assume p/q in lowest terms.",
		GradingGuidelines: "2 points for setup.",
		Response:          "A contradiction argument.",
		Points:            7,
		Reward:            0.7,
		ProblemSource:     "Classic",
	}
}

func TestValidateAnswerBench(t *testing.T) {
	t.Parallel()

	valid := AnswerBenchProblem{
		ProblemID:   "imo-bench-algebra-001",
		Problem:     "Find all x.",
		ShortAnswer: "x=1",
		Category:    "Algebra",
		Subcategory: "Polynomials",
		Source:      "IMO 2019",
	}
	if vs := ValidateAnswerBench(valid); len(vs) != 0 {
		t.Fatalf("valid record: got violations %v", vs)
	}

	blankAnswer := valid
	blankAnswer.ShortAnswer = "   "
	vs := ValidateAnswerBench(blankAnswer)
	if len(vs) != 1 {
		t.Fatalf("blank answer: got %d violations, want 1: %v", len(vs), vs)
	}
	if vs[0].Field != "Short Answer" {
		t.Fatalf("Field: got %q want %q", vs[0].Field, "Short Answer")
	}
	if vs[0].Constraint != "non-empty" {
		t.Fatalf("Constraint: got %q want %q", vs[0].Constraint, "non-empty")
	}
	if vs[0].RecordID != valid.ProblemID {
		t.Fatalf("RecordID: got %q want %q", vs[0].RecordID, valid.ProblemID)
	}

	// An unknown category is a domain string, not a violation.
	odd := valid
	odd.Category = "Recreational"
	if vs := ValidateAnswerBench(odd); len(vs) != 0 {
		t.Fatalf("unknown category: got violations %v", vs)
	}

	var empty AnswerBenchProblem
	if vs := ValidateAnswerBench(empty); len(vs) != 6 {
		t.Fatalf("empty record: got %d violations, want 6: %v", len(vs), vs)
	}
}

func TestValidateProofBench(t *testing.T) {
	t.Parallel()

	valid := ProofBenchProblem{
		ProblemID:         "PB-Basic-001",
		Problem:           "Prove it.",
		Solution:          "A proof.",
		GradingGuidelines: "Full credit for a valid proof.",
		Category:          "Algebra",
		Level:             "IMO-easy",
		ShortAnswer:       "", // descriptive problems may omit the answer
		Source:            "Classic",
	}
	if vs := ValidateProofBench(valid); len(vs) != 0 {
		t.Fatalf("valid record: got violations %v", vs)
	}

	bad := valid
	bad.Solution = ""
	bad.Level = ""
	vs := ValidateProofBench(bad)
	if len(vs) != 2 {
		t.Fatalf("got %d violations, want 2: %v", len(vs), vs)
	}
	fields := map[string]bool{}
	for _, v := range vs {
		fields[v.Field] = true
	}
	if !fields["Solution"] || !fields["Level"] {
		t.Fatalf("violation fields: got %v", fields)
	}
}

func TestValidateGradingBench(t *testing.T) {
	t.Parallel()

	if vs := ValidateGradingBench(validGradingEntry()); len(vs) != 0 {
		t.Fatalf("valid entry: got violations %v", vs)
	}

	tests := []struct {
		name       string
		mutate     func(*GradingBenchEntry)
		field      string
		constraint string
	}{
		{
			name:       "points above range",
			mutate:     func(e *GradingBenchEntry) { e.Points = 11 },
			field:      "Points",
			constraint: "<= 10",
		},
		{
			name:       "points below range",
			mutate:     func(e *GradingBenchEntry) { e.Points = -1 },
			field:      "Points",
			constraint: ">= 0",
		},
		{
			name:       "reward NaN",
			mutate:     func(e *GradingBenchEntry) { e.Reward = math.NaN() },
			field:      "Reward",
			constraint: "finite number",
		},
		{
			name:       "reward infinite",
			mutate:     func(e *GradingBenchEntry) { e.Reward = math.Inf(1) },
			field:      "Reward",
			constraint: "finite number",
		},
		{
			name:       "empty response",
			mutate:     func(e *GradingBenchEntry) { e.Response = "" },
			field:      "Response",
			constraint: "non-empty",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := validGradingEntry()
			tt.mutate(&e)
			vs := ValidateGradingBench(e)
			if len(vs) != 1 {
				t.Fatalf("got %d violations, want 1: %v", len(vs), vs)
			}
			if vs[0].Field != tt.field {
				t.Fatalf("Field: got %q want %q", vs[0].Field, tt.field)
			}
			if vs[0].Constraint != tt.constraint {
				t.Fatalf("Constraint: got %q want %q", vs[0].Constraint, tt.constraint)
			}
		})
	}

	// Points 0 and reward 0 are legitimate values, not missing fields.
	zero := validGradingEntry()
	zero.Points = 0
	zero.Reward = 0
	if vs := ValidateGradingBench(zero); len(vs) != 0 {
		t.Fatalf("zero points/reward: got violations %v", vs)
	}
}

func TestValidateDatasetSizes(t *testing.T) {
	t.Parallel()

	if vs := ValidateDatasetSizes(400, 60, 1000); len(vs) != 0 {
		t.Fatalf("nominal sizes: got violations %v", vs)
	}
	vs := ValidateDatasetSizes(12, 60, 1000)
	if len(vs) != 1 || vs[0].Field != "answerbench" {
		t.Fatalf("small answerbench: got %v", vs)
	}
	if vs := ValidateDatasetSizes(0, 0, 0); len(vs) != 3 {
		t.Fatalf("all empty: got %d violations, want 3", len(vs))
	}
}
