package imobench

import "path/filepath"

const proofBenchFile = "proofbench.csv"

var proofBenchColumns = []string{
	"Problem ID", "Problem", "Solution", "Grading guidelines",
	"Category", "Level", "Short Answer", "Source",
}

var proofBenchOptions = map[string]bool{
	"WithCategory": true,
	"WithLevel":    true,
}

// LoadProofBench loads the ProofBench dataset in file order. Accepted
// options: WithCategory, WithLevel, WithoutValidation. Validation runs
// over the whole file before filtering and aggregates violations.
func (l *Loader) LoadProofBench(opts ...Option) ([]ProofBenchProblem, error) {
	cfg, err := applyOptions("proofbench", proofBenchOptions, opts)
	if err != nil {
		return nil, err
	}

	rows, err := openCSV("proofbench", filepath.Join(l.dataDir, proofBenchFile), proofBenchColumns)
	if err != nil {
		return nil, err
	}
	defer rows.close()

	var (
		out        []ProofBenchProblem
		violations []Violation
		seen       = make(map[string]struct{})
	)
	for {
		ok, err := rows.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		p := ProofBenchProblem{
			ProblemID:         rows.field("Problem ID"),
			Problem:           rows.field("Problem"),
			Solution:          rows.field("Solution"),
			GradingGuidelines: rows.field("Grading guidelines"),
			Category:          rows.field("Category"),
			Level:             rows.field("Level"),
			ShortAnswer:       rows.field("Short Answer"),
			Source:            rows.field("Source"),
		}

		if cfg.validate {
			violations = append(violations, stampIndex(ValidateProofBench(p), rows.index)...)
			if p.ProblemID != "" {
				if _, dup := seen[p.ProblemID]; dup {
					violations = append(violations, duplicateIDViolation(rows.index, "Problem ID", p.ProblemID))
				}
				seen[p.ProblemID] = struct{}{}
			}
		}

		if !matchProofBench(cfg, p) {
			continue
		}
		out = append(out, p)
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Dataset: "proofbench", Violations: violations}
	}
	return out, nil
}

func matchProofBench(cfg *loadConfig, p ProofBenchProblem) bool {
	if cfg.hasCategory && p.Category != cfg.category {
		return false
	}
	if cfg.hasLevel && p.Level != cfg.level {
		return false
	}
	return true
}
