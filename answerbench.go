package imobench

import "path/filepath"

const answerBenchFile = "answerbench.csv"

var answerBenchColumns = []string{
	"Problem ID", "Problem", "Short Answer", "Category", "Subcategory", "Source",
}

var answerBenchOptions = map[string]bool{
	"WithCategory":    true,
	"WithSubcategory": true,
	"WithSource":      true,
}

// LoadAnswerBench loads the AnswerBench dataset in file order. Accepted
// options: WithCategory, WithSubcategory, WithSource, WithoutValidation.
// With validation on (the default), every record in the file is checked
// before filtering and any violations are aggregated into a single
// *ValidationError.
func (l *Loader) LoadAnswerBench(opts ...Option) ([]AnswerBenchProblem, error) {
	cfg, err := applyOptions("answerbench", answerBenchOptions, opts)
	if err != nil {
		return nil, err
	}

	rows, err := openCSV("answerbench", filepath.Join(l.dataDir, answerBenchFile), answerBenchColumns)
	if err != nil {
		return nil, err
	}
	defer rows.close()

	var (
		out        []AnswerBenchProblem
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

		p := AnswerBenchProblem{
			ProblemID:   rows.field("Problem ID"),
			Problem:     rows.field("Problem"),
			ShortAnswer: rows.field("Short Answer"),
			Category:    rows.field("Category"),
			Subcategory: rows.field("Subcategory"),
			Source:      rows.field("Source"),
		}

		if cfg.validate {
			violations = append(violations, stampIndex(ValidateAnswerBench(p), rows.index)...)
			if p.ProblemID != "" {
				if _, dup := seen[p.ProblemID]; dup {
					violations = append(violations, duplicateIDViolation(rows.index, "Problem ID", p.ProblemID))
				}
				seen[p.ProblemID] = struct{}{}
			}
		}

		if !matchAnswerBench(cfg, p) {
			continue
		}
		out = append(out, p)
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Dataset: "answerbench", Violations: violations}
	}
	return out, nil
}

func matchAnswerBench(cfg *loadConfig, p AnswerBenchProblem) bool {
	if cfg.hasCategory && p.Category != cfg.category {
		return false
	}
	if cfg.hasSubcategory && p.Subcategory != cfg.subcategory {
		return false
	}
	if cfg.hasSource && p.Source != cfg.source {
		return false
	}
	return true
}
