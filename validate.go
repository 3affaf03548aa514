package imobench

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Expected dataset sizes, with tolerance for revisions. GradingBench is
// considerably larger than its nominal 1000 entries in some releases.
const (
	answerBenchMinCount = 390
	answerBenchMaxCount = 410
	proofBenchMinCount  = 55
	proofBenchMaxCount  = 65
	gradingBenchMin     = 900
	gradingBenchMax     = 200000
)

var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("csv"); name != "" {
			return name
		}
		return fld.Name
	})
	// notblank: non-empty after trimming whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// finite: rejects NaN and +/-Inf, both of which strconv.ParseFloat
	// accepts from the wire.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// ValidateAnswerBench checks the semantic constraints of one AnswerBench
// problem and returns every violation found, in field order. A valid
// record yields nil. The Violation Index field is filled by the loaders.
func ValidateAnswerBench(p AnswerBenchProblem) []Violation {
	return structViolations(p, p.ProblemID)
}

// ValidateProofBench checks the semantic constraints of one ProofBench
// problem. ShortAnswer is allowed to be empty.
func ValidateProofBench(p ProofBenchProblem) []Violation {
	return structViolations(p, p.ProblemID)
}

// ValidateGradingBench checks the semantic constraints of one GradingBench
// entry, including the 0-10 Points range and Reward finiteness.
func ValidateGradingBench(e GradingBenchEntry) []Violation {
	return structViolations(e, e.GradingID)
}

func structViolations(rec any, id string) []Violation {
	err := fieldValidator.Struct(rec)
	if err == nil {
		return nil
	}
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{RecordID: id, Constraint: "valid record", Value: err.Error()}}
	}
	out := make([]Violation, 0, len(ferrs))
	for _, fe := range ferrs {
		out = append(out, Violation{
			RecordID:   id,
			Field:      fe.Field(),
			Constraint: constraintText(fe),
			Value:      fmt.Sprint(fe.Value()),
		})
	}
	return out
}

func constraintText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "non-empty"
	case "gte":
		return ">= " + fe.Param()
	case "lte":
		return "<= " + fe.Param()
	case "finite":
		return "finite number"
	default:
		if fe.Param() != "" {
			return fe.Tag() + "=" + fe.Param()
		}
		return fe.Tag()
	}
}

// ValidateDatasetSizes checks loaded record counts against the published
// dataset sizes. It is a consistency check for full, unfiltered loads;
// the loaders themselves never call it.
func ValidateDatasetSizes(answerBench, proofBench, gradingBench int) []Violation {
	var out []Violation
	if answerBench < answerBenchMinCount || answerBench > answerBenchMaxCount {
		out = append(out, Violation{
			Field:      "answerbench",
			Constraint: fmt.Sprintf("%d-%d records", answerBenchMinCount, answerBenchMaxCount),
			Value:      fmt.Sprint(answerBench),
		})
	}
	if proofBench < proofBenchMinCount || proofBench > proofBenchMaxCount {
		out = append(out, Violation{
			Field:      "proofbench",
			Constraint: fmt.Sprintf("%d-%d records", proofBenchMinCount, proofBenchMaxCount),
			Value:      fmt.Sprint(proofBench),
		})
	}
	if gradingBench < gradingBenchMin || gradingBench > gradingBenchMax {
		out = append(out, Violation{
			Field:      "gradingbench",
			Constraint: fmt.Sprintf("%d-%d records", gradingBenchMin, gradingBenchMax),
			Value:      fmt.Sprint(gradingBench),
		})
	}
	return out
}
