package imobench

import "fmt"

// Option narrows or configures a load. Filters compose as logical AND;
// an unset filter imposes no constraint. Passing an option to a load
// function whose dataset has no matching field is a usage error, reported
// before any file is opened.
type Option func(*loadConfig)

type loadConfig struct {
	category    string
	subcategory string
	source      string
	level       string
	problemID   string
	minPoints   int
	maxPoints   int

	hasCategory    bool
	hasSubcategory bool
	hasSource      bool
	hasLevel       bool
	hasProblemID   bool
	hasMinPoints   bool
	hasMaxPoints   bool

	validate bool

	names []string // applied option names, for usage errors
}

// WithCategory keeps only records whose Category equals c exactly.
// Applies to AnswerBench and ProofBench.
func WithCategory(c string) Option {
	return func(cfg *loadConfig) {
		cfg.category = c
		cfg.hasCategory = true
		cfg.names = append(cfg.names, "WithCategory")
	}
}

// WithSubcategory keeps only records whose Subcategory equals s exactly.
// Applies to AnswerBench.
func WithSubcategory(s string) Option {
	return func(cfg *loadConfig) {
		cfg.subcategory = s
		cfg.hasSubcategory = true
		cfg.names = append(cfg.names, "WithSubcategory")
	}
}

// WithSource keeps only records whose Source equals s exactly.
// Applies to AnswerBench.
func WithSource(s string) Option {
	return func(cfg *loadConfig) {
		cfg.source = s
		cfg.hasSource = true
		cfg.names = append(cfg.names, "WithSource")
	}
}

// WithLevel keeps only records whose Level equals l exactly.
// Applies to ProofBench.
func WithLevel(l string) Option {
	return func(cfg *loadConfig) {
		cfg.level = l
		cfg.hasLevel = true
		cfg.names = append(cfg.names, "WithLevel")
	}
}

// WithProblemID keeps only records whose ProblemID equals id exactly.
// Applies to GradingBench.
func WithProblemID(id string) Option {
	return func(cfg *loadConfig) {
		cfg.problemID = id
		cfg.hasProblemID = true
		cfg.names = append(cfg.names, "WithProblemID")
	}
}

// WithMinPoints keeps only records with Points >= n (inclusive).
// Applies to GradingBench.
func WithMinPoints(n int) Option {
	return func(cfg *loadConfig) {
		cfg.minPoints = n
		cfg.hasMinPoints = true
		cfg.names = append(cfg.names, "WithMinPoints")
	}
}

// WithMaxPoints keeps only records with Points <= n (inclusive).
// Applies to GradingBench.
func WithMaxPoints(n int) Option {
	return func(cfg *loadConfig) {
		cfg.maxPoints = n
		cfg.hasMaxPoints = true
		cfg.names = append(cfg.names, "WithMaxPoints")
	}
}

// WithoutValidation disables semantic validation: records are returned
// as parsed, violations and all. Structural parse failures still abort
// the load. Applies to every dataset.
func WithoutValidation() Option {
	return func(cfg *loadConfig) {
		cfg.validate = false
		cfg.names = append(cfg.names, "WithoutValidation")
	}
}

// applyOptions builds a loadConfig and rejects options that have no
// matching field on the named dataset.
func applyOptions(dataset string, allowed map[string]bool, opts []Option) (*loadConfig, error) {
	cfg := &loadConfig{validate: true}
	for _, opt := range opts {
		opt(cfg)
	}
	for _, name := range cfg.names {
		if name == "WithoutValidation" {
			continue
		}
		if !allowed[name] {
			return nil, fmt.Errorf("imobench: option %s does not apply to the %s dataset", name, dataset)
		}
	}
	return cfg, nil
}
