// Package imobench loads, validates, and filters the IMO Bench datasets:
// AnswerBench (short-answer problems), ProofBench (proof problems with
// grading guidelines), and GradingBench (human-graded responses).
//
// The datasets are read-only CSV files under a data directory. Records
// are plain value structs, safe to share between callers. Loading is
// eager by default; GradingBench, the large dataset, can also be
// streamed one record at a time via StreamGradingBench.
//
// The package-level functions read from DefaultDataDir. Use NewLoader
// for a different location:
//
//	loader, err := imobench.NewLoader("/path/to/imobench")
//	if err != nil { ... }
//	problems, err := loader.LoadAnswerBench(imobench.WithCategory("Algebra"))
package imobench

// LoadAnswerBench loads AnswerBench from DefaultDataDir. See
// Loader.LoadAnswerBench for options and error behavior.
func LoadAnswerBench(opts ...Option) ([]AnswerBenchProblem, error) {
	l, err := NewLoader("")
	if err != nil {
		return nil, err
	}
	return l.LoadAnswerBench(opts...)
}

// LoadProofBench loads ProofBench from DefaultDataDir. See
// Loader.LoadProofBench for options and error behavior.
func LoadProofBench(opts ...Option) ([]ProofBenchProblem, error) {
	l, err := NewLoader("")
	if err != nil {
		return nil, err
	}
	return l.LoadProofBench(opts...)
}

// LoadGradingBench loads GradingBench from DefaultDataDir. See
// Loader.LoadGradingBench for options and error behavior.
func LoadGradingBench(opts ...Option) ([]GradingBenchEntry, error) {
	l, err := NewLoader("")
	if err != nil {
		return nil, err
	}
	return l.LoadGradingBench(opts...)
}

// StreamGradingBench streams GradingBench from DefaultDataDir. See
// Loader.StreamGradingBench for options and the iteration contract.
func StreamGradingBench(opts ...Option) (*GradingBenchIterator, error) {
	l, err := NewLoader("")
	if err != nil {
		return nil, err
	}
	return l.StreamGradingBench(opts...)
}
