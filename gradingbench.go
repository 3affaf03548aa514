package imobench

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const gradingBenchFile = "gradingbench.csv"

var gradingBenchColumns = []string{
	"Grading ID", "Problem ID", "Problem", "Solution",
	"Grading guidelines", "Response", "Points", "Reward", "Problem Source",
}

var gradingBenchOptions = map[string]bool{
	"WithProblemID": true,
	"WithMinPoints": true,
	"WithMaxPoints": true,
}

// LoadGradingBench loads the GradingBench dataset in file order. Accepted
// options: WithProblemID, WithMinPoints, WithMaxPoints, WithoutValidation.
// Validation runs over the whole file before filtering and aggregates
// violations across all offending records. GradingBench is large; use
// StreamGradingBench to iterate without materializing it.
func (l *Loader) LoadGradingBench(opts ...Option) ([]GradingBenchEntry, error) {
	cfg, err := applyOptions("gradingbench", gradingBenchOptions, opts)
	if err != nil {
		return nil, err
	}

	it, err := l.newGradingBenchIterator(cfg, true)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []GradingBenchEntry
	for it.Next() {
		out = append(out, it.Entry())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if len(it.violations) > 0 {
		return nil, &ValidationError{Dataset: "gradingbench", Violations: it.violations}
	}
	return out, nil
}

// StreamGradingBench returns a single-pass iterator over the GradingBench
// dataset. Accepted options are the same as LoadGradingBench. Each Next
// call reads, parses, validates, and filters exactly one record, so memory
// stays O(1) records regardless of dataset size.
//
// Unlike the eager load, validation failures surface at the record where
// they occur: iteration stops with a *ValidationError carrying only that
// record's violations. Callers that need the complete violation list must
// use LoadGradingBench.
func (l *Loader) StreamGradingBench(opts ...Option) (*GradingBenchIterator, error) {
	cfg, err := applyOptions("gradingbench", gradingBenchOptions, opts)
	if err != nil {
		return nil, err
	}
	return l.newGradingBenchIterator(cfg, false)
}

func (l *Loader) newGradingBenchIterator(cfg *loadConfig, collect bool) (*GradingBenchIterator, error) {
	rows, err := openCSV("gradingbench", filepath.Join(l.dataDir, gradingBenchFile), gradingBenchColumns)
	if err != nil {
		return nil, err
	}
	return &GradingBenchIterator{
		rows:    rows,
		cfg:     cfg,
		collect: collect,
		seen:    make(map[string]struct{}),
	}, nil
}

// GradingBenchIterator streams GradingBench entries one at a time,
// following the bufio.Scanner protocol:
//
//	it, err := loader.StreamGradingBench()
//	if err != nil { ... }
//	defer it.Close()
//	for it.Next() {
//	    entry := it.Entry()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// The iterator is single-pass and non-restartable: once exhausted, Next
// keeps returning false. It holds one open file handle, released on
// exhaustion, on the first error, or by Close. It is not safe for
// concurrent use; each caller should obtain its own iterator.
type GradingBenchIterator struct {
	rows *csvRows
	cfg  *loadConfig

	// collect switches the iterator into the eager loader's mode:
	// violations accumulate instead of stopping iteration, so the whole
	// file is validated in one pass.
	collect    bool
	violations []Violation

	seen map[string]struct{}
	cur  GradingBenchEntry
	err  error
	done bool
}

// Next advances to the next entry that passes the configured filters.
// It returns false when the dataset is exhausted or an error occurred;
// consult Err to tell the two apart.
func (it *GradingBenchIterator) Next() bool {
	if it.done {
		return false
	}
	for {
		ok, err := it.rows.next()
		if err != nil {
			it.fail(err)
			return false
		}
		if !ok {
			it.stop()
			return false
		}

		entry, err := it.parseRow()
		if err != nil {
			it.fail(err)
			return false
		}

		if it.cfg.validate {
			vs := stampIndex(ValidateGradingBench(entry), it.rows.index)
			if entry.GradingID != "" {
				if _, dup := it.seen[entry.GradingID]; dup {
					vs = append(vs, duplicateIDViolation(it.rows.index, "Grading ID", entry.GradingID))
				}
				it.seen[entry.GradingID] = struct{}{}
			}
			if len(vs) > 0 {
				if !it.collect {
					it.fail(&ValidationError{Dataset: "gradingbench", Violations: vs})
					return false
				}
				it.violations = append(it.violations, vs...)
			}
		}

		if !matchGradingBench(it.cfg, entry) {
			continue
		}
		it.cur = entry
		return true
	}
}

// Entry returns the entry produced by the last successful Next call.
func (it *GradingBenchIterator) Entry() GradingBenchEntry { return it.cur }

// Err returns the error that terminated iteration, if any. It is nil
// after a clean exhaustion of the dataset.
func (it *GradingBenchIterator) Err() error { return it.err }

// Close releases the underlying file. It is safe to call multiple times
// and after exhaustion.
func (it *GradingBenchIterator) Close() error {
	it.done = true
	return it.rows.close()
}

func (it *GradingBenchIterator) stop() {
	it.done = true
	if err := it.rows.close(); err != nil && it.err == nil {
		it.err = &DataLoadError{Dataset: "gradingbench", Path: it.rows.path, Index: -1, Err: err}
	}
}

func (it *GradingBenchIterator) fail(err error) {
	it.err = err
	it.done = true
	it.rows.close()
}

// parseRow converts the current CSV row into an entry. Unparseable
// numeric fields are structural errors and abort the load regardless of
// the validation setting.
func (it *GradingBenchIterator) parseRow() (GradingBenchEntry, error) {
	gradingID := it.rows.field("Grading ID")

	points, err := strconv.Atoi(strings.TrimSpace(it.rows.field("Points")))
	if err != nil {
		return GradingBenchEntry{}, &DataLoadError{
			Dataset:  "gradingbench",
			Path:     it.rows.path,
			Index:    it.rows.index,
			RecordID: gradingID,
			Err:      fmt.Errorf("parse Points %q: %w", it.rows.field("Points"), err),
		}
	}

	reward, err := strconv.ParseFloat(strings.TrimSpace(it.rows.field("Reward")), 64)
	if err != nil {
		return GradingBenchEntry{}, &DataLoadError{
			Dataset:  "gradingbench",
			Path:     it.rows.path,
			Index:    it.rows.index,
			RecordID: gradingID,
			Err:      fmt.Errorf("parse Reward %q: %w", it.rows.field("Reward"), err),
		}
	}

	return GradingBenchEntry{
		GradingID:         gradingID,
		ProblemID:         it.rows.field("Problem ID"),
		Problem:           it.rows.field("Problem"),
		Solution:          it.rows.field("Solution"),
		GradingGuidelines: it.rows.field("Grading guidelines"),
		Response:          it.rows.field("Response"),
		Points:            points,
		Reward:            reward,
		ProblemSource:     it.rows.field("Problem Source"),
	}, nil
}

func matchGradingBench(cfg *loadConfig, e GradingBenchEntry) bool {
	if cfg.hasProblemID && e.ProblemID != cfg.problemID {
		return false
	}
	if cfg.hasMinPoints && e.Points < cfg.minPoints {
		return false
	}
	if cfg.hasMaxPoints && e.Points > cfg.maxPoints {
		return false
	}
	return true
}
