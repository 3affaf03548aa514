package imobench

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is wrapped by DataLoadError when a dataset file or the data
// directory itself does not exist. Test with errors.Is.
var ErrNotFound = errors.New("not found")

// DataLoadError reports a dataset that could not be loaded: a missing or
// unreadable file, or a record that failed structural parsing. A structural
// failure aborts the whole load; no partial dataset is ever returned.
type DataLoadError struct {
	Dataset  string // "answerbench", "proofbench" or "gradingbench"
	Path     string // file or directory the loader tried to read
	Index    int    // zero-based record index, -1 if not record-specific
	RecordID string // offending record id when known
	Err      error
}

func (e *DataLoadError) Error() string {
	var b strings.Builder
	b.WriteString("imobench: ")
	if e.Dataset != "" {
		b.WriteString(e.Dataset)
		b.WriteString(": ")
	}
	b.WriteString("load ")
	fmt.Fprintf(&b, "%q", e.Path)
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": record %d", e.Index)
		if e.RecordID != "" {
			fmt.Fprintf(&b, " (%s)", e.RecordID)
		}
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Violation describes one failed semantic constraint on one record.
type Violation struct {
	Index      int    // zero-based record index within the load
	RecordID   string // record id, empty when the id field itself is missing
	Field      string // CSV column name
	Constraint string // constraint that failed, e.g. "non-empty", "<= 10"
	Value      string // actual value, rendered as a string
}

func (v Violation) String() string {
	id := v.RecordID
	if id == "" {
		id = fmt.Sprintf("record %d", v.Index)
	}
	return fmt.Sprintf("%s: field %q: want %s, got %q", id, v.Field, v.Constraint, v.Value)
}

// ValidationError reports records that parsed but violate a semantic
// constraint. Eager loads aggregate violations across every offending
// record in the file; lazy iteration carries only the violations of the
// first offending record reached.
type ValidationError struct {
	Dataset    string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "imobench: %s: %d validation violation", e.Dataset, len(e.Violations))
	if len(e.Violations) != 1 {
		b.WriteByte('s')
	}
	for i, v := range e.Violations {
		if i == 8 {
			fmt.Fprintf(&b, "; and %d more", len(e.Violations)-i)
			break
		}
		b.WriteString("; ")
		b.WriteString(v.String())
	}
	return b.String()
}
