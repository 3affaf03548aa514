package imobench

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultDataDir is where the facade functions look for the dataset CSV
// files, relative to the working directory.
const DefaultDataDir = "data/imobench"

// Loader loads the IMO Bench datasets from a fixed data directory. The
// zero value is not usable; construct with NewLoader. A Loader holds no
// state besides the directory path, so independent callers may each use
// their own instance concurrently.
type Loader struct {
	dataDir string
}

// NewLoader binds a loader to dataDir. An empty dataDir selects
// DefaultDataDir. A directory that does not exist is a *DataLoadError
// wrapping ErrNotFound and naming the path.
func NewLoader(dataDir string) (*Loader, error) {
	if strings.TrimSpace(dataDir) == "" {
		dataDir = DefaultDataDir
	}

	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			err = fmt.Errorf("%w: data directory does not exist", ErrNotFound)
		}
		return nil, &DataLoadError{Path: dataDir, Index: -1, Err: err}
	}
	if !info.IsDir() {
		return nil, &DataLoadError{Path: dataDir, Index: -1, Err: errors.New("not a directory")}
	}

	return &Loader{dataDir: dataDir}, nil
}

// DataDir reports the directory this loader reads from.
func (l *Loader) DataDir() string { return l.dataDir }

func stampIndex(violations []Violation, index int) []Violation {
	for i := range violations {
		violations[i].Index = index
	}
	return violations
}

func duplicateIDViolation(index int, field, id string) Violation {
	return Violation{
		Index:      index,
		RecordID:   id,
		Field:      field,
		Constraint: "unique id within dataset",
		Value:      id,
	}
}
