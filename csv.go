package imobench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// csvRows reads one dataset file record by record. The header row is
// consumed at open time and mapped to column indexes, so field access is
// by column name. Row errors come back as *DataLoadError carrying the
// record index.
type csvRows struct {
	dataset string
	path    string
	f       *os.File
	r       *csv.Reader
	cols    map[string]int
	row     []string
	index   int // zero-based index of the current row, -1 before first
}

func openCSV(dataset, path string, columns []string) (*csvRows, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = fmt.Errorf("%w: dataset file does not exist", ErrNotFound)
		}
		return nil, &DataLoadError{Dataset: dataset, Path: path, Index: -1, Err: err}
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, &DataLoadError{Dataset: dataset, Path: path, Index: -1, Err: fmt.Errorf("read header: %w", err)}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range columns {
		if _, ok := cols[name]; !ok {
			f.Close()
			return nil, &DataLoadError{Dataset: dataset, Path: path, Index: -1, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	return &csvRows{dataset: dataset, path: path, f: f, r: r, cols: cols, index: -1}, nil
}

// next advances to the following row. It returns false with a nil error
// at end of file, and false with a *DataLoadError on a malformed row
// (wrong field count, bad quoting).
func (c *csvRows) next() (bool, error) {
	row, err := c.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, &DataLoadError{Dataset: c.dataset, Path: c.path, Index: c.index + 1, Err: err}
	}
	c.row = row
	c.index++
	return true, nil
}

func (c *csvRows) field(name string) string {
	return c.row[c.cols[name]]
}

func (c *csvRows) close() error {
	if c.f == nil {
		return nil
	}
	f := c.f
	c.f = nil
	return f.Close()
}
