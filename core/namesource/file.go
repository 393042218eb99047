package namesource

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/usergen/core/format"
)

// File reads full-name records from newline-delimited input, one record per
// line. It implements Source.
type File struct {
	sc     *bufio.Scanner
	closer io.Closer
	path   string
	cur    format.Name
	seen   int
	err    error
	done   bool
}

// Open opens a full-names file. The returned source owns the file handle;
// call Close when done.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open name file: %w", err)
	}
	src := FromReader(f)
	src.closer = f
	src.path = path
	return src, nil
}

// FromReader wraps an already-open stream of full-name lines. Close is a
// no-op for sources built this way.
func FromReader(r io.Reader) *File {
	return &File{sc: bufio.NewScanner(r)}
}

// Next advances to the next non-blank line.
func (f *File) Next() bool {
	if f.err != nil || f.done {
		return false
	}
	for f.sc.Scan() {
		rec, ok := parseLine(f.sc.Text())
		if !ok {
			continue
		}
		f.cur = rec
		f.seen++
		return true
	}
	f.done = true
	if err := f.sc.Err(); err != nil {
		f.err = fmt.Errorf("read %s: %w", f.name(), err)
		return false
	}
	if f.seen == 0 {
		f.err = fmt.Errorf("%s: %w", f.name(), ErrNoRecords)
	}
	return false
}

// Record returns the record produced by the last successful Next call.
func (f *File) Record() format.Name {
	return f.cur
}

// Err reports the first error hit while reading, or ErrNoRecords when the
// input held no usable lines.
func (f *File) Err() error {
	return f.err
}

// Close releases the underlying file when the source owns one.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

func (f *File) name() string {
	if f.path != "" {
		return f.path
	}
	return "input"
}
