package linebuf

import (
	"fmt"
	"io"
	"sync"
)

const (
	// DefaultMaxLines is the buffered line count that triggers a flush.
	DefaultMaxLines = 1000

	// DefaultMaxBytes is the buffered byte size that triggers a flush.
	DefaultMaxBytes = 64 * 1024
)

// Option configures a Writer.
type Option func(*Writer)

// WithMaxLines sets how many lines accumulate before an automatic flush.
func WithMaxLines(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.maxLines = n
		}
	}
}

// WithMaxBytes sets how many bytes accumulate before an automatic flush.
func WithMaxBytes(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.maxBytes = n
		}
	}
}

// Writer accumulates output lines and hands them to the underlying
// destination as one write per flush, amortizing syscall cost across many
// small lines. It is safe for concurrent use; the destination only ever
// sees single-writer access.
//
// Write errors are sticky: after a flush fails, every subsequent call
// returns the first error.
type Writer struct {
	mu       sync.Mutex
	dst      io.Writer
	buf      []byte
	lines    int
	maxLines int
	maxBytes int
	err      error
}

// NewWriter wraps the destination in a buffered line writer.
func NewWriter(dst io.Writer, opts ...Option) *Writer {
	w := &Writer{
		dst:      dst,
		maxLines: DefaultMaxLines,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.buf = make([]byte, 0, w.maxBytes)
	return w
}

// WriteLine appends one line to the buffer, adding the trailing newline,
// and flushes when either threshold is reached.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}
	w.buf = append(w.buf, line...)
	w.buf = append(w.buf, '\n')
	w.lines++
	if w.lines >= w.maxLines || len(w.buf) >= w.maxBytes {
		return w.flush()
	}
	return nil
}

// Flush writes any buffered lines to the destination.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flush()
}

// Close flushes buffered lines and closes the destination when it
// implements io.Closer.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	flushErr := w.flush()
	if c, ok := w.dst.(io.Closer); ok {
		if err := c.Close(); err != nil && flushErr == nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return flushErr
}

// flush must be called with w.mu held.
func (w *Writer) flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buf) == 0 {
		return nil
	}
	if _, err := w.dst.Write(w.buf); err != nil {
		w.err = fmt.Errorf("write output: %w", err)
		return w.err
	}
	w.buf = w.buf[:0]
	w.lines = 0
	return nil
}
