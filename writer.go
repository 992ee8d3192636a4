package iocounter

import "io"

var _ Counter = (*Writer)(nil)
var _ io.Writer = (*Writer)(nil)

// Writer is a counter for an io.Writer. It delegates every Write to the
// wrapped writer and tallies the bytes the writer reports accepted.
//
// A Writer assumes exclusive use of the wrapped writer; writes through
// another handle are not counted.
type Writer struct {
	io.Writer
	count int64
}

// NewWriter returns a Writer wrapping w with a count of zero.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Writer: w}
}

// Write writes to the wrapped writer and counts the bytes written. The
// wrapped writer's return values, errors included, pass through unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.Writer.Write(p)
	w.count = addCount(w.count, n)
	return n, err
}

// Flush flushes the wrapped writer if it implements Flusher and is a no-op
// otherwise. Flushing never changes the count.
func (w *Writer) Flush() error {
	if f, ok := w.Writer.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Count returns the total number of bytes written so far.
func (w *Writer) Count() int64 {
	return w.count
}

var _ Counter = (*WriteCloser)(nil)
var _ io.WriteCloser = (*WriteCloser)(nil)

// WriteCloser is a counter for an io.WriteCloser.
type WriteCloser struct {
	io.WriteCloser
	count int64
}

// NewWriteCloser returns a WriteCloser wrapping wc with a count of zero.
func NewWriteCloser(wc io.WriteCloser) *WriteCloser {
	return &WriteCloser{WriteCloser: wc}
}

// Write writes to the wrapped io.WriteCloser and counts the bytes written.
func (wc *WriteCloser) Write(p []byte) (int, error) {
	n, err := wc.WriteCloser.Write(p)
	wc.count = addCount(wc.count, n)
	return n, err
}

// Flush flushes the wrapped writer if it implements Flusher.
func (wc *WriteCloser) Flush() error {
	if f, ok := wc.WriteCloser.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Count returns the total number of bytes written so far.
func (wc *WriteCloser) Count() int64 {
	return wc.count
}
