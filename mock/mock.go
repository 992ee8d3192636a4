// Package mock provides stream doubles with injectable behavior for testing
// the counting wrappers.
package mock

import "io"

var _ io.ReadCloser = (*Reader)(nil)

// Reader is a mock readable stream. Read and Close delegate to the
// corresponding Fn fields.
type Reader struct {
	ReadFn  func(p []byte) (int, error)
	CloseFn func() error
}

// NewErrReader returns a Reader whose reads always fail with err.
func NewErrReader(err error) *Reader {
	return &Reader{
		ReadFn: func(p []byte) (int, error) { return 0, err },
	}
}

// Read delegates to ReadFn.
func (r *Reader) Read(p []byte) (int, error) {
	return r.ReadFn(p)
}

// Close delegates to CloseFn, or is a no-op if CloseFn is nil.
func (r *Reader) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}

var _ io.WriteCloser = (*Writer)(nil)

// Writer is a mock writable stream. Write, Flush and Close delegate to the
// corresponding Fn fields.
type Writer struct {
	WriteFn func(p []byte) (int, error)
	FlushFn func() error
	CloseFn func() error
}

// NewErrWriter returns a Writer whose writes always fail with err.
func NewErrWriter(err error) *Writer {
	return &Writer{
		WriteFn: func(p []byte) (int, error) { return 0, err },
	}
}

// Write delegates to WriteFn.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteFn(p)
}

// Flush delegates to FlushFn, or is a no-op if FlushFn is nil.
func (w *Writer) Flush() error {
	if w.FlushFn == nil {
		return nil
	}
	return w.FlushFn()
}

// Close delegates to CloseFn, or is a no-op if CloseFn is nil.
func (w *Writer) Close() error {
	if w.CloseFn == nil {
		return nil
	}
	return w.CloseFn()
}
