package iocounter

import "io"

var _ Counter = (*Reader)(nil)
var _ io.Reader = (*Reader)(nil)

// Reader is a counter for an io.Reader. It delegates every Read to the
// wrapped reader and tallies the bytes the reader reports transferred.
//
// A Reader assumes exclusive use of the wrapped reader; reads through
// another handle are not counted.
type Reader struct {
	io.Reader
	count int64
}

// NewReader returns a Reader wrapping r with a count of zero.
func NewReader(r io.Reader) *Reader {
	return &Reader{Reader: r}
}

// Read reads from the wrapped reader and counts the bytes read. The wrapped
// reader's return values, errors included, pass through unchanged.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	r.count = addCount(r.count, n)
	return n, err
}

// Count returns the total number of bytes read so far.
func (r *Reader) Count() int64 {
	return r.count
}

var _ Counter = (*ReadCloser)(nil)
var _ io.ReadCloser = (*ReadCloser)(nil)

// ReadCloser is a counter for an io.ReadCloser.
type ReadCloser struct {
	io.ReadCloser
	count int64
}

// NewReadCloser returns a ReadCloser wrapping rc with a count of zero.
func NewReadCloser(rc io.ReadCloser) *ReadCloser {
	return &ReadCloser{ReadCloser: rc}
}

// Read reads from the wrapped io.ReadCloser and counts the bytes read.
func (rc *ReadCloser) Read(p []byte) (int, error) {
	n, err := rc.ReadCloser.Read(p)
	rc.count = addCount(rc.count, n)
	return n, err
}

// Count returns the total number of bytes read so far.
func (rc *ReadCloser) Count() int64 {
	return rc.count
}
