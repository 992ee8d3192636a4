// Package iocounter provides io.Reader and io.Writer wrappers that track how
// many bytes have passed through them.
package iocounter

import "math"

// Counter counts a number of bytes during an IO operation.
type Counter interface {
	Count() int64
}

// Flusher is the interface a wrapped writer may implement to have Flush
// calls forwarded to it.
type Flusher interface {
	Flush() error
}

// addCount grows count by n, panicking on overflow rather than wrapping
// around. Overflow requires more than math.MaxInt64 bytes through a single
// wrapper and is treated as a programming error, not an IO error.
func addCount(count int64, n int) int64 {
	if count > math.MaxInt64-int64(n) {
		panic("iocounter: count overflow")
	}
	return count + int64(n)
}
