// Package pixbuf holds the per-channel sample grid used by every image in
// the pipeline. A Buffer is one contiguous row-major []uint8 with a row
// stride; there are no per-row allocations to pair up and release.
package pixbuf

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxSamples bounds a single buffer allocation (256 Mi samples).
const DefaultMaxSamples = 1 << 28

// ErrAllocation is returned when a buffer cannot be allocated.
var ErrAllocation = errors.New("pixel buffer allocation failed")

// Buffer is a rows×cols grid of 8-bit samples stored row-major.
type Buffer struct {
	Pix    []uint8
	Rows   int
	Cols   int
	Stride int // samples per row
}

// Allocator creates zero-initialized buffers.
type Allocator interface {
	New(rows, cols int) (*Buffer, error)
}

// LimitAllocator refuses buffers larger than Max samples.
// A zero Max means DefaultMaxSamples.
type LimitAllocator struct {
	Max int
}

// New implements Allocator.
func (a LimitAllocator) New(rows, cols int) (*Buffer, error) {
	limit := a.Max
	if limit <= 0 {
		limit = DefaultMaxSamples
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrAllocation, cols, rows)
	}
	if rows > math.MaxInt/cols || rows*cols > limit {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d samples", ErrAllocation, cols, rows, limit)
	}
	return &Buffer{
		Pix:    make([]uint8, rows*cols),
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
	}, nil
}

// New allocates a zero-initialized buffer with the default limit.
func New(rows, cols int) (*Buffer, error) {
	return LimitAllocator{}.New(rows, cols)
}

// Row returns the samples of row y.
func (b *Buffer) Row(y int) []uint8 {
	off := y * b.Stride
	return b.Pix[off : off+b.Cols : off+b.Cols]
}

// At returns the sample at row y, column x.
func (b *Buffer) At(y, x int) uint8 {
	return b.Pix[y*b.Stride+x]
}

// Set stores v at row y, column x.
func (b *Buffer) Set(y, x int, v uint8) {
	b.Pix[y*b.Stride+x] = v
}

// SameSize reports whether b and o have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	return b != nil && o != nil && b.Rows == o.Rows && b.Cols == o.Cols
}

// Clone returns a deep copy of b using alloc.
func (b *Buffer) Clone(alloc Allocator) (*Buffer, error) {
	c, err := alloc.New(b.Rows, b.Cols)
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Rows; y++ {
		copy(c.Row(y), b.Row(y))
	}
	return c, nil
}

// Release drops the sample storage. It is safe to call on a nil or
// already released buffer.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.Pix = nil
	b.Rows, b.Cols, b.Stride = 0, 0, 0
}

// Released reports whether b holds no samples.
func (b *Buffer) Released() bool {
	return b == nil || b.Pix == nil
}

// FailAfter wraps an allocator and fails every allocation after the first
// N succeed. It exercises rollback paths.
type FailAfter struct {
	N     int
	Inner Allocator
	count int
}

// New implements Allocator.
func (f *FailAfter) New(rows, cols int) (*Buffer, error) {
	if f.count >= f.N {
		return nil, fmt.Errorf("%w: allocation %d refused", ErrAllocation, f.count+1)
	}
	f.count++
	inner := f.Inner
	if inner == nil {
		inner = LimitAllocator{}
	}
	return inner.New(rows, cols)
}
