package region

import (
	"math"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"github.com/pkg/errors"
)

// Budget computes the capacity a Region needs for a known sequence of
// requests. Replaying the same Reserve calls as Alloc calls on the region it
// creates never overflows.
type Budget struct {
	// Packed mirrors WithPacking.
	Packed bool

	bytes int
}

// Reserve accounts for count elements of type T.
func Reserve[T any](b *Budget, count int) {
	if count < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "Reserve[%s](%d)", typeName[T](), count))
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	n, ok := overflow.Mul(count, size)
	off := b.bytes
	if ok && n > 0 {
		off = alignUp(off, alignOf[T](b.Packed))
	}
	if ok {
		off, ok = overflow.Add(off, n)
	}
	if !ok {
		panic(&OverflowError{
			Type:     typeName[T](),
			Count:    count,
			Size:     size,
			Used:     b.bytes,
			Capacity: math.MaxInt,
		})
	}
	b.bytes = off
}

// Bytes returns the capacity accumulated so far.
func (b *Budget) Bytes() int {
	return b.bytes
}

// NewRegion creates a Region sized to the budget.
func (b *Budget) NewRegion(opts ...Option) *Region {
	if b.Packed {
		opts = append([]Option{WithPacking()}, opts...)
	}
	return New(b.bytes, opts...)
}
