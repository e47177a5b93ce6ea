package region

import (
	"unsafe"

	"github.com/modern-go/reflect2"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/region/carray"
)

// Alloc carves count contiguous elements of type T out of the region and
// returns them as a slice with len and cap equal to count.
//
// Elements of a trivial type (see Classify) are returned as they are in the
// buffer. Every other element is default-constructed in index order: set to
// the zero value of T and then, if *T implements Initializer, initialized.
//
// Elements are naturally aligned for T unless the region was created
// WithPacking and T holds no pointers.
//
// The buffer is not scanned by the garbage collector. T may contain pointers
// (strings, slices, views) only if they point into the same region; a
// pointer to Go heap memory stored here does not keep that memory alive.
//
// Alloc panics with an *OverflowError if the request does not fit. With
// count == 0 it returns an empty slice positioned at the high-water mark.
func Alloc[T any](r *Region, count int) []T {
	if count < 0 {
		panic(errors.Wrapf(ErrNegativeCount, "Alloc[%s](%d)", typeName[T](), count))
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	off, ok := r.reserve(count, size, alignOf[T](r.packed))
	if !ok {
		r.fault(typeName[T](), count, size)
	}
	var s []T
	if count == 0 || size == 0 {
		// Nothing is carved, so off may be unaligned for T.
		s = sliceAt[T](r.at(off), count)
	} else {
		s = unsafe.Slice((*T)(r.at(off)), count)
	}
	if count > 0 && !IsTrivial[T]() {
		construct(s)
		r.constructed += count
	}
	return s
}

// AllocOne allocates a single T.
func AllocOne[T any](r *Region) *T {
	return &Alloc[T](r, 1)[0]
}

// NewArray allocates count elements and returns a view over them.
func NewArray[T any](r *Region, count int) carray.Array[T] {
	return carray.FromSlice(Alloc[T](r, count))
}

// AllocArray allocates count elements and points view at them. The view
// aliases region memory; it does not own it.
func AllocArray[T any](r *Region, view *carray.Array[T], count int) {
	tmp := NewArray[T](r, count)
	carray.ShallowCopy(view, tmp)
}

type sliceHeader struct {
	data     unsafe.Pointer
	len, cap int
}

// sliceAt builds a slice of n zero-byte elements at p without converting p
// to *T, which would require p to be aligned for T.
func sliceAt[T any](p unsafe.Pointer, n int) []T {
	return *(*[]T)(unsafe.Pointer(&sliceHeader{data: p, len: n, cap: n}))
}

func construct[T any](s []T) {
	var zero T
	_, initializer := any((*T)(nil)).(Initializer)
	for i := range s {
		s[i] = zero
		if initializer {
			any(&s[i]).(Initializer).Init()
		}
	}
}

func typeName[T any]() string {
	return reflect2.TypeOfPtr((*T)(nil)).Elem().String()
}
