package region

import (
	"log"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/pkg/errors"
)

// Region hands out typed storage from one buffer that is allocated once and
// never moves, so everything returned by the region stays valid until Release.
// Not goroutine-safe.
type Region struct {
	mem      memory.Allocator
	buf      []byte
	capacity int
	used     int // high-water mark
	packed   bool
	logger   *log.Logger

	allocs      int
	constructed int
	released    bool
}

// New creates a Region that can hand out capacity bytes.
// It panics if capacity is negative.
func New(capacity int, opts ...Option) *Region {
	if capacity < 0 {
		panic(errors.Wrapf(ErrNegativeCapacity, "New(%d)", capacity))
	}
	cfg := newConfig(opts)
	r := &Region{
		mem:      cfg.mem,
		capacity: capacity,
		packed:   cfg.packed,
		logger:   cfg.logger,
	}
	// One spare byte keeps the address of the high-water mark in bounds
	// when the region is full.
	r.buf = r.mem.Allocate(capacity + 1)
	r.logf("region: reserved %d bytes", capacity)
	return r
}

// reserve advances the high-water mark past count elements of size bytes and
// returns the offset of the carved extent. The region is left untouched when
// the request does not fit.
func (r *Region) reserve(count, size, align int) (int, bool) {
	r.panicIfReleased()
	n, ok := overflow.Mul(count, size)
	if !ok {
		return 0, false
	}
	off := r.used
	if n > 0 && align > 1 {
		off = alignUp(off, align)
	}
	end, ok := overflow.Add(off, n)
	if !ok || end > r.capacity {
		return 0, false
	}
	r.used = end
	r.allocs++
	return off, true
}

// at returns the address of byte off. When off == capacity the pointer is
// only usable as the base of an empty slice.
func (r *Region) at(off int) unsafe.Pointer {
	return unsafe.Pointer(&r.buf[off])
}

func (r *Region) fault(typ string, count, size int) {
	err := &OverflowError{
		Type:     typ,
		Count:    count,
		Size:     size,
		Used:     r.used,
		Capacity: r.capacity,
	}
	r.logf("%v", err)
	panic(err)
}

// Release hands the buffer back to its allocator. Everything allocated from
// the region becomes invalid and any further allocation panics.
func (r *Region) Release() {
	if r.released {
		return
	}
	r.mem.Free(r.buf)
	r.buf = nil
	r.released = true
	r.logf("region: released %d bytes (%d used)", r.capacity, r.used)
}

// Data returns the start of the backing buffer.
func (r *Region) Data() unsafe.Pointer {
	r.panicIfReleased()
	return unsafe.Pointer(unsafe.SliceData(r.buf))
}

// Bytes returns the carved-out prefix of the buffer.
func (r *Region) Bytes() []byte {
	r.panicIfReleased()
	return r.buf[:r.used:r.used]
}

// OffsetOf reports the byte offset of p within the region. Pointers at the
// high-water mark are accepted since empty allocations return them.
func (r *Region) OffsetOf(p unsafe.Pointer) (int, bool) {
	if r.released || p == nil {
		return 0, false
	}
	base, addr := uintptr(r.Data()), uintptr(p)
	if addr < base || addr-base > uintptr(r.used) {
		return 0, false
	}
	return int(addr - base), true
}

func (r *Region) panicIfReleased() {
	if r.released {
		panic(ErrReleased)
	}
}

func (r *Region) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

func alignUp(off, align int) int {
	mask := align - 1
	return (off + mask) &^ mask
}
