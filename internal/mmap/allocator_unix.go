//go:build unix

// Package mmap provides an off-heap memory.Allocator backed by anonymous
// private mappings.
package mmap

import (
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Allocator maps every allocation separately. The memory is page aligned,
// zero filled and invisible to the garbage collector.
type Allocator struct{}

// NewAllocator returns the platform's off-heap allocator.
func NewAllocator() memory.Allocator {
	return &Allocator{}
}

func (a *Allocator) Allocate(size int) []byte {
	if size == 0 {
		return []byte{}
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		panic(errors.Wrapf(err, "mmap: allocate %d bytes", size))
	}
	return b
}

func (a *Allocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	nb := a.Allocate(size)
	copy(nb, b)
	a.Free(b)
	return nb
}

// Free unmaps b, which must be a slice returned by Allocate.
func (a *Allocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	if err := unix.Munmap(b); err != nil {
		panic(errors.Wrapf(err, "mmap: free %d bytes", len(b)))
	}
}

var _ memory.Allocator = (*Allocator)(nil)
