//go:build !unix

package mmap

import "github.com/apache/arrow/go/v17/arrow/memory"

// NewAllocator falls back to the Go heap where anonymous mappings are not
// available.
func NewAllocator() memory.Allocator {
	return memory.NewGoAllocator()
}
