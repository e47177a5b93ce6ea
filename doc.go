// Package region implements a fixed-capacity linear allocator (memory region)
// for building in-memory databases of typed records.
//
// # Overview
//
// A Region owns one buffer, sized up front to the worst case of everything
// that will be stored in it. Allocations are carved from the buffer by
// advancing a high-water mark. The buffer is never reallocated, so every
// slice, pointer or view handed out stays valid while more records are
// appended. There is no individual deallocation: the whole region goes away
// at once.
//
// # Basic Usage
//
//	b := &region.Budget{}
//	region.Reserve[Record](b, len(input))
//	region.Reserve[uint32](b, totalFields)
//
//	r := b.NewRegion()
//	defer r.Release()
//
//	recs := region.Alloc[Record](r, len(input))
//	region.AllocArray(r, &recs[0].Fields, n)
//
// # Construction
//
// The scalar kinds bool, int8..int64, uint8..uint64, int, uint, float32 and
// float64 are trivial: their storage is returned as is. Storage
// for any other type is default-constructed element by element: set to the
// zero value and, if the pointer type implements Initializer, initialized.
// RegisterTrivial adds types to the trivial set.
//
// # Memory Layout
//
// Elements are naturally aligned. WithPacking places pointer-free types back
// to back instead, so Used is the exact sum of the requested sizes. The buffer
// comes from an arrow memory.Allocator, the Go heap by default or an
// anonymous mapping with WithMmap. The garbage collector does not scan it:
// records may hold pointers into the same region but never to other memory.
//
// # Overflow
//
// A request that does not fit is a sizing bug. Alloc panics with an
// *OverflowError before touching the buffer.
//
// # Important Notes
//
//   - A Region is not safe for concurrent use
//   - Memory handed out is only valid until Release
//   - Capacity never changes; there is no reset or growth
package region
