package region

import (
	"runtime"
	"testing"
	"unsafe"
)

// BenchmarkDatabaseBuild builds a table of records with nested field lists,
// the workload regions are meant for.
func BenchmarkDatabaseBuild(b *testing.B) {
	const numRecords = 1000
	const fieldsPerRecord = 8

	b.Run("Region", func(b *testing.B) {
		budget := &Budget{}
		Reserve[node](budget, numRecords)
		Reserve[uint32](budget, numRecords*fieldsPerRecord)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r := budget.NewRegion()
			nodes := Alloc[node](r, numRecords)
			for j := range nodes {
				nodes[j].id = uint32(j)
				AllocArray(r, &nodes[j].children, fieldsPerRecord)
			}
			r.Release()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		type heapNode struct {
			id       uint32
			children []uint32
		}
		for i := 0; i < b.N; i++ {
			nodes := make([]heapNode, numRecords)
			for j := range nodes {
				nodes[j].id = uint32(j)
				nodes[j].children = make([]uint32, fieldsPerRecord)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})
}

// BenchmarkConstruction compares trivial and constructed element types
func BenchmarkConstruction(b *testing.B) {
	const count = 256

	b.Run("Trivial", func(b *testing.B) {
		r := New(b.N * count * 8)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Alloc[int64](r, count)
		}
	})

	b.Run("Constructed", func(b *testing.B) {
		r := New(b.N * count * int(unsafe.Sizeof(plain{})))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Alloc[plain](r, count)
		}
	})
}
