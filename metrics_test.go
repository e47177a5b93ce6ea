package region

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestRegionMetrics(t *testing.T) {
	r := New(1024)

	// Test initial state
	assert.Zero(t, r.Used())
	assert.Equal(t, 1024, r.Capacity())
	assert.Equal(t, 1024, r.Remaining())
	assert.Zero(t, r.Utilization())

	Alloc[int64](r, 32)
	Alloc[tracked](r, 16)
	Alloc[bool](r, 0)

	assert.Equal(t, 512, r.Used())
	assert.Equal(t, 512, r.Remaining())
	assert.Equal(t, 0.5, r.Utilization())

	m := r.Metrics()
	assert.Equal(t, Metrics{
		Capacity:    1024,
		Used:        512,
		Remaining:   512,
		Allocations: 3,
		Constructed: 16,
		Utilization: 0.5,
	}, m)

	// Capacity never changes, not even on release.
	r.Release()
	assert.Equal(t, 1024, r.Capacity())
	assert.Equal(t, 512, r.Used())
}

func TestRegionFullyConsumed(t *testing.T) {
	r := New(64)
	Alloc[uint64](r, 8)
	assert.Zero(t, r.Remaining())
	assert.Equal(t, 1.0, r.Utilization())

	// Empty requests still succeed at the terminal state.
	empty := Alloc[uint64](r, 0)
	assert.Len(t, empty, 0)
	assert.Equal(t, unsafe.Add(r.Data(), r.Capacity()), unsafe.Pointer(unsafe.SliceData(empty)))
	off, ok := r.OffsetOf(unsafe.Pointer(unsafe.SliceData(empty)))
	assert.True(t, ok)
	assert.Equal(t, 64, off)
	assert.Equal(t, 64, r.Used())
	assert.NotNil(t, recoverPanic(func() { Alloc[uint8](r, 1) }))
}

func TestMetricsString(t *testing.T) {
	m := Metrics{Capacity: 64, Used: 16, Remaining: 48, Allocations: 2, Constructed: 1, Utilization: 0.25}
	assert.JSONEq(t,
		`{"capacity":64,"used":16,"remaining":48,"allocations":2,"constructed":1,"utilization":0.25}`,
		m.String())
}
