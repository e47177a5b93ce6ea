package region

import jsoniter "github.com/json-iterator/go"

// Capacity returns the size of the backing buffer fixed at construction.
func (r *Region) Capacity() int {
	return r.capacity
}

// Used returns the high-water mark: bytes carved out so far, including
// alignment padding.
func (r *Region) Used() int {
	return r.used
}

// Remaining returns the number of bytes still available.
func (r *Region) Remaining() int {
	return r.capacity - r.used
}

// Utilization returns the ratio of used bytes to capacity (0.0 to 1.0).
// Returns 0.0 for a zero-capacity region.
func (r *Region) Utilization() float64 {
	if r.capacity == 0 {
		return 0
	}
	return float64(r.used) / float64(r.capacity)
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() Metrics {
	return Metrics{
		Capacity:    r.capacity,
		Used:        r.used,
		Remaining:   r.Remaining(),
		Allocations: r.allocs,
		Constructed: r.constructed,
		Utilization: r.Utilization(),
	}
}

// Metrics contains statistical information about a region.
type Metrics struct {
	Capacity    int     `json:"capacity"`
	Used        int     `json:"used"`
	Remaining   int     `json:"remaining"`
	Allocations int     `json:"allocations"` // requests served, including empty ones
	Constructed int     `json:"constructed"` // elements default-constructed
	Utilization float64 `json:"utilization"`
}

func (m Metrics) String() string {
	s, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(m)
	if err != nil {
		return err.Error()
	}
	return s
}
