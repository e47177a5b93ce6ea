package region

import (
	"log"

	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/pavanmanishd/region/internal/mmap"
)

// Option configures a Region.
type Option func(*config)

type config struct {
	mem     memory.Allocator
	packed  bool
	logger  *log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{mem: memory.DefaultAllocator}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAllocator sets the allocator the backing buffer is obtained from.
// The buffer is requested once, in New, and returned in Release.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.mem = mem
	}
}

// WithMmap backs the region with an anonymous memory mapping instead of the
// Go heap. Such a region must be released explicitly.
func WithMmap() Option {
	return func(cfg *config) {
		cfg.mem = mmap.NewAllocator()
	}
}

// WithPacking places requests for pointer-free types back to back, without
// alignment padding, so Used is the exact sum of the requested sizes. Types
// holding pointers are still naturally aligned.
func WithPacking() Option {
	return func(cfg *config) {
		cfg.packed = true
	}
}

// WithLogger enables diagnostics on creation, release and overflow.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
