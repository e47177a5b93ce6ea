package region

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrReleased is the panic value of any use of a released Region.
	ErrReleased = errors.New("region: use after Release()")
	// ErrOverflow matches every *OverflowError.
	ErrOverflow = errors.New("region: overflow")
	// ErrNegativeCount is wrapped by panics on a request for fewer than zero elements.
	ErrNegativeCount = errors.New("region: negative element count")
	// ErrNegativeCapacity is wrapped by the panic of New with a negative capacity.
	ErrNegativeCapacity = errors.New("region: negative capacity")
)

// OverflowError is the panic value of a request that does not fit in the
// remaining capacity. Nothing has been carved or written when it is raised.
type OverflowError struct {
	Type     string // element type
	Count    int    // elements requested
	Size     int    // bytes per element
	Used     int    // high-water mark at the time of the request
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("region: overflow allocating %d x %s (%d bytes each): %d of %d bytes used",
		e.Count, e.Type, e.Size, e.Used, e.Capacity)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
