package recordstore

import (
	"errors"

	"github.com/inspecly/recordstore-go/internal/types"
)

// ErrBackPressure is returned when a prefetch shard queue is full.
var ErrBackPressure = errors.New("back-pressure (prefetch queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrPrefetchDisabled is returned by PrefetchRecordDetails when the store
// was built with WithoutPrefetch.
var ErrPrefetchDisabled = errors.New("prefetch disabled")

// ErrStoreClosed is returned when a background operation is requested after
// Close.
var ErrStoreClosed = errors.New("store closed")

// Re-export the shared repository error so callers compare against a single
// symbol.
var ErrNotFound = types.ErrNotFound
