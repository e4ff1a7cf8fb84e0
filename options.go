package recordstore

// This file defines functional options that configure the Store during
// construction. Keeping them in a standalone file avoids cluttering
// store.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option configures a Store during construction in New.
//
// Options are applied after environment-derived defaults, so an explicit
// option always wins over a RECORDSTORE_* variable. Options must be
// deterministic and side-effect free.
type Option func(*Store) error

// WithLogger sets the logger used for store diagnostics. The default is a
// no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) error {
		s.log = l
		return nil
	}
}

// WithPageSize sets the fixed page size used by paginated list fetches.
func WithPageSize(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("page size must be > 0, got %d", n)
		}
		s.pageSize = n
		return nil
	}
}

// WithSearchLimit bounds autosuggest result sets. Search is a suggestions
// surface, so the limit is conventionally smaller than the page size.
func WithSearchLimit(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("search limit must be > 0, got %d", n)
		}
		s.searchLimit = n
		return nil
	}
}

// WithDetailCacheSize caps the detail cache at n entries with LRU
// displacement. Zero (the default) keeps the cache unbounded, which is
// acceptable for short-lived client sessions.
func WithDetailCacheSize(n int) Option {
	return func(s *Store) error {
		if n < 0 {
			return fmt.Errorf("detail cache size must be >= 0, got %d", n)
		}
		s.detailCacheSize = n
		return nil
	}
}

// WithPrefetchShards sets the number of background workers warming the
// detail cache.
func WithPrefetchShards(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return fmt.Errorf("prefetch shards must be > 0, got %d", n)
		}
		s.prefetchShards = n
		return nil
	}
}

// WithoutPrefetch disables the background warmer entirely;
// PrefetchRecordDetails then returns ErrPrefetchDisabled.
func WithoutPrefetch() Option {
	return func(s *Store) error {
		s.prefetchOff = true
		return nil
	}
}
