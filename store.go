// Package recordstore implements the client-side records store for the
// Inspecly inspection platform: a cursor-paginated record list, debounced
// search, a keyed per-record detail cache, and the legacy "site" naming of
// the same state. All state lives in memory and is rebuilt from repository
// fetches; the store owns no rendering, transport, or persistence.
package recordstore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/inspecly/recordstore-go/internal/prefetch"
)

const (
	defaultPageSize       = 25
	defaultSearchLimit    = 10
	defaultPrefetchShards = 2

	// legacyListLimit bounds the unpaginated records view. Old call sites
	// expect the whole collection in one shot.
	legacyListLimit = 200

	// minSearchQueryLen is a cost-avoidance rule: shorter queries never
	// reach the repository.
	minSearchQueryLen = 2
)

// Store owns the records state one organisation screenful of UI reads from.
// All methods are safe for concurrent use; mutating methods block until the
// repository call settles and the state transition is applied.
type Store struct {
	repo Repository
	log  zerolog.Logger

	pageSize        int
	searchLimit     int
	detailCacheSize int
	prefetchShards  int
	prefetchOff     bool

	mu sync.Mutex

	// Legacy unpaginated view and the current selection. Mutations patch
	// this collection locally; the paginated list below is never touched
	// by them.
	records             []RecordWithType
	recordsState        RecordsState
	currentRecord       *RecordWithType
	recordTemplates     []Template
	currentRecordTypeID string

	list    ListState
	listGen uint64

	search    SearchState
	searchGen uint64

	recordTypes RecordTypesState

	details         detailCache
	inflight        map[string]chan struct{}
	currentRecordID string

	warmer     *prefetch.Warmer
	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Store over the given repository. Additional options can
// be provided via functional arguments; RECORDSTORE_* environment variables
// supply defaults underneath them.
func New(repo Repository, opts ...Option) *Store {
	if repo == nil {
		panic("repository cannot be nil")
	}

	s := &Store{
		repo:           repo,
		log:            zerolog.Nop(),
		pageSize:       defaultPageSize,
		searchLimit:    defaultSearchLimit,
		prefetchShards: defaultPrefetchShards,
		inflight:       make(map[string]chan struct{}),
	}

	opts = append(envOptions(), opts...)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			panic(err)
		}
	}

	s.details = newDetailCache(s.detailCacheSize)

	if !s.prefetchOff {
		// The warmer only fills cache entries; the active selection and the
		// templates mirror belong to foreground FetchRecordDetail calls.
		s.warmer = prefetch.NewWarmer(
			func(ctx context.Context, recordID string) error {
				return s.ensureDetail(ctx, recordID)
			},
			prefetch.Config{
				Shards: s.prefetchShards,
				ErrorHandler: func(err error) {
					s.log.Debug().Err(err).Msg("detail prefetch failed")
				},
			},
		)
	}

	return s
}

// Close stops the background prefetch warmer (if any). Safe to call
// multiple times.
func (s *Store) Close() error {
	if !atomic.CompareAndSwapUint32(&s.closedOnce, 0, 1) {
		return nil
	}
	if s.warmer != nil {
		s.warmer.Stop()
	}
	return nil
}
