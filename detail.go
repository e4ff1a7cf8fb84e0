package recordstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/inspecly/recordstore-go/internal/prefetch"
)

// DetailState is one record's aggregate view: the record itself plus its
// reports summary and available templates. Snapshots returned by
// GetRecordDetail are read-only.
type DetailState struct {
	Record    *RecordWithType
	Reports   []ReportSummary
	Templates []Template
	IsLoading bool
	Error     string
}

// hit reports whether the entry satisfies a fetch without refetching.
// Failed entries are not hits; a retry goes back to the network.
func (d *DetailState) hit() bool {
	return d != nil && d.Record != nil && d.Error == ""
}

// FetchRecordDetail makes recordID the active detail and ensures its
// aggregate view is cached. A populated entry suppresses the refetch
// entirely; ClearRecordDetail plus a new fetch is the only refresh path.
// The templates mirror follows the active detail, so it is only updated
// when recordID is still the current one after the fetch settles.
func (s *Store) FetchRecordDetail(ctx context.Context, recordID string) error {
	s.mu.Lock()
	s.currentRecordID = recordID
	s.mu.Unlock()

	err := s.ensureDetail(ctx, recordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil && s.currentRecordID == recordID {
		if st, ok := s.details.Get(recordID); ok && st.hit() {
			s.recordTemplates = st.Templates
		}
	}
	return err
}

// ensureDetail guarantees a settled cache entry for recordID. On a miss,
// the record, its reports summary, and its templates are fetched
// concurrently; the entry is finalized only after all three settle. The
// primary record fetch is required; reports and templates failures are
// absorbed as empty lists. It never touches the active selection or the
// templates mirror, which is what makes it safe as the warmer's fetch
// function.
func (s *Store) ensureDetail(ctx context.Context, recordID string) error {
	s.mu.Lock()
	if st, ok := s.details.Get(recordID); ok && st.hit() {
		s.mu.Unlock()
		detailCacheHits.Inc()
		return nil
	}

	// A fan-out for this key is already running; wait for it rather than
	// duplicating it. Entries have a single writer per key.
	if ch, ok := s.inflight[recordID]; ok {
		s.mu.Unlock()
		select {
		case <-ch:
			return s.settledError(recordID)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	ch := make(chan struct{})
	s.inflight[recordID] = ch
	s.details.Set(recordID, &DetailState{IsLoading: true})
	s.mu.Unlock()
	detailCacheMisses.Inc()

	var (
		rec     *RecordWithType
		recErr  error
		reports []ReportSummary
		repErr  error
		tpls    []Template
		tplErr  error
	)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		rec, recErr = s.repo.FetchRecordWithType(ctx, recordID)
	}()
	go func() {
		defer wg.Done()
		reports, repErr = s.repo.FetchRecordReportsSummary(ctx, recordID)
	}()
	go func() {
		defer wg.Done()
		tpls, tplErr = s.repo.FetchRecordTemplates(ctx, recordID)
	}()
	wg.Wait()

	if repErr != nil || reports == nil {
		reports = []ReportSummary{}
	}
	if tplErr != nil || tpls == nil {
		tpls = []Template{}
	}
	st := &DetailState{Record: rec, Reports: reports, Templates: tpls}
	if recErr != nil {
		st.Record = nil
		st.Error = recErr.Error()
		detailFanoutFailures.Inc()
	}

	s.mu.Lock()
	s.details.Set(recordID, st)
	delete(s.inflight, recordID)
	s.mu.Unlock()
	close(ch)

	return recErr
}

// settledError reports the outcome of a fan-out this caller waited on, so a
// deduped caller sees the same failure the fan-out's owner returned.
func (s *Store) settledError(recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.details.Get(recordID); ok && st.Error != "" {
		return errors.New(st.Error)
	}
	return nil
}

// ClearRecordDetail resets only the active detail id. Cache entries are not
// evicted: a populated entry stays valid until the process ends (or is
// displaced in LRU mode).
func (s *Store) ClearRecordDetail() {
	s.mu.Lock()
	s.currentRecordID = ""
	s.mu.Unlock()
}

// GetRecordDetail returns a snapshot of the cached entry for recordID. ok is
// false for keys never fetched, which is distinct from an entry that exists
// but is still loading.
func (s *Store) GetRecordDetail(recordID string) (DetailState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.details.Get(recordID)
	if !ok {
		return DetailState{}, false
	}
	return *st, true
}

// CurrentRecordID returns the active detail id ("" when none).
func (s *Store) CurrentRecordID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRecordID
}

// PrefetchRecordDetails warms the detail cache for the given ids in the
// background. Ids already cached, queued, or running are skipped by the
// usual cache and dedup rules. Returns ErrBackPressure when a prefetch
// queue is full.
func (s *Store) PrefetchRecordDetails(ctx context.Context, recordIDs ...string) error {
	if s.warmer == nil {
		return ErrPrefetchDisabled
	}
	for _, id := range recordIDs {
		if err := s.warmer.Submit(ctx, id); err != nil {
			var qfe *prefetch.QueueFullError
			if errors.As(err, &qfe) {
				return fmt.Errorf("%w: %v", ErrBackPressure, qfe)
			}
			if errors.Is(err, prefetch.ErrWarmerClosed) {
				return ErrStoreClosed
			}
			return err
		}
	}
	return nil
}

// ------------------------- detail cache -------------------------

// detailCache hides whether entries live in a plain map (default, unbounded)
// or an LRU (WithDetailCacheSize). The fetch/read contract is identical in
// both modes.
type detailCache interface {
	Get(recordID string) (*DetailState, bool)
	Set(recordID string, st *DetailState)
	Len() int
}

func newDetailCache(size int) detailCache {
	if size > 0 {
		// size is validated by the option, so construction cannot fail.
		c, _ := lru.New[string, *DetailState](size)
		return &lruDetailCache{c: c}
	}
	return &mapDetailCache{m: make(map[string]*DetailState)}
}

type mapDetailCache struct{ m map[string]*DetailState }

func (c *mapDetailCache) Get(id string) (*DetailState, bool) { st, ok := c.m[id]; return st, ok }
func (c *mapDetailCache) Set(id string, st *DetailState)     { c.m[id] = st }
func (c *mapDetailCache) Len() int                           { return len(c.m) }

type lruDetailCache struct{ c *lru.Cache[string, *DetailState] }

func (c *lruDetailCache) Get(id string) (*DetailState, bool) { return c.c.Get(id) }
func (c *lruDetailCache) Set(id string, st *DetailState)     { c.c.Add(id, st) }
func (c *lruDetailCache) Len() int                           { return c.c.Len() }
