package recordstore

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSearchRecords_ShortQueryNeverHitsRepository(t *testing.T) {
	repo := &stubRepo{}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	for _, q := range []string{"", "a", "⌘"} {
		if err := s.SearchRecords(ctx, q, ""); err != nil {
			t.Fatalf("SearchRecords(%q): %v", q, err)
		}
	}
	if n := atomic.LoadInt32(&repo.searchCalls); n != 0 {
		t.Fatalf("repository search calls = %d, want 0", n)
	}
	st := s.Search()
	if len(st.Results) != 0 || st.IsSearching {
		t.Fatalf("short query must yield empty idle state: %+v", st)
	}
}

func TestSearchRecords_ReplacesResultsWholesale(t *testing.T) {
	repo := &stubRepo{
		searchRecordsFn: func(_ context.Context, req SearchRequest) ([]SearchResult, error) {
			if req.Limit != defaultSearchLimit {
				t.Errorf("limit = %d, want %d", req.Limit, defaultSearchLimit)
			}
			if req.Query == "river" {
				return []SearchResult{
					{RecordWithType: makeRecord("r1", "Riverside Depot")},
					{RecordWithType: makeRecord("r2", "River Heights")},
				}, nil
			}
			return []SearchResult{{RecordWithType: makeRecord("r3", "Harbor Yard")}}, nil
		},
	}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	if err := s.SearchRecords(ctx, "river", ""); err != nil {
		t.Fatalf("SearchRecords: %v", err)
	}
	if got := len(s.Search().Results); got != 2 {
		t.Fatalf("results = %d, want 2", got)
	}

	if err := s.SearchRecords(ctx, "harbor", ""); err != nil {
		t.Fatalf("SearchRecords: %v", err)
	}
	st := s.Search()
	if len(st.Results) != 1 || st.Results[0].ID != "r3" {
		t.Fatalf("results not replaced wholesale: %+v", st.Results)
	}
	if st.Query != "harbor" || st.IsSearching {
		t.Fatalf("unexpected search state: %+v", st)
	}
}

func TestSearchRecords_ErrorClearsSearchingFlag(t *testing.T) {
	repo := &stubRepo{
		searchRecordsFn: func(context.Context, SearchRequest) ([]SearchResult, error) {
			return nil, errors.New("search backend down")
		},
	}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })

	if err := s.SearchRecords(context.Background(), "river", ""); err == nil {
		t.Fatalf("expected error")
	}
	st := s.Search()
	if st.IsSearching {
		t.Fatalf("IsSearching not cleared on failure")
	}
	if len(st.Results) != 0 {
		t.Fatalf("failed search left results behind: %+v", st.Results)
	}
}

func TestClearSearch(t *testing.T) {
	repo := &stubRepo{
		searchRecordsFn: func(context.Context, SearchRequest) ([]SearchResult, error) {
			return []SearchResult{{RecordWithType: makeRecord("r1", "Riverside Depot")}}, nil
		},
	}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })

	if err := s.SearchRecords(context.Background(), "river", ""); err != nil {
		t.Fatalf("SearchRecords: %v", err)
	}
	s.ClearSearch()
	st := s.Search()
	if st.Query != "" || len(st.Results) != 0 || st.IsSearching {
		t.Fatalf("ClearSearch did not reset state: %+v", st)
	}
}

func TestSearchRecords_StaleCompletionDropped(t *testing.T) {
	gate := make(chan struct{})
	var calls int32
	repo := &stubRepo{
		searchRecordsFn: func(_ context.Context, req SearchRequest) ([]SearchResult, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				<-gate
				return []SearchResult{{RecordWithType: makeRecord("r-old", "old")}}, nil
			}
			return []SearchResult{{RecordWithType: makeRecord("r-new", "new")}}, nil
		},
	}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- s.SearchRecords(ctx, "slow query", "") }()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&calls) < 1 {
		select {
		case <-deadline:
			t.Fatalf("slow search never started")
		case <-time.After(time.Millisecond):
		}
	}

	if err := s.SearchRecords(ctx, "fast query", ""); err != nil {
		t.Fatalf("fresh search: %v", err)
	}
	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("superseded search: %v", err)
	}

	st := s.Search()
	if len(st.Results) != 1 || st.Results[0].ID != "r-new" {
		t.Fatalf("stale search overwrote fresh results: %+v", st.Results)
	}
}

func TestSetSearchQuery_PureWrite(t *testing.T) {
	repo := &stubRepo{}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })

	s.SetSearchQuery("riv")
	if n := atomic.LoadInt32(&repo.searchCalls); n != 0 {
		t.Fatalf("SetSearchQuery triggered %d searches", n)
	}
	if got := s.Search().Query; got != "riv" {
		t.Fatalf("query = %q, want riv", got)
	}
}
