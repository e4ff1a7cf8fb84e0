package recordstore

import "context"

// SearchState is the autosuggest slice, decoupled from the paginated list.
type SearchState struct {
	Query       string
	Results     []SearchResult
	IsSearching bool
}

// SetSearchQuery records the query without any network effect. Debouncing is
// the caller's responsibility (see Debouncer); keeping this a pure write
// lets the UI reflect keystrokes immediately.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.search.Query = query
	s.mu.Unlock()
}

// SearchRecords runs a bounded autosuggest search. Queries under two
// characters always yield empty results without touching the repository.
// A completion belonging to a superseded search is discarded.
func (s *Store) SearchRecords(ctx context.Context, query, recordTypeID string) error {
	if len([]rune(query)) < minSearchQueryLen {
		s.mu.Lock()
		s.searchGen++
		s.search = SearchState{Query: query}
		s.mu.Unlock()
		searchShortCircuits.Inc()
		return nil
	}

	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.search = SearchState{Query: query, IsSearching: true}
	s.mu.Unlock()

	results, err := s.repo.SearchRecords(ctx, SearchRequest{
		Query:        query,
		RecordTypeID: recordTypeID,
		Limit:        s.searchLimit,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		staleDropsTotal.WithLabelValues("search").Inc()
		s.log.Debug().Str("query", query).Msg("discarding superseded search")
		return nil
	}
	if err != nil {
		s.search = SearchState{Query: query}
		return err
	}
	s.search = SearchState{Query: query, Results: results}
	return nil
}

// ClearSearch resets the search slice to its initial empty state.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	s.searchGen++
	s.search = SearchState{}
	s.mu.Unlock()
}

// Search returns a snapshot of the search state.
func (s *Store) Search() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.search
	snap.Results = append([]SearchResult(nil), s.search.Results...)
	return snap
}
