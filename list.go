package recordstore

import "context"

// ListState is the paginated collection for the active record-type filter.
type ListState struct {
	Records       []RecordWithType
	PageInfo      PageInfo
	IsLoading     bool
	IsLoadingMore bool
	Error         string
}

// FetchRecordsPaginated resets the list and loads the first page for
// recordTypeID (empty string means all types). The filter becomes the active
// one for subsequent FetchMoreRecords and RefreshRecords calls. A completion
// belonging to a superseded fetch is discarded.
func (s *Store) FetchRecordsPaginated(ctx context.Context, recordTypeID string) error {
	s.mu.Lock()
	s.listGen++
	gen := s.listGen
	s.currentRecordTypeID = recordTypeID
	s.list = ListState{IsLoading: true}
	s.mu.Unlock()

	page, err := s.repo.FetchRecordsPaginated(ctx, RecordsPageRequest{
		RecordTypeID: recordTypeID,
		Pagination:   PageRequest{Limit: s.pageSize},
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.listGen {
		staleDropsTotal.WithLabelValues("list").Inc()
		s.log.Debug().Str("recordTypeId", recordTypeID).Msg("discarding superseded list fetch")
		return nil
	}
	if err != nil {
		s.list = ListState{Error: err.Error()}
		return err
	}
	s.list = ListState{Records: page.Records, PageInfo: page.PageInfo}
	listPagesFetched.Inc()
	return nil
}

// FetchMoreRecords appends the next forward page to the list. It is a no-op
// when there is no next page or when a more-fetch is already in flight, so
// rapid repeated calls (fast scrolling) trigger at most one repository call.
func (s *Store) FetchMoreRecords(ctx context.Context) error {
	s.mu.Lock()
	if !s.list.PageInfo.HasNextPage || s.list.IsLoadingMore {
		s.mu.Unlock()
		return nil
	}
	s.list.IsLoadingMore = true
	gen := s.listGen
	cursor := s.list.PageInfo.EndCursor
	recordTypeID := s.currentRecordTypeID
	s.mu.Unlock()

	page, err := s.repo.FetchRecordsPaginated(ctx, RecordsPageRequest{
		RecordTypeID: recordTypeID,
		Pagination: PageRequest{
			Limit:     s.pageSize,
			Cursor:    cursor,
			Direction: DirectionForward,
		},
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.listGen {
		// The list was reset while this page was in flight; the reset
		// already cleared IsLoadingMore.
		staleDropsTotal.WithLabelValues("list").Inc()
		return nil
	}
	s.list.IsLoadingMore = false
	if err != nil {
		s.list.Error = err.Error()
		return err
	}
	s.list.Records = append(s.list.Records, page.Records...)
	s.list.PageInfo = page.PageInfo
	listPagesFetched.Inc()
	return nil
}

// RefreshRecords re-runs the first-page fetch with the active filter. It is
// a cold reset, not an incremental diff.
func (s *Store) RefreshRecords(ctx context.Context) error {
	s.mu.Lock()
	recordTypeID := s.currentRecordTypeID
	s.mu.Unlock()
	return s.FetchRecordsPaginated(ctx, recordTypeID)
}

// SetCurrentRecordTypeFilter records the filter used by subsequent fetches.
// It never fetches; callers trigger the fetch themselves.
func (s *Store) SetCurrentRecordTypeFilter(recordTypeID string) {
	s.mu.Lock()
	s.currentRecordTypeID = recordTypeID
	s.mu.Unlock()
}

// CurrentRecordTypeFilter returns the active filter ("" means all types).
func (s *Store) CurrentRecordTypeFilter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRecordTypeID
}

// List returns a snapshot of the paginated list state.
func (s *Store) List() ListState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.list
	snap.Records = append([]RecordWithType(nil), s.list.Records...)
	return snap
}
