package recordstore

import "context"

// RecordsState tracks activity on the legacy unpaginated collection and the
// current record selection.
type RecordsState struct {
	IsLoading bool
	Error     string
}

// FetchRecords loads the legacy unpaginated records view for recordTypeID
// (empty string means all types). Records are stored in network order; only
// CreateRecord re-sorts the collection.
func (s *Store) FetchRecords(ctx context.Context, recordTypeID string) error {
	s.mu.Lock()
	s.recordsState = RecordsState{IsLoading: true}
	s.mu.Unlock()

	page, err := s.repo.FetchRecordsPaginated(ctx, RecordsPageRequest{
		RecordTypeID: recordTypeID,
		Pagination:   PageRequest{Limit: legacyListLimit},
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recordsState = RecordsState{Error: err.Error()}
		return err
	}
	s.recordsState = RecordsState{}
	s.records = page.Records
	return nil
}

// FetchRecordByID loads a single record and makes it the current one.
func (s *Store) FetchRecordByID(ctx context.Context, recordID string) error {
	s.mu.Lock()
	s.recordsState = RecordsState{IsLoading: true}
	s.mu.Unlock()

	rec, err := s.repo.FetchRecordWithType(ctx, recordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recordsState = RecordsState{Error: err.Error()}
		return err
	}
	s.recordsState = RecordsState{}
	s.currentRecord = rec
	return nil
}

// Records returns a snapshot of the legacy unpaginated collection.
func (s *Store) Records() []RecordWithType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordWithType(nil), s.records...)
}

// CurrentRecord returns the current selection, or nil when none is set.
func (s *Store) CurrentRecord() *RecordWithType {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentRecord == nil {
		return nil
	}
	rec := *s.currentRecord
	return &rec
}

// RecordTemplates returns the templates loaded for the active record.
func (s *Store) RecordTemplates() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Template(nil), s.recordTemplates...)
}

// RecordsState returns the loading/error state of the legacy collection.
func (s *Store) RecordsState() RecordsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordsState
}
