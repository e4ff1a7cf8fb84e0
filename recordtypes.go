package recordstore

import "context"

// RecordTypesState holds the record classifications and their fetch state.
// Types have a lifecycle independent of records; nothing here cascades.
type RecordTypesState struct {
	RecordTypes []RecordType
	IsLoading   bool
	Error       string
}

// FetchRecordTypes loads every record type for the organisation.
func (s *Store) FetchRecordTypes(ctx context.Context) error {
	s.mu.Lock()
	s.recordTypes = RecordTypesState{IsLoading: true}
	s.mu.Unlock()

	rts, err := s.repo.FetchRecordTypes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recordTypes = RecordTypesState{Error: err.Error()}
		return err
	}
	s.recordTypes = RecordTypesState{RecordTypes: rts}
	return nil
}

// RecordTypes returns a snapshot of the record types state.
func (s *Store) RecordTypes() RecordTypesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.recordTypes
	snap.RecordTypes = append([]RecordType(nil), s.recordTypes.RecordTypes...)
	return snap
}
