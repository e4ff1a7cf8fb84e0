package recordstore

import (
	"context"
	"sort"
	"strings"
)

// Mutations apply a minimal local patch to the legacy records collection on
// success instead of refetching. The paginated list is left untouched; it
// is refreshed by its own fetches.

// CreateRecord creates a record, appends it locally, and re-sorts the whole
// collection lexicographically by name.
func (s *Store) CreateRecord(ctx context.Context, req CreateRecordRequest) (*RecordWithType, error) {
	s.mu.Lock()
	s.recordsState = RecordsState{IsLoading: true}
	s.mu.Unlock()

	rec, err := s.repo.CreateRecord(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recordsState = RecordsState{Error: err.Error()}
		return nil, err
	}
	s.recordsState = RecordsState{}
	s.records = append(s.records, *rec)
	sort.SliceStable(s.records, func(i, j int) bool {
		return strings.Compare(s.records[i].Name, s.records[j].Name) < 0
	})
	out := *rec
	return &out, nil
}

// UpdateRecord patches a record. The collection entry is a shallow merge of
// the existing fields and the server's returned object; the current record,
// when affected, is replaced wholesale with the fresh object.
func (s *Store) UpdateRecord(ctx context.Context, recordID string, req UpdateRecordRequest) (*RecordWithType, error) {
	s.mu.Lock()
	s.recordsState = RecordsState{IsLoading: true}
	s.mu.Unlock()

	rec, err := s.repo.UpdateRecord(ctx, recordID, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recordsState = RecordsState{Error: err.Error()}
		return nil, err
	}
	s.recordsState = RecordsState{}
	for i := range s.records {
		if s.records[i].ID == recordID {
			s.records[i] = mergeRecord(s.records[i], *rec)
			break
		}
	}
	if s.currentRecord != nil && s.currentRecord.ID == recordID {
		fresh := *rec
		s.currentRecord = &fresh
	}
	out := *rec
	return &out, nil
}

// ArchiveRecord flags a record archived on the backend and removes it from
// the local collection.
func (s *Store) ArchiveRecord(ctx context.Context, recordID string) error {
	return s.removeRecord(ctx, recordID, s.repo.ArchiveRecord)
}

// DeleteRecord permanently removes a record on the backend and from the
// local collection.
func (s *Store) DeleteRecord(ctx context.Context, recordID string) error {
	return s.removeRecord(ctx, recordID, s.repo.DeleteRecord)
}

func (s *Store) removeRecord(ctx context.Context, recordID string, op func(context.Context, string) error) error {
	s.mu.Lock()
	s.recordsState = RecordsState{IsLoading: true}
	s.mu.Unlock()

	err := op(ctx, recordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recordsState = RecordsState{Error: err.Error()}
		return err
	}
	s.recordsState = RecordsState{}
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ID != recordID {
			kept = append(kept, r)
		}
	}
	s.records = kept
	// Conservative invalidation: never leave a possibly-stale current
	// reference behind a removal.
	s.currentRecord = nil
	return nil
}

// mergeRecord overlays the non-zero fields of fresh onto existing.
func mergeRecord(existing, fresh RecordWithType) RecordWithType {
	merged := existing
	if fresh.Name != "" {
		merged.Name = fresh.Name
	}
	if fresh.Address != "" {
		merged.Address = fresh.Address
	}
	if fresh.RecordTypeID != "" {
		merged.RecordTypeID = fresh.RecordTypeID
	}
	merged.Archived = fresh.Archived
	if !fresh.UpdatedAt.IsZero() {
		merged.UpdatedAt = fresh.UpdatedAt
	}
	if fresh.RecordType != nil {
		merged.RecordType = fresh.RecordType
	}
	return merged
}
