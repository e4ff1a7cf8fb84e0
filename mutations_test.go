package recordstore

import (
	"context"
	"errors"
	"testing"
)

func seedRecords(t *testing.T, s *Store, repo *stubRepo, recs ...RecordWithType) {
	t.Helper()
	repo.fetchRecordsPaginatedFn = func(context.Context, RecordsPageRequest) (*RecordsPage, error) {
		return pageOf(false, "seed", recs...), nil
	}
	if err := s.FetchRecords(context.Background(), ""); err != nil {
		t.Fatalf("seed FetchRecords: %v", err)
	}
	repo.fetchRecordsPaginatedFn = nil
}

func recordNames(recs []RecordWithType) []string {
	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.Name
	}
	return names
}

func TestCreateRecord_ResortsWholeCollectionByName(t *testing.T) {
	repo := &stubRepo{}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	seedRecords(t, s, repo,
		makeRecord("r1", "Zeta"),
		makeRecord("r2", "Alpha"),
		makeRecord("r3", "Mid"),
	)

	// The legacy view keeps network order until a create.
	got := recordNames(s.Records())
	want := []string{"Zeta", "Alpha", "Mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("seed order = %v, want %v", got, want)
		}
	}

	if _, err := s.CreateRecord(ctx, CreateRecordRequest{Name: "Beta"}); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}

	got = recordNames(s.Records())
	want = []string{"Alpha", "Beta", "Mid", "Zeta"}
	if len(got) != len(want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("records = %v, want %v", got, want)
		}
	}

	// The paginated list is deliberately untouched by mutations.
	if n := len(s.List().Records); n != 0 {
		t.Fatalf("paginated list mutated by create: %d records", n)
	}
}

func TestCreateRecord_FirstWhenNameSortsLowest(t *testing.T) {
	repo := &stubRepo{}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })

	seedRecords(t, s, repo, makeRecord("r1", "Harbor"), makeRecord("r2", "Depot"))
	if _, err := s.CreateRecord(context.Background(), CreateRecordRequest{Name: "Annex"}); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if got := s.Records(); got[0].Name != "Annex" {
		t.Fatalf("new lowest-sorting record not first: %v", recordNames(got))
	}
}

func TestUpdateRecord_MergesEntryAndReplacesCurrent(t *testing.T) {
	repo := &stubRepo{
		fetchRecordWithTypeFn: func(_ context.Context, id string) (*RecordWithType, error) {
			rec := makeRecord(id, "Riverside Depot")
			rec.Address = "12 Quay St"
			return &rec, nil
		},
		updateRecordFn: func(_ context.Context, id string, req UpdateRecordRequest) (*RecordWithType, error) {
			rec := makeRecord(id, *req.Name)
			return &rec, nil
		},
	}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	seeded := makeRecord("r1", "Riverside Depot")
	seeded.Address = "12 Quay St"
	seedRecords(t, s, repo, seeded)
	if err := s.FetchRecordByID(ctx, "r1"); err != nil {
		t.Fatalf("FetchRecordByID: %v", err)
	}

	if _, err := s.UpdateRecord(ctx, "r1", UpdateRecordRequest{Name: strPtr("Riverside Annex")}); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}

	recs := s.Records()
	if recs[0].Name != "Riverside Annex" {
		t.Fatalf("entry name = %q, want merged patch applied", recs[0].Name)
	}
	if recs[0].Address != "12 Quay St" {
		t.Fatalf("merge dropped existing field: address = %q", recs[0].Address)
	}

	cur := s.CurrentRecord()
	if cur == nil || cur.Name != "Riverside Annex" {
		t.Fatalf("currentRecord not replaced with fresh object: %+v", cur)
	}
	if cur.Address != "" {
		t.Fatalf("currentRecord must be the fresh object, not a merge: %+v", cur)
	}
}

func TestArchiveRecord_RemovesAndClearsCurrent(t *testing.T) {
	repo := &stubRepo{}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	seedRecords(t, s, repo, makeRecord("r1", "Alpha"), makeRecord("r2", "Beta"))
	if err := s.FetchRecordByID(ctx, "r1"); err != nil {
		t.Fatalf("FetchRecordByID: %v", err)
	}

	if err := s.ArchiveRecord(ctx, "r1"); err != nil {
		t.Fatalf("ArchiveRecord: %v", err)
	}
	recs := s.Records()
	if len(recs) != 1 || recs[0].ID != "r2" {
		t.Fatalf("archived record not filtered: %v", recordNames(recs))
	}
	if s.CurrentRecord() != nil {
		t.Fatalf("currentRecord not cleared")
	}
	if s.CurrentSite() != nil {
		t.Fatalf("currentSite does not mirror cleared currentRecord")
	}
}

func TestDeleteRecord_AlwaysClearsCurrent(t *testing.T) {
	repo := &stubRepo{}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	seedRecords(t, s, repo, makeRecord("r1", "Alpha"), makeRecord("r2", "Beta"))
	if err := s.FetchRecordByID(ctx, "r1"); err != nil {
		t.Fatalf("FetchRecordByID: %v", err)
	}

	// Deleting a different record still clears the current reference.
	if err := s.DeleteRecord(ctx, "r2"); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if s.CurrentRecord() != nil {
		t.Fatalf("conservative invalidation: currentRecord must clear on any removal")
	}
	recs := s.Records()
	if len(recs) != 1 || recs[0].ID != "r1" {
		t.Fatalf("wrong record removed: %v", recordNames(recs))
	}
}

func TestMutations_ErrorSurfacesAndClearsLoading(t *testing.T) {
	repo := &stubRepo{
		createRecordFn: func(context.Context, CreateRecordRequest) (*RecordWithType, error) {
			return nil, errors.New("validation rejected")
		},
	}
	s := New(repo, WithoutPrefetch())
	t.Cleanup(func() { _ = s.Close() })

	if _, err := s.CreateRecord(context.Background(), CreateRecordRequest{Name: "Beta"}); err == nil {
		t.Fatalf("expected error")
	}
	st := s.RecordsState()
	if st.IsLoading {
		t.Fatalf("loading flag not cleared on failure")
	}
	if st.Error != "validation rejected" {
		t.Fatalf("error = %q", st.Error)
	}
	if len(s.Records()) != 0 {
		t.Fatalf("failed create mutated the collection")
	}
}
