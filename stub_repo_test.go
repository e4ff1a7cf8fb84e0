package recordstore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// stubRepo is a scriptable Repository. Unset hooks return benign zero
// values; every call bumps the matching counter so tests can assert which
// repository operations ran.
type stubRepo struct {
	fetchRecordTypesFn      func(ctx context.Context) ([]RecordType, error)
	fetchRecordsPaginatedFn func(ctx context.Context, req RecordsPageRequest) (*RecordsPage, error)
	searchRecordsFn         func(ctx context.Context, req SearchRequest) ([]SearchResult, error)
	fetchRecordWithTypeFn   func(ctx context.Context, recordID string) (*RecordWithType, error)
	fetchReportsFn          func(ctx context.Context, recordID string) ([]ReportSummary, error)
	fetchTemplatesFn        func(ctx context.Context, recordID string) ([]Template, error)
	createRecordFn          func(ctx context.Context, req CreateRecordRequest) (*RecordWithType, error)
	updateRecordFn          func(ctx context.Context, recordID string, req UpdateRecordRequest) (*RecordWithType, error)
	archiveRecordFn         func(ctx context.Context, recordID string) error
	deleteRecordFn          func(ctx context.Context, recordID string) error

	typeCalls     int32
	pagedCalls    int32
	searchCalls   int32
	recordCalls   int32
	reportCalls   int32
	templateCalls int32
	createCalls   int32
	updateCalls   int32
	archiveCalls  int32
	deleteCalls   int32

	mu      sync.Mutex
	lastReq RecordsPageRequest
}

func (r *stubRepo) FetchRecordTypes(ctx context.Context) ([]RecordType, error) {
	atomic.AddInt32(&r.typeCalls, 1)
	if r.fetchRecordTypesFn != nil {
		return r.fetchRecordTypesFn(ctx)
	}
	return nil, nil
}

func (r *stubRepo) FetchRecordsPaginated(ctx context.Context, req RecordsPageRequest) (*RecordsPage, error) {
	atomic.AddInt32(&r.pagedCalls, 1)
	r.mu.Lock()
	r.lastReq = req
	r.mu.Unlock()
	if r.fetchRecordsPaginatedFn != nil {
		return r.fetchRecordsPaginatedFn(ctx, req)
	}
	return &RecordsPage{}, nil
}

func (r *stubRepo) SearchRecords(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	atomic.AddInt32(&r.searchCalls, 1)
	if r.searchRecordsFn != nil {
		return r.searchRecordsFn(ctx, req)
	}
	return nil, nil
}

func (r *stubRepo) FetchRecordWithType(ctx context.Context, recordID string) (*RecordWithType, error) {
	atomic.AddInt32(&r.recordCalls, 1)
	if r.fetchRecordWithTypeFn != nil {
		return r.fetchRecordWithTypeFn(ctx, recordID)
	}
	rec := makeRecord(recordID, "record-"+recordID)
	return &rec, nil
}

func (r *stubRepo) FetchRecordReportsSummary(ctx context.Context, recordID string) ([]ReportSummary, error) {
	atomic.AddInt32(&r.reportCalls, 1)
	if r.fetchReportsFn != nil {
		return r.fetchReportsFn(ctx, recordID)
	}
	return nil, nil
}

func (r *stubRepo) FetchRecordTemplates(ctx context.Context, recordID string) ([]Template, error) {
	atomic.AddInt32(&r.templateCalls, 1)
	if r.fetchTemplatesFn != nil {
		return r.fetchTemplatesFn(ctx, recordID)
	}
	return nil, nil
}

func (r *stubRepo) CreateRecord(ctx context.Context, req CreateRecordRequest) (*RecordWithType, error) {
	atomic.AddInt32(&r.createCalls, 1)
	if r.createRecordFn != nil {
		return r.createRecordFn(ctx, req)
	}
	rec := makeRecord(uuid.NewString(), req.Name)
	return &rec, nil
}

func (r *stubRepo) UpdateRecord(ctx context.Context, recordID string, req UpdateRecordRequest) (*RecordWithType, error) {
	atomic.AddInt32(&r.updateCalls, 1)
	if r.updateRecordFn != nil {
		return r.updateRecordFn(ctx, recordID, req)
	}
	name := "record-" + recordID
	if req.Name != nil {
		name = *req.Name
	}
	rec := makeRecord(recordID, name)
	return &rec, nil
}

func (r *stubRepo) ArchiveRecord(ctx context.Context, recordID string) error {
	atomic.AddInt32(&r.archiveCalls, 1)
	if r.archiveRecordFn != nil {
		return r.archiveRecordFn(ctx, recordID)
	}
	return nil
}

func (r *stubRepo) DeleteRecord(ctx context.Context, recordID string) error {
	atomic.AddInt32(&r.deleteCalls, 1)
	if r.deleteRecordFn != nil {
		return r.deleteRecordFn(ctx, recordID)
	}
	return nil
}

func (r *stubRepo) lastPagedRequest() RecordsPageRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastReq
}

func makeRecord(id, name string) RecordWithType {
	return RecordWithType{Record: Record{ID: id, Name: name}}
}

func strPtr(s string) *string { return &s }

// pageOf builds a single page envelope around the given records.
func pageOf(hasNext bool, endCursor string, recs ...RecordWithType) *RecordsPage {
	page := &RecordsPage{Records: recs}
	page.PageInfo.HasNextPage = hasNext
	if endCursor != "" {
		page.PageInfo.EndCursor = strPtr(endCursor)
	}
	return page
}
