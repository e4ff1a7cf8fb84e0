package recordstore

import (
	"context"

	"github.com/inspecly/recordstore-go/internal/api"
)

// Repository is the record repository contract the store consumes. No store
// component talks to the backend directly; every fetch and mutation goes
// through this interface.
type Repository interface {
	FetchRecordTypes(ctx context.Context) ([]RecordType, error)
	FetchRecordsPaginated(ctx context.Context, req RecordsPageRequest) (*RecordsPage, error)
	SearchRecords(ctx context.Context, req SearchRequest) ([]SearchResult, error)
	FetchRecordWithType(ctx context.Context, recordID string) (*RecordWithType, error)
	FetchRecordReportsSummary(ctx context.Context, recordID string) ([]ReportSummary, error)
	FetchRecordTemplates(ctx context.Context, recordID string) ([]Template, error)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (*RecordWithType, error)
	UpdateRecord(ctx context.Context, recordID string, req UpdateRecordRequest) (*RecordWithType, error)
	ArchiveRecord(ctx context.Context, recordID string) error
	DeleteRecord(ctx context.Context, recordID string) error
}

// NewHTTPRepository returns the reference HTTP implementation of Repository
// against the given backend. Idempotent GETs retry transient failures up to
// three times; mutations are never retried.
func NewHTTPRepository(baseURL, apiKey string) (Repository, error) {
	c, err := api.New(api.Config{BaseURL: baseURL, APIKey: apiKey, MaxGetRetries: 3})
	if err != nil {
		return nil, err
	}
	return c, nil
}
