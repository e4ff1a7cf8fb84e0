package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/inspecly/recordstore-go/internal/types"
)

// FetchRecordsPaginated requests one page of records. The cursor and
// direction are forwarded verbatim as query parameters; the backend owns
// cursor semantics.
func (c *Client) FetchRecordsPaginated(ctx context.Context, req types.RecordsPageRequest) (*types.RecordsPage, error) {
	if err := types.ValidateLimit(req.Pagination.Limit); err != nil {
		return nil, err
	}
	q := map[string]string{"limit": strconv.Itoa(req.Pagination.Limit)}
	if req.RecordTypeID != "" {
		q["recordTypeId"] = req.RecordTypeID
	}
	if req.Search != "" {
		q["search"] = req.Search
	}
	if req.Pagination.Cursor != nil {
		q["cursor"] = *req.Pagination.Cursor
	}
	if req.Pagination.Direction != "" {
		q["direction"] = req.Pagination.Direction
	}

	var page types.RecordsPage
	if err := c.getJSON(ctx, "fetch records page", "/api/records", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchRecordWithType retrieves a single record joined with its type.
func (c *Client) FetchRecordWithType(ctx context.Context, recordID string) (*types.RecordWithType, error) {
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return nil, err
	}
	var rec types.RecordWithType
	if err := c.getJSON(ctx, "fetch record", "/api/records/"+url.PathEscape(recordID), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FetchRecordReportsSummary retrieves the condensed report list for a record.
func (c *Client) FetchRecordReportsSummary(ctx context.Context, recordID string) ([]types.ReportSummary, error) {
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return nil, err
	}
	var rs types.ReportsSummaryResponse
	if err := c.getJSON(ctx, "fetch reports summary", "/api/records/"+url.PathEscape(recordID)+"/reports/summary", nil, &rs); err != nil {
		return nil, err
	}
	return rs.Reports, nil
}

// FetchRecordTemplates retrieves the form templates available for a record.
func (c *Client) FetchRecordTemplates(ctx context.Context, recordID string) ([]types.Template, error) {
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return nil, err
	}
	var lt types.ListTemplatesResponse
	if err := c.getJSON(ctx, "fetch templates", "/api/records/"+url.PathEscape(recordID)+"/templates", nil, &lt); err != nil {
		return nil, err
	}
	return lt.Templates, nil
}
