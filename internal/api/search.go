package api

import (
	"context"
	"strconv"

	"github.com/inspecly/recordstore-go/internal/types"
)

// SearchRecords runs a bounded autosuggest query. Result limits are small by
// contract; this is a suggestions surface, not a paginated browse.
func (c *Client) SearchRecords(ctx context.Context, req types.SearchRequest) ([]types.SearchResult, error) {
	if err := types.ValidateIDPresent(req.Query, "query"); err != nil {
		return nil, err
	}
	if err := types.ValidateLimit(req.Limit); err != nil {
		return nil, err
	}
	q := map[string]string{
		"query": req.Query,
		"limit": strconv.Itoa(req.Limit),
	}
	if req.RecordTypeID != "" {
		q["recordTypeId"] = req.RecordTypeID
	}

	var sr types.SearchRecordsResponse
	if err := c.getJSON(ctx, "search records", "/api/records/search", q, &sr); err != nil {
		return nil, err
	}
	return sr.Results, nil
}
