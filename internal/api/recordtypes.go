package api

import (
	"context"

	"github.com/inspecly/recordstore-go/internal/types"
)

// FetchRecordTypes retrieves every record type defined for the organisation.
func (c *Client) FetchRecordTypes(ctx context.Context) ([]types.RecordType, error) {
	var lr types.ListRecordTypesResponse
	if err := c.getJSON(ctx, "fetch record types", "/api/record-types", nil, &lr); err != nil {
		return nil, err
	}
	return lr.RecordTypes, nil
}
