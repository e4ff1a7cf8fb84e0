package api

import (
	"context"
	"net/http"
	"net/url"

	clienterrors "github.com/inspecly/recordstore-go/internal/errors"
	"github.com/inspecly/recordstore-go/internal/types"
)

// Mutating calls are never retried here; retry, if any, is a deliberate
// re-invocation by the caller.

// CreateRecord creates a new record.
func (c *Client) CreateRecord(ctx context.Context, req types.CreateRecordRequest) (*types.RecordWithType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateName(req.Name); err != nil {
		return nil, err
	}
	var rec types.RecordWithType
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&rec).Post("/api/records")
	if err != nil {
		return nil, clienterrors.NewNetworkError("create record", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), "create record")
	}
	return &rec, nil
}

// UpdateRecord applies a partial patch to a record and returns the fresh
// server-side object.
func (c *Client) UpdateRecord(ctx context.Context, recordID string, req types.UpdateRecordRequest) (*types.RecordWithType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return nil, err
	}
	var rec types.RecordWithType
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&rec).Patch("/api/records/" + url.PathEscape(recordID))
	if err != nil {
		return nil, clienterrors.NewNetworkError("update record", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return &rec, nil
	case http.StatusNotFound:
		return nil, types.ErrNotFound
	default:
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), "update record")
	}
}

// ArchiveRecord flags a record archived without removing it.
func (c *Client) ArchiveRecord(ctx context.Context, recordID string) error {
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return err
	}
	return c.postNoContent(ctx, "archive record", "/api/records/"+url.PathEscape(recordID)+"/archive")
}

// DeleteRecord permanently removes a record.
func (c *Client) DeleteRecord(ctx context.Context, recordID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return err
	}
	resp, err := c.http.R().SetContext(ctx).Delete("/api/records/" + url.PathEscape(recordID))
	if err != nil {
		return clienterrors.NewNetworkError("delete record", err)
	}
	switch resp.StatusCode() {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), "delete record")
	}
}

func (c *Client) postNoContent(ctx context.Context, operation, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := c.http.R().SetContext(ctx).Post(path)
	if err != nil {
		return clienterrors.NewNetworkError(operation, err)
	}
	switch resp.StatusCode() {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return clienterrors.NewHTTPError(resp.StatusCode(), resp.String(), operation)
	}
}
