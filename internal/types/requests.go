package types

// ------------------------------
// Request Types
// ------------------------------

// Paging directions understood by the backend. The store only ever pages
// forward.
const (
	DirectionForward  = "forward"
	DirectionBackward = "backward"
)

// PageRequest bounds a single paginated fetch. Cursor is an opaque token
// from a previous page's PageInfo.
type PageRequest struct {
	Limit     int     `json:"limit"`
	Cursor    *string `json:"cursor,omitempty"`
	Direction string  `json:"direction,omitempty"`
}

// RecordsPageRequest holds parameters for one paginated records fetch.
type RecordsPageRequest struct {
	RecordTypeID string      `json:"recordTypeId,omitempty"`
	Search       string      `json:"search,omitempty"`
	Pagination   PageRequest `json:"pagination"`
}

// SearchRequest holds autosuggest search parameters.
type SearchRequest struct {
	Query        string `json:"query"`
	RecordTypeID string `json:"recordTypeId,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// CreateRecordRequest holds parameters for a new record.
type CreateRecordRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	RecordTypeID string `json:"recordTypeId,omitempty"`
}

// UpdateRecordRequest is a partial patch; nil fields are left unchanged.
type UpdateRecordRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	RecordTypeID *string `json:"recordTypeId,omitempty"`
}
