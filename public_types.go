package recordstore

import "github.com/inspecly/recordstore-go/internal/types"

// Public type aliases so SDK consumers can import only the recordstore
// package.
type (
	// Domain entities
	Record         = types.Record
	RecordType     = types.RecordType
	RecordWithType = types.RecordWithType
	ReportSummary  = types.ReportSummary
	Template       = types.Template
	SearchResult   = types.SearchResult

	// Pagination
	PageInfo    = types.PageInfo
	PageRequest = types.PageRequest
	RecordsPage = types.RecordsPage

	// Requests
	RecordsPageRequest  = types.RecordsPageRequest
	SearchRequest       = types.SearchRequest
	CreateRecordRequest = types.CreateRecordRequest
	UpdateRecordRequest = types.UpdateRecordRequest
)

// Paging directions, re-exported for callers building their own requests.
const (
	DirectionForward  = types.DirectionForward
	DirectionBackward = types.DirectionBackward
)

// Errors re-exported in errors.go
