package types

// ------------------------------
// Response Types
// ------------------------------

// RecordsPage is the paginated envelope every list fetch returns.
type RecordsPage struct {
	Records  []RecordWithType `json:"records"`
	PageInfo PageInfo         `json:"pageInfo"`
}

// ListRecordTypesResponse mirrors the record-types list endpoint shape.
type ListRecordTypesResponse struct {
	RecordTypes []RecordType `json:"recordTypes"`
	Count       int          `json:"count"`
}

// SearchRecordsResponse wraps the record search result.
type SearchRecordsResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

// ReportsSummaryResponse wraps a record's reports summary.
type ReportsSummaryResponse struct {
	Reports []ReportSummary `json:"reports"`
	Count   int             `json:"count"`
}

// ListTemplatesResponse wraps a record's available templates.
type ListTemplatesResponse struct {
	Templates []Template `json:"templates"`
	Count     int        `json:"count"`
}
