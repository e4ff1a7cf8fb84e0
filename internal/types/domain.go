package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Record is the primary inspected entity (a property or asset).
// The legacy API surface calls it a "site".
type Record struct {
	ID           string    `json:"recordId"`
	RecordTypeID string    `json:"recordTypeId,omitempty"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Archived     bool      `json:"archived"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RecordType classifies records. Its lifecycle is independent of Record:
// archiving a type does not cascade to its records in this layer.
type RecordType struct {
	ID         string `json:"recordTypeId"`
	Name       string `json:"name"`
	PluralName string `json:"pluralName,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Color      string `json:"color,omitempty"`
	IsDefault  bool   `json:"isDefault,omitempty"`
}

// RecordWithType is a record joined with its type.
type RecordWithType struct {
	Record
	RecordType *RecordType `json:"recordType,omitempty"`
}

// ReportSummary is a condensed view of one inspection report for a record.
type ReportSummary struct {
	ID          string     `json:"reportId"`
	RecordID    string     `json:"recordId"`
	TemplateID  string     `json:"templateId,omitempty"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Template is an inspection form template available for a record.
type Template struct {
	ID      string `json:"templateId"`
	Name    string `json:"name"`
	Version int    `json:"version,omitempty"`
}

// SearchResult mirrors RecordWithType plus a relevance score.
type SearchResult struct {
	RecordWithType
	Score float64 `json:"score,omitempty"`
}

// ------------------------------
// Pagination
// ------------------------------

// PageInfo describes one page's position in a cursor-paginated result set.
// Cursors are opaque tokens; EndCursor is non-nil whenever the page is
// non-empty.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}
