package recordstore

import "context"

// Legacy aliasing: older call sites name records "sites". Every Site method
// is a pure delegation to its Record counterpart and every Site accessor
// reads the same canonical fields under the same lock, so both names always
// observe identical state. No site-specific logic or storage exists.

// FetchSites is the legacy name for FetchRecords.
func (s *Store) FetchSites(ctx context.Context, siteTypeID string) error {
	return s.FetchRecords(ctx, siteTypeID)
}

// FetchSiteByID is the legacy name for FetchRecordByID.
func (s *Store) FetchSiteByID(ctx context.Context, siteID string) error {
	return s.FetchRecordByID(ctx, siteID)
}

// SearchSites is the legacy name for SearchRecords.
func (s *Store) SearchSites(ctx context.Context, query, siteTypeID string) error {
	return s.SearchRecords(ctx, query, siteTypeID)
}

// CreateSite is the legacy name for CreateRecord.
func (s *Store) CreateSite(ctx context.Context, req CreateRecordRequest) (*RecordWithType, error) {
	return s.CreateRecord(ctx, req)
}

// UpdateSite is the legacy name for UpdateRecord.
func (s *Store) UpdateSite(ctx context.Context, siteID string, req UpdateRecordRequest) (*RecordWithType, error) {
	return s.UpdateRecord(ctx, siteID, req)
}

// ArchiveSite is the legacy name for ArchiveRecord.
func (s *Store) ArchiveSite(ctx context.Context, siteID string) error {
	return s.ArchiveRecord(ctx, siteID)
}

// DeleteSite is the legacy name for DeleteRecord.
func (s *Store) DeleteSite(ctx context.Context, siteID string) error {
	return s.DeleteRecord(ctx, siteID)
}

// Sites mirrors Records.
func (s *Store) Sites() []RecordWithType { return s.Records() }

// CurrentSite mirrors CurrentRecord.
func (s *Store) CurrentSite() *RecordWithType { return s.CurrentRecord() }

// SiteTemplates mirrors RecordTemplates.
func (s *Store) SiteTemplates() []Template { return s.RecordTemplates() }
