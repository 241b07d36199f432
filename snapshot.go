package oscar

import (
	"context"
	"time"
)

// Snapshot is the catalog parsed from one retrieval of a term.
type Snapshot struct {
	ID           string    `json:"id"`
	Term         string    `json:"term"`
	DocumentHash string    `json:"documentHash"`
	FetchedAt    time.Time `json:"fetchedAt"`

	// Catalog is nil when the snapshot was loaded by FindSnapshots.
	Catalog Catalog `json:"catalog,omitempty"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Term == "" {
		return Errorf(EINVALID, "snapshot term required")
	}
	if s.Catalog == nil {
		return Errorf(EINVALID, "snapshot catalog required")
	}
	return nil
}

// SnapshotService represents a service for managing catalog snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot and assigns its ID and FetchedAt.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByID retrieves a snapshot with its catalog.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindLatestSnapshot retrieves the most recent snapshot for a term with its catalog.
	// Returns ENOTFOUND if the term has no snapshots.
	FindLatestSnapshot(ctx context.Context, term string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	// Catalogs are not loaded.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// FindSections retrieves individual sections matching the filter.
	FindSections(ctx context.Context, filter SectionFilter) ([]*SectionRecord, error)

	// DeleteSnapshot permanently removes a snapshot and its sections.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Term *string `json:"term"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SectionFilter represents a filter for FindSections.
type SectionFilter struct {
	SnapshotID         *string `json:"snapshotId"`
	Code               *string `json:"code"`
	RegistrationNumber *string `json:"registrationNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SectionRecord is a stored section together with the course it belongs to.
type SectionRecord struct {
	SnapshotID string   `json:"snapshotId"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Section    *Section `json:"section"`
}

// CatalogWriter exports a term's catalog.
type CatalogWriter interface {
	WriteCatalog(ctx context.Context, term string, catalog Catalog) error
}
