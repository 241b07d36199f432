package mock

import (
	"context"

	"github.com/fwojciec/oscar"
)

var _ oscar.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of oscar.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn     func(ctx context.Context, snapshot *oscar.Snapshot) error
	FindSnapshotByIDFn   func(ctx context.Context, id string) (*oscar.Snapshot, error)
	FindLatestSnapshotFn func(ctx context.Context, term string) (*oscar.Snapshot, error)
	FindSnapshotsFn      func(ctx context.Context, filter oscar.SnapshotFilter) ([]*oscar.Snapshot, error)
	FindSectionsFn       func(ctx context.Context, filter oscar.SectionFilter) ([]*oscar.SectionRecord, error)
	DeleteSnapshotFn     func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *oscar.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*oscar.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindLatestSnapshot(ctx context.Context, term string) (*oscar.Snapshot, error) {
	return s.FindLatestSnapshotFn(ctx, term)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter oscar.SnapshotFilter) ([]*oscar.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) FindSections(ctx context.Context, filter oscar.SectionFilter) ([]*oscar.SectionRecord, error) {
	return s.FindSectionsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
