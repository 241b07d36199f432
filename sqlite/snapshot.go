package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/oscar"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ oscar.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements oscar.SnapshotService using SQLite.
// Each section is stored as one row; attributes and meetings are JSON columns.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a snapshot and all of its sections in one transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *oscar.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	snapshot.ID = uuid.New().String()
	snapshot.FetchedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, term, document_hash, fetched_at)
		VALUES (?, ?, ?, ?)
	`, snapshot.ID, snapshot.Term, snapshot.DocumentHash, formatTime(snapshot.FetchedAt)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sections (snapshot_id, code, name, label, registration_number, credits,
			grade_basis, campus, format, attributes, meetings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, code := range snapshot.Catalog.Codes() {
		course := snapshot.Catalog[code]
		for _, label := range course.Labels() {
			section := course.Sections[label]

			attributes, err := json.Marshal(section.Attributes)
			if err != nil {
				return fmt.Errorf("failed to encode attributes: %w", err)
			}
			meetings, err := json.Marshal(section.Meetings)
			if err != nil {
				return fmt.Errorf("failed to encode meetings: %w", err)
			}

			if _, err := stmt.ExecContext(ctx, snapshot.ID, code, course.Name, label,
				section.RegistrationNumber, section.Credits, section.GradeBasis,
				section.Campus, section.Format, string(attributes), string(meetings)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// FindSnapshotByID retrieves a snapshot with its catalog.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*oscar.Snapshot, error) {
	snapshots, err := s.findSnapshots(ctx, oscar.SnapshotFilter{Limit: 1}, &id)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, oscar.Errorf(oscar.ENOTFOUND, "snapshot not found")
	}
	return s.withCatalog(ctx, snapshots[0])
}

// FindLatestSnapshot retrieves the most recent snapshot for a term with its catalog.
func (s *SnapshotService) FindLatestSnapshot(ctx context.Context, term string) (*oscar.Snapshot, error) {
	snapshots, err := s.findSnapshots(ctx, oscar.SnapshotFilter{Term: &term, Limit: 1}, nil)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, oscar.Errorf(oscar.ENOTFOUND, "no snapshot for term %q", term)
	}
	return s.withCatalog(ctx, snapshots[0])
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter oscar.SnapshotFilter) ([]*oscar.Snapshot, error) {
	return s.findSnapshots(ctx, filter, nil)
}

func (s *SnapshotService) findSnapshots(ctx context.Context, filter oscar.SnapshotFilter, id *string) ([]*oscar.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, term, document_hash, fetched_at FROM snapshots WHERE 1=1")

	if id != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *id)
	}
	if filter.Term != nil {
		query.WriteString(" AND term = ?")
		args = append(args, *filter.Term)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*oscar.Snapshot
	for rows.Next() {
		var snapshot oscar.Snapshot
		var fetchedAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.Term, &snapshot.DocumentHash, &fetchedAt); err != nil {
			return nil, err
		}

		snapshot.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

// withCatalog loads the sections of snapshot into its catalog.
func (s *SnapshotService) withCatalog(ctx context.Context, snapshot *oscar.Snapshot) (*oscar.Snapshot, error) {
	records, err := s.FindSections(ctx, oscar.SectionFilter{SnapshotID: &snapshot.ID})
	if err != nil {
		return nil, err
	}

	snapshot.Catalog = make(oscar.Catalog)
	for _, r := range records {
		snapshot.Catalog.AddSection(r.Code, r.Name, r.Label, r.Section)
	}
	return snapshot, nil
}

// FindSections retrieves sections matching the filter ordered by code and label.
func (s *SnapshotService) FindSections(ctx context.Context, filter oscar.SectionFilter) ([]*oscar.SectionRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT snapshot_id, code, name, label, registration_number, credits,
		grade_basis, campus, format, attributes, meetings FROM sections WHERE 1=1`)

	if filter.SnapshotID != nil {
		query.WriteString(" AND snapshot_id = ?")
		args = append(args, *filter.SnapshotID)
	}
	if filter.Code != nil {
		query.WriteString(" AND code = ?")
		args = append(args, *filter.Code)
	}
	if filter.RegistrationNumber != nil {
		query.WriteString(" AND registration_number = ?")
		args = append(args, *filter.RegistrationNumber)
	}

	query.WriteString(" ORDER BY snapshot_id, code, label")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*oscar.SectionRecord
	for rows.Next() {
		r := &oscar.SectionRecord{Section: &oscar.Section{}}
		var attributes, meetings string

		if err := rows.Scan(&r.SnapshotID, &r.Code, &r.Name, &r.Label,
			&r.Section.RegistrationNumber, &r.Section.Credits, &r.Section.GradeBasis,
			&r.Section.Campus, &r.Section.Format, &attributes, &meetings); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(attributes), &r.Section.Attributes); err != nil {
			return nil, fmt.Errorf("failed to decode attributes: %w", err)
		}
		if err := json.Unmarshal([]byte(meetings), &r.Section.Meetings); err != nil {
			return nil, fmt.Errorf("failed to decode meetings: %w", err)
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot and its sections.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return oscar.Errorf(oscar.ENOTFOUND, "snapshot not found")
	}
	return nil
}
