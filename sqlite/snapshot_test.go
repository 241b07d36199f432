package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/oscar"
	"github.com/fwojciec/oscar/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() oscar.Catalog {
	catalog := oscar.Catalog{}
	catalog.AddSection("WOLO 1801", "Intro to Foo - Bar", "A", &oscar.Section{
		RegistrationNumber: "92549",
		Attributes:         []string{"Honors", "Distance Learning"},
		Credits:            3,
		GradeBasis:         "L",
		Campus:             "Georgia Tech-Atlanta *",
		Format:             "Lecture*",
		Meetings: []*oscar.Meeting{
			{
				Time:      "8:00 am - 9:15 am",
				Schedule:  "TR",
				Location:  "Howey Physics L1",
				DateRange: "Aug 17, 2020 - Dec 10, 2020",
				Instructor: &oscar.Instructor{
					Name:  "Jane Q. Doe,John Smith",
					Email: "jdoe3@gatech.edu,jsmith42@gatech.edu",
				},
			},
		},
	})
	catalog.AddSection("WOLO 1801", "Intro to Foo - Bar", "B", &oscar.Section{
		RegistrationNumber: "92550",
		Attributes:         []string{},
		Credits:            1,
		Format:             "Studio",
		Meetings:           []*oscar.Meeting{},
	})
	catalog.AddSection("CS 4001", "Computing and Society", "A", &oscar.Section{
		RegistrationNumber: "80001",
		Attributes:         []string{},
		Credits:            3,
		Campus:             "Online",
		Meetings:           []*oscar.Meeting{},
	})
	return catalog
}

func createTestSnapshot(t *testing.T, svc *sqlite.SnapshotService, term string) *oscar.Snapshot {
	t.Helper()
	snapshot := &oscar.Snapshot{
		Term:         term,
		DocumentHash: "abc123",
		Catalog:      testCatalog(),
	}
	require.NoError(t, svc.CreateSnapshot(context.Background(), snapshot))
	return snapshot
}

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("creates snapshot with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		snapshot := createTestSnapshot(t, svc, "202008")

		assert.NotEmpty(t, snapshot.ID, "ID should be generated")
		assert.False(t, snapshot.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		err := svc.CreateSnapshot(context.Background(), &oscar.Snapshot{})
		require.Error(t, err)
		assert.Equal(t, oscar.EINVALID, oscar.ErrorCode(err))
	})

	t.Run("stores empty catalog", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		ctx := context.Background()

		snapshot := &oscar.Snapshot{Term: "202008", Catalog: oscar.Catalog{}}
		require.NoError(t, svc.CreateSnapshot(ctx, snapshot))

		found, err := svc.FindSnapshotByID(ctx, snapshot.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Catalog)
	})
}

func TestSnapshotService_FindSnapshotByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips catalog", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		created := createTestSnapshot(t, svc, "202008")

		found, err := svc.FindSnapshotByID(context.Background(), created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "202008", found.Term)
		assert.Equal(t, "abc123", found.DocumentHash)
		assert.True(t, created.FetchedAt.Equal(found.FetchedAt))
		assert.Equal(t, testCatalog(), found.Catalog)
	})

	t.Run("returns ENOTFOUND for missing snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		_, err := svc.FindSnapshotByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, oscar.ENOTFOUND, oscar.ErrorCode(err))
	})
}

func TestSnapshotService_FindLatestSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("returns most recent snapshot for term", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		createTestSnapshot(t, svc, "202008")
		latest := createTestSnapshot(t, svc, "202008")
		createTestSnapshot(t, svc, "202102")

		found, err := svc.FindLatestSnapshot(context.Background(), "202008")
		require.NoError(t, err)

		assert.Equal(t, latest.ID, found.ID)
		assert.Len(t, found.Catalog, 2)
	})

	t.Run("returns ENOTFOUND for unknown term", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		_, err := svc.FindLatestSnapshot(context.Background(), "199901")
		require.Error(t, err)
		assert.Equal(t, oscar.ENOTFOUND, oscar.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("filters by term newest first without catalogs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		first := createTestSnapshot(t, svc, "202008")
		second := createTestSnapshot(t, svc, "202008")
		createTestSnapshot(t, svc, "202102")

		term := "202008"
		snapshots, err := svc.FindSnapshots(context.Background(), oscar.SnapshotFilter{Term: &term})
		require.NoError(t, err)

		require.Len(t, snapshots, 2)
		assert.Equal(t, second.ID, snapshots[0].ID)
		assert.Equal(t, first.ID, snapshots[1].ID)
		assert.Nil(t, snapshots[0].Catalog)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		createTestSnapshot(t, svc, "202008")
		middle := createTestSnapshot(t, svc, "202102")
		createTestSnapshot(t, svc, "202105")

		snapshots, err := svc.FindSnapshots(context.Background(), oscar.SnapshotFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)

		require.Len(t, snapshots, 1)
		assert.Equal(t, middle.ID, snapshots[0].ID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		first := createTestSnapshot(t, svc, "202008")
		createTestSnapshot(t, svc, "202102")

		snapshots, err := svc.FindSnapshots(context.Background(), oscar.SnapshotFilter{Offset: 1})
		require.NoError(t, err)

		require.Len(t, snapshots, 1)
		assert.Equal(t, first.ID, snapshots[0].ID)
	})
}

func TestSnapshotService_FindSections(t *testing.T) {
	t.Parallel()

	t.Run("filters by registration number", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		snapshot := createTestSnapshot(t, svc, "202008")

		crn := "92549"
		records, err := svc.FindSections(context.Background(), oscar.SectionFilter{RegistrationNumber: &crn})
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, snapshot.ID, records[0].SnapshotID)
		assert.Equal(t, "WOLO 1801", records[0].Code)
		assert.Equal(t, "Intro to Foo - Bar", records[0].Name)
		assert.Equal(t, "A", records[0].Label)
		assert.Equal(t, testCatalog()["WOLO 1801"].Sections["A"], records[0].Section)
	})

	t.Run("filters by code within snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		snapshot := createTestSnapshot(t, svc, "202008")
		createTestSnapshot(t, svc, "202102")

		code := "WOLO 1801"
		records, err := svc.FindSections(context.Background(), oscar.SectionFilter{
			SnapshotID: &snapshot.ID,
			Code:       &code,
		})
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "A", records[0].Label)
		assert.Equal(t, "B", records[1].Label)
	})
}

func TestSnapshotService_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot and its sections", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)
		ctx := context.Background()
		snapshot := createTestSnapshot(t, svc, "202008")

		require.NoError(t, svc.DeleteSnapshot(ctx, snapshot.ID))

		_, err := svc.FindSnapshotByID(ctx, snapshot.ID)
		assert.Equal(t, oscar.ENOTFOUND, oscar.ErrorCode(err))

		records, err := svc.FindSections(ctx, oscar.SectionFilter{SnapshotID: &snapshot.ID})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns ENOTFOUND for missing snapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSnapshotService(db)

		err := svc.DeleteSnapshot(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, oscar.ENOTFOUND, oscar.ErrorCode(err))
	})
}
