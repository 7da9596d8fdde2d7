package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nmap2csv/models"
)

func setupRepo(t *testing.T) *SQLiteScanImportRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	testDB, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	require.NoError(t, InitializeSchema(testDB))
	t.Cleanup(func() { testDB.Close() })
	return NewSQLiteScanImportRepository(testDB)
}

func newImport(created time.Time) *models.ScanImport {
	return &models.ScanImport{
		ID:          GenerateID(),
		InputPath:   "./enum/nmap_sv_sc.nmap",
		OutputPath:  "./enum/surface_map.csv",
		RecordCount: 5,
		OnlyOpen:    true,
		Schema:      models.SchemaAnnotated,
		CreatedAt:   created,
	}
}

func TestSQLiteScanImportRepository_CreateAndFindByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	imp := newImport(time.Now())
	require.NoError(t, repo.Create(ctx, imp))

	found, err := repo.FindByID(ctx, imp.ID)
	require.NoError(t, err)
	assert.Equal(t, imp.ID, found.ID)
	assert.Equal(t, imp.InputPath, found.InputPath)
	assert.Equal(t, imp.OutputPath, found.OutputPath)
	assert.Equal(t, 5, found.RecordCount)
	assert.True(t, found.OnlyOpen)
	assert.Equal(t, models.SchemaAnnotated, found.Schema)
}

func TestSQLiteScanImportRepository_FindByIDNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.FindByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteScanImportRepository_FindLatestOrdersNewestFirst(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	oldest := newImport(base)
	middle := newImport(base.Add(10 * time.Minute))
	newest := newImport(base.Add(20 * time.Minute))
	for _, imp := range []*models.ScanImport{oldest, middle, newest} {
		require.NoError(t, repo.Create(ctx, imp))
	}

	latest, err := repo.FindLatest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, newest.ID, latest[0].ID)
	assert.Equal(t, middle.ID, latest[1].ID)
}
