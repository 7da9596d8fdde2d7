package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nmap2csv/models"
	"nmap2csv/tests/testutils"
)

func TestRecordImport(t *testing.T) {
	repo, cleanup := testutils.SetupTestImportRepository(t)
	defer cleanup()
	service := NewHistoryService(repo)

	imp, err := service.RecordImport(context.Background(), "scan.nmap", "scan.nmap.csv", 4, true, models.SchemaBasic)
	require.NoError(t, err)
	assert.NotEmpty(t, imp.ID)
	assert.False(t, imp.CreatedAt.IsZero())

	stored, err := repo.FindByID(context.Background(), imp.ID)
	require.NoError(t, err)
	assert.Equal(t, "scan.nmap", stored.InputPath)
	assert.Equal(t, "scan.nmap.csv", stored.OutputPath)
	assert.Equal(t, 4, stored.RecordCount)
	assert.Equal(t, models.SchemaBasic, stored.Schema)
}

func TestFindLatest(t *testing.T) {
	repo, cleanup := testutils.SetupTestImportRepository(t)
	defer cleanup()
	service := NewHistoryService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.RecordImport(ctx, "scan.nmap", "scan.nmap.csv", i, true, models.SchemaAnnotated)
		require.NoError(t, err)
	}

	latest, err := service.FindLatest(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, latest, 3)
}
