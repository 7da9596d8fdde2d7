package testutils

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"nmap2csv/db"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func SetupTestDatabase(t *testing.T) (*sql.DB, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	testDB, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_timeout=10000&_foreign_keys=on")
	require.NoError(t, err)

	err = db.InitializeSchema(testDB)
	require.NoError(t, err)

	cleanup := func() {
		testDB.Close()
		os.RemoveAll(tempDir)
	}

	return testDB, cleanup
}

func SetupTestImportRepository(t *testing.T) (db.ScanImportRepository, func()) {
	testDB, cleanup := SetupTestDatabase(t)
	return db.NewSQLiteScanImportRepository(testDB), cleanup
}
