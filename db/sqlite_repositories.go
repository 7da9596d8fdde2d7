package db

import (
	"context"
	"database/sql"
	"fmt"

	"nmap2csv/models"
)

// SQLiteScanImportRepository implements the ScanImportRepository interface for SQLite
type SQLiteScanImportRepository struct {
	db *sql.DB
}

// NewSQLiteScanImportRepository creates a new SQLiteScanImportRepository
func NewSQLiteScanImportRepository(db *sql.DB) *SQLiteScanImportRepository {
	return &SQLiteScanImportRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteScanImportRepository) Close() error {
	return r.db.Close()
}

// Create inserts a new import record
func (r *SQLiteScanImportRepository) Create(ctx context.Context, imp *models.ScanImport) error {
	query := `INSERT INTO scan_imports (id, input_path, output_path, record_count, only_open, schema, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		imp.ID, imp.InputPath, imp.OutputPath, imp.RecordCount, imp.OnlyOpen, string(imp.Schema), imp.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting scan import: %w", err)
	}
	return nil
}

// FindByID finds an import record by ID
func (r *SQLiteScanImportRepository) FindByID(ctx context.Context, id string) (*models.ScanImport, error) {
	query := `SELECT id, input_path, output_path, record_count, only_open, schema, created_at
		FROM scan_imports WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	imp, err := scanImportFromRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return imp, nil
}

// FindLatest returns the most recent import records, newest first
func (r *SQLiteScanImportRepository) FindLatest(ctx context.Context, limit int) ([]*models.ScanImport, error) {
	query := `SELECT id, input_path, output_path, record_count, only_open, schema, created_at
		FROM scan_imports ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying scan imports: %w", err)
	}
	defer rows.Close()

	var imports []*models.ScanImport
	for rows.Next() {
		imp, err := scanImportFromRow(rows)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanImportFromRow(row rowScanner) (*models.ScanImport, error) {
	var imp models.ScanImport
	var schema string

	err := row.Scan(&imp.ID, &imp.InputPath, &imp.OutputPath, &imp.RecordCount, &imp.OnlyOpen, &schema, &imp.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning scan import: %w", err)
	}

	imp.Schema = models.Schema(schema)
	return &imp, nil
}
