package history

import (
	"context"
	"time"

	"nmap2csv/db"
	"nmap2csv/internal/util"
	"nmap2csv/models"
)

// HistoryService records conversion runs and lists past ones. It stores
// run metadata only; the extracted findings themselves are never
// persisted.
type HistoryService struct {
	repository db.ScanImportRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(repository db.ScanImportRepository) *HistoryService {
	return &HistoryService{repository: repository}
}

// RecordImport saves one conversion run and returns the stored entry
func (s *HistoryService) RecordImport(ctx context.Context, inputPath, outputPath string, recordCount int, onlyOpen bool, schema models.Schema) (*models.ScanImport, error) {
	imp := &models.ScanImport{
		ID:          db.GenerateID(),
		InputPath:   inputPath,
		OutputPath:  outputPath,
		RecordCount: recordCount,
		OnlyOpen:    onlyOpen,
		Schema:      schema,
		CreatedAt:   time.Now(),
	}

	err := util.RetryOnLock(func() error {
		return s.repository.Create(ctx, imp)
	})
	if err != nil {
		return nil, err
	}
	return imp, nil
}

// FindLatest returns the most recent imports, newest first
func (s *HistoryService) FindLatest(ctx context.Context, limit int) ([]*models.ScanImport, error) {
	return util.RetryOnLockWithResult(func() ([]*models.ScanImport, error) {
		return s.repository.FindLatest(ctx, limit)
	})
}
