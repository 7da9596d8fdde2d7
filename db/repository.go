package db

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"nmap2csv/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repository defines a common interface for all repositories
type Repository interface {
	Close() error
}

// ScanImportRepository defines the interface for import history operations
type ScanImportRepository interface {
	Repository
	Create(ctx context.Context, imp *models.ScanImport) error
	FindByID(ctx context.Context, id string) (*models.ScanImport, error)
	FindLatest(ctx context.Context, limit int) ([]*models.ScanImport, error)
}

// GenerateID generates a unique ID for a record
func GenerateID() string {
	return uuid.New().String()
}
