package models

import "time"

// ScanImport represents one recorded conversion run
type ScanImport struct {
	ID          string    `json:"id"`
	InputPath   string    `json:"input_path"`
	OutputPath  string    `json:"output_path"`
	RecordCount int       `json:"record_count"`
	OnlyOpen    bool      `json:"only_open"`
	Schema      Schema    `json:"schema"`
	CreatedAt   time.Time `json:"created_at"`
}
