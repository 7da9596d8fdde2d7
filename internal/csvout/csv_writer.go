package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"nmap2csv/models"
)

// Writer serializes port findings to CSV with a fixed column schema
type Writer struct {
	schema models.Schema
}

// NewWriter creates a new CSV Writer for the given schema
func NewWriter(schema models.Schema) *Writer {
	return &Writer{schema: schema}
}

// Write emits the header row followed by one row per finding, in order
func (w *Writer) Write(out io.Writer, findings []models.PortFinding) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if err := cw.Write(w.schema.Header()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, f := range findings {
		if err := cw.Write(f.Row(w.schema)); err != nil {
			return fmt.Errorf("failed to write CSV row for port %s: %w", f.Port, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile creates (or truncates) path and writes the findings to it
func (w *Writer) WriteFile(path string, findings []models.PortFinding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file: %s: %w", path, err)
	}
	defer f.Close()

	if err := w.Write(f, findings); err != nil {
		return err
	}
	return f.Close()
}
