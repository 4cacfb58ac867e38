package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ContactSink = (*CSVSink)(nil)

// CSVSink writes contacts as a CSV file with a header row.
type CSVSink struct {
	path string
}

// NewCSVSink creates a sink that writes to path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Write writes the header and one row per contact, replacing any existing file.
func (s *CSVSink) Write(ctx context.Context, contacts []domain.EnrichedContact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ensureDir(s.path); err != nil {
		return "", err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(domain.ExportColumns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i := range contacts {
		if err := w.Write(contacts[i].Row()); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", s.path, err)
	}
	return s.path, nil
}
