package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/staffscout/internal/core/domain"
	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

// SheetName is the worksheet the XLSX sink writes to.
const SheetName = "Contacts"

// Verify interface compliance.
var _ driven.ContactSink = (*XLSXSink)(nil)

// XLSXSink writes contacts to a single-sheet Excel workbook.
type XLSXSink struct {
	path string
}

// NewXLSXSink creates a sink that writes to path.
func NewXLSXSink(path string) *XLSXSink {
	return &XLSXSink{path: path}
}

// Write writes the header and one row per contact, replacing any existing file.
func (s *XLSXSink) Write(ctx context.Context, contacts []domain.EnrichedContact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ensureDir(s.path); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, 1, domain.ExportColumns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i := range contacts {
		if err := writeRow(f, i+2, contacts[i].Row()); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return "", fmt.Errorf("save %s: %w", s.path, err)
	}
	return s.path, nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}
