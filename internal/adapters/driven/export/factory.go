package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/staffscout/internal/core/ports/driven"
)

// New returns the sink for target, chosen by file extension.
func New(target string) driven.ContactSink {
	if strings.EqualFold(filepath.Ext(target), ".xlsx") {
		return NewXLSXSink(target)
	}
	return NewCSVSink(target)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}
