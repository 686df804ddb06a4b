package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/csvio"
	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/model"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add shifts from a CSV or XLSX export",
	Long:  "Add shifts from a file written by export. Columns are matched by header name; rows without a date are skipped. Imported shifts are added, never merged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func decodeFile(path string) ([]model.ShiftEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), "."+formatXLSX) {
		return csvio.DecodeXLSX(bytes.NewReader(data))
	}
	return csvio.Decode(string(data))
}

func runImport(_ *cobra.Command, args []string) error {
	if err := requireFeature(cfg.Features.Import, "import"); err != nil {
		return err
	}

	batch, err := decodeFile(args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if len(batch) == 0 {
		info("  Nothing to import from %s\n", args[0])
		return nil
	}
	if !cfg.Features.Hours {
		for i := range batch {
			batch[i].Hours = nil
		}
	}

	l, reg, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := l.ImportShifts(batch); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if err := reg.Seed(batch); err != nil {
		log.For(log.ComponentRegistry).Warn("registering imported restaurants", log.FieldError, err)
	}

	log.For(log.ComponentImport).Debug("imported shifts",
		log.FieldOperation, log.OpImport, log.FieldPath, args[0], log.FieldCount, len(batch))
	info("  Imported %d shifts from %s\n", len(batch), args[0])
	return nil
}
