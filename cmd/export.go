package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/csvio"
	"github.com/theirongolddev/tiptrack/internal/log"

	"github.com/spf13/cobra"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all shifts to a CSV or XLSX file",
	Long:  "Write all shifts to a file. The name defaults to general.default_file_name and gets the format's extension when it has none. Use - for stdout (CSV only).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", formatCSV, "Output format: csv or xlsx")
	rootCmd.AddCommand(exportCmd)
}

// exportVariant picks the column set for the enabled features.
func exportVariant(c config.Config) csvio.Variant {
	if c.Features.Hours {
		return csvio.Full
	}
	return csvio.Simple
}

func runExport(_ *cobra.Command, args []string) error {
	format := strings.ToLower(flagExportFormat)
	if format != formatCSV && format != formatXLSX {
		return fmt.Errorf("unknown export format %q: must be csv or xlsx", flagExportFormat)
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	shifts := l.Shifts()
	variant := exportVariant(cfg)

	if name == "-" {
		if format != formatCSV {
			return errors.New("xlsx cannot be written to stdout")
		}
		fmt.Println(csvio.Encode(shifts, variant))
		return nil
	}

	path := cfg.ExportFileName(name, "."+format)
	var data []byte
	switch format {
	case formatXLSX:
		var buf bytes.Buffer
		if err := csvio.EncodeXLSX(&buf, shifts, variant); err != nil {
			return fmt.Errorf("encoding workbook: %w", err)
		}
		data = buf.Bytes()
	default:
		data = []byte(csvio.Encode(shifts, variant))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.For(log.ComponentImport).Debug("exported shifts",
		log.FieldOperation, log.OpExport, log.FieldPath, path, log.FieldCount, len(shifts))
	info("  Exported %d shifts to %s\n", len(shifts), path)
	return nil
}
