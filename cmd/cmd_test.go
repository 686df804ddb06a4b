package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/tiptrack/internal/config"
	"github.com/theirongolddev/tiptrack/internal/csvio"
	"github.com/theirongolddev/tiptrack/internal/model"
)

func resetRangeFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagFrom, flagTo, flagLastMonth = "", "", false
	})
}

func TestReportWindow(t *testing.T) {
	resetRangeFlags(t)
	now := time.Date(2025, 1, 20, 9, 0, 0, 0, time.Local)

	w, err := reportWindow(now)
	if err != nil || w.Start != "2025-01-01" || w.End != "2025-01-31" {
		t.Fatalf("default window = %+v, %v; want January 2025", w, err)
	}

	flagLastMonth = true
	w, _ = reportWindow(now)
	if w.Start != "2024-12-01" || w.End != "2024-12-31" {
		t.Fatalf("last month = %+v, want December 2024", w)
	}

	flagLastMonth = false
	flagFrom = "2025-01-05"
	w, _ = reportWindow(now)
	if w.Start != "2025-01-05" || w.End != "" {
		t.Fatalf("from-only window = %+v", w)
	}
}

func TestRangeFromFlagsRejectsBadDate(t *testing.T) {
	resetRangeFlags(t)
	flagTo = "Jan 5"
	if _, err := rangeFromFlags(); !errors.Is(err, model.ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestExportVariantFollowsHours(t *testing.T) {
	c := config.DefaultConfig()
	if got := exportVariant(c); got != csvio.Full {
		t.Fatalf("variant with hours = %v, want Full", got)
	}
	c.Features.Hours = false
	if got := exportVariant(c); got != csvio.Simple {
		t.Fatalf("variant without hours = %v, want Simple", got)
	}
}

func TestRequireFeature(t *testing.T) {
	if err := requireFeature(true, "import"); err != nil {
		t.Fatalf("enabled feature: %v", err)
	}
	if err := requireFeature(false, "import"); !errors.Is(err, errFeatureOff) {
		t.Fatalf("err = %v, want errFeatureOff", err)
	}
}
