package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/report"

	"github.com/spf13/cobra"
)

var flagLastMonth bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Totals, net by day and per-restaurant breakdown",
	Long:  "Summarize a date range. Without --from/--to the current calendar month is used.",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	addRangeFlags(reportCmd)
	reportCmd.Flags().BoolVar(&flagLastMonth, "last-month", false, "Report the previous calendar month")
	reportCmd.MarkFlagsMutuallyExclusive("last-month", "from")
	reportCmd.MarkFlagsMutuallyExclusive("last-month", "to")
	rootCmd.AddCommand(reportCmd)
}

func reportWindow(now time.Time) (report.Window, error) {
	switch {
	case flagLastMonth:
		return report.LastMonth(now), nil
	case flagFrom != "" || flagTo != "":
		return rangeFromFlags()
	default:
		return report.ThisMonth(now), nil
	}
}

func runReport(_ *cobra.Command, _ []string) error {
	w, err := reportWindow(time.Now())
	if err != nil {
		return err
	}

	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	sum := report.Summarize(l.Shifts(), l.Expenses(), w)
	t := sum.Totals

	fmt.Println()
	fmt.Println(cli.RenderTitle("TIPS  " + w.String()))
	fmt.Println()

	fmt.Printf("  %-14s %s\n", "Made", cli.FormatMoney(t.Made))
	fmt.Printf("  %-14s %s\n", "Tip-out", cli.FormatMoney(t.TipOut))
	fmt.Printf("  %-14s %s\n", "Net", cli.Money(t.Net))
	fmt.Printf("  %-14s %s %s\n", "Avg / shift", cli.FormatMoney(t.Average), cli.Muted(fmt.Sprintf("(%d shifts)", t.Count)))
	if cfg.Features.Hours && t.Hours.IsPositive() {
		fmt.Printf("  %-14s %s %s\n", "Per hour", cli.FormatMoney(t.PerHour), cli.Muted("("+t.Hours.String()+"h)"))
	}
	if t.Made.IsPositive() {
		share := t.TipOut.Div(t.Made).InexactFloat64() * 100
		fmt.Printf("  %-14s %s\n", "Tip-out share", cli.Muted(fmt.Sprintf("%.1f%%", share)))
	}
	if len(sum.PerDay) > 1 {
		values := make([]float64, len(sum.PerDay))
		peak := sum.PerDay[0].Net
		for i, d := range sum.PerDay {
			values[i] = d.Net.InexactFloat64()
			if d.Net.GreaterThan(peak) {
				peak = d.Net
			}
		}
		fmt.Printf("  %-14s %s %s\n", "Trend", cli.RenderSparkline(values), cli.Muted("peak "+cli.FormatCompactMoney(peak)))
	}
	fmt.Println()

	fmt.Print(cli.RenderNetByDay(sum.PerDay, 40))
	fmt.Println()

	if len(sum.Restaurants) > 0 {
		rows := make([][]string, 0, len(sum.Restaurants))
		for _, r := range sum.Restaurants {
			name := r.Restaurant
			if name == "" {
				name = "(none)"
			}
			rows = append(rows, []string{name, cli.FormatNumber(int64(r.Shifts)), cli.Money(r.Net)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By Restaurant",
			Headers: []string{"Restaurant", "Shifts", "Net"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	if cfg.Features.Expenses {
		fmt.Printf("  %-20s %s %s\n", "Expenses", cli.FormatMoney(sum.ExpenseTotal.Amount),
			cli.Muted(fmt.Sprintf("(%d)", sum.ExpenseTotal.Count)))
		fmt.Printf("  %-20s %s\n", "Net after expenses", cli.Money(sum.NetAfterExpenses))
		fmt.Println()
	}
	return nil
}
