package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagListSort string
	flagListAsc  bool
	flagListDesc bool
	flagFrom     string
	flagTo       string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded shifts",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListSort, "sort", string(ledger.SortDate), "Sort column: date, made, tip-out, net, hours, restaurant, notes")
	listCmd.Flags().BoolVar(&flagListAsc, "asc", false, "Sort ascending")
	listCmd.Flags().BoolVar(&flagListDesc, "desc", false, "Sort descending")
	addRangeFlags(listCmd)
	listCmd.MarkFlagsMutuallyExclusive("asc", "desc")
	rootCmd.AddCommand(listCmd)
}

// addRangeFlags registers the inclusive --from/--to date filter.
func addRangeFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagFrom, "from", "", "First date to include, YYYY-MM-DD")
	c.Flags().StringVar(&flagTo, "to", "", "Last date to include, YYYY-MM-DD")
}

func rangeFromFlags() (report.Window, error) {
	for _, d := range []string{flagFrom, flagTo} {
		if d != "" && !model.ValidDate(d) {
			return report.Window{}, fmt.Errorf("%w %q", model.ErrInvalidDate, d)
		}
	}
	return report.Window{Start: flagFrom, End: flagTo}, nil
}

func runList(_ *cobra.Command, _ []string) error {
	key, err := ledger.ParseSortKey(flagListSort)
	if err != nil {
		return err
	}
	state := ledger.SortState{Key: key, Desc: key == ledger.SortDate}
	switch {
	case flagListAsc:
		state.Desc = false
	case flagListDesc:
		state.Desc = true
	}

	w, err := rangeFromFlags()
	if err != nil {
		return err
	}

	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	shifts := report.FilterByRange(l.Shifts(), w.Start, w.End)
	if len(shifts) == 0 {
		if len(l.Shifts()) == 0 {
			fmt.Println("\n  No shifts recorded. Add one with `tiptrack add`.")
			return nil
		}
		fmt.Printf("\n  No shifts %s.\n", w)
		return nil
	}
	shifts = ledger.SortShifts(shifts, state)

	headers := []string{"ID", "Date", "Restaurant", "Made", "Tip-out", "Net"}
	if cfg.Features.Hours {
		headers = append(headers, "Hours")
	}
	headers = append(headers, "Notes")

	rows := make([][]string, 0, len(shifts)+2)
	for _, e := range shifts {
		row := []string{
			cli.ShortID(e.ID),
			cli.FormatDate(e.Date),
			cli.Truncate(e.Restaurant, 20),
			cli.FormatMoney(e.Made),
			cli.FormatMoney(e.TipOut),
			cli.Money(e.Net()),
		}
		if cfg.Features.Hours {
			row = append(row, cli.FormatHours(e.Hours))
		}
		rows = append(rows, append(row, cli.Truncate(e.Notes, 30)))
	}

	t := report.ComputeTotals(shifts)
	total := []string{"", "Total", "", cli.FormatMoney(t.Made), cli.FormatMoney(t.TipOut), cli.Money(t.Net)}
	if cfg.Features.Hours {
		total = append(total, t.Hours.String())
	}
	rows = append(rows, []string{"---"}, append(total, ""))

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Shifts %s · sorted by %s", w, state),
		Headers: headers,
		Rows:    rows,
		Left:    []int{1, 2, len(headers) - 1},
	}))
	return nil
}

// errFeatureOff is returned by commands whose feature is disabled in config.
var errFeatureOff = errors.New("feature disabled in config")

func requireFeature(enabled bool, name string) error {
	if enabled {
		return nil
	}
	return fmt.Errorf("%s: %w (set features.%s = true)", name, errFeatureOff, name)
}
