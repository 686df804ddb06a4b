package cmd

import (
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/model"
	"github.com/theirongolddev/tiptrack/internal/registry"
	"github.com/theirongolddev/tiptrack/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var editFlags shiftFlags

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a recorded shift",
	Long:  "Change fields of a recorded shift. Only the flags given are changed; the id may be a unique prefix.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editFlags.register(editCmd.Flags())
	rootCmd.AddCommand(editCmd)
}

func runEdit(c *cobra.Command, args []string) error {
	l, reg, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	e, err := editShift(l, reg, c.Flags(), &editFlags, args[0])
	if err != nil {
		return err
	}
	info("  Updated %s  %s  net %s\n", cli.ShortID(e.ID), cli.FormatDate(e.Date), cli.FormatMoney(e.Net()))
	return nil
}

// editShift applies the flags set on fs to the shift matching ref and
// returns the stored result.
func editShift(l *ledger.Ledger, reg *registry.Registry, fs *pflag.FlagSet, f *shiftFlags, ref string) (model.ShiftEntry, error) {
	id, err := l.ResolveShiftID(ref)
	if err != nil {
		return model.ShiftEntry{}, fmt.Errorf("shift %q: %w", ref, err)
	}
	existing, _ := l.Shift(id)

	vals := tui.ShiftValuesFrom(existing)
	f.apply(fs, vals)
	e, err := vals.Entry()
	if err != nil {
		return model.ShiftEntry{}, err
	}
	if _, err := l.UpdateShift(id, e); err != nil {
		return model.ShiftEntry{}, err
	}
	rememberRestaurant(reg, e.Restaurant)
	e.ID = id
	return e, nil
}
