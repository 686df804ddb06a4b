package cmd

import (
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/log"
	"github.com/theirongolddev/tiptrack/internal/registry"
	"github.com/theirongolddev/tiptrack/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shiftFlags are the field flags shared by add and edit.
type shiftFlags struct {
	date, made, tipOut, hours, restaurant, notes string
}

func (f *shiftFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", "", "Shift date, YYYY-MM-DD (default today)")
	fs.StringVar(&f.made, "made", "", "Tips made")
	fs.StringVar(&f.tipOut, "tip-out", "", "Amount tipped out")
	fs.StringVar(&f.hours, "hours", "", "Hours worked")
	fs.StringVar(&f.restaurant, "restaurant", "", "Restaurant name")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
}

// apply copies every flag the user set onto v.
func (f *shiftFlags) apply(fs *pflag.FlagSet, v *tui.ShiftFormValues) {
	set := func(name, value string, dst *string) {
		if fs.Changed(name) {
			*dst = value
		}
	}
	set("date", f.date, &v.Date)
	set("made", f.made, &v.Made)
	set("tip-out", f.tipOut, &v.TipOut)
	set("hours", f.hours, &v.Hours)
	set("restaurant", f.restaurant, &v.Restaurant)
	set("notes", f.notes, &v.Notes)
}

var (
	addFlags       shiftFlags
	addInteractive bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a shift",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addFlags.register(addCmd.Flags())
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "Fill in the shift with a form")
	rootCmd.AddCommand(addCmd)
}

func runAdd(c *cobra.Command, _ []string) error {
	l, reg, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	vals := tui.NewShiftValues(reg.LastUsed())
	addFlags.apply(c.Flags(), vals)

	if addInteractive {
		form := tui.NewShiftForm(vals, reg.AllKnownNames(l.Shifts()), cfg.Features.Hours)
		if err := form.Run(); err != nil {
			return fmt.Errorf("shift form: %w", err)
		}
	}
	if !cfg.Features.Hours {
		vals.Hours = ""
	}

	e, err := vals.Entry()
	if err != nil {
		return err
	}
	saved, err := l.AddShift(e)
	if err != nil {
		return err
	}
	rememberRestaurant(reg, saved.Restaurant)

	info("  Added %s  %s  net %s\n", cli.ShortID(saved.ID), cli.FormatDate(saved.Date), cli.FormatMoney(saved.Net()))
	return nil
}

// rememberRestaurant registers name and makes it the default for the next
// shift. Failures only lose autocomplete state, so they are logged.
func rememberRestaurant(reg *registry.Registry, name string) {
	if name == "" {
		return
	}
	if err := reg.Register(name); err != nil {
		log.For(log.ComponentRegistry).Warn("registering restaurant", log.FieldError, err)
	}
	if err := reg.SetLastUsed(name); err != nil {
		log.For(log.ComponentRegistry).Warn("saving last restaurant", log.FieldError, err)
	}
}
