package cmd

import (
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/cli"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a recorded shift",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := l.ResolveShiftID(args[0])
	if err != nil {
		return fmt.Errorf("shift %q: %w", args[0], err)
	}
	if _, err := l.RemoveShift(id); err != nil {
		return err
	}
	info("  Deleted %s\n", cli.ShortID(id))
	return nil
}
