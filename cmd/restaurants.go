package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "List restaurant names offered for autocomplete",
	Args:  cobra.NoArgs,
	RunE:  runRestaurants,
}

func init() {
	rootCmd.AddCommand(restaurantsCmd)
}

func runRestaurants(_ *cobra.Command, _ []string) error {
	l, reg, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	names := reg.AllKnownNames(l.Shifts())
	if len(names) == 0 {
		fmt.Println("\n  No restaurants recorded yet.")
		return nil
	}

	last := reg.LastUsed()
	fmt.Println()
	for _, n := range names {
		if n == last {
			fmt.Printf("  %s  (last used)\n", n)
		} else {
			fmt.Printf("  %s\n", n)
		}
	}
	fmt.Println()
	return nil
}
