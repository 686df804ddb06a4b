package cmd

import (
	"fmt"

	"github.com/theirongolddev/tiptrack/internal/cli"
	"github.com/theirongolddev/tiptrack/internal/ledger"
	"github.com/theirongolddev/tiptrack/internal/report"
	"github.com/theirongolddev/tiptrack/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type expenseFlags struct {
	date, amount, description string
}

func (f *expenseFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", "", "Expense date, YYYY-MM-DD (default today)")
	fs.StringVar(&f.amount, "amount", "", "Amount")
	fs.StringVar(&f.description, "description", "", "What it was for")
}

func (f *expenseFlags) apply(fs *pflag.FlagSet, v *tui.ExpenseFormValues) {
	if fs.Changed("date") {
		v.Date = f.date
	}
	if fs.Changed("amount") {
		v.Amount = f.amount
	}
	if fs.Changed("description") {
		v.Description = f.description
	}
}

var (
	expenseAddFlags  expenseFlags
	expenseEditFlags expenseFlags
)

var expenseCmd = &cobra.Command{
	Use:     "expense",
	Aliases: []string{"expenses"},
	Short:   "Record and list work expenses",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := loadConfig(c, args); err != nil {
			return err
		}
		return requireFeature(cfg.Features.Expenses, "expenses")
	},
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	Args:  cobra.NoArgs,
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses, newest first",
	Args:    cobra.NoArgs,
	RunE:    runExpenseList,
}

var expenseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseEdit,
}

var expenseRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runExpenseRm,
}

func init() {
	expenseAddFlags.register(expenseAddCmd.Flags())
	expenseEditFlags.register(expenseEditCmd.Flags())
	addRangeFlags(expenseListCmd)

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseEditCmd, expenseRmCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(c *cobra.Command, _ []string) error {
	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	vals := tui.NewExpenseValues()
	expenseAddFlags.apply(c.Flags(), vals)
	e, err := vals.Entry()
	if err != nil {
		return err
	}
	saved, err := l.AddExpense(e)
	if err != nil {
		return err
	}
	info("  Added expense %s  %s  %s\n", cli.ShortID(saved.ID), saved.Description, cli.FormatMoney(saved.Amount))
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	w, err := rangeFromFlags()
	if err != nil {
		return err
	}

	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	expenses := ledger.SortExpenses(report.FilterExpensesByRange(l.Expenses(), w.Start, w.End))
	if len(expenses) == 0 {
		fmt.Printf("\n  No expenses %s.\n", w)
		return nil
	}

	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.FormatDate(e.Date),
			cli.Truncate(e.Description, 40),
			cli.FormatMoney(e.Amount),
		})
	}
	t := report.ComputeExpenseTotals(expenses)
	rows = append(rows, []string{"---"}, []string{"", "Total", cli.FormatNumber(int64(t.Count)) + " expenses", cli.FormatMoney(t.Amount)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Expenses " + w.String(),
		Headers: []string{"ID", "Date", "Description", "Amount"},
		Rows:    rows,
		Left:    []int{1, 2},
	}))
	return nil
}

func runExpenseEdit(c *cobra.Command, args []string) error {
	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := l.ResolveExpenseID(args[0])
	if err != nil {
		return fmt.Errorf("expense %q: %w", args[0], err)
	}
	existing, _ := l.Expense(id)

	vals := tui.ExpenseValuesFrom(existing)
	expenseEditFlags.apply(c.Flags(), vals)
	e, err := vals.Entry()
	if err != nil {
		return err
	}
	if _, err := l.UpdateExpense(id, e); err != nil {
		return err
	}
	info("  Updated expense %s\n", cli.ShortID(id))
	return nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	l, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := l.ResolveExpenseID(args[0])
	if err != nil {
		return fmt.Errorf("expense %q: %w", args[0], err)
	}
	if _, err := l.RemoveExpense(id); err != nil {
		return err
	}
	info("  Deleted expense %s\n", cli.ShortID(id))
	return nil
}
