package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verde/internal/budget"
	"verde/internal/cli"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute budget spending from transactions",
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	changed, err := a.ledger.RefreshBudgets(cmd.Context())
	if err != nil {
		return err
	}

	budgets := a.ledger.ListBudgets()
	if len(budgets) == 0 {
		fmt.Println("\n  No budgets defined.")
		return nil
	}

	progress := make([]budget.Progress, 0, len(budgets))
	for _, b := range budgets {
		progress = append(progress, budget.ProgressOf(b))
	}
	state := a.ledger.State()

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.BudgetTable(progress, state.CategoryLabel, a.currency)))
	if !changed {
		fmt.Println(cli.RenderMuted("  Already up to date."))
	}
	return nil
}
