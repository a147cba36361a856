package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verde/internal/cli"
)

var flagMonth string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Month overview with category split and history",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagMonth, "month", "m", "", "Month to summarize as YYYY-MM (default current month)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	d, err := a.ledger.GetDashboard(flagMonth)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("VERDE  " + d.Month))
	fmt.Println()
	for _, t := range cli.DashboardTables(d, a.currency) {
		fmt.Print(cli.RenderTable(t))
		fmt.Println()
	}

	if months := a.ledger.AvailableMonths(); len(months) > 1 {
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  %d months with activity; pick one with --month", len(months))))
	}
	return nil
}
