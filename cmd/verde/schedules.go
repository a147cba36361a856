package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verde/internal/cli"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Upcoming and overdue scheduled payments",
	RunE:  runSchedules,
}

var payCmd = &cobra.Command{
	Use:   "pay <schedule-id>",
	Short: "Pay a schedule now and move it to its next due date",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
	rootCmd.AddCommand(payCmd)
}

func runSchedules(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	agenda := a.ledger.Agenda()
	if len(agenda) == 0 {
		fmt.Println("\n  No scheduled payments.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.AgendaTable(agenda, a.currency)))
	return nil
}

func runPay(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	tx, err := a.ledger.PaySchedule(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if tx == nil {
		return fmt.Errorf("schedule %s not found", args[0])
	}

	fmt.Printf("\n  Paid %s: %s on %s (%s)\n", tx.Description, cli.FormatMoney(tx.Amount, a.currency), tx.Date, tx.ID)
	if next, err := a.ledger.GetSchedule(args[0]); err == nil {
		fmt.Println(cli.RenderMuted("  Next due " + next.Date))
	}
	return nil
}
