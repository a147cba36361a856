package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"verde/internal/cli"
	"verde/internal/models"
	"verde/internal/services"
)

var flagSnapshotDate string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record today's net worth",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&flagSnapshotDate, "date", "", "Snapshot date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	date := flagSnapshotDate
	if date == "" {
		date = models.FormatDate(time.Now().UTC())
	}
	recordedAt, err := models.ParseDate(date)
	if err != nil {
		return fmt.Errorf("invalid --date %q: %w", date, err)
	}

	snapshots := services.NewNetWorthSnapshotService(a.db.DB(), a.ledger)
	snapshot, err := snapshots.RecordSnapshot(cmd.Context(), recordedAt)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.SnapshotTable(snapshot, a.currency)))
	return nil
}
