package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verde/internal/cli"
)

var flagRecompute bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Financial-health score breakdown and achievements",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagRecompute, "recompute", false, "Recompute and store the score first")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if flagRecompute {
		if err := a.ledger.RecomputeScore(cmd.Context()); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ScoreTable(a.ledger.GetScore())))

	profile, err := a.ledger.GetProfile()
	if err != nil {
		fmt.Println(cli.RenderMuted("  Not logged in; achievements are unavailable."))
		return nil
	}
	fmt.Println()
	if len(profile.Achievements) == 0 {
		fmt.Println(cli.RenderMuted("  No achievements unlocked yet."))
		return nil
	}
	fmt.Print(cli.RenderTable(cli.AchievementsTable(profile.Achievements)))
	return nil
}
