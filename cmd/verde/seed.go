package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verde/internal/config"
	"verde/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inspect the starting data for new ledgers",
}

var seedDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active seed as TOML, a starting point for SEED_FILE",
	RunE:  runSeedDump,
}

func init() {
	seedCmd.AddCommand(seedDumpCmd)
	rootCmd.AddCommand(seedCmd)
}

func runSeedDump(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	f, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	out, err := f.Encode()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
