package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"verde/internal/config"
	"verde/internal/database"
	"verde/internal/events"
	"verde/internal/logger"
	"verde/internal/seed"
	"verde/internal/services"
)

var (
	flagCurrency string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:           "verde",
	Short:         "Personal finance ledger",
	Long:          "Inspect and operate the Verde ledger: dashboard, score, schedules, budgets and net worth.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency code for amounts (default $CURRENCY)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// app is the ledger stack shared by every command.
type app struct {
	cfg      *config.Config
	db       *database.Manager
	ledger   *services.Finance
	currency string
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Get().Warnw("failed to close database", "error", err)
	}
}

// openApp opens the configured database and loads the ledger. The audit log
// records every mutation the CLI makes, like the API does.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Opening %s ledger...\n", dbConfig.Driver)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	seedFile, err := seed.Load(cfg.SeedFile)
	if err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	bus := events.NewBus()
	ledger, err := services.NewFinance(ctx, database.NewStateRepository(dbManager.DB(), cfg.StateKey),
		services.WithBus(bus),
		services.WithPaymentPrefix(cfg.PaymentPrefix),
		services.WithSeed(seedFile),
	)
	if err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	bus.Subscribe(services.NewAuditService(dbManager.DB()).Subscriber())

	currency := flagCurrency
	if currency == "" {
		currency = cfg.Currency
	}

	return &app{cfg: cfg, db: dbManager, ledger: ledger, currency: currency}, nil
}
