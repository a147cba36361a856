package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"verde/internal/amqp"
	"verde/internal/config"
	"verde/internal/database"
	"verde/internal/events"
	"verde/internal/logger"
	"verde/internal/router"
	"verde/internal/seed"
	"verde/internal/services"
	"verde/internal/validator"
)

// @title           Verde API
// @version         1.0
// @description     Verde is a personal finance ledger: accounts, transactions, budgets, schedules, investments, goals and a financial-health score.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	seedFile, err := seed.Load(appConfig.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbManager.DB()
	bus := events.NewBus()
	ledger, err := services.NewFinance(ctx, database.NewStateRepository(db, appConfig.StateKey),
		services.WithBus(bus),
		services.WithPaymentPrefix(appConfig.PaymentPrefix),
		services.WithSeed(seedFile),
	)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}

	auditService := services.NewAuditService(db)
	bus.Subscribe(auditService.Subscriber())

	if appConfig.AMQPEnabled() {
		client, err := amqp.NewClient(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPQueue)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP: %w", err)
		}
		defer client.Close()
		bus.Subscribe(events.Forward(client))
		log.Infof("Forwarding ledger events to exchange %s", appConfig.AMQPExchange)
	}

	validator.Register()
	engine := router.New(router.Services{
		Ledger:    ledger,
		Audit:     auditService,
		Snapshots: services.NewNetWorthSnapshotService(db, ledger),
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Verde server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
