package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"verde/internal/amqp"
	"verde/internal/cli"
	"verde/internal/config"
	"verde/internal/events"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Work with forwarded ledger events",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print ledger events from the AMQP queue as they arrive",
	RunE:  runEventsTail,
}

func init() {
	eventsCmd.AddCommand(eventsTailCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsTail(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.AMQPEnabled() {
		return errors.New("AMQP_URL is not set")
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Tailing %s (Ctrl+C to stop)\n", cfg.AMQPQueue)
	}
	err = client.ConsumeEvents(ctx, func(e events.Event) error {
		fmt.Println(cli.EventLine(e))
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
