package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-stats/internal/config"
	"github.com/spec-kit/ticket-stats/internal/events"
	"github.com/spec-kit/ticket-stats/internal/observability"
	"github.com/spec-kit/ticket-stats/internal/repository"
	"github.com/spec-kit/ticket-stats/internal/service"
	"github.com/spec-kit/ticket-stats/internal/statistics"
	"github.com/spec-kit/ticket-stats/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger = logger.With(
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("run_id", uuid.NewString()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("ticket-stats failed", zap.Error(err))
	}
}

// run generates the configured tickets and prints their statistics to out.
// An interrupt during generation stops early but still prints what was counted.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification), logger)

	var chooser service.Chooser
	if cfg.Generator.Seed != 0 {
		chooser = service.NewSeededChooser(cfg.Generator.Seed)
	}

	stats := statistics.NewAggregator()
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: repository.NewMemoryTicketRepository(),
		Stats:      stats,
		Dispatcher: dispatcher,
		Logger:     logger,
		CVEPool:    cfg.Generator.CVEPool,
		Rand:       chooser,
	})

	tickets, err := ticketService.GenerateTickets(ctx, cfg.Generator.Amount)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("generation interrupted, printing partial statistics",
			zap.Int("requested", cfg.Generator.Amount),
			zap.Int("generated", len(tickets)))
	case err != nil:
		return err
	default:
		logger.Info("tickets generated",
			zap.Int("amount", len(tickets)),
			zap.Int64("open_with_cve", stats.OpenTicketsWithCVE()),
			zap.Int64("closed_high_severity", stats.ClosedHighSeverityTickets()))
	}

	return ticketService.PrintStatistics(out)
}
