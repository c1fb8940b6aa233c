package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"caltrack/internal/infra"
	"caltrack/internal/infra/credentials"
	"caltrack/internal/payout"
	"caltrack/internal/providers/payment"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, "worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)

	// The payout gateway is mocked; the key is still loaded so a real
	// processor can drop in without touching the worker loop.
	credStore := credentials.NewStore(runner)
	apiKey, err := credStore.PaymentAPIKey(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("worker: failed to load payment api key from store")
	}
	if apiKey == "" {
		logger.Warn().Msg("worker: payment api key missing, payouts run against the mock gateway")
	}

	worker := &payout.Worker{
		SQL:      runner,
		Payments: &payment.Mock{Delay: 500 * time.Millisecond},
		Logger:   logger,
		Interval: cfg.WorkerPollInterval,
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}
