package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"caltrack/internal/adapter/repo"
	"caltrack/internal/http/handlers"
	httpapi "caltrack/internal/http/httpapi"
	"caltrack/internal/infra"
	"caltrack/internal/infra/geoip"
	"caltrack/internal/middleware"
	"caltrack/internal/providers/activity"
	"caltrack/internal/providers/device"
	"caltrack/internal/providers/payment"
	"caltrack/internal/providers/vision"
	"caltrack/internal/storage"
	"caltrack/internal/subscription"
	"caltrack/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, "api")

	ctx := context.Background()
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()
	runner := infra.NewSQLRunner(pool, logger)

	deviceStore, err := storage.NewDeviceStateStore(cfg.DeviceStatePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure device state storage")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	profiles := repo.NewProfileRepository(runner)
	meals := repo.NewMealRepository(pool, runner)
	progress := repo.NewProgressRepository(runner)

	app := &handlers.App{
		SQL:    runner,
		Logger: logger,

		Profiles:  profiles,
		Meals:     meals,
		Progress:  progress,
		Weights:   repo.NewWeightRepository(runner),
		Runs:      repo.NewRunningRepository(runner),
		Affiliate: repo.NewAffiliateRepository(runner),

		Tracker:     tracker.NewService(profiles, meals, progress, nil),
		Activity:    activity.NewSession(0, 0),
		Vision:      &vision.Mock{Delay: 2 * time.Second},
		Payments:    &payment.Mock{Delay: time.Second},
		Devices:     &device.Mock{Delay: 2 * time.Second},
		DeviceState: deviceStore,

		Trial:     subscription.NewWindow(cfg.TrialDays),
		JWTSecret: cfg.JWTSecret,
	}

	router := httpapi.NewRouter(app, cfg, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
