package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"caltrack/internal/adapter/repo"
	"caltrack/internal/domain"
	"caltrack/internal/infra"
)

// userplan flips a profile's subscription status from the command line,
// mainly for support work: comping an account or rolling back a bad charge.
func main() {
	var (
		idFlag     string
		statusFlag string
	)
	flag.StringVar(&idFlag, "id", "", "profile ID to update (UUID)")
	flag.StringVar(&statusFlag, "status", "active", "subscription status to assign (trial, active, expired, cancelled)")
	flag.Parse()

	profileID := strings.TrimSpace(idFlag)
	status := domain.SubscriptionStatus(strings.TrimSpace(strings.ToLower(statusFlag)))

	if profileID == "" {
		exitWithError(errors.New("-id is required"))
	}
	switch status {
	case domain.SubscriptionTrial, domain.SubscriptionActive, domain.SubscriptionExpired, domain.SubscriptionCancelled:
	default:
		exitWithError(fmt.Errorf("unsupported status %q", statusFlag))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger(os.Getenv("APP_ENV"), "cli").With().Str("cmd", "userplan").Logger()
	profiles := repo.NewProfileRepository(infra.NewSQLRunner(pool, logger))

	execCtx, cancelExec := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelExec()

	profile, err := profiles.GetByID(execCtx, profileID)
	if err != nil {
		exitWithError(fmt.Errorf("failed to load profile: %w", err))
	}
	if err := profiles.SetSubscription(execCtx, profile.ID, status); err != nil {
		exitWithError(fmt.Errorf("failed to update subscription: %w", err))
	}

	fmt.Printf("Profile %s (%s) moved from %s to %s\n", profile.ID, profile.Name, profile.Subscription, status)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
