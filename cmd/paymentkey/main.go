package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"caltrack/internal/infra"
	"caltrack/internal/infra/credentials"
)

func main() {
	var keyFlag string
	flag.StringVar(&keyFlag, "key", "", "payment gateway API key (falls back to PAYMENT_API_KEY)")
	flag.Parse()

	key := strings.TrimSpace(keyFlag)
	if key == "" {
		key = strings.TrimSpace(os.Getenv("PAYMENT_API_KEY"))
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "payment API key is required via -key or PAYMENT_API_KEY")
		os.Exit(1)
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create pool: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger := infra.NewLogger(os.Getenv("APP_ENV"), "cli").With().Str("cmd", "paymentkey").Logger()
	store := credentials.NewStore(infra.NewSQLRunner(pool, logger))

	execCtx, cancelExec := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelExec()
	if err := store.SetPaymentAPIKey(execCtx, key); err != nil {
		fmt.Fprintf(os.Stderr, "failed to persist payment api key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("payment API key stored successfully")
}
