// Package payout drains pending affiliate withdrawals through the payment
// provider. One worker claims one payout at a time; skip-locked claiming
// keeps multiple workers from colliding.
package payout

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/providers/payment"
	"caltrack/internal/sqlinline"
)

const defaultPollInterval = 5 * time.Second

// ErrNoPayoutAvailable signals an empty queue.
var ErrNoPayoutAvailable = errors.New("no payout available")

type claimedPayout struct {
	ID          string
	UserID      string
	AmountCents int64
	PixKey      string
	PixKeyType  domain.PixKeyType
}

// Worker polls for pending withdrawals and settles them.
type Worker struct {
	SQL      infra.SQLExecutor
	Payments payment.Processor
	Logger   zerolog.Logger
	Interval time.Duration
}

// Run processes payouts until the context is cancelled. An empty queue
// sleeps one interval; processing errors are logged and polling continues.
func (w *Worker) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	w.Logger.Info().Msg("payout worker started")
	for {
		if err := w.ProcessOne(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if !errors.Is(err, ErrNoPayoutAvailable) {
				w.Logger.Error().Err(err).Msg("payout processing failed")
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}
}

// ProcessOne claims the oldest pending withdrawal and settles it: a
// successful payout completes the row, a rejected one marks it failed and
// refunds the debited balance.
func (w *Worker) ProcessOne(ctx context.Context) error {
	claimed, err := w.claim(ctx)
	if err != nil {
		return err
	}

	w.Logger.Info().
		Str("withdrawal_id", claimed.ID).
		Int64("amount_cents", claimed.AmountCents).
		Msg("processing payout")

	if payErr := w.Payments.Payout(ctx, claimed.PixKey, claimed.PixKeyType, claimed.AmountCents); payErr != nil {
		w.Logger.Warn().Err(payErr).Str("withdrawal_id", claimed.ID).Msg("payout rejected, refunding")
		if _, err := w.SQL.Exec(ctx, sqlinline.QFailWithdrawal, claimed.ID, payErr.Error()); err != nil {
			return err
		}
		return nil
	}

	if _, err := w.SQL.Exec(ctx, sqlinline.QCompleteWithdrawal, claimed.ID); err != nil {
		return err
	}
	w.Logger.Info().Str("withdrawal_id", claimed.ID).Msg("payout completed")
	return nil
}

func (w *Worker) claim(ctx context.Context) (claimedPayout, error) {
	row := w.SQL.QueryRow(ctx, sqlinline.QClaimPendingWithdrawal)
	var claimed claimedPayout
	if err := row.Scan(&claimed.ID, &claimed.UserID, &claimed.AmountCents, &claimed.PixKey, &claimed.PixKeyType); err != nil {
		if infra.IsNoRows(err) {
			return claimedPayout{}, ErrNoPayoutAvailable
		}
		return claimedPayout{}, err
	}
	return claimed, nil
}
