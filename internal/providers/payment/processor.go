// Package payment defines the charge/payout capability. Real gateway
// integration is out of scope; a mock stands in for it.
package payment

import (
	"context"

	"caltrack/internal/domain"
)

// Processor charges subscriptions and pays out affiliate withdrawals.
type Processor interface {
	ChargeSubscription(ctx context.Context, userID string, amountCents int64) error
	Payout(ctx context.Context, pixKey string, keyType domain.PixKeyType, amountCents int64) error
}
