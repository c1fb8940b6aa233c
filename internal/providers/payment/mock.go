package payment

import (
	"context"
	"time"

	"caltrack/internal/domain"
)

// Mock approves every charge and payout after an optional delay. FailWith
// forces a fixed error for exercising failure paths in tests and the worker.
type Mock struct {
	Delay    time.Duration
	FailWith error
}

func (m *Mock) ChargeSubscription(ctx context.Context, _ string, _ int64) error {
	return m.settle(ctx)
}

func (m *Mock) Payout(ctx context.Context, _ string, _ domain.PixKeyType, _ int64) error {
	return m.settle(ctx)
}

func (m *Mock) settle(ctx context.Context) error {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return m.FailWith
}

var _ Processor = (*Mock)(nil)
