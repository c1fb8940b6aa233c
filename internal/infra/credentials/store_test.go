package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

type stubExecutor struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(query string, args ...any) pgx.Row
}

func (s *stubExecutor) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	return s.execFn(query, args...)
}

func (s *stubExecutor) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	return s.queryRowFn(query, args...)
}

func (s *stubExecutor) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query not expected")
}

func TestPaymentAPIKeyMissingRowReturnsEmpty(t *testing.T) {
	sql := &stubExecutor{
		queryRowFn: func(string, ...any) pgx.Row {
			return stubRow{scan: func(...any) error { return pgx.ErrNoRows }}
		},
	}
	store := NewStore(sql)

	key, err := store.PaymentAPIKey(context.Background())
	if err != nil {
		t.Fatalf("PaymentAPIKey returned error: %v", err)
	}
	if key != "" {
		t.Fatalf("key = %q, want empty", key)
	}
}

func TestPaymentAPIKeyTrimsToken(t *testing.T) {
	sql := &stubExecutor{
		queryRowFn: func(_ string, args ...any) pgx.Row {
			if args[0] != ProviderPayment {
				t.Fatalf("provider arg = %v, want %q", args[0], ProviderPayment)
			}
			return stubRow{scan: func(dest ...any) error {
				*dest[0].(*string) = "  sk_live_abc123\n"
				return nil
			}}
		},
	}
	store := NewStore(sql)

	key, err := store.PaymentAPIKey(context.Background())
	if err != nil {
		t.Fatalf("PaymentAPIKey returned error: %v", err)
	}
	if key != "sk_live_abc123" {
		t.Fatalf("key = %q", key)
	}
}

func TestSetPaymentAPIKeyRejectsEmpty(t *testing.T) {
	store := NewStore(&stubExecutor{})

	if err := store.SetPaymentAPIKey(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank key")
	}
}

func TestSetPaymentAPIKeyUpserts(t *testing.T) {
	var gotArgs []any
	sql := &stubExecutor{
		execFn: func(_ string, args ...any) (pgconn.CommandTag, error) {
			gotArgs = args
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}
	store := NewStore(sql)

	if err := store.SetPaymentAPIKey(context.Background(), " sk_live_abc123 "); err != nil {
		t.Fatalf("SetPaymentAPIKey returned error: %v", err)
	}
	if len(gotArgs) != 3 {
		t.Fatalf("args = %v, want provider, token, props", gotArgs)
	}
	if gotArgs[0] != ProviderPayment || gotArgs[1] != "sk_live_abc123" {
		t.Fatalf("args = %v", gotArgs)
	}
}
