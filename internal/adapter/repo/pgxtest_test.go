package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// simpleRow adapts a scan function into a pgx.Row. A nil scanner behaves
// like an empty result.
type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// sliceRows serves pre-baked rows through the pgx.Rows interface. Each row
// is a scan function filling the destinations in column order.
type sliceRows struct {
	rows []func(dest ...any) error
	idx  int
	err  error
}

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return errors.New("scan called out of sequence")
	}
	return r.rows[r.idx-1](dest...)
}

func (r *sliceRows) Err() error { return r.err }

func (r *sliceRows) Close() {}

func (r *sliceRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *sliceRows) Conn() *pgx.Conn { return nil }

func (r *sliceRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *sliceRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (r *sliceRows) RawValues() [][]byte { return nil }

// fakeExecutor routes queries to canned behavior keyed by nothing fancier
// than the order of calls; tests configure the three entry points directly.
type fakeExecutor struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(query string, args ...any) pgx.Row
	queryFn    func(query string, args ...any) (pgx.Rows, error)
}

func (f *fakeExecutor) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if f.execFn == nil {
		return pgconn.CommandTag{}, errors.New("exec not configured")
	}
	return f.execFn(query, args...)
}

func (f *fakeExecutor) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	if f.queryRowFn == nil {
		return simpleRow{}
	}
	return f.queryRowFn(query, args...)
}

func (f *fakeExecutor) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	if f.queryFn == nil {
		return nil, errors.New("query not configured")
	}
	return f.queryFn(query, args...)
}
