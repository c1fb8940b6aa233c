package repo

import (
	"context"

	"github.com/google/uuid"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/sqlinline"
)

// AffiliateRepositoryPG implements domain.AffiliateRepository backed by PostgreSQL.
type AffiliateRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAffiliateRepository creates a new AffiliateRepositoryPG.
func NewAffiliateRepository(sql infra.SQLExecutor) *AffiliateRepositoryPG {
	return &AffiliateRepositoryPG{sql: sql}
}

// GetAccount fetches the user's ledger.
func (r *AffiliateRepositoryPG) GetAccount(ctx context.Context, userID string) (*domain.AffiliateAccount, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectAffiliateAccount, userID)
	var a domain.AffiliateAccount
	err := row.Scan(&a.UserID, &a.ReferralCode, &a.AvailableCents, &a.PendingCents, &a.TotalEarnedCents, &a.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListReferrals returns the newest referrals first, up to limit.
func (r *AffiliateRepositoryPG) ListReferrals(ctx context.Context, userID string, limit int) ([]domain.Referral, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectReferrals, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		if err := rows.Scan(&ref.ID, &ref.AffiliateID, &ref.ReferredUserID, &ref.CommissionCents, &ref.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// RequestWithdrawal debits the available balance and records a pending
// payout in one statement. A short balance surfaces as ErrInsufficientBalance.
func (r *AffiliateRepositoryPG) RequestWithdrawal(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertWithdrawal,
		w.ID,
		w.UserID,
		w.AmountCents,
		w.PixKey,
		w.PixKeyType,
	)
	if err := row.Scan(&w.RequestDate); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrInsufficientBalance
		}
		return nil, err
	}
	w.Status = domain.WithdrawalPending
	return w, nil
}

// ListWithdrawals returns every payout request, newest first.
func (r *AffiliateRepositoryPG) ListWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectWithdrawalsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.UserID, &w.AmountCents, &w.PixKey, &w.PixKeyType, &w.Status, &w.RequestDate, &w.CompletedDate, &w.FailureReason); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
