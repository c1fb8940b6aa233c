package handlers

import (
	"net/http"
	"time"

	"caltrack/internal/domain"
)

const referralListLimit = 50

type withdrawalRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	PixKey      string `json:"pix_key" validate:"required,min=1,max=140"`
	PixKeyType  string `json:"pix_key_type" validate:"required,oneof=cpf email phone random"`
}

type withdrawalResponse struct {
	ID            string `json:"id"`
	AmountCents   int64  `json:"amount_cents"`
	PixKey        string `json:"pix_key"`
	PixKeyType    string `json:"pix_key_type"`
	Status        string `json:"status"`
	RequestDate   string `json:"request_date"`
	CompletedDate string `json:"completed_date,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

func toWithdrawalResponse(wd *domain.Withdrawal) withdrawalResponse {
	resp := withdrawalResponse{
		ID:            wd.ID,
		AmountCents:   wd.AmountCents,
		PixKey:        wd.PixKey,
		PixKeyType:    string(wd.PixKeyType),
		Status:        string(wd.Status),
		RequestDate:   wd.RequestDate.Format(time.RFC3339),
		FailureReason: wd.FailureReason,
	}
	if wd.CompletedDate != nil {
		resp.CompletedDate = wd.CompletedDate.Format(time.RFC3339)
	}
	return resp
}

// AffiliateAccount renders the referral ledger: balances plus the most
// recent attributed signups.
func (a *App) AffiliateAccount(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	account, err := a.Affiliate.GetAccount(r.Context(), userID)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	referrals, err := a.Affiliate.ListReferrals(r.Context(), userID, referralListLimit)
	if err != nil {
		a.failure(w, r, err)
		return
	}

	items := make([]map[string]any, 0, len(referrals))
	for _, ref := range referrals {
		items = append(items, map[string]any{
			"id":               ref.ID,
			"referred_user_id": ref.ReferredUserID,
			"commission_cents": ref.CommissionCents,
			"created_at":       ref.CreatedAt.Format(time.RFC3339),
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"referral_code":      account.ReferralCode,
		"available_cents":    account.AvailableCents,
		"pending_cents":      account.PendingCents,
		"total_earned_cents": account.TotalEarnedCents,
		"referrals":          items,
	})
}

// WithdrawalsCreate inserts a pending payout and debits the available
// balance in the same statement, so an insufficient balance inserts nothing.
func (a *App) WithdrawalsCreate(w http.ResponseWriter, r *http.Request) {
	var req withdrawalRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive and the pix key valid")
		return
	}

	wd := &domain.Withdrawal{
		UserID:      a.currentUserID(r),
		AmountCents: req.AmountCents,
		PixKey:      req.PixKey,
		PixKeyType:  domain.PixKeyType(req.PixKeyType),
		RequestDate: a.now(),
	}
	saved, err := a.Affiliate.RequestWithdrawal(r.Context(), wd)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, toWithdrawalResponse(saved))
}

// WithdrawalsList returns all payout requests, newest first.
func (a *App) WithdrawalsList(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := a.Affiliate.ListWithdrawals(r.Context(), a.currentUserID(r))
	if err != nil {
		a.failure(w, r, err)
		return
	}
	items := make([]withdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		items = append(items, toWithdrawalResponse(&withdrawals[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
