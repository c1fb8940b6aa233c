package domain

import "time"

// WithdrawalStatus enumerates the payout lifecycle.
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalFailed     WithdrawalStatus = "failed"
)

// PixKeyType enumerates accepted PIX key formats for payouts.
type PixKeyType string

const (
	PixKeyCPF    PixKeyType = "cpf"
	PixKeyEmail  PixKeyType = "email"
	PixKeyPhone  PixKeyType = "phone"
	PixKeyRandom PixKeyType = "random"
)

// AffiliateAccount is the referral-program ledger for a user. Amounts are
// stored in cents to keep the arithmetic exact.
type AffiliateAccount struct {
	UserID           string
	ReferralCode     string
	AvailableCents   int64
	PendingCents     int64
	TotalEarnedCents int64
	UpdatedAt        time.Time
}

// Referral records a signup attributed to an affiliate.
type Referral struct {
	ID             string
	AffiliateID    string
	ReferredUserID string
	CommissionCents int64
	CreatedAt      time.Time
}

// Withdrawal is a payout request against the available balance.
type Withdrawal struct {
	ID            string
	UserID        string
	AmountCents   int64
	PixKey        string
	PixKeyType    PixKeyType
	Status        WithdrawalStatus
	RequestDate   time.Time
	CompletedDate *time.Time
	FailureReason string
}
