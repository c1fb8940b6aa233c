package handlers

import (
	"fmt"
	"net/http"

	"caltrack/internal/domain"
)

// monthlyPriceCents is the flat subscription price charged on activation.
const monthlyPriceCents int64 = 2990

// SubscriptionStatus reports the billing state together with the localized
// trial countdown. An exhausted trial is reported as expired even before
// any write flips the stored status.
func (a *App) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	profile, err := a.Profiles.GetByID(r.Context(), a.currentUserID(r))
	if err != nil {
		a.failure(w, r, err)
		return
	}

	now := a.now()
	status := profile.Subscription
	trialActive := false
	if profile.OnTrial() {
		trialActive = a.Trial.Active(profile.TrialStartDate, now)
		if !trialActive {
			status = domain.SubscriptionExpired
		}
	}

	resp := map[string]any{
		"status":       string(status),
		"trial_active": trialActive,
	}
	if profile.OnTrial() {
		remaining := a.Trial.RemainingDays(profile.TrialStartDate, now)
		if remaining < 0 {
			remaining = 0
		}
		resp["trial_days_remaining"] = remaining
		resp["trial_message"] = a.Trial.Remaining(profile.TrialStartDate, now, a.locale(r))
	}
	a.json(w, http.StatusOK, resp)
}

// SubscriptionActivate charges the subscription and flips the account to
// active. A declined charge changes nothing.
func (a *App) SubscriptionActivate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	profile, err := a.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	if profile.Subscription == domain.SubscriptionActive {
		a.error(w, http.StatusConflict, "already_active", "subscription is already active")
		return
	}

	if err := a.Payments.ChargeSubscription(r.Context(), userID, monthlyPriceCents); err != nil {
		a.failure(w, r, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err))
		return
	}
	if err := a.Profiles.SetSubscription(r.Context(), userID, domain.SubscriptionActive); err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"status":        string(domain.SubscriptionActive),
		"charged_cents": monthlyPriceCents,
	})
}
