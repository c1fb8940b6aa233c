package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"caltrack/internal/domain"
	"caltrack/internal/middleware"
)

var errFakeNotImplemented = errors.New("not implemented in fake")

type fakeProfiles struct {
	createFn  func(context.Context, *domain.UserProfile) (*domain.UserProfile, error)
	getByIDFn func(context.Context, string) (*domain.UserProfile, error)
	updateFn  func(context.Context, *domain.UserProfile) (*domain.UserProfile, error)
	setSubFn  func(context.Context, string, domain.SubscriptionStatus) error
}

func (f *fakeProfiles) Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return p, nil
}

func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfiles) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return p, nil
}

func (f *fakeProfiles) SetSubscription(ctx context.Context, id string, status domain.SubscriptionStatus) error {
	if f.setSubFn != nil {
		return f.setSubFn(ctx, id, status)
	}
	return nil
}

type fakeMeals struct {
	createLoggedFn func(context.Context, *domain.Meal, int) (*domain.Meal, error)
	listByDateFn   func(context.Context, string, time.Time) ([]domain.Meal, error)
	deleteFn       func(context.Context, string, string) error
	countFn        func(context.Context, string) (int, error)
}

func (f *fakeMeals) CreateLogged(ctx context.Context, meal *domain.Meal, goal int) (*domain.Meal, error) {
	if f.createLoggedFn != nil {
		return f.createLoggedFn(ctx, meal, goal)
	}
	return meal, nil
}

func (f *fakeMeals) ListByDate(ctx context.Context, userID string, day time.Time) ([]domain.Meal, error) {
	if f.listByDateFn != nil {
		return f.listByDateFn(ctx, userID, day)
	}
	return nil, nil
}

func (f *fakeMeals) Delete(ctx context.Context, userID, mealID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, mealID)
	}
	return nil
}

func (f *fakeMeals) CountByUser(ctx context.Context, userID string) (int, error) {
	if f.countFn != nil {
		return f.countFn(ctx, userID)
	}
	return 0, nil
}

type fakeProgress struct {
	getByDateFn  func(context.Context, string, time.Time) (*domain.DailyProgress, error)
	listRecentFn func(context.Context, string, int) ([]domain.DailyProgress, error)
	listDatesFn  func(context.Context, string) ([]time.Time, error)
}

func (f *fakeProgress) GetByDate(ctx context.Context, userID string, day time.Time) (*domain.DailyProgress, error) {
	if f.getByDateFn != nil {
		return f.getByDateFn(ctx, userID, day)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProgress) ListRecent(ctx context.Context, userID string, limit int) ([]domain.DailyProgress, error) {
	if f.listRecentFn != nil {
		return f.listRecentFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeProgress) ListDatesDesc(ctx context.Context, userID string) ([]time.Time, error) {
	if f.listDatesFn != nil {
		return f.listDatesFn(ctx, userID)
	}
	return nil, nil
}

type fakeWeights struct {
	upsertFn    func(context.Context, *domain.WeightProgress) (*domain.WeightProgress, error)
	listSinceFn func(context.Context, string, time.Time) ([]domain.WeightProgress, error)
}

func (f *fakeWeights) Upsert(ctx context.Context, entry *domain.WeightProgress) (*domain.WeightProgress, error) {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, entry)
	}
	return entry, nil
}

func (f *fakeWeights) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.WeightProgress, error) {
	if f.listSinceFn != nil {
		return f.listSinceFn(ctx, userID, since)
	}
	return nil, nil
}

type fakeRuns struct {
	createFn func(context.Context, *domain.RunningActivity) (*domain.RunningActivity, error)
	listFn   func(context.Context, string, int) ([]domain.RunningActivity, error)
	statsFn  func(context.Context, string) (*domain.RunningStats, error)
}

func (f *fakeRuns) Create(ctx context.Context, run *domain.RunningActivity) (*domain.RunningActivity, error) {
	if f.createFn != nil {
		return f.createFn(ctx, run)
	}
	return run, nil
}

func (f *fakeRuns) ListByUser(ctx context.Context, userID string, limit int) ([]domain.RunningActivity, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeRuns) Stats(ctx context.Context, userID string) (*domain.RunningStats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx, userID)
	}
	return &domain.RunningStats{}, nil
}

type fakeAffiliate struct {
	getAccountFn        func(context.Context, string) (*domain.AffiliateAccount, error)
	listReferralsFn     func(context.Context, string, int) ([]domain.Referral, error)
	requestWithdrawalFn func(context.Context, *domain.Withdrawal) (*domain.Withdrawal, error)
	listWithdrawalsFn   func(context.Context, string) ([]domain.Withdrawal, error)
}

func (f *fakeAffiliate) GetAccount(ctx context.Context, userID string) (*domain.AffiliateAccount, error) {
	if f.getAccountFn != nil {
		return f.getAccountFn(ctx, userID)
	}
	return nil, errFakeNotImplemented
}

func (f *fakeAffiliate) ListReferrals(ctx context.Context, userID string, limit int) ([]domain.Referral, error) {
	if f.listReferralsFn != nil {
		return f.listReferralsFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeAffiliate) RequestWithdrawal(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
	if f.requestWithdrawalFn != nil {
		return f.requestWithdrawalFn(ctx, w)
	}
	return w, nil
}

func (f *fakeAffiliate) ListWithdrawals(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	if f.listWithdrawalsFn != nil {
		return f.listWithdrawalsFn(ctx, userID)
	}
	return nil, nil
}

// authedRequest builds a request whose context carries the given user id,
// as the auth middleware would have left it.
func authedRequest(method, target, body, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

// withChiParam injects a URL parameter as the chi router would.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
