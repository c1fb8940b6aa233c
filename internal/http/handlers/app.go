package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/middleware"
	"caltrack/internal/providers/activity"
	"caltrack/internal/providers/device"
	"caltrack/internal/providers/payment"
	"caltrack/internal/providers/vision"
	"caltrack/internal/storage"
	"caltrack/internal/subscription"
	"caltrack/internal/tracker"
)

// sessionTTL bounds how long a minted session token stays valid.
const sessionTTL = 24 * time.Hour

var validate = validator.New(validator.WithRequiredStructEnabled())

// App is the handler container. Fields are exported so main and tests can
// assemble it directly; nil optional fields fall back to safe defaults.
type App struct {
	SQL    infra.SQLExecutor
	Logger zerolog.Logger

	Profiles  domain.ProfileRepository
	Meals     domain.MealRepository
	Progress  domain.ProgressRepository
	Weights   domain.WeightRepository
	Runs      domain.RunningRepository
	Affiliate domain.AffiliateRepository

	Tracker     *tracker.Service
	Activity    *activity.Session
	Vision      vision.Analyzer
	Payments    payment.Processor
	Devices     device.Connector
	DeviceState *storage.DeviceStateStore

	Trial     subscription.Window
	JWTSecret string

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) locale(r *http.Request) string {
	return middleware.LocaleFromContext(r.Context())
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}

// failure classifies an error from a lower layer into a stable user-facing
// message and logs the original once. No retries happen here; the caller's
// action is expected to be safely re-invocable.
func (a *App) failure(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := Classify(err)
	evt := a.Logger.Error()
	if status < http.StatusInternalServerError {
		evt = a.Logger.Warn()
	}
	evt.Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Msg("request failed")
	a.error(w, status, code, message)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
