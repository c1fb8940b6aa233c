package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"caltrack/internal/http/handlers"
	"caltrack/internal/infra"
	"caltrack/internal/middleware"
)

// NewRouter assembles the versioned API surface. Everything except the
// health check and onboarding sits behind the bearer-token guard.
func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(cfg.DefaultLocale, lookup),
	)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Locale", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Post("/auth/session", app.AuthSession)
		r.Post("/profiles", app.ProfilesCreate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))

			r.Get("/profiles/me", app.ProfilesMe)
			r.Patch("/profiles/me", app.ProfilesUpdate)

			r.Post("/meals", app.MealsCreate)
			r.Get("/meals", app.MealsList)
			r.Delete("/meals/{id}", app.MealsDelete)

			r.Get("/progress/daily", app.ProgressDaily)
			r.Get("/progress/history", app.ProgressHistory)
			r.Get("/stats", app.Stats)

			r.Post("/weight", app.WeightUpsert)
			r.Get("/weight", app.WeightHistory)

			r.Post("/runs", app.RunsCreate)
			r.Get("/runs", app.RunsList)
			r.Get("/runs/stats", app.RunsStats)
			r.Route("/runs/tracker", func(r chi.Router) {
				r.Post("/start", app.TrackerStart)
				r.Post("/pause", app.TrackerPause)
				r.Post("/resume", app.TrackerResume)
				r.Post("/stop", app.TrackerStop)
				r.Get("/", app.TrackerStatus)
			})

			r.Get("/subscription", app.SubscriptionStatus)
			r.Post("/subscription/activate", app.SubscriptionActivate)

			r.Get("/affiliate", app.AffiliateAccount)
			r.Post("/affiliate/withdrawals", app.WithdrawalsCreate)
			r.Get("/affiliate/withdrawals", app.WithdrawalsList)

			r.Route("/devices/smartwatch", func(r chi.Router) {
				r.Post("/connect", app.SmartwatchConnect)
				r.Delete("/disconnect", app.SmartwatchDisconnect)
				r.Post("/sync", app.SmartwatchSync)
				r.Get("/status", app.SmartwatchStatus)
			})

			r.Get("/export", app.Export)
		})
	})

	return r
}
