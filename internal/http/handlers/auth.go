package handlers

import (
	"net/http"

	"caltrack/internal/middleware"
)

type sessionRequest struct {
	ProfileID string `json:"profile_id" validate:"required,uuid4"`
}

// AuthSession exchanges a profile id for a bearer token. There is no
// password flow; identity is established at onboarding and the token only
// scopes subsequent requests to that profile.
func (a *App) AuthSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "profile_id must be a valid uuid")
		return
	}

	profile, err := a.Profiles.GetByID(r.Context(), req.ProfileID)
	if err != nil {
		a.failure(w, r, err)
		return
	}

	token, err := middleware.SignToken(a.JWTSecret, profile.ID, a.locale(r), sessionTTL)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_in": int(sessionTTL.Seconds()),
	})
}
