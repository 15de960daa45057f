package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loglit-app/loglit/internal/models"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, username string) (*models.UserDetails, error)
}

// NewProfileHandler returns an HTTP handler serving public profiles.
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserDetails
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{username} [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		details, err := svc.GetProfile(r.Context(), username)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		if details == nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, details)
	}
}
