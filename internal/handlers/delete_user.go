package handlers

import (
	"context"
	"net/http"

	"github.com/loglit-app/loglit/internal/middlewares"
	"github.com/loglit-app/loglit/internal/models"
)

// AccountDeleter defines the interface that the service must implement.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, username string) (*models.DeletedUser, error)
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the
// authenticated user's account, including their friendships and
// library.
// @Summary Delete the authenticated user's account
// @Tags users
// @Produce json
// @Success 200 {object} models.DeletedUser
// @Security BearerAuth
// @Router /user [delete]
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		deleted, err := svc.DeleteAccount(r.Context(), username)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deleted)
	}
}
