package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/loglit-app/loglit/internal/middlewares"
)

// Renamer defines the interface that the service must implement.
type Renamer interface {
	Rename(ctx context.Context, username, newUsername string) (string, error)
}

// RenameRequest represents the JSON body for a username change
// swagger:model RenameRequest
type RenameRequest struct {
	// New username
	// required: true
	NewUsername string `json:"new_username"`
}

// RenameResponse represents a successful username change
// swagger:model RenameResponse
type RenameResponse struct {
	Username string `json:"username"`
}

// NewRenameHandler returns an HTTP handler that changes the
// authenticated user's username. Friendships and library entries follow
// the new name automatically.
// @Summary Change the authenticated user's username
// @Tags users
// @Accept json
// @Produce json
// @Param renameRequest body handlers.RenameRequest true "Username change request"
// @Success 200 {object} handlers.RenameResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing new username"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Security BearerAuth
// @Router /user/username [put]
func NewRenameHandler(svc Renamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		var req RenameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		renamed, err := svc.Rename(r.Context(), username, req.NewUsername)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RenameResponse{Username: renamed})
	}
}
