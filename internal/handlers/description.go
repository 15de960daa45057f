package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/loglit-app/loglit/internal/middlewares"
)

// DescriptionUpdater defines the interface that the service must implement.
type DescriptionUpdater interface {
	UpdateDescription(ctx context.Context, username string, description *string) error
}

// DescriptionRequest represents the JSON body for a description update
// swagger:model DescriptionRequest
type DescriptionRequest struct {
	// Profile description; null clears it
	Description *string `json:"description"`
}

// NewDescriptionHandler returns an HTTP handler that updates the
// authenticated user's profile description.
// @Summary Update the authenticated user's description
// @Tags users
// @Accept json
// @Produce json
// @Param descriptionRequest body handlers.DescriptionRequest true "Description update request"
// @Success 200 {object} handlers.DescriptionRequest
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/description [put]
func NewDescriptionHandler(svc DescriptionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		var req DescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.UpdateDescription(r.Context(), username, req.Description); err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}
