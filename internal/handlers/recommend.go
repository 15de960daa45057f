package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/loglit-app/loglit/internal/middlewares"
	"github.com/loglit-app/loglit/internal/services"
)

// Recommender defines the interface that the service must implement.
type Recommender interface {
	Recommend(ctx context.Context, username string, titles []string) (string, error)
}

// RecommendRequest represents the JSON body for a recommendation
// swagger:model RecommendRequest
type RecommendRequest struct {
	// Titles to base the recommendation on; empty means use the
	// caller's library
	Titles []string `json:"titles"`
}

// RecommendResponse carries a single suggested title
// swagger:model RecommendResponse
type RecommendResponse struct {
	Recommendation string `json:"recommendation"`
}

// NewRecommendHandler returns an HTTP handler that suggests the next
// book for the authenticated user.
// @Summary Get a book recommendation
// @Tags books
// @Accept json
// @Produce json
// @Param recommendRequest body handlers.RecommendRequest false "Seed titles"
// @Success 200 {object} handlers.RecommendResponse
// @Failure 400 {object} handlers.ErrorResponse "No titles available"
// @Security BearerAuth
// @Router /recommendation [post]
func NewRecommendHandler(svc Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		var req RecommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		recommendation, err := svc.Recommend(r.Context(), username, req.Titles)
		if err != nil {
			if errors.Is(err, services.ErrNoTitles) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RecommendResponse{Recommendation: recommendation})
	}
}
