package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/services"
)

// Searcher defines the interface that the service must implement.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.BookResult, error)
}

// SearchResponse wraps book search results
// swagger:model SearchResponse
type SearchResponse struct {
	Results []models.BookResult `json:"results"`
}

// NewSearchHandler returns an HTTP handler that searches the external
// book catalog.
// @Summary Search for books
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} handlers.SearchResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing query"
// @Router /search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		results, err := svc.Search(r.Context(), query)
		if err != nil {
			if errors.Is(err, services.ErrEmptyQuery) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondRepoError(w, err)
			return
		}
		if results == nil {
			results = []models.BookResult{}
		}
		writeJSON(w, http.StatusOK, SearchResponse{Results: results})
	}
}
