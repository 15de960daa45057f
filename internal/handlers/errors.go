package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/repositories"
)

// ErrorResponse is the JSON error body shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// respondRepoError maps the repository error taxonomy to HTTP statuses:
// validation 400, not-found 404, uniqueness/self-reference conflicts
// 409, everything else 500.
func respondRepoError(w http.ResponseWriter, err error) {
	switch {
	case repositories.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case repositories.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case repositories.IsConflict(err):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
