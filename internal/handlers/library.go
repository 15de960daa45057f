package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/loglit-app/loglit/internal/middlewares"
	"github.com/loglit-app/loglit/internal/models"
)

// BookLogger defines the interface that the service must implement.
type BookLogger interface {
	Log(ctx context.Context, username, bookID string, rating *int, review, status *string, addedAt *time.Time) (*models.LibraryEntry, error)
	Remove(ctx context.Context, username, bookID string) error
	List(ctx context.Context, username string) ([]models.LibraryEntry, error)
}

// LibraryAddRequest represents the JSON body for logging a book
// swagger:model LibraryAddRequest
type LibraryAddRequest struct {
	// External book id
	// required: true
	BookID string `json:"book_id"`
	// Rating from 1 to 5
	Rating *int `json:"rating"`
	// Review text
	Review *string `json:"review"`
	// Reading status label (client convention: reading/completed/wishlist)
	Status *string `json:"status"`
	// First-added timestamp; omitted means now
	AddedAt *time.Time `json:"added_at"`
}

// DeleteBookResponse reports a removed library entry
// swagger:model DeleteBookResponse
type DeleteBookResponse struct {
	Username string `json:"username"`
	Deleted  bool   `json:"deleted"`
}

// NewLibraryAddHandler returns an HTTP handler that logs a book in the
// authenticated user's library. Logging the same book twice updates the
// existing entry.
// @Summary Add or update a book in the library
// @Tags books
// @Accept json
// @Produce json
// @Param libraryAddRequest body handlers.LibraryAddRequest true "Book to log"
// @Success 200 {object} models.LibraryEntry
// @Failure 400 {object} handlers.ErrorResponse "Missing book id"
// @Security BearerAuth
// @Router /books [post]
func NewLibraryAddHandler(svc BookLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		var req LibraryAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entry, err := svc.Log(r.Context(), username, req.BookID, req.Rating, req.Review, req.Status, req.AddedAt)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

// NewLibraryRemoveHandler returns an HTTP handler that deletes a book
// from the authenticated user's library.
// @Summary Remove a book from the library
// @Tags books
// @Produce json
// @Param bookID path string true "External book id"
// @Success 200 {object} handlers.DeleteBookResponse
// @Failure 404 {object} handlers.ErrorResponse "Library entry not found"
// @Security BearerAuth
// @Router /books/{bookID} [delete]
func NewLibraryRemoveHandler(svc BookLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())
		bookID := chi.URLParam(r, "bookID")

		if err := svc.Remove(r.Context(), username, bookID); err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DeleteBookResponse{Username: username, Deleted: true})
	}
}

// NewLibraryListHandler returns an HTTP handler listing a user's
// library.
// @Summary List a user's logged books
// @Tags books
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.LibraryEntry
// @Router /users/{username}/books [get]
func NewLibraryListHandler(svc BookLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		entries, err := svc.List(r.Context(), username)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		if entries == nil {
			entries = []models.LibraryEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
