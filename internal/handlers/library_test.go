package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/repositories"
)

func TestLibraryAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookLogger(ctrl)

	t.Run("success", func(t *testing.T) {
		rating := 4
		entry := &models.LibraryEntry{Username: "alice", BookID: "vol-1", Rating: &rating}
		mockSvc.EXPECT().
			Log(gomock.Any(), "alice", "vol-1", &rating, gomock.Nil(), gomock.Nil(), gomock.Nil()).
			Return(entry, nil)

		bodyBytes, _ := json.Marshal(LibraryAddRequest{BookID: "vol-1", Rating: &rating})
		req := authedRequest(http.MethodPost, "/api/books", bodyBytes, "alice")
		w := httptest.NewRecorder()

		NewLibraryAddHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.LibraryEntry
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "vol-1", got.BookID)
		assert.Equal(t, 4, *got.Rating)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := authedRequest(http.MethodPost, "/api/books", []byte("{invalid json}"), "alice")
		w := httptest.NewRecorder()

		NewLibraryAddHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing book id", func(t *testing.T) {
		mockSvc.EXPECT().
			Log(gomock.Any(), "alice", "", gomock.Nil(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
			Return(nil, &repositories.Error{Kind: repositories.KindValidation, Msg: "bookID must be a non-empty string"})

		req := authedRequest(http.MethodPost, "/api/books", []byte(`{}`), "alice")
		w := httptest.NewRecorder()

		NewLibraryAddHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLibraryRemoveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookLogger(ctrl)

	router := chi.NewRouter()
	router.Delete("/api/books/{bookID}", NewLibraryRemoveHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Remove(gomock.Any(), "alice", "vol-1").
			Return(nil)

		req := authedRequest(http.MethodDelete, "/api/books/vol-1", nil, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got DeleteBookResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "alice", got.Username)
		assert.True(t, got.Deleted)
	})

	t.Run("entry not found", func(t *testing.T) {
		mockSvc.EXPECT().
			Remove(gomock.Any(), "alice", "vol-1").
			Return(repositories.ErrNotFound)

		req := authedRequest(http.MethodDelete, "/api/books/vol-1", nil, "alice")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLibraryListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookLogger(ctrl)

	router := chi.NewRouter()
	router.Get("/api/users/{username}/books", NewLibraryListHandler(mockSvc))

	t.Run("with entries", func(t *testing.T) {
		entries := []models.LibraryEntry{
			{Username: "alice", BookID: "vol-1"},
			{Username: "alice", BookID: "vol-2"},
		}
		mockSvc.EXPECT().
			List(gomock.Any(), "alice").
			Return(entries, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/alice/books", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []models.LibraryEntry
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("empty library is an empty array", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any(), "alice").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/alice/books", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
