package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/services"
)

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSearcher(ctrl)

	t.Run("success", func(t *testing.T) {
		results := []models.BookResult{{ID: "vol-1", Title: "Dune"}}
		mockSvc.EXPECT().
			Search(gomock.Any(), "dune").
			Return(results, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=dune", nil)
		w := httptest.NewRecorder()

		NewSearchHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got SearchResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, results, got.Results)
	})

	t.Run("empty query", func(t *testing.T) {
		mockSvc.EXPECT().
			Search(gomock.Any(), "").
			Return(nil, services.ErrEmptyQuery)

		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		w := httptest.NewRecorder()

		NewSearchHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		mockSvc.EXPECT().
			Search(gomock.Any(), "zzz").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=zzz", nil)
		w := httptest.NewRecorder()

		NewSearchHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"results":[]}`, w.Body.String())
	})

	t.Run("provider error", func(t *testing.T) {
		mockSvc.EXPECT().
			Search(gomock.Any(), "dune").
			Return(nil, errors.New("upstream 500"))

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=dune", nil)
		w := httptest.NewRecorder()

		NewSearchHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
