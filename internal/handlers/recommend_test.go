package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/loglit-app/loglit/internal/services"
)

func TestRecommendHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecommender(ctrl)

	t.Run("with seed titles", func(t *testing.T) {
		mockSvc.EXPECT().
			Recommend(gomock.Any(), "alice", []string{"Dune"}).
			Return("Hyperion by Dan Simmons", nil)

		bodyBytes, _ := json.Marshal(RecommendRequest{Titles: []string{"Dune"}})
		req := authedRequest(http.MethodPost, "/api/recommendation", bodyBytes, "alice")
		w := httptest.NewRecorder()

		NewRecommendHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got RecommendResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Hyperion by Dan Simmons", got.Recommendation)
	})

	t.Run("empty body falls back to library", func(t *testing.T) {
		mockSvc.EXPECT().
			Recommend(gomock.Any(), "alice", gomock.Nil()).
			Return("Hyperion by Dan Simmons", nil)

		req := authedRequest(http.MethodPost, "/api/recommendation", nil, "alice")
		w := httptest.NewRecorder()

		NewRecommendHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := authedRequest(http.MethodPost, "/api/recommendation", []byte("{invalid json}"), "alice")
		w := httptest.NewRecorder()

		NewRecommendHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no titles available", func(t *testing.T) {
		mockSvc.EXPECT().
			Recommend(gomock.Any(), "alice", gomock.Nil()).
			Return("", services.ErrNoTitles)

		req := authedRequest(http.MethodPost, "/api/recommendation", nil, "alice")
		w := httptest.NewRecorder()

		NewRecommendHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
