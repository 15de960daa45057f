package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestFollowersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFriendLister(ctrl)

	router := chi.NewRouter()
	router.Get("/api/users/{username}/followers", NewFollowersHandler(mockSvc))

	t.Run("with followers", func(t *testing.T) {
		mockSvc.EXPECT().
			Followers(gomock.Any(), "alice").
			Return([]string{"bob", "carol"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/alice/followers", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got FollowersResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, []string{"bob", "carol"}, got.Followers)
		assert.Equal(t, 2, got.Count)
	})

	t.Run("no followers is an empty list", func(t *testing.T) {
		mockSvc.EXPECT().
			Followers(gomock.Any(), "alice").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/alice/followers", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"followers":[],"count":0}`, w.Body.String())
	})
}

func TestFollowingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFriendLister(ctrl)

	router := chi.NewRouter()
	router.Get("/api/users/{username}/following", NewFollowingHandler(mockSvc))

	t.Run("with following", func(t *testing.T) {
		mockSvc.EXPECT().
			Following(gomock.Any(), "alice").
			Return([]string{"bob"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/alice/following", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got FollowingResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, []string{"bob"}, got.Following)
		assert.Equal(t, 1, got.Count)
	})

	t.Run("none is an empty list", func(t *testing.T) {
		mockSvc.EXPECT().
			Following(gomock.Any(), "alice").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/alice/following", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"following":[],"count":0}`, w.Body.String())
	})
}
