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
)

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountDeleter(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			DeleteAccount(gomock.Any(), "alice").
			Return(&models.DeletedUser{Username: "alice", Deleted: true}, nil)

		req := authedRequest(http.MethodDelete, "/api/user", nil, "alice")
		w := httptest.NewRecorder()

		NewDeleteAccountHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.DeletedUser
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "alice", got.Username)
		assert.True(t, got.Deleted)
	})

	t.Run("already gone", func(t *testing.T) {
		mockSvc.EXPECT().
			DeleteAccount(gomock.Any(), "alice").
			Return(&models.DeletedUser{Username: "alice", Deleted: false}, nil)

		req := authedRequest(http.MethodDelete, "/api/user", nil, "alice")
		w := httptest.NewRecorder()

		NewDeleteAccountHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.DeletedUser
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.False(t, got.Deleted)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			DeleteAccount(gomock.Any(), "alice").
			Return(nil, errors.New("database error"))

		req := authedRequest(http.MethodDelete, "/api/user", nil, "alice")
		w := httptest.NewRecorder()

		NewDeleteAccountHandler(mockSvc)(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
