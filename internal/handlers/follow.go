package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loglit-app/loglit/internal/middlewares"
)

// Follower defines the interface that the service must implement.
type Follower interface {
	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
}

// FollowRequest represents the JSON body for a follow action
// swagger:model FollowRequest
type FollowRequest struct {
	// Username to follow
	// required: true
	FriendUsername string `json:"friend_username"`
}

// FollowResponse represents a successful follow/unfollow
// swagger:model FollowResponse
type FollowResponse struct {
	Friend string `json:"friend"`
}

// NewFollowHandler returns an HTTP handler that makes the authenticated
// user follow another user.
// @Summary Follow another user
// @Tags friends
// @Accept json
// @Produce json
// @Param followRequest body handlers.FollowRequest true "Follow request"
// @Success 201 {object} handlers.FollowResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing username"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Already following or self-follow"
// @Security BearerAuth
// @Router /user/friends [post]
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		var req FollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.Follow(r.Context(), username, req.FriendUsername); err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, FollowResponse{Friend: req.FriendUsername})
	}
}

// NewUnfollowHandler returns an HTTP handler that makes the
// authenticated user unfollow another user.
// @Summary Unfollow a user
// @Tags friends
// @Produce json
// @Param username path string true "Username to unfollow"
// @Success 200 {object} handlers.FollowResponse
// @Failure 404 {object} handlers.ErrorResponse "Friendship not found"
// @Security BearerAuth
// @Router /user/friends/{username} [delete]
func NewUnfollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())
		friend := chi.URLParam(r, "username")

		if err := svc.Unfollow(r.Context(), username, friend); err != nil {
			respondRepoError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, FollowResponse{Friend: friend})
	}
}
