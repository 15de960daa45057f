package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// FriendLister defines the interface that the service must implement.
type FriendLister interface {
	Followers(ctx context.Context, username string) ([]string, error)
	Following(ctx context.Context, username string) ([]string, error)
}

// FollowersResponse lists the users following someone
// swagger:model FollowersResponse
type FollowersResponse struct {
	Followers []string `json:"followers"`
	Count     int      `json:"count"`
}

// FollowingResponse lists the users someone follows
// swagger:model FollowingResponse
type FollowingResponse struct {
	Following []string `json:"following"`
	Count     int      `json:"count"`
}

// NewFollowersHandler returns an HTTP handler listing a user's
// followers.
// @Summary List a user's followers
// @Tags friends
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.FollowersResponse
// @Router /users/{username}/followers [get]
func NewFollowersHandler(svc FriendLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		followers, err := svc.Followers(r.Context(), username)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		if followers == nil {
			followers = []string{}
		}
		writeJSON(w, http.StatusOK, FollowersResponse{Followers: followers, Count: len(followers)})
	}
}

// NewFollowingHandler returns an HTTP handler listing who a user
// follows.
// @Summary List who a user follows
// @Tags friends
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.FollowingResponse
// @Router /users/{username}/following [get]
func NewFollowingHandler(svc FriendLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		following, err := svc.Following(r.Context(), username)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		if following == nil {
			following = []string{}
		}
		writeJSON(w, http.StatusOK, FollowingResponse{Following: following, Count: len(following)})
	}
}
