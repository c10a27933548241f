package server

import (
	"errors"
	"net/http"

	"yatube/feeds"
	"yatube/monitoring"
	"yatube/storage"
)

func (s *Server) getFeed(w http.ResponseWriter, r *http.Request, viewerID uint) {
	params := getPageParams(r.URL.Query())

	response, err := s.feed.GetPage(r.Context(), viewerID, params)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load feed")
		return
	}
	sendJson(w, http.StatusOK, response)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := s.storageManager.GetUserByUsername(r.Context(), username)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load profile")
		return
	}

	params := getPageParams(r.URL.Query())
	posts, total, err := s.storageManager.AuthorPosts(
		r.Context(),
		user.ID,
		params.Size,
		(params.Page-1)*params.Size,
	)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load profile")
		return
	}

	following := false
	if viewerID, ok := s.viewerFromRequest(r); ok {
		following, err = s.storageManager.IsFollowing(r.Context(), viewerID, user.ID)
		if err != nil {
			sendError(w, http.StatusInternalServerError, "could not load profile")
			return
		}
	}

	sendJson(w, http.StatusOK, map[string]any{
		"username":  user.Username,
		"following": following,
		"page":      feeds.NewResponse(posts, params.Page, params.Size, total),
	})
}

// postFollow creates the edge viewer -> target. A duplicate follow is
// idempotent success; a self-follow is rejected without mutating state.
func (s *Server) postFollow(w http.ResponseWriter, r *http.Request, viewerID uint) {
	target, err := s.storageManager.GetUserByUsername(r.Context(), r.PathValue("username"))
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not follow user")
		return
	}

	err = s.storageManager.Follow(r.Context(), viewerID, target.ID)
	if errors.Is(err, storage.ErrSelfFollow) {
		monitoring.FollowOperations.WithLabelValues("follow", "rejected").Inc()
		sendError(w, http.StatusBadRequest, "users cannot follow themselves")
		return
	}
	if err != nil {
		monitoring.FollowOperations.WithLabelValues("follow", "error").Inc()
		sendError(w, http.StatusInternalServerError, "could not follow user")
		return
	}

	monitoring.FollowOperations.WithLabelValues("follow", "ok").Inc()
	sendJson(w, http.StatusOK, map[string]any{"following": true})
}

func (s *Server) postUnfollow(w http.ResponseWriter, r *http.Request, viewerID uint) {
	target, err := s.storageManager.GetUserByUsername(r.Context(), r.PathValue("username"))
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not unfollow user")
		return
	}

	if err := s.storageManager.Unfollow(r.Context(), viewerID, target.ID); err != nil {
		monitoring.FollowOperations.WithLabelValues("unfollow", "error").Inc()
		sendError(w, http.StatusInternalServerError, "could not unfollow user")
		return
	}

	monitoring.FollowOperations.WithLabelValues("unfollow", "ok").Inc()
	sendJson(w, http.StatusOK, map[string]any{"following": false})
}
