package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"yatube/feeds"
	"yatube/storage"
	"yatube/storage/models"
	"yatube/utils"
)

type postRequest struct {
	Text  string `json:"text"`
	Group string `json:"group"`
	Image string `json:"image"`
}

type commentRequest struct {
	Text string `json:"text"`
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request, viewerID uint) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		sendError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	groupID, ok := s.resolveGroup(w, r, req.Group)
	if !ok {
		return
	}

	post := models.Post{
		Text:     req.Text,
		AuthorID: viewerID,
		GroupID:  groupID,
		Image:    req.Image,
	}
	if err := s.storageManager.CreatePost(r.Context(), &post); err != nil {
		sendError(w, http.StatusInternalServerError, "could not create post")
		return
	}

	created, err := s.storageManager.GetPost(r.Context(), post.ID)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not create post")
		return
	}
	sendJson(w, http.StatusCreated, feeds.SerializePost(created))
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.loadPost(w, r)
	if !ok {
		return
	}
	sendJson(w, http.StatusOK, feeds.SerializePost(post))
}

// editPost changes text, group and image. Only the author may edit;
// authorship and creation time are immutable.
func (s *Server) editPost(w http.ResponseWriter, r *http.Request, viewerID uint) {
	post, ok := s.loadPost(w, r)
	if !ok {
		return
	}
	if post.AuthorID != viewerID {
		sendError(w, http.StatusForbidden, "only the author may edit a post")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		sendError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	groupID, ok := s.resolveGroup(w, r, req.Group)
	if !ok {
		return
	}

	if err := s.storageManager.UpdatePost(r.Context(), post.ID, req.Text, groupID, req.Image); err != nil {
		sendError(w, http.StatusInternalServerError, "could not update post")
		return
	}

	updated, err := s.storageManager.GetPost(r.Context(), post.ID)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not update post")
		return
	}
	sendJson(w, http.StatusOK, feeds.SerializePost(updated))
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request, viewerID uint) {
	post, ok := s.loadPost(w, r)
	if !ok {
		return
	}
	if post.AuthorID != viewerID {
		sendError(w, http.StatusForbidden, "only the author may delete a post")
		return
	}

	if err := s.storageManager.DeletePost(r.Context(), post.ID); err != nil {
		sendError(w, http.StatusInternalServerError, "could not delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getComments(w http.ResponseWriter, r *http.Request) {
	post, ok := s.loadPost(w, r)
	if !ok {
		return
	}

	comments, err := s.storageManager.PostComments(r.Context(), post.ID)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load comments")
		return
	}

	serialized := make([]map[string]any, len(comments))
	for i, comment := range comments {
		serialized[i] = map[string]any{
			"id":         comment.ID,
			"text":       comment.Text,
			"author":     comment.Author.Username,
			"created_at": comment.CreatedAt.UTC().Unix(),
		}
	}
	sendJson(w, http.StatusOK, map[string]any{"comments": serialized})
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request, viewerID uint) {
	post, ok := s.loadPost(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		sendError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	comment := models.Comment{
		Text:     req.Text,
		AuthorID: viewerID,
		PostID:   post.ID,
	}
	if err := s.storageManager.CreateComment(r.Context(), &comment); err != nil {
		sendError(w, http.StatusInternalServerError, "could not create comment")
		return
	}
	sendJson(w, http.StatusCreated, map[string]any{"id": comment.ID})
}

func (s *Server) loadPost(w http.ResponseWriter, r *http.Request) (models.Post, bool) {
	id := utils.IntFromString(r.PathValue("id"), 0)
	if id <= 0 {
		sendError(w, http.StatusNotFound, "post not found")
		return models.Post{}, false
	}

	post, err := s.storageManager.GetPost(r.Context(), uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusNotFound, "post not found")
		return models.Post{}, false
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load post")
		return models.Post{}, false
	}
	return post, true
}

// resolveGroup maps an optional group slug to its id, writing the error
// response itself when the slug is unknown.
func (s *Server) resolveGroup(w http.ResponseWriter, r *http.Request, slug string) (*uint, bool) {
	if slug == "" {
		return nil, true
	}
	group, err := s.storageManager.GetGroupBySlug(r.Context(), slug)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusNotFound, "group not found")
		return nil, false
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not resolve group")
		return nil, false
	}
	return &group.ID, true
}
