package server

import (
	"errors"
	"net/http"

	"yatube/feeds"
	"yatube/monitoring"
	"yatube/storage"
	"yatube/utils"
)

// getHome serves the anonymous shared timeline. The cache sits in front of
// the query layer: on a hit no database work happens at all, and the bytes
// written are exactly the bytes cached. Only the default first page is
// cached; explicit page requests go straight to the store.
func (s *Server) getHome(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	cacheable := *getQueryItem(queryParams, "page") == "" && *getQueryItem(queryParams, "size") == ""

	if cacheable {
		if page, ok := s.pagesCache.GetHome(); ok {
			monitoring.PageCacheLookups.WithLabelValues("hit").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Write(page)
			return
		}
		monitoring.PageCacheLookups.WithLabelValues("miss").Inc()
	}

	params := getPageParams(queryParams)
	posts, total, err := s.storageManager.LatestPosts(
		r.Context(),
		params.Size,
		(params.Page-1)*params.Size,
	)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load timeline")
		return
	}

	page := utils.ToJson(feeds.NewResponse(posts, params.Page, params.Size, total))
	if cacheable {
		s.pagesCache.SetHome(page)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(page)
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	params := getPageParams(r.URL.Query())

	group, posts, total, err := s.storageManager.GroupPosts(
		r.Context(),
		slug,
		params.Size,
		(params.Page-1)*params.Size,
	)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusNotFound, "group not found")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not load group")
		return
	}

	sendJson(w, http.StatusOK, map[string]any{
		"title":       group.Title,
		"slug":        group.Slug,
		"description": group.Description,
		"page":        feeds.NewResponse(posts, params.Page, params.Size, total),
	})
}
