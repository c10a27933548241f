package server

import (
	"net/http"
	"strings"

	"yatube/auth"
)

type authedHandler func(w http.ResponseWriter, r *http.Request, viewerID uint)

// requireAuth resolves the viewer from the Bearer token and rejects the
// request with 401 otherwise.
func (s *Server) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID, ok := s.viewerFromRequest(r)
		if !ok {
			sendError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r, viewerID)
	}
}

// viewerFromRequest parses an optional Bearer token. Anonymous requests are
// fine for read-only pages; they just get no viewer.
func (s *Server) viewerFromRequest(r *http.Request) (uint, bool) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	viewerID, err := s.tokens.Parse(parts[1], auth.PurposeSession)
	if err != nil {
		return 0, false
	}
	return viewerID, true
}
