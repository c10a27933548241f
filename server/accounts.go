package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"yatube/auth"
	"yatube/storage"
	"yatube/storage/models"
	"yatube/tasks"
	"yatube/utils"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// signup creates an inactive account and mails the activation link. The
// account stays unusable until activated; the cleaner removes it if the link
// is never visited.
func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || len(req.Password) < 6 {
		sendError(w, http.StatusBadRequest, "username, email and a password of at least 6 characters are required")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		IsActive:     false,
	}
	err = s.storageManager.CreateUser(r.Context(), &user)
	if errors.Is(err, storage.ErrConflict) {
		sendError(w, http.StatusConflict, "username or email already taken")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	token, err := s.tokens.IssueActivation(user.ID)
	if err != nil {
		log.Errorf("Error issuing activation token for %s: %v", user.Username, err)
	} else {
		s.mailer.Enqueue(tasks.Email{
			To:      user.Email,
			Subject: "Activate your Yatube account",
			Body: fmt.Sprintf(
				"Hi %s,\n\nfollow this link to activate your account:\n%s/activate?token=%s\n",
				user.Username,
				utils.Env("SITE_URL", "http://localhost:3333"),
				token,
			),
		})
	}

	sendJson(w, http.StatusCreated, map[string]any{
		"message": "please confirm your email address to complete the registration",
	})
}

func (s *Server) activate(w http.ResponseWriter, r *http.Request) {
	token := *getQueryItem(r.URL.Query(), "token")

	userID, err := s.tokens.Parse(token, auth.PurposeActivation)
	if err != nil {
		sendError(w, http.StatusBadRequest, "activation link is invalid")
		return
	}

	if _, err := s.storageManager.GetUser(r.Context(), userID); errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusBadRequest, "activation link is invalid")
		return
	}
	if err := s.storageManager.ActivateUser(r.Context(), userID); err != nil {
		sendError(w, http.StatusInternalServerError, "could not activate account")
		return
	}
	sendJson(w, http.StatusOK, map[string]any{"message": "account activated"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.storageManager.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not log in")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		sendError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if !user.IsActive {
		sendError(w, http.StatusForbidden, "account is not activated")
		return
	}

	token, err := s.tokens.IssueSession(user.ID)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "could not log in")
		return
	}
	sendJson(w, http.StatusOK, map[string]any{"token": token})
}

func (s *Server) postContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Body) == "" {
		sendError(w, http.StatusBadRequest, "name, email and body are required")
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.storageManager.CreateContact(r.Context(), &contact); err != nil {
		sendError(w, http.StatusInternalServerError, "could not save message")
		return
	}
	sendJson(w, http.StatusCreated, map[string]any{"message": "thanks for reaching out"})
}
