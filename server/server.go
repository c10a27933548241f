package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yatube/auth"
	"yatube/feeds"
	"yatube/monitoring"
	"yatube/storage"
	"yatube/tasks"
	"yatube/utils"
)

// PageCache is the injected presentation cache for the anonymous home page.
type PageCache interface {
	GetHome() ([]byte, bool)
	SetHome(page []byte)
	ClearHome() error
}

type Server struct {
	storageManager *storage.Manager
	pagesCache     PageCache
	feed           *feeds.Feed
	tokens         *auth.TokenIssuer
	mailer         *tasks.Mailer
}

func NewServer(
	storageManager *storage.Manager,
	pagesCache PageCache,
	tokens *auth.TokenIssuer,
	mailer *tasks.Mailer,
) *Server {
	return &Server{
		storageManager: storageManager,
		pagesCache:     pagesCache,
		feed:           feeds.NewFeed(storageManager),
		tokens:         tokens,
		mailer:         mailer,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.getHome)
	mux.HandleFunc("GET /feed", s.requireAuth(s.getFeed))

	mux.HandleFunc("GET /profiles/{username}", s.getProfile)
	mux.HandleFunc("POST /profiles/{username}/follow", s.requireAuth(s.postFollow))
	mux.HandleFunc("POST /profiles/{username}/unfollow", s.requireAuth(s.postUnfollow))

	mux.HandleFunc("GET /groups/{slug}", s.getGroup)

	mux.HandleFunc("POST /posts", s.requireAuth(s.createPost))
	mux.HandleFunc("GET /posts/{id}", s.getPost)
	mux.HandleFunc("POST /posts/{id}", s.requireAuth(s.editPost))
	mux.HandleFunc("DELETE /posts/{id}", s.requireAuth(s.deletePost))
	mux.HandleFunc("GET /posts/{id}/comments", s.getComments)
	mux.HandleFunc("POST /posts/{id}/comments", s.requireAuth(s.createComment))

	mux.HandleFunc("POST /signup", s.signup)
	mux.HandleFunc("GET /activate", s.activate)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /contact", s.postContact)

	mux.Handle("GET /metrics", promhttp.Handler())

	return monitoring.NewServerMiddleware(mux)
}

func (s *Server) Run() {
	port := utils.Env("PORT", "3333")

	err := http.ListenAndServe(":"+port, s.Handler())
	if errors.Is(err, http.ErrServerClosed) {
		fmt.Printf("server closed\n")
	} else if err != nil {
		fmt.Printf("error starting server: %s\n", err)
		os.Exit(1)
	}
}
