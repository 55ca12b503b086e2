package server

import (
	"context"
	"net/http"
	"time"

	"github.com/clinicbase/medrec-be/internal/auth"
	"github.com/clinicbase/medrec-be/internal/config"
	"github.com/clinicbase/medrec-be/internal/http/handlers"
	"github.com/clinicbase/medrec-be/internal/middleware"
	"github.com/clinicbase/medrec-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	mux := http.NewServeMux()

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authn := middleware.NewAuthenticator(tokenManager, store)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(store, tokenManager, cfg.BcryptCost).Register(mux)
	handlers.NewUsersHandler().Register(mux, authn)
	handlers.NewRecordsHandler(store).Register(mux, authn)
	handlers.NewPatientsHandler(store).Register(mux, authn)
	handlers.NewVisitsHandler(store).Register(mux, authn)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
