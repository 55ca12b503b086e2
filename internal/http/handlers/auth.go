package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/clinicbase/medrec-be/internal/auth"
	"github.com/clinicbase/medrec-be/internal/http/respond"
	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/models/dto"
	"github.com/clinicbase/medrec-be/internal/storage"
)

// AuthHandler owns the open register/login endpoints.
type AuthHandler struct {
	store      storage.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, bcryptCost int) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, bcryptCost: bcryptCost}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		log.Printf("hash password: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
		IsActive:     true,
		PasswordHash: passwordHash,
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("create user: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("login: fetch user: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
			return
		}
		badCredentials(w)
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		badCredentials(w)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("login: generate token: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func badCredentials(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respond.Error(w, http.StatusUnauthorized, "incorrect email or password")
}
