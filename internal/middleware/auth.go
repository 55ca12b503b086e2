package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/clinicbase/medrec-be/internal/auth"
	"github.com/clinicbase/medrec-be/internal/http/respond"
	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/storage"
)

type ctxKey int

const userKey ctxKey = iota

// Authenticator guards routes with bearer-token authentication and role
// checks. Every authentication failure is reported uniformly so callers
// cannot distinguish a bad signature from an expired token or unknown user.
type Authenticator struct {
	tokens *auth.TokenManager
	users  storage.UserStore
}

// NewAuthenticator wires the token manager and user lookup together.
func NewAuthenticator(tokens *auth.TokenManager, users storage.UserStore) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// RequireUser authenticates the request and injects the active user into the
// request context. Inactive accounts are rejected distinctly from bad
// credentials.
func (a *Authenticator) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			unauthorized(w)
			return
		}

		claims, err := a.tokens.Validate(strings.TrimSpace(tokenString))
		if err != nil {
			unauthorized(w)
			return
		}

		user, err := a.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Printf("auth: load user %d: %v", claims.UserID, err)
			}
			unauthorized(w)
			return
		}
		if !user.IsActive {
			respond.Error(w, http.StatusForbidden, "inactive user")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}

// RequireRole authenticates and then requires the given role; an admin
// passes every role check.
func (a *Authenticator) RequireRole(role models.Role, next http.HandlerFunc) http.HandlerFunc {
	return a.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		user := UserFrom(r.Context())
		if !user.Role.Covers(role) {
			respond.Error(w, http.StatusForbidden, fmt.Sprintf("requires %s role", role))
			return
		}
		next(w, r)
	})
}

// UserFrom returns the authenticated user stored by RequireUser. The zero
// User is returned on an unauthenticated context.
func UserFrom(ctx context.Context) models.User {
	user, _ := ctx.Value(userKey).(models.User)
	return user
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respond.Error(w, http.StatusUnauthorized, "could not validate credentials")
}
