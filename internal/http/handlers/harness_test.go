package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinicbase/medrec-be/internal/auth"
	"github.com/clinicbase/medrec-be/internal/middleware"
	"github.com/clinicbase/medrec-be/internal/models"
)

const testBcryptCost = 4 // bcrypt.MinCost, keeps the suite fast

type testEnv struct {
	ts     *httptest.Server
	store  *memStore
	tokens *auth.TokenManager
}

// newTestEnv spins up the full route table backed by the in-memory store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newMemStore()
	tokens := auth.NewTokenManager("test-secret", "medrec-test", 30*time.Minute)
	authn := middleware.NewAuthenticator(tokens, store)

	mux := http.NewServeMux()
	NewHealthHandler(time.Now()).Register(mux)
	NewAuthHandler(store, tokens, testBcryptCost).Register(mux)
	NewUsersHandler().Register(mux, authn)
	NewRecordsHandler(store).Register(mux, authn)
	NewPatientsHandler(store).Register(mux, authn)
	NewVisitsHandler(store).Register(mux, authn)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, store: store, tokens: tokens}
}

// do issues a JSON request, optionally authenticated, and decodes the
// response body into out when out is non-nil.
func (e *testEnv) do(t *testing.T, method, path, token string, body, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// register creates an account through the API and returns it.
func (e *testEnv) register(t *testing.T, email string, role models.Role, password string) models.User {
	t.Helper()
	var user models.User
	resp := e.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":     email,
		"full_name": "Test " + string(role),
		"role":      role,
		"password":  password,
	}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return user
}

// login exchanges credentials for a bearer token.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	resp := e.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "bearer", out.TokenType)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

// registerAndLogin is the common setup step for protected-route tests.
func (e *testEnv) registerAndLogin(t *testing.T, email string, role models.Role) (models.User, string) {
	t.Helper()
	user := e.register(t, email, role, "pw123456")
	return user, e.login(t, email, "pw123456")
}
