package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/hamiltonhq/go-auth"
)

func postLogin(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandlerSuccess(t *testing.T) {
	stub := &StubAuthenticator{Token: "signed.jwt.token"}
	handler := auth.LoginHandler(stub, nil)

	rec := postLogin(t, handler, `{"identifier":"admin@example.com","password":"CorrectPass1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)

	assert.Equal(t, "admin@example.com", stub.GotIdentifier)
	assert.Equal(t, "CorrectPass1", stub.GotPassword)
	assert.Empty(t, stub.GotProviders)
}

func TestLoginHandlerExplicitProvider(t *testing.T) {
	stub := &StubAuthenticator{Token: "signed.jwt.token"}
	handler := auth.LoginHandler(stub, nil)

	rec := postLogin(t, handler, `{"identifier":"101","password":"pw","provider":"room"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []auth.Provider{auth.ProviderRoom}, stub.GotProviders)
}

func TestLoginHandlerIgnoresUnknownProvider(t *testing.T) {
	stub := &StubAuthenticator{Token: "signed.jwt.token"}
	handler := auth.LoginHandler(stub, nil)

	rec := postLogin(t, handler, `{"identifier":"101","password":"pw","provider":"carrier-pigeon"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	// Unknown provider strings fall back to identifier auto-detection.
	assert.Empty(t, stub.GotProviders)
}

func TestLoginHandlerUniformFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad credentials", body: `{"identifier":"admin@example.com","password":"WrongPass"}`},
		{name: "empty payload", body: `{}`},
		{name: "malformed json", body: `{"identifier":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &StubAuthenticator{Err: auth.ErrAuthenticationFailed}
			handler := auth.LoginHandler(stub, nil)

			rec := postLogin(t, handler, tt.body)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"details":"Invalid credentials"}`, rec.Body.String())
		})
	}
}

func TestLoginHandlerStorageUnavailable(t *testing.T) {
	stub := &StubAuthenticator{Err: assert.AnError}
	handler := auth.LoginHandler(stub, nil)

	rec := postLogin(t, handler, `{"identifier":"admin@example.com","password":"CorrectPass1"}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"details":"Service unavailable"}`, rec.Body.String())
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	auth.HealthHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
