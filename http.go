package auth

import (
	"encoding/json"
	"net/http"
)

// LoginRequest is the payload accepted by the login endpoint. Provider is
// optional; unknown values are ignored and the identifier heuristic takes
// over.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Provider   string `json:"provider,omitempty"`
}

// LoginResponse carries a freshly issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Details string `json:"details"`
}

// LoginHandler authenticates a login payload. Every authentication failure
// maps to the same 401 body; storage failures map to 503 so clients can
// tell "wrong credentials" from "system unavailable".
func LoginHandler(auther Authenticator, logger Logger) http.HandlerFunc {
	if logger == nil {
		logger = defLogger{}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var payload LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Details: "Invalid credentials"})
			return
		}

		var providers []Provider
		if provider, ok := ParseProvider(payload.Provider); ok {
			providers = append(providers, provider)
		}

		token, err := auther.Login(r.Context(), payload.Identifier, payload.Password, providers...)
		if err != nil {
			if IsAuthenticationFailure(err) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Details: "Invalid credentials"})
				return
			}

			logger.Error("login handler storage error", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Details: "Service unavailable"})
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// HealthHandler reports process liveness.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
