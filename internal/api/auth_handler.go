package api

import (
	"log/slog"
	"net/http"

	"github.com/treetap/treetap-api/internal/api/shared"
	"github.com/treetap/treetap-api/internal/service/auth"
	"github.com/treetap/treetap-api/internal/store"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	accountStore store.AccountStore
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accountStore store.AccountStore) *AuthHandler {
	return &AuthHandler{
		accountStore: accountStore,
	}
}

// Signup handles the /signup endpoint. On success the response carries a
// bearer credential naming the new account.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate request
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	// Create account
	id, err := h.accountStore.CreateAccount(r.Context(), req.Email, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status >= http.StatusInternalServerError {
			slog.Error("failed to create account", "error", err, "email", req.Email)
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Token: auth.EncodeToken(id),
	})
}

// Login handles the /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate request
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	// Authenticate
	id, err := h.accountStore.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status >= http.StatusInternalServerError {
			slog.Error("failed to authenticate", "error", err, "email", req.Email)
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Token: auth.EncodeToken(id),
	})
}
