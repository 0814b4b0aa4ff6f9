package middleware

import (
	"net/http"

	"github.com/treetap/treetap-api/internal/api/shared"
	"github.com/treetap/treetap-api/internal/service/auth"
)

// AuthMiddleware extracts the bearer credential from each request and makes
// the account ID it names available to handlers. The credential is not
// validated against the store here: whether the ID actually exists is the
// handler's concern, so a forged or stale token still reaches the handler
// and fails there with "invalid token".
type AuthMiddleware struct{}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// Authenticate decodes the Authorization header and adds the account ID to
// the request context. Requests whose credential cannot be extracted or
// decoded are rejected with 401 before reaching the handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.TokenFromRequest(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := shared.SetAccountID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
