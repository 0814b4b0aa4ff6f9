package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/treetap/treetap-api/internal/domain"
)

// Token is the payload carried by a bearer credential. It names the account
// a request acts as and nothing else: no expiry, no issuance time, no
// signature. The credential identifies an account rather than proving
// possession of its password, and callers must treat it accordingly.
type Token struct {
	ID domain.ID `json:"id"`
}

// EncodeToken serializes an account ID into an opaque credential string:
// base64 of the UTF-8 JSON object {"id": <id>}.
func EncodeToken(id domain.ID) string {
	payload, err := json.Marshal(Token{ID: id})
	if err != nil {
		// a struct of one integer always marshals
		panic(fmt.Sprintf("marshal token: %v", err))
	}
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeToken parses a credential string back into the account ID it names.
// Returns ErrTokenDecode for invalid base64 and ErrTokenPayload when the
// decoded bytes are not a JSON object with an "id" field.
func DecodeToken(credential string) (domain.ID, error) {
	decoded, err := base64.StdEncoding.DecodeString(credential)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	var payload struct {
		ID *uint64 `json:"id"`
	}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenPayload, err)
	}
	if payload.ID == nil {
		return 0, fmt.Errorf("%w: missing id field", ErrTokenPayload)
	}

	return domain.ID(*payload.ID), nil
}

// TokenFromRequest extracts exactly one bearer credential from the request's
// Authorization headers and decodes it. Returns ErrMissingAuthHeader,
// ErrTooManyAuthHeaders, or ErrMissingBearerScheme when the header is absent,
// duplicated, or not of the form "Bearer <token>".
func TokenFromRequest(r *http.Request) (domain.ID, error) {
	credentials := r.Header.Values("Authorization")

	var credential string
	switch len(credentials) {
	case 0:
		return 0, ErrMissingAuthHeader
	case 1:
		credential = credentials[0]
	default:
		return 0, ErrTooManyAuthHeaders
	}

	parts := strings.Split(credential, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, ErrMissingBearerScheme
	}

	return DecodeToken(parts[1])
}
