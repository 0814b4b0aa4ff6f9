package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treetap/treetap-api/internal/platform/memory"
	"github.com/treetap/treetap-api/internal/service/auth"
)

func newTestAccountStore() *memory.TreeStore {
	hasher := auth.NewArgon2Hasher()
	return memory.NewTreeStore(hasher, hasher)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestSignup(t *testing.T) {
	t.Parallel()

	store := newTestAccountStore()
	handler := NewAuthHandler(store)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
		wantError  string
	}{
		{
			name: "valid signup",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "p",
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "duplicate email",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "other",
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "email exists",
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "not-an-email",
				"password": "p",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "p",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "test2@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Signup, "/signup", tt.payload)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var resp TokenResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Token)

				_, err := auth.DecodeToken(resp.Token)
				assert.NoError(t, err, "response token must decode")
			}
			if tt.wantError != "" {
				var errResp struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
				assert.Equal(t, tt.wantError, errResp.Error)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	store := newTestAccountStore()
	handler := NewAuthHandler(store)

	signupID, err := store.CreateAccount(context.Background(), "test@example.com", "p")
	require.NoError(t, err)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
		wantError  string
	}{
		{
			name: "valid login",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "p",
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "wrong",
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "password doesn't match",
		},
		{
			name: "unregistered email",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "p",
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "no such user",
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "test@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Login, "/login", tt.payload)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var resp TokenResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))

				id, err := auth.DecodeToken(resp.Token)
				require.NoError(t, err)
				assert.Equal(t, signupID, id,
					"login must authenticate as the same ID signup returned")
			}
			if tt.wantError != "" {
				var errResp struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&errResp))
				assert.Equal(t, tt.wantError, errResp.Error)
			}
		})
	}
}

func TestSignupMalformedBody(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(newTestAccountStore())

	req := httptest.NewRequest("POST", "/signup", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.Signup(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
