package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treetap/treetap-api/internal/api/shared"
	"github.com/treetap/treetap-api/internal/domain"
)

// authedRequest builds a request whose context carries the given account ID,
// as the auth middleware would have left it.
func authedRequest(method, path string, body []byte, id domain.ID) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(shared.SetAccountID(req.Context(), id))
}

func TestGetTasks(t *testing.T) {
	t.Parallel()

	store := newTestAccountStore()
	handler := NewTaskHandler(store)

	id, err := store.CreateAccount(context.Background(), "test@example.com", "p")
	require.NoError(t, err)

	t.Run("no tasks yet", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.GetTasks(recorder, authedRequest("GET", "/tasks/", nil, id))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"no tasks"}`, recorder.Body.String())
	})

	t.Run("unknown account", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.GetTasks(recorder, authedRequest("GET", "/tasks/", nil, id+1))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, recorder.Body.String())
	})

	t.Run("returns stored document", func(t *testing.T) {
		doc := domain.TaskDocument(`{"list":[1,2,3]}`)
		require.NoError(t, store.PutTasks(context.Background(), id, doc))

		recorder := httptest.NewRecorder()
		handler.GetTasks(recorder, authedRequest("GET", "/tasks/", nil, id))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"tasks":{"list":[1,2,3]}}`, recorder.Body.String())
	})

	t.Run("missing account ID in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/tasks/", nil)
		recorder := httptest.NewRecorder()
		handler.GetTasks(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestPutTasks(t *testing.T) {
	t.Parallel()

	store := newTestAccountStore()
	handler := NewTaskHandler(store)

	id, err := store.CreateAccount(context.Background(), "test@example.com", "p")
	require.NoError(t, err)

	t.Run("stores the document", func(t *testing.T) {
		body := []byte(`{"tasks":{"list":[1,2,3]}}`)
		recorder := httptest.NewRecorder()
		handler.PutTasks(recorder, authedRequest("POST", "/tasks/", body, id))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Body.String(), "success response has an empty body")

		stored, err := store.GetTasks(context.Background(), id)
		require.NoError(t, err)
		assert.JSONEq(t, `{"list":[1,2,3]}`, string(stored))
	})

	t.Run("replaces wholesale", func(t *testing.T) {
		body := []byte(`{"tasks":{"other":true}}`)
		recorder := httptest.NewRecorder()
		handler.PutTasks(recorder, authedRequest("POST", "/tasks/", body, id))

		assert.Equal(t, http.StatusOK, recorder.Code)

		stored, err := store.GetTasks(context.Background(), id)
		require.NoError(t, err)
		assert.JSONEq(t, `{"other":true}`, string(stored))
	})

	t.Run("unknown account", func(t *testing.T) {
		body := []byte(`{"tasks":[]}`)
		recorder := httptest.NewRecorder()
		handler.PutTasks(recorder, authedRequest("POST", "/tasks/", body, id+1))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, recorder.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.PutTasks(recorder, authedRequest("POST", "/tasks/", []byte("{oops"), id))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing tasks field", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.PutTasks(recorder, authedRequest("POST", "/tasks/", []byte(`{}`), id))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	// Unknown errors must not leak their message to the client.
	msg := GetSafeErrorMessage(assert.AnError)
	assert.Equal(t, "an unexpected error occurred", msg)
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(assert.AnError))
}
