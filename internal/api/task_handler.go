package api

import (
	"log/slog"
	"net/http"

	"github.com/treetap/treetap-api/internal/api/shared"
	"github.com/treetap/treetap-api/internal/store"
)

// TaskHandler handles the task-document endpoints. Both routes require an
// authenticated account ID placed in the request context by the auth
// middleware.
type TaskHandler struct {
	accountStore store.AccountStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(accountStore store.AccountStore) *TaskHandler {
	return &TaskHandler{
		accountStore: accountStore,
	}
}

// GetTasks handles GET /tasks/. It returns the account's stored document.
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.GetAccountID(r.Context())
	if !ok {
		// The middleware always sets the ID; reaching here is a wiring bug.
		slog.Error("no account ID in request context", "path", r.URL.Path)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "authentication error")
		return
	}

	doc, err := h.accountStore.GetTasks(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TasksResponse{Tasks: doc})
}

// PutTasks handles POST /tasks/. It replaces the account's stored document
// and returns an empty 200 response.
func (h *TaskHandler) PutTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.GetAccountID(r.Context())
	if !ok {
		slog.Error("no account ID in request context", "path", r.URL.Path)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "authentication error")
		return
	}

	var req PutTasksRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if err := h.accountStore.PutTasks(r.Context(), id, req.Tasks); err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
