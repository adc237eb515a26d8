package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tellis/tellis-go/internal/middleware"
	"github.com/tellis/tellis-go/internal/model"
	"github.com/tellis/tellis-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations. Every operation is
// scoped by the authenticated identity attached by the auth gate; user ids
// from the request body or URL are never consulted.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleCreate handles POST /api/tasks.
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	task, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusCreated, "Task created successfully", task)
}

// HandleList handles GET /api/tasks.
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "Tasks retrieved successfully", tasks)
}

// HandleGet handles GET /api/tasks/{id}.
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	task, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "Task retrieved successfully", task)
}

// HandleUpdate handles PUT /api/tasks/{id}.
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	task, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "Task updated successfully", task)
}

// HandleDelete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "Task deleted successfully", nil)
}

func respondUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, model.Response{
		Success: false, Message: "Unauthorized", Data: struct{}{},
	})
}
