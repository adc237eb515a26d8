package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tellis/tellis-go/internal/apperr"
	"github.com/tellis/tellis-go/internal/model"
)

// statusFor is the single place an error kind becomes an HTTP status.
// Duplicate email intentionally reports 400, matching the public API.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation, apperr.Conflict:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, resp model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	if data == nil {
		data = struct{}{}
	}
	writeJSON(w, status, model.Response{Success: true, Message: message, Data: data})
}

// respondError maps an application error to the uniform failure envelope.
// Unclassified errors surface as 500 with a generic message; the cause is
// logged here and never sent over the wire.
func respondError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, statusFor(kind), model.Response{
		Success: false,
		Message: apperr.MessageOf(err),
		Data:    struct{}{},
	})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, model.Response{
		Success: false,
		Message: message,
		Data:    struct{}{},
	})
}
