package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// maxArgsBytes caps tool argument bodies.
const maxArgsBytes = 1 << 20

type ToolHandler struct {
	Toolbox *usecase.Toolbox
}

func NewToolHandler(toolbox *usecase.Toolbox) *ToolHandler {
	return &ToolHandler{Toolbox: toolbox}
}

func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": h.Toolbox.Specs()})
}

// Call runs POST /tools/{name}. Tool failures are still 200 responses with
// an error object so callers can show them to the user; only malformed
// requests get a 4xx.
func (h *ToolHandler) Call(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	args, err := io.ReadAll(io.LimitReader(r.Body, maxArgsBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, usecase.ToErrorResult(
			&usecase.ToolError{Code: usecase.CodeInvalidInput, Message: "could not read body"}, requestID))
		return
	}

	start := time.Now()
	result, err := h.Toolbox.Call(r.Context(), name, json.RawMessage(args))
	if err != nil {
		res := usecase.ToErrorResult(err, requestID)
		middleware.RecordToolCall(name, res.Error.Code, time.Since(start))
		log.Printf("❌ Tool %s [%s]: %v", name, requestID, err)

		status := http.StatusOK
		if isRequestError(res.Error) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, res)
		return
	}

	middleware.RecordToolCall(name, "ok", time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func isRequestError(e *usecase.ToolError) bool {
	return e.Code == usecase.CodeInvalidInput || (e.Code == usecase.CodeUnsupported && e.Scope == "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		log.Printf("⚠️ HTTP: encode response: %v", err)
	}
}
