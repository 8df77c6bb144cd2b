// Package handlers provides HTTP handlers for the vet finder API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vetfinder-hk/vetfinder/internal/assistant"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
)

// ChatHandler handles conversational assistant requests.
type ChatHandler struct {
	logger  *observability.Logger
	service *assistant.Service
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, service *assistant.Service) *ChatHandler {
	return &ChatHandler{
		logger:  logger,
		service: service,
	}
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req assistant.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.service.Chat(ctx, req)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "message is required", "")
			return
		}
		h.logger.WithContext(ctx).Error().Err(err).Msg("Chat turn failed")
		writeError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{
		"error": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	json.NewEncoder(w).Encode(resp)
}
