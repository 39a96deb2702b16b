package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/techmart/storefront/internal/core/port"
)

// POST /v1/chat JSON {"message" string} (200 OK, 400 Bad request)

type ChatHandler struct {
	responder port.ChatResponder
}

func RegisterChat(mux *http.ServeMux, responder port.ChatResponder) {
	h := ChatHandler{responder}
	mux.HandleFunc("POST /v1/chat", h.PostMessage)
}

func (h ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	const op = "ChatHandler.PostMessage"
	log := slog.With("op", op)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	reply, err := h.responder.Respond(r.Context(), req.Message)
	if err != nil {
		http.Error(w, "failed to process message", http.StatusServiceUnavailable)
		log.Error("failed to process message", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toChatMessage(reply))
}
