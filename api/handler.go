// Package api provides the HTTP surface: agent metadata, chat, and health.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	routerx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/agents/router"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// refusalMessage is returned with a 200 when the input guardrail blocks a
// message. A blocked message is a handled outcome, not a server error.
const refusalMessage = "I can only help with workplace topics like vacation requests, salary questions, and office culture. Please rephrase your request."

// ChatService handles one inbound chat message end to end.
type ChatService interface {
	HandleMessage(ctx context.Context, req routerx.Request) (routerx.Response, error)
}

type Handler struct {
	chat ChatService
}

func NewHandler(chat ChatService) *Handler {
	return &Handler{chat: chat}
}

// NewRouter builds the full route table.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/agents/", h.ListAgents)
		r.Get("/agents/{agentName}", h.GetAgent)
		r.Post("/chat/", h.Chat)
	})

	return r
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"detail": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response with a detail message.
func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, map[string]string{"detail": detail})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"message": "AI Agents API",
		"status":  "running",
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

type messageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	TenantID  string `json:"tenant_id"`
}

type messageResponse struct {
	Response string `json:"response"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.chat.HandleMessage(r.Context(), routerx.Request{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		TenantID:  req.TenantID,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, contractx.ErrGuardrailTripped):
			JSON(w, http.StatusOK, messageResponse{Response: refusalMessage})
		case errors.Is(err, contractx.ErrValidation):
			Error(w, http.StatusBadRequest, err.Error())
		default:
			Error(w, http.StatusInternalServerError, "Error processing message: "+err.Error())
		}
		return
	}

	JSON(w, http.StatusOK, messageResponse{Response: resp.Reply})
}
