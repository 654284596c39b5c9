package session

import (
	"net/http"

	"github.com/georgemunganga/printa-pos/internal/httpx"
	"github.com/georgemunganga/printa-pos/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes cashier session endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/sessions", h.start)                              // POST /api/v1/sessions
	r.Get("/api/v1/terminals", h.activeTerminals)                    // GET  /api/v1/terminals
	r.Get("/api/v1/terminals/{id}/active", h.terminalActive)         // GET  /api/v1/terminals/{id}/active
	r.Get("/api/v1/cashiers/{id}/open-session", h.cashierHasSession) // GET  /api/v1/cashiers/{id}/open-session
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if p, ok := auth.FromContext(r.Context()); ok {
		req.UserID = p.UserID
	}

	res := h.service.StartSession(r.Context(), &req)
	if res.IsSuccess {
		httpx.Respond(w, http.StatusCreated, res)
		return
	}
	httpx.Respond(w, res.ResultType.HTTPStatus(), res)
}

func (h *Handler) activeTerminals(w http.ResponseWriter, r *http.Request) {
	terminals, err := h.service.ActiveTerminals(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Error retrieving active terminals")
		return
	}
	httpx.Respond(w, http.StatusOK, terminals)
}

func (h *Handler) terminalActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httpx.Respond(w, http.StatusOK, map[string]interface{}{
		"terminal_id": id,
		"active":      h.service.IsTerminalActive(r.Context(), id),
	})
}

func (h *Handler) cashierHasSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httpx.Respond(w, http.StatusOK, map[string]interface{}{
		"cashier_id":       id,
		"has_open_session": h.service.HasOpenSession(r.Context(), id),
	})
}
