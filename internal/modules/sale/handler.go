package sale

import (
	"net/http"

	"github.com/georgemunganga/printa-pos/internal/httpx"
	"github.com/georgemunganga/printa-pos/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes sale endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/sales", h.processSale) // POST /api/v1/sales
}

func (h *Handler) processSale(w http.ResponseWriter, r *http.Request) {
	var req SaleTransactionRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if p, ok := auth.FromContext(r.Context()); ok {
		req.UserID = p.UserID
	}

	res := h.service.ProcessSale(r.Context(), &req)
	status := res.ResultType.HTTPStatus()
	if res.IsSuccess {
		status = http.StatusCreated
	}
	httpx.Respond(w, status, res)
}
