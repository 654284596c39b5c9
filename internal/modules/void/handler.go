package void

import (
	"net/http"

	"github.com/georgemunganga/printa-pos/internal/httpx"
	"github.com/georgemunganga/printa-pos/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the void workflow.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/void-reasons", h.reasons) // GET  /api/v1/void-reasons
	r.Route("/api/v1/transactions/{id}", func(r chi.Router) {
		r.Get("/summary", h.summary)  // GET  /api/v1/transactions/{id}/summary
		r.Get("/can-void", h.canVoid) // GET  /api/v1/transactions/{id}/can-void
		r.Post("/void", h.void)       // POST /api/v1/transactions/{id}/void
	})
}

func (h *Handler) reasons(w http.ResponseWriter, r *http.Request) {
	reasons, err := h.service.GetVoidReasons(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusServiceUnavailable, "Error loading void reasons")
		return
	}
	httpx.Respond(w, http.StatusOK, reasons)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.GetSummary(r.Context(), chi.URLParam(r, "id"))
	status := http.StatusOK
	if !summary.Found {
		status = http.StatusNotFound
	}
	httpx.Respond(w, status, summary)
}

func (h *Handler) canVoid(w http.ResponseWriter, r *http.Request) {
	res := h.service.CanVoid(r.Context(), chi.URLParam(r, "id"))
	status := http.StatusOK
	if res.Err != nil {
		status = http.StatusInternalServerError
	}
	httpx.Respond(w, status, res)
}

type voidBody struct {
	VoidReasonID     string `json:"void_reason_id"`
	ApprovalCode     string `json:"approval_code,omitempty"`
	RequiresApproval bool   `json:"requires_approval"`
	VoidedBy         string `json:"voided_by,omitempty"`
	UserID           string `json:"user_id,omitempty"`
}

func (h *Handler) void(w http.ResponseWriter, r *http.Request) {
	var body voidBody
	if err := httpx.Decode(r, &body); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	req := VoidTransactionRequest{
		TransactionID:    chi.URLParam(r, "id"),
		VoidReasonID:     body.VoidReasonID,
		VoidedBy:         body.VoidedBy,
		ApprovalCode:     body.ApprovalCode,
		UserID:           body.UserID,
		RequiresApproval: body.RequiresApproval,
	}
	if p, ok := auth.FromContext(r.Context()); ok {
		req.UserID = p.UserID
		req.VoidedBy = p.EmployeeID
	}

	res := h.service.Process(r.Context(), &req)
	httpx.Respond(w, res.ResultType.HTTPStatus(), res)
}
