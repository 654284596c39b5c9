package item

import (
	"net/http"

	"github.com/georgemunganga/printa-pos/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes item lookup.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/items/{barcode}", h.lookup) // GET /api/v1/items/{barcode}
}

type lookupResponse struct {
	ItemLookupResult
	PriceWithTax *string `json:"price_with_tax,omitempty"`
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	res := h.service.Lookup(r.Context(), chi.URLParam(r, "barcode"))
	body := lookupResponse{ItemLookupResult: res}
	if res.Success {
		p := PriceWithTax(res.Item).StringFixed(2)
		body.PriceWithTax = &p
	}

	status := http.StatusOK
	switch res.ErrorCode {
	case "":
	case CodeInvalidBarcode:
		status = http.StatusBadRequest
	case CodeNoData, "ITEM_NOT_FOUND":
		status = http.StatusNotFound
	case CodeException, CodeDatabaseError:
		status = http.StatusInternalServerError
	default:
		status = http.StatusUnprocessableEntity
	}
	httpx.Respond(w, status, body)
}
