package void

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/printa-pos/internal/modules/auth"
	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler(t *testing.T) {
	svc, gw := newTestService(t)
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{UserID: "U1", EmployeeID: "E1"})))
		})
	})
	NewHandler(svc).RegisterRoutes(r)

	t.Run("can-void on a voided sale", func(t *testing.T) {
		gw.EXPECT().Execute(gomock.Any(), procSummary, gomock.Any()).Return(summaryRow("Voided"), nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/TX-1001/can-void", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"can_void":false,"reason":"Transaction is already voided","current_status":"Voided"}`, rec.Body.String())
	})

	t.Run("void is refused for a voided sale", func(t *testing.T) {
		gw.EXPECT().Execute(gomock.Any(), procSummary, gomock.Any()).Return(summaryRow("Voided"), nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/transactions/TX-1001/void", strings.NewReader(`{"void_reason_id":"R1"}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"result_type":"BusinessError"`)
	})

	t.Run("unknown transaction summary", func(t *testing.T) {
		gw.EXPECT().Execute(gomock.Any(), procSummary, gomock.Any()).Return(store.NewResponse(nil, nil), nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/TX-9/summary", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("void reasons unavailable", func(t *testing.T) {
		gw.EXPECT().Execute(gomock.Any(), procVoidReasons).Return(nil, &store.Fault{Message: "down"})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/void-reasons", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
