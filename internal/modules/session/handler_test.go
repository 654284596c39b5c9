package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/store/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Start(t *testing.T) {
	const body = `{"terminal_id":"T1","cashier_id":"C1","starting_amount":"100.00","user_id":"U1"}`

	tests := []struct {
		name       string
		setup      func(gw *mocks.MockGateway)
		body       string
		wantStatus int
		wantType   string
	}{
		{
			name: "started",
			setup: func(gw *mocks.MockGateway) {
				gw.EXPECT().Execute(gomock.Any(), procStartSession, gomock.Any()).
					Return(store.NewResponse(nil, map[string]any{"session_id": "S-0001"}), nil)
			},
			body:       body,
			wantStatus: http.StatusCreated,
			wantType:   "Success",
		},
		{
			name: "terminal rejected by the store",
			setup: func(gw *mocks.MockGateway) {
				gw.EXPECT().Execute(gomock.Any(), procStartSession, gomock.Any()).
					Return(nil, &store.Fault{Kind: store.FaultRaised, Code: "P0001", Message: "Terminal T1 is not active"})
			},
			body:       body,
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   "BusinessError",
		},
		{
			name: "connection lost",
			setup: func(gw *mocks.MockGateway) {
				gw.EXPECT().Execute(gomock.Any(), procStartSession, gomock.Any()).
					Return(nil, &store.Fault{Kind: store.FaultConnection, Message: "connection refused"})
			},
			body:       body,
			wantStatus: http.StatusInternalServerError,
			wantType:   "SystemError",
		},
		{
			name:       "missing terminal",
			setup:      func(*mocks.MockGateway) {},
			body:       `{"cashier_id":"C1","starting_amount":"0","user_id":"U1"}`,
			wantStatus: http.StatusBadRequest,
			wantType:   "ValidationError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newTestService(t)
			tt.setup(gw)
			r := chi.NewRouter()
			NewHandler(svc).RegisterRoutes(r)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"result_type":"`+tt.wantType+`"`)
		})
	}
}
