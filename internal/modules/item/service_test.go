package item

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/printa-pos/internal/outcome"
	"github.com/georgemunganga/printa-pos/internal/store"
	"github.com/georgemunganga/printa-pos/internal/store/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *mocks.MockGateway) {
	gw := mocks.NewMockGatewayForTest(t)
	svc := NewService(NewRepository(gw), outcome.NewClassifier(), nil, zap.NewNop())
	svc.(*service).now = func() time.Time { return fixedNow }
	return svc, gw
}

func rows(values ...map[string]any) *store.Response {
	out := make([]store.Row, 0, len(values))
	for _, v := range values {
		out = append(out, store.NewRow(v))
	}
	return store.NewResponse(out, nil)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		resp    *store.Response
		err     error
		noCall  bool
		success bool
		code    string
		message string
	}{
		{
			name:    "found",
			barcode: " 6001234567890 ",
			resp:    rows(map[string]any{"Barcode": "6001234567890", "ItemActive": "1", "FinalPrice": "10"}),
			success: true,
		},
		{
			name:    "blank barcode",
			barcode: "   ",
			noCall:  true,
			code:    CodeInvalidBarcode,
			message: "Barcode cannot be null or empty",
		},
		{
			name:    "barcode too long",
			barcode: strings.Repeat("1", 19),
			noCall:  true,
			code:    CodeInvalidBarcode,
			message: "Barcode cannot exceed 18 characters",
		},
		{
			name:    "store error code",
			barcode: "123",
			resp:    rows(map[string]any{"ErrorCode": "ITEM_NOT_FOUND", "ErrorMessage": "Item 123 not found"}),
			code:    "ITEM_NOT_FOUND",
			message: "Item 123 not found",
		},
		{
			name:    "status error with message",
			barcode: "123",
			resp:    rows(map[string]any{"Status": "ERROR", "ErrorMessage": "price table locked"}),
			code:    CodeDatabaseError,
			message: "price table locked",
		},
		{
			name:    "status error without message",
			barcode: "123",
			resp:    rows(map[string]any{"Status": "ERROR"}),
			code:    CodeDatabaseError,
			message: "An error occurred while retrieving item information",
		},
		{
			name:    "no rows",
			barcode: "123",
			resp:    store.NewResponse(nil, nil),
			code:    CodeNoData,
			message: "No data returned from stored procedure",
		},
		{
			name:    "fault",
			barcode: "123",
			err:     &store.Fault{Kind: store.FaultConnection, Message: "connection refused"},
			code:    CodeException,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newTestService(t)
			if !tt.noCall {
				gw.EXPECT().
					Execute(gomock.Any(), procItemWithPromotions, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, params ...store.Param) (*store.Response, error) {
						require.Len(t, params, 1)
						assert.Equal(t, strings.TrimSpace(tt.barcode), params[0].Value)
						return tt.resp, tt.err
					})
			}

			got := svc.Lookup(context.Background(), tt.barcode)

			assert.Equal(t, tt.success, got.Success)
			assert.Equal(t, tt.code, got.ErrorCode)
			assert.Equal(t, tt.message, got.ErrorMessage)
			assert.Equal(t, fixedNow, got.QueryTime)
			assert.Equal(t, tt.success, got.Item != nil)
		})
	}
}

func TestHandler_Lookup(t *testing.T) {
	svc, gw := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	gw.EXPECT().Execute(gomock.Any(), procItemWithPromotions, gomock.Any()).
		Return(rows(map[string]any{"Barcode": "123", "FinalPrice": "100", "SalesTaxPercent": "16"}), nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price_with_tax":"116.00"`)

	gw.EXPECT().Execute(gomock.Any(), procItemWithPromotions, gomock.Any()).Return(store.NewResponse(nil, nil), nil)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
