package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminToken = "admin-secret"

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc, adminToken)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func validOrderBody() string {
	return `{
		"customer_info": {"name": "Ann", "phone": "+15550100"},
		"address_info": {"address_line_1": "Main st", "no_exterior": "5"},
		"payment_info": {"payment_intent_id": "pi_1"},
		"items": [{"menu_item_id": 1, "size_id": 10, "quantity": 2}]
	}`
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:            100,
		OrderNumber:   "ORD-20260830-abc123",
		CustomerID:    7,
		CustomerName:  "Ann",
		CustomerPhone: "+15550100",
		Status:        entities.OrderStatusPaymentPending,
		PaymentStatus: entities.PaymentStatusRequiresPaymentMethod,
		Payment: entities.OrderPayment{
			Kind:   entities.PaymentKindGatewayIntent,
			Intent: &entities.IntentPayment{IntentID: "pi_1"},
		},
		TotalAmount:      decimal.RequireFromString("20.00"),
		TotalAmountCents: 2000,
		Currency:         "usd",
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validOrderBody(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
						return in.DeviceToken == "device-1" && in.Payment.IntentID == "pi_1"
					})).
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"ORD-20260830-abc123"`,
		},
		{
			name:         "missing items",
			body:         `{"customer_info": {"name": "Ann", "phone": "+15550100"}, "address_info": {"address_line_1": "Main st", "no_exterior": "5"}, "payment_info": {}, "items": []}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Items"`,
		},
		{
			name:         "malformed json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "amount mismatch maps to conflict",
			body: validOrderBody(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrAmountMismatch).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "stale intent maps to conflict",
			body: validOrderBody(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidIntentState).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "gateway down maps to bad gateway",
			body: validOrderBody(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrGatewayUnavailable).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "unknown catalog entry maps to bad request",
			body: validOrderBody(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrUnknownCatalogEntry).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("X-Device-ID", "device-1")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_CreatePaymentIntent(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.EXPECT().
		CreatePaymentIntent(mock.Anything, "device-1", []entities.OrderLine{{MenuItemID: 1, SizeID: 10, Quantity: 2}}).
		Return(service.IntentPrefetch{
			IntentID:     "pi_1",
			ClientSecret: "secret",
			AmountCents:  2000,
			Currency:     "usd",
			DeviceToken:  "device-1",
		}, nil).Once()

	body := `{"items": [{"menu_item_id": 1, "size_id": 10, "quantity": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders/create-payment-intent", strings.NewReader(body))
	req.Header.Set("X-Device-ID", "device-1")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "pi_1", resp["payment_intent_id"])
	assert.Equal(t, "secret", resp["client_secret"])
	assert.Equal(t, float64(2000), resp["amount"])
	assert.Equal(t, "device-1", resp["device_id"])
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		headers      map[string]string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			path:    "/orders/100",
			headers: map[string]string{"X-Device-ID": "device-1"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, int64(100), "device-1", false).
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-20260830-abc123"`,
		},
		{
			name:    "admin token grants unscoped access",
			path:    "/orders/100",
			headers: map[string]string{"Authorization": "Bearer " + adminToken},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, int64(100), "", true).
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "wrong bearer token is not admin",
			path:    "/orders/100",
			headers: map[string]string{"Authorization": "Bearer wrong"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, int64(100), "", false).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "not found",
			path: "/orders/404",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, int64(404), "", false).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid id",
			path:         "/orders/abc",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_MyOrders(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.EXPECT().
		MyOrders(mock.Anything, "device-1").
		Return(entities.Customer{ID: 7, DeviceToken: "device-1"}, []entities.Order{sampleOrder()}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/orders/my-orders", nil)
	req.Header.Set("X-Device-ID", "device-1")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["count"])
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	t.Run("requires admin token", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/orders/100/status", strings.NewReader(`{"status": "assigned"}`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unknown status rejected before service call", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/orders/100/status", strings.NewReader(`{"status": "shipped"}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		r, svc := newTestRouter(t)

		updated := sampleOrder()
		updated.Status = entities.OrderStatusAssigned
		svc.EXPECT().
			UpdateStatus(mock.Anything, int64(100), entities.OrderStatusAssigned).
			Return(updated, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/100/status", strings.NewReader(`{"status": "assigned"}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"assigned"`)
	})

	t.Run("invalid transition maps to bad request", func(t *testing.T) {
		r, svc := newTestRouter(t)

		svc.EXPECT().
			UpdateStatus(mock.Anything, int64(100), entities.OrderStatusDelivered).
			Return(entities.Order{}, entities.ErrInvalidTransition).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/100/status", strings.NewReader(`{"status": "delivered"}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := newTestRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, int64(100), "device-1", false).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orders/100", nil)
		req.Header.Set("X-Device-ID", "device-1")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("order already in fulfillment", func(t *testing.T) {
		r, svc := newTestRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, int64(100), "device-1", false).
			Return(entities.ErrOrderNotDeletable).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orders/100", nil)
		req.Header.Set("X-Device-ID", "device-1")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_BulkDelete(t *testing.T) {
	t.Run("requires admin token", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/orders/bulk-delete", strings.NewReader(`{"order_ids": [1, 2]}`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		r, svc := newTestRouter(t)

		svc.EXPECT().
			BulkDeleteOrders(mock.Anything, []int64{1, 2, 3}).
			Return(int64(2), nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orders/bulk-delete", strings.NewReader(`{"order_ids": [1, 2, 3]}`))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"deleted":2`)
	})
}
