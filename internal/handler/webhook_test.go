package handler_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_test"

func newWebhookRouter(t *testing.T) (chi.Router, *mocks.MockWebhookProcessor) {
	t.Helper()

	svc := mocks.NewMockWebhookProcessor(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewWebhookHandler(logger, svc, webhookSecret)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

// signPayload собирает заголовок Stripe-Signature по схеме v1.
func signPayload(secret string, payload string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType, intentID, status string, amount int64) string {
	return fmt.Sprintf(
		`{"id":"evt_1","type":%q,"data":{"object":{"id":%q,"status":%q,"amount":%d}}}`,
		eventType, intentID, status, amount,
	)
}

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	t.Run("valid signature dispatches event", func(t *testing.T) {
		r, svc := newWebhookRouter(t)

		svc.EXPECT().
			HandleEvent(mock.Anything, entities.WebhookEvent{
				Type:        "payment_intent.succeeded",
				IntentID:    "pi_1",
				Status:      "succeeded",
				AmountCents: 2000,
			}).
			Return(nil).Once()

		payload := eventPayload("payment_intent.succeeded", "pi_1", "succeeded", 2000)
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", signPayload(webhookSecret, payload))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
	})

	t.Run("processing failure still acknowledged", func(t *testing.T) {
		r, svc := newWebhookRouter(t)

		svc.EXPECT().
			HandleEvent(mock.Anything, mock.Anything).
			Return(errors.New("db down")).Once()

		payload := eventPayload("payment_intent.payment_failed", "pi_1", "requires_payment_method", 2000)
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", signPayload(webhookSecret, payload))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		r, _ := newWebhookRouter(t)

		payload := eventPayload("payment_intent.succeeded", "pi_1", "succeeded", 2000)
		tampered := strings.Replace(payload, `"amount":2000`, `"amount":1`, 1)
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(tampered))
		req.Header.Set("Stripe-Signature", signPayload(webhookSecret, payload))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		r, _ := newWebhookRouter(t)

		payload := eventPayload("payment_intent.succeeded", "pi_1", "succeeded", 2000)
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", signPayload("whsec_other", payload))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing signature header rejected", func(t *testing.T) {
		r, _ := newWebhookRouter(t)

		payload := eventPayload("payment_intent.succeeded", "pi_1", "succeeded", 2000)
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(payload))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("object without id rejected", func(t *testing.T) {
		r, _ := newWebhookRouter(t)

		payload := `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"status":"succeeded"}}}`
		req := httptest.NewRequest(http.MethodPost, "/payments/webhook", strings.NewReader(payload))
		req.Header.Set("Stripe-Signature", signPayload(webhookSecret, payload))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
