package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v78/webhook"
)

const maxWebhookBody = 64 << 10

type WebhookProcessor interface {
	HandleEvent(ctx context.Context, event entities.WebhookEvent) error
}

type WebhookHandler struct {
	logger *slog.Logger
	svc    WebhookProcessor
	secret string
}

func NewWebhookHandler(logger *slog.Logger, svc WebhookProcessor, secret string) *WebhookHandler {
	return &WebhookHandler{
		logger: logger.With(slog.String("handler", "webhook")),
		svc:    svc,
		secret: secret,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/payments/webhook", h.HandleWebhook)
}

// HandleWebhook принимает событие платёжного шлюза.
// @Summary      Вебхук платёжного шлюза
// @Description  Проверяет подпись и применяет событие к заказу
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Подпись события"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  utils.ErrorResponse "Некорректное тело события"
// @Failure      401  {object}  utils.ErrorResponse "Неверная подпись"
// @Router       /payments/webhook [post]
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		r.Header.Get("Stripe-Signature"),
		h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		webhookSignatureFailures.Inc()
		h.logger.WarnContext(ctx, "webhook signature verification failed", slog.Any("error", err))
		utils.WriteError(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var object struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil || object.ID == "" {
		utils.WriteError(w, "malformed event payload", http.StatusBadRequest)
		return
	}

	webhookEvents.WithLabelValues(string(event.Type)).Inc()

	// Ошибки обработки шлюзу не возвращаем, повтор события идемпотентен.
	if err := h.svc.HandleEvent(ctx, entities.WebhookEvent{
		Type:        string(event.Type),
		IntentID:    object.ID,
		Status:      object.Status,
		AmountCents: object.Amount,
	}); err != nil {
		h.logger.ErrorContext(ctx, "failed to process webhook event",
			slog.String("type", string(event.Type)),
			slog.String("intent_id", object.ID),
			slog.Any("error", err),
		)
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
