package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/delivery-order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookServiceMocks struct {
	repo   *mocks.MockWebhookRepo
	events *mocks.MockEventPublisher
	tx     *txMocks.MockManager
}

func newWebhookService(t *testing.T) (interface {
	HandleEvent(ctx context.Context, event entities.WebhookEvent) error
}, webhookServiceMocks) {
	t.Helper()

	m := webhookServiceMocks{
		repo:   mocks.NewMockWebhookRepo(t),
		events: mocks.NewMockEventPublisher(t),
		tx:     txMocks.NewMockManager(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewWebhookService(logger, m.tx, m.repo, m.events)
	return svc, m
}

func (m webhookServiceMocks) expectTxPassthrough() {
	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func linkedIntent(orderID int64) entities.PaymentIntent {
	return entities.PaymentIntent{
		ID:              1,
		GatewayIntentID: "pi_1",
		AmountCents:     2000,
		Currency:        "usd",
		Status:          entities.PaymentStatusRequiresPaymentMethod,
		OrderID:         &orderID,
	}
}

func TestWebhookService_PaymentSucceeded(t *testing.T) {
	event := entities.WebhookEvent{
		Type:        service.EventPaymentSucceeded,
		IntentID:    "pi_1",
		Status:      "succeeded",
		AmountCents: 2000,
	}

	t.Run("marks order paid and publishes event", func(t *testing.T) {
		svc, m := newWebhookService(t)

		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(linkedIntent(100), nil).Once()
		m.expectTxPassthrough()
		m.repo.EXPECT().MarkPaymentIntentSucceeded(mock.Anything, "pi_1").Return(true, nil).Once()
		m.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(100)).Return(true, nil).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
			Return(entities.Order{ID: 100, OrderNumber: "ORD-1"}, nil).Once()
		m.events.EXPECT().
			PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
				return e.OrderID == 100 && e.Status == entities.OrderStatusPaid && e.OrderNumber == "ORD-1"
			})).
			Return(nil).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("replayed event is a no-op", func(t *testing.T) {
		svc, m := newWebhookService(t)

		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(linkedIntent(100), nil).Once()
		m.expectTxPassthrough()
		m.repo.EXPECT().MarkPaymentIntentSucceeded(mock.Anything, "pi_1").Return(false, nil).Once()
		// заказ уже оплачен - переход не применился, событие не публикуем
		m.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(100)).Return(false, nil).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("intent without order only updates mirror", func(t *testing.T) {
		svc, m := newWebhookService(t)

		intent := linkedIntent(0)
		intent.OrderID = nil
		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(intent, nil).Once()
		m.expectTxPassthrough()
		m.repo.EXPECT().MarkPaymentIntentSucceeded(mock.Anything, "pi_1").Return(true, nil).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("untracked intent is acknowledged", func(t *testing.T) {
		svc, m := newWebhookService(t)

		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").
			Return(entities.PaymentIntent{}, entities.ErrUnknownIntent).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("broker failure does not fail the event", func(t *testing.T) {
		svc, m := newWebhookService(t)

		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(linkedIntent(100), nil).Once()
		m.expectTxPassthrough()
		m.repo.EXPECT().MarkPaymentIntentSucceeded(mock.Anything, "pi_1").Return(true, nil).Once()
		m.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(100)).Return(true, nil).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
			Return(entities.Order{ID: 100, OrderNumber: "ORD-1"}, nil).Once()
		m.events.EXPECT().
			PublishOrderEvent(mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})
}

func TestWebhookService_PaymentFailed(t *testing.T) {
	event := entities.WebhookEvent{
		Type:        service.EventPaymentFailed,
		IntentID:    "pi_1",
		Status:      "requires_payment_method",
		AmountCents: 2000,
	}

	t.Run("marks order failed and publishes event", func(t *testing.T) {
		svc, m := newWebhookService(t)

		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(linkedIntent(100), nil).Once()
		m.expectTxPassthrough()
		m.repo.EXPECT().MarkPaymentIntentCanceled(mock.Anything, "pi_1").Return(true, nil).Once()
		m.repo.EXPECT().MarkOrderPaymentFailed(mock.Anything, int64(100)).Return(true, nil).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
			Return(entities.Order{ID: 100, OrderNumber: "ORD-1"}, nil).Once()
		m.events.EXPECT().
			PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
				return e.OrderID == 100 && e.Status == entities.OrderStatusPaymentFailed
			})).
			Return(nil).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("failure after success does not regress the order", func(t *testing.T) {
		svc, m := newWebhookService(t)

		m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(linkedIntent(100), nil).Once()
		m.expectTxPassthrough()
		// условные переходы исключают терминальные состояния
		m.repo.EXPECT().MarkPaymentIntentCanceled(mock.Anything, "pi_1").Return(false, nil).Once()
		m.repo.EXPECT().MarkOrderPaymentFailed(mock.Anything, int64(100)).Return(false, nil).Once()

		require.NoError(t, svc.HandleEvent(context.Background(), event))
	})
}

func TestWebhookService_UnknownEventType(t *testing.T) {
	svc, _ := newWebhookService(t)

	err := svc.HandleEvent(context.Background(), entities.WebhookEvent{
		Type:     "charge.refunded",
		IntentID: "pi_1",
	})

	assert.NoError(t, err)
}

func TestWebhookService_TransactionFailure(t *testing.T) {
	svc, m := newWebhookService(t)

	dbErr := errors.New("db error")

	m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(linkedIntent(100), nil).Once()
	m.tx.EXPECT().Do(mock.Anything, mock.Anything).Return(dbErr).Once()

	err := svc.HandleEvent(context.Background(), entities.WebhookEvent{
		Type:     service.EventPaymentSucceeded,
		IntentID: "pi_1",
	})

	assert.ErrorIs(t, err, dbErr)
}
