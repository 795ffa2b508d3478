package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/trm"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

type WebhookRepo interface {
	GetPaymentIntentByGatewayID(ctx context.Context, gatewayIntentID string) (entities.PaymentIntent, error)
	MarkPaymentIntentSucceeded(ctx context.Context, gatewayIntentID string) (bool, error)
	MarkPaymentIntentCanceled(ctx context.Context, gatewayIntentID string) (bool, error)
	MarkOrderPaid(ctx context.Context, orderID int64) (bool, error)
	MarkOrderPaymentFailed(ctx context.Context, orderID int64) (bool, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

type webhookService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      WebhookRepo
	events    EventPublisher
}

func NewWebhookService(logger *slog.Logger, txManager trm.Manager, repo WebhookRepo, events EventPublisher) *webhookService {
	return &webhookService{
		logger:    logger.With(slog.String("service", "webhook")),
		txManager: txManager,
		repo:      repo,
		events:    events,
	}
}

// HandleEvent применяет событие шлюза к локальному состоянию.
// Переходы условные, повторная доставка того же события - no-op.
func (s *webhookService) HandleEvent(ctx context.Context, event entities.WebhookEvent) error {
	switch event.Type {
	case EventPaymentSucceeded:
		return s.handlePaymentSucceeded(ctx, event)
	case EventPaymentFailed:
		return s.handlePaymentFailed(ctx, event)
	default:
		// неизвестные типы принимаем и игнорируем
		s.logger.Debug("ignoring webhook event", slog.String("type", event.Type))
		return nil
	}
}

func (s *webhookService) handlePaymentSucceeded(ctx context.Context, event entities.WebhookEvent) error {
	intent, err := s.repo.GetPaymentIntentByGatewayID(ctx, event.IntentID)
	if errors.Is(err, entities.ErrUnknownIntent) {
		// событие может относиться к давно забытому intent'у - не ретраим
		s.logger.Warn("webhook for untracked intent", slog.String("intent_id", event.IntentID))
		return nil
	}
	if err != nil {
		return err
	}

	var orderPaid bool
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.MarkPaymentIntentSucceeded(ctx, event.IntentID); err != nil {
			return err
		}
		if intent.OrderID == nil {
			return nil
		}
		applied, err := s.repo.MarkOrderPaid(ctx, *intent.OrderID)
		if err != nil {
			return err
		}
		orderPaid = applied
		return nil
	})
	if err != nil {
		return err
	}

	if orderPaid {
		s.logger.Info("order paid",
			slog.Int64("order_id", *intent.OrderID),
			slog.String("intent_id", event.IntentID),
		)
		s.publishOrderEvent(ctx, *intent.OrderID, event.IntentID, entities.OrderStatusPaid)
	}
	return nil
}

func (s *webhookService) handlePaymentFailed(ctx context.Context, event entities.WebhookEvent) error {
	intent, err := s.repo.GetPaymentIntentByGatewayID(ctx, event.IntentID)
	if errors.Is(err, entities.ErrUnknownIntent) {
		s.logger.Warn("webhook for untracked intent", slog.String("intent_id", event.IntentID))
		return nil
	}
	if err != nil {
		return err
	}

	var orderFailed bool
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.MarkPaymentIntentCanceled(ctx, event.IntentID); err != nil {
			return err
		}
		if intent.OrderID == nil {
			return nil
		}
		applied, err := s.repo.MarkOrderPaymentFailed(ctx, *intent.OrderID)
		if err != nil {
			return err
		}
		orderFailed = applied
		return nil
	})
	if err != nil {
		return err
	}

	if orderFailed {
		s.logger.Info("order payment failed",
			slog.Int64("order_id", *intent.OrderID),
			slog.String("intent_id", event.IntentID),
		)
		s.publishOrderEvent(ctx, *intent.OrderID, event.IntentID, entities.OrderStatusPaymentFailed)
	}
	return nil
}

// Публикация события - best effort: ошибка брокера не должна приводить
// к ретраю вебхука со стороны шлюза.
func (s *webhookService) publishOrderEvent(ctx context.Context, orderID int64, intentID string, status entities.OrderStatus) {
	event := entities.OrderEvent{
		OrderID:         orderID,
		Status:          status,
		PaymentIntentID: intentID,
		OccurredAt:      time.Now().UTC(),
	}
	if order, err := s.repo.GetOrderByID(ctx, orderID); err == nil {
		event.OrderNumber = order.OrderNumber
	}

	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)
	}
}
