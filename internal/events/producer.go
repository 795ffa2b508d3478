package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Producer публикует события заказов для кухонного дашборда.
type Producer struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewProducer(logger *slog.Logger, cfg config.Kafka) *Producer {
	return &Producer{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Producer) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	// В библиотеке уже есть retry
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}

	p.logger.Debug("order event published",
		slog.String("order_number", event.OrderNumber),
		slog.String("status", string(event.Status)),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
