package entities

import "time"

// PaymentStatus зеркалирует статусы intent'а платёжного шлюза.
type PaymentStatus string

const (
	PaymentStatusRequiresPaymentMethod PaymentStatus = "requires_payment_method"
	PaymentStatusRequiresConfirmation  PaymentStatus = "requires_confirmation"
	PaymentStatusRequiresAction        PaymentStatus = "requires_action"
	PaymentStatusProcessing            PaymentStatus = "processing"
	PaymentStatusRequiresCapture       PaymentStatus = "requires_capture"
	PaymentStatusSucceeded             PaymentStatus = "succeeded"
	PaymentStatusCanceled              PaymentStatus = "canceled"
)

// Reusable сообщает, можно ли привязать intent к новому заказу.
func (s PaymentStatus) Reusable() bool {
	return s == PaymentStatusRequiresPaymentMethod || s == PaymentStatusRequiresConfirmation
}

// PaymentIntent локальное зеркало intent'а шлюза.
type PaymentIntent struct {
	ID              int64
	CustomerID      int64
	GatewayIntentID string
	AmountCents     int64
	Currency        string
	Status          PaymentStatus
	OrderID         *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GatewayIntent ответ шлюза на create/retrieve intent.
type GatewayIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       PaymentStatus
}

// WebhookEvent разобранное событие из подписанного фида шлюза.
type WebhookEvent struct {
	Type        string
	IntentID    string
	Status      string
	AmountCents int64
}

// OrderEvent публикуется при реальном переходе заказа в paid/payment_failed.
type OrderEvent struct {
	OrderID         int64       `json:"order_id"`
	OrderNumber     string      `json:"order_number"`
	Status          OrderStatus `json:"status"`
	PaymentIntentID string      `json:"payment_intent_id"`
	OccurredAt      time.Time   `json:"occurred_at"`
}
