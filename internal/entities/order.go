package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPaymentPending OrderStatus = "payment_pending"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusPaymentFailed  OrderStatus = "payment_failed"
	OrderStatusAssigned       OrderStatus = "assigned"
	OrderStatusPicked         OrderStatus = "picked"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Deletable сообщает, можно ли ещё удалить заказ.
// Заказы, взятые в работу, удалению не подлежат.
func (s OrderStatus) Deletable() bool {
	switch s {
	case OrderStatusAssigned, OrderStatusPicked, OrderStatusDelivered:
		return false
	}
	return true
}

type PaymentKind string

const (
	PaymentKindGatewayIntent PaymentKind = "gateway_intent"
	PaymentKindCard          PaymentKind = "card"
)

// OrderPayment tagged variant: либо ссылка на gateway intent,
// либо унаследованная карточная оплата. Заполнено ровно одно поле.
type OrderPayment struct {
	Kind   PaymentKind
	Intent *IntentPayment
	Card   *CardPayment
}

type IntentPayment struct {
	IntentID string
}

type CardPayment struct {
	LastFour      string
	Brand         string
	TransactionID string
}

type Delivery struct {
	Line1        string
	Line2        string
	NoInterior   string
	NoExterior   string
	Instructions string
}

type Order struct {
	ID          int64
	OrderNumber string
	CustomerID  int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Delivery     Delivery
	Instructions string

	Status        OrderStatus
	PaymentStatus PaymentStatus
	Payment       OrderPayment

	TotalAmount      decimal.Decimal
	TotalAmountCents int64
	Currency         string

	GatewayCustomerID string
	PaidAt            *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem
}

// OrderItem снапшот позиции на момент оформления.
// Цена и названия фиксируются при создании и больше не пересчитываются.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	SizeID     int64
	Quantity   int
	Price      decimal.Decimal
	ItemName   string
	SizeName   string
}

type OrderLine struct {
	MenuItemID int64
	SizeID     int64
	Quantity   int
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrDuplicateOrderLine  = errors.New("duplicate item and size combination")
	ErrUnknownCatalogEntry = errors.New("unknown menu item or size")
	ErrAmountMismatch      = errors.New("payment amount does not match order total")
	ErrInvalidIntentState  = errors.New("payment intent is not in a usable state")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrUnknownIntent       = errors.New("payment intent is not tracked")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrOrderNotDeletable   = errors.New("order can no longer be deleted")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrOrderNumberTaken    = errors.New("order number already taken")
	ErrCustomerNotFound    = errors.New("customer not found")
)
