package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID                int64          `db:"id"`
	DeviceToken       string         `db:"device_token"`
	GatewayCustomerID sql.NullString `db:"gateway_customer_id"`
	CreatedAt         time.Time      `db:"created_at"`
	LastSeen          time.Time      `db:"last_seen"`
}

type Order struct {
	ID          int64  `db:"id"`
	OrderNumber string `db:"order_number"`
	CustomerID  int64  `db:"customer_id"`

	CustomerName  string         `db:"customer_name"`
	CustomerPhone string         `db:"customer_phone"`
	CustomerEmail sql.NullString `db:"customer_email"`

	AddressLine1        string         `db:"address_line_1"`
	AddressLine2        sql.NullString `db:"address_line_2"`
	NoInterior          sql.NullString `db:"no_interior"`
	NoExterior          sql.NullString `db:"no_exterior"`
	AddressInstructions sql.NullString `db:"address_instructions"`
	OrderInstructions   sql.NullString `db:"order_instructions"`

	Status        string `db:"status"`
	PaymentStatus string `db:"payment_status"`

	PaymentKind       string         `db:"payment_kind"`
	PaymentIntentID   sql.NullString `db:"payment_intent_id"`
	CardLastFour      sql.NullString `db:"card_last_four"`
	CardBrand         sql.NullString `db:"card_brand"`
	CardTransactionID sql.NullString `db:"card_transaction_id"`

	TotalAmount      decimal.Decimal `db:"total_amount"`
	TotalAmountCents int64           `db:"total_amount_cents"`
	Currency         string          `db:"currency"`

	GatewayCustomerID sql.NullString `db:"gateway_customer_id"`
	PaidAt            sql.NullTime   `db:"paid_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type OrderItem struct {
	ID         int64           `db:"id"`
	OrderID    int64           `db:"order_id"`
	MenuItemID int64           `db:"menu_item_id"`
	SizeID     int64           `db:"size_id"`
	Quantity   int             `db:"quantity"`
	Price      decimal.Decimal `db:"price"`
	ItemName   string          `db:"item_name"`
	SizeName   string          `db:"size_name"`
}

type PaymentIntent struct {
	ID              int64         `db:"id"`
	CustomerID      int64         `db:"customer_id"`
	GatewayIntentID string        `db:"gateway_intent_id"`
	AmountCents     int64         `db:"amount_cents"`
	Currency        string        `db:"currency"`
	Status          string        `db:"status"`
	OrderID         sql.NullInt64 `db:"order_id"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

type CatalogSnapshot struct {
	MenuItemID int64           `db:"menu_item_id"`
	SizeID     int64           `db:"size_id"`
	ItemName   string          `db:"item_name"`
	SizeName   string          `db:"size_name"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:                c.ID,
		DeviceToken:       c.DeviceToken,
		GatewayCustomerID: nullStringToString(c.GatewayCustomerID),
		CreatedAt:         c.CreatedAt,
		LastSeen:          c.LastSeen,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: nullStringToString(o.CustomerEmail),
		Delivery: entities.Delivery{
			Line1:        o.AddressLine1,
			Line2:        nullStringToString(o.AddressLine2),
			NoInterior:   nullStringToString(o.NoInterior),
			NoExterior:   nullStringToString(o.NoExterior),
			Instructions: nullStringToString(o.AddressInstructions),
		},
		Instructions:      nullStringToString(o.OrderInstructions),
		Status:            entities.OrderStatus(o.Status),
		PaymentStatus:     entities.PaymentStatus(o.PaymentStatus),
		Payment:           paymentToEntity(o),
		TotalAmount:       o.TotalAmount,
		TotalAmountCents:  o.TotalAmountCents,
		Currency:          o.Currency,
		GatewayCustomerID: nullStringToString(o.GatewayCustomerID),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if o.PaidAt.Valid {
		paidAt := o.PaidAt.Time
		order.PaidAt = &paidAt
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func paymentToEntity(o Order) entities.OrderPayment {
	switch entities.PaymentKind(o.PaymentKind) {
	case entities.PaymentKindCard:
		return entities.OrderPayment{
			Kind: entities.PaymentKindCard,
			Card: &entities.CardPayment{
				LastFour:      nullStringToString(o.CardLastFour),
				Brand:         nullStringToString(o.CardBrand),
				TransactionID: nullStringToString(o.CardTransactionID),
			},
		}
	default:
		return entities.OrderPayment{
			Kind:   entities.PaymentKindGatewayIntent,
			Intent: &entities.IntentPayment{IntentID: nullStringToString(o.PaymentIntentID)},
		}
	}
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:         i.ID,
		OrderID:    i.OrderID,
		MenuItemID: i.MenuItemID,
		SizeID:     i.SizeID,
		Quantity:   i.Quantity,
		Price:      i.Price,
		ItemName:   i.ItemName,
		SizeName:   i.SizeName,
	}
}

func PaymentIntentToEntity(p PaymentIntent) entities.PaymentIntent {
	intent := entities.PaymentIntent{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		GatewayIntentID: p.GatewayIntentID,
		AmountCents:     p.AmountCents,
		Currency:        p.Currency,
		Status:          entities.PaymentStatus(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.OrderID.Valid {
		orderID := p.OrderID.Int64
		intent.OrderID = &orderID
	}
	return intent
}

func CatalogSnapshotToEntity(c CatalogSnapshot) entities.CatalogSnapshot {
	return entities.CatalogSnapshot{
		MenuItemID: c.MenuItemID,
		SizeID:     c.SizeID,
		ItemName:   c.ItemName,
		SizeName:   c.SizeName,
		UnitPrice:  c.UnitPrice,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
