package handler

import (
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	"github.com/shopspring/decimal"
)

// OrderLine позиция заказа в запросе
type OrderLine struct {
	MenuItemID int64 `json:"menu_item_id" validate:"required"`
	SizeID     int64 `json:"size_id" validate:"required"`
	Quantity   int   `json:"quantity" validate:"required,gte=1"`
}

// CustomerInfo контактные данные покупателя
type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// AddressInfo адрес доставки
type AddressInfo struct {
	AddressLine1        string `json:"address_line_1" validate:"required"`
	AddressLine2        string `json:"address_line_2,omitempty"`
	NoInterior          string `json:"no_interior,omitempty"`
	NoExterior          string `json:"no_exterior" validate:"required"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// OrderInstructions пожелания к заказу
type OrderInstructions struct {
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// PaymentInfo: либо intent из create-payment-intent, либо карточные данные
// по старому пути. Пустой объект означает создание intent'а при оформлении.
type PaymentInfo struct {
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	CardLastFour    string `json:"card_last_four,omitempty" validate:"omitempty,len=4,numeric"`
	CardBrand       string `json:"card_brand,omitempty"`
	TransactionID   string `json:"transaction_id,omitempty"`
}

// CreateIntentRequest тело запроса на создание payment intent
type CreateIntentRequest struct {
	Items []OrderLine `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderRequest тело запроса на оформление заказа
type CreateOrderRequest struct {
	CustomerInfo      CustomerInfo      `json:"customer_info" validate:"required"`
	AddressInfo       AddressInfo       `json:"address_info" validate:"required"`
	OrderInstructions OrderInstructions `json:"order_instructions"`
	PaymentInfo       PaymentInfo       `json:"payment_info"`
	Items             []OrderLine       `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusRequest тело запроса на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=assigned picked delivered cancelled"`
}

// BulkDeleteRequest тело запроса на массовое удаление
type BulkDeleteRequest struct {
	OrderIDs []int64 `json:"order_ids" validate:"required,min=1"`
}

// CreateIntentResponse ответ на создание payment intent
type CreateIntentResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	DeviceID        string `json:"device_id"`
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	MenuItemID int64           `json:"menu_item_id"`
	SizeID     int64           `json:"size_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	ItemName   string          `json:"item_name"`
	SizeName   string          `json:"size_name"`
}

// PaymentResponse платёжная часть заказа
type PaymentResponse struct {
	Kind            string `json:"kind"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	CardLastFour    string `json:"card_last_four,omitempty"`
	CardBrand       string `json:"card_brand,omitempty"`
	TransactionID   string `json:"transaction_id,omitempty"`
}

// OrderResponse представление заказа
type OrderResponse struct {
	ID               int64               `json:"id"`
	OrderNumber      string              `json:"order_number"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"payment_status"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	TotalAmountCents int64               `json:"total_amount_cents"`
	Currency         string              `json:"currency"`
	PaidAt           *time.Time          `json:"paid_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	CustomerInfo     CustomerInfo        `json:"customer_info"`
	AddressInfo      AddressInfo         `json:"address_info"`
	Instructions     string              `json:"order_instructions,omitempty"`
	PaymentInfo      PaymentResponse     `json:"payment_info"`
	Items            []OrderItemResponse `json:"items"`
}

// CreateOrderResponse ответ на оформление заказа
type CreateOrderResponse struct {
	Success  bool          `json:"success"`
	Order    OrderResponse `json:"order"`
	DeviceID string        `json:"device_id,omitempty"`
}

// CustomerResponse блок покупателя в my-orders
type CustomerResponse struct {
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MyOrdersResponse список заказов устройства
type MyOrdersResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Orders   []OrderResponse   `json:"orders"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// UpdateStatusResponse ответ на смену статуса
type UpdateStatusResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// BulkDeleteResponse ответ на массовое удаление
type BulkDeleteResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

func LinesToEntities(lines []OrderLine) []entities.OrderLine {
	result := make([]entities.OrderLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, entities.OrderLine{
			MenuItemID: line.MenuItemID,
			SizeID:     line.SizeID,
			Quantity:   line.Quantity,
		})
	}
	return result
}

func CreateOrderRequestToInput(req CreateOrderRequest, deviceToken string) service.CreateOrderInput {
	in := service.CreateOrderInput{
		DeviceToken: deviceToken,
		Customer: service.CustomerInfo{
			Name:  req.CustomerInfo.Name,
			Phone: req.CustomerInfo.Phone,
			Email: req.CustomerInfo.Email,
		},
		Address: service.AddressInfo{
			Line1:        req.AddressInfo.AddressLine1,
			Line2:        req.AddressInfo.AddressLine2,
			NoInterior:   req.AddressInfo.NoInterior,
			NoExterior:   req.AddressInfo.NoExterior,
			Instructions: req.AddressInfo.SpecialInstructions,
		},
		Instructions: req.OrderInstructions.SpecialInstructions,
		Lines:        LinesToEntities(req.Items),
	}

	switch {
	case req.PaymentInfo.PaymentIntentID != "":
		in.Payment.IntentID = req.PaymentInfo.PaymentIntentID
	case req.PaymentInfo.TransactionID != "" || req.PaymentInfo.CardLastFour != "":
		in.Payment.Card = &service.CardInfo{
			LastFour:      req.PaymentInfo.CardLastFour,
			Brand:         req.PaymentInfo.CardBrand,
			TransactionID: req.PaymentInfo.TransactionID,
		}
	}
	return in
}

func OrderEntityToJSON(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: it.MenuItemID,
			SizeID:     it.SizeID,
			Quantity:   it.Quantity,
			Price:      it.Price,
			ItemName:   it.ItemName,
			SizeName:   it.SizeName,
		})
	}

	payment := PaymentResponse{Kind: string(o.Payment.Kind)}
	if o.Payment.Intent != nil {
		payment.PaymentIntentID = o.Payment.Intent.IntentID
	}
	if o.Payment.Card != nil {
		payment.CardLastFour = o.Payment.Card.LastFour
		payment.CardBrand = o.Payment.Card.Brand
		payment.TransactionID = o.Payment.Card.TransactionID
	}

	return OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		Status:           string(o.Status),
		PaymentStatus:    string(o.PaymentStatus),
		TotalAmount:      o.TotalAmount,
		TotalAmountCents: o.TotalAmountCents,
		Currency:         o.Currency,
		PaidAt:           o.PaidAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		CustomerInfo: CustomerInfo{
			Name:  o.CustomerName,
			Phone: o.CustomerPhone,
			Email: o.CustomerEmail,
		},
		AddressInfo: AddressInfo{
			AddressLine1:        o.Delivery.Line1,
			AddressLine2:        o.Delivery.Line2,
			NoInterior:          o.Delivery.NoInterior,
			NoExterior:          o.Delivery.NoExterior,
			SpecialInstructions: o.Delivery.Instructions,
		},
		Instructions: o.Instructions,
		PaymentInfo:  payment,
		Items:        items,
	}
}

func OrdersToJSON(orders []entities.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}
