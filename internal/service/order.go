package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/utils"
)

type OrderRepo interface {
	GetOrCreateCustomer(ctx context.Context, deviceToken string) (entities.Customer, error)
	GetCustomerByToken(ctx context.Context, deviceToken string) (entities.Customer, error)
	SetGatewayCustomerID(ctx context.Context, customerID int64, gatewayCustomerID string) error

	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	SaveOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, from, to entities.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID int64) error
	BulkDeletePendingOrders(ctx context.Context, orderIDs []int64) (int64, error)

	SavePaymentIntent(ctx context.Context, intent entities.PaymentIntent) error
	GetPaymentIntentByGatewayID(ctx context.Context, gatewayIntentID string) (entities.PaymentIntent, error)
	LinkPaymentIntent(ctx context.Context, gatewayIntentID string, orderID int64) error
}

type CatalogReader interface {
	GetItemSize(ctx context.Context, menuItemID, sizeID int64) (entities.CatalogSnapshot, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type PaymentGateway interface {
	CreateCustomer(ctx context.Context, deviceToken string) (string, error)
	CreateIntent(ctx context.Context, amountCents int64, currency, gatewayCustomerID string) (entities.GatewayIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (entities.GatewayIntent, error)
	CancelIntent(ctx context.Context, intentID string) (entities.PaymentStatus, error)
}

type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

type AddressInfo struct {
	Line1        string
	Line2        string
	NoInterior   string
	NoExterior   string
	Instructions string
}

type CardInfo struct {
	LastFour      string
	Brand         string
	TransactionID string
}

// PaymentInfo: либо intent, полученный через create-payment-intent,
// либо карточные реквизиты по старому пути.
type PaymentInfo struct {
	IntentID string
	Card     *CardInfo
}

type CreateOrderInput struct {
	DeviceToken  string
	Customer     CustomerInfo
	Address      AddressInfo
	Instructions string
	Payment      PaymentInfo
	Lines        []entities.OrderLine
}

type IntentPrefetch struct {
	IntentID     string
	ClientSecret string
	AmountCents  int64
	Currency     string
	DeviceToken  string
}

const (
	orderNumberAttempts = 3
	cancelTimeout       = 10 * time.Second
)

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   CatalogReader
	cache     Cache
	gateway   PaymentGateway
	currency  string
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	catalog CatalogReader,
	cache Cache,
	gateway PaymentGateway,
	currency string,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		cache:     cache,
		gateway:   gateway,
		currency:  currency,
	}
}

// CreatePaymentIntent предварительное создание intent'а перед оформлением
// заказа. Сумма считается по каталогу, никогда не берётся от клиента.
func (s *orderService) CreatePaymentIntent(ctx context.Context, deviceToken string, lines []entities.OrderLine) (IntentPrefetch, error) {
	_, cents, _, err := s.computeTotals(ctx, lines)
	if err != nil {
		return IntentPrefetch{}, err
	}

	customer, err := s.ResolveCustomer(ctx, deviceToken)
	if err != nil {
		return IntentPrefetch{}, err
	}

	gatewayCustomerID, err := s.ensureGatewayCustomer(ctx, customer)
	if err != nil {
		return IntentPrefetch{}, err
	}

	intent, err := s.gateway.CreateIntent(ctx, cents, s.currency, gatewayCustomerID)
	if err != nil {
		return IntentPrefetch{}, err
	}

	record := entities.PaymentIntent{
		CustomerID:      customer.ID,
		GatewayIntentID: intent.ID,
		AmountCents:     intent.AmountCents,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}
	if err := s.repo.SavePaymentIntent(ctx, record); err != nil {
		s.cancelIntentAsync(intent.ID)
		return IntentPrefetch{}, err
	}

	return IntentPrefetch{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.AmountCents,
		Currency:     intent.Currency,
		DeviceToken:  customer.DeviceToken,
	}, nil
}

// CreateOrder проводит заказ через создание/переиспользование intent'а и
// атомарно сохраняет агрегат. Вся валидация - до первого похода в шлюз.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	total, cents, items, err := s.computeTotals(ctx, in.Lines)
	if err != nil {
		return entities.Order{}, err
	}

	customer, err := s.ResolveCustomer(ctx, in.DeviceToken)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		CustomerID:    customer.ID,
		CustomerName:  in.Customer.Name,
		CustomerPhone: in.Customer.Phone,
		CustomerEmail: in.Customer.Email,
		Delivery: entities.Delivery{
			Line1:        in.Address.Line1,
			Line2:        in.Address.Line2,
			NoInterior:   in.Address.NoInterior,
			NoExterior:   in.Address.NoExterior,
			Instructions: in.Address.Instructions,
		},
		Instructions:      in.Instructions,
		TotalAmount:       total,
		TotalAmountCents:  cents,
		Currency:          s.currency,
		GatewayCustomerID: customer.GatewayCustomerID,
		Items:             items,
	}

	createdIntent := false
	intentID := ""

	switch {
	case in.Payment.Card != nil:
		// Старый карточный путь: платёж уже проведён вне intent-цикла.
		now := time.Now().UTC()
		order.Status = entities.OrderStatusPaid
		order.PaymentStatus = entities.PaymentStatusSucceeded
		order.PaidAt = &now
		order.Payment = entities.OrderPayment{
			Kind: entities.PaymentKindCard,
			Card: &entities.CardPayment{
				LastFour:      in.Payment.Card.LastFour,
				Brand:         in.Payment.Card.Brand,
				TransactionID: in.Payment.Card.TransactionID,
			},
		}

	case in.Payment.IntentID != "":
		// Intent должен быть известен локально и ещё не привязан к заказу,
		// иначе один платёж оплатил бы два заказа.
		record, err := s.repo.GetPaymentIntentByGatewayID(ctx, in.Payment.IntentID)
		if errors.Is(err, entities.ErrUnknownIntent) {
			return entities.Order{}, fmt.Errorf("%w: intent %s is not tracked",
				entities.ErrInvalidIntentState, in.Payment.IntentID)
		}
		if err != nil {
			return entities.Order{}, err
		}
		if record.OrderID != nil {
			return entities.Order{}, fmt.Errorf("%w: intent %s is already attached to an order",
				entities.ErrInvalidIntentState, in.Payment.IntentID)
		}

		intent, err := s.gateway.RetrieveIntent(ctx, in.Payment.IntentID)
		if err != nil {
			return entities.Order{}, err
		}
		if intent.AmountCents != cents {
			return entities.Order{}, fmt.Errorf("%w: intent amount %d, order total %d",
				entities.ErrAmountMismatch, intent.AmountCents, cents)
		}
		if !intent.Status.Reusable() {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrInvalidIntentState, intent.Status)
		}
		intentID = intent.ID
		order.Status = entities.OrderStatusPaymentPending
		order.PaymentStatus = intent.Status
		order.Payment = entities.OrderPayment{
			Kind:   entities.PaymentKindGatewayIntent,
			Intent: &entities.IntentPayment{IntentID: intent.ID},
		}

	default:
		gatewayCustomerID, err := s.ensureGatewayCustomer(ctx, customer)
		if err != nil {
			return entities.Order{}, err
		}
		intent, err := s.gateway.CreateIntent(ctx, cents, s.currency, gatewayCustomerID)
		if err != nil {
			return entities.Order{}, err
		}
		record := entities.PaymentIntent{
			CustomerID:      customer.ID,
			GatewayIntentID: intent.ID,
			AmountCents:     intent.AmountCents,
			Currency:        intent.Currency,
			Status:          intent.Status,
		}
		if err := s.repo.SavePaymentIntent(ctx, record); err != nil {
			s.cancelIntentAsync(intent.ID)
			return entities.Order{}, err
		}
		createdIntent = true
		intentID = intent.ID
		order.Status = entities.OrderStatusPaymentPending
		order.PaymentStatus = intent.Status
		order.Payment = entities.OrderPayment{
			Kind:   entities.PaymentKindGatewayIntent,
			Intent: &entities.IntentPayment{IntentID: intent.ID},
		}
	}

	created, err := s.persistOrder(ctx, order, intentID)
	if err != nil {
		// Заказ не создан - подчищаем только что созданный intent.
		// Ошибка отмены не подменяет ошибку создания заказа.
		if createdIntent {
			s.cancelIntentAsync(intentID)
		}
		return entities.Order{}, err
	}

	s.logger.Info("order created",
		slog.String("order_number", created.OrderNumber),
		slog.Int64("total_cents", created.TotalAmountCents),
	)
	return created, nil
}

// persistOrder сохраняет заказ и снапшоты позиций одной транзакцией.
// Номер заказа перегенерируется при коллизии уникального индекса.
func (s *orderService) persistOrder(ctx context.Context, order entities.Order, intentID string) (entities.Order, error) {
	var created entities.Order

	attempt := func() error {
		order.OrderNumber = newOrderNumber()
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			saved, err := s.repo.CreateOrder(ctx, order)
			if err != nil {
				return err
			}
			if err := s.repo.SaveOrderItems(ctx, saved.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
			if intentID != "" {
				if err := s.repo.LinkPaymentIntent(ctx, intentID, saved.ID); err != nil {
					return err
				}
			}
			created = saved
			return nil
		})
	}

	err := attempt()
	for i := 1; i < orderNumberAttempts && errors.Is(err, entities.ErrOrderNumberTaken); i++ {
		err = attempt()
	}
	if err != nil {
		return entities.Order{}, err
	}

	created.Items = order.Items
	return created, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID int64, deviceToken string, admin bool) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if admin {
		return order, nil
	}

	customer, err := s.repo.GetCustomerByToken(ctx, deviceToken)
	if errors.Is(err, entities.ErrCustomerNotFound) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, err
	}
	if customer.ID != order.CustomerID {
		// чужой заказ неотличим от несуществующего
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) MyOrders(ctx context.Context, deviceToken string) (entities.Customer, []entities.Order, error) {
	customer, err := s.repo.GetCustomerByToken(ctx, deviceToken)
	if errors.Is(err, entities.ErrCustomerNotFound) {
		return entities.Customer{}, []entities.Order{}, nil
	}
	if err != nil {
		return entities.Customer{}, nil, err
	}

	orders, err := s.repo.ListOrdersByCustomer(ctx, customer.ID)
	if err != nil {
		return entities.Customer{}, nil, err
	}
	return customer, orders, nil
}

// Ручные переходы статуса (админка). paid недостижим вручную,
// туда заказ переводит только реконсилер вебхуков.
var manualTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusAssigned:  {entities.OrderStatusPaid},
	entities.OrderStatusPicked:    {entities.OrderStatusAssigned},
	entities.OrderStatusDelivered: {entities.OrderStatusPicked},
	entities.OrderStatusCancelled: {
		entities.OrderStatusPaymentPending,
		entities.OrderStatusPaid,
		entities.OrderStatusPaymentFailed,
	},
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	allowed := false
	for _, from := range manualTransitions[status] {
		if order.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, status)
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderID, order.Status, status); err != nil {
		return entities.Order{}, err
	}
	order.Status = status
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64, deviceToken string, admin bool) error {
	order, err := s.GetOrder(ctx, orderID, deviceToken, admin)
	if err != nil {
		return err
	}
	if !order.Status.Deletable() {
		return entities.ErrOrderNotDeletable
	}
	return s.repo.DeleteOrder(ctx, orderID)
}

func (s *orderService) BulkDeleteOrders(ctx context.Context, orderIDs []int64) (int64, error) {
	return s.repo.BulkDeletePendingOrders(ctx, orderIDs)
}

func (s *orderService) ensureGatewayCustomer(ctx context.Context, customer entities.Customer) (string, error) {
	if customer.GatewayCustomerID != "" {
		return customer.GatewayCustomerID, nil
	}

	gatewayCustomerID, err := s.gateway.CreateCustomer(ctx, customer.DeviceToken)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetGatewayCustomerID(ctx, customer.ID, gatewayCustomerID); err != nil {
		return "", err
	}
	return gatewayCustomerID, nil
}

// Компенсация fire-and-forget: не задерживает и не меняет ответ клиенту.
func (s *orderService) cancelIntentAsync(intentID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cancelTimeout)
		defer cancel()

		if _, err := s.gateway.CancelIntent(ctx, intentID); err != nil {
			s.logger.Error("failed to cancel orphaned payment intent",
				slog.String("intent_id", intentID),
				slog.Any("error", err),
			)
		}
	}()
}

func newOrderNumber() string {
	suffix := make([]byte, 3)
	rand.Read(suffix)
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), hex.EncodeToString(suffix))
}
