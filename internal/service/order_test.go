package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/delivery-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/delivery-order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	repo    *mocks.MockOrderRepo
	catalog *mocks.MockCatalogReader
	cache   *mocks.MockCache
	gateway *mocks.MockPaymentGateway
	tx      *txMocks.MockManager
}

type orderAPI interface {
	CreatePaymentIntent(ctx context.Context, deviceToken string, lines []entities.OrderLine) (service.IntentPrefetch, error)
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID int64, deviceToken string, admin bool) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID int64, deviceToken string, admin bool) error
}

func newOrderService(t *testing.T) (orderAPI, orderServiceMocks) {
	t.Helper()

	m := orderServiceMocks{
		repo:    mocks.NewMockOrderRepo(t),
		catalog: mocks.NewMockCatalogReader(t),
		cache:   mocks.NewMockCache(t),
		gateway: mocks.NewMockPaymentGateway(t),
		tx:      txMocks.NewMockManager(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, m.tx, m.repo, m.catalog, m.cache, m.gateway, "usd")
	return svc, m
}

// expectCatalog настраивает один поход в каталог мимо кэша:
// позиция 1/10 по 10.00, итого для qty=2 будет 2000 центов.
func expectCatalog(m orderServiceMocks) {
	snapshot := entities.CatalogSnapshot{
		MenuItemID: 1, SizeID: 10,
		ItemName: "Burger", SizeName: "Large",
		UnitPrice: decimal.RequireFromString("10.00"),
	}
	m.cache.EXPECT().Get("1:10").Return(nil, false)
	m.catalog.EXPECT().GetItemSize(mock.Anything, int64(1), int64(10)).Return(snapshot, nil)
	m.cache.EXPECT().Set("1:10", mock.Anything).Return()
}

func expectTxPassthrough(m orderServiceMocks) {
	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

// expectUnlinkedIntent: локальное зеркало intent'а существует и ещё не занято заказом.
func expectUnlinkedIntent(m orderServiceMocks, intentID string) {
	m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, intentID).Return(entities.PaymentIntent{
		CustomerID:      7,
		GatewayIntentID: intentID,
		AmountCents:     2000,
		Currency:        "usd",
		Status:          entities.PaymentStatusRequiresPaymentMethod,
	}, nil)
}

func testInput(payment service.PaymentInfo) service.CreateOrderInput {
	return service.CreateOrderInput{
		DeviceToken: "device-1",
		Customer:    service.CustomerInfo{Name: "Ann", Phone: "+15550100"},
		Address:     service.AddressInfo{Line1: "Main st", NoExterior: "5"},
		Payment:     payment,
		Lines:       []entities.OrderLine{{MenuItemID: 1, SizeID: 10, Quantity: 2}},
	}
}

var testCustomer = entities.Customer{ID: 7, DeviceToken: "device-1", GatewayCustomerID: "cus_1"}

func TestOrderService_CreateOrder_WithExistingIntent(t *testing.T) {
	svc, m := newOrderService(t)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	expectUnlinkedIntent(m, "pi_1")
	m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(entities.GatewayIntent{
		ID: "pi_1", AmountCents: 2000, Currency: "usd",
		Status: entities.PaymentStatusRequiresPaymentMethod,
	}, nil)

	expectTxPassthrough(m)
	m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = 100
			return o, nil
		})
	m.repo.EXPECT().SaveOrderItems(mock.Anything, int64(100), mock.Anything).Return(nil)
	m.repo.EXPECT().LinkPaymentIntent(mock.Anything, "pi_1", int64(100)).Return(nil)

	order, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_1"}))

	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, entities.OrderStatusPaymentPending, order.Status)
	assert.Equal(t, entities.PaymentKindGatewayIntent, order.Payment.Kind)
	require.NotNil(t, order.Payment.Intent)
	assert.Equal(t, "pi_1", order.Payment.Intent.IntentID)
	assert.Equal(t, int64(2000), order.TotalAmountCents)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Nil(t, order.PaidAt)
}

func TestOrderService_CreateOrder_AmountMismatch(t *testing.T) {
	testCases := []struct {
		name         string
		intentAmount int64
	}{
		{name: "intent below total", intentAmount: 1999},
		{name: "intent above total", intentAmount: 2001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)

			expectCatalog(m)
			m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
			expectUnlinkedIntent(m, "pi_1")
			m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(entities.GatewayIntent{
				ID: "pi_1", AmountCents: tc.intentAmount, Currency: "usd",
				Status: entities.PaymentStatusRequiresPaymentMethod,
			}, nil)

			_, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_1"}))

			assert.ErrorIs(t, err, entities.ErrAmountMismatch)
		})
	}
}

func TestOrderService_CreateOrder_IntentNotReusable(t *testing.T) {
	for _, status := range []entities.PaymentStatus{
		entities.PaymentStatusSucceeded,
		entities.PaymentStatusProcessing,
		entities.PaymentStatusCanceled,
		entities.PaymentStatusRequiresCapture,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, m := newOrderService(t)

			expectCatalog(m)
			m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
			expectUnlinkedIntent(m, "pi_1")
			m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(entities.GatewayIntent{
				ID: "pi_1", AmountCents: 2000, Currency: "usd", Status: status,
			}, nil)

			_, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_1"}))

			assert.ErrorIs(t, err, entities.ErrInvalidIntentState)
		})
	}
}

// Один intent не может оплатить два заказа: повторная отправка того же
// payment_intent_id после оформления первого заказа отклоняется ещё до
// похода в шлюз.
func TestOrderService_CreateOrder_IntentAlreadyAttached(t *testing.T) {
	svc, m := newOrderService(t)

	otherOrderID := int64(55)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_1").Return(entities.PaymentIntent{
		CustomerID:      7,
		GatewayIntentID: "pi_1",
		AmountCents:     2000,
		Currency:        "usd",
		Status:          entities.PaymentStatusRequiresPaymentMethod,
		OrderID:         &otherOrderID,
	}, nil)

	_, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_1"}))

	assert.ErrorIs(t, err, entities.ErrInvalidIntentState)
	m.gateway.AssertNotCalled(t, "RetrieveIntent", mock.Anything, mock.Anything)
	m.repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

// Intent без локального зеркала непригоден: вебхук по нему никогда
// не нашёл бы заказ.
func TestOrderService_CreateOrder_UntrackedIntent(t *testing.T) {
	svc, m := newOrderService(t)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	m.repo.EXPECT().GetPaymentIntentByGatewayID(mock.Anything, "pi_ghost").
		Return(entities.PaymentIntent{}, entities.ErrUnknownIntent)

	_, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_ghost"}))

	assert.ErrorIs(t, err, entities.ErrInvalidIntentState)
	m.repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

// Проигрыш гонки за intent внутри транзакции откатывает заказ целиком.
func TestOrderService_CreateOrder_LinkRaceLost(t *testing.T) {
	svc, m := newOrderService(t)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	expectUnlinkedIntent(m, "pi_1")
	m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(entities.GatewayIntent{
		ID: "pi_1", AmountCents: 2000, Currency: "usd",
		Status: entities.PaymentStatusRequiresPaymentMethod,
	}, nil)

	expectTxPassthrough(m)
	m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = 104
			return o, nil
		})
	m.repo.EXPECT().SaveOrderItems(mock.Anything, int64(104), mock.Anything).Return(nil)
	m.repo.EXPECT().LinkPaymentIntent(mock.Anything, "pi_1", int64(104)).
		Return(entities.ErrInvalidIntentState)

	_, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_1"}))

	assert.ErrorIs(t, err, entities.ErrInvalidIntentState)
}

func TestOrderService_CreateOrder_LegacyCard(t *testing.T) {
	svc, m := newOrderService(t)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)

	expectTxPassthrough(m)
	m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = 101
			return o, nil
		})
	m.repo.EXPECT().SaveOrderItems(mock.Anything, int64(101), mock.Anything).Return(nil)

	order, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{
		Card: &service.CardInfo{LastFour: "4242", Brand: "visa", TransactionID: "txn_1"},
	}))

	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPaid, order.Status)
	assert.Equal(t, entities.PaymentStatusSucceeded, order.PaymentStatus)
	assert.Equal(t, entities.PaymentKindCard, order.Payment.Kind)
	require.NotNil(t, order.Payment.Card)
	assert.Equal(t, "4242", order.Payment.Card.LastFour)
	require.NotNil(t, order.PaidAt)
}

func TestOrderService_CreateOrder_NewIntent(t *testing.T) {
	svc, m := newOrderService(t)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	m.gateway.EXPECT().CreateIntent(mock.Anything, int64(2000), "usd", "cus_1").Return(entities.GatewayIntent{
		ID: "pi_new", ClientSecret: "secret", AmountCents: 2000, Currency: "usd",
		Status: entities.PaymentStatusRequiresPaymentMethod,
	}, nil)
	m.repo.EXPECT().SavePaymentIntent(mock.Anything, mock.Anything).Return(nil)

	expectTxPassthrough(m)
	m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = 102
			return o, nil
		})
	m.repo.EXPECT().SaveOrderItems(mock.Anything, int64(102), mock.Anything).Return(nil)
	m.repo.EXPECT().LinkPaymentIntent(mock.Anything, "pi_new", int64(102)).Return(nil)

	order, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{}))

	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPaymentPending, order.Status)
	require.NotNil(t, order.Payment.Intent)
	assert.Equal(t, "pi_new", order.Payment.Intent.IntentID)
}

// Если заказ не удалось сохранить, только что созданный intent отменяется,
// а клиенту возвращается исходная ошибка сохранения.
func TestOrderService_CreateOrder_CancelsIntentOnPersistFailure(t *testing.T) {
	svc, m := newOrderService(t)

	dbErr := errors.New("db error")
	canceled := make(chan struct{})

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	m.gateway.EXPECT().CreateIntent(mock.Anything, int64(2000), "usd", "cus_1").Return(entities.GatewayIntent{
		ID: "pi_new", AmountCents: 2000, Currency: "usd",
		Status: entities.PaymentStatusRequiresPaymentMethod,
	}, nil)
	m.repo.EXPECT().SavePaymentIntent(mock.Anything, mock.Anything).Return(nil)

	expectTxPassthrough(m)
	m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbErr)

	m.gateway.EXPECT().CancelIntent(mock.Anything, "pi_new").
		RunAndReturn(func(context.Context, string) (entities.PaymentStatus, error) {
			close(canceled)
			return entities.PaymentStatusCanceled, nil
		})

	_, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{}))

	assert.ErrorIs(t, err, dbErr)

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("expected orphaned intent to be canceled")
	}
}

func TestOrderService_CreateOrder_RetriesOrderNumber(t *testing.T) {
	svc, m := newOrderService(t)

	expectCatalog(m)
	m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
	expectUnlinkedIntent(m, "pi_1")
	m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(entities.GatewayIntent{
		ID: "pi_1", AmountCents: 2000, Currency: "usd",
		Status: entities.PaymentStatusRequiresPaymentMethod,
	}, nil)

	expectTxPassthrough(m)

	numbers := make([]string, 0, 2)
	m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			numbers = append(numbers, o.OrderNumber)
			if len(numbers) == 1 {
				return entities.Order{}, entities.ErrOrderNumberTaken
			}
			o.ID = 103
			return o, nil
		})
	m.repo.EXPECT().SaveOrderItems(mock.Anything, int64(103), mock.Anything).Return(nil)
	m.repo.EXPECT().LinkPaymentIntent(mock.Anything, "pi_1", int64(103)).Return(nil)

	order, err := svc.CreateOrder(context.Background(), testInput(service.PaymentInfo{IntentID: "pi_1"}))

	require.NoError(t, err)
	assert.Equal(t, int64(103), order.ID)
	require.Len(t, numbers, 2)
	assert.NotEqual(t, numbers[0], numbers[1], "collided order number must be regenerated")
}

func TestOrderService_CreatePaymentIntent(t *testing.T) {
	t.Run("creates gateway customer on first use", func(t *testing.T) {
		svc, m := newOrderService(t)

		fresh := entities.Customer{ID: 9, DeviceToken: "device-2"}

		expectCatalog(m)
		m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-2").Return(fresh, nil)
		m.gateway.EXPECT().CreateCustomer(mock.Anything, "device-2").Return("cus_new", nil)
		m.repo.EXPECT().SetGatewayCustomerID(mock.Anything, int64(9), "cus_new").Return(nil)
		m.gateway.EXPECT().CreateIntent(mock.Anything, int64(2000), "usd", "cus_new").Return(entities.GatewayIntent{
			ID: "pi_1", ClientSecret: "secret", AmountCents: 2000, Currency: "usd",
			Status: entities.PaymentStatusRequiresPaymentMethod,
		}, nil)
		m.repo.EXPECT().SavePaymentIntent(mock.Anything, mock.Anything).Return(nil)

		intent, err := svc.CreatePaymentIntent(context.Background(), "device-2",
			[]entities.OrderLine{{MenuItemID: 1, SizeID: 10, Quantity: 2}})

		require.NoError(t, err)
		assert.Equal(t, "pi_1", intent.IntentID)
		assert.Equal(t, "secret", intent.ClientSecret)
		assert.Equal(t, int64(2000), intent.AmountCents)
		assert.Equal(t, "device-2", intent.DeviceToken)
	})

	t.Run("cancels intent when local save fails", func(t *testing.T) {
		svc, m := newOrderService(t)

		dbErr := errors.New("db error")
		canceled := make(chan struct{})

		expectCatalog(m)
		m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
		m.gateway.EXPECT().CreateIntent(mock.Anything, int64(2000), "usd", "cus_1").Return(entities.GatewayIntent{
			ID: "pi_1", AmountCents: 2000, Currency: "usd",
			Status: entities.PaymentStatusRequiresPaymentMethod,
		}, nil)
		m.repo.EXPECT().SavePaymentIntent(mock.Anything, mock.Anything).Return(dbErr)
		m.gateway.EXPECT().CancelIntent(mock.Anything, "pi_1").
			RunAndReturn(func(context.Context, string) (entities.PaymentStatus, error) {
				close(canceled)
				return entities.PaymentStatusCanceled, nil
			})

		_, err := svc.CreatePaymentIntent(context.Background(), "device-1",
			[]entities.OrderLine{{MenuItemID: 1, SizeID: 10, Quantity: 2}})

		assert.ErrorIs(t, err, dbErr)

		select {
		case <-canceled:
		case <-time.After(time.Second):
			t.Fatal("expected orphaned intent to be canceled")
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		svc, m := newOrderService(t)

		expectCatalog(m)
		m.repo.EXPECT().GetOrCreateCustomer(mock.Anything, "device-1").Return(testCustomer, nil)
		m.gateway.EXPECT().CreateIntent(mock.Anything, int64(2000), "usd", "cus_1").
			Return(entities.GatewayIntent{}, entities.ErrGatewayUnavailable)

		_, err := svc.CreatePaymentIntent(context.Background(), "device-1",
			[]entities.OrderLine{{MenuItemID: 1, SizeID: 10, Quantity: 2}})

		assert.ErrorIs(t, err, entities.ErrGatewayUnavailable)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	order := entities.Order{ID: 100, CustomerID: 7, Status: entities.OrderStatusPaid}

	t.Run("admin bypasses device scoping", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()

		got, err := svc.GetOrder(context.Background(), 100, "", true)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("owner can read own order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		m.repo.EXPECT().GetCustomerByToken(mock.Anything, "device-1").
			Return(entities.Customer{ID: 7, DeviceToken: "device-1"}, nil).Once()

		got, err := svc.GetOrder(context.Background(), 100, "device-1", false)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("foreign order looks like missing", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		m.repo.EXPECT().GetCustomerByToken(mock.Anything, "device-other").
			Return(entities.Customer{ID: 8, DeviceToken: "device-other"}, nil).Once()

		_, err := svc.GetOrder(context.Background(), 100, "device-other", false)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("unknown device looks like missing", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()
		m.repo.EXPECT().GetCustomerByToken(mock.Anything, "ghost").
			Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()

		_, err := svc.GetOrder(context.Background(), 100, "ghost", false)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("transient read error is retried", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
			Return(entities.Order{}, errors.New("connection reset")).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).Return(order, nil).Once()

		got, err := svc.GetOrder(context.Background(), 100, "", true)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(404)).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.GetOrder(context.Background(), 404, "", true)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name       string
		from       entities.OrderStatus
		to         entities.OrderStatus
		wantUpdate bool
		wantErr    error
	}{
		{name: "paid to assigned", from: entities.OrderStatusPaid, to: entities.OrderStatusAssigned, wantUpdate: true},
		{name: "assigned to picked", from: entities.OrderStatusAssigned, to: entities.OrderStatusPicked, wantUpdate: true},
		{name: "picked to delivered", from: entities.OrderStatusPicked, to: entities.OrderStatusDelivered, wantUpdate: true},
		{name: "pending to cancelled", from: entities.OrderStatusPaymentPending, to: entities.OrderStatusCancelled, wantUpdate: true},
		{name: "pending to assigned rejected", from: entities.OrderStatusPaymentPending, to: entities.OrderStatusAssigned, wantErr: entities.ErrInvalidTransition},
		{name: "manual paid rejected", from: entities.OrderStatusPaymentPending, to: entities.OrderStatusPaid, wantErr: entities.ErrInvalidTransition},
		{name: "delivered to cancelled rejected", from: entities.OrderStatusDelivered, to: entities.OrderStatusCancelled, wantErr: entities.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)

			m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
				Return(entities.Order{ID: 100, Status: tc.from}, nil).Once()
			if tc.wantUpdate {
				m.repo.EXPECT().UpdateOrderStatus(mock.Anything, int64(100), tc.from, tc.to).Return(nil).Once()
			}

			order, err := svc.UpdateStatus(context.Background(), 100, tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, order.Status)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("pending order deleted by owner", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
			Return(entities.Order{ID: 100, CustomerID: 7, Status: entities.OrderStatusPaymentPending}, nil).Once()
		m.repo.EXPECT().GetCustomerByToken(mock.Anything, "device-1").
			Return(entities.Customer{ID: 7}, nil).Once()
		m.repo.EXPECT().DeleteOrder(mock.Anything, int64(100)).Return(nil).Once()

		err := svc.DeleteOrder(context.Background(), 100, "device-1", false)
		assert.NoError(t, err)
	})

	t.Run("order in fulfillment is not deletable", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, int64(100)).
			Return(entities.Order{ID: 100, CustomerID: 7, Status: entities.OrderStatusDelivered}, nil).Once()

		err := svc.DeleteOrder(context.Background(), 100, "", true)
		assert.ErrorIs(t, err, entities.ErrOrderNotDeletable)
	})
}
