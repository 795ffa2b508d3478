package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/internal/service"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const deviceHeader = "X-Device-ID"

type OrderService interface {
	CreatePaymentIntent(ctx context.Context, deviceToken string, lines []entities.OrderLine) (service.IntentPrefetch, error)
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID int64, deviceToken string, admin bool) (entities.Order, error)
	MyOrders(ctx context.Context, deviceToken string) (entities.Customer, []entities.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID int64, deviceToken string, admin bool) error
	BulkDeleteOrders(ctx context.Context, orderIDs []int64) (int64, error)
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	svc        OrderService
	adminToken string
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, adminToken string) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		svc:        svc,
		adminToken: adminToken,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Post("/create-payment-intent", h.CreatePaymentIntent)
		r.Get("/my-orders", h.MyOrders)
		r.Delete("/bulk-delete", h.BulkDelete)
		r.Get("/{order_id}", h.GetOrder)
		r.Put("/{order_id}/status", h.UpdateStatus)
		r.Delete("/{order_id}", h.DeleteOrder)
	})
}

// CreatePaymentIntent создаёт платёжный intent до оформления заказа.
// @Summary      Создать payment intent
// @Description  Считает сумму корзины по каталогу и создаёт intent в платёжном шлюзе
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string               false  "Идентификатор устройства"
// @Param        payload      body      CreateIntentRequest  true   "Позиции корзины"
// @Success      200  {object}  CreateIntentResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректная корзина"
// @Failure      502  {object}  utils.ErrorResponse "Платёжный шлюз недоступен"
// @Router       /orders/create-payment-intent [post]
func (h *HTTPHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateIntentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	intent, err := h.svc.CreatePaymentIntent(ctx, r.Header.Get(deviceHeader), LinesToEntities(req.Items))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create payment intent")
		return
	}

	paymentIntentsCreated.Inc()
	utils.WriteJSON(w, CreateIntentResponse{
		PaymentIntentID: intent.IntentID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.AmountCents,
		Currency:        intent.Currency,
		DeviceID:        intent.DeviceToken,
	}, http.StatusOK)
}

// CreateOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Создаёт заказ, привязывая существующий intent или открывая новый
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Device-ID  header    string              false  "Идентификатор устройства"
// @Param        payload      body      CreateOrderRequest  true   "Данные заказа"
// @Success      201  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Intent не пригоден или сумма не совпадает"
// @Failure      502  {object}  utils.ErrorResponse "Платёжный шлюз недоступен"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToInput(req, r.Header.Get(deviceHeader)))
	if err != nil {
		orderCreationFailed.Inc()
		h.writeServiceError(ctx, w, err, "failed to create order")
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, CreateOrderResponse{
		Success:  true,
		Order:    OrderEntityToJSON(order),
		DeviceID: r.Header.Get(deviceHeader),
	}, http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ, если он принадлежит устройству или запрошен администратором
// @Tags         orders
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Идентификатор устройства"
// @Param        order_id     path      int     true   "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID, r.Header.Get(deviceHeader), h.isAdmin(r))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// MyOrders возвращает заказы устройства.
// @Summary      Заказы устройства
// @Description  Возвращает все заказы, оформленные с данного устройства
// @Tags         orders
// @Produce      json
// @Param        X-Device-ID  header    string  true  "Идентификатор устройства"
// @Success      200  {object}  MyOrdersResponse
// @Router       /orders/my-orders [get]
func (h *HTTPHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customer, orders, err := h.svc.MyOrders(ctx, r.Header.Get(deviceHeader))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list orders")
		return
	}

	resp := MyOrdersResponse{
		Success: true,
		Count:   len(orders),
		Orders:  OrdersToJSON(orders),
	}
	if customer.ID != 0 {
		resp.Customer = &CustomerResponse{
			DeviceID:  customer.DeviceToken,
			CreatedAt: customer.CreatedAt,
		}
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

// UpdateStatus переводит заказ в новый статус (только для администратора).
// @Summary      Сменить статус заказа
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Authorization  header    string               true  "Bearer токен администратора"
// @Param        order_id       path      int                  true  "Идентификатор заказа"
// @Param        payload        body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  UpdateStatusResponse
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id}/status [put]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.isAdmin(r) {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to update order status")
		return
	}

	utils.WriteJSON(w, UpdateStatusResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

// DeleteOrder удаляет заказ, ещё не взятый в работу.
// @Summary      Удалить заказ
// @Tags         orders
// @Produce      json
// @Param        X-Device-ID  header    string  false  "Идентификатор устройства"
// @Param        order_id     path      int     true   "Идентификатор заказа"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже в работе"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOrder(ctx, orderID, r.Header.Get(deviceHeader), h.isAdmin(r)); err != nil {
		h.writeServiceError(ctx, w, err, "failed to delete order")
		return
	}

	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// BulkDelete удаляет пачку заказов в статусе payment_pending (только для администратора).
// @Summary      Массовое удаление заказов
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Authorization  header    string             true  "Bearer токен администратора"
// @Param        payload        body      BulkDeleteRequest  true  "Идентификаторы заказов"
// @Success      200  {object}  BulkDeleteResponse
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Router       /orders/bulk-delete [delete]
func (h *HTTPHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.isAdmin(r) {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	var req BulkDeleteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	deleted, err := h.svc.BulkDeleteOrders(ctx, req.OrderIDs)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to bulk delete orders")
		return
	}

	utils.WriteJSON(w, BulkDeleteResponse{Success: true, Deleted: deleted}, http.StatusOK)
}

func (h *HTTPHandler) isAdmin(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) == 1
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrDuplicateOrderLine),
		errors.Is(err, entities.ErrUnknownCatalogEntry),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrOrderNotDeletable):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPermissionDenied):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAmountMismatch),
		errors.Is(err, entities.ErrInvalidIntentState):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrGatewayUnavailable):
		utils.WriteError(w, "payment gateway unavailable", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
