package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var orderColumns = []string{
	"id", "order_number", "customer_id",
	"customer_name", "customer_phone", "customer_email",
	"address_line_1", "address_line_2", "no_interior", "no_exterior",
	"address_instructions", "order_instructions",
	"status", "payment_status",
	"payment_kind", "payment_intent_id", "card_last_four", "card_brand", "card_transaction_id",
	"total_amount", "total_amount_cents", "currency",
	"gateway_customer_id", "paid_at", "created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetOrCreateCustomer атомарно находит или создаёт покупателя по токену.
// DO UPDATE вместо DO NOTHING, чтобы RETURNING отдавал строку и при конфликте,
// заодно обновляя last_seen.
func (r *postgresRepo) GetOrCreateCustomer(ctx context.Context, deviceToken string) (entities.Customer, error) {
	query, args := r.qb.Insert("customers").
		Columns("device_token").
		Values(deviceToken).
		Suffix(`ON CONFLICT (device_token) DO UPDATE SET last_seen = now()
			RETURNING id, device_token, gateway_customer_id, created_at, last_seen`).
		MustSql()

	var customer Customer
	if err := r.getContext(ctx, &customer, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get or create customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *postgresRepo) GetCustomerByToken(ctx context.Context, deviceToken string) (entities.Customer, error) {
	query, args := r.qb.Select("id", "device_token", "gateway_customer_id", "created_at", "last_seen").
		From("customers").
		Where(sq.Eq{"device_token": deviceToken}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *postgresRepo) SetGatewayCustomerID(ctx context.Context, customerID int64, gatewayCustomerID string) error {
	query, args := r.qb.Update("customers").
		Set("gateway_customer_id", gatewayCustomerID).
		Where(sq.Eq{"id": customerID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set gateway customer id: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetItemSize(ctx context.Context, menuItemID, sizeID int64) (entities.CatalogSnapshot, error) {
	query, args := r.qb.Select(
		"mi.id AS menu_item_id", "s.id AS size_id",
		"mi.name AS item_name", "s.name AS size_name", "s.price AS unit_price").
		From("sizes s").
		Join("menu_items mi ON mi.id = s.menu_item_id").
		Where(sq.Eq{"mi.id": menuItemID, "s.id": sizeID}).
		MustSql()

	var snapshot CatalogSnapshot
	err := r.getContext(ctx, &snapshot, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CatalogSnapshot{}, entities.ErrUnknownCatalogEntry
	}
	if err != nil {
		return entities.CatalogSnapshot{}, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return CatalogSnapshotToEntity(snapshot), nil
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	var paymentIntentID, cardLastFour, cardBrand, cardTransactionID sql.NullString
	switch o.Payment.Kind {
	case entities.PaymentKindCard:
		if o.Payment.Card != nil {
			cardLastFour = nullString(o.Payment.Card.LastFour)
			cardBrand = nullString(o.Payment.Card.Brand)
			cardTransactionID = nullString(o.Payment.Card.TransactionID)
		}
	default:
		if o.Payment.Intent != nil {
			paymentIntentID = nullString(o.Payment.Intent.IntentID)
		}
	}

	var paidAt sql.NullTime
	if o.PaidAt != nil {
		paidAt = sql.NullTime{Time: *o.PaidAt, Valid: true}
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"order_number", "customer_id",
			"customer_name", "customer_phone", "customer_email",
			"address_line_1", "address_line_2", "no_interior", "no_exterior",
			"address_instructions", "order_instructions",
			"status", "payment_status",
			"payment_kind", "payment_intent_id", "card_last_four", "card_brand", "card_transaction_id",
			"total_amount", "total_amount_cents", "currency",
			"gateway_customer_id", "paid_at",
		).
		Values(
			o.OrderNumber, o.CustomerID,
			o.CustomerName, o.CustomerPhone, nullString(o.CustomerEmail),
			o.Delivery.Line1, nullString(o.Delivery.Line2), nullString(o.Delivery.NoInterior), nullString(o.Delivery.NoExterior),
			nullString(o.Delivery.Instructions), nullString(o.Instructions),
			string(o.Status), string(o.PaymentStatus),
			string(o.Payment.Kind), paymentIntentID, cardLastFour, cardBrand, cardTransactionID,
			o.TotalAmount, o.TotalAmountCents, o.Currency,
			nullString(o.GatewayCustomerID), paidAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		MustSql()

	var row struct {
		ID        int64        `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	err := r.getContext(ctx, &row, query, args...)
	if isUniqueViolation(err, "orders_order_number_key") {
		return entities.Order{}, entities.ErrOrderNumberTaken
	}
	if isUniqueViolation(err, "orders_payment_intent_id_key") {
		return entities.Order{}, fmt.Errorf("%w: intent is already attached to an order", entities.ErrInvalidIntentState)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	o.ID = row.ID
	o.CreatedAt = row.CreatedAt.Time
	o.UpdatedAt = row.UpdatedAt.Time
	return o, nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "menu_item_id", "size_id", "quantity", "price", "item_name", "size_name")

	for _, it := range items {
		q = q.Values(orderID, it.MenuItemID, it.SizeID, it.Quantity, it.Price, it.ItemName, it.SizeName)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select("id", "order_id", "menu_item_id", "size_id", "quantity", "price", "item_name", "size_name").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[int64][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

// UpdateOrderStatus условный переход: строка меняется только если заказ
// всё ещё в ожидаемом статусе from.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID int64, from, to entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrInvalidTransition
	}
	return nil
}

// MarkOrderPaid условный переход в paid, применяется только из payment_pending.
// Повторная доставка вебхука и отставший failed не трогают уже оплаченный заказ.
func (r *postgresRepo) MarkOrderPaid(ctx context.Context, orderID int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderStatusPaid)).
		Set("payment_status", string(entities.PaymentStatusSucceeded)).
		Set("paid_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(entities.OrderStatusPaymentPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) MarkOrderPaymentFailed(ctx context.Context, orderID int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderStatusPaymentFailed)).
		Set("payment_status", string(entities.PaymentStatusCanceled)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(entities.OrderStatusPaymentPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order payment failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark order payment failed: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		Where(sq.NotEq{"status": []string{
			string(entities.OrderStatusAssigned),
			string(entities.OrderStatusPicked),
			string(entities.OrderStatusDelivered),
		}}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotDeletable
	}
	return nil
}

func (r *postgresRepo) BulkDeletePendingOrders(ctx context.Context, orderIDs []int64) (int64, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{
			"id":     orderIDs,
			"status": string(entities.OrderStatusPaymentPending),
		}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete orders: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete orders: %w", err)
	}
	return affected, nil
}

func (r *postgresRepo) SavePaymentIntent(ctx context.Context, p entities.PaymentIntent) error {
	var orderID sql.NullInt64
	if p.OrderID != nil {
		orderID = sql.NullInt64{Int64: *p.OrderID, Valid: true}
	}

	query, args := r.qb.Insert("payment_intents").
		Columns("customer_id", "gateway_intent_id", "amount_cents", "currency", "status", "order_id").
		Values(p.CustomerID, p.GatewayIntentID, p.AmountCents, p.Currency, string(p.Status), orderID).
		Suffix("ON CONFLICT (gateway_intent_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payment intent: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetPaymentIntentByGatewayID(ctx context.Context, gatewayIntentID string) (entities.PaymentIntent, error) {
	query, args := r.qb.Select("id", "customer_id", "gateway_intent_id", "amount_cents", "currency", "status", "order_id", "created_at", "updated_at").
		From("payment_intents").
		Where(sq.Eq{"gateway_intent_id": gatewayIntentID}).
		MustSql()

	var intent PaymentIntent
	err := r.getContext(ctx, &intent, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PaymentIntent{}, entities.ErrUnknownIntent
	}
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("failed to get payment intent: %w", err)
	}
	return PaymentIntentToEntity(intent), nil
}

// LinkPaymentIntent привязывает intent к заказу. Перепривязка запрещена:
// уже занятый или неизвестный intent не обновляет ни одной строки.
func (r *postgresRepo) LinkPaymentIntent(ctx context.Context, gatewayIntentID string, orderID int64) error {
	query, args := r.qb.Update("payment_intents").
		Set("order_id", orderID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"gateway_intent_id": gatewayIntentID, "order_id": nil}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to link payment intent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to link payment intent: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: intent %s is not linkable", entities.ErrInvalidIntentState, gatewayIntentID)
	}
	return nil
}

func (r *postgresRepo) MarkPaymentIntentSucceeded(ctx context.Context, gatewayIntentID string) (bool, error) {
	query, args := r.qb.Update("payment_intents").
		Set("status", string(entities.PaymentStatusSucceeded)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"gateway_intent_id": gatewayIntentID}).
		Where(sq.NotEq{"status": string(entities.PaymentStatusSucceeded)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment intent succeeded: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark payment intent succeeded: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) MarkPaymentIntentCanceled(ctx context.Context, gatewayIntentID string) (bool, error) {
	query, args := r.qb.Update("payment_intents").
		Set("status", string(entities.PaymentStatusCanceled)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"gateway_intent_id": gatewayIntentID}).
		Where(sq.NotEq{"status": []string{
			string(entities.PaymentStatusSucceeded),
			string(entities.PaymentStatusCanceled),
		}}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment intent canceled: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark payment intent canceled: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "menu_item_id", "size_id", "quantity", "price", "item_name", "size_name").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && string(pqErr.Constraint) == constraint
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
