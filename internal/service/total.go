package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Шлюз не принимает суммы меньше одного минорного юнита,
// поэтому суб-центовые заказы поднимаются до минимума.
const minTotalCents = 1

var hundred = decimal.NewFromInt(100)

// CalculateTotal считает авторитетную сумму заказа по каталогу.
func (s *orderService) CalculateTotal(ctx context.Context, lines []entities.OrderLine) (decimal.Decimal, int64, error) {
	total, cents, _, err := s.computeTotals(ctx, lines)
	return total, cents, err
}

// computeTotals валидирует позиции и возвращает сумму в обоих представлениях
// плюс снапшоты позиций. Минорные юниты складываются по строкам:
// round(price*100)*qty, а не из итоговой десятичной суммы - иначе
// накапливается дрейф округления.
func (s *orderService) computeTotals(ctx context.Context, lines []entities.OrderLine) (decimal.Decimal, int64, []entities.OrderItem, error) {
	if len(lines) == 0 {
		return decimal.Zero, 0, nil, entities.ErrEmptyOrder
	}

	seen := make(map[[2]int64]struct{}, len(lines))
	total := decimal.Zero
	var cents int64
	items := make([]entities.OrderItem, 0, len(lines))

	for _, line := range lines {
		if line.Quantity < 1 {
			return decimal.Zero, 0, nil, fmt.Errorf("%w: got %d", entities.ErrInvalidQuantity, line.Quantity)
		}

		key := [2]int64{line.MenuItemID, line.SizeID}
		if _, ok := seen[key]; ok {
			return decimal.Zero, 0, nil, fmt.Errorf("%w: item %d size %d",
				entities.ErrDuplicateOrderLine, line.MenuItemID, line.SizeID)
		}
		seen[key] = struct{}{}

		snapshot, err := s.catalogSnapshot(ctx, line.MenuItemID, line.SizeID)
		if err != nil {
			return decimal.Zero, 0, nil, err
		}

		quantity := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(snapshot.UnitPrice.Mul(quantity))
		cents += snapshot.UnitPrice.Mul(hundred).Round(0).IntPart() * int64(line.Quantity)

		items = append(items, entities.OrderItem{
			MenuItemID: line.MenuItemID,
			SizeID:     line.SizeID,
			Quantity:   line.Quantity,
			Price:      snapshot.UnitPrice,
			ItemName:   snapshot.ItemName,
			SizeName:   snapshot.SizeName,
		})
	}

	if cents < minTotalCents {
		cents = minTotalCents
		total = decimal.New(minTotalCents, -2)
	}

	return total, cents, items, nil
}

// catalogSnapshot читает позицию каталога через LRU-кэш.
func (s *orderService) catalogSnapshot(ctx context.Context, menuItemID, sizeID int64) (entities.CatalogSnapshot, error) {
	key := fmt.Sprintf("%d:%d", menuItemID, sizeID)

	if data, ok := s.cache.Get(key); ok {
		var snapshot entities.CatalogSnapshot
		if err := snapshot.Unmarshal(data); err == nil {
			return snapshot, nil
		}
		// битую запись игнорируем и перечитываем из базы
	}

	snapshot, err := s.catalog.GetItemSize(ctx, menuItemID, sizeID)
	if err != nil {
		return entities.CatalogSnapshot{}, err
	}

	if data, err := snapshot.Marshal(); err == nil {
		s.cache.Set(key, data)
	}
	return snapshot, nil
}
