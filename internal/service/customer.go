package service

import (
	"context"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
	"github.com/google/uuid"
)

// ResolveCustomer находит или создаёт покупателя по device token.
// Пустой токен означает первый визит без идентификатора - генерируем новый.
// Непустой, но неизвестный токен сохраняется как есть: клиент уже
// идентифицировал себя, и эту непрерывность надо сохранить.
//
// Upsert в репозитории атомарный, так что два конкурентных запроса с одним
// токеном не создадут двух покупателей.
func (s *orderService) ResolveCustomer(ctx context.Context, deviceToken string) (entities.Customer, error) {
	if deviceToken == "" {
		deviceToken = uuid.NewString()
	}
	return s.repo.GetOrCreateCustomer(ctx, deviceToken)
}
