package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	shops *ShopStore
}

func NewOrderService(shops *ShopStore) *OrderService {
	return &OrderService{shops: shops}
}

func (s *OrderService) GetByID(_ context.Context, shopperID uuid.UUID, orderID string) (*model.Order, error) {
	order, ok := s.shops.Get(shopperID).Order(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (s *OrderService) ListByShopper(_ context.Context, shopperID uuid.UUID) []model.Order {
	return s.shops.Get(shopperID).Orders()
}
