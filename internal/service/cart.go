package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/dto"
	"github.com/flicky/go-shop-api/internal/model"
)

var ErrInvalidDiscountCode = errors.New("invalid discount code")

type CartService struct {
	shops   *ShopStore
	catalog *CatalogService
}

func NewCartService(shops *ShopStore, catalog *CatalogService) *CartService {
	return &CartService{shops: shops, catalog: catalog}
}

func (s *CartService) GetCart(_ context.Context, shopperID uuid.UUID) *dto.CartResponse {
	sh := s.shops.Get(shopperID)
	resp := &dto.CartResponse{Items: sh.Cart(), Summary: sh.Summary()}
	if d, ok := sh.ActiveDiscount(); ok {
		resp.Discount = &d
	}
	return resp
}

func (s *CartService) AddItem(ctx context.Context, shopperID uuid.UUID, productID string) (model.CartEntry, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return model.CartEntry{}, err
	}
	return s.shops.Get(shopperID).AddToCart(*product), nil
}

// RemoveItem drops one cart entry. Unknown ids are ignored.
func (s *CartService) RemoveItem(_ context.Context, shopperID uuid.UUID, cartItemID string) {
	s.shops.Get(shopperID).RemoveFromCart(cartItemID)
}

// ApplyDiscount activates code for the shopper. A miss clears whatever
// discount was active and returns ErrInvalidDiscountCode.
func (s *CartService) ApplyDiscount(ctx context.Context, shopperID uuid.UUID, code string) (*dto.CartResponse, error) {
	if !s.shops.Get(shopperID).ApplyDiscount(code) {
		return nil, ErrInvalidDiscountCode
	}
	return s.GetCart(ctx, shopperID), nil
}
