package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/dto"
)

type WishlistService struct {
	shops   *ShopStore
	catalog *CatalogService
}

func NewWishlistService(shops *ShopStore, catalog *CatalogService) *WishlistService {
	return &WishlistService{shops: shops, catalog: catalog}
}

func (s *WishlistService) List(_ context.Context, shopperID uuid.UUID) *dto.WishlistResponse {
	return &dto.WishlistResponse{Items: s.shops.Get(shopperID).Wishlist()}
}

func (s *WishlistService) Toggle(ctx context.Context, shopperID uuid.UUID, productID string) (*dto.WishlistToggleResponse, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	added := s.shops.Get(shopperID).ToggleWishlist(*product)
	return &dto.WishlistToggleResponse{ProductID: product.ID, InWishlist: added}, nil
}

func (s *WishlistService) MoveToCart(ctx context.Context, shopperID uuid.UUID, productID string) (*dto.MoveToCartResponse, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	entry, removed := s.shops.Get(shopperID).MoveToCart(*product)
	return &dto.MoveToCartResponse{Item: entry, RemovedFromWishlist: removed}, nil
}
