package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/dto"
	"github.com/flicky/go-shop-api/internal/model"
	"github.com/flicky/go-shop-api/internal/repository"
	"github.com/flicky/go-shop-api/internal/shop"
)

var ErrInvalidRating = shop.ErrInvalidRating

// ProductService decorates catalog products with the shopper's ratings.
type ProductService struct {
	shops   *ShopStore
	catalog *CatalogService
}

func NewProductService(shops *ShopStore, catalog *CatalogService) *ProductService {
	return &ProductService{shops: shops, catalog: catalog}
}

func (s *ProductService) List(ctx context.Context, shopperID uuid.UUID, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := s.catalog.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, s.toProductResponse(shopperID, p))
	}
	return &dto.ProductListResponse{Products: items, Total: len(items)}, nil
}

func (s *ProductService) GetByID(ctx context.Context, shopperID uuid.UUID, productID string) (*dto.ProductResponse, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := s.toProductResponse(shopperID, *product)
	return &resp, nil
}

func (s *ProductService) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoriesResponse{Categories: categories}, nil
}

// Rate records the shopper's star rating and returns the updated product view.
func (s *ProductService) Rate(ctx context.Context, shopperID uuid.UUID, productID string, stars int) (*dto.ProductResponse, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.shops.Get(shopperID).RateProduct(product.ID, stars); err != nil {
		return nil, fmt.Errorf("rate product %s: %w", product.ID, err)
	}
	resp := s.toProductResponse(shopperID, *product)
	return &resp, nil
}

func (s *ProductService) toProductResponse(shopperID uuid.UUID, p model.Product) dto.ProductResponse {
	sh := s.shops.Get(shopperID)
	resp := dto.ProductResponse{Product: p, EffectiveRating: sh.EffectiveRating(p)}
	if stars, ok := sh.UserRating(p.ID); ok {
		resp.UserRating = &stars
	}
	return resp
}
