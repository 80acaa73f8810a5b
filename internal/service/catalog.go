package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flicky/go-shop-api/internal/model"
	"github.com/flicky/go-shop-api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

const productCacheTTL = 60 * time.Second

type CatalogService struct {
	catalogRepo repository.CatalogRepository
	redisClient *redis.Client
}

func NewCatalogService(catalogRepo repository.CatalogRepository, redisClient *redis.Client) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo, redisClient: redisClient}
}

func (s *CatalogService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	products, err := s.catalogRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Categories returns the distinct categories in catalog order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	cacheKey := "product:" + id

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var p model.Product
			if json.Unmarshal([]byte(cached), &p) == nil {
				return &p, nil
			}
		}
	}

	product, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return product, nil
}
