package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

// SeedProducts is the catalog the app ships with.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "XERJOFF, More Than Words Eau de Parfum, 50 ml",
			Price:       decimal.RequireFromString("180.35"),
			Category:    "Fragrance",
			ImageURL:    "https://co.nice-cdn.com/upload/image/product/large/default/xerjoff-more-than-words-eau-de-parfum-50-ml-532251-en.png",
			Rating:      4.5,
			RatingCount: 32,
		},
		{
			ID:          "2",
			Name:        "XERJOFF, Renaissance Eau de Parfum, 100 ml",
			Price:       decimal.RequireFromString("245.49"),
			Category:    "car",
			ImageURL:    "https://co.nice-cdn.com/upload/image/product/large/default/29246_46a3ded1.1024x1024.png",
			Rating:      4.3,
			RatingCount: 28,
		},
		{
			ID:          "3",
			Name:        "XERJOFF, ALEXANDRIA II Eau de Parfum, 100ml",
			Price:       decimal.RequireFromString("340.00"),
			Category:    "Fragrance",
			ImageURL:    "https://www.galaxus.ch/im/Files/6/7/6/1/9/4/6/0/3381.png",
			Rating:      4.7,
			RatingCount: 50,
		},
		{
			ID:          "4",
			Name:        "XERJOFF, Opera Eau de Parfum, 50 ml",
			Price:       decimal.RequireFromString("210.41"),
			Category:    "Fragrance",
			ImageURL:    "https://co.nice-cdn.com/upload/image/product/large/default/29281_c421677b.1024x1024.png",
			Rating:      4.6,
			RatingCount: 42,
		},
		{
			ID:          "5",
			Name:        "XERJOFF, Naxos Eau de Parfum, 100 ml",
			Price:       decimal.RequireFromString("245.49"),
			Category:    "Fragrance",
			ImageURL:    "https://co.nice-cdn.com/upload/image/product/large/default/29242_229ba6f7.1024x1024.png",
			Rating:      4.8,
			RatingCount: 36,
		},
	}
}

type memoryCatalogRepo struct {
	products []model.Product
}

// NewMemoryCatalogRepository serves a fixed product list in the given order.
func NewMemoryCatalogRepository(products []model.Product) CatalogRepository {
	return &memoryCatalogRepo{products: slices.Clone(products)}
}

func (r *memoryCatalogRepo) List(_ context.Context, f ProductFilter) ([]model.Product, error) {
	search := strings.ToLower(f.Search)
	var out []model.Product
	for _, p := range r.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryCatalogRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}
