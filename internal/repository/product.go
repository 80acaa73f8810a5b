package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

// ProductFilter narrows a catalog listing. Zero values match everything.
type ProductFilter struct {
	Search     string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// CatalogRepository is the read-only product source.
type CatalogRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

type pgCatalogRepo struct{ pool *pgxpool.Pool }

func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &pgCatalogRepo{pool: pool}
}

const productColumns = `id, name, price, category, image_url, rating, rating_count`

func (r *pgCatalogRepo) List(ctx context.Context, f ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND (cardinality($2::text[]) = 0 OR category = ANY($2::text[]))
		  AND ($3::numeric IS NULL OR price >= $3::numeric)
		  AND ($4::numeric IS NULL OR price <= $4::numeric)
		ORDER BY position, id`

	categories := f.Categories
	if categories == nil {
		categories = []string{}
	}

	rows, err := r.pool.Query(ctx, query, f.Search, categories, f.MinPrice, f.MaxPrice)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.ImageURL, &p.Rating, &p.RatingCount); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *pgCatalogRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p := &model.Product{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Category, &p.ImageURL, &p.Rating, &p.RatingCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}
