package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/go-shop-api/internal/repository"
	"github.com/flicky/go-shop-api/internal/shop"
)

func newTestProductService() *ProductService {
	return NewProductService(newTestShops(), NewCatalogService(newMockCatalogRepo(), nil))
}

func TestProductService_ListIncludesSeedRatings(t *testing.T) {
	svc := newTestProductService()
	resp, err := svc.List(context.Background(), uuid.New(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Equal(t, 5, resp.Total)
	assert.Equal(t, 32, resp.Products[0].EffectiveRating.Count)
	assert.Nil(t, resp.Products[0].UserRating)
}

func TestProductService_Rate(t *testing.T) {
	svc := newTestProductService()
	ctx := context.Background()
	shopperID := uuid.New()

	resp, err := svc.Rate(ctx, shopperID, "1", 5)
	require.NoError(t, err)
	assert.InDelta(t, 4.515, resp.EffectiveRating.Rating, 0.001)
	assert.Equal(t, 33, resp.EffectiveRating.Count)
	require.NotNil(t, resp.UserRating)
	assert.Equal(t, 5, *resp.UserRating)

	other, err := svc.GetByID(ctx, uuid.New(), "1")
	require.NoError(t, err)
	assert.Equal(t, 32, other.EffectiveRating.Count)
}

func TestProductService_RateOutOfRange(t *testing.T) {
	svc := newTestProductService()
	_, err := svc.Rate(context.Background(), uuid.New(), "1", 6)
	assert.ErrorIs(t, err, shop.ErrInvalidRating)
}

func TestProductService_RateUnknownProduct(t *testing.T) {
	svc := newTestProductService()
	_, err := svc.Rate(context.Background(), uuid.New(), "404", 3)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
