package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/go-shop-api/internal/model"
)

type mockSalesRepo struct {
	sales []model.ProductSales
	err   error
}

func (m *mockSalesRepo) RecordOrder(_ context.Context, _ model.OrderMessage) error { return nil }

func (m *mockSalesRepo) List(_ context.Context) ([]model.ProductSales, error) {
	return m.sales, m.err
}

func TestStatsService_Sales(t *testing.T) {
	repo := &mockSalesRepo{sales: []model.ProductSales{
		{ProductID: "3", Units: 4, Revenue: price("1360.00")},
		{ProductID: "1", Units: 1, Revenue: price("180.35")},
	}}
	resp, err := NewStatsService(repo).Sales(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "3", resp.Products[0].ProductID)
}

func TestStatsService_Unavailable(t *testing.T) {
	_, err := NewStatsService(nil).Sales(context.Background())
	assert.ErrorIs(t, err, ErrStatsUnavailable)
}

func TestStatsService_RepoError(t *testing.T) {
	_, err := NewStatsService(&mockSalesRepo{err: errors.New("redis down")}).Sales(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStatsUnavailable)
}
