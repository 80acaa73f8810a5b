package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

const (
	salesUnitsKey   = "sales:units"
	salesRevenueKey = "sales:revenue_cents"
)

// SalesRepository keeps running per-product sales counters.
type SalesRepository interface {
	RecordOrder(ctx context.Context, msg model.OrderMessage) error
	List(ctx context.Context) ([]model.ProductSales, error)
}

type redisSalesRepo struct{ client *redis.Client }

func NewSalesRepository(client *redis.Client) SalesRepository {
	return &redisSalesRepo{client: client}
}

func (r *redisSalesRepo) RecordOrder(ctx context.Context, msg model.OrderMessage) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, line := range msg.Items {
			pipe.HIncrBy(ctx, salesUnitsKey, line.ProductID, 1)
			pipe.HIncrBy(ctx, salesRevenueKey, line.ProductID, line.Price.Round(2).Shift(2).IntPart())
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record sales: %w", err)
	}
	return nil
}

// List returns all counters ordered by units sold, highest first.
func (r *redisSalesRepo) List(ctx context.Context) ([]model.ProductSales, error) {
	units, err := r.client.HGetAll(ctx, salesUnitsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("get units: %w", err)
	}
	revenue, err := r.client.HGetAll(ctx, salesRevenueKey).Result()
	if err != nil {
		return nil, fmt.Errorf("get revenue: %w", err)
	}

	sales := make([]model.ProductSales, 0, len(units))
	for id, u := range units {
		n, err := strconv.ParseInt(u, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse units for %s: %w", id, err)
		}
		cents, _ := strconv.ParseInt(revenue[id], 10, 64)
		sales = append(sales, model.ProductSales{
			ProductID: id,
			Units:     n,
			Revenue:   decimal.New(cents, -2),
		})
	}
	slices.SortFunc(sales, func(a, b model.ProductSales) int {
		if c := cmp.Compare(b.Units, a.Units); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	return sales, nil
}
