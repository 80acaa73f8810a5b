package shop

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

func fixedClock() func() time.Time {
	t := time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func product(id, price string) model.Product {
	return model.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    decimal.RequireFromString(price),
		Category: "Fragrance",
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testRegistry() *DiscountRegistry {
	r, err := NewDiscountRegistry(DefaultDiscounts())
	if err != nil {
		panic(err)
	}
	return r
}
