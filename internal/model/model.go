package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog record. Rating and RatingCount are the seed review
// figures the catalog ships with.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Rating      float64         `json:"rating"`
	RatingCount int             `json:"rating_count"`
}

type CartEntry struct {
	Product
	CartItemID string    `json:"cart_item_id"`
	AddedAt    time.Time `json:"added_at"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

type Discount struct {
	Code  string          `json:"code"`
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// PricingSummary is the derived view of a cart under the active discount.
type PricingSummary struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Discounted decimal.Decimal `json:"discounted"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

type Order struct {
	ID          string          `json:"id"`
	Items       []CartEntry     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Date        time.Time       `json:"date"`
}

type EffectiveRating struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentIntent is the gateway-neutral view of a card payment attempt.
type PaymentIntent struct {
	ID            string
	ClientSecret  string
	AmountCents   int64
	Currency      string
	Status        PaymentStatus
	FailureReason string
}

// OrderMessage is published once an order is committed.
type OrderMessage struct {
	OrderID   string          `json:"order_id"`
	ShopperID uuid.UUID       `json:"shopper_id"`
	Items     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  time.Time       `json:"placed_at"`
}

type OrderLine struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
}

// ProductSales is the running sales tally for one product.
type ProductSales struct {
	ProductID string          `json:"product_id"`
	Units     int64           `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}
