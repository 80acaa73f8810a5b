package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

// --- Session ---

type SessionResponse struct {
	Token     string    `json:"token"`
	ShopperID uuid.UUID `json:"shopper_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Product ---

type ListProductsRequest struct {
	Search     string   `form:"search"`
	Categories []string `form:"category"`
	MinPrice   string   `form:"min_price"`
	MaxPrice   string   `form:"max_price"`
}

type ProductResponse struct {
	model.Product
	EffectiveRating model.EffectiveRating `json:"effective_rating"`
	UserRating      *int                  `json:"user_rating,omitempty"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type RateProductRequest struct {
	Stars int `json:"stars" binding:"required"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

type CartResponse struct {
	Items    []model.CartEntry    `json:"items"`
	Summary  model.PricingSummary `json:"summary"`
	Discount *model.Discount      `json:"discount,omitempty"`
}

// --- Wishlist ---

type WishlistResponse struct {
	Items []model.Product `json:"items"`
}

type WishlistToggleResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}

type MoveToCartResponse struct {
	Item                model.CartEntry `json:"item"`
	RemovedFromWishlist bool            `json:"removed_from_wishlist"`
}

// --- Checkout ---

type CheckoutResponse struct {
	PaymentIntentID string               `json:"payment_intent_id"`
	ClientSecret    string               `json:"client_secret"`
	Amount          decimal.Decimal      `json:"amount"`
	AmountCents     int64                `json:"amount_cents"`
	Currency        string               `json:"currency"`
	Summary         model.PricingSummary `json:"summary"`
}

type ConfirmCheckoutRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// --- Order ---

type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int           `json:"total"`
}

// --- Stats ---

type SalesResponse struct {
	Products []model.ProductSales `json:"products"`
}
