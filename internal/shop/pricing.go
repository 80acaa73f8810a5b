package shop

import (
	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

// PricingPolicy sets the shipping rule: orders whose discounted amount
// reaches FreeShippingThreshold ship free, all others pay ShippingFee.
type PricingPolicy struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		FreeShippingThreshold: decimal.NewFromInt(200),
		ShippingFee:           decimal.NewFromInt(5),
	}
}

// Price derives the cart totals. It does not modify its arguments; a nil
// discount prices the cart at full subtotal.
func Price(entries []model.CartEntry, discount *model.Discount, policy PricingPolicy) model.PricingSummary {
	sub := subtotal(entries).Round(2)
	discounted := applyDiscount(sub, discount).Round(2)

	shipping := policy.ShippingFee
	if discounted.GreaterThanOrEqual(policy.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return model.PricingSummary{
		Subtotal:   sub,
		Discount:   sub.Sub(discounted),
		Discounted: discounted,
		Shipping:   shipping,
		Total:      discounted.Add(shipping).Round(2),
	}
}

func applyDiscount(sub decimal.Decimal, d *model.Discount) decimal.Decimal {
	if d == nil {
		return sub
	}
	switch d.Type {
	case model.DiscountPercentage:
		return sub.Mul(hundred.Sub(d.Value)).Div(hundred)
	case model.DiscountAmount:
		return decimal.Max(sub.Sub(d.Value), decimal.Zero)
	default:
		return sub
	}
}
