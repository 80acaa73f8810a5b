// Package payment talks to the card processor on behalf of checkout.
package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

var ErrInvalidAmount = errors.New("invalid payment amount")

// Gateway is the subset of card-processor operations checkout needs.
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*model.PaymentIntent, error)
	GetIntent(ctx context.Context, intentID string) (*model.PaymentIntent, error)
}

type IntentRequest struct {
	AmountCents int64
	Currency    string
	Description string
	Metadata    map[string]string
}

// ToCents converts a two-place amount to integer minor units.
func ToCents(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	return amount.Round(2).Shift(2).IntPart(), nil
}
