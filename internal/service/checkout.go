package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flicky/go-shop-api/internal/dto"
	"github.com/flicky/go-shop-api/internal/model"
	"github.com/flicky/go-shop-api/internal/payment"
	"github.com/flicky/go-shop-api/internal/shop"
)

var (
	ErrEmptyCart         = shop.ErrEmptyCart
	ErrNoPendingCheckout = shop.ErrNoPendingCheckout
	ErrPaymentFailed     = errors.New("payment failed")
	ErrAmountMismatch    = errors.New("payment amount does not match order total")
)

// OrderPublisher announces committed orders to downstream consumers.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg model.OrderMessage) error
}

type CheckoutService struct {
	shops     *ShopStore
	gateway   payment.Gateway
	publisher OrderPublisher
	currency  string
	log       *slog.Logger
}

func NewCheckoutService(shops *ShopStore, gateway payment.Gateway, publisher OrderPublisher, currency string, log *slog.Logger) *CheckoutService {
	return &CheckoutService{shops: shops, gateway: gateway, publisher: publisher, currency: currency, log: log}
}

// Begin prices the cart and opens a payment intent for the total. The priced
// cart is held under the intent id until Confirm; earlier held intents stay
// confirmable.
func (s *CheckoutService) Begin(ctx context.Context, shopperID uuid.UUID) (*dto.CheckoutResponse, error) {
	sh := s.shops.Get(shopperID)
	quote, err := sh.Quote()
	if err != nil {
		return nil, err
	}

	cents, err := payment.ToCents(quote.Summary.Total)
	if err != nil {
		return nil, fmt.Errorf("price checkout: %w", err)
	}

	intent, err := s.gateway.CreateIntent(ctx, payment.IntentRequest{
		AmountCents: cents,
		Currency:    s.currency,
		Description: fmt.Sprintf("Order of %d item(s)", len(quote.Items)),
		Metadata:    map[string]string{"shopper_id": shopperID.String()},
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	sh.Hold(intent.ID, quote)

	return &dto.CheckoutResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          quote.Summary.Total,
		AmountCents:     cents,
		Currency:        intent.Currency,
		Summary:         quote.Summary,
	}, nil
}

// Confirm checks the payment outcome with the gateway. Only a succeeded
// payment for the held amount commits the order and clears the cart; any
// other outcome leaves the shop untouched so the shopper can retry.
func (s *CheckoutService) Confirm(ctx context.Context, shopperID uuid.UUID, intentID string) (*model.Order, error) {
	sh := s.shops.Get(shopperID)
	quote, ok := sh.Pending(intentID)
	if !ok {
		return nil, ErrNoPendingCheckout
	}

	intent, err := s.gateway.GetIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if intent.Status != model.PaymentSucceeded {
		reason := intent.FailureReason
		if reason == "" {
			reason = "status " + string(intent.Status)
		}
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, reason)
	}

	cents, err := payment.ToCents(quote.Summary.Total)
	if err != nil {
		return nil, fmt.Errorf("price checkout: %w", err)
	}
	if intent.AmountCents != cents {
		return nil, fmt.Errorf("%w: charged %d, expected %d", ErrAmountMismatch, intent.AmountCents, cents)
	}

	order, err := sh.Commit(intentID)
	if err != nil {
		return nil, err
	}

	log := s.log.With("order_id", order.ID, "shopper_id", shopperID)
	log.Info("order placed", "total", order.TotalAmount.StringFixed(2), "items", len(order.Items))

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, toOrderMessage(shopperID, order)); err != nil {
			log.Error("publish order placed", "error", err)
		}
	}
	return &order, nil
}

func toOrderMessage(shopperID uuid.UUID, order model.Order) model.OrderMessage {
	lines := make([]model.OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, model.OrderLine{ProductID: item.ID, Price: item.Price})
	}
	return model.OrderMessage{
		OrderID:   order.ID,
		ShopperID: shopperID,
		Items:     lines,
		Total:     order.TotalAmount,
		PlacedAt:  order.Date,
	}
}
