// Package shop holds the per-shopper state: cart, wishlist, active discount,
// order history and the shopper's own product ratings.
package shop

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/flicky/go-shop-api/internal/model"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoPendingCheckout = errors.New("no pending checkout")
)

// Options configures a Shop. A nil Pricing uses DefaultPricingPolicy.
type Options struct {
	Discounts *DiscountRegistry
	Pricing   *PricingPolicy
	MaxRating int
	Now       func() time.Time
}

// Quote is a priced, frozen copy of the cart taken when checkout begins.
type Quote struct {
	Items   []model.CartEntry
	Summary model.PricingSummary
}

// Shop owns one shopper's state. Every method runs under the shop's lock,
// so each call is a single atomic transition.
type Shop struct {
	mu       sync.Mutex
	cart     *Ledger
	wishlist *Wishlist
	discount *DiscountEngine
	orders   *OrderLog
	ratings  *Ratings
	pricing  PricingPolicy
	pending  map[string]Quote
}

func New(opts Options) *Shop {
	pricing := DefaultPricingPolicy()
	if opts.Pricing != nil {
		pricing = *opts.Pricing
	}
	return &Shop{
		cart:     NewLedger(opts.Now),
		wishlist: NewWishlist(),
		discount: NewDiscountEngine(opts.Discounts),
		orders:   NewOrderLog(opts.Now),
		ratings:  NewRatings(opts.MaxRating),
		pricing:  pricing,
		pending:  make(map[string]Quote),
	}
}

func (s *Shop) AddToCart(p model.Product) model.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Add(p)
}

func (s *Shop) RemoveFromCart(cartItemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(cartItemID)
}

func (s *Shop) Cart() []model.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

// ToggleWishlist returns true when p was added and false when it was removed.
func (s *Shop) ToggleWishlist(p model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Toggle(p)
}

// MoveToCart removes p from the wishlist and adds it to the cart in one step.
// The cart add happens even if p was not wishlisted; removed reports whether
// a wishlist entry existed.
func (s *Shop) MoveToCart(p model.Product) (entry model.CartEntry, removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed = s.wishlist.Remove(p.ID)
	return s.cart.Add(p), removed
}

func (s *Shop) Wishlist() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}

func (s *Shop) ApplyDiscount(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount.Apply(code)
}

func (s *Shop) ActiveDiscount() (model.Discount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount.Active()
}

func (s *Shop) Summary() model.PricingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.price(s.cart.entries)
}

// Quote prices the current cart for checkout.
func (s *Shop) Quote() (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Len() == 0 {
		return Quote{}, ErrEmptyCart
	}
	items := s.cart.Entries()
	return Quote{Items: items, Summary: s.price(items)}, nil
}

// Hold records q as the checkout awaiting payment intentID. Earlier held
// checkouts stay committable, since their intents may already be paid.
func (s *Shop) Hold(intentID string, q Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[intentID] = Quote{Items: cloneEntries(q.Items), Summary: q.Summary}
}

func (s *Shop) Pending(intentID string) (Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.pending[intentID]
	if !ok {
		return Quote{}, false
	}
	return Quote{Items: cloneEntries(q.Items), Summary: q.Summary}, true
}

// PendingIntents lists the intent ids still awaiting payment.
func (s *Shop) PendingIntents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Release forgets the held checkout for intentID without ordering it.
func (s *Shop) Release(intentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, intentID)
}

// Commit turns the held checkout for intentID into an order and removes the
// quoted entries from the cart. Entries added after the quote stay. Both
// happen under one lock; on error nothing changes.
func (s *Shop) Commit(intentID string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.pending[intentID]
	if !ok {
		return model.Order{}, ErrNoPendingCheckout
	}
	if len(q.Items) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	order := s.orders.Append(q.Items, q.Summary.Total)
	for _, item := range q.Items {
		s.cart.Remove(item.CartItemID)
	}
	delete(s.pending, intentID)
	return order, nil
}

func (s *Shop) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.List()
}

func (s *Shop) Order(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Get(id)
}

func (s *Shop) RateProduct(productID string, stars int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Record(productID, stars)
}

func (s *Shop) EffectiveRating(p model.Product) model.EffectiveRating {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.Effective(p)
}

func (s *Shop) UserRating(productID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings.UserRating(productID)
}

func (s *Shop) price(entries []model.CartEntry) model.PricingSummary {
	if d, ok := s.discount.Active(); ok {
		return Price(entries, &d, s.pricing)
	}
	return Price(entries, nil, s.pricing)
}
