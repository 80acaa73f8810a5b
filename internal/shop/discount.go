package shop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

var (
	ErrDuplicateDiscountCode = errors.New("duplicate discount code")
	ErrInvalidDiscount       = errors.New("invalid discount")
)

var hundred = decimal.NewFromInt(100)

// DefaultDiscounts is the registry the app ships with.
func DefaultDiscounts() []model.Discount {
	return []model.Discount{
		{Code: "SAVE10", Type: model.DiscountPercentage, Value: decimal.NewFromInt(10)},
		{Code: "OFF50", Type: model.DiscountAmount, Value: decimal.NewFromInt(50)},
	}
}

// ParseDiscounts reads "CODE:type:value" definitions, e.g. "SAVE10:percentage:10".
func ParseDiscounts(defs []string) ([]model.Discount, error) {
	discounts := make([]model.Discount, 0, len(defs))
	for _, def := range defs {
		def = strings.TrimSpace(def)
		if def == "" {
			continue
		}
		parts := strings.Split(def, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q: want CODE:type:value", ErrInvalidDiscount, def)
		}
		value, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDiscount, def, err)
		}
		discounts = append(discounts, model.Discount{
			Code:  strings.TrimSpace(parts[0]),
			Type:  model.DiscountType(strings.ToLower(strings.TrimSpace(parts[1]))),
			Value: value,
		})
	}
	return discounts, nil
}

// DiscountRegistry is the fixed, validated set of redeemable codes. It is
// read-only after construction and safe to share between shops.
type DiscountRegistry struct {
	byCode map[string]model.Discount
}

func NewDiscountRegistry(discounts []model.Discount) (*DiscountRegistry, error) {
	r := &DiscountRegistry{byCode: make(map[string]model.Discount, len(discounts))}
	for _, d := range discounts {
		if err := validateDiscount(d); err != nil {
			return nil, err
		}
		key := normalizeCode(d.Code)
		if _, ok := r.byCode[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDiscountCode, d.Code)
		}
		r.byCode[key] = d
	}
	return r, nil
}

func (r *DiscountRegistry) Lookup(code string) (model.Discount, bool) {
	if r == nil {
		return model.Discount{}, false
	}
	d, ok := r.byCode[normalizeCode(code)]
	return d, ok
}

func (r *DiscountRegistry) Len() int { return len(r.byCode) }

func validateDiscount(d model.Discount) error {
	if normalizeCode(d.Code) == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidDiscount)
	}
	if !d.Value.IsPositive() {
		return fmt.Errorf("%w: %s: value must be positive", ErrInvalidDiscount, d.Code)
	}
	switch d.Type {
	case model.DiscountPercentage:
		if d.Value.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s: percentage above 100", ErrInvalidDiscount, d.Code)
		}
	case model.DiscountAmount:
	default:
		return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidDiscount, d.Code, d.Type)
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountEngine holds the single active discount slot for one shop.
type DiscountEngine struct {
	registry *DiscountRegistry
	active   *model.Discount
}

func NewDiscountEngine(registry *DiscountRegistry) *DiscountEngine {
	return &DiscountEngine{registry: registry}
}

// Apply activates the discount matching code. An unknown code clears the
// active discount and returns false.
func (e *DiscountEngine) Apply(code string) bool {
	d, ok := e.registry.Lookup(code)
	if !ok {
		e.active = nil
		return false
	}
	e.active = &d
	return true
}

func (e *DiscountEngine) Active() (model.Discount, bool) {
	if e.active == nil {
		return model.Discount{}, false
	}
	return *e.active, true
}

func (e *DiscountEngine) Clear() { e.active = nil }
