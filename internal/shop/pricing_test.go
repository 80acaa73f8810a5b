package shop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/flicky/go-shop-api/internal/model"
)

func entries(prices ...string) []model.CartEntry {
	l := NewLedger(fixedClock())
	for i, p := range prices {
		l.Add(product(string(rune('a'+i)), p))
	}
	return l.Entries()
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestPrice_PercentageFreeShipping(t *testing.T) {
	d, _ := testRegistry().Lookup("SAVE10")
	s := Price(entries("100", "150"), &d, DefaultPricingPolicy())

	assertMoney(t, "250", s.Subtotal)
	assertMoney(t, "225", s.Discounted)
	assertMoney(t, "25", s.Discount)
	assertMoney(t, "0", s.Shipping)
	assertMoney(t, "225.00", s.Total)
}

func TestPrice_FixedAmountWithShipping(t *testing.T) {
	d, _ := testRegistry().Lookup("OFF50")
	s := Price(entries("150"), &d, DefaultPricingPolicy())

	assertMoney(t, "100", s.Discounted)
	assertMoney(t, "5", s.Shipping)
	assertMoney(t, "105.00", s.Total)
}

func TestPrice_FixedAmountClampsAtZero(t *testing.T) {
	d, _ := testRegistry().Lookup("OFF50")
	s := Price(entries("20"), &d, DefaultPricingPolicy())

	assertMoney(t, "0", s.Discounted)
	assertMoney(t, "20", s.Discount)
	assertMoney(t, "5", s.Total)
}

func TestPrice_ThresholdIsInclusive(t *testing.T) {
	s := Price(entries("200"), nil, DefaultPricingPolicy())
	assertMoney(t, "0", s.Shipping)

	s = Price(entries("199.99"), nil, DefaultPricingPolicy())
	assertMoney(t, "5", s.Shipping)
	assertMoney(t, "204.99", s.Total)
}

func TestPrice_EmptyCart(t *testing.T) {
	s := Price(nil, nil, DefaultPricingPolicy())
	assertMoney(t, "0", s.Subtotal)
	assertMoney(t, "5", s.Total)
}

func TestPrice_RoundsToCents(t *testing.T) {
	d, _ := testRegistry().Lookup("SAVE10")
	s := Price(entries("180.35", "245.49"), &d, DefaultPricingPolicy())
	// 425.84 * 0.9 = 383.256
	assertMoney(t, "383.26", s.Discounted)
	assertMoney(t, "383.26", s.Total)
}

func TestPrice_IsPure(t *testing.T) {
	in := entries("120", "80.5")
	d, _ := testRegistry().Lookup("SAVE10")
	before := append([]model.CartEntry(nil), in...)

	first := Price(in, &d, DefaultPricingPolicy())
	second := Price(in, &d, DefaultPricingPolicy())

	assert.Equal(t, first, second)
	assert.Equal(t, before, in)
	assert.Equal(t, "SAVE10", d.Code)
}
