package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/go-shop-api/internal/model"
)

func TestDiscountEngine_ApplyIsCaseInsensitive(t *testing.T) {
	e := NewDiscountEngine(testRegistry())
	require.True(t, e.Apply("save10"))

	d, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, "SAVE10", d.Code)
	assert.Equal(t, model.DiscountPercentage, d.Type)
}

func TestDiscountEngine_LastCallWins(t *testing.T) {
	e := NewDiscountEngine(testRegistry())
	require.True(t, e.Apply("SAVE10"))
	require.True(t, e.Apply("OFF50"))
	d, _ := e.Active()
	assert.Equal(t, "OFF50", d.Code)

	assert.False(t, e.Apply("BOGUS"))
	_, ok := e.Active()
	assert.False(t, ok)
}

func TestDiscountRegistry_RejectsDuplicateCodes(t *testing.T) {
	_, err := NewDiscountRegistry([]model.Discount{
		{Code: "SAVE10", Type: model.DiscountPercentage, Value: dec("10")},
		{Code: "save10", Type: model.DiscountAmount, Value: dec("5")},
	})
	assert.ErrorIs(t, err, ErrDuplicateDiscountCode)
}

func TestDiscountRegistry_RejectsInvalidEntries(t *testing.T) {
	cases := map[string]model.Discount{
		"empty code":   {Code: " ", Type: model.DiscountAmount, Value: dec("5")},
		"zero value":   {Code: "ZERO", Type: model.DiscountAmount, Value: dec("0")},
		"over 100":     {Code: "BIG", Type: model.DiscountPercentage, Value: dec("150")},
		"unknown type": {Code: "ODD", Type: "bogo", Value: dec("1")},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewDiscountRegistry([]model.Discount{d})
			assert.ErrorIs(t, err, ErrInvalidDiscount)
		})
	}
}

func TestParseDiscounts(t *testing.T) {
	got, err := ParseDiscounts([]string{"SAVE10:percentage:10", " OFF50:Amount:50 ", ""})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "OFF50", got[1].Code)
	assert.Equal(t, model.DiscountAmount, got[1].Type)
	assert.True(t, dec("50").Equal(got[1].Value))

	_, err = ParseDiscounts([]string{"SAVE10:percentage"})
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = ParseDiscounts([]string{"SAVE10:percentage:ten"})
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}
