package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/go-shop-api/internal/model"
)

func TestRatings_EffectiveWithoutUserRating(t *testing.T) {
	r := NewRatings(5)
	p := model.Product{ID: "1", Rating: 4.5, RatingCount: 32}
	assert.Equal(t, model.EffectiveRating{Rating: 4.5, Count: 32}, r.Effective(p))
}

func TestRatings_BlendsUserRating(t *testing.T) {
	r := NewRatings(5)
	p := model.Product{ID: "1", Rating: 4.5, RatingCount: 32}
	require.NoError(t, r.Record("1", 5))

	got := r.Effective(p)
	assert.InDelta(t, 4.515, got.Rating, 0.001)
	assert.Equal(t, 33, got.Count)
}

func TestRatings_RerateReplaces(t *testing.T) {
	r := NewRatings(5)
	p := model.Product{ID: "1", Rating: 4.5, RatingCount: 32}
	require.NoError(t, r.Record("1", 5))
	require.NoError(t, r.Record("1", 1))

	got := r.Effective(p)
	assert.InDelta(t, (4.5*32+1)/33, got.Rating, 1e-9)
	assert.Equal(t, 33, got.Count)
}

func TestRatings_UnseededProduct(t *testing.T) {
	r := NewRatings(5)
	require.NoError(t, r.Record("9", 3))
	assert.Equal(t, model.EffectiveRating{Rating: 3, Count: 1}, r.Effective(model.Product{ID: "9"}))
}

func TestRatings_RejectsOutOfRange(t *testing.T) {
	r := NewRatings(5)
	for _, stars := range []int{0, -1, 6} {
		assert.ErrorIs(t, r.Record("1", stars), ErrInvalidRating)
	}
	_, ok := r.UserRating("1")
	assert.False(t, ok)
}
