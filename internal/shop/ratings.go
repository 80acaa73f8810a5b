package shop

import (
	"errors"
	"fmt"

	"github.com/flicky/go-shop-api/internal/model"
)

var ErrInvalidRating = errors.New("rating out of range")

const DefaultMaxRating = 5

// Ratings keeps the local shopper's own star rating per product. A new
// rating replaces the previous one.
type Ratings struct {
	max  int
	user map[string]int
}

func NewRatings(maxRating int) *Ratings {
	if maxRating <= 0 {
		maxRating = DefaultMaxRating
	}
	return &Ratings{max: maxRating, user: make(map[string]int)}
}

func (r *Ratings) Max() int { return r.max }

func (r *Ratings) Record(productID string, stars int) error {
	if stars < 1 || stars > r.max {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidRating, stars, r.max)
	}
	r.user[productID] = stars
	return nil
}

func (r *Ratings) UserRating(productID string) (int, bool) {
	stars, ok := r.user[productID]
	return stars, ok
}

// Effective blends the product's seed rating with the user's rating, which
// counts as one more sample.
func (r *Ratings) Effective(p model.Product) model.EffectiveRating {
	stars, ok := r.user[p.ID]
	if !ok {
		return model.EffectiveRating{Rating: p.Rating, Count: p.RatingCount}
	}
	count := p.RatingCount + 1
	return model.EffectiveRating{
		Rating: (p.Rating*float64(p.RatingCount) + float64(stars)) / float64(count),
		Count:  count,
	}
}
