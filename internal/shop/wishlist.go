package shop

import (
	"slices"

	"github.com/flicky/go-shop-api/internal/model"
)

// Wishlist holds saved products, at most one per product id.
type Wishlist struct {
	items []model.Product
}

func NewWishlist() *Wishlist { return &Wishlist{} }

// Toggle adds p when absent and removes it otherwise. It returns true when
// the product was added.
func (w *Wishlist) Toggle(p model.Product) bool {
	if w.Remove(p.ID) {
		return false
	}
	w.items = append(w.items, p)
	return true
}

func (w *Wishlist) Remove(productID string) bool {
	i := w.index(productID)
	if i < 0 {
		return false
	}
	w.items = slices.Delete(slices.Clone(w.items), i, i+1)
	return true
}

func (w *Wishlist) Contains(productID string) bool {
	return w.index(productID) >= 0
}

func (w *Wishlist) Items() []model.Product {
	return slices.Clone(w.items)
}

func (w *Wishlist) index(productID string) int {
	return slices.IndexFunc(w.items, func(p model.Product) bool {
		return p.ID == productID
	})
}
