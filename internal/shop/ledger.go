package shop

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

// Ledger is the ordered list of cart entries. Entries are keyed by
// CartItemID, so the same product may appear more than once.
type Ledger struct {
	entries []model.CartEntry
	ids     *idSource
}

func NewLedger(now func() time.Time) *Ledger {
	return &Ledger{ids: newIDSource(now)}
}

func (l *Ledger) Add(p model.Product) model.CartEntry {
	n, at := l.ids.next()
	entry := model.CartEntry{
		Product:    p,
		CartItemID: fmt.Sprintf("%s-%d", p.ID, n),
		AddedAt:    at,
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Remove drops the entry with the given id and reports whether one existed.
func (l *Ledger) Remove(cartItemID string) bool {
	i := slices.IndexFunc(l.entries, func(e model.CartEntry) bool {
		return e.CartItemID == cartItemID
	})
	if i < 0 {
		return false
	}
	kept := make([]model.CartEntry, 0, len(l.entries)-1)
	kept = append(kept, l.entries[:i]...)
	l.entries = append(kept, l.entries[i+1:]...)
	return true
}

func (l *Ledger) Clear() { l.entries = nil }

func (l *Ledger) Len() int { return len(l.entries) }

func (l *Ledger) Subtotal() decimal.Decimal {
	return subtotal(l.entries)
}

// Entries returns a copy in insertion order.
func (l *Ledger) Entries() []model.CartEntry {
	return cloneEntries(l.entries)
}

func subtotal(entries []model.CartEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Price)
	}
	return sum
}

func cloneEntries(entries []model.CartEntry) []model.CartEntry {
	out := make([]model.CartEntry, len(entries))
	copy(out, entries)
	return out
}
