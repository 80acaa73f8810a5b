package shop

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flicky/go-shop-api/internal/model"
)

// OrderLog is the append-only purchase history. Stored orders never share
// backing arrays with the cart they were taken from.
type OrderLog struct {
	orders []model.Order
	ids    *idSource
}

func NewOrderLog(now func() time.Time) *OrderLog {
	return &OrderLog{ids: newIDSource(now)}
}

func (l *OrderLog) Append(snapshot []model.CartEntry, total decimal.Decimal) model.Order {
	n, at := l.ids.next()
	order := model.Order{
		ID:          strconv.FormatInt(n, 10),
		Items:       cloneEntries(snapshot),
		TotalAmount: total,
		Date:        at,
	}
	l.orders = append(l.orders, order)
	return cloneOrder(order)
}

func (l *OrderLog) Len() int { return len(l.orders) }

// List returns copies of all orders, oldest first.
func (l *OrderLog) List() []model.Order {
	out := make([]model.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (l *OrderLog) Get(id string) (model.Order, bool) {
	for _, o := range l.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return model.Order{}, false
}

func cloneOrder(o model.Order) model.Order {
	o.Items = cloneEntries(o.Items)
	return o
}
