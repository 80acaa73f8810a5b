package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddKeepsInsertionOrder(t *testing.T) {
	l := NewLedger(fixedClock())
	a := l.Add(product("1", "10"))
	b := l.Add(product("2", "20"))
	c := l.Add(product("1", "10"))

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{a.CartItemID, b.CartItemID, c.CartItemID},
		[]string{entries[0].CartItemID, entries[1].CartItemID, entries[2].CartItemID})
}

func TestLedger_CartItemIDsUniqueForRepeatedAdds(t *testing.T) {
	l := NewLedger(fixedClock())
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e := l.Add(product("1", "10"))
		assert.False(t, seen[e.CartItemID], "duplicate id %s", e.CartItemID)
		assert.Contains(t, e.CartItemID, "1-")
		seen[e.CartItemID] = true
	}
}

func TestLedger_RemoveDuplicateProductIndependently(t *testing.T) {
	l := NewLedger(fixedClock())
	first := l.Add(product("1", "10"))
	second := l.Add(product("1", "10"))

	assert.True(t, l.Remove(first.CartItemID))

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, second.CartItemID, entries[0].CartItemID)
}

func TestLedger_RemoveAbsentIsNoop(t *testing.T) {
	l := NewLedger(fixedClock())
	l.Add(product("1", "10"))
	assert.False(t, l.Remove("missing"))
	assert.Equal(t, 1, l.Len())
}

func TestLedger_AddRemoveSequence(t *testing.T) {
	l := NewLedger(fixedClock())
	var ids []string
	for i, p := range []string{"1", "2", "3", "4", "5"} {
		e := l.Add(product(p, "1"))
		ids = append(ids, e.CartItemID)
		if i%2 == 1 {
			l.Remove(ids[i-1])
		}
	}
	l.Remove(ids[4])

	var got []string
	for _, e := range l.Entries() {
		got = append(got, e.CartItemID)
	}
	assert.Equal(t, []string{ids[1], ids[3]}, got)
}

func TestLedger_Subtotal(t *testing.T) {
	l := NewLedger(fixedClock())
	assert.True(t, l.Subtotal().IsZero())

	l.Add(product("1", "180.35"))
	l.Add(product("2", "245.49"))
	e := l.Add(product("3", "340"))
	assert.True(t, dec("765.84").Equal(l.Subtotal()), l.Subtotal().String())

	l.Remove(e.CartItemID)
	assert.True(t, dec("425.84").Equal(l.Subtotal()))

	l.Clear()
	assert.True(t, l.Subtotal().IsZero())
	assert.Empty(t, l.Entries())
}

func TestLedger_EntriesIsACopy(t *testing.T) {
	l := NewLedger(fixedClock())
	l.Add(product("1", "10"))
	entries := l.Entries()
	entries[0].Name = "changed"
	assert.Equal(t, "Product 1", l.Entries()[0].Name)
}
