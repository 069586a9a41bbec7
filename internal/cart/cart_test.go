package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedLine(id uuid.UUID, price float64, qty, stock uint) Line {
	return Line{ProductID: id, Name: "item", UnitPrice: price, Quantity: qty, Stock: stock}
}

func TestCart_AddItem_AccumulatesQuantity(t *testing.T) {
	t.Parallel()

	c := New()
	id := uuid.New()

	c.AddItem(pricedLine(id, 100, 2, 10))
	applied := c.AddItem(pricedLine(id, 100, 3, 10))

	require.Equal(t, 1, c.Len(), "same product must not create a second line")
	assert.EqualValues(t, 5, applied.Quantity)
	assert.EqualValues(t, 5, c.TotalItems())
}

func TestCart_AddItem_ClampsToStock(t *testing.T) {
	t.Parallel()

	c := New()
	id := uuid.New()

	c.AddItem(pricedLine(id, 100, 4, 5))
	applied := c.AddItem(pricedLine(id, 100, 4, 5))

	assert.EqualValues(t, 5, applied.Quantity, "quantity beyond stock drops to the ceiling")

	fresh := c.AddItem(pricedLine(uuid.New(), 50, 99, 3))
	assert.EqualValues(t, 3, fresh.Quantity, "initial add clamps too")
}

func TestCart_AddItem_ZeroQuantityBecomesOne(t *testing.T) {
	t.Parallel()

	c := New()
	applied := c.AddItem(pricedLine(uuid.New(), 100, 0, 10))
	assert.EqualValues(t, 1, applied.Quantity)
}

func TestCart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	t.Parallel()

	c := New()
	id := uuid.New()
	c.AddItem(pricedLine(id, 100, 2, 10))

	require.True(t, c.UpdateQuantity(id, 0))
	assert.Equal(t, 0, c.Len())
	assert.EqualValues(t, 0, c.TotalItems())
}

func TestCart_UpdateQuantity_NoStockRecheck(t *testing.T) {
	t.Parallel()

	c := New()
	id := uuid.New()
	c.AddItem(pricedLine(id, 100, 2, 5))

	// Stock may have changed since add; the store takes the value as given.
	require.True(t, c.UpdateQuantity(id, 9))
	assert.EqualValues(t, 9, c.Lines()[0].Quantity)
}

func TestCart_UpdateQuantity_MissingLine(t *testing.T) {
	t.Parallel()

	c := New()
	assert.False(t, c.UpdateQuantity(uuid.New(), 3))
}

func TestCart_Totals_InquiryPricedLines(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(pricedLine(uuid.New(), 500, 2, 10))
	c.AddItem(pricedLine(uuid.New(), 0, 1, 10))

	assert.EqualValues(t, 3, c.TotalItems(), "inquiry lines still count as items")
	assert.EqualValues(t, 1000, c.TotalPrice(), "inquiry lines contribute nothing to money")
}

func TestCart_RemoveItem(t *testing.T) {
	t.Parallel()

	c := New()
	a, b := uuid.New(), uuid.New()
	c.AddItem(pricedLine(a, 100, 1, 10))
	c.AddItem(pricedLine(b, 200, 1, 10))

	c.RemoveItem(a)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, b, c.Lines()[0].ProductID)

	c.RemoveItem(uuid.New()) // absent product is a no-op
	assert.Equal(t, 1, c.Len())
}

func TestCart_Lines_PreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	c := New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		c.AddItem(pricedLine(id, 10, 1, 5))
	}

	// Re-adding the first product must not move it to the back.
	c.AddItem(pricedLine(ids[0], 10, 1, 5))

	lines := c.Lines()
	require.Len(t, lines, 3)
	for i, id := range ids {
		assert.Equal(t, id, lines[i].ProductID)
	}
}

func TestCart_Clear(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddItem(pricedLine(uuid.New(), 100, 2, 10))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.EqualValues(t, 0, c.TotalItems())
	assert.EqualValues(t, 0, c.TotalPrice())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s1, s2 := uuid.New(), uuid.New()

	s.With(s1, func(c *Cart) { c.AddItem(pricedLine(uuid.New(), 10, 1, 5)) })

	s.With(s2, func(c *Cart) {
		assert.Equal(t, 0, c.Len())
	})
	s.With(s1, func(c *Cart) {
		assert.Equal(t, 1, c.Len())
	})
}

func TestStore_DropDiscardsCart(t *testing.T) {
	t.Parallel()

	s := NewStore()
	session := uuid.New()

	s.With(session, func(c *Cart) { c.AddItem(pricedLine(uuid.New(), 10, 2, 5)) })
	s.Drop(session)

	s.With(session, func(c *Cart) {
		assert.Equal(t, 0, c.Len())
	})
}
