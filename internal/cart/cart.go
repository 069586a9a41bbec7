// Package cart holds the session-scoped shopping cart. Nothing here touches
// the database: a cart lives in process memory for the lifetime of a browsing
// session and is dropped after the order handoff.
package cart

import (
	"github.com/google/uuid"
)

// Line is one product inside a cart. UnitPrice and Stock are snapshots taken
// at add time; a zero UnitPrice means price on inquiry.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  uint      `json:"quantity"`
	Stock     uint      `json:"stock"`
	Image     string    `json:"image,omitempty"`
}

// Cart keeps its lines in insertion order, one line per product. Not safe for
// concurrent use; the Store serializes access.
type Cart struct {
	lines map[uuid.UUID]*Line
	order []uuid.UUID
}

func New() *Cart {
	return &Cart{lines: make(map[uuid.UUID]*Line)}
}

// AddItem inserts a new line or accumulates quantity onto an existing one.
// The resulting quantity is clamped to [1, stock-at-add-time] as a last-resort
// invariant; handlers validate against current stock before calling. The
// returned line carries the quantity that actually applied.
func (c *Cart) AddItem(line Line) Line {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	existing, ok := c.lines[line.ProductID]
	if !ok {
		if line.Stock > 0 && line.Quantity > line.Stock {
			line.Quantity = line.Stock
		}
		stored := line
		c.lines[line.ProductID] = &stored
		c.order = append(c.order, line.ProductID)
		return stored
	}

	existing.Quantity += line.Quantity
	if existing.Stock > 0 && existing.Quantity > existing.Stock {
		existing.Quantity = existing.Stock
	}
	return *existing
}

// UpdateQuantity sets the quantity of a line. Zero or below removes the line.
// Stock is deliberately not re-checked here: it may have changed since add,
// and re-validation against live stock is the caller's concern.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) bool {
	line, ok := c.lines[productID]
	if !ok {
		return false
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return true
	}
	line.Quantity = uint(quantity)
	return true
}

// RemoveItem deletes a line; removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.lines = make(map[uuid.UUID]*Line)
	c.order = nil
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.order)
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() uint {
	var total uint
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity over priced lines. Inquiry-only
// lines contribute nothing to the monetary total but still count as items.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.lines {
		if line.UnitPrice > 0 {
			total += line.UnitPrice * float64(line.Quantity)
		}
	}
	return total
}
