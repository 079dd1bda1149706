package pos

import (
	"ventapos/internal/domain"
)

type CartItem struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart holds at most one line per product, in insertion order. Quantities are
// kept within [1, last-known stock]; a quantity that would drop to zero
// removes the line instead.
type Cart struct {
	items []CartItem
}

type AddResult int

const (
	AddOK AddResult = iota
	AddNoPrice
	AddNoStockInfo
	AddStockLimit
)

// Add puts one unit of p in the cart. Products with unknown price or stock
// are rejected, as is any add that would push the line past the product's
// stock ceiling. The ceiling is re-read from p on every call; stock may have
// been refreshed upstream since the line was created.
func (c *Cart) Add(p domain.Product) AddResult {
	if !p.Price.Known {
		return AddNoPrice
	}
	if !p.Stock.Known {
		return AddNoStockInfo
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity >= p.Stock.Count {
				return AddStockLimit
			}
			c.items[i].Product = p
			c.items[i].Quantity++
			return AddOK
		}
	}
	if p.Stock.Count < 1 {
		return AddStockLimit
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
	return AddOK
}

type DecreaseResult int

const (
	DecreaseAbsent DecreaseResult = iota
	DecreaseReduced
	DecreaseRemoved
)

// Decrease takes one unit off the line for p. Absent products are a no-op;
// reaching zero removes the line.
func (c *Cart) Decrease(p domain.Product) DecreaseResult {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity--
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
				return DecreaseRemoved
			}
			return DecreaseReduced
		}
	}
	return DecreaseAbsent
}

// SetQuantity is the direct numeric edit: requested values below 1 are raised
// to 1, values above the stock ceiling are lowered to it (unknown stock
// counts as 0). If the clamp still lands below 1 the line is removed.
func (c *Cart) SetQuantity(productID string, qty int) {
	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		ceiling := 0
		if c.items[i].Product.Stock.Known {
			ceiling = c.items[i].Product.Stock.Count
		}
		if qty < 1 {
			qty = 1
		}
		if qty > ceiling {
			qty = ceiling
		}
		if qty < 1 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
		c.items[i].Quantity = qty
		return
	}
}

func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.items = nil }

func (c *Cart) Empty() bool { return len(c.items) == 0 }

func (c *Cart) Quantity(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return c.items[i].Quantity
		}
	}
	return 0
}

// Items returns the lines in display order. The slice is a copy; mutating it
// does not touch the cart.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}
