// Package cart implements the shopping cart's line aggregation and total
// computation. A Cart belongs to a single shopping session; callers serialize
// access per session.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/joshhoffman/SportsStore/internal/catalog"
)

// Line is one aggregated (product, quantity) entry. Quantity is kept positive
// by the Cart operations; product sameness is the product ID.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds lines in insertion order, at most one line per product ID.
// The zero value is an empty, usable cart.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem accumulates quantity onto the existing line for the product, or
// appends a new line at the end.
func (c *Cart) AddItem(p catalog.Product, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: quantity})
}

// RemoveLine drops the line for the given product ID. Removing a product that
// was never added is a no-op.
func (c *Cart) RemoveLine(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order. Mutating the returned
// slice does not affect the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ComputeTotalValue sums quantity * unit price over all lines using exact
// decimal arithmetic. An empty cart totals zero.
func (c *Cart) ComputeTotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range c.lines {
		total = total.Add(ln.Product.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return total
}
