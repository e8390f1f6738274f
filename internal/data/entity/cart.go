package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrPriceMismatch   = errors.New("same product added with different prices")
)

// CartProduct is the product data a cart line carries along.
type CartProduct struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Category string
}

type CartLine struct {
	Product  CartProduct
	Quantity int
}

// Cart maps product ids to lines and keeps the order in which products were
// first added. The zero value is not usable, use NewCart.
type Cart struct {
	order []int64
	lines map[int64]*CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int64]*CartLine)}
}

// Add puts qty units of p in the cart. Adding a product that is already
// present increases its quantity; its price must match the existing line.
func (c *Cart) Add(p CartProduct, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if line, ok := c.lines[p.ID]; ok {
		if !line.Product.Price.Equal(p.Price) {
			return ErrPriceMismatch
		}
		line.Quantity += qty
		return nil
	}
	c.order = append(c.order, p.ID)
	c.lines[p.ID] = &CartLine{Product: p, Quantity: qty}
	return nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		line := c.lines[id]
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Snapshot freezes the cart into order items, in insertion order.
func (c *Cart) Snapshot() []OrderItem {
	items := make([]OrderItem, 0, len(c.order))
	for _, id := range c.order {
		line := c.lines[id]
		items = append(items, OrderItem{
			ID:       line.Product.ID,
			Name:     line.Product.Name,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
			Category: line.Product.Category,
		})
	}
	return items
}
