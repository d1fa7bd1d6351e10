package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/medicart/internal/client/models"
	"github.com/dmitrijs2005/medicart/internal/client/repositories/kv"
)

// cartKey is the store key holding the active cart.
const cartKey = "cart"

// CartStore is the single active cart: an insertion-ordered collection of
// cart lines keyed by product id, independent of the session (the cart
// survives logout).
//
// Content is loaded once via Load; every mutation updates memory first and
// then rewrites the whole persisted document, so readers always see the
// latest state synchronously. At most one line exists per product id and
// no persisted line ever has a quantity below one.
type CartStore struct {
	db    *sql.DB
	newKV kv.Factory
	lines []models.CartLine
}

// NewCartStore constructs an empty CartStore; call Load to restore the
// persisted cart.
func NewCartStore(db *sql.DB, newKV kv.Factory) *CartStore {
	return &CartStore{db: db, newKV: newKV}
}

// Load restores the persisted cart into memory. Meant to be called once at
// startup.
func (c *CartStore) Load(ctx context.Context) error {
	raw, err := c.newKV(c.db).Get(ctx, cartKey)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if raw == nil {
		c.lines = nil
		return nil
	}

	var lines []models.CartLine
	if err := models.UnmarshalDocument(raw, &lines); err != nil {
		return fmt.Errorf("failed to decode cart: %w", err)
	}
	c.lines = lines
	return nil
}

func (c *CartStore) persist(ctx context.Context) error {
	raw, err := models.MarshalDocument(c.linesOrEmpty())
	if err != nil {
		return err
	}
	if err := c.newKV(c.db).Set(ctx, cartKey, raw); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// linesOrEmpty keeps the persisted document an array even when the cart
// is empty.
func (c *CartStore) linesOrEmpty() []models.CartLine {
	if c.lines == nil {
		return []models.CartLine{}
	}
	return c.lines
}

func (c *CartStore) indexOf(productID int64) int {
	for i, l := range c.lines {
		if l.ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of an existing line by one, or inserts a new
// line with quantity one, then persists the cart.
func (c *CartStore) Add(ctx context.Context, product models.Product) error {
	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, models.CartLine{Product: product, Quantity: 1})
	}
	return c.persist(ctx)
}

// Remove deletes the line for productID. Removing an absent line is a no-op.
func (c *CartStore) Remove(ctx context.Context, productID int64) error {
	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return c.persist(ctx)
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less behaves as Remove; an absent line is a no-op.
func (c *CartStore) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return c.Remove(ctx, productID)
	}
	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	c.lines[i].Quantity = quantity
	return c.persist(ctx)
}

// Clear empties the cart and persists the empty document.
func (c *CartStore) Clear(ctx context.Context) error {
	c.lines = nil
	return c.persist(ctx)
}

// discard drops the in-memory lines without touching the store. Checkout
// uses it after the transaction has already cleared the persisted cart.
func (c *CartStore) discard() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *CartStore) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice is the sum of price times quantity over all lines.
func (c *CartStore) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *CartStore) ItemCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}
