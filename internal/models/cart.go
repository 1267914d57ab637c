package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a frozen snapshot of a book at add-time. Later edits to
// the book do not propagate to items already in a cart.
type CartItem struct {
	BookID   primitive.ObjectID
	Title    string
	Author   string
	Price    float64
	ImageURL string
	Quantity int
}

// Cart is the per-session sequence of selected items. The zero value is
// a valid, empty cart.
type Cart struct {
	Items []CartItem
}

// Add appends a snapshot of the book with quantity 1. Adding the same
// book twice yields two items.
func (c *Cart) Add(b Book) {
	c.Items = append(c.Items, CartItem{
		BookID:   b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		ImageURL: b.Image.URL,
		Quantity: 1,
	})
}

// Remove drops every item whose BookID matches and reports how many
// were removed.
func (c *Cart) Remove(id primitive.ObjectID) int {
	kept := c.Items[:0]
	removed := 0
	for _, item := range c.Items {
		if item.BookID == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	return removed
}

// Total sums price times quantity over the cart, treating an unset
// quantity as 1.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * float64(qty)
	}
	return total
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

const cartSessionKey = "cart"

// SessionStore is the slice of the session manager the cart needs.
// *scs.SessionManager satisfies it; tests use a map-backed fake.
type SessionStore interface {
	Get(ctx context.Context, key string) interface{}
	Put(ctx context.Context, key string, val interface{})
	Remove(ctx context.Context, key string)
}

// CartStore reads and writes the session-scoped cart. The cart belongs
// to the browser session, not to the authenticated user: it is lost
// when the session expires and survives logout.
type CartStore struct {
	Sessions SessionStore
}

// Get returns the session's cart, or an empty cart if none has been
// stored yet.
func (s *CartStore) Get(ctx context.Context) Cart {
	cart, ok := s.Sessions.Get(ctx, cartSessionKey).(Cart)
	if !ok {
		return Cart{}
	}
	return cart
}

func (s *CartStore) Put(ctx context.Context, cart Cart) {
	s.Sessions.Put(ctx, cartSessionKey, cart)
}

// Clear replaces the cart with an empty one. Callers must only do this
// after the order write has been confirmed.
func (s *CartStore) Clear(ctx context.Context) {
	s.Sessions.Put(ctx, cartSessionKey, Cart{})
}
