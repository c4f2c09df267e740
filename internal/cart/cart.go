// Package cart holds the per-user shopping cart: a list of product
// snapshots with quantities, persisted through a pluggable Store on
// every mutation. Last write wins when the same user mutates the cart
// from two sessions.
package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("cart item not found")

// ProductSnapshot captures the product at the moment it was added,
// so later catalog edits do not change the cart line.
type ProductSnapshot struct {
	ID       uint    `json:"id"`
	Name     string  `json:"nome"`
	Price    float64 `json:"preco"`
	ImageURL string  `json:"imagem_url,omitempty"`
}

type Item struct {
	ID       string          `json:"id"`
	Product  ProductSnapshot `json:"produto"`
	Quantity int             `json:"quantidade"`
}

// Cart is a loaded view of one user's cart. It is not safe for
// concurrent use; each request loads its own instance.
type Cart struct {
	store  Store
	userID uint
	items  []Item
}

// Load fetches the persisted cart for userID, or an empty cart when
// the user has none.
func Load(ctx context.Context, store Store, userID uint) (*Cart, error) {
	items, err := store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Cart{store: store, userID: userID, items: items}, nil
}

func (c *Cart) Items() []Item {
	return c.items
}

// Add increments the quantity when the product is already in the cart,
// otherwise appends a new line with quantity 1.
func (c *Cart) Add(ctx context.Context, product ProductSnapshot) error {
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			return c.save(ctx)
		}
	}

	c.items = append(c.items, Item{
		ID:       uuid.NewString(),
		Product:  product,
		Quantity: 1,
	})
	return c.save(ctx)
}

// Remove deletes the line with the given item id.
func (c *Cart) Remove(ctx context.Context, itemID string) error {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.save(ctx)
		}
	}
	return ErrItemNotFound
}

// UpdateQuantity sets the quantity of a line. Zero or negative
// quantities remove the line instead.
func (c *Cart) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(ctx, itemID)
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return c.save(ctx)
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart and removes the persisted entry.
func (c *Cart) Clear(ctx context.Context) error {
	c.items = nil
	return c.store.Delete(ctx, c.userID)
}

// TotalItems sums quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price x quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) save(ctx context.Context) error {
	return c.store.Save(ctx, c.userID, c.items)
}
