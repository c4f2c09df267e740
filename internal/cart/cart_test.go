package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	iphone  = ProductSnapshot{ID: 1, Name: "iPhone 15 Pro", Price: 7999.00}
	airpods = ProductSnapshot{ID: 2, Name: "AirPods Pro 2", Price: 1899.00}
)

func TestAddSameProductIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, NewMemoryStore(), 1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Add(ctx, iphone))
	}

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity)
	assert.Equal(t, 3, c.TotalItems())
}

func TestAddDistinctProducts(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, NewMemoryStore(), 1)
	require.NoError(t, err)

	require.NoError(t, c.Add(ctx, iphone))
	require.NoError(t, c.Add(ctx, airpods))
	require.NoError(t, c.Add(ctx, airpods))

	require.Len(t, c.Items(), 2)
	assert.Equal(t, 3, c.TotalItems())
	assert.NotEqual(t, c.Items()[0].ID, c.Items()[1].ID)
}

func TestTotalPrice(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, NewMemoryStore(), 1)
	require.NoError(t, err)

	require.NoError(t, c.Add(ctx, iphone))
	require.NoError(t, c.Add(ctx, iphone))
	require.NoError(t, c.Add(ctx, airpods))

	assert.InDelta(t, 2*7999.00+1899.00, c.TotalPrice(), 0.001)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, NewMemoryStore(), 1)
	require.NoError(t, err)

	require.NoError(t, c.Add(ctx, iphone))
	itemID := c.Items()[0].ID

	require.NoError(t, c.UpdateQuantity(ctx, itemID, 5))
	assert.Equal(t, 5, c.TotalItems())

	// Zero or negative removes the line
	require.NoError(t, c.UpdateQuantity(ctx, itemID, 0))
	assert.Empty(t, c.Items())
}

func TestRemoveUnknownItem(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, NewMemoryStore(), 1)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Remove(ctx, "nope"), ErrItemNotFound)
}

func TestMutationsPersist(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c, err := Load(ctx, store, 1)
	require.NoError(t, err)
	require.NoError(t, c.Add(ctx, iphone))
	require.NoError(t, c.Add(ctx, iphone))

	// A fresh load sees what the first instance saved
	reloaded, err := Load(ctx, store, 1)
	require.NoError(t, err)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, 2, reloaded.TotalItems())
}

func TestCartsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c1, err := Load(ctx, store, 1)
	require.NoError(t, err)
	require.NoError(t, c1.Add(ctx, iphone))

	c2, err := Load(ctx, store, 2)
	require.NoError(t, err)
	assert.Empty(t, c2.Items())
}

func TestClearRemovesPersistedEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c, err := Load(ctx, store, 1)
	require.NoError(t, err)
	require.NoError(t, c.Add(ctx, iphone))
	require.NoError(t, c.Clear(ctx))

	assert.Equal(t, 0, c.TotalItems())

	reloaded, err := Load(ctx, store, 1)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items())
}
