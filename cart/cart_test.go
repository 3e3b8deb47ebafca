package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizza() Item {
	return Item{ID: 1, Name: "Margherita", Price: 100, ImageURL: "/img/margherita.png"}
}

func salad() Item {
	return Item{ID: 2, Name: "Caesar Salad", Price: 50, ImageURL: "/img/caesar.png"}
}

func TestAddItemMergesByItemID(t *testing.T) {
	c := New(NewMemStore(), Options{})

	c.AddItem(pizza(), 10)
	c.AddItem(pizza(), 10)
	c.AddItem(pizza(), 10)
	c.AddItem(salad(), 10)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ItemID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].ItemID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 10, c.RestaurantID())
}

func TestTotalsScenario(t *testing.T) {
	c := New(NewMemStore(), Options{})
	assert.Equal(t, Totals{}, c.Totals())

	c.AddItem(pizza(), 10)
	assert.Equal(t, Totals{Items: 1, Subtotal: 100}, c.Totals())

	c.AddItem(pizza(), 10)
	assert.Equal(t, Totals{Items: 2, Subtotal: 200}, c.Totals())
	require.Len(t, c.Lines(), 1)

	c.AddItem(salad(), 10)
	assert.Equal(t, Totals{Items: 3, Subtotal: 250}, c.Totals())

	// repeated reads must not drift
	assert.Equal(t, c.Totals(), c.Totals())
}

func TestAddFromOtherRestaurantDeclined(t *testing.T) {
	c := New(NewMemStore(), Options{Confirm: func() bool { return false }})

	c.AddItem(pizza(), 10)
	before := c.Lines()

	ok := c.AddItem(salad(), 20)

	assert.False(t, ok)
	assert.Equal(t, before, c.Lines())
	assert.Equal(t, 10, c.RestaurantID())
}

func TestAddFromOtherRestaurantConfirmed(t *testing.T) {
	c := New(NewMemStore(), Options{Confirm: func() bool { return true }})

	c.AddItem(pizza(), 10)
	c.AddItem(pizza(), 10)

	ok := c.AddItem(salad(), 20)

	assert.True(t, ok)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ItemID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 20, c.RestaurantID())
}

func TestRemoveLastLineUnsetsRestaurant(t *testing.T) {
	// a declining confirm hook proves it is never consulted below
	c := New(NewMemStore(), Options{Confirm: func() bool { return false }})

	c.AddItem(pizza(), 10)
	c.RemoveItem(pizza().ID)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.RestaurantID())

	// empty cart anchors to whatever comes next, no confirmation
	ok := c.AddItem(salad(), 20)
	assert.True(t, ok)
	assert.Equal(t, 20, c.RestaurantID())
}

func TestRemoveUnknownItemIsNoop(t *testing.T) {
	c := New(NewMemStore(), Options{})
	c.AddItem(pizza(), 10)

	c.RemoveItem(999)

	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 10, c.RestaurantID())
}

func TestUpdateQuantity(t *testing.T) {
	c := New(NewMemStore(), Options{})
	c.AddItem(pizza(), 10)

	c.UpdateQuantity(pizza().ID, 5)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	// below 1 is rejected, not treated as removal
	c.UpdateQuantity(pizza().ID, 0)
	assert.Equal(t, 5, c.Lines()[0].Quantity)
	c.UpdateQuantity(pizza().ID, -1)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	// unknown item is a no-op
	c.UpdateQuantity(999, 3)
	require.Len(t, c.Lines(), 1)
}

func TestClear(t *testing.T) {
	store := NewMemStore()
	c := New(store, Options{})
	c.AddItem(pizza(), 10)
	c.AddItem(salad(), 10)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.RestaurantID())
	_, ok := store.Get(restaurantKey)
	assert.False(t, ok)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := NewMemStore()

	c := New(store, Options{})
	c.AddItem(pizza(), 10)
	c.AddItem(pizza(), 10)
	c.AddItem(salad(), 10)

	// a fresh cart over the same store restores everything
	restored := New(store, Options{})
	restored.Load()

	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, 10, restored.RestaurantID())
	assert.Equal(t, Totals{Items: 3, Subtotal: 250}, restored.Totals())
}

func TestLoadMalformedStateStartsEmpty(t *testing.T) {
	store := NewMemStore()
	store.Set(linesKey, "{not json")
	store.Set(restaurantKey, "10")

	c := New(store, Options{})
	c.Load()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.RestaurantID())
}

func TestLoadEmptyStoreStartsEmpty(t *testing.T) {
	c := New(NewMemStore(), Options{})
	c.Load()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.RestaurantID())
	assert.Equal(t, Totals{}, c.Totals())
}

func TestNotifyDistinguishesAddFromUpdate(t *testing.T) {
	var messages []string
	c := New(NewMemStore(), Options{Notify: func(m string) { messages = append(messages, m) }})

	c.AddItem(pizza(), 10)
	c.AddItem(pizza(), 10)

	require.Len(t, messages, 2)
	assert.Equal(t, "Margherita added to cart", messages[0])
	assert.Equal(t, "Margherita quantity updated in cart", messages[1])
}
