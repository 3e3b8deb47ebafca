// Package cart holds the pre-order aggregate a user is building: the
// selected lines, the single restaurant they belong to, and the derived
// totals. Every cart in a session is an owned instance wired to its own
// Store; there is no package-level state.
package cart

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	linesKey      = "cart"
	restaurantKey = "restaurantId"
)

// Item describes an orderable menu item as handed to AddItem. Quantity is
// not part of the descriptor; adding the same item again bumps the line.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// Line is one item/quantity pair within a cart. Quantity is always >= 1;
// a line that would drop below 1 is removed instead.
type Line struct {
	ItemID       int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	RestaurantID int     `json:"restaurant_id"`
	Quantity     int     `json:"quantity"`
}

type Totals struct {
	Items    int     `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// Options carries the user-facing hooks. Confirm is consulted before an
// add from a different restaurant wipes a non-empty cart; Notify receives
// the acknowledgment for each successful add.
type Options struct {
	Confirm func() bool
	Notify  func(message string)
}

type Cart struct {
	store   Store
	confirm func() bool
	notify  func(string)

	lines        []Line
	restaurantID int
}

func New(store Store, opts Options) *Cart {
	c := &Cart{
		store:   store,
		confirm: opts.Confirm,
		notify:  opts.Notify,
	}
	if c.confirm == nil {
		c.confirm = func() bool { return true }
	}
	if c.notify == nil {
		c.notify = func(string) {}
	}
	return c
}

// Load restores a previously persisted cart. Absent or malformed saved
// state means "no saved cart", never an error.
func (c *Cart) Load() {
	c.lines = nil
	c.restaurantID = 0

	if raw, ok := c.store.Get(linesKey); ok {
		var lines []Line
		if err := json.Unmarshal([]byte(raw), &lines); err == nil {
			for _, l := range lines {
				if l.Quantity >= 1 {
					c.lines = append(c.lines, l)
				}
			}
		}
	}

	if raw, ok := c.store.Get(restaurantKey); ok {
		if id, err := strconv.Atoi(raw); err == nil {
			c.restaurantID = id
		}
	}

	if len(c.lines) == 0 {
		c.lines = nil
		c.restaurantID = 0
	}
}

// AddItem puts one unit of item into the cart. Adding from a different
// restaurant than the one the cart is anchored to asks the confirm hook
// first: declined leaves the cart untouched and returns false, confirmed
// replaces the whole line set with the new item.
func (c *Cart) AddItem(item Item, restaurantID int) bool {
	if len(c.lines) > 0 && c.restaurantID != 0 && c.restaurantID != restaurantID {
		if !c.confirm() {
			return false
		}
		c.lines = nil
	}

	c.restaurantID = restaurantID

	updated := false
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			updated = true
			break
		}
	}

	if updated {
		c.notify(fmt.Sprintf("%s quantity updated in cart", item.Name))
	} else {
		c.lines = append(c.lines, Line{
			ItemID:       item.ID,
			Name:         item.Name,
			Price:        item.Price,
			ImageURL:     item.ImageURL,
			RestaurantID: restaurantID,
			Quantity:     1,
		})
		c.notify(fmt.Sprintf("%s added to cart", item.Name))
	}

	c.persist()
	return true
}

// RemoveItem drops the matching line; unknown ids are a no-op. Removing
// the last line unsets the restaurant so the next add needs no confirm.
func (c *Cart) RemoveItem(itemID int) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	c.lines = kept

	if len(c.lines) == 0 {
		c.lines = nil
		c.restaurantID = 0
	}

	c.persist()
}

// UpdateQuantity sets the line's quantity to exactly quantity. Values
// below 1 are rejected as a no-op; callers use RemoveItem to drop a line.
func (c *Cart) UpdateQuantity(itemID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = 0
	c.persist()
}

// Totals recomputes the derived values fresh on every call.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.Items += l.Quantity
		t.Subtotal += l.Price * float64(l.Quantity)
	}
	return t
}

// Lines returns a copy of the line set in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) RestaurantID() int {
	return c.restaurantID
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// persist writes both keyed entries after every mutation. Store failures
// are the store's problem: the in-memory cart stays authoritative for the
// session either way.
func (c *Cart) persist() {
	raw, err := json.Marshal(c.lines)
	if err != nil {
		return
	}
	c.store.Set(linesKey, string(raw))

	if c.restaurantID != 0 {
		c.store.Set(restaurantKey, strconv.Itoa(c.restaurantID))
	} else {
		c.store.Delete(restaurantKey)
	}
}
