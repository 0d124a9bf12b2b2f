package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tekrabyte/waui-sub001/entity"
)

// Cart holds the lines of an order that has not been sent yet.
// There is at most one line per product id and every line has quantity >= 1.
type Cart struct {
	mu    sync.Mutex
	items []entity.CartItem
}

func NewCart() *Cart { return &Cart{} }

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem merges into the existing line or appends a new one with quantity 1.
// The product, including its price, is copied at insertion time.
func (c *Cart) AddItem(p entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, entity.CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity adds delta to the line's quantity, clamped at 0.
// A line that reaches 0 is removed. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return
	}
	q := c.items[i].Quantity + delta
	if q <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = q
}

func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Deduct takes the sent lines out of the cart. Units or lines added after sent
// was read stay in the cart.
func (c *Cart) Deduct(sent []entity.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range sent {
		i := c.indexOf(it.ID)
		if i < 0 {
			continue
		}
		if q := c.items[i].Quantity - it.Quantity; q > 0 {
			c.items[i].Quantity = q
			continue
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.CartItem(nil), c.items...)
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total is the sum of price x quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalOf(c.items)
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func totalOf(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// CartView is the JSON shape returned to the terminal.
type CartView struct {
	Items     []entity.CartItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"itemCount"`
}

func (c *Cart) View() CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := append([]entity.CartItem{}, c.items...)
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return CartView{Items: items, Total: totalOf(items), ItemCount: n}
}
