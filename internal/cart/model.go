package cart

import (
	"sort"

	"sufishine-be/internal/payment"
	"sufishine-be/internal/shipping"
)

// Item is one cart line. Price is a unit price snapshot taken when the
// product was added.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// Cart maps product id to line item. Stored lines always have quantity >= 1;
// dropping to zero removes the entry.
type Cart struct {
	Items map[string]*Item `json:"items"`
}

func New() *Cart {
	return &Cart{Items: make(map[string]*Item)}
}

// AddItem merges qty units into an existing line or inserts a new one.
// qty <= 0 defaults to 1.
func (c *Cart) AddItem(item Item, qty int) {
	if qty <= 0 {
		qty = 1
	}

	if existing, ok := c.Items[item.ID]; ok {
		existing.Quantity += qty
		return
	}

	item.Quantity = qty
	c.Items[item.ID] = &item
}

func (c *Cart) RemoveItem(id string) {
	delete(c.Items, id)
}

// UpdateQuantity sets the line to qty; qty <= 0 removes the line entirely.
func (c *Cart) UpdateQuantity(id string, qty int) {
	item, ok := c.Items[id]
	if !ok {
		return
	}
	if qty <= 0 {
		delete(c.Items, id)
		return
	}
	item.Quantity = qty
}

func (c *Cart) Clear() {
	c.Items = make(map[string]*Item)
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) ShippingQuote(method payment.Method) shipping.Quote {
	return shipping.QuoteFor(c.TotalItems(), method)
}

func (c *Cart) ShippingCharge(method payment.Method) float64 {
	return c.ShippingQuote(method).Charge
}

func (c *Cart) TotalWithShipping(method payment.Method) float64 {
	return c.TotalPrice() + c.ShippingCharge(method)
}

// Lines returns the items in a stable order for responses and snapshots.
func (c *Cart) Lines() []Item {
	lines := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, *item)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ID < lines[j].ID
	})
	return lines
}
