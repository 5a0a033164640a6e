package models

// CartItem is a product in the cart together with the quantity chosen.
// Quantity is always >= 1; decrementing to zero removes the item.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (ci CartItem) Subtotal() int64 {
	return ci.Price * int64(ci.Quantity)
}

// CartTotal sums the subtotals of all items.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// CartCount sums the quantities of all items, as shown on the cart badge.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
