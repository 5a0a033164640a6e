package store

import (
	"fmt"

	"tunga-storefront/kv"
	"tunga-storefront/models"
)

// AddToCart adds quantity units of product to the cart. An existing
// line for the same product id is incremented in place, preserving cart
// order; otherwise a new line is appended. Quantities below one are
// treated as one.
func (s *Store) AddToCart(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity += quantity
			s.persist(kv.KeyCart, s.cart)
			s.notifyLocked(fmt.Sprintf("%s quantity increased.", product.Name), models.NotifyInfo)
			return
		}
	}

	s.cart = append(s.cart, models.CartItem{Product: product, Quantity: quantity})
	s.persist(kv.KeyCart, s.cart)
	s.notifyLocked(fmt.Sprintf("%s added to cart!", product.Name), models.NotifySuccess)
}

// UpdateCartItemQuantity adds delta to the matching line's quantity.
// A resulting quantity of zero or below removes the line silently; an
// unknown product id is a no-op. No notification is emitted either way.
func (s *Store) UpdateCartItemQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID == productID {
			item.Quantity += delta
		}
		if item.Quantity > 0 {
			updated = append(updated, item)
		}
	}
	s.cart = updated
	s.persist(kv.KeyCart, s.cart)
}

// RemoveFromCart removes the matching line, if present, and reports the
// removal with an info notification.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID != productID {
			updated = append(updated, item)
		}
	}
	s.cart = updated
	s.persist(kv.KeyCart, s.cart)
	s.notifyLocked("Item removed from cart.", models.NotifyInfo)
}
