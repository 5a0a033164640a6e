package store

import (
	"fmt"

	"go.uber.org/zap"

	"tunga-storefront/kv"
	"tunga-storefront/models"
)

// CreateOrder appends the order exactly as given and clears the cart.
// No field validation is performed: the checkout flow is trusted to
// pass a consistent record. Callers outside checkout should prefer
// Checkout, which builds the order itself.
func (s *Store) CreateOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createOrderLocked(order)
}

func (s *Store) createOrderLocked(order models.Order) {
	s.orders = append(s.orders, order)
	s.cart = []models.CartItem{}
	s.persist(kv.KeyOrders, s.orders)
	s.persist(kv.KeyCart, s.cart)
}

// Checkout submits the current cart as a pending order paid with
// method. It requires a session (redirecting to login otherwise, the
// checkout page's best-effort guard), rejects the wallet method (shown
// in the UI but not yet payable) and any unknown method, then creates
// the order, notifies, navigates home and sends a best-effort
// confirmation email. Payment proof uploads are cosmetic and never
// stored.
func (s *Store) Checkout(method string) (models.Order, error) {
	s.mu.Lock()

	if s.session == nil {
		s.notifyLocked("Please log in to checkout.", models.NotifyError)
		s.navigateLocked(PageLogin)
		s.mu.Unlock()
		return models.Order{}, ErrLoginRequired
	}

	switch method {
	case models.MethodMobile, models.MethodBinance:
	case models.MethodWallet:
		s.mu.Unlock()
		return models.Order{}, ErrWalletCheckout
	default:
		s.notifyLocked("Please select a payment method.", models.NotifyError)
		s.mu.Unlock()
		return models.Order{}, ErrUnknownMethod
	}

	order := models.NewOrder(s.session.ID, s.cart, method, s.now())
	s.createOrderLocked(order)
	s.notifyLocked(fmt.Sprintf("Order #%s submitted! Status: Pending. Please complete your payment.", order.ID), models.NotifySuccess)
	s.navigateLocked(PageHome)
	email := s.session.Email
	s.mu.Unlock()

	if err := s.mailer.SendOrderConfirmation(email, order); err != nil {
		s.logger.Warn("failed to send order confirmation",
			zap.String("order_id", order.ID), zap.Error(err))
	}
	return order, nil
}
