package store

import (
	"fmt"
	"strconv"

	"tunga-storefront/kv"
	"tunga-storefront/models"
)

// DashboardStats summarizes the admin dashboard tiles.
type DashboardStats struct {
	TotalUsers    int
	PendingOrders int
	TotalSales    int64
}

func (s *Store) requireAdminLocked() error {
	if s.session == nil || !s.session.IsAdmin {
		s.notifyLocked("Admin access required.", models.NotifyError)
		return ErrAdminRequired
	}
	return nil
}

// Dashboard returns the admin dashboard numbers. Only an admin session
// may read them.
func (s *Store) Dashboard() (DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdminLocked(); err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{TotalUsers: len(s.users)}
	for _, order := range s.orders {
		stats.TotalSales += order.Total
		if order.Status == models.StatusPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

// AddProduct appends a product to the catalog and persists the whole
// collection (products are never edited in place). Admin only. A
// missing id gets a timestamp-derived one.
func (s *Store) AddProduct(product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdminLocked(); err != nil {
		return err
	}
	if product.Name == "" || product.Price <= 0 {
		s.notifyLocked("Please enter a valid product name and price.", models.NotifyError)
		return ErrMissingField
	}
	if product.ID == "" {
		product.ID = "p" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	s.products = append(s.products, product)
	s.persist(kv.KeyProducts, s.products)
	s.notifyLocked(fmt.Sprintf("%s added successfully!", product.Name), models.NotifySuccess)
	return nil
}

// ReplaceCatalog swaps the whole product collection, the only way
// existing products change. Admin only.
func (s *Store) ReplaceCatalog(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdminLocked(); err != nil {
		return err
	}

	s.products = append([]models.Product(nil), products...)
	s.persist(kv.KeyProducts, s.products)
	return nil
}
