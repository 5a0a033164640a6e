package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunga-storefront/models"
)

func TestDashboard(t *testing.T) {
	t.Run("requires an admin session", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Dashboard()
		require.ErrorIs(t, err, ErrAdminRequired)

		s.Login(models.User{ID: "u1", Email: "u@example.com"})
		_, err = s.Dashboard()
		require.ErrorIs(t, err, ErrAdminRequired)
	})

	t.Run("aggregates users and orders", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)
		s.CreateOrder(models.Order{ID: "a", Total: 10000, Status: models.StatusPending})
		s.CreateOrder(models.Order{ID: "b", Total: 5000, Status: models.StatusCompleted})
		s.CreateOrder(models.Order{ID: "c", Total: 2500, Status: models.StatusPending})

		stats, err := s.Dashboard()

		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalUsers)
		assert.Equal(t, 2, stats.PendingOrders)
		assert.Equal(t, int64(17500), stats.TotalSales)
	})
}

func TestAddProduct(t *testing.T) {
	t.Run("requires an admin session", func(t *testing.T) {
		s := newTestStore(t)

		err := s.AddProduct(models.Product{Name: "Thing", Price: 100})

		require.ErrorIs(t, err, ErrAdminRequired)
		assert.Len(t, s.Snapshot().Products, 6)
	})

	t.Run("appends with a generated id", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		err := s.AddProduct(models.Product{Name: "Local Coffee", Category: models.CategoryFood, Price: 4500})

		require.NoError(t, err)
		snap := s.Snapshot()
		require.Len(t, snap.Products, 7)
		added := snap.Products[6]
		assert.Equal(t, "Local Coffee", added.Name)
		assert.NotEmpty(t, added.ID)
		assert.Equal(t, byte('p'), added.ID[0])
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		require.ErrorIs(t, s.AddProduct(models.Product{Price: 100}), ErrMissingField)
		require.ErrorIs(t, s.AddProduct(models.Product{Name: "Thing"}), ErrMissingField)
		assert.Len(t, s.Snapshot().Products, 6)
	})
}

func TestReplaceCatalog(t *testing.T) {
	t.Run("requires an admin session", func(t *testing.T) {
		s := newTestStore(t)

		err := s.ReplaceCatalog([]models.Product{})

		require.ErrorIs(t, err, ErrAdminRequired)
		assert.Len(t, s.Snapshot().Products, 6)
	})

	t.Run("swaps the whole collection", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)
		catalog := []models.Product{{ID: "x1", Name: "Only Item", Category: models.CategoryMen, Price: 1000}}

		require.NoError(t, s.ReplaceCatalog(catalog))

		snap := s.Snapshot()
		require.Len(t, snap.Products, 1)
		assert.Equal(t, "x1", snap.Products[0].ID)
	})
}
