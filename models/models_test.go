package models

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotals(t *testing.T) {
	items := []CartItem{
		{Product: Product{ID: "p1", Price: 25000}, Quantity: 2},
		{Product: Product{ID: "p2", Price: 12000}, Quantity: 1},
	}

	assert.Equal(t, int64(50000), items[0].Subtotal())
	assert.Equal(t, int64(62000), CartTotal(items))
	assert.Equal(t, 3, CartCount(items))
	assert.Equal(t, int64(0), CartTotal(nil))
}

func TestFilterByCategory(t *testing.T) {
	products := SeedProducts()

	assert.Len(t, FilterByCategory(products, "all"), len(products))
	men := FilterByCategory(products, CategoryMen)
	require.Len(t, men, 3)
	for _, p := range men {
		assert.Equal(t, CategoryMen, p.Category)
	}
	assert.Empty(t, FilterByCategory(products, "gadgets"))
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)

	id := NewOrderID(now)

	assert.Len(t, id, 10)
	full := strconv.FormatInt(now.UnixMilli(), 10)
	assert.Equal(t, full[len(full)-10:], id)
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)
	items := []CartItem{{Product: Product{ID: "p1", Name: "Shoe", Price: 25000}, Quantity: 2}}

	order := NewOrder("u000", items, MethodMobile, now)

	assert.Equal(t, "u000", order.UserID)
	assert.Equal(t, int64(50000), order.Total)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, "2026-08-28", order.Date)
	assert.Len(t, order.ID, 10)

	// The snapshot is a copy, not an alias.
	items[0].Quantity = 99
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestReferralCode(t *testing.T) {
	assert.Equal(t, "832ABC", User{ID: "u1724832abc"}.ReferralCode())
	assert.Equal(t, "U000", User{ID: "u000"}.ReferralCode())
	assert.Equal(t, "https://tunga.co/ref=U000", User{ID: "u000"}.ReferralLink())
}

func TestSeeds(t *testing.T) {
	products := SeedProducts()
	require.Len(t, products, 6)
	assert.Equal(t, "Nike Air Max 270", products[0].Name)
	assert.Equal(t, int64(25000), products[0].Price)

	users := SeedUsers()
	require.Len(t, users, 1)
	admin := users[0]
	assert.Equal(t, "u000", admin.ID)
	assert.Equal(t, "admin@tunga.com", admin.Email)
	assert.Equal(t, "password123", admin.Password)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, int64(50000), admin.Wallet)
}

func TestLoadCatalogFile(t *testing.T) {
	t.Run("parses a YAML catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		payload := `
- id: x1
  name: Local Coffee
  category: food
  price: 4500
  imageUrl: https://example.com/coffee.jpg
`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		products, err := LoadCatalogFile(path)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, Product{ID: "x1", Name: "Local Coffee", Category: CategoryFood, Price: 4500, ImageURL: "https://example.com/coffee.jpg"}, products[0])
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed YAML errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{nope"), 0o644))

		_, err := LoadCatalogFile(path)
		require.Error(t, err)
	})
}
