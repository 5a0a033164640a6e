package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Official contact details shown in the footer and on the checkout page.
const (
	ContactWhatsApp = "250732388667"
	ContactPhone    = "0794633684"
	ContactEmail    = "uragiwenimanapatrick26@gmail.com"
)

// SeedProducts returns the default catalog used when no persisted
// catalog exists.
func SeedProducts() []Product {
	return []Product{
		{ID: "p001", Name: "Nike Air Max 270", Category: CategoryMen, Price: 25000, ImageURL: "https://cdn.pixabay.com/photo/2016/11/19/18/06/feet-1840619_1280.jpg"},
		{ID: "p002", Name: "Puma Retro T-Shirt", Category: CategoryMen, Price: 12000, ImageURL: "https://cdn.pixabay.com/photo/2016/12/06/09/31/blank-1886008_1280.png"},
		{ID: "p003", Name: "Adidas Sports Bra", Category: CategoryWomen, Price: 18000, ImageURL: "https://cdn.pixabay.com/photo/2017/08/01/08/29/woman-2563491_1280.jpg"},
		{ID: "p004", Name: "Children’s Toy Car", Category: CategoryKids, Price: 6000, ImageURL: "https://images.unsplash.com/photo-1601925375545-3f3f9828e83b?w=600&h=400&fit=crop&q=70"},
		{ID: "p005", Name: "Local Honey Jar", Category: CategoryFood, Price: 8000, ImageURL: "https://images.unsplash.com/photo-1558230278-f73752e25697?w=600&h=400&fit=crop&q=70"},
		{ID: "p006", Name: "Men’s Analog Watch", Category: CategoryMen, Price: 55000, ImageURL: "https://images.unsplash.com/photo-1523275371510-ae2da3b98c56?w=600&h=400&fit=crop&q=70"},
	}
}

// SeedUsers returns the default user list: a single administrator
// account, used when no persisted users exist.
func SeedUsers() []User {
	return []User{
		{ID: "u000", Email: "admin@tunga.com", Password: "password123", Name: "Admin User", IsAdmin: true, Wallet: 50000},
	}
}

// LoadCatalogFile reads a YAML catalog override, letting a deployment
// replace the seed products without code changes.
func LoadCatalogFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var products []Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return products, nil
}
