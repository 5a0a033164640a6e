package models

// Product categories shown as tabs on the products page.
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
	CategoryKids  = "kids"
	CategoryFood  = "food"
)

// Product represents a catalog item. Prices are integers in minor
// currency units (RWF). Products are immutable once created; the admin
// panel replaces the whole catalog collection instead of editing rows.
type Product struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Price    int64  `json:"price" yaml:"price"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
}

// FilterByCategory returns the products matching category, or all
// products when category is "all".
func FilterByCategory(products []Product, category string) []Product {
	if category == "all" {
		return products
	}
	filtered := []Product{}
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
