package catalog

import (
	"github.com/bakehouse/api/internal/enum"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Cake is set iff Category is cakes; that
// category is the only discriminant between simple products and cakes.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Popular     bool
	Cake        *CakeOptions
}

// CakeOptions are the customisations a cake can be ordered with.
type CakeOptions struct {
	Flavors  []string
	Fillings []string
	Toppings []string
}

// IsCake reports whether the product takes cake options (layers, flavor, ...).
func (p *Product) IsCake() bool {
	return p != nil && p.Category == enum.CategoryCakes
}

// Category pairs a category id with its storefront title.
type Category struct {
	ID    string
	Title string
}

var categoryTitles = map[string]string{
	enum.CategoryCakes:    "Custom Cakes",
	enum.CategoryPastries: "Flaky Pastries",
	enum.CategoryCupcakes: "Delicious Cupcakes",
	enum.CategoryCookies:  "Sweet Cookies",
	enum.CategoryBreads:   "Artisan Breads",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, 0, len(enum.Categories))
	for _, id := range enum.Categories {
		out = append(out, Category{ID: id, Title: categoryTitles[id]})
	}
	return out
}
