package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bakehouse/api/internal/enum"
)

// Errors returned by the catalog.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Catalog is the read-only product store. Build one with New or NewDefault
// and share it; nothing mutates it after construction.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// NewDefault builds a Catalog from the storefront seed data.
func NewDefault() (*Catalog, error) {
	return New(Seed())
}

// New validates products and indexes them by id. Order is preserved.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product[%d] %q: %w", i, p.ID, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product[%d] %q: %w", i, p.ID, ErrDuplicateID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, clone(p))
	}
	return c, nil
}

// All returns every product, cakes first, in seed order.
func (c *Catalog) All() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, clone(p))
	}
	return out
}

// Popular returns products flagged as popular.
func (c *Catalog) Popular() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Popular {
			out = append(out, clone(p))
		}
	}
	return out
}

// ByCategory returns the products in category, or ErrUnknownCategory.
func (c *Catalog) ByCategory(category string) ([]Product, error) {
	if !slices.Contains(enum.Categories, category) {
		return nil, ErrUnknownCategory
	}
	out := []Product{}
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, clone(p))
		}
	}
	return out, nil
}

// Product resolves a product by id.
func (c *Catalog) Product(id string) (*Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := clone(c.products[i])
	return &p, nil
}

func validateProduct(p Product) error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: negative price", ErrInvalidProduct)
	}
	if !slices.Contains(enum.Categories, p.Category) {
		return ErrUnknownCategory
	}
	if p.IsCake() != (p.Cake != nil) {
		return fmt.Errorf("%w: cake options must be set exactly for cakes", ErrInvalidProduct)
	}
	if p.Cake == nil {
		return nil
	}
	if err := subset("flavors", p.Cake.Flavors, enum.Flavors); err != nil {
		return err
	}
	if err := subset("fillings", p.Cake.Fillings, enum.Fillings); err != nil {
		return err
	}
	return subset("toppings", p.Cake.Toppings, enum.Toppings)
}

func subset(name string, got, all []string) error {
	if len(got) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidProduct, name)
	}
	for _, v := range got {
		if !slices.Contains(all, v) {
			return fmt.Errorf("%w: unknown %s value %q", ErrInvalidProduct, name, v)
		}
	}
	return nil
}

func clone(p Product) Product {
	if p.Cake != nil {
		p.Cake = &CakeOptions{
			Flavors:  slices.Clone(p.Cake.Flavors),
			Fillings: slices.Clone(p.Cake.Fillings),
			Toppings: slices.Clone(p.Cake.Toppings),
		}
	}
	return p
}
