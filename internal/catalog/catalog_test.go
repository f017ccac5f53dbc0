package catalog

import (
	"errors"
	"testing"

	"github.com/bakehouse/api/internal/enum"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	return c
}

func TestNewDefault_SeedIsValid(t *testing.T) {
	c := newTestCatalog(t)

	if got := len(c.All()); got != 24 {
		t.Fatalf("expected 24 products, got %d", got)
	}

	counts := map[string]int{}
	for _, p := range c.All() {
		counts[p.Category]++
	}
	if counts[enum.CategoryCakes] != 8 {
		t.Errorf("cakes: got %d, want 8", counts[enum.CategoryCakes])
	}
	for _, cat := range []string{enum.CategoryPastries, enum.CategoryCupcakes, enum.CategoryCookies, enum.CategoryBreads} {
		if counts[cat] != 4 {
			t.Errorf("%s: got %d, want 4", cat, counts[cat])
		}
	}
}

func TestProduct_Found(t *testing.T) {
	c := newTestCatalog(t)

	p, err := c.Product("chocolate-cake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Rich Chocolate Cake" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.Price.IntPart() != 1500 {
		t.Errorf("price: got %s, want 1500", p.Price)
	}
	if !p.IsCake() {
		t.Error("expected chocolate-cake to be a cake")
	}
}

func TestProduct_NotFound(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Product("does-not-exist")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProduct_CakeOptions(t *testing.T) {
	c := newTestCatalog(t)

	cake, err := c.Product("red-velvet-cake")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if !cake.IsCake() || cake.Cake == nil {
		t.Fatal("expected red-velvet-cake to carry cake options")
	}
	if len(cake.Cake.Flavors) != 2 || cake.Cake.Flavors[0] != enum.FlavorRedVelvet {
		t.Errorf("flavors: got %v", cake.Cake.Flavors)
	}

	pastry, err := c.Product("croissant")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if pastry.IsCake() || pastry.Cake != nil {
		t.Error("croissant must not carry cake options")
	}
}

func TestByCategory(t *testing.T) {
	c := newTestCatalog(t)

	breads, err := c.ByCategory(enum.CategoryBreads)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(breads) != 4 {
		t.Fatalf("expected 4 breads, got %d", len(breads))
	}
	for _, p := range breads {
		if p.Category != enum.CategoryBreads {
			t.Errorf("unexpected category %q for %s", p.Category, p.ID)
		}
		if p.Cake != nil {
			t.Errorf("bread %s must not carry cake options", p.ID)
		}
	}

	if _, err := c.ByCategory("pies"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestPopular(t *testing.T) {
	c := newTestCatalog(t)

	popular := c.Popular()
	if len(popular) != 12 {
		t.Fatalf("expected 12 popular products, got %d", len(popular))
	}
	for _, p := range popular {
		if !p.Popular {
			t.Errorf("%s is not popular", p.ID)
		}
	}
}

func TestReturnedProductsAreCopies(t *testing.T) {
	c := newTestCatalog(t)

	p, _ := c.Product("vanilla-cake")
	p.Name = "changed"
	p.Cake.Flavors[0] = "changed"

	again, _ := c.Product("vanilla-cake")
	if again.Name != "Classic Vanilla Cake" {
		t.Errorf("catalog name mutated: %q", again.Name)
	}
	if again.Cake.Flavors[0] != enum.FlavorVanilla {
		t.Errorf("catalog flavors mutated: %v", again.Cake.Flavors)
	}
}

func TestNew_RejectsInvalidSeed(t *testing.T) {
	base := Seed()[0]

	tests := []struct {
		name   string
		mutate func(p *Product)
		want   error
	}{
		{"unknown category", func(p *Product) { p.Category = "pies" }, ErrUnknownCategory},
		{"cake without options", func(p *Product) { p.Cake = nil }, ErrInvalidProduct},
		{"empty flavors", func(p *Product) { p.Cake = &CakeOptions{Fillings: []string{enum.FillingCaramel}, Toppings: []string{enum.ToppingFlowers}} }, ErrInvalidProduct},
		{"unknown topping", func(p *Product) {
			p.Cake = &CakeOptions{Flavors: []string{enum.FlavorLemon}, Fillings: []string{enum.FillingCaramel}, Toppings: []string{"glitter"}}
		}, ErrInvalidProduct},
		{"options on non-cake", func(p *Product) { p.Category = enum.CategoryBreads }, ErrInvalidProduct},
		{"missing id", func(p *Product) { p.ID = "" }, ErrInvalidProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := clone(base)
			tt.mutate(&p)
			_, err := New([]Product{p})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	p := Seed()[0]
	_, err := New([]Product{p, p})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	if cats[0].ID != enum.CategoryCakes || cats[0].Title != "Custom Cakes" {
		t.Errorf("first category: got %+v", cats[0])
	}
	if cats[4].Title != "Artisan Breads" {
		t.Errorf("last category title: got %q", cats[4].Title)
	}
}
