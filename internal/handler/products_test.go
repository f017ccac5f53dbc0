package handler_test

import (
	"net/http"
	"testing"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/handler"
	"github.com/go-chi/chi/v5"
)

func setupProductRouter(t *testing.T) *chi.Mux {
	t.Helper()
	c, err := catalog.NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	h := handler.NewProductHandler(c)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// --- Tests ---

func TestListCategories(t *testing.T) {
	router := setupProductRouter(t)

	rr := doRequest(t, router, "GET", "/categories", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	cats := decodeList(t, rr)
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	if cats[0]["id"] != "cakes" || cats[0]["title"] != "Custom Cakes" {
		t.Errorf("first category: got %v", cats[0])
	}
}

func TestListProducts(t *testing.T) {
	router := setupProductRouter(t)

	rr := doRequest(t, router, "GET", "/products", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if got := len(decodeList(t, rr)); got != 24 {
		t.Errorf("expected 24 products, got %d", got)
	}
}

func TestListProducts_Popular(t *testing.T) {
	router := setupProductRouter(t)

	rr := doRequest(t, router, "GET", "/products?popular=true", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	products := decodeList(t, rr)
	if len(products) != 12 {
		t.Errorf("expected 12 popular products, got %d", len(products))
	}
	for _, p := range products {
		if p["popular"] != true {
			t.Errorf("non-popular product in list: %v", p["id"])
		}
	}
}

func TestListProducts_ByCategory(t *testing.T) {
	router := setupProductRouter(t)

	rr := doRequest(t, router, "GET", "/products?category=breads", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	products := decodeList(t, rr)
	if len(products) != 4 {
		t.Fatalf("expected 4 breads, got %d", len(products))
	}
	for _, p := range products {
		if p["category"] != "breads" {
			t.Errorf("wrong category: %v", p["category"])
		}
		if _, ok := p["options"]; ok {
			t.Errorf("bread %v should not carry cake options", p["id"])
		}
	}

	rr = doRequest(t, router, "GET", "/products?category=cakes&popular=true", nil)
	if got := len(decodeList(t, rr)); got != 4 {
		t.Errorf("expected 4 popular cakes, got %d", got)
	}
}

func TestListProducts_BadFilters(t *testing.T) {
	router := setupProductRouter(t)

	if rr := doRequest(t, router, "GET", "/products?category=pies", nil); rr.Code != http.StatusBadRequest {
		t.Errorf("unknown category: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if rr := doRequest(t, router, "GET", "/products?popular=maybe", nil); rr.Code != http.StatusBadRequest {
		t.Errorf("bad popular flag: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestGetProduct_Cake(t *testing.T) {
	router := setupProductRouter(t)

	rr := doRequest(t, router, "GET", "/products/chocolate-cake", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	resp := decodeMap(t, rr)
	if resp["price"] != "1500.00" {
		t.Errorf("price: got %v", resp["price"])
	}
	if resp["formatted_price"] != "₹1,500.00" {
		t.Errorf("formatted_price: got %v", resp["formatted_price"])
	}
	opts, ok := resp["options"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected cake options, got %v", resp["options"])
	}
	if flavors, _ := opts["flavors"].([]interface{}); len(flavors) == 0 {
		t.Error("expected flavors")
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	router := setupProductRouter(t)

	rr := doRequest(t, router, "GET", "/products/apple-pie", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
	if resp := decodeMap(t, rr); resp["error"] != "product not found" {
		t.Errorf("error: got %v", resp["error"])
	}
}
