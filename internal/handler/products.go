package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/pricing"
	"github.com/go-chi/chi/v5"
)

// ProductCatalog defines the catalog lookups needed by product handlers.
// Satisfied by *catalog.Catalog; narrow interface for testability.
type ProductCatalog interface {
	All() []catalog.Product
	Popular() []catalog.Product
	ByCategory(category string) ([]catalog.Product, error)
	Product(id string) (*catalog.Product, error)
}

// ProductHandler serves the read-only storefront catalog.
type ProductHandler struct {
	catalog ProductCatalog
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(c ProductCatalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// RegisterRoutes registers catalog endpoints on the given Chi router.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/products", h.List)
	r.Get("/products/{id}", h.Get)
}

// --- Response types ---

type categoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type cakeOptionsResponse struct {
	Flavors  []string `json:"flavors"`
	Fillings []string `json:"fillings"`
	Toppings []string `json:"toppings"`
}

type productResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Price          string               `json:"price"`
	FormattedPrice string               `json:"formatted_price"`
	Image          string               `json:"image"`
	Category       string               `json:"category"`
	Popular        bool                 `json:"popular"`
	Options        *cakeOptionsResponse `json:"options,omitempty"`
}

func toProductResponse(p *catalog.Product) productResponse {
	resp := productResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price.StringFixed(2),
		FormattedPrice: pricing.FormatRupees(p.Price),
		Image:          p.Image,
		Category:       p.Category,
		Popular:        p.Popular,
	}
	if p.IsCake() && p.Cake != nil {
		resp.Options = &cakeOptionsResponse{
			Flavors:  p.Cake.Flavors,
			Fillings: p.Cake.Fillings,
			Toppings: p.Cake.Toppings,
		}
	}
	return resp
}

// --- Handlers ---

// ListCategories handles GET /categories.
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats := catalog.Categories()
	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = categoryResponse{ID: c.ID, Title: c.Title}
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /products with optional ?category= and ?popular=true filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var products []catalog.Product

	category := r.URL.Query().Get("category")
	popular := false
	if s := r.URL.Query().Get("popular"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid popular flag"})
			return
		}
		popular = v
	}

	switch {
	case category != "":
		list, err := h.catalog.ByCategory(category)
		if err != nil {
			if errors.Is(err, catalog.ErrUnknownCategory) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
				return
			}
			log.Printf("ERROR: list products by category: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		products = list
	case popular:
		products = h.catalog.Popular()
	default:
		products = h.catalog.All()
	}

	resp := make([]productResponse, 0, len(products))
	for i := range products {
		if popular && !products[i].Popular {
			continue
		}
		resp = append(resp, toProductResponse(&products[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Product(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ERROR: get product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}
