package router

import (
	"net/http"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/config"
	"github.com/bakehouse/api/internal/database"
	"github.com/bakehouse/api/internal/handler"
	"github.com/bakehouse/api/internal/orderform"
	"github.com/bakehouse/api/internal/service"
	"github.com/bakehouse/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
// Catalog routes are public; order session routes check the session token.
func New(cfg *config.Config, queries *database.Queries, products *catalog.Catalog, sessions *orderform.Registry, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	productHandler := handler.NewProductHandler(products)
	productHandler.RegisterRoutes(r)

	gateway := service.NewOrderGateway(queries)
	sessionHandler := handler.NewOrderSessionHandler(products, sessions, gateway, queries, hub, cfg.SessionSecret, cfg.SessionTTL)
	r.Route("/order-sessions", sessionHandler.RegisterRoutes)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/order-sessions/{sid}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.SessionSecret, w, r)
	})

	return r
}
