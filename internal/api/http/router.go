package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Docs           *handlers.DocsHandler
	Catalog        *handlers.CatalogHandler
	Auth           *handlers.AuthHandler
	Cart           *handlers.CartHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/api-docs", cfg.Docs.UI)
	app.Get("/api-docs/openapi.yaml", cfg.Docs.Schema)

	app.Get("/brands", cfg.Catalog.ListBrands)
	app.Get("/brands/:id/products", cfg.Catalog.ListBrandProducts)
	app.Get("/products", cfg.Catalog.ListProducts)

	app.Post("/login", cfg.Auth.Login)

	me := app.Group("/me", cfg.AuthMiddleware.Handle)
	me.Get("/cart", cfg.Cart.GetCart)
	me.Post("/cart", cfg.Cart.AddItem)
	me.Post("/cart/:productId", cfg.Cart.SetQuantity)
	me.Delete("/cart/:productId", cfg.Cart.RemoveItem)
}
