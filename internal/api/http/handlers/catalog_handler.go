package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/service"
)

// CatalogHandler exposes the public catalog endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListBrands handles GET /brands.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	return c.JSON(h.catalog.ListBrands())
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(h.catalog.ListProducts())
}

// ListBrandProducts handles GET /brands/:id/products.
func (h *CatalogHandler) ListBrandProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListProductsByBrand(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}
