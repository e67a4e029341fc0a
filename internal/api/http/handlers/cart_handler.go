package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CartHandler exposes the authenticated cart endpoints under /me.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cart: cartService}
}

// GetCart handles GET /me/cart.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	cart, err := h.cart.GetCart(*identity)
	if err != nil {
		return err
	}
	return c.JSON(cart)
}

// AddItem handles POST /me/cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Product id is required")
	}
	productID := req.ResolveProductID()
	if productID == "" {
		return apperrors.NewValidationError("Product id is required")
	}

	cart, err := h.cart.AddItem(c.UserContext(), *identity, productID)
	if err != nil {
		return err
	}
	return c.JSON(cart)
}

// SetQuantity handles POST /me/cart/:productId.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	var req dto.SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Quantity is required")
	}

	cart, err := h.cart.SetQuantity(c.UserContext(), *identity, c.Params("productId"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(cart)
}

// RemoveItem handles DELETE /me/cart/:productId.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	cart, err := h.cart.RemoveItem(c.UserContext(), *identity, c.Params("productId"))
	if err != nil {
		return err
	}
	return c.JSON(cart)
}
