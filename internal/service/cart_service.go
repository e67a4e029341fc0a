package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CartService applies cart operations for an authenticated identity.
type CartService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewCartService builds the service.
func NewCartService(users repository.UserRepository, dispatcher events.Dispatcher) *CartService {
	return &CartService{users: users, dispatcher: dispatcher}
}

// GetCart returns the caller's cart.
func (s *CartService) GetCart(identity auth.Identity) ([]domain.CartLine, error) {
	cart, err := s.users.GetCart(identity.Username)
	if err != nil {
		return nil, mapCartError(err)
	}
	return cart, nil
}

// AddItem appends a quantity-1 line for the product, or increments the
// existing line by 1. The product id is not checked against the catalog.
func (s *CartService) AddItem(ctx context.Context, identity auth.Identity, productID string) ([]domain.CartLine, error) {
	cart, err := s.users.AddCartItem(identity.Username, productID)
	if err != nil {
		return nil, mapCartError(err)
	}
	s.publish(ctx, events.EventCartItemAdded, identity.Username, productID, quantityOf(cart, productID))
	return cart, nil
}

// SetQuantity overwrites the quantity on an existing line. The quantity is
// stored as-is; there is no positivity validation.
func (s *CartService) SetQuantity(ctx context.Context, identity auth.Identity, productID string, quantity int) ([]domain.CartLine, error) {
	cart, err := s.users.SetCartQuantity(identity.Username, productID, quantity)
	if err != nil {
		return nil, mapCartError(err)
	}
	s.publish(ctx, events.EventCartQuantitySet, identity.Username, productID, quantity)
	return cart, nil
}

// RemoveItem deletes the line for the product.
func (s *CartService) RemoveItem(ctx context.Context, identity auth.Identity, productID string) ([]domain.CartLine, error) {
	cart, err := s.users.RemoveCartItem(identity.Username, productID)
	if err != nil {
		return nil, mapCartError(err)
	}
	s.publish(ctx, events.EventCartItemRemoved, identity.Username, productID, 0)
	return cart, nil
}

func (s *CartService) publish(ctx context.Context, eventType events.EventType, username, productID string, quantity int) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		ProductID: productID,
		Quantity:  quantity,
		Timestamp: time.Now(),
	})
}

func mapCartError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return apperrors.NewUnauthorized("Unauthorized")
	case errors.Is(err, repository.ErrCartLineNotFound):
		return apperrors.NewNotFound("Product not found in cart")
	default:
		return apperrors.NewInternalError(err)
	}
}

func quantityOf(cart []domain.CartLine, productID string) int {
	for _, line := range cart {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}
