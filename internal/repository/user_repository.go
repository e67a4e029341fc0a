package repository

import (
	"errors"
	"sync"

	"github.com/spec-kit/storefront-service/internal/domain"
)

var (
	// ErrUserNotFound indicates no user matches the given identity.
	ErrUserNotFound = errors.New("user not found")
	// ErrCartLineNotFound indicates the cart holds no line for the product.
	ErrCartLineNotFound = errors.New("cart line not found")
)

// UserRepository is the mutable in-memory user store. Cart mutations are
// serialized by an internal lock so that a cart never ends up with two lines
// for the same product, even under concurrent requests.
type UserRepository interface {
	GetByUsername(username string) (*domain.User, error)
	GetCart(username string) ([]domain.CartLine, error)
	AddCartItem(username, productID string) ([]domain.CartLine, error)
	SetCartQuantity(username, productID string, quantity int) ([]domain.CartLine, error)
	RemoveCartItem(username, productID string) ([]domain.CartLine, error)
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewUserRepository seeds an in-memory store keyed by username. Carts are
// lost when the process exits.
func NewUserRepository(users []domain.User) UserRepository {
	byName := make(map[string]*domain.User, len(users))
	for i := range users {
		u := users[i]
		if u.Cart == nil {
			u.Cart = []domain.CartLine{}
		}
		byName[u.Username] = &u
	}
	return &userRepository{users: byName}
}

func (r *userRepository) GetByUsername(username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	copied.Cart = snapshotCart(user.Cart)
	return &copied, nil
}

func (r *userRepository) GetCart(username string) ([]domain.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return snapshotCart(user.Cart), nil
}

func (r *userRepository) AddCartItem(username, productID string) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Quantity++
			return snapshotCart(user.Cart), nil
		}
	}
	user.Cart = append(user.Cart, domain.CartLine{ProductID: productID, Quantity: 1})
	return snapshotCart(user.Cart), nil
}

func (r *userRepository) SetCartQuantity(username, productID string, quantity int) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart[i].Quantity = quantity
			return snapshotCart(user.Cart), nil
		}
	}
	return nil, ErrCartLineNotFound
}

func (r *userRepository) RemoveCartItem(username, productID string) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	for i := range user.Cart {
		if user.Cart[i].ProductID == productID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			return snapshotCart(user.Cart), nil
		}
	}
	return nil, ErrCartLineNotFound
}

// snapshotCart copies the cart so callers never alias the store's backing
// array.
func snapshotCart(cart []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(cart))
	copy(out, cart)
	return out
}
