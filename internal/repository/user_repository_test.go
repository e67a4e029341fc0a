package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

func newUserFixture() repository.UserRepository {
	users := []domain.User{
		{ID: "1", Username: "yellowleopard753", Password: "jonjon"},
		{ID: gofakeit.UUID(), Username: gofakeit.Username(), Password: gofakeit.UUID()},
	}
	return repository.NewUserRepository(users)
}

func TestGetByUsername(t *testing.T) {
	store := newUserFixture()

	user, err := store.GetByUsername("yellowleopard753")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "jonjon", user.Password)

	_, err = store.GetByUsername("nobody")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestGetCartStartsEmpty(t *testing.T) {
	store := newUserFixture()

	cart, err := store.GetCart("yellowleopard753")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestAddCartItem(t *testing.T) {
	store := newUserFixture()

	cart, err := store.AddCartItem("yellowleopard753", "1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, domain.CartLine{ProductID: "1", Quantity: 1}, cart[0])

	// same product again increments, never duplicates
	cart, err = store.AddCartItem("yellowleopard753", "1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	cart, err = store.AddCartItem("yellowleopard753", "2")
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, "2", cart[1].ProductID)
}

func TestSetCartQuantity(t *testing.T) {
	store := newUserFixture()

	_, err := store.AddCartItem("yellowleopard753", "1")
	require.NoError(t, err)

	cart, err := store.SetCartQuantity("yellowleopard753", "1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart[0].Quantity)

	_, err = store.SetCartQuantity("yellowleopard753", "999", 5)
	require.ErrorIs(t, err, repository.ErrCartLineNotFound)
}

func TestRemoveCartItem(t *testing.T) {
	store := newUserFixture()

	_, err := store.AddCartItem("yellowleopard753", "1")
	require.NoError(t, err)
	_, err = store.AddCartItem("yellowleopard753", "2")
	require.NoError(t, err)

	cart, err := store.RemoveCartItem("yellowleopard753", "1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].ProductID)

	_, err = store.RemoveCartItem("yellowleopard753", "1")
	require.ErrorIs(t, err, repository.ErrCartLineNotFound)
}

func TestCartSnapshotDoesNotAliasStore(t *testing.T) {
	store := newUserFixture()

	_, err := store.AddCartItem("yellowleopard753", "1")
	require.NoError(t, err)

	cart, err := store.GetCart("yellowleopard753")
	require.NoError(t, err)
	cart[0].Quantity = 99

	fresh, err := store.GetCart("yellowleopard753")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh[0].Quantity)
}

func TestConcurrentAddKeepsSingleLine(t *testing.T) {
	store := newUserFixture()

	const n = 100
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := store.AddCartItem("yellowleopard753", "1")
			return err
		})
	}
	require.NoError(t, g.Wait())

	cart, err := store.GetCart("yellowleopard753")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, n, cart[0].Quantity)
}
