package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

func newCatalogFixture() repository.CatalogRepository {
	brands := []domain.Brand{
		{ID: "1", Name: "Oakley"},
		{ID: "2", Name: "Ray Ban"},
		{ID: "3", Name: "Burberry"},
	}
	products := []domain.Product{
		{ID: "1", BrandID: "1", Name: "Superglasses", Price: 150},
		{ID: "2", BrandID: "1", Name: "Black Sunglasses", Price: 100},
		{ID: "3", BrandID: "2", Name: "Better glasses", Price: 1500},
	}
	return repository.NewCatalogRepository(brands, products)
}

func TestListBrandsPreservesLoadOrder(t *testing.T) {
	catalog := newCatalogFixture()

	brands := catalog.ListBrands()
	require.Len(t, brands, 3)
	assert.Equal(t, "Oakley", brands[0].Name)
	assert.Equal(t, "Ray Ban", brands[1].Name)
	assert.Equal(t, "Burberry", brands[2].Name)

	// repeated listings are identical, nothing mutates the catalog
	assert.Equal(t, brands, catalog.ListBrands())
}

func TestListProducts(t *testing.T) {
	catalog := newCatalogFixture()

	products := catalog.ListProducts()
	require.Len(t, products, 3)
	assert.Equal(t, products, catalog.ListProducts())
}

func TestListProductsByBrand(t *testing.T) {
	catalog := newCatalogFixture()

	oakley := catalog.ListProductsByBrand("1")
	require.Len(t, oakley, 2)
	for _, p := range oakley {
		assert.Equal(t, "1", p.BrandID)
	}

	// brand 3 exists but carries no products
	assert.NotNil(t, catalog.ListProductsByBrand("3"))
	assert.Empty(t, catalog.ListProductsByBrand("3"))
}

func TestBrandExists(t *testing.T) {
	catalog := newCatalogFixture()

	assert.True(t, catalog.BrandExists("1"))
	assert.True(t, catalog.BrandExists("3"))
	assert.False(t, catalog.BrandExists("999"))
}

func TestEmptyCatalog(t *testing.T) {
	catalog := repository.NewCatalogRepository(nil, nil)

	assert.NotNil(t, catalog.ListBrands())
	assert.NotNil(t, catalog.ListProducts())
	assert.Empty(t, catalog.ListBrands())
}
