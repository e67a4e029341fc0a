package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func newCatalogServiceFixture() *service.CatalogService {
	catalog := repository.NewCatalogRepository(
		[]domain.Brand{
			{ID: "1", Name: "Oakley"},
			{ID: "2", Name: "Burberry"},
		},
		[]domain.Product{
			{ID: "1", BrandID: "1", Name: "Superglasses", Price: 150},
		},
	)
	return service.NewCatalogService(catalog)
}

func TestListProductsByBrandChecksBrandExistence(t *testing.T) {
	svc := newCatalogServiceFixture()

	products, err := svc.ListProductsByBrand("1")
	require.NoError(t, err)
	require.Len(t, products, 1)

	// a real brand with no products is an empty list, not a 404
	products, err = svc.ListProductsByBrand("2")
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)

	_, err = svc.ListProductsByBrand("999")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "Brand not found", domainErr.Message)
}
