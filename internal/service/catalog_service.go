package service

import (
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CatalogService serves the read-only brand and product catalog.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService builds the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListBrands returns all brands in load order.
func (s *CatalogService) ListBrands() []domain.Brand {
	return s.catalog.ListBrands()
}

// ListProducts returns all products in load order.
func (s *CatalogService) ListProducts() []domain.Product {
	return s.catalog.ListProducts()
}

// ListProductsByBrand returns the brand's products. Brand existence is
// checked directly, so a brand with zero products yields an empty list
// rather than a not-found error.
func (s *CatalogService) ListProductsByBrand(brandID string) ([]domain.Product, error) {
	if !s.catalog.BrandExists(brandID) {
		return nil, apperrors.NewNotFound("Brand not found")
	}
	return s.catalog.ListProductsByBrand(brandID), nil
}
