package repository

import "github.com/spec-kit/storefront-service/internal/domain"

// CatalogRepository defines read access to the static catalog. Implementations
// are immutable after construction; returned slices must not be mutated.
type CatalogRepository interface {
	ListBrands() []domain.Brand
	ListProducts() []domain.Product
	BrandExists(brandID string) bool
	ListProductsByBrand(brandID string) []domain.Product
}

type catalogRepository struct {
	brands   []domain.Brand
	products []domain.Product
	brandIDs map[string]struct{}
}

// NewCatalogRepository returns an in-memory implementation seeded with the
// given records, preserving load order.
func NewCatalogRepository(brands []domain.Brand, products []domain.Product) CatalogRepository {
	brandIDs := make(map[string]struct{}, len(brands))
	for _, b := range brands {
		brandIDs[b.ID] = struct{}{}
	}
	return &catalogRepository{brands: brands, products: products, brandIDs: brandIDs}
}

func (r *catalogRepository) ListBrands() []domain.Brand {
	if r.brands == nil {
		return []domain.Brand{}
	}
	return r.brands
}

func (r *catalogRepository) ListProducts() []domain.Product {
	if r.products == nil {
		return []domain.Product{}
	}
	return r.products
}

func (r *catalogRepository) BrandExists(brandID string) bool {
	_, ok := r.brandIDs[brandID]
	return ok
}

func (r *catalogRepository) ListProductsByBrand(brandID string) []domain.Product {
	matched := make([]domain.Product, 0)
	for _, p := range r.products {
		if p.BrandID == brandID {
			matched = append(matched, p)
		}
	}
	return matched
}
