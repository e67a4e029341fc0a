package domain

// Product is a catalog item belonging to a brand. Immutable after load.
type Product struct {
	ID          string   `json:"id"`
	BrandID     string   `json:"brandId"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"imageUrls"`
}
