package domain

// CartLine is one product-quantity pair within a user's cart.
// A cart never holds two lines for the same product.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
