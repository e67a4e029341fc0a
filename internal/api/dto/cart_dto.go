package dto

// AddCartItemRequest payload for POST /me/cart. The original client sends the
// product identifier under "id"; "productId" is the preferred field.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	ID        string `json:"id"`
}

// ResolveProductID returns whichever product identifier field was supplied.
func (r AddCartItemRequest) ResolveProductID() string {
	if r.ProductID != "" {
		return r.ProductID
	}
	return r.ID
}

// SetQuantityRequest payload for POST /me/cart/:productId.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
