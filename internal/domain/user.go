package domain

// User is a storefront account. Identity and credentials are immutable after
// load; only the cart is mutated at runtime.
type User struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Password string     `json:"password"`
	Cart     []CartLine `json:"cart"`
}
