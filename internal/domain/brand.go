package domain

// Brand is a catalog manufacturer entry. Immutable after load.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
