package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCartItemAdded   EventType = "cart_item_added"
	EventCartQuantitySet EventType = "cart_quantity_set"
	EventCartItemRemoved EventType = "cart_item_removed"
)

// Event represents a cart mutation emitted by the cart service.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Username  string    `json:"username"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}
