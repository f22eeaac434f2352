package domain

import "time"

// Defaults applied at checkout when the caller omits the field.
const (
	DefaultOrderStatus   = "Pending"
	DefaultPaymentMethod = "Transfer Bank"
)

// OrderItem is a schema-less snapshot of whatever the caller put in the cart.
// Items are copies of product data plus quantity taken at checkout time, not
// live references, so later catalog changes never touch an existing order.
type OrderItem map[string]any

// Order is a checkout record. Username is a free-text reference to a User;
// no relationship to live users or products is enforced.
type Order struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"createdAt"`
}
