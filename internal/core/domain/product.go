package domain

// Product is a catalog entry. No field is required; the store persists
// whatever subset the caller supplies.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
