package model

// CollectionPoint is a physical drop-off location for pledged gifts.
// Read-only reference data.
type CollectionPoint struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Hours       string   `json:"hours,omitempty"`
	ContactName string   `json:"contactName,omitempty"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}
