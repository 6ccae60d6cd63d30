package model

import "time"

// DonorStatus represents the account status of a donor.
type DonorStatus string

const (
	DonorStatusActive   DonorStatus = "active"
	DonorStatusInactive DonorStatus = "inactive"
)

// Donor represents a registered donor account. Email is the natural key used
// for login and duplicate-registration checks.
type Donor struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	City         string      `json:"city,omitempty"`
	PasswordHash string      `json:"-"` // Never expose the password hash
	Status       DonorStatus `json:"status"`
	RegisteredOn time.Time   `json:"registeredOn"`
}
