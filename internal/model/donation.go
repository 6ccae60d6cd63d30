package model

import "time"

// DonationStatus is the delivery status of a pledge. The status machine is
// deliberately permissive: any string is accepted by the update operation and
// unrecognized values fall through to a generic support message.
type DonationStatus string

const (
	DonationStatusAwaitingDelivery DonationStatus = "AWAITING_DELIVERY"
	DonationStatusConfirmed        DonationStatus = "CONFIRMED"
	DonationStatusDelivered        DonationStatus = "DELIVERED"
)

// Donation records a donor's pledge to fulfill one letter. ConfirmationMessage
// is always derived from Status by the lifecycle engine, never set directly.
type Donation struct {
	ID                  string         `json:"id"`
	DonorEmail          string         `json:"donorEmail"`
	LetterID            string         `json:"letterId"`
	CollectionPoint     string         `json:"collectionPoint,omitempty"`
	CreatedOn           time.Time      `json:"createdOn"`
	Status              DonationStatus `json:"status"`
	ConfirmationMessage string         `json:"confirmationMessage"`
}
