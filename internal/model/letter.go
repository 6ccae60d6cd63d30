package model

// LetterStatus represents the availability of a donation-request letter.
type LetterStatus string

const (
	LetterStatusAvailable LetterStatus = "available"
	LetterStatusPledged   LetterStatus = "pledged"
)

// Letter is a donation-request item: a child's wished-for gift, pinned to a
// collection point. Letters are read-only from the API's perspective except
// for the status flip to pledged when an adoption is registered.
type Letter struct {
	ID              string       `json:"id"`
	ChildName       string       `json:"childName"`
	Age             string       `json:"age,omitempty"`
	Wish            string       `json:"wish"`
	CollectionPoint string       `json:"collectionPoint,omitempty"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	Status          LetterStatus `json:"status"`
}
