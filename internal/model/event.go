package model

// DefaultEventImage is served when an event record carries no image.
const DefaultEventImage = "/imagens/evento-padrao.jpg"

// Event is a campaign event shown on the home page when featured.
// Read-only reference data.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl"`
	Featured    bool   `json:"-"`
}
