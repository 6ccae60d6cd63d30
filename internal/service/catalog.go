package service

import (
	"context"

	"github.com/varaldossonhos/api/internal/model"
)

// EventRepository defines the event reads the catalog needs.
type EventRepository interface {
	Featured(ctx context.Context) ([]model.Event, error)
}

// LetterRepository defines the letter reads and the availability flip.
type LetterRepository interface {
	Available(ctx context.Context) ([]model.Letter, error)
	GetByID(ctx context.Context, id string) (*model.Letter, error)
	SetStatus(ctx context.Context, id string, status model.LetterStatus) error
}

// CollectionPointRepository defines the collection-point reads.
type CollectionPointRepository interface {
	All(ctx context.Context) ([]model.CollectionPoint, error)
}

// CatalogService serves the read-only reference data: featured events,
// available letters and drop-off locations.
type CatalogService struct {
	events  EventRepository
	letters LetterRepository
	points  CollectionPointRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(events EventRepository, letters LetterRepository, points CollectionPointRepository) *CatalogService {
	return &CatalogService{
		events:  events,
		letters: letters,
		points:  points,
	}
}

// FeaturedEvents returns the home-page events, soonest start first.
func (s *CatalogService) FeaturedEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.Featured(ctx)
}

// AvailableLetters returns the letters still open for adoption.
func (s *CatalogService) AvailableLetters(ctx context.Context) ([]model.Letter, error) {
	return s.letters.Available(ctx)
}

// CollectionPoints returns every drop-off location.
func (s *CatalogService) CollectionPoints(ctx context.Context) ([]model.CollectionPoint, error) {
	return s.points.All(ctx)
}
