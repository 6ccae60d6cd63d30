package repository

import (
	"context"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/model"
)

// CollectionEvents is the store collection holding campaign events.
const CollectionEvents = "eventos"

// EventRepository handles event data access.
type EventRepository struct {
	store database.Store
}

// NewEventRepository creates a new event repository.
func NewEventRepository(store database.Store) *EventRepository {
	return &EventRepository{store: store}
}

// Featured returns the events flagged for the home page, oldest start first.
func (r *EventRepository) Featured(ctx context.Context) ([]model.Event, error) {
	records, err := r.store.Select(ctx, CollectionEvents, database.SelectOptions{
		Filter: database.Where("destaque_home", true),
		Sort:   &database.Sort{Field: "data_inicio"},
	})
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, eventFromRecord(rec))
	}
	return events, nil
}

func eventFromRecord(rec database.Record) model.Event {
	f := rec.Fields
	image := attachmentURL(f["imagem_evento"])
	if image == "" {
		image = attachmentURL(f["Imagem_evento"])
	}
	if image == "" {
		image = model.DefaultEventImage
	}

	name := firstStr(f, "nome_evento", "nome")
	if name == "" {
		name = "Evento sem nome"
	}

	return model.Event{
		ID:          rec.ID,
		Name:        name,
		StartDate:   str(f["data_inicio"]),
		Description: str(f["descricao"]),
		ImageURL:    image,
		Featured:    boolVal(f["destaque_home"]),
	}
}
