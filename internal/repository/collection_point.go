package repository

import (
	"context"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/model"
)

// CollectionPoints is the store collection holding drop-off locations.
const CollectionPoints = "pontosdecoleta"

// CollectionPointRepository handles collection-point data access.
type CollectionPointRepository struct {
	store database.Store
}

// NewCollectionPointRepository creates a new collection-point repository.
func NewCollectionPointRepository(store database.Store) *CollectionPointRepository {
	return &CollectionPointRepository{store: store}
}

// All returns every drop-off location.
func (r *CollectionPointRepository) All(ctx context.Context) ([]model.CollectionPoint, error) {
	records, err := r.store.Select(ctx, CollectionPoints, database.SelectOptions{})
	if err != nil {
		return nil, err
	}

	points := make([]model.CollectionPoint, 0, len(records))
	for _, rec := range records {
		f := rec.Fields
		points = append(points, model.CollectionPoint{
			ID:          rec.ID,
			Name:        str(f["nome_local"]),
			Address:     str(f["endereco"]),
			Phone:       str(f["telefone"]),
			Email:       str(f["email"]),
			Hours:       str(f["horario_funcionamento"]),
			ContactName: str(f["responsavel"]),
			Lat:         floatPtr(f["lat"]),
			Lng:         floatPtr(f["lng"]),
		})
	}
	return points, nil
}
