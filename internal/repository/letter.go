package repository

import (
	"context"
	"errors"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/model"
)

// CollectionLetters is the store collection holding donation-request letters.
const CollectionLetters = "cartinhas"

// LetterRepository handles letter data access.
type LetterRepository struct {
	store database.Store
}

// NewLetterRepository creates a new letter repository.
func NewLetterRepository(store database.Store) *LetterRepository {
	return &LetterRepository{store: store}
}

// Available returns the letters still open for adoption.
func (r *LetterRepository) Available(ctx context.Context) ([]model.Letter, error) {
	records, err := r.store.Select(ctx, CollectionLetters, database.SelectOptions{
		Filter: database.Where("status", string(model.LetterStatusAvailable)),
	})
	if err != nil {
		return nil, err
	}

	letters := make([]model.Letter, 0, len(records))
	for _, rec := range records {
		letters = append(letters, letterFromRecord(rec))
	}
	return letters, nil
}

// GetByID returns one letter, or (nil, nil) when it does not exist.
func (r *LetterRepository) GetByID(ctx context.Context, id string) (*model.Letter, error) {
	rec, err := r.store.Find(ctx, CollectionLetters, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	letter := letterFromRecord(rec)
	return &letter, nil
}

// SetStatus flips a letter's availability status.
func (r *LetterRepository) SetStatus(ctx context.Context, id string, status model.LetterStatus) error {
	_, err := r.store.Update(ctx, CollectionLetters, []database.Update{{
		ID:     id,
		Fields: database.Fields{"status": string(status)},
	}})
	return err
}

func letterFromRecord(rec database.Record) model.Letter {
	f := rec.Fields

	name := firstStr(f, "nome_crianca", "primeiro_nome")
	if name == "" {
		name = "Anônimo"
	}

	status := model.LetterStatus(str(f["status"]))
	if status == "" {
		status = model.LetterStatusAvailable
	}

	return model.Letter{
		ID:              rec.ID,
		ChildName:       name,
		Age:             str(f["idade"]),
		Wish:            str(f["sonho"]),
		CollectionPoint: str(f["ponto_coleta"]),
		ImageURL:        attachmentURL(f["imagem_cartinha"]),
		Status:          status,
	}
}
