package repository

import (
	"context"
	"time"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/model"
)

// CollectionDonations is the store collection holding adoption pledges.
const CollectionDonations = "doacoes"

// DonationRepository handles donation data access.
type DonationRepository struct {
	store database.Store
}

// NewDonationRepository creates a new donation repository.
func NewDonationRepository(store database.Store) *DonationRepository {
	return &DonationRepository{store: store}
}

// Create inserts a new donation and fills in the assigned id.
func (r *DonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	if donation.CreatedOn.IsZero() {
		donation.CreatedOn = time.Now()
	}

	fields := database.Fields{
		"doador":               donation.DonorEmail,
		"cartinha":             donation.LetterID,
		"ponto_coleta":         donation.CollectionPoint,
		"data_doacao":          donation.CreatedOn.Format(storeDate),
		"status_doacao":        string(donation.Status),
		"mensagem_confirmacao": donation.ConfirmationMessage,
	}

	created, err := r.store.Create(ctx, CollectionDonations, []database.Fields{fields})
	if err != nil {
		return err
	}
	donation.ID = created[0].ID
	return nil
}

// SetStatus persists a new status and its derived confirmation message, and
// returns the updated donation.
func (r *DonationRepository) SetStatus(ctx context.Context, id string, status model.DonationStatus, message string) (*model.Donation, error) {
	updated, err := r.store.Update(ctx, CollectionDonations, []database.Update{{
		ID: id,
		Fields: database.Fields{
			"status_doacao":        string(status),
			"mensagem_confirmacao": message,
		},
	}})
	if err != nil {
		return nil, err
	}
	donation := donationFromRecord(updated[0])
	return &donation, nil
}

func donationFromRecord(rec database.Record) model.Donation {
	f := rec.Fields
	return model.Donation{
		ID:                  rec.ID,
		DonorEmail:          str(f["doador"]),
		LetterID:            str(f["cartinha"]),
		CollectionPoint:     str(f["ponto_coleta"]),
		CreatedOn:           parseTime(f["data_doacao"]),
		Status:              model.DonationStatus(str(f["status_doacao"])),
		ConfirmationMessage: str(f["mensagem_confirmacao"]),
	}
}
