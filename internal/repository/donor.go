package repository

import (
	"context"
	"time"

	"github.com/varaldossonhos/api/internal/database"
	"github.com/varaldossonhos/api/internal/model"
)

// CollectionDonors is the store collection holding donor accounts.
const CollectionDonors = "usuario"

// DonorRepository handles donor data access.
type DonorRepository struct {
	store database.Store
}

// NewDonorRepository creates a new donor repository.
func NewDonorRepository(store database.Store) *DonorRepository {
	return &DonorRepository{store: store}
}

// Create inserts a new donor and fills in the assigned id.
func (r *DonorRepository) Create(ctx context.Context, donor *model.Donor) error {
	if donor.RegisteredOn.IsZero() {
		donor.RegisteredOn = time.Now()
	}

	fields := database.Fields{
		"nome":          donor.Name,
		"email":         donor.Email,
		"senha":         donor.PasswordHash,
		"tipo_usuario":  "doador",
		"status":        string(donor.Status),
		"data_cadastro": donor.RegisteredOn.Format(storeDate),
	}
	if donor.Phone != "" {
		fields["telefone"] = donor.Phone
	}
	if donor.City != "" {
		fields["cidade"] = donor.City
	}

	created, err := r.store.Create(ctx, CollectionDonors, []database.Fields{fields})
	if err != nil {
		return err
	}
	donor.ID = created[0].ID
	return nil
}

// GetByEmail looks a donor up by the natural key, returning (nil, nil) when no
// account matches.
func (r *DonorRepository) GetByEmail(ctx context.Context, email string) (*model.Donor, error) {
	records, err := r.store.Select(ctx, CollectionDonors, database.SelectOptions{
		Filter: database.Where("email", email),
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	donor := donorFromRecord(records[0])
	return &donor, nil
}

func donorFromRecord(rec database.Record) model.Donor {
	f := rec.Fields

	status := model.DonorStatus(str(f["status"]))
	if status == "" {
		status = model.DonorStatusActive
	}

	return model.Donor{
		ID:           rec.ID,
		Name:         str(f["nome"]),
		Email:        str(f["email"]),
		Phone:        str(f["telefone"]),
		City:         str(f["cidade"]),
		PasswordHash: str(f["senha"]),
		Status:       status,
		RegisteredOn: parseTime(f["data_cadastro"]),
	}
}
