package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/varaldossonhos/api/internal/mailer"
	"github.com/varaldossonhos/api/internal/model"
)

// bcrypt cost factor (10-14 recommended for production)
const bcryptCost = 12

// DonorRepository defines the donor storage the service needs.
type DonorRepository interface {
	Create(ctx context.Context, donor *model.Donor) error
	GetByEmail(ctx context.Context, email string) (*model.Donor, error)
}

// DonorService handles donor registration and authentication.
type DonorService struct {
	donors DonorRepository
	mail   mailer.Sender
}

// NewDonorService creates a new donor service.
func NewDonorService(donors DonorRepository, mail mailer.Sender) *DonorService {
	return &DonorService{
		donors: donors,
		mail:   mail,
	}
}

// RegisterRequest carries a registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	City     string
}

// Register creates a new donor account and dispatches a best-effort welcome
// mail. The duplicate-email check is a read before the insert; the store has
// no conditional write, so two concurrent registrations of the same address
// can both pass the check. The window is documented, not closed.
func (s *DonorService) Register(ctx context.Context, req RegisterRequest) (*model.Donor, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.donors.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	donor := &model.Donor{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		City:         strings.TrimSpace(req.City),
		PasswordHash: string(hash),
		Status:       model.DonorStatusActive,
	}
	if err := s.donors.Create(ctx, donor); err != nil {
		return nil, err
	}

	outcome := s.mail.Send(ctx, []string{donor.Email},
		"Bem-vindo ao Varal dos Sonhos",
		fmt.Sprintf("Olá %s, seu cadastro foi realizado!", donor.Name),
	)
	slog.Info("welcome mail dispatched",
		slog.String("donor", donor.Email),
		slog.String("outcome", outcome.Kind.String()),
	)

	return donor, nil
}

// Authenticate verifies a donor's credentials and returns the account.
// The caller is responsible for never exposing the password hash.
func (s *DonorService) Authenticate(ctx context.Context, email, password string) (*model.Donor, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	donor, err := s.donors.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(donor.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return donor, nil
}
