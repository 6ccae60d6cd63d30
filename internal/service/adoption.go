package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/varaldossonhos/api/internal/mailer"
	"github.com/varaldossonhos/api/internal/model"
)

// DonationRepository defines the donation storage the service needs.
type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	SetStatus(ctx context.Context, id string, status model.DonationStatus, message string) (*model.Donation, error)
}

// AdoptionService owns the donation lifecycle: creating pledges and moving
// them through their delivery statuses.
type AdoptionService struct {
	donations DonationRepository
	letters   LetterRepository
	lifecycle *Lifecycle
	mail      mailer.Sender
}

// NewAdoptionService creates a new adoption service.
func NewAdoptionService(donations DonationRepository, letters LetterRepository, lifecycle *Lifecycle, mail mailer.Sender) *AdoptionService {
	return &AdoptionService{
		donations: donations,
		letters:   letters,
		lifecycle: lifecycle,
		mail:      mail,
	}
}

// LetterRef names one letter inside an adoption request.
type LetterRef struct {
	ID              string
	CollectionPoint string
}

// AdoptRequest carries one donor's adoption of one or more letters.
type AdoptRequest struct {
	DonorEmail string
	Letters    []LetterRef
}

// Adopt registers one donation per referenced letter and dispatches a single
// aggregate confirmation mail to the donor.
//
// Partial-failure policy: every referenced letter is validated (it must exist
// and still be available) before the first write, so a bad reference fails the
// whole request with nothing created. A store failure partway through the
// sequential creates still leaves the earlier donations in place — there is no
// compensating delete.
func (s *AdoptionService) Adopt(ctx context.Context, req AdoptRequest) (int, error) {
	email := strings.TrimSpace(strings.ToLower(req.DonorEmail))
	if email == "" {
		return 0, ErrMissingFields
	}
	if len(req.Letters) == 0 {
		return 0, ErrNoLetters
	}

	// Pre-validation pass: fail fast before any write.
	validated := make([]*model.Letter, 0, len(req.Letters))
	for _, ref := range req.Letters {
		if ref.ID == "" {
			return 0, ErrLetterNotFound
		}
		letter, err := s.letters.GetByID(ctx, ref.ID)
		if err != nil {
			return 0, err
		}
		if letter == nil {
			return 0, fmt.Errorf("%w: %s", ErrLetterNotFound, ref.ID)
		}
		if letter.Status != model.LetterStatusAvailable {
			return 0, fmt.Errorf("%w: %s", ErrLetterUnavailable, ref.ID)
		}
		validated = append(validated, letter)
	}

	message := s.lifecycle.Message(model.DonationStatusAwaitingDelivery)
	for i, ref := range req.Letters {
		point := ref.CollectionPoint
		if point == "" {
			point = validated[i].CollectionPoint
		}

		donation := &model.Donation{
			DonorEmail:          email,
			LetterID:            ref.ID,
			CollectionPoint:     point,
			Status:              model.DonationStatusAwaitingDelivery,
			ConfirmationMessage: message,
		}
		if err := s.donations.Create(ctx, donation); err != nil {
			return i, err
		}

		// The availability flip is a separate write; a failure here leaves
		// the letter listed but the pledge recorded.
		if err := s.letters.SetStatus(ctx, ref.ID, model.LetterStatusPledged); err != nil {
			slog.Error("marking letter pledged failed",
				slog.String("letter", ref.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	outcome := s.mail.Send(ctx, []string{email},
		"Confirmação de Adoção 💙",
		fmt.Sprintf("Recebemos sua adoção de %d cartinha(s). Obrigado por espalhar sonhos! 🌟", len(req.Letters)),
	)
	slog.Info("adoption mail dispatched",
		slog.String("donor", email),
		slog.Int("letters", len(req.Letters)),
		slog.String("outcome", outcome.Kind.String()),
	)

	return len(req.Letters), nil
}

// UpdateStatusRequest carries a status change for one donation.
type UpdateStatusRequest struct {
	DonationID string
	NewStatus  string
	DonorEmail string
	DonorName  string
}

// UpdateStatus persists the new status and its derived confirmation message,
// then notifies the donor. Any status string is accepted; unknown values get
// the generic support message. Repeating an update with the same status is
// idempotent by construction — the message depends only on the status.
func (s *AdoptionService) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*model.Donation, error) {
	if req.DonationID == "" || req.NewStatus == "" {
		return nil, ErrMissingFields
	}

	status := model.DonationStatus(req.NewStatus)
	message := s.lifecycle.Message(status)

	donation, err := s.donations.SetStatus(ctx, req.DonationID, status, message)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(req.DonorEmail); email != "" {
		body := message
		if name := strings.TrimSpace(req.DonorName); name != "" {
			body = fmt.Sprintf("Olá %s!\n\n%s", name, message)
		}
		outcome := s.mail.Send(ctx, []string{email}, "Atualização da sua adoção 💙", body)
		slog.Info("status mail dispatched",
			slog.String("donation", req.DonationID),
			slog.String("status", req.NewStatus),
			slog.String("outcome", outcome.Kind.String()),
		)
	}

	return donation, nil
}
