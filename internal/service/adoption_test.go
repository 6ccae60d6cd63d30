package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varaldossonhos/api/internal/model"
)

type mockLetterRepo struct {
	letters   map[string]*model.Letter
	setErr    error
	statusSet map[string]model.LetterStatus
}

func newMockLetterRepo(letters ...*model.Letter) *mockLetterRepo {
	m := &mockLetterRepo{
		letters:   make(map[string]*model.Letter),
		statusSet: make(map[string]model.LetterStatus),
	}
	for _, l := range letters {
		m.letters[l.ID] = l
	}
	return m
}

func (m *mockLetterRepo) Available(ctx context.Context) ([]model.Letter, error) {
	var out []model.Letter
	for _, l := range m.letters {
		if l.Status == model.LetterStatusAvailable {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *mockLetterRepo) GetByID(ctx context.Context, id string) (*model.Letter, error) {
	return m.letters[id], nil
}

func (m *mockLetterRepo) SetStatus(ctx context.Context, id string, status model.LetterStatus) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.statusSet[id] = status
	if l, ok := m.letters[id]; ok {
		l.Status = status
	}
	return nil
}

type mockDonationRepo struct {
	created   []*model.Donation
	createErr error
	updated   map[string]*model.Donation
	setErr    error
}

func newMockDonationRepo() *mockDonationRepo {
	return &mockDonationRepo{updated: make(map[string]*model.Donation)}
}

func (m *mockDonationRepo) Create(ctx context.Context, donation *model.Donation) error {
	if m.createErr != nil {
		return m.createErr
	}
	donation.ID = fmt.Sprintf("doacoes:%d", len(m.created)+1)
	donation.CreatedOn = time.Now()
	m.created = append(m.created, donation)
	return nil
}

func (m *mockDonationRepo) SetStatus(ctx context.Context, id string, status model.DonationStatus, message string) (*model.Donation, error) {
	if m.setErr != nil {
		return nil, m.setErr
	}
	donation := &model.Donation{ID: id, Status: status, ConfirmationMessage: message}
	m.updated[id] = donation
	return donation, nil
}

func availableLetter(id, point string) *model.Letter {
	return &model.Letter{
		ID:              id,
		ChildName:       "Criança " + id,
		CollectionPoint: point,
		Status:          model.LetterStatusAvailable,
	}
}

func TestAdopt(t *testing.T) {
	t.Run("creates one donation per letter and one aggregate mail", func(t *testing.T) {
		letters := newMockLetterRepo(
			availableLetter("cartinhas:1", "Escola Central"),
			availableLetter("cartinhas:2", "Biblioteca"),
		)
		donations := newMockDonationRepo()
		mail := &mockSender{}
		svc := NewAdoptionService(donations, letters, NewLifecycle(), mail)

		count, err := svc.Adopt(context.Background(), AdoptRequest{
			DonorEmail: "maria@example.com",
			Letters: []LetterRef{
				{ID: "cartinhas:1"},
				{ID: "cartinhas:2", CollectionPoint: "Shopping Norte"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.Len(t, donations.created, 2)
		for _, d := range donations.created {
			assert.Equal(t, model.DonationStatusAwaitingDelivery, d.Status)
			assert.Equal(t, "maria@example.com", d.DonorEmail)
			assert.NotEmpty(t, d.ConfirmationMessage)
		}

		// The point falls back to the letter's own when the request omits it.
		assert.Equal(t, "Escola Central", donations.created[0].CollectionPoint)
		assert.Equal(t, "Shopping Norte", donations.created[1].CollectionPoint)

		// Both letters flipped off the shelf.
		assert.Equal(t, model.LetterStatusPledged, letters.statusSet["cartinhas:1"])
		assert.Equal(t, model.LetterStatusPledged, letters.statusSet["cartinhas:2"])

		calls := mail.calls()
		require.Len(t, calls, 1, "one aggregate mail regardless of letter count")
		assert.Equal(t, []string{"maria@example.com"}, calls[0].To)
		assert.Contains(t, calls[0].Body, "2 cartinha(s)")
	})

	t.Run("unknown letter fails the whole request before any write", func(t *testing.T) {
		letters := newMockLetterRepo(availableLetter("cartinhas:1", "Escola Central"))
		donations := newMockDonationRepo()
		mail := &mockSender{}
		svc := NewAdoptionService(donations, letters, NewLifecycle(), mail)

		_, err := svc.Adopt(context.Background(), AdoptRequest{
			DonorEmail: "maria@example.com",
			Letters: []LetterRef{
				{ID: "cartinhas:1"},
				{ID: "cartinhas:999"},
			},
		})
		assert.ErrorIs(t, err, ErrLetterNotFound)
		assert.Empty(t, donations.created)
		assert.Empty(t, letters.statusSet)
		assert.Empty(t, mail.calls())
	})

	t.Run("already pledged letter is rejected", func(t *testing.T) {
		pledged := availableLetter("cartinhas:1", "Escola Central")
		pledged.Status = model.LetterStatusPledged
		letters := newMockLetterRepo(pledged)
		donations := newMockDonationRepo()
		svc := NewAdoptionService(donations, letters, NewLifecycle(), &mockSender{})

		_, err := svc.Adopt(context.Background(), AdoptRequest{
			DonorEmail: "maria@example.com",
			Letters:    []LetterRef{{ID: "cartinhas:1"}},
		})
		assert.ErrorIs(t, err, ErrLetterUnavailable)
		assert.Empty(t, donations.created)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := NewAdoptionService(newMockDonationRepo(), newMockLetterRepo(), NewLifecycle(), &mockSender{})

		_, err := svc.Adopt(context.Background(), AdoptRequest{
			Letters: []LetterRef{{ID: "cartinhas:1"}},
		})
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("empty letter list", func(t *testing.T) {
		svc := NewAdoptionService(newMockDonationRepo(), newMockLetterRepo(), NewLifecycle(), &mockSender{})

		_, err := svc.Adopt(context.Background(), AdoptRequest{DonorEmail: "maria@example.com"})
		assert.ErrorIs(t, err, ErrNoLetters)
	})

	t.Run("donations stay when the availability flip fails", func(t *testing.T) {
		letters := newMockLetterRepo(availableLetter("cartinhas:1", "Escola Central"))
		letters.setErr = errors.New("store down")
		donations := newMockDonationRepo()
		svc := NewAdoptionService(donations, letters, NewLifecycle(), &mockSender{})

		count, err := svc.Adopt(context.Background(), AdoptRequest{
			DonorEmail: "maria@example.com",
			Letters:    []LetterRef{{ID: "cartinhas:1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Len(t, donations.created, 1)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("persists the status and its message", func(t *testing.T) {
		donations := newMockDonationRepo()
		mail := &mockSender{}
		clock := fixedClock(time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC))
		svc := NewAdoptionService(donations, newMockLetterRepo(), NewLifecycleAt(clock), mail)

		donation, err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{
			DonationID: "doacoes:1",
			NewStatus:  string(model.DonationStatusConfirmed),
			DonorEmail: "maria@example.com",
			DonorName:  "Maria",
		})
		require.NoError(t, err)
		assert.Equal(t, model.DonationStatusConfirmed, donation.Status)
		assert.Contains(t, donation.ConfirmationMessage, "08/12/2025")

		calls := mail.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Atualização da sua adoção 💙", calls[0].Subject)
		assert.Contains(t, calls[0].Body, "Olá Maria!")
	})

	t.Run("unknown status gets the support message", func(t *testing.T) {
		donations := newMockDonationRepo()
		svc := NewAdoptionService(donations, newMockLetterRepo(), NewLifecycle(), &mockSender{})

		donation, err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{
			DonationID: "doacoes:1",
			NewStatus:  "SHIPPED",
		})
		require.NoError(t, err)
		assert.Equal(t, model.DonationStatus("SHIPPED"), donation.Status)
		assert.Contains(t, donation.ConfirmationMessage, "suporte")
	})

	t.Run("no mail without a donor email", func(t *testing.T) {
		mail := &mockSender{}
		svc := NewAdoptionService(newMockDonationRepo(), newMockLetterRepo(), NewLifecycle(), mail)

		_, err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{
			DonationID: "doacoes:1",
			NewStatus:  string(model.DonationStatusDelivered),
		})
		require.NoError(t, err)
		assert.Empty(t, mail.calls())
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewAdoptionService(newMockDonationRepo(), newMockLetterRepo(), NewLifecycle(), &mockSender{})

		_, err := svc.UpdateStatus(context.Background(), UpdateStatusRequest{NewStatus: "CONFIRMED"})
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = svc.UpdateStatus(context.Background(), UpdateStatusRequest{DonationID: "doacoes:1"})
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}
