package service

import (
	"time"

	"github.com/varaldossonhos/api/internal/model"
)

// Confirmation messages persisted onto donations and mailed to donors, one per
// lifecycle status. The texts are the organization's original wording.
const (
	msgAwaitingDelivery = "🎁 Sua cartinha foi adotada! Aguarde confirmação para a compra do presente."
	msgConfirmedPrefix  = "💙 Adoção confirmada em "
	msgDelivered        = "💖 Presente entregue à criança com sucesso! Obrigado por espalhar sonhos."
	msgUnknownStatus    = "Status desconhecido. Entre em contato com o suporte."
)

// Lifecycle is the donation status engine: a pure mapping from a status value
// to the donor-facing confirmation message. It enforces no transition order —
// any status is accepted as a fresh lookup, matching the original system's
// permissive machine.
type Lifecycle struct {
	now func() time.Time
}

// NewLifecycle creates a lifecycle engine on the wall clock.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{now: time.Now}
}

// NewLifecycleAt creates a lifecycle engine on a fixed clock. Tests use it to
// pin the date embedded in the confirmation message.
func NewLifecycleAt(now func() time.Time) *Lifecycle {
	return &Lifecycle{now: now}
}

// Message returns the confirmation message for a status. Unrecognized values
// produce the generic support message rather than an error.
func (l *Lifecycle) Message(status model.DonationStatus) string {
	switch status {
	case model.DonationStatusAwaitingDelivery:
		return msgAwaitingDelivery
	case model.DonationStatusConfirmed:
		return msgConfirmedPrefix + l.now().Format("02/01/2006")
	case model.DonationStatusDelivered:
		return msgDelivered
	default:
		return msgUnknownStatus
	}
}
