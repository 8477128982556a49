package booking

import "github.com/BruksfildServices01/barber-agenda/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive diz se o agendamento ainda ocupa o horário.
// cancelled e completed são estados terminais.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses na forma usada pelas queries.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

// ===============================
// Transições válidas
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrNotEligible("invalid_state", "Agendamento não pode ser confirmado neste estado.")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.IsActive() {
		return httperr.ErrNotEligible("invalid_state", "Agendamento não pode ser cancelado neste estado.")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.IsActive() {
		return httperr.ErrNotEligible("invalid_state", "Agendamento não pode ser concluído neste estado.")
	}
	return nil
}
