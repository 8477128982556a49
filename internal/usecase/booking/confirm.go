package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	audit    AuditSink
	notifier NotifySink
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDisp AuditSink,
	notifier NotifySink,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrStorage(err)
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	recipient := ""
	if customer, err := uc.repo.GetCustomer(ctx, ap.CustomerID); err == nil {
		recipient = customer.Phone
	}

	uc.notifier.Dispatch(notify.Message{
		AppointmentID: ap.ID,
		Kind:          "booking_confirmed",
		Recipient:     recipient,
		Body:          "Agendamento confirmado para " + ap.Date + " às " + ap.TimeSlot + ".",
	})

	return ap, nil
}
