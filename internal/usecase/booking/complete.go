package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDisp AuditSink,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
	}

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	now := timezone.NowIn(barber.Timezone)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrStorage(err)
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
