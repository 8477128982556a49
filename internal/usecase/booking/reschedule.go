package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// ======================================================
// USE CASE — remarcação (uma única vez, só o próximo)
// ======================================================

type RescheduleAppointment struct {
	repo     domain.Repository
	audit    AuditSink
	notifier NotifySink
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDisp AuditSink,
	notifier NotifySink,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newDate string,
	newSlot string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
	}

	loc := timezone.Location(barber.Timezone)
	now := timezone.NowIn(barber.Timezone)

	// ---- Elegibilidade (motivo específico em cada cláusula) ----

	customerActive, err := uc.repo.ListCustomerActive(ctx, ap.CustomerID)
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}

	if err := domain.CheckRescheduleEligibility(ap, customerActive, now); err != nil {
		return nil, err
	}

	// ---- Validação do novo horário ----

	if _, err := domain.ParseDate(newDate, loc); err != nil {
		return nil, err
	}
	if err := domain.ParseSlot(newSlot); err != nil {
		return nil, err
	}

	newStartAt, err := domain.StartAt(newDate, newSlot, loc)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.repo.GetActiveSchedule(ctx, ap.BarberID, domain.WeekdayOf(newStartAt))
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}
	if schedule == nil || !domain.ContainsSlot(schedule.SlotList(), newSlot) {
		return nil, httperr.ErrValidation(
			"invalid_slot",
			"Horário fora da grade de atendimento do barbeiro.",
		)
	}

	// ---- Execução atômica: em slot_taken nada muda ----

	if err := uc.repo.MoveAppointmentIfFree(ctx, ap, newDate, newSlot, newStartAt); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: ap.BarberID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	recipient := ""
	if customer, err := uc.repo.GetCustomer(ctx, ap.CustomerID); err == nil {
		recipient = customer.Phone
	}

	uc.notifier.Dispatch(notify.Message{
		AppointmentID: ap.ID,
		Kind:          "reschedule_confirmation",
		Recipient:     recipient,
		Body:          "Agendamento remarcado para " + ap.Date + " às " + ap.TimeSlot + ".",
	})

	return ap, nil
}
