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
// INPUT
// ======================================================

type BookAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	// CustomerID direto, ou nome+telefone para get-or-create
	CustomerID    uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date     string
	TimeSlot string
	Notes    string

	// true quando o próprio barbeiro cria (entra como confirmed)
	Confirmed bool
}

// ======================================================
// USE CASE — reserva com guarda de conflito
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    AuditSink
	notifier NotifySink
}

func NewBookAppointment(
	repo domain.Repository,
	auditDisp AuditSink,
	notifier NotifySink,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    auditDisp,
		notifier: notifier,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
	}

	loc := timezone.Location(barber.Timezone)

	if _, err := domain.ParseDate(in.Date, loc); err != nil {
		return nil, err
	}
	if err := domain.ParseSlot(in.TimeSlot); err != nil {
		return nil, err
	}

	startAt, err := domain.StartAt(in.Date, in.TimeSlot, loc)
	if err != nil {
		return nil, err
	}

	// o slot precisa pertencer à grade ativa do dia no momento da reserva;
	// edições posteriores da grade não invalidam reservas já feitas
	schedule, err := uc.repo.GetActiveSchedule(ctx, in.BarberID, domain.WeekdayOf(startAt))
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}
	if schedule == nil || !domain.ContainsSlot(schedule.SlotList(), in.TimeSlot) {
		return nil, httperr.ErrValidation(
			"invalid_slot",
			"Horário fora da grade de atendimento do barbeiro.",
		)
	}

	service, err := uc.repo.GetService(ctx, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")
	}

	customer, err := uc.resolveCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if in.Confirmed {
		status = domain.StatusConfirmed
	}

	ap := &models.Appointment{
		BarberID:        in.BarberID,
		CustomerID:      customer.ID,
		ServiceID:       service.ID,
		Date:            in.Date,
		TimeSlot:        in.TimeSlot,
		StartAt:         startAt,
		Status:          string(status),
		RescheduleCount: 0,
		Notes:           in.Notes,
	}

	// decisão de ocupação é do repositório, de forma atômica:
	// dois pedidos simultâneos para o mesmo horário → um slot_taken
	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: in.BarberID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// confirmação pós-commit; falha de envio nunca desfaz a reserva
	uc.notifier.Dispatch(notify.Message{
		AppointmentID: ap.ID,
		Kind:          "booking_confirmation",
		Recipient:     customer.Phone,
		Body: "Agendamento recebido para " + ap.Date + " às " + ap.TimeSlot +
			" com " + barber.Name + ".",
	})

	return ap, nil
}

func (uc *BookAppointment) resolveCustomer(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Customer, error) {

	if in.CustomerID != 0 {
		customer, err := uc.repo.GetCustomer(ctx, in.CustomerID)
		if err != nil {
			return nil, httperr.ErrNotFound("customer_not_found", "Cliente não encontrado.")
		}
		return customer, nil
	}

	if in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, httperr.ErrValidation(
			"missing_customer",
			"Informe customer_id ou nome e telefone do cliente.",
		)
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return customer, nil
}
