package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ===============================
// Política de remarcação
// ===============================

const (
	// Cada agendamento pode ser remarcado uma única vez.
	MaxReschedules = 1

	// Antecedência mínima. Exatamente 30 minutos NÃO é elegível.
	RescheduleMinLead = 30 * time.Minute
)

// CheckRescheduleEligibility avalia as cláusulas na ordem e devolve o motivo
// específico da primeira que falhar. customerActive é o conjunto de
// agendamentos pending/confirmed do cliente, em qualquer ordem.
func CheckRescheduleEligibility(
	ap *models.Appointment,
	customerActive []models.Appointment,
	now time.Time,
) error {

	if !Status(ap.Status).IsActive() {
		return httperr.ErrNotEligible(
			"invalid_state",
			"Somente agendamentos pendentes ou confirmados podem ser remarcados.",
		)
	}

	if ap.RescheduleCount >= MaxReschedules {
		return httperr.ErrNotEligible(
			"reschedule_limit_reached",
			"Este agendamento já foi remarcado uma vez.",
		)
	}

	if ap.StartAt.Sub(now) <= RescheduleMinLead {
		return httperr.ErrNotEligible(
			"too_close_to_start",
			"Remarcação só é permitida com mais de 30 minutos de antecedência.",
		)
	}

	if next := nextAppointment(customerActive); next != nil && next.ID != ap.ID {
		return httperr.ErrNotEligible(
			"not_next_appointment",
			"Apenas o seu próximo agendamento pode ser remarcado.",
		)
	}

	return nil
}

// nextAppointment devolve o agendamento ativo mais próximo do cliente.
// Empate resolvido por data e depois horário; labels "15:04" ordenam
// lexicograficamente igual ao relógio.
func nextAppointment(active []models.Appointment) *models.Appointment {
	var next *models.Appointment
	for i := range active {
		ap := &active[i]
		if !Status(ap.Status).IsActive() {
			continue
		}
		if next == nil || earlier(ap, next) {
			next = ap
		}
	}
	return next
}

func earlier(a, b *models.Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.TimeSlot < b.TimeSlot
}
