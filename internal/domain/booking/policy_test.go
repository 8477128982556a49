package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

func activeAppointment(id uint, startAt time.Time) models.Appointment {
	return models.Appointment{
		ID:       id,
		Status:   string(StatusConfirmed),
		Date:     startAt.Format(DateLayout),
		TimeSlot: startAt.Format(SlotLayout),
		StartAt:  startAt,
	}
}

func TestCheckRescheduleEligibility_OK(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	ap := activeAppointment(1, now.Add(2*time.Hour))

	err := CheckRescheduleEligibility(&ap, []models.Appointment{ap}, now)
	require.NoError(t, err)
}

func TestCheckRescheduleEligibility_LeadBoundary(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		lead time.Duration
		ok   bool
	}{
		{"exatamente_30min_nao_elegivel", 30 * time.Minute, false},
		{"29min_nao_elegivel", 29 * time.Minute, false},
		{"31min_elegivel", 31 * time.Minute, true},
		{"ja_comecou_nao_elegivel", -10 * time.Minute, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ap := activeAppointment(1, now.Add(tc.lead))
			err := CheckRescheduleEligibility(&ap, []models.Appointment{ap}, now)

			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "too_close_to_start"))
			}
		})
	}
}

func TestCheckRescheduleEligibility_LimitReached(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	ap := activeAppointment(1, now.Add(2*time.Hour))
	ap.RescheduleCount = 1

	err := CheckRescheduleEligibility(&ap, []models.Appointment{ap}, now)
	assert.True(t, httperr.IsBusiness(err, "reschedule_limit_reached"))
	assert.True(t, httperr.IsKind(err, httperr.KindNotEligible))
}

func TestCheckRescheduleEligibility_InvalidState(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := activeAppointment(1, now.Add(2*time.Hour))
		ap.Status = string(status)

		err := CheckRescheduleEligibility(&ap, nil, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "status %s", status)
	}
}

// Só o próximo agendamento ativo do cliente pode ser remarcado. O estado é
// checado antes da antecedência, então um agendamento sem antecedência mas
// cancelado recebe invalid_state, não too_close_to_start.
func TestCheckRescheduleEligibility_OnlyNextAppointment(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	first := activeAppointment(1, now.Add(2*time.Hour))
	second := activeAppointment(2, now.Add(26*time.Hour))
	active := []models.Appointment{second, first} // fora de ordem de propósito

	err := CheckRescheduleEligibility(&second, active, now)
	assert.True(t, httperr.IsBusiness(err, "not_next_appointment"))

	err = CheckRescheduleEligibility(&first, active, now)
	assert.NoError(t, err)
}

// Agendamento cancelado no meio da lista não conta como "próximo".
func TestCheckRescheduleEligibility_CancelledNotNext(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	cancelled := activeAppointment(1, now.Add(1*time.Hour))
	cancelled.Status = string(StatusCancelled)
	target := activeAppointment(2, now.Add(3*time.Hour))

	err := CheckRescheduleEligibility(&target, []models.Appointment{cancelled, target}, now)
	assert.NoError(t, err)
}

func TestCheckRescheduleEligibility_TieBreakBySlot(t *testing.T) {
	now := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)

	early := activeAppointment(1, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	late := activeAppointment(2, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))

	err := CheckRescheduleEligibility(&late, []models.Appointment{early, late}, now)
	assert.True(t, httperr.IsBusiness(err, "not_next_appointment"))
}
