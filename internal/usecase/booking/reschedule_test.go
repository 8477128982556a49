package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// A elegibilidade usa o relógio real, então os cenários de remarcação
// trabalham com uma segunda-feira futura (sempre > 30min de antecedência).
func futureMonday() string {
	d := time.Now().UTC().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateLayout)
}

func bookOn(t *testing.T, repo *fakeRepo, date, slot string, customerID uint) *models.Appointment {
	t.Helper()

	uc := NewBookAppointment(repo, &fakeAudit{}, &fakeNotify{})
	in := BookAppointmentInput{
		BarberID:   1,
		ServiceID:  1,
		CustomerID: customerID,
		Date:       date,
		TimeSlot:   slot,
		Confirmed:  true,
	}

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	return ap
}

func TestRescheduleAppointment_OK(t *testing.T) {
	repo := seedRepo()
	notifySink := &fakeNotify{}
	uc := NewRescheduleAppointment(repo, &fakeAudit{}, notifySink)

	date := futureMonday()
	ap := bookOn(t, repo, date, "10:00", 50)

	moved, err := uc.Execute(context.Background(), ap.ID, date, "11:00")
	require.NoError(t, err)

	assert.Equal(t, ap.ID, moved.ID)
	assert.Equal(t, "11:00", moved.TimeSlot)
	assert.Equal(t, 1, moved.RescheduleCount)
	assert.Equal(t, string(domain.StatusConfirmed), moved.Status)

	// horário antigo volta a ficar livre
	res, err := NewGetAvailability(repo).Execute(context.Background(), 1, date)
	require.NoError(t, err)
	assert.Contains(t, res.AvailableSlots, "10:00")
	assert.Contains(t, res.BookedSlots, "11:00")

	require.Len(t, notifySink.messages, 1)
	assert.Equal(t, "reschedule_confirmation", notifySink.messages[0].Kind)
	assert.Equal(t, "+5511999990000", notifySink.messages[0].Recipient)
}

func TestRescheduleAppointment_OnlyOnce(t *testing.T) {
	repo := seedRepo()
	uc := NewRescheduleAppointment(repo, &fakeAudit{}, &fakeNotify{})
	ctx := context.Background()

	date := futureMonday()
	ap := bookOn(t, repo, date, "09:00", 50)

	_, err := uc.Execute(ctx, ap.ID, date, "10:00")
	require.NoError(t, err)

	_, err = uc.Execute(ctx, ap.ID, date, "11:00")
	assert.True(t, httperr.IsBusiness(err, "reschedule_limit_reached"))
}

// Destino ocupado: nada muda no agendamento original, nem o contador.
func TestRescheduleAppointment_SlotTakenKeepsOriginal(t *testing.T) {
	repo := seedRepo()
	repo.addCustomer(51, "+5511977770000")
	uc := NewRescheduleAppointment(repo, &fakeAudit{}, &fakeNotify{})
	ctx := context.Background()

	date := futureMonday()
	bookOn(t, repo, date, "10:00", 50)
	target := bookOn(t, repo, date, "09:00", 51)

	_, err := uc.Execute(ctx, target.ID, date, "10:00")
	assert.True(t, httperr.IsKind(err, httperr.KindSlotTaken))

	kept, err := repo.GetAppointment(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", kept.TimeSlot)
	assert.Equal(t, 0, kept.RescheduleCount)

	// a tentativa falhada não consome a remarcação única
	_, err = uc.Execute(ctx, target.ID, date, "11:00")
	assert.NoError(t, err)
}

func TestRescheduleAppointment_OnlyNextOfCustomer(t *testing.T) {
	repo := seedRepo()
	uc := NewRescheduleAppointment(repo, &fakeAudit{}, &fakeNotify{})

	date := futureMonday()
	bookOn(t, repo, date, "09:00", 50)
	later := bookOn(t, repo, date, "11:00", 50)

	_, err := uc.Execute(context.Background(), later.ID, date, "10:00")
	assert.True(t, httperr.IsBusiness(err, "not_next_appointment"))
}

func TestRescheduleAppointment_InvalidTarget(t *testing.T) {
	repo := seedRepo()
	uc := NewRescheduleAppointment(repo, &fakeAudit{}, &fakeNotify{})
	ctx := context.Background()

	date := futureMonday()
	ap := bookOn(t, repo, date, "09:00", 50)

	// fora da grade
	_, err := uc.Execute(ctx, ap.ID, date, "09:30")
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))

	// dia sem grade (terça seguinte)
	tuesday, perr := domain.ParseDate(date, time.UTC)
	require.NoError(t, perr)
	_, err = uc.Execute(ctx, ap.ID, tuesday.AddDate(0, 0, 1).Format(domain.DateLayout), "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))

	// agendamento inexistente
	_, err = uc.Execute(ctx, 999, date, "10:00")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestRescheduleAppointment_CancelledNotEligible(t *testing.T) {
	repo := seedRepo()
	uc := NewRescheduleAppointment(repo, &fakeAudit{}, &fakeNotify{})
	cancelUC := NewCancelAppointment(repo, &fakeAudit{})
	ctx := context.Background()

	date := futureMonday()
	ap := bookOn(t, repo, date, "09:00", 50)

	_, err := cancelUC.Execute(ctx, 1, ap.ID)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, ap.ID, date, "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
