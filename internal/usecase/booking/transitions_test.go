package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
)

func TestConfirmAppointment(t *testing.T) {
	repo := seedRepo()
	notifySink := &fakeNotify{}
	bookUC := NewBookAppointment(repo, &fakeAudit{}, &fakeNotify{})
	uc := NewConfirmAppointment(repo, &fakeAudit{}, notifySink)
	ctx := context.Background()

	ap, err := bookUC.Execute(ctx, bookInput("10:00"))
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusPending), ap.Status)

	confirmed, err := uc.Execute(ctx, 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)

	require.Len(t, notifySink.messages, 1)
	assert.Equal(t, "booking_confirmed", notifySink.messages[0].Kind)

	// confirmar de novo → estado inválido
	_, err = uc.Execute(ctx, 1, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	// agendamento de outro barbeiro não é visível
	_, err = uc.Execute(ctx, 2, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelAppointment(t *testing.T) {
	repo := seedRepo()
	auditSink := &fakeAudit{}
	bookUC := NewBookAppointment(repo, &fakeAudit{}, &fakeNotify{})
	uc := NewCancelAppointment(repo, auditSink)
	ctx := context.Background()

	ap, err := bookUC.Execute(ctx, bookInput("09:00"))
	require.NoError(t, err)

	cancelled, err := uc.Execute(ctx, 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	require.Len(t, auditSink.events, 1)
	assert.Equal(t, "appointment_cancelled", auditSink.events[0].Action)

	_, err = uc.Execute(ctx, 1, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteAppointment(t *testing.T) {
	repo := seedRepo()
	bookUC := NewBookAppointment(repo, &fakeAudit{}, &fakeNotify{})
	uc := NewCompleteAppointment(repo, &fakeAudit{})
	ctx := context.Background()

	ap, err := bookUC.Execute(ctx, bookInput("11:00"))
	require.NoError(t, err)

	done, err := uc.Execute(ctx, 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	// terminal: nem cancelar nem concluir de novo
	_, err = NewCancelAppointment(repo, &fakeAudit{}).Execute(ctx, 1, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
