package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())
}

func TestTransitions(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	t.Run("confirmar_pendente", func(t *testing.T) {
		ap := models.Appointment{Status: string(StatusPending)}
		require.NoError(t, Confirm(&ap))
		assert.Equal(t, string(StatusConfirmed), ap.Status)

		// confirmar duas vezes não é permitido
		err := Confirm(&ap)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("cancelar_ativo", func(t *testing.T) {
		ap := models.Appointment{Status: string(StatusConfirmed)}
		require.NoError(t, Cancel(&ap, now))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
		assert.Equal(t, now, *ap.CancelledAt)
	})

	t.Run("cancelar_terminal", func(t *testing.T) {
		ap := models.Appointment{Status: string(StatusCompleted)}
		err := Cancel(&ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, string(StatusCompleted), ap.Status)
	})

	t.Run("concluir_ativo", func(t *testing.T) {
		ap := models.Appointment{Status: string(StatusPending)}
		require.NoError(t, Complete(&ap, now))
		assert.Equal(t, string(StatusCompleted), ap.Status)
		require.NotNil(t, ap.CompletedAt)
	})
}

func TestParseWeekday(t *testing.T) {
	w, err := ParseWeekday(1)
	require.NoError(t, err)
	assert.Equal(t, Monday, w)

	for _, bad := range []int{-1, 7, 100} {
		_, err := ParseWeekday(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_weekday"), "input %d", bad)
	}
}
