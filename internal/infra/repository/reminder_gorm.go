package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/usecase/reminder"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

// ListDue: ativos com início na faixa e sem marcador para a janela.
func (r *ReminderGormRepository) ListDue(
	ctx context.Context,
	window string,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("status IN ?", domain.ActiveStatuses()).
		Where("start_at >= ? AND start_at < ?", from, to).
		Where(
			"NOT EXISTS (SELECT 1 FROM reminder_logs rl WHERE rl.appointment_id = appointments.id AND rl.window_name = ?)",
			window,
		).
		Order("start_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// MarkReminded: o índice único (appointment_id, window) torna a gravação
// idempotente entre varreduras concorrentes de instâncias diferentes.
func (r *ReminderGormRepository) MarkReminded(
	ctx context.Context,
	appointmentID uint,
	window string,
	provider string,
	sentAt time.Time,
) error {

	entry := models.ReminderLog{
		AppointmentID: appointmentID,
		WindowName:    window,
		Provider:      provider,
		SentAt:        sentAt,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
}

// Compile-time check
var _ reminder.Repository = (*ReminderGormRepository)(nil)
