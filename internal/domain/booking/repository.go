package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Weekly schedule --------

	// GetActiveSchedule devolve (nil, nil) quando não há grade ativa para o
	// dia; erro só em falha de armazenamento.
	GetActiveSchedule(
		ctx context.Context,
		barberID uint,
		weekday Weekday,
	) (*models.WeeklySchedule, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	// ListOccupiedSlots devolve os agendamentos não cancelados do barbeiro
	// na data, em ordem de horário.
	ListOccupiedSlots(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// ListCustomerActive devolve os pending/confirmed do cliente,
	// ordenados por data e horário.
	ListCustomerActive(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment (write, atômico) --------

	// CreateAppointmentIfFree insere somente se nenhum agendamento não
	// cancelado ocupar (barber_id, date, time_slot). Devolve slot_taken
	// quando o horário já está ocupado; a decisão é atômica frente a
	// chamadores concorrentes.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// MoveAppointmentIfFree muda data/horário do mesmo registro e
	// incrementa reschedule_count, sob a mesma garantia de atomicidade.
	// Em slot_taken nada é alterado.
	MoveAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
		newDate string,
		newSlot string,
		newStartAt time.Time,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
