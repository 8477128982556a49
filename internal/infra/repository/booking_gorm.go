package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ? AND active = ?", serviceID, barberID, true).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Weekly schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveSchedule(
	ctx context.Context,
	barberID uint,
	weekday domain.Weekday,
) (*models.WeeklySchedule, error) {

	var schedule models.WeeklySchedule
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ? AND active = ?", barberID, int(weekday), true).
		First(&schedule).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) ListOccupiedSlots(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "time_slot", "status").
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		).
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListCustomerActive(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status IN ?", customerID, domain.ActiveStatuses()).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (write, atômico)
// --------------------------------------------------

// CreateAppointmentIfFree: transação com recheck sob FOR UPDATE + índice
// único parcial em (barber_id, date, time_slot) para status ativos. O índice
// garante a corrida que o lock não cobre (duas inserções sem linha para
// travar); a violação é traduzida para slot_taken.
func (r *BookingGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time_slot = ? AND status <> ?",
				ap.BarberID, ap.Date, ap.TimeSlot, string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrSlotTaken()
		}

		return tx.Create(ap).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrSlotTaken()
	}
	if err != nil && !httperr.IsKind(err, httperr.KindSlotTaken) {
		return httperr.ErrStorage(err)
	}
	return err
}

// MoveAppointmentIfFree: mesma guarda da criação; o UPDATE carrega o
// incremento de reschedule_count e o limite na cláusula WHERE, então o
// invariante (≤1 remarcação) vale também no banco.
func (r *BookingGormRepository) MoveAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
	newDate string,
	newSlot string,
	newStartAt time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time_slot = ? AND status <> ? AND id <> ?",
				ap.BarberID, newDate, newSlot, string(domain.StatusCancelled), ap.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrSlotTaken()
		}

		res := tx.
			Model(&models.Appointment{}).
			Where(
				"id = ? AND status IN ? AND reschedule_count < ?",
				ap.ID, domain.ActiveStatuses(), domain.MaxReschedules,
			).
			Updates(map[string]any{
				"date":             newDate,
				"time_slot":        newSlot,
				"start_at":         newStartAt,
				"reschedule_count": gorm.Expr("reschedule_count + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotEligible(
				"reschedule_limit_reached",
				"Este agendamento já foi remarcado uma vez.",
			)
		}

		return nil
	})

	if isUniqueViolation(err) {
		return httperr.ErrSlotTaken()
	}
	if err != nil {
		if _, ok := httperr.KindOf(err); ok {
			return err
		}
		return httperr.ErrStorage(err)
	}

	ap.Date = newDate
	ap.TimeSlot = newSlot
	ap.StartAt = newStartAt
	ap.RescheduleCount++
	return nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// unique_violation do Postgres (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
