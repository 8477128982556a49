package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/dto"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
	}

	if _, err := domain.ParseDate(dateStr, timezone.Location(barber.Timezone)); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, barberID, dateStr)
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			TimeSlot:        ap.TimeSlot,
			Status:          ap.Status,
			RescheduleCount: ap.RescheduleCount,
			CustomerName:    ap.Customer.Name,
			ServiceName:     ap.Service.Name,
		})
	}

	return out, nil
}
