package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// ======================================================
// USE CASE — disponibilidade de um barbeiro em uma data
// ======================================================

type AvailabilityResult struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
	BookedSlots    []string `json:"booked_slots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) (*AvailabilityResult, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado.")
	}

	loc := timezone.Location(barber.Timezone)

	date, err := domain.ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.repo.GetActiveSchedule(ctx, barberID, domain.WeekdayOf(date))
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}
	if schedule == nil {
		return nil, httperr.ErrNotFound(
			"schedule_not_found",
			"O barbeiro não atende neste dia da semana.",
		)
	}

	template := schedule.SlotList()

	// ocupados = não cancelados na data (pending, confirmed e completed)
	appointments, err := uc.repo.ListOccupiedSlots(ctx, barberID, dateStr)
	if err != nil {
		return nil, httperr.ErrStorage(err)
	}

	occupied := make(map[string]bool, len(appointments))
	for _, ap := range appointments {
		occupied[ap.TimeSlot] = true
	}

	available, booked := domain.SplitSlots(template, occupied)

	return &AvailabilityResult{
		Date:           dateStr,
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}
