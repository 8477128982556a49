package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
)

// fakeRepo implementa domain.Repository em memória. O mutex faz o papel da
// transação do banco: a checagem+inserção do guard é atômica de verdade,
// então o teste de corrida exercita a mesma garantia.
type fakeRepo struct {
	mu sync.Mutex

	barbers   map[uint]models.User
	services  map[uint]models.Service
	customers map[uint]models.Customer
	schedules map[[2]int]models.WeeklySchedule // [barberID, weekday]

	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      map[uint]models.User{},
		services:     map[uint]models.Service{},
		customers:    map[uint]models.Customer{},
		schedules:    map[[2]int]models.WeeklySchedule{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) addBarber(id uint, tz string) {
	f.barbers[id] = models.User{ID: id, Name: "Barber", Timezone: tz}
}

func (f *fakeRepo) addService(id, barberID uint) {
	f.services[id] = models.Service{ID: id, BarberID: barberID, Name: "Corte", Active: true}
}

func (f *fakeRepo) addCustomer(id uint, phone string) {
	f.customers[id] = models.Customer{ID: id, Name: "Cliente", Phone: phone}
}

func (f *fakeRepo) addSchedule(barberID uint, weekday int, active bool, slots []string) {
	ws := models.WeeklySchedule{BarberID: barberID, Weekday: weekday, Active: active}
	_ = ws.SetSlots(slots)
	f.schedules[[2]int{int(barberID), weekday}] = ws
}

func (f *fakeRepo) addAppointment(ap models.Appointment) uint {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = &ap
	return ap.ID
}

// ---- leitura ----

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.User, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &b, nil
}

func (f *fakeRepo) GetService(_ context.Context, barberID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.BarberID != barberID || !s.Active {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func (f *fakeRepo) GetCustomer(_ context.Context, id uint) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &c, nil
}

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, name, phone, email string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.customers {
		if c.Phone == phone {
			return &c, nil
		}
	}

	c := models.Customer{ID: f.nextID, Name: name, Phone: phone, Email: email}
	f.nextID++
	f.customers[c.ID] = c
	return &c, nil
}

func (f *fakeRepo) GetActiveSchedule(_ context.Context, barberID uint, weekday domain.Weekday) (*models.WeeklySchedule, error) {
	ws, ok := f.schedules[[2]int{int(barberID), int(weekday)}]
	if !ok || !ws.Active {
		return nil, nil
	}
	return &ws, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BarberID != barberID {
		return nil, errors.New("not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListOccupiedSlots(_ context.Context, barberID uint, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			out = append(out, *ap)
		}
	}
	sortByDateSlot(out)
	return out, nil
}

func (f *fakeRepo) ListCustomerActive(_ context.Context, customerID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID && domain.Status(ap.Status).IsActive() {
			out = append(out, *ap)
		}
	}
	sortByDateSlot(out)
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDate(_ context.Context, barberID uint, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date {
			cp := *ap
			cp.Customer = f.customers[ap.CustomerID]
			cp.Service = f.services[ap.ServiceID]
			out = append(out, cp)
		}
	}
	sortByDateSlot(out)
	return out, nil
}

// ---- escrita atômica ----

func (f *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.slotOccupied(ap.BarberID, ap.Date, ap.TimeSlot, 0) {
		return httperr.ErrSlotTaken()
	}

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) MoveAppointmentIfFree(_ context.Context, ap *models.Appointment, newDate, newSlot string, newStartAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.appointments[ap.ID]
	if !ok {
		return errors.New("not found")
	}

	if f.slotOccupied(ap.BarberID, newDate, newSlot, ap.ID) {
		return httperr.ErrSlotTaken()
	}

	if !domain.Status(stored.Status).IsActive() || stored.RescheduleCount >= domain.MaxReschedules {
		return httperr.ErrNotEligible(
			"reschedule_limit_reached",
			"Este agendamento já foi remarcado uma vez.",
		)
	}

	stored.Date = newDate
	stored.TimeSlot = newSlot
	stored.StartAt = newStartAt
	stored.RescheduleCount++

	ap.Date = newDate
	ap.TimeSlot = newSlot
	ap.StartAt = newStartAt
	ap.RescheduleCount = stored.RescheduleCount
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) slotOccupied(barberID uint, date, slot string, excludeID uint) bool {
	for _, other := range f.appointments {
		if other.ID == excludeID {
			continue
		}
		if other.BarberID == barberID &&
			other.Date == date &&
			other.TimeSlot == slot &&
			other.Status != string(domain.StatusCancelled) {
			return true
		}
	}
	return false
}

func sortByDateSlot(apps []models.Appointment) {
	for i := 1; i < len(apps); i++ {
		for j := i; j > 0; j-- {
			a, b := apps[j-1], apps[j]
			if a.Date < b.Date || (a.Date == b.Date && a.TimeSlot <= b.TimeSlot) {
				break
			}
			apps[j-1], apps[j] = b, a
		}
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

// ---- sinks ----

type fakeAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

type fakeNotify struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (f *fakeNotify) Dispatch(msg notify.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
}
