package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"
)

// ParseDate valida a data no fuso informado.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
	}
	return t, nil
}

// ParseSlot valida o label de horário ("09:00").
func ParseSlot(slot string) error {
	if _, err := time.Parse(SlotLayout, slot); err != nil {
		return httperr.ErrValidation("invalid_time_slot", "Horário inválido. Use o formato HH:MM.")
	}
	return nil
}

// StartAt combina data + slot no fuso do barbeiro.
func StartAt(dateStr, slot string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+SlotLayout, dateStr+" "+slot, loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date_or_time", "Data ou hora inválida.")
	}
	return t, nil
}

// ContainsSlot verifica se o label pertence à grade.
func ContainsSlot(template []string, slot string) bool {
	for _, s := range template {
		if s == slot {
			return true
		}
	}
	return false
}

// SplitSlots separa a grade em livres e ocupados, preservando a ordem da
// grade. Ocupações fora da grade (grade editada depois da reserva) não
// aparecem em nenhuma das listas; quem decide ocupação na escrita é o guard.
func SplitSlots(template []string, occupied map[string]bool) (available, booked []string) {
	available = make([]string, 0, len(template))
	booked = make([]string, 0)

	for _, s := range template {
		if occupied[s] {
			booked = append(booked, s)
		} else {
			available = append(available, s)
		}
	}
	return available, booked
}
