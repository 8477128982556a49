package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
)

// ===============================
// Dia da semana (enum fechado)
// ===============================

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()))
}

// ParseWeekday valida o valor vindo de fora (request ou banco).
func ParseWeekday(v int) (Weekday, error) {
	w := Weekday(v)
	if !w.Valid() {
		return 0, httperr.ErrValidation("invalid_weekday", "Dia da semana inválido.")
	}
	return w, nil
}
