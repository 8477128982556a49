package models

import (
	"encoding/json"
	"time"
)

// Grade semanal de horários do barbeiro. Um registro por (barbeiro, dia da
// semana), com a lista ordenada de slots reserváveis ("09:00", "09:30", ...).
// Configurado pelo barbeiro; o núcleo de agendamento só lê.
type WeeklySchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_schedules_barber_weekday,unique" json:"barber_id"`

	Weekday int `gorm:"index:idx_schedules_barber_weekday,unique" json:"weekday"`

	// JSON array de labels, na ordem de exibição
	Slots  string `gorm:"type:text" json:"-"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ws *WeeklySchedule) SlotList() []string {
	if ws.Slots == "" {
		return nil
	}
	var slots []string
	if err := json.Unmarshal([]byte(ws.Slots), &slots); err != nil {
		return nil
	}
	return slots
}

func (ws *WeeklySchedule) SetSlots(slots []string) error {
	b, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	ws.Slots = string(b)
	return nil
}
