package models

import "time"

// Marcador "lembrete enviado" por (agendamento, janela). Criado somente após o
// notificador confirmar o envio; a unicidade garante no máximo um lembrete por
// janela mesmo com varreduras repetidas.
type ReminderLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint   `gorm:"index:idx_reminder_appointment_window,unique" json:"appointment_id"`
	WindowName    string `gorm:"size:20;index:idx_reminder_appointment_window,unique" json:"window_name"`

	Provider string    `gorm:"size:30" json:"provider"`
	SentAt   time.Time `json:"sent_at"`
}
