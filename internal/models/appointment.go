package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Chave lógica da reserva. Date no formato "2006-01-02", TimeSlot "15:04".
	// StartAt é derivado dos dois no fuso do barbeiro e mantido pelos caminhos
	// de escrita; as consultas de lembrete e ordenação dependem dele.
	Date     string    `gorm:"size:10;not null" json:"date"`
	TimeSlot string    `gorm:"size:5;not null" json:"time_slot"`
	StartAt  time.Time `gorm:"index" json:"start_at"`

	Status          string `gorm:"size:20;default:'pending'" json:"status"`
	RescheduleCount int    `gorm:"default:0" json:"reschedule_count"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
