package dto

type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	Date            string `json:"date"`
	TimeSlot        string `json:"time_slot"`
	Status          string `json:"status"`
	RescheduleCount int    `json:"reschedule_count"`
	CustomerName    string `json:"customer_name"`
	ServiceName     string `json:"service_name"`
}
