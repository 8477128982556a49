package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-agenda/internal/usecase/booking"
)

// ======================================================
// HANDLER — página pública de reservas (sem login)
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
	bookUC         *ucBooking.BookAppointment
	rescheduleUC   *ucBooking.RescheduleAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
	bookUC *ucBooking.BookAppointment,
	rescheduleUC *ucBooking.RescheduleAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		bookUC:         bookUC,
		rescheduleUC:   rescheduleUC,
	}
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	barberID, ok := h.barberID(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barber_id = ? AND active = ?", barberID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	barberID, ok := h.barberID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (AAAA-MM-DD).")
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// BOOK (cliente → entra como pending)
// ======================================================

type PublicBookRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"time_slot" binding:"required"`
	Notes         string `json:"notes"`
}

func (h *PublicHandler) BookAppointment(c *gin.Context) {
	barberID, ok := h.barberID(c)
	if !ok {
		return
	}

	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		BarberID:      barberID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE (uma vez, só o próximo agendamento)
// ======================================================

type PublicRescheduleRequest struct {
	NewDate     string `json:"new_date" binding:"required"`
	NewTimeSlot string `json:"new_time_slot" binding:"required"`
}

func (h *PublicHandler) RescheduleAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req PublicRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		uint(id),
		req.NewDate,
		req.NewTimeSlot,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// --------- helpers ---------

func (h *PublicHandler) barberID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return 0, false
	}
	return uint(id), true
}
