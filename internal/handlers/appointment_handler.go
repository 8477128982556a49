package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-agenda/internal/usecase/booking"
)

// ======================================================
// HANDLER — agenda do barbeiro (rotas autenticadas)
// ======================================================

type AppointmentHandler struct {
	bookUC       *ucBooking.BookAppointment
	confirmUC    *ucBooking.ConfirmAppointment
	cancelUC     *ucBooking.CancelAppointment
	completeUC   *ucBooking.CompleteAppointment
	listByDateUC *ucBooking.ListAppointmentsByDate
}

func NewAppointmentHandler(
	bookUC *ucBooking.BookAppointment,
	confirmUC *ucBooking.ConfirmAppointment,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
	listByDateUC *ucBooking.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:       bookUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		listByDateUC: listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"time_slot" binding:"required"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE (barbeiro → já entra confirmado)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		BarberID:      barberID,
		ServiceID:     req.ServiceID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
		Confirmed:     true,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (AAAA-MM-DD).")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(barberID, id uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), barberID, id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(barberID, id uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), barberID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(barberID, id uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), barberID, id)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	exec func(barberID, id uint) (any, error),
) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := exec(barberID, uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
