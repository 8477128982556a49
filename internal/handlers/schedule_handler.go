package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/validators"
)

// Configuração da grade semanal. Escritor externo do catálogo: o núcleo de
// agendamento só lê o que está salvo aqui.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDayConfig struct {
	Weekday int      `json:"weekday" binding:"min=0,max=6"`
	Active  bool     `json:"active"`
	Slots   []string `json:"slots"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

type scheduleDayResponse struct {
	Weekday int      `json:"weekday"`
	Active  bool     `json:"active"`
	Slots   []string `json:"slots"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var schedules []models.WeeklySchedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&schedules).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	out := make([]scheduleDayResponse, 0, len(schedules))
	for _, ws := range schedules {
		out = append(out, scheduleDayResponse{
			Weekday: ws.Weekday,
			Active:  ws.Active,
			Slots:   ws.SlotList(),
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !validators.AreSlotLabels(d.Slots) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_slots",
				"message": "Grade contém horário inválido ou duplicado.",
			})
			return
		}
	}

	if err := h.db.Where("barber_id = ?", barberID).Delete(&models.WeeklySchedule{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_schedule"})
		return
	}

	var toCreate []models.WeeklySchedule
	for _, d := range req.Days {
		// grade em ordem cronológica; labels "15:04" ordenam como string
		slots := append([]string(nil), d.Slots...)
		sort.Strings(slots)

		ws := models.WeeklySchedule{
			BarberID: barberID,
			Weekday:  d.Weekday,
			Active:   d.Active,
		}
		if err := ws.SetSlots(slots); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slots"})
			return
		}
		toCreate = append(toCreate, ws)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
