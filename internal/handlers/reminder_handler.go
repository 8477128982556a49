package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/usecase/reminder"
)

// Disparo manual da varredura. Mesma rotina do timer: se já houver uma em
// andamento a resposta volta com skipped=true.
type ReminderHandler struct {
	scanner *reminder.Scanner
	audit   *audit.Dispatcher
}

func NewReminderHandler(scanner *reminder.Scanner, auditDisp *audit.Dispatcher) *ReminderHandler {
	return &ReminderHandler{scanner: scanner, audit: auditDisp}
}

func (h *ReminderHandler) Run(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	report, err := h.scanner.Scan(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "scan_failed", "Falha ao executar a varredura.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "reminder_scan_run",
		Entity:   "reminder",
		Metadata: report,
	})

	httpresp.OK(c, report)
}
