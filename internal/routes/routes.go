package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	"github.com/BruksfildServices01/barber-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	ucBooking "github.com/BruksfildServices01/barber-agenda/internal/usecase/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/usecase/reminder"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifyDispatcher *notify.Dispatcher,
	scanner *reminder.Scanner,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	bookUC := ucBooking.NewBookAppointment(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	rescheduleUC := ucBooking.NewRescheduleAppointment(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	confirmUC := ucBooking.NewConfirmAppointment(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	completeUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		confirmUC,
		cancelUC,
		completeUC,
		listByDateUC,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		bookUC,
		rescheduleUC,
	)

	reminderHandler := handlers.NewReminderHandler(scanner, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers/:barberId/services", publicHandler.ListServices)
			publicAPI.GET("/barbers/:barberId/availability", publicHandler.GetAvailability)
			publicAPI.POST("/barbers/:barberId/appointments", publicHandler.BookAppointment)
			publicAPI.POST("/appointments/:id/reschedule", publicHandler.RescheduleAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (barbeiro)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/customers", customerHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			// disparo manual da varredura de lembretes
			secured.POST("/me/reminders/run", reminderHandler.Run)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
