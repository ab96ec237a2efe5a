package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/gtkpad369/LegalSch/internal/audit"
	"github.com/gtkpad369/LegalSch/internal/config"
	"github.com/gtkpad369/LegalSch/internal/handlers"
	"github.com/gtkpad369/LegalSch/internal/infra/caselookup"
	"github.com/gtkpad369/LegalSch/internal/infra/docstore"
	"github.com/gtkpad369/LegalSch/internal/infra/notify"
	infraRepo "github.com/gtkpad369/LegalSch/internal/infra/repository"
	"github.com/gtkpad369/LegalSch/internal/middleware"
	ucAppointment "github.com/gtkpad369/LegalSch/internal/usecase/appointment"
	ucLawyer "github.com/gtkpad369/LegalSch/internal/usecase/lawyer"
	ucSchedule "github.com/gtkpad369/LegalSch/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	lawyerRepo := infraRepo.NewLawyerGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewDispatcher(notify.NewWhatsAppSender(cfg))
	caseLookup := caselookup.NewJusBrasilClient(cfg)
	documentStore := docstore.NewS3Store(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		lawyerRepo,
		auditDispatcher,
		notifier,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	createLawyerUC := ucLawyer.NewCreateLawyer(lawyerRepo)
	authenticateLawyerUC := ucLawyer.NewAuthenticateLawyer(lawyerRepo)

	generateWeekUC := ucSchedule.NewGenerateWeek(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(createLawyerUC, authenticateLawyerUC, cfg)
	meHandler := handlers.NewMeHandler(lawyerRepo, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		transitionAppointmentUC,
		listAppointmentsUC,
		deleteAppointmentUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo, generateWeekUC, auditDispatcher)

	documentHandler := handlers.NewDocumentHandler(db, documentStore, cfg, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		lawyerRepo,
		scheduleRepo,
		appointmentRepo,
		createAppointmentUC,
		caseLookup,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING PAGE API
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimitMiddleware(rdb, 60, time.Minute))
		{
			publicAPI.GET("/:slug", publicHandler.GetProfile)
			publicAPI.GET("/:slug/schedule", publicHandler.GetSchedule)
			publicAPI.GET("/:slug/document-requirements", documentHandler.ListRequirementsPublic)
			publicAPI.POST("/:slug/appointments", publicHandler.Book)
			publicAPI.POST("/:slug/appointments/:id/documents", documentHandler.Upload)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			secured.GET("/me/appointments/:id/documents", documentHandler.ListByAppointment)

			// ------------------------------
			// SCHEDULES
			// ------------------------------
			secured.POST("/me/schedule-templates", scheduleHandler.CreateTemplate)
			secured.GET("/me/schedule-templates", scheduleHandler.ListTemplates)
			secured.GET("/me/schedule-templates/:id", scheduleHandler.GetTemplate)

			secured.GET("/me/weekly-schedules", scheduleHandler.ListWeekly)
			secured.POST("/me/weekly-schedules", scheduleHandler.GenerateWeek)
			secured.POST("/me/weekly-schedules/:id/roll", scheduleHandler.RollForward)

			// ------------------------------
			// DOCUMENT REQUIREMENTS
			// ------------------------------
			secured.GET("/me/document-requirements", documentHandler.ListRequirements)
			secured.POST("/me/document-requirements", documentHandler.CreateRequirement)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
