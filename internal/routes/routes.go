package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-site/internal/audit"
	"github.com/BruksfildServices01/studio-site/internal/config"
	"github.com/BruksfildServices01/studio-site/internal/flash"
	"github.com/BruksfildServices01/studio-site/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-site/internal/infra/repository"
	"github.com/BruksfildServices01/studio-site/internal/mailer"
	"github.com/BruksfildServices01/studio-site/internal/middleware"
	ucBooking "github.com/BruksfildServices01/studio-site/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	mailDispatcher := mailer.NewDispatcher(mailer.New(cfg))

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	flashStore := flash.NewStore(cfg.SessionSecret)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		mailDispatcher,
		cfg.AdminEmail,
	)

	createContactUC := ucBooking.NewCreateContact(
		bookingRepo,
		mailDispatcher,
		cfg.AdminEmail,
	)

	updateStatusUC := ucBooking.NewUpdateAppointmentStatus(
		bookingRepo,
		mailDispatcher,
		auditDispatcher,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	siteHandler := handlers.NewSiteHandler(flashStore)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, flashStore)
	contactHandler := handlers.NewContactHandler(createContactUC, flashStore)
	adminHandler := handlers.NewAdminHandler(bookingRepo, updateStatusUC, flashStore, cfg)
	apiHandler := handlers.NewAPIHandler(listAppointmentsUC)

	// ======================================================
	// ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", siteHandler.Home)
	r.GET("/about", siteHandler.About)

	r.GET("/appointment", appointmentHandler.Form)
	r.POST("/appointment", appointmentHandler.Submit)

	r.GET("/contact", contactHandler.Form)
	r.POST("/contact", contactHandler.Submit)

	// ======================================================
	// ADMIN
	// ======================================================
	r.GET("/admin/login", adminHandler.LoginPage)
	r.POST("/admin/login", adminHandler.Login)

	secured := r.Group("/admin")
	secured.Use(middleware.AdminGuard(cfg))
	{
		secured.GET("/dashboard", adminHandler.Dashboard)
		secured.GET("/appointment/:id", adminHandler.AppointmentDetail)
		secured.POST("/appointment/:id", adminHandler.UpdateStatus)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/appointments", apiHandler.ListAppointments)
	}
}
