package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	"github.com/BruksfildServices01/carwash-scheduler/internal/cep"
	"github.com/BruksfildServices01/carwash-scheduler/internal/config"
	"github.com/BruksfildServices01/carwash-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/carwash-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	"github.com/BruksfildServices01/carwash-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cepResolver := cep.NewCachedResolver(
		cep.NewClient(cfg.CEPBaseURL, cfg.CEPTimeout),
		rdb,
		cfg.CEPCacheTTL,
	)

	// ======================================================
	// USE CASES — AGENDAMENTOS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	transitionStatusUC := ucAppointment.NewTransitionStatus(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
		cfg.StrictTransitions,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	clearFinishedUC := ucAppointment.NewClearFinished(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		transitionStatusUC,
		deleteAppointmentUC,
		clearFinishedUC,
		listAppointmentsUC,
		getAvailabilityUC,
	)

	carHandler := handlers.NewCarHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	cepHandler := handlers.NewCEPHandler(cepResolver)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTES
		// ------------------------------
		api.GET("/clientes", clientHandler.List)
		api.POST("/clientes", clientHandler.Create)
		api.PATCH("/clientes/:id", clientHandler.Update)

		// ------------------------------
		// CARROS
		// ------------------------------
		api.GET("/carros", carHandler.List)
		api.GET("/carros/:placa", carHandler.GetByPlate)
		api.POST("/carros", carHandler.Create)
		api.PATCH("/carros/:id", carHandler.Update)
		api.DELETE("/carros/:id", carHandler.Delete)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		api.GET("/agendamentos/full", appointmentHandler.List)
		api.GET("/agendamentos/horarios", appointmentHandler.Availability)
		api.POST("/agendamentos", appointmentHandler.Create)
		api.PUT("/agendamentos/:id", appointmentHandler.Update)
		api.PUT("/agendamentos/:id/status", appointmentHandler.UpdateStatus)
		api.DELETE("/agendamentos/concluidos", appointmentHandler.ClearFinished)
		api.DELETE("/agendamentos/:id", appointmentHandler.Delete)

		// ------------------------------
		// CEP
		// ------------------------------
		api.GET("/cep/:cep", cepHandler.Lookup)
	}
}
