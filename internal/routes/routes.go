package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/NovaCampusApps/principal-scheduler/internal/audit"
	"github.com/NovaCampusApps/principal-scheduler/internal/config"
	"github.com/NovaCampusApps/principal-scheduler/internal/handlers"
	infraRepo "github.com/NovaCampusApps/principal-scheduler/internal/infra/repository"
	"github.com/NovaCampusApps/principal-scheduler/internal/middleware"
	"github.com/NovaCampusApps/principal-scheduler/internal/notify"
	"github.com/NovaCampusApps/principal-scheduler/internal/timezone"
	"github.com/NovaCampusApps/principal-scheduler/internal/tokens"
	ucAppointment "github.com/NovaCampusApps/principal-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	loc := timezone.Location(cfg.InstitutionTimezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyStore := notify.New(db)
	notifySink := notify.NewDispatcher(notifyStore)

	// Redis sequences tokens when available; otherwise the row-locked
	// counter table does the same job on Postgres alone.
	var allocator tokens.Allocator
	if rdb != nil {
		allocator = tokens.NewRedisAllocator(rdb)
	} else {
		allocator = tokens.NewCounterAllocator(db)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	reviewUC := ucAppointment.NewReviewAppointment(
		appointmentRepo,
		allocator,
		notifySink,
		auditDispatcher,
		loc,
	)

	setStatusUC := ucAppointment.NewSetAppointmentStatus(
		appointmentRepo,
		notifySink,
		auditDispatcher,
		loc,
	)

	listQueueUC := ucAppointment.NewListQueue(appointmentRepo)
	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	listPendingUC := ucAppointment.NewListPendingAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	slotHandler := handlers.NewSlotHandler(appointmentRepo, loc)
	queueHandler := handlers.NewQueueHandler(listQueueUC, loc)
	notificationHandler := handlers.NewNotificationHandler(notifyStore)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher, loc)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		reviewUC,
		setStatusUC,
		listMineUC,
		listPendingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
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
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// TIME SLOTS
			// ------------------------------
			secured.GET("/schedule/time-slots", slotHandler.ListForDay)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments/book", appointmentHandler.Book)
			secured.GET("/appointments/my-appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)

			// ------------------------------
			// APPROVER DESK
			// ------------------------------
			approver := secured.Group("/")
			approver.Use(middleware.RequireApprover())
			{
				approver.POST("/schedule/time-slots", slotHandler.Create)
				approver.GET("/appointments/pending", appointmentHandler.ListPending)
				approver.PATCH("/appointments/:id/review", appointmentHandler.Review)
				approver.GET("/queue/today", queueHandler.Today)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.PUT("/users/:id/role", adminHandler.SetRole)
				admin.PUT("/users/:id/status", adminHandler.SetActive)
				admin.GET("/overview-stats", adminHandler.OverviewStats)
			}
		}
	}
}
