package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/sahelnejat/Luna/internal/audit"
	"github.com/sahelnejat/Luna/internal/cache"
	"github.com/sahelnejat/Luna/internal/config"
	"github.com/sahelnejat/Luna/internal/handlers"
	infraRepo "github.com/sahelnejat/Luna/internal/infra/repository"
	"github.com/sahelnejat/Luna/internal/middleware"
	ucBooking "github.com/sahelnejat/Luna/internal/usecase/booking"
	ucContact "github.com/sahelnejat/Luna/internal/usecase/contact"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	contactRepo := infraRepo.NewContactGormRepository(db)

	availability := cache.NewAvailability(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		availability,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		availability,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availability,
	)

	createMessageUC := ucContact.NewCreateMessage(
		contactRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(availabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		bookingRepo,
	)

	contactHandler := handlers.NewContactHandler(
		createMessageUC,
		contactRepo,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/", catalogHandler.Root)
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/stylists", catalogHandler.ListStylists)
		api.GET("/timeslots", catalogHandler.ListTimeSlots)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/:reference", bookingHandler.GetByReference)

		api.POST("/contact", contactHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/contact", contactHandler.List)
		}
	}
}
