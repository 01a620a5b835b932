package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellamoda/salon-booking/internal/audit"
	"github.com/bellamoda/salon-booking/internal/cache"
	"github.com/bellamoda/salon-booking/internal/config"
	"github.com/bellamoda/salon-booking/internal/handlers"
	infraRepo "github.com/bellamoda/salon-booking/internal/infra/repository"
	"github.com/bellamoda/salon-booking/internal/middleware"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/storage"
	ucBooking "github.com/bellamoda/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	slotCache *cache.Availability,
	images *storage.ImageStore,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotCache)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		auditDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		slotCache,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listForCustomerUC := ucBooking.NewListBookingsForCustomer(bookingRepo)
	countsUC := ucBooking.NewDashboardCounts(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	userHandler := handlers.NewUserHandler(db, images, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, images, auditDispatcher)
	dealHandler := handlers.NewDealHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		confirmBookingUC,
		completeBookingUC,
		cancelBookingUC,
		listByDateUC,
		listForCustomerUC,
		countsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/deals", publicHandler.ListDeals)
			publicAPI.GET("/employees", publicHandler.ListEmployees)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// customer flow
			customer := secured.Group("/me/bookings")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.GET("", bookingHandler.ListMine)
				customer.POST("", bookingHandler.Create)
				customer.PATCH("/:id/cancel", bookingHandler.CancelMine)
			}

			// employee schedule
			schedule := secured.Group("/me/schedule")
			schedule.Use(middleware.RequireRole(models.RoleEmployee, models.RoleAdmin))
			{
				schedule.GET("", bookingHandler.MySchedule)
			}

			// ------------------------------
			// ADMIN DASHBOARD
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PATCH("/users/:id", userHandler.Update)
				admin.POST("/users/:id/image", userHandler.UploadProfileImage)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.POST("/services/:id/image", serviceHandler.UploadImage)

				admin.GET("/deals", dealHandler.List)
				admin.POST("/deals", dealHandler.Create)
				admin.PATCH("/deals/:id", dealHandler.Update)

				admin.GET("/bookings", bookingHandler.ListByDate)
				admin.GET("/bookings/counts", bookingHandler.Counts)
				admin.PUT("/bookings/:id", bookingHandler.Update)
				admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
				admin.PATCH("/bookings/:id/complete", bookingHandler.Complete)
				admin.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
