package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/labarberiamataro/booking-api/internal/audit"
	"github.com/labarberiamataro/booking-api/internal/config"
	"github.com/labarberiamataro/booking-api/internal/domain/schedule"
	"github.com/labarberiamataro/booking-api/internal/handlers"
	infraRepo "github.com/labarberiamataro/booking-api/internal/infra/repository"
	"github.com/labarberiamataro/booking-api/internal/middleware"
	"github.com/labarberiamataro/booking-api/internal/timezone"
	ucBooking "github.com/labarberiamataro/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	source schedule.CalendarSource,
	cfg *config.Config,
) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// CATÁLOGOS (inmutables después del startup)
	// ======================================================
	services := make([]schedule.Service, 0, len(cfg.ServiceDurations))
	for id, minutes := range cfg.ServiceDurations {
		services = append(services, schedule.Service{ID: id, DurationMin: minutes})
	}

	barbers := make([]schedule.Barber, 0, len(cfg.BarberCalendars))
	for id, calendarID := range cfg.BarberCalendars {
		barbers = append(barbers, schedule.Barber{ID: id, CalendarID: calendarID})
	}

	catalog := schedule.NewCatalog(services, barbers)

	hours := schedule.WorkingHours{
		OpenWeekdays: cfg.OpenWeekdays,
		StartHour:    cfg.StartHour,
		EndHour:      cfg.EndHour,
		StepMinutes:  cfg.StepMinutes,
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(
		catalog,
		source,
		hours,
		cfg.HidePastSlotsToday,
		func() time.Time { return time.Now().In(loc) },
	)

	createBookingUC := ucBooking.NewCreateBooking(
		catalog,
		source,
		bookingRepo,
		auditDispatcher,
		loc,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(availabilityUC, createBookingUC, catalog, loc)
	authHandler := handlers.NewAuthHandler(cfg)
	bookingHandler := handlers.NewBookingHandler(listBookingsByDateUC, loc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// RUTAS PÚBLICAS
	// ======================================================
	public := r.Group("/")
	public.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute))
	{
		public.GET("/slots", publicHandler.GetSlots)
		public.POST("/book", publicHandler.Book)
		public.GET("/services", publicHandler.ListServices)
		public.GET("/barbers", publicHandler.ListBarbers)
	}

	// ======================================================
	// API PRIVADA
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/bookings", bookingHandler.ListByDate)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
