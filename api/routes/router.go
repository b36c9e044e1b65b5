// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"mtour/internal/auth"
	"mtour/internal/bookings"
	"mtour/internal/content"
	"mtour/internal/dates"
	"mtour/internal/inquiries"
	"mtour/internal/ops"
	"mtour/internal/realtime"
	"mtour/internal/routes"
	"mtour/internal/shared/config"
	"mtour/internal/shared/database"
	"mtour/internal/tariffs"
	"mtour/internal/tours"
	"mtour/pkg/cache"
	"mtour/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer realtime.Producer
	log      *logger.Logger

	cacheService cache.Service

	// Shared repositories: the booking and ops modules read the tour
	// builder's data through the same repository instances
	tourRepo    tours.Repository
	tariffRepo  tariffs.Repository
	dateRepo    dates.Repository
	routeRepo   routes.Repository
	contentRepo content.Repository
	bookingRepo bookings.Repository

	opsService ops.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer realtime.Producer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		log:      log,
	}
}

// OpsService exposes the ops service after SetupRoutes so the KPI
// refresher can be attached to it.
func (r *Router) OpsService() ops.Service {
	return r.opsService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pg := r.db.GetPostgreSQL()
	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.Redis)
	}

	r.tourRepo = tours.NewRepository(pg)
	r.tariffRepo = tariffs.NewRepository(pg)
	r.dateRepo = dates.NewRepository(pg)
	r.routeRepo = routes.NewRepository(pg)
	r.contentRepo = content.NewRepository(pg)
	r.bookingRepo = bookings.NewRepository(pg)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupTourRoutes(api)
		r.setupTariffRoutes(api)
		r.setupDateRoutes(api)
		r.setupRouteRoutes(api)
		r.setupContentRoutes(api)
		r.setupBookingRoutes(api)
		r.setupInquiryRoutes(api)
		r.setupOpsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "mtour-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "mtour-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupTourRoutes configures the catalog and tour builder routes
func (r *Router) setupTourRoutes(rg *gin.RouterGroup) {
	tourService := tours.NewService(
		r.tourRepo,
		r.tariffRepo,
		r.dateRepo,
		r.routeRepo,
		r.contentRepo,
		r.producer,
		r.log,
	)
	if r.cacheService != nil {
		tourService.SetCacheService(r.cacheService)
	}

	tours.SetupTourRoutes(rg, tours.NewController(tourService))
}

func (r *Router) setupTariffRoutes(rg *gin.RouterGroup) {
	tariffService := tariffs.NewService(r.tariffRepo)
	tariffs.SetupTariffRoutes(rg, tariffs.NewController(tariffService))
}

func (r *Router) setupDateRoutes(rg *gin.RouterGroup) {
	dateService := dates.NewService(r.dateRepo)
	dates.SetupDateRoutes(rg, dates.NewController(dateService))
}

func (r *Router) setupRouteRoutes(rg *gin.RouterGroup) {
	routeService := routes.NewService(r.routeRepo)
	routes.SetupRouteRoutes(rg, routes.NewController(routeService))
}

func (r *Router) setupContentRoutes(rg *gin.RouterGroup) {
	contentService := content.NewService(r.contentRepo)
	content.SetupContentRoutes(rg, content.NewController(contentService))
}

// setupBookingRoutes configures the checkout flow and the booking console
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	var holds *bookings.SeatHolds
	if r.db.Redis != nil {
		holds = bookings.NewSeatHolds(r.db.Redis, r.config.Redis.SeatHoldTTL)
	}

	bookingService := bookings.NewService(
		r.bookingRepo,
		r.tourRepo,
		r.dateRepo,
		r.tariffRepo,
		r.routeRepo,
		r.contentRepo,
		holds,
		r.config.Redis.SeatHoldTTL,
		r.producer,
		r.log,
	)

	bookings.SetupBookingRoutes(rg, bookings.NewController(bookingService))
}

func (r *Router) setupInquiryRoutes(rg *gin.RouterGroup) {
	inquiryRepo := inquiries.NewRepository(r.db.GetPostgreSQL())
	inquiryService := inquiries.NewService(inquiryRepo, r.producer, r.log)
	inquiries.SetupInquiryRoutes(rg, inquiries.NewController(inquiryService))
}

// setupOpsRoutes configures the operations dashboard routes
func (r *Router) setupOpsRoutes(rg *gin.RouterGroup) {
	opsRepo := ops.NewRepository(r.db.GetPostgreSQL())
	r.opsService = ops.NewService(
		opsRepo,
		r.bookingRepo,
		r.cacheService,
		r.producer,
		r.log,
		r.config.Ops.ScanWindow,
	)

	ops.SetupOpsRoutes(rg, ops.NewController(r.opsService))
}
