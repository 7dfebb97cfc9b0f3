package router

import (
	"fmt"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/config"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/handler"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/infra"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/middleware"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/session"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb redis.Cmdable, mailer *infra.Mailer) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	signer, err := session.NewSigner(cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	vendorRepo := repository.NewVendorRepository(db)
	locationRepo := repository.NewVendorLocationRepository(db)
	productRepo := repository.NewVendorProductRepository(db)
	routeRepo := repository.NewFreightRouteRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	workdayRepo := repository.NewWorkdayRepository(db)
	haulRepo := repository.NewHaulRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc, err := service.NewAuthService(cfg, signer)
	if err != nil {
		return nil, err
	}
	activationSvc := service.NewActivationService(repository.NewUnitOfWork(db))
	vendorSvc := service.NewVendorService(vendorRepo)
	locationSvc := service.NewVendorLocationService(locationRepo, vendorRepo)
	productSvc := service.NewVendorProductService(productRepo, locationRepo)
	routeSvc := service.NewFreightRouteService(routeRepo, locationRepo)
	driverSvc := service.NewDriverService(driverRepo)
	workdaySvc := service.NewWorkdayService(workdayRepo, driverRepo, cfg.PDFStoragePath)
	haulSvc := service.NewHaulService(haulRepo, workdayRepo, routeRepo, productRepo)
	noticeSvc := service.NewNoticeService(noticeRepo, contactRepo, dispatcher)
	contactSvc := service.NewContactService(contactRepo, vendorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg.IsProduction())
	activationH := handler.NewActivationHandler(activationSvc)
	workdayDocsH := handler.NewWorkdayDocsHandler(workdaySvc)
	broadcastH := handler.NewBroadcastHandler(noticeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailer))
	r.GET("/login", authH.LoginPage)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/logout", authH.Logout)

	// Everything else needs the session cookie
	gate := middleware.CookieAuth(authSvc)
	r.GET("/", gate, handler.Home(noticeSvc))

	api := r.Group("/api", gate)
	{
		api.GET("", handler.Home(noticeSvc))

		vendors := api.Group("/vendors")
		handler.NewVendorsHandler(vendorSvc).Register(vendors)
		vendors.POST("/:id/deactivate", activationH.DeactivateVendor)
		vendors.POST("/:id/reactivate", activationH.ReactivateVendor)

		locations := api.Group("/vendor-locations")
		handler.NewVendorLocationsHandler(locationSvc).Register(locations)
		locations.POST("/:id/deactivate", activationH.DeactivateLocation)
		locations.POST("/:id/reactivate", activationH.ReactivateLocation)

		handler.NewVendorProductsHandler(productSvc).Register(api.Group("/vendor-products"))
		handler.NewFreightRoutesHandler(routeSvc).Register(api.Group("/freight-routes"))
		handler.NewDriversHandler(driverSvc).Register(api.Group("/drivers"))

		workdays := api.Group("/workdays")
		handler.NewWorkdaysHandler(workdaySvc).Register(workdays)
		workdays.GET("/:id/haul-sheet.pdf", workdayDocsH.HaulSheet)
		workdays.POST("/:id/haul-sheet", workdayDocsH.ArchiveHaulSheet)

		handler.NewHaulsHandler(haulSvc).Register(api.Group("/hauls"))

		notices := api.Group("/notices")
		handler.NewNoticesHandler(noticeSvc).Register(notices)
		notices.POST("/:id/broadcast", broadcastH.Broadcast)

		handler.NewContactsHandler(contactSvc).Register(api.Group("/contacts"))
	}

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
