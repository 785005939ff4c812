// Package server contains the HTTP handlers for the portfolio API.
package server

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/derive"
	"portfolio/internal/middleware"
	"portfolio/internal/repository"
	"portfolio/internal/service"
	"portfolio/internal/store"
)

// Version is the API version advertised on the home page.
const Version = "1.0.0"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	homeService           service.HomeService
	aboutService          service.AboutService
	skillsService         service.SkillsService
	projectsService       service.ProjectsService
	certificationsService service.CertificationsService
	timelineService       service.TimelineService
	offeringsService      service.OfferingsService
	resumeService         service.ResumeService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) *Server {
	cache.InitRedis(cfg.RedisURL)
	srv := NewServerWithDeps(cfg, store.New(cfg.CSVDataPath), cache.GetClient(), derive.SystemClock)
	// Registered here rather than in NewServerWithDeps so test servers do
	// not collide on the default Prometheus registry.
	srv.promMiddleware = middleware.InitMetrics("portfolio-api")
	return srv
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store, cache,
// and clock.
func NewServerWithDeps(cfg *config.Config, s *store.Store, redisClient *redis.Client, clock derive.Clock) *Server {
	profileRepo := repository.NewProfileRepository(s, clock)
	skillRepo := repository.NewSkillRepository(s)
	mlModelRepo := repository.NewMLModelRepository(s)
	achievementRepo := repository.NewAchievementRepository(s)
	workExpRepo := repository.NewWorkExperienceRepository(s)
	projectRepo := repository.NewProjectRepository(s, skillRepo, mlModelRepo, achievementRepo, workExpRepo, clock)
	certificationRepo := repository.NewCertificationRepository(s, skillRepo)
	serviceRepo := repository.NewServiceRepository(s)

	return &Server{
		config:                cfg,
		redis:                 redisClient,
		homeService:           service.NewHomeService(profileRepo, clock, Version),
		aboutService:          service.NewAboutService(profileRepo, skillRepo, workExpRepo, clock),
		skillsService:         service.NewSkillsService(skillRepo),
		projectsService:       service.NewProjectsService(projectRepo),
		certificationsService: service.NewCertificationsService(certificationRepo),
		timelineService:       service.NewTimelineService(profileRepo, workExpRepo),
		offeringsService:      service.NewOfferingsService(serviceRepo),
		resumeService:         service.NewResumeService(profileRepo, skillRepo, projectRepo, workExpRepo, certificationRepo, clock),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Tracing spans and log correlation (after requestid)
	app.Use(middleware.TracingMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health check
	app.Get("/health", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Page endpoints. Each accepts a JSON body with the username.
	app.Get("/", s.HomeInfo)
	app.Post("/", s.Home)
	app.Post("/about", s.About)
	app.Post("/skills", s.Skills)
	app.Post("/projects", s.Projects)
	app.Post("/projects/:projectId", s.ProjectDetail)
	app.Post("/certifications", s.Certifications)
	app.Post("/timeline", s.Timeline)
	app.Post("/services", s.Services)
	app.Post("/services/:serviceId", s.ServiceDetail)

	// Resume: GET serves the configured default user.
	app.Get("/resume", s.ResumeDefault)
	app.Post("/resume", s.Resume)
}
