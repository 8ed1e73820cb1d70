package server

import (
	"log"

	"rude-dashboard-be/internal/bootstrap"
	"rude-dashboard-be/internal/config"
	"rude-dashboard-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	if container.Metrics != nil {
		app.Use(container.Metrics.Middleware())
		app.Get("/metrics", container.Metrics.Handler())
	}

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, container)

	// Pre-built front-end, when deployed alongside
	if cfg.App.PublicDir != "" {
		app.Static("/", cfg.App.PublicDir)
	}

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.ConquestController.RegisterRoutes(app)

	api := app.Group("/api")

	c.VersionController.RegisterRoutes(api)
	c.AuthController.RegisterRoutes(api)

	c.FeatureController.RegisterRoutes(api)
	c.WarController.RegisterRoutes(api)
	c.PatoController.RegisterRoutes(api)

	c.ProductController.RegisterRoutes(api)
	c.TransactionController.RegisterRoutes(api, c.JwtMiddleware)
}
