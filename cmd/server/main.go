package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/fitstack/fittrack/internal/config"
	"github.com/fitstack/fittrack/internal/database"
	"github.com/fitstack/fittrack/internal/events"
	"github.com/fitstack/fittrack/internal/handlers"
	"github.com/fitstack/fittrack/internal/middleware"
	"github.com/fitstack/fittrack/internal/services"
	"github.com/fitstack/fittrack/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/fitstack/fittrack/docs/api" // Swagger docs
)

// @title FitTrack API
// @version 1.0.0
// @description Environment-scoped fitness tracking data service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/fitstack/fittrack

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Active tier: %s", cfg.Tier)

	// Connect to database (app pool)
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Change event bus and tier-bound store
	bus := events.NewBus()
	store := services.NewStore(db, cfg.Tier, bus)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("fittrack")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}
	profileHandler := &handlers.ProfileHandler{Store: store}
	exerciseHandler := &handlers.ExerciseHandler{Store: store}
	planHandler := &handlers.PlanHandler{Store: store}
	sessionHandler := &handlers.SessionHandler{Store: store}
	metricHandler := &handlers.MetricHandler{Store: store}
	eventsHandler := &handlers.EventsHandler{Store: store, Bus: bus}

	authUser := middleware.AuthUser(cfg)
	authAdmin := middleware.AuthAdmin(cfg)

	// Health (public)
	api.Get("/health", healthHandler.GetHealth)

	// Profile
	api.Get("/profile", authUser, profileHandler.GetProfile)
	api.Put("/profile", authUser, profileHandler.PutProfile)
	api.Post("/profile/reset", authUser, profileHandler.ResetProfile)

	// Exercise library (reads for users, writes for admins)
	api.Get("/exercises", authUser, exerciseHandler.ListExercises)
	api.Get("/exercises/:id", authUser, exerciseHandler.GetExercise)
	api.Post("/exercises", authAdmin, exerciseHandler.CreateExercise)
	api.Put("/exercises/:id", authAdmin, exerciseHandler.UpdateExercise)
	api.Delete("/exercises/:id", authAdmin, exerciseHandler.DeleteExercise)

	// Workout plans
	api.Get("/plans", authUser, planHandler.ListPlans)
	api.Post("/plans", authUser, planHandler.CreatePlan)
	api.Get("/plans/:id", authUser, planHandler.GetPlan)
	api.Put("/plans/:id", authUser, planHandler.UpdatePlan)
	api.Delete("/plans/:id", authUser, planHandler.DeletePlan)
	api.Get("/plans/:id/exercises", authUser, planHandler.ListPlanExercises)
	api.Put("/plans/:id/exercises", authUser, planHandler.ReplacePlanExercises)

	// Workout sessions and logs
	api.Get("/sessions", authUser, sessionHandler.ListSessions)
	api.Post("/sessions", authUser, sessionHandler.StartSession)
	api.Get("/sessions/:id", authUser, sessionHandler.GetSession)
	api.Patch("/sessions/:id", authUser, sessionHandler.UpdateSession)
	api.Post("/sessions/:id/end", authUser, sessionHandler.EndSession)
	api.Get("/sessions/:id/logs", authUser, sessionHandler.ListLogs)
	api.Post("/sessions/:id/logs", authUser, sessionHandler.CreateLog)

	// Progress metrics
	api.Get("/metrics", authUser, metricHandler.ListMetrics)
	api.Post("/metrics", authUser, metricHandler.CreateMetric)
	api.Delete("/metrics/:id", authUser, metricHandler.DeleteMetric)

	// Change event stream
	api.Get("/events", authUser, eventsHandler.StreamEvents)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Authorizer is initialized from the first authenticated request
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	switch e := err.(type) {
	case *types.CustomError:
		code = e.Code
		message = e.Message
		errorType = e.Type
	case *fiber.Error:
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
