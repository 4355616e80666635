package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mwantia/studytrack/internal/config"
	"github.com/mwantia/studytrack/internal/server/handlers"
	"github.com/mwantia/studytrack/pkg/db/store"
	"github.com/mwantia/studytrack/pkg/log"
)

// Server exposes the study store as a local HTTP API for GUI clients.
// It is the only place a store connection outlives a single operation.
type Server struct {
	cfg   *config.BaseConfig
	store store.StudyStore
	log   log.LoggerService
	app   *fiber.App
}

func NewServer(cfg *config.BaseConfig, st store.StudyStore, logService log.LoggerService) *Server {
	srv := &Server{
		cfg:   cfg,
		store: st,
		log:   logService.Named("server"),
	}

	srv.app = fiber.New(fiber.Config{
		AppName:      "studytrack",
		ErrorHandler: errorHandler,
	})
	srv.setupRoutes()

	return srv
}

func (s *Server) setupRoutes() {
	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.Server.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	h := handlers.New(s.store, s.log)

	api := s.app.Group("/api")
	api.Get("/health", h.Health)
	api.Get("/statistics", h.GetStatistics)

	items := api.Group("/items")
	items.Get("/", h.ListItems)
	items.Post("/", h.CreateItem)
	items.Get("/search", h.SearchItems)
	items.Get("/:id", h.GetItem)
	items.Put("/:id", h.UpdateItem)
	items.Delete("/:id", h.DeleteItem)
	items.Get("/:id/sessions", h.ListSessions)
	items.Post("/:id/sessions", h.LogSession)

	categories := api.Group("/categories")
	categories.Get("/", h.ListCategories)
	categories.Post("/", h.CreateCategory)
	categories.Put("/:id", h.UpdateCategory)
	categories.Delete("/:id", h.DeleteCategory)

	tags := api.Group("/tags")
	tags.Get("/", h.ListTags)
	tags.Post("/", h.CreateTag)
	tags.Put("/:id", h.UpdateTag)
	tags.Delete("/:id", h.DeleteTag)
}

// App returns the underlying fiber application, used by handler tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve blocks until the context is cancelled or an interrupt arrives,
// then shuts the listener down within the configured timeout.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		s.log.Info("Listening on %s", s.cfg.Server.Listen)
		errs <- s.app.Listen(s.cfg.Server.Listen)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	timeout, err := time.ParseDuration(s.cfg.ShutdownTimeout)
	if err != nil {
		timeout = 60 * time.Second
	}

	s.log.Info("Shutting down...")
	if err := s.app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
