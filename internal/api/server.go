package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
	"github.com/jagritimaurya743-source/college-society-management/internal/search"
)

// Store abstracts the dataset so handlers can be tested against fakes.
type Store interface {
	ListSocieties(ctx context.Context, c search.SocietyCriteria) ([]domain.Society, error)
	GetSociety(ctx context.Context, id string) (domain.Society, error)
	ListEvents(ctx context.Context, c search.EventCriteria) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	UpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error)
	Activities(ctx context.Context, limit int) ([]domain.Activity, error)
	Stats(ctx context.Context) ([]domain.Stat, error)
	MonthlyActivity(ctx context.Context) ([]domain.ChartPoint, error)
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryShare, error)
}

// Assistant answers chat messages.
type Assistant interface {
	Welcome() domain.ChatMessage
	Prompts() []domain.QuickPrompt
	Message(content string) (domain.ChatMessage, error)
	Reply(ctx context.Context, content string) (domain.ChatMessage, error)
}

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes the Fiber application.
type Server struct {
	app       *fiber.App
	store     Store
	assistant Assistant
	cfg       Config
	log       *zap.Logger
	metrics   *metrics
}

// NewServer wires handlers and middleware. Metrics are registered on reg.
func NewServer(cfg Config, store Store, assistant Assistant, log *zap.Logger, reg *prometheus.Registry) *Server {
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 15 * time.Second
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          errorHandler,
	})

	srv := &Server{
		app:       app,
		store:     store,
		assistant: assistant,
		cfg:       cfg,
		log:       log,
		metrics:   newMetrics(reg),
	}

	app.Use(observe(log, srv.metrics))
	app.Use(recover.New())
	app.Use(cors.New())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	srv.registerRoutes()
	return srv
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("society service listening", zap.String("addr", s.cfg.Addr))
		return s.app.Listen(s.cfg.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		return s.app.ShutdownWithTimeout(5 * time.Second)
	})
	return g.Wait()
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/societies", s.handleListSocieties)
	api.Get("/societies/:id", s.handleGetSociety)
	api.Get("/events", s.handleListEvents)
	api.Get("/events/:id", s.handleGetEvent)
	api.Get("/filters", s.handleFilters)
	api.Get("/dashboard", s.handleDashboard)
	api.Get("/chat/welcome", s.handleChatWelcome)
	api.Get("/chat/prompts", s.handleChatPrompts)
	api.Post("/chat/messages", s.handleChatMessage)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
