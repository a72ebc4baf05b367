package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jagritimaurya743-source/college-society-management/internal/chat"
	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
	"github.com/jagritimaurya743-source/college-society-management/internal/search"
)

const upcomingOnDashboard = 3

func (s *Server) handleListSocieties(c *fiber.Ctx) error {
	criteria := search.SocietyCriteria{
		Query:    c.Query("q"),
		Category: c.Query("category", domain.AllCategories),
	}
	items, err := s.store.ListSocieties(c.UserContext(), criteria)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("list societies: %v", err))
	}
	s.metrics.resultSize.WithLabelValues("society").Observe(float64(len(items)))

	return c.JSON(fiber.Map{
		"data": items,
		"meta": fiber.Map{"count": len(items)},
	})
}

func (s *Server) handleGetSociety(c *fiber.Ctx) error {
	soc, err := s.store.GetSociety(c.UserContext(), c.Params("id"))
	if err != nil {
		return lookupError("society", err)
	}
	return c.JSON(fiber.Map{"data": soc})
}

func (s *Server) handleListEvents(c *fiber.Ctx) error {
	criteria := search.EventCriteria{
		Query:  c.Query("q"),
		Status: c.Query("status", domain.AllStatuses),
		Type:   c.Query("type", domain.AllTypes),
	}
	items, err := s.store.ListEvents(c.UserContext(), criteria)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("list events: %v", err))
	}
	s.metrics.resultSize.WithLabelValues("event").Observe(float64(len(items)))

	views := eventViews(items)
	return c.JSON(fiber.Map{
		"data": views,
		"meta": fiber.Map{"count": len(views)},
	})
}

func (s *Server) handleGetEvent(c *fiber.Ctx) error {
	evt, err := s.store.GetEvent(c.UserContext(), c.Params("id"))
	if err != nil {
		return lookupError("event", err)
	}
	return c.JSON(fiber.Map{"data": domain.NewEventView(evt)})
}

func (s *Server) handleFilters(c *fiber.Ctx) error {
	categories := make([]string, 0, len(domain.Categories)+1)
	categories = append(categories, domain.AllCategories)
	for _, cat := range domain.Categories {
		categories = append(categories, string(cat))
	}
	types := append([]string{domain.AllTypes}, domain.EventTypes...)

	return c.JSON(fiber.Map{"data": fiber.Map{
		"categories": categories,
		"statuses":   domain.StatusFilters,
		"types":      types,
	}})
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	dash, err := s.dashboard(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("dashboard: %v", err))
	}
	return c.JSON(fiber.Map{"data": dash})
}

func (s *Server) dashboard(ctx context.Context) (domain.Dashboard, error) {
	var (
		dash domain.Dashboard
		err  error
	)
	if dash.Stats, err = s.store.Stats(ctx); err != nil {
		return dash, fmt.Errorf("stats: %w", err)
	}
	if dash.Monthly, err = s.store.MonthlyActivity(ctx); err != nil {
		return dash, fmt.Errorf("monthly activity: %w", err)
	}
	if dash.Categories, err = s.store.CategoryBreakdown(ctx); err != nil {
		return dash, fmt.Errorf("category breakdown: %w", err)
	}
	upcoming, err := s.store.UpcomingEvents(ctx, upcomingOnDashboard)
	if err != nil {
		return dash, fmt.Errorf("upcoming events: %w", err)
	}
	dash.Upcoming = eventViews(upcoming)
	if dash.Activities, err = s.store.Activities(ctx, 0); err != nil {
		return dash, fmt.Errorf("activities: %w", err)
	}
	return dash, nil
}

func (s *Server) handleChatWelcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.assistant.Welcome()})
}

func (s *Server) handleChatPrompts(c *fiber.Ctx) error {
	prompts := s.assistant.Prompts()
	return c.JSON(fiber.Map{"data": prompts, "meta": fiber.Map{"count": len(prompts)}})
}

func (s *Server) handleChatMessage(c *fiber.Ctx) error {
	var payload domain.SendMessageInput
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	question, err := s.assistant.Message(payload.Content)
	if errors.Is(err, chat.ErrEmptyMessage) {
		return fiber.NewError(fiber.StatusBadRequest, "content is required")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("chat: %v", err))
	}

	answer, err := s.assistant.Reply(c.UserContext(), payload.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("chat reply: %v", err))
	}
	s.metrics.chatReplies.WithLabelValues(fmt.Sprint(chat.Known(payload.Content))).Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": []domain.ChatMessage{question, answer},
	})
}

func eventViews(events []domain.Event) []domain.EventView {
	views := make([]domain.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, domain.NewEventView(e))
	}
	return views
}

func lookupError(kind string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, kind+" not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("get %s: %v", kind, err))
}
