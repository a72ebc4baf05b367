package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("not found")

// Category groups societies on the directory page.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryDesign        Category = "Design"
	CategoryArts          Category = "Arts"
	CategoryBusiness      Category = "Business"
	CategoryAcademic      Category = "Academic"
	CategorySocial        Category = "Social"
	CategoryEntertainment Category = "Entertainment"

	// AllCategories is the wildcard category filter.
	AllCategories = "All"
)

// Categories lists the closed category set in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryDesign,
	CategoryArts,
	CategoryBusiness,
	CategoryAcademic,
	CategorySocial,
	CategoryEntertainment,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// EventStatus is the lifecycle position of an event.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"

	// AllStatuses is the wildcard status filter.
	AllStatuses = "All"
	// AllTypes is the wildcard event type filter.
	AllTypes = "All Types"
)

// Statuses lists every status an event may carry.
var Statuses = []EventStatus{StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled}

// StatusFilters are the status options offered to clients. Cancelled events
// are only reachable through the wildcard.
var StatusFilters = []string{AllStatuses, "Upcoming", "Ongoing", "Completed"}

// EventTypes lists the known event types in display order.
var EventTypes = []string{"Workshop", "Hackathon", "Masterclass", "Exhibition", "Competition", "Volunteering"}

// Valid reports whether s is a known status.
func (s EventStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Society is a student community listed in the directory.
type Society struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	MemberCount int      `json:"memberCount" yaml:"memberCount"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
	Founded     string   `json:"founded" yaml:"founded"`
	President   string   `json:"president" yaml:"president"`
}

// Validate checks the invariants a seeded society must hold.
func (s Society) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("society %q: id is required", s.Name)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("society %s: unknown category %q", s.ID, s.Category)
	}
	if s.MemberCount < 0 {
		return fmt.Errorf("society %s: negative member count %d", s.ID, s.MemberCount)
	}
	return nil
}

// Event is a scheduled happening owned by a society.
type Event struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Date        string      `json:"date" yaml:"date"`
	Time        string      `json:"time" yaml:"time"`
	Location    string      `json:"location" yaml:"location"`
	Society     string      `json:"society" yaml:"society"`
	Capacity    int         `json:"capacity" yaml:"capacity"`
	Registered  int         `json:"registered" yaml:"registered"`
	Status      EventStatus `json:"status" yaml:"status"`
	Image       string      `json:"image" yaml:"image"`
	Type        string      `json:"type" yaml:"type"`
}

// Validate checks the invariants a seeded event must hold.
func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("event %q: id is required", e.Title)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("event %s: unknown status %q", e.ID, e.Status)
	}
	if e.Capacity < 0 {
		return fmt.Errorf("event %s: negative capacity %d", e.ID, e.Capacity)
	}
	if e.Registered < 0 {
		return fmt.Errorf("event %s: negative registered count %d", e.ID, e.Registered)
	}
	return nil
}

// CapacityPercent is the share of seats taken. An event without capacity reports zero.
func (e Event) CapacityPercent() float64 {
	if e.Capacity == 0 {
		return 0
	}
	return float64(e.Registered) / float64(e.Capacity) * 100
}

// Registrable reports whether the event still accepts sign-ups or waitlist entries.
func (e Event) Registrable() bool {
	return e.Status == StatusUpcoming || e.Status == StatusOngoing
}

// Action is the call-to-action label shown on the event card.
func (e Event) Action() string {
	switch {
	case e.Status == StatusCompleted:
		return "Event Ended"
	case e.Status == StatusCancelled:
		return "Cancelled"
	case e.CapacityPercent() >= 100:
		return "Waitlist"
	default:
		return "Register Now"
	}
}

// EventView decorates an event with the fields derived for display.
type EventView struct {
	Event
	CapacityPercent int    `json:"capacityPercent"`
	AlmostFull      bool   `json:"almostFull"`
	Registrable     bool   `json:"registrable"`
	Action          string `json:"action"`
}

// NewEventView derives display fields from e.
func NewEventView(e Event) EventView {
	pct := e.CapacityPercent()
	return EventView{
		Event:           e,
		CapacityPercent: int(pct + 0.5),
		AlmostFull:      pct >= 90,
		Registrable:     e.Registrable(),
		Action:          e.Action(),
	}
}

// ActivityKind classifies feed entries.
type ActivityKind string

const (
	ActivityJoin        ActivityKind = "join"
	ActivityEvent       ActivityKind = "event"
	ActivityPost        ActivityKind = "post"
	ActivityAchievement ActivityKind = "achievement"
)

// Activity is a single entry of the recent activity feed.
type Activity struct {
	ID        string       `json:"id" yaml:"id"`
	Type      ActivityKind `json:"type" yaml:"type"`
	User      string       `json:"user" yaml:"user"`
	Action    string       `json:"action" yaml:"action"`
	Target    string       `json:"target" yaml:"target"`
	Timestamp string       `json:"timestamp" yaml:"timestamp"`
	Avatar    string       `json:"avatar" yaml:"avatar"`
}

// Stat is a headline counter on the dashboard.
type Stat struct {
	Label  string  `json:"label" yaml:"label"`
	Value  int     `json:"value" yaml:"value"`
	Change float64 `json:"change" yaml:"change"`
	Icon   string  `json:"icon" yaml:"icon"`
}

// ChartPoint is one month of the activity chart.
type ChartPoint struct {
	Name      string `json:"name" yaml:"name"`
	Societies int    `json:"societies" yaml:"societies"`
	Events    int    `json:"events" yaml:"events"`
	Members   int    `json:"members" yaml:"members"`
}

// CategoryShare counts societies in one category.
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Dashboard bundles everything the overview page renders.
type Dashboard struct {
	Stats      []Stat          `json:"stats"`
	Monthly    []ChartPoint    `json:"monthly"`
	Categories []CategoryShare `json:"categories"`
	Upcoming   []EventView     `json:"upcoming"`
	Activities []Activity      `json:"activities"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleAI   ChatRole = "ai"
)

// ChatMessage is one line of the assistant conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessageInput is the payload for posting to the assistant.
type SendMessageInput struct {
	Content string `json:"content"`
}

// QuickPrompt is a canned question offered next to the chat box.
type QuickPrompt struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}
