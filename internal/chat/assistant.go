// Package chat implements the canned campus assistant. Replies are looked up
// from a fixed table and delivered after a short typing delay.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
)

// DefaultDelay mimics the assistant "typing".
const DefaultDelay = 1500 * time.Millisecond

// ErrEmptyMessage rejects blank input.
var ErrEmptyMessage = errors.New("message is empty")

const (
	welcomeText  = "Hello! I'm your AI assistant. I can help you discover societies, find events, and answer questions about campus life. What would you like to know?"
	fallbackText = "I'm still learning! Try asking about societies, events, study groups, or trending activities."
)

var prompts = []domain.QuickPrompt{
	{Text: "Suggest societies for me", Icon: "lightbulb"},
	{Text: "What events are this week?", Icon: "calendar"},
	{Text: "Find study groups", Icon: "users"},
	{Text: "Show trending activities", Icon: "trending-up"},
}

var answers = map[string]string{
	"Suggest societies for me": "Based on your interests in technology and design, I recommend:\n\n" +
		"1. **Tech Innovators** - Perfect for AI and web development\n" +
		"2. **Design Studio** - Great for UI/UX skills\n" +
		"3. **Photography Club** - Creative outlet with editing workshops",
	"What events are this week?": "Here are the top events this week:\n\n" +
		"• **AI Workshop** - March 15, 2:00 PM\n" +
		"• **Design Systems Masterclass** - March 18, 10:00 AM\n" +
		"• **Campus Cleanup Drive** - March 20, 9:00 AM",
	"Find study groups": "I found these active study groups:\n\n" +
		"• **CS Study Circle** - 45 members\n" +
		"• **Design Critique Group** - 32 members\n" +
		"• **Startup Founders** - 28 members",
	"Show trending activities": "Trending this week:\n\n" +
		"🔥 Spring Hackathon registration up 156%\n" +
		"📸 Photo exhibition had 87 attendees\n" +
		"🚀 3 new societies formed this month",
}

// Assistant answers chat messages.
type Assistant struct {
	delay time.Duration
	now   func() time.Time
}

// NewAssistant returns an assistant that waits delay before every reply.
// A negative delay is treated as zero.
func NewAssistant(delay time.Duration) *Assistant {
	if delay < 0 {
		delay = 0
	}
	return &Assistant{delay: delay, now: time.Now}
}

// Welcome is the greeting that opens every conversation.
func (a *Assistant) Welcome() domain.ChatMessage {
	return domain.ChatMessage{ID: "welcome", Role: domain.RoleAI, Content: welcomeText, Timestamp: a.now()}
}

// Prompts lists the suggested questions.
func (a *Assistant) Prompts() []domain.QuickPrompt {
	return append([]domain.QuickPrompt(nil), prompts...)
}

// Message wraps user input as a conversation entry.
func (a *Assistant) Message(content string) (domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}
	return domain.ChatMessage{ID: uuid.NewString(), Role: domain.RoleUser, Content: content, Timestamp: a.now()}, nil
}

// Reply waits for the typing delay and answers content. Prompts are matched
// exactly; anything else receives the fallback answer.
func (a *Assistant) Reply(ctx context.Context, content string) (domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.ChatMessage{}, ctx.Err()
		case <-timer.C:
		}
	}

	answer, ok := answers[content]
	if !ok {
		answer = fallbackText
	}
	return domain.ChatMessage{ID: uuid.NewString(), Role: domain.RoleAI, Content: answer, Timestamp: a.now()}, nil
}

// Known reports whether content is one of the canned prompts.
func Known(content string) bool {
	_, ok := answers[content]
	return ok
}
