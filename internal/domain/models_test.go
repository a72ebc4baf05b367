package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Action(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"completed", Event{Status: StatusCompleted, Capacity: 10, Registered: 2}, "Event Ended"},
		{"cancelled", Event{Status: StatusCancelled, Capacity: 10, Registered: 10}, "Cancelled"},
		{"full", Event{Status: StatusUpcoming, Capacity: 10, Registered: 10}, "Waitlist"},
		{"open", Event{Status: StatusOngoing, Capacity: 10, Registered: 9}, "Register Now"},
		{"no capacity", Event{Status: StatusUpcoming}, "Register Now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Action())
		})
	}
}

func TestNewEventView(t *testing.T) {
	v := NewEventView(Event{Status: StatusUpcoming, Capacity: 50, Registered: 42})
	assert.Equal(t, 84, v.CapacityPercent)
	assert.False(t, v.AlmostFull)
	assert.True(t, v.Registrable)

	v = NewEventView(Event{Status: StatusCompleted, Capacity: 3, Registered: 2})
	assert.Equal(t, 67, v.CapacityPercent)
	assert.False(t, v.Registrable)

	v = NewEventView(Event{Status: StatusUpcoming, Capacity: 100, Registered: 90})
	assert.True(t, v.AlmostFull)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Society{ID: "1", Category: CategoryArts}.Validate())
	assert.Error(t, Society{ID: "1", Category: "All"}.Validate())
	assert.Error(t, Society{Category: CategoryArts}.Validate())
	assert.Error(t, Society{ID: "1", Category: CategoryArts, MemberCount: -1}.Validate())

	assert.NoError(t, Event{ID: "1", Status: StatusOngoing}.Validate())
	assert.Error(t, Event{ID: "1", Status: "Upcoming"}.Validate())
	assert.Error(t, Event{ID: "1", Status: StatusOngoing, Registered: -1}.Validate())
}
