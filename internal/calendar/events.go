package calendar

import (
	"context"
	"time"
)

// Interaction events carry the context of the gesture that raised them so
// subscribers can make backend calls bound to it.

// BeforeCreateEvent is raised when a time slot is selected.
type BeforeCreateEvent struct {
	Context    context.Context
	CalendarID string
	Start      time.Time
	End        time.Time
	IsAllday   bool
}

// BeforeUpdateEvent is raised when an event is dragged or resized.
type BeforeUpdateEvent struct {
	Context context.Context
	Event   Event
	Changes Changes
}

// BeforeDeleteEvent is raised when deletion of an event is requested.
type BeforeDeleteEvent struct {
	Context context.Context
	Event   Event
}

// ClickEvent is raised when an event is clicked.
type ClickEvent struct {
	Context context.Context
	Event   Event
	ClientX int
	ClientY int
}
