// Package calendar holds the in-memory calendar the console renders batches on,
// and the adapter that keeps it in step with the scheduling backend.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/aps-console/pkg/eventbus"
)

// View is one of the calendar layouts.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView validates raw.
func ParseView(raw string) (View, error) {
	switch View(raw) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(raw), nil
	default:
		return "", fmt.Errorf("unknown calendar view %q", raw)
	}
}

// EventRaw carries batch metadata that the calendar does not interpret.
type EventRaw struct {
	ProductID   string `json:"product_id"`
	EquipmentID string `json:"equipment_id"`
	Process     string `json:"process"`
	LotNumber   string `json:"lot_number"`
}

// Event is one entry on the calendar.
type Event struct {
	ID              string    `json:"id"`
	CalendarID      string    `json:"calendarId"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	IsAllday        bool      `json:"isAllday"`
	State           string    `json:"state,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	Raw             EventRaw  `json:"raw"`
	// Unsaved marks events created on the calendar that the backend has never seen.
	Unsaved bool `json:"unsaved,omitempty"`
}

// Changes is a partial update; nil fields are left as they are.
type Changes struct {
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	CalendarID *string    `json:"calendarId,omitempty"`
	Title      *string    `json:"title,omitempty"`
}

// WeekOptions configures the day and week layouts.
type WeekOptions struct {
	StartDayOfWeek time.Weekday `json:"startDayOfWeek"`
	DayNames       []string     `json:"dayNames"`
	Workweek       bool         `json:"workweek"`
	HourStart      int          `json:"hourStart"`
	HourEnd        int          `json:"hourEnd"`
	NarrowWeekend  bool         `json:"narrowWeekend"`
}

// MonthOptions configures the month layout.
type MonthOptions struct {
	StartDayOfWeek time.Weekday `json:"startDayOfWeek"`
	DayNames       []string     `json:"dayNames"`
	Workweek       bool         `json:"workweek"`
	NarrowWeekend  bool         `json:"narrowWeekend"`
}

// Options is the widget configuration.
type Options struct {
	DefaultView  View              `json:"defaultView"`
	TaskView     bool              `json:"taskView"`
	ScheduleView []string          `json:"scheduleView"`
	Calendars    []SubCalendar     `json:"calendars"`
	Week         WeekOptions       `json:"week"`
	Month        MonthOptions      `json:"month"`
	Theme        map[string]string `json:"theme"`

	Templates *Templates       `json:"-"`
	Location  *time.Location   `json:"-"`
	Now       func() time.Time `json:"-"`
	Bus       *eventbus.Bus    `json:"-"`
}

type eventKey struct {
	id         string
	calendarID string
}

// Widget is the in-memory calendar. Gesture methods (Select, Drag,
// RequestDelete, Click) only publish interaction events; whoever subscribes
// decides whether the model changes.
type Widget struct {
	mu        sync.RWMutex
	opts      Options
	events    map[eventKey]Event
	hidden    map[string]bool
	view      View
	anchor    time.Time
	bus       *eventbus.Bus
	templates *Templates
}

// NewWidget builds a widget; zero-valued options get the console defaults.
func NewWidget(opts Options) *Widget {
	if opts.DefaultView == "" {
		opts.DefaultView = ViewWeek
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Week.HourEnd == 0 {
		opts.Week.HourStart, opts.Week.HourEnd = 6, 22
	}
	if opts.Bus == nil {
		opts.Bus = eventbus.New(nil)
	}
	if opts.Templates == nil {
		opts.Templates = DefaultTemplates()
	}
	w := &Widget{
		opts:      opts,
		events:    make(map[eventKey]Event),
		hidden:    make(map[string]bool),
		view:      opts.DefaultView,
		bus:       opts.Bus,
		templates: opts.Templates,
	}
	w.anchor = w.midnight(opts.Now())
	return w
}

// Bus returns the bus interaction events are published on.
func (w *Widget) Bus() *eventbus.Bus {
	return w.bus
}

// Options returns the configuration the widget was built with.
func (w *Widget) Options() Options {
	return w.opts
}

// CreateEvents inserts events, replacing any with the same id and calendar.
func (w *Widget) CreateEvents(events []Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ev := range events {
		w.events[eventKey{ev.ID, ev.CalendarID}] = ev
	}
}

// UpdateEvent applies changes to the event identified by id and calendarID.
func (w *Widget) UpdateEvent(id, calendarID string, changes Changes) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := eventKey{id, calendarID}
	ev, ok := w.events[key]
	if !ok {
		return fmt.Errorf("event %s on %s not found", id, calendarID)
	}
	if changes.Start != nil {
		ev.Start = *changes.Start
	}
	if changes.End != nil {
		ev.End = *changes.End
	}
	if changes.Title != nil {
		ev.Title = *changes.Title
	}
	if changes.CalendarID != nil && *changes.CalendarID != "" && *changes.CalendarID != calendarID {
		ev.CalendarID = *changes.CalendarID
		delete(w.events, key)
	}
	w.events[eventKey{ev.ID, ev.CalendarID}] = ev
	return nil
}

// DeleteEvent removes an event. Deleting a missing event is a no-op.
func (w *Widget) DeleteEvent(id, calendarID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.events, eventKey{id, calendarID})
}

// Clear drops every event.
func (w *Widget) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = make(map[eventKey]Event)
}

// GetEvent looks up an event.
func (w *Widget) GetEvent(id, calendarID string) (Event, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ev, ok := w.events[eventKey{id, calendarID}]
	return ev, ok
}

// FindEvent looks an event up by id alone.
func (w *Widget) FindEvent(id string) (Event, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for key, ev := range w.events {
		if key.id == id {
			return ev, true
		}
	}
	return Event{}, false
}

// Len returns the number of events in the model, visible or not.
func (w *Widget) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.events)
}

// AllEvents returns every event sorted by start time then id.
func (w *Widget) AllEvents() []Event {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return sortedEvents(w.events, func(Event) bool { return true })
}

// Events returns events on visible sub-calendars that overlap the current range.
func (w *Widget) Events() []Event {
	w.mu.RLock()
	defer w.mu.RUnlock()
	start, end := w.rangeLocked()
	end = end.AddDate(0, 0, 1)
	return sortedEvents(w.events, func(ev Event) bool {
		if w.hidden[ev.CalendarID] {
			return false
		}
		return ev.Start.Before(end) && ev.End.After(start)
	})
}

// SetCalendarVisibility shows or hides a sub-calendar.
func (w *Widget) SetCalendarVisibility(calendarID string, visible bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if visible {
		delete(w.hidden, calendarID)
		return
	}
	w.hidden[calendarID] = true
}

// IsCalendarVisible reports the visibility of a sub-calendar.
func (w *Widget) IsCalendarVisible(calendarID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.hidden[calendarID]
}

// ChangeView switches layout, keeping the anchor date.
func (w *Widget) ChangeView(view View) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.view = view
}

// View returns the current layout.
func (w *Widget) View() View {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.view
}

// Today moves the anchor to the current date.
func (w *Widget) Today() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.anchor = w.midnight(w.opts.Now())
}

// Next advances by one unit of the current view.
func (w *Widget) Next() {
	w.move(1)
}

// Prev goes back by one unit of the current view.
func (w *Widget) Prev() {
	w.move(-1)
}

func (w *Widget) move(step int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.view {
	case ViewDay:
		w.anchor = w.anchor.AddDate(0, 0, step)
	case ViewMonth:
		first := time.Date(w.anchor.Year(), w.anchor.Month(), 1, 0, 0, 0, 0, w.opts.Location)
		w.anchor = first.AddDate(0, step, 0)
	default:
		w.anchor = w.anchor.AddDate(0, 0, 7*step)
	}
}

// DateRangeStart returns the first day of the visible range.
func (w *Widget) DateRangeStart() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	start, _ := w.rangeLocked()
	return start
}

// DateRangeEnd returns the last day of the visible range.
func (w *Widget) DateRangeEnd() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, end := w.rangeLocked()
	return end
}

func (w *Widget) rangeLocked() (time.Time, time.Time) {
	switch w.view {
	case ViewDay:
		return w.anchor, w.anchor
	case ViewMonth:
		first := time.Date(w.anchor.Year(), w.anchor.Month(), 1, 0, 0, 0, 0, w.opts.Location)
		return first, first.AddDate(0, 1, -1)
	default:
		offset := (int(w.anchor.Weekday()) - int(w.opts.Week.StartDayOfWeek) + 7) % 7
		start := w.anchor.AddDate(0, 0, -offset)
		length := 7
		if w.opts.Week.Workweek {
			length = 5
		}
		return start, start.AddDate(0, 0, length-1)
	}
}

func (w *Widget) midnight(t time.Time) time.Time {
	t = t.In(w.opts.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, w.opts.Location)
}

func sortedEvents(events map[eventKey]Event, keep func(Event) bool) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].CalendarID < out[j].CalendarID
	})
	return out
}

// Select publishes BeforeCreateEvent for a time-slot selection.
func (w *Widget) Select(ctx context.Context, calendarID string, start, end time.Time, allday bool) {
	eventbus.Publish(w.bus, BeforeCreateEvent{
		Context:    ctx,
		CalendarID: calendarID,
		Start:      start,
		End:        end,
		IsAllday:   allday,
	})
}

// Drag publishes BeforeUpdateEvent for a move or resize of an existing event.
func (w *Widget) Drag(ctx context.Context, id, calendarID string, changes Changes) error {
	ev, ok := w.GetEvent(id, calendarID)
	if !ok {
		return fmt.Errorf("event %s on %s not found", id, calendarID)
	}
	eventbus.Publish(w.bus, BeforeUpdateEvent{Context: ctx, Event: ev, Changes: changes})
	return nil
}

// RequestDelete publishes BeforeDeleteEvent.
func (w *Widget) RequestDelete(ctx context.Context, id, calendarID string) error {
	ev, ok := w.GetEvent(id, calendarID)
	if !ok {
		return fmt.Errorf("event %s on %s not found", id, calendarID)
	}
	eventbus.Publish(w.bus, BeforeDeleteEvent{Context: ctx, Event: ev})
	return nil
}

// Click publishes ClickEvent with the pointer position.
func (w *Widget) Click(ctx context.Context, id, calendarID string, x, y int) error {
	ev, ok := w.GetEvent(id, calendarID)
	if !ok {
		return fmt.Errorf("event %s on %s not found", id, calendarID)
	}
	eventbus.Publish(w.bus, ClickEvent{Context: ctx, Event: ev, ClientX: x, ClientY: y})
	return nil
}
