package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-console/pkg/eventbus"
)

// Wednesday 2024-01-17 09:00 UTC.
var fixedNow = time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)

func newTestWidget() *Widget {
	return NewWidget(ConsoleOptions(AdapterConfig{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	}, nil))
}

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestWidgetWorkweekRange(t *testing.T) {
	w := newTestWidget()
	assert.Equal(t, ViewWeek, w.View())
	assert.Equal(t, at(15, 0), w.DateRangeStart())
	assert.Equal(t, at(19, 0), w.DateRangeEnd())

	w.Next()
	assert.Equal(t, at(22, 0), w.DateRangeStart())
	w.Prev()
	w.Prev()
	assert.Equal(t, at(8, 0), w.DateRangeStart())
	w.Today()
	assert.Equal(t, at(15, 0), w.DateRangeStart())
}

func TestWidgetDayAndMonthRanges(t *testing.T) {
	w := newTestWidget()
	w.ChangeView(ViewDay)
	assert.Equal(t, at(17, 0), w.DateRangeStart())
	assert.Equal(t, at(17, 0), w.DateRangeEnd())
	w.Next()
	assert.Equal(t, at(18, 0), w.DateRangeStart())

	w.ChangeView(ViewMonth)
	assert.Equal(t, at(1, 0), w.DateRangeStart())
	assert.Equal(t, at(31, 0), w.DateRangeEnd())
	w.Next()
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), w.DateRangeEnd())
}

func TestParseView(t *testing.T) {
	v, err := ParseView("month")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, v)

	_, err = ParseView("agenda")
	require.Error(t, err)
}

func TestWidgetEventsFilterHiddenCalendarsAndRange(t *testing.T) {
	w := newTestWidget()
	w.CreateEvents([]Event{
		{ID: "B1", CalendarID: "EQ001", Start: at(16, 8), End: at(16, 12)},
		{ID: "B2", CalendarID: "EQ003", Start: at(15, 8), End: at(15, 12)},
		{ID: "B3", CalendarID: "EQ001", Start: at(24, 8), End: at(24, 12)},
	})
	require.Equal(t, 3, w.Len())

	visible := w.Events()
	require.Len(t, visible, 2)
	assert.Equal(t, "B2", visible[0].ID)
	assert.Equal(t, "B1", visible[1].ID)

	w.SetCalendarVisibility("EQ003", false)
	assert.False(t, w.IsCalendarVisible("EQ003"))
	visible = w.Events()
	require.Len(t, visible, 1)
	assert.Equal(t, "B1", visible[0].ID)

	w.SetCalendarVisibility("EQ003", true)
	assert.Len(t, w.Events(), 2)
	assert.Len(t, w.AllEvents(), 3)
}

func TestWidgetUpdateMovesBetweenCalendars(t *testing.T) {
	w := newTestWidget()
	w.CreateEvents([]Event{{ID: "B1", CalendarID: "EQ001", Start: at(16, 8), End: at(16, 12)}})

	start := at(16, 10)
	target := "EQ002"
	require.NoError(t, w.UpdateEvent("B1", "EQ001", Changes{Start: &start, CalendarID: &target}))

	_, ok := w.GetEvent("B1", "EQ001")
	assert.False(t, ok)
	ev, ok := w.GetEvent("B1", "EQ002")
	require.True(t, ok)
	assert.Equal(t, start, ev.Start)
	assert.Equal(t, at(16, 12), ev.End)

	empty := ""
	require.NoError(t, w.UpdateEvent("B1", "EQ002", Changes{CalendarID: &empty}))
	_, ok = w.GetEvent("B1", "EQ002")
	assert.True(t, ok)
	_, ok = w.GetEvent("B1", "")
	assert.False(t, ok)

	require.Error(t, w.UpdateEvent("missing", "EQ001", Changes{}))

	w.DeleteEvent("B1", "EQ002")
	assert.Equal(t, 0, w.Len())
}

func TestWidgetGesturesPublishWithoutMutating(t *testing.T) {
	w := newTestWidget()
	w.CreateEvents([]Event{{ID: "B1", CalendarID: "EQ001", Start: at(16, 8), End: at(16, 12)}})

	var updates []BeforeUpdateEvent
	var deletes []BeforeDeleteEvent
	var clicks []ClickEvent
	var creates []BeforeCreateEvent
	eventbus.Subscribe(w.Bus(), func(e BeforeUpdateEvent) { updates = append(updates, e) })
	eventbus.Subscribe(w.Bus(), func(e BeforeDeleteEvent) { deletes = append(deletes, e) })
	eventbus.Subscribe(w.Bus(), func(e ClickEvent) { clicks = append(clicks, e) })
	eventbus.Subscribe(w.Bus(), func(e BeforeCreateEvent) { creates = append(creates, e) })

	ctx := context.Background()
	start := at(16, 9)
	require.NoError(t, w.Drag(ctx, "B1", "EQ001", Changes{Start: &start}))
	require.NoError(t, w.RequestDelete(ctx, "B1", "EQ001"))
	require.NoError(t, w.Click(ctx, "B1", "EQ001", 10, 20))
	w.Select(ctx, "EQ004", at(17, 8), at(17, 9), false)
	require.Error(t, w.Click(ctx, "nope", "EQ001", 0, 0))

	require.Len(t, updates, 1)
	assert.Equal(t, start, *updates[0].Changes.Start)
	require.Len(t, deletes, 1)
	require.Len(t, clicks, 1)
	assert.Equal(t, 20, clicks[0].ClientY)
	require.Len(t, creates, 1)
	assert.Equal(t, "EQ004", creates[0].CalendarID)

	ev, _ := w.GetEvent("B1", "EQ001")
	assert.Equal(t, at(16, 8), ev.Start)
	assert.Equal(t, 1, w.Len())
}

func TestWidgetTemplatesEscapeContent(t *testing.T) {
	w := newTestWidget()
	html, err := w.RenderTime(Event{Title: "<b>기넥신</b>", Raw: EventRaw{Process: "혼합"}})
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>&lt;b&gt;기넥신&lt;/b&gt;</strong>")
	assert.Contains(t, html, "혼합")

	label, err := w.RenderMonthDayName("월")
	require.NoError(t, err)
	assert.Equal(t, `<span style="font-weight: bold;">월</span>`, label)
	assert.False(t, strings.Contains(label, "&"))
}

func TestConsoleOptions(t *testing.T) {
	opts := ConsoleOptions(AdapterConfig{HourStart: 22, HourEnd: 6}, nil)
	assert.Equal(t, 6, opts.Week.HourStart)
	assert.Equal(t, 22, opts.Week.HourEnd)
	assert.Equal(t, time.Monday, opts.Week.StartDayOfWeek)
	assert.True(t, opts.Week.Workweek)
	assert.True(t, opts.Week.NarrowWeekend)
	assert.False(t, opts.TaskView)
	assert.Equal(t, []string{"time"}, opts.ScheduleView)
	assert.Len(t, opts.Calendars, 8)
	assert.Equal(t, "white", opts.Theme["common.backgroundColor"])
}
