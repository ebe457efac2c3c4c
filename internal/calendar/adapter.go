package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/models"
	"github.com/noah-isme/aps-console/internal/notification"
	"github.com/noah-isme/aps-console/pkg/eventbus"
)

// Messages shown by the adapter.
const (
	MsgUpdateSuccess = "일정이 수정되었습니다."
	MsgUpdateFailure = "일정 수정에 실패했습니다."
	MsgDeleteSuccess = "일정이 삭제되었습니다."
	MsgDeleteFailure = "일정 삭제에 실패했습니다."
	MsgDeleteConfirm = "정말 삭제하시겠습니까?"
	MsgLoadFailure   = "스케줄을 불러오는데 실패했습니다."

	NewEventTitle = "새 작업"
	emptyField    = "-"
)

// DayNames are the weekday labels, Sunday first.
var DayNames = []string{"일", "월", "화", "수", "목", "금", "토"}

// Theme is passed through to renderers untouched.
var Theme = map[string]string{
	"common.border":                              "1px solid #dfe6e9",
	"common.backgroundColor":                     "white",
	"common.holiday.color":                       "#e74c3c",
	"common.saturday.color":                      "#3498db",
	"common.dayname.color":                       "#2c3e50",
	"common.today.color":                         "#fff",
	"week.timegridLeft.width":                    "100px",
	"week.timegridLeft.backgroundColor":          "#f8f9fa",
	"week.timegridLeft.borderRight":              "1px solid #dfe6e9",
	"week.timegridOneHour.height":                "60px",
	"week.timegridHalfHour.height":               "30px",
	"week.currentTimeLinePast.border":            "1px solid rgba(231, 76, 60, 0.3)",
	"week.currentTimeLineBullet.backgroundColor": "#e74c3c",
	"week.currentTimeLineToday.border":           "2px solid #e74c3c",
	"week.currentTimeLineFuture.border":          "1px solid rgba(231, 76, 60, 0.3)",
	"week.pastTime.color":                        "#95a5a6",
	"week.futureTime.color":                      "#2c3e50",
	"week.weekend.backgroundColor":               "rgba(236, 240, 241, 0.3)",
	"week.today.backgroundColor":                 "rgba(52, 152, 219, 0.05)",
	"week.dayname.height":                        "42px",
	"week.dayname.borderBottom":                  "1px solid #dfe6e9",
	"week.dayname.textAlign":                     "center",
	"week.today.color":                           "#3498db",
	"week.pastDay.color":                         "#95a5a6",
}

type scheduleAPI interface {
	GetSchedule(ctx context.Context) (*models.Schedule, error)
	UpdateBatch(ctx context.Context, update models.BatchUpdate) (*models.MutationResult, error)
	DeleteBatch(ctx context.Context, id string) (*models.MutationResult, error)
}

// UI receives the side effects the adapter produces outside the calendar.
type UI interface {
	Notify(kind notification.Kind, message string)
	ShowLoading()
	HideLoading()
	OpenPopup(popup Popup)
	SetStatistics(stats Statistics)
}

// Popup is the detail panel filled when an event is clicked.
type Popup struct {
	EventID    string `json:"eventId"`
	CalendarID string `json:"calendarId"`
	Title      string `json:"title"`
	Product    string `json:"product"`
	Process    string `json:"process"`
	Equipment  string `json:"equipment"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Lot        string `json:"lot"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// Statistics are the aggregates displayed next to the calendar.
type Statistics struct {
	TotalBatches  int `json:"totalBatches"`
	TotalProducts int `json:"totalProducts"`
}

// AdapterConfig tunes the widget built by the adapter.
type AdapterConfig struct {
	HourStart int
	HourEnd   int
	Location  *time.Location
	Now       func() time.Time
}

// Adapter keeps the widget in step with the backend and reacts to the
// interaction events the widget publishes.
type Adapter struct {
	api       scheduleAPI
	ui        UI
	dialog    confirm.Dialog
	widget    *Widget
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
	subs      []eventbus.Subscription
}

// NewAdapter builds the widget with the console options and subscribes the
// interaction handlers.
func NewAdapter(api scheduleAPI, ui UI, dialog confirm.Dialog, validate *validator.Validate, logger *zap.Logger, cfg AdapterConfig) *Adapter {
	if validate == nil {
		validate = validator.New()
		models.RegisterValidation(validate)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if dialog == nil {
		dialog = confirm.AlwaysNo
	}
	a := &Adapter{
		api:       api,
		ui:        ui,
		dialog:    dialog,
		validator: validate,
		logger:    logger,
		newID:     uuid.NewString,
	}
	a.widget = NewWidget(ConsoleOptions(cfg, eventbus.New(logger)))
	bus := a.widget.Bus()
	a.subs = append(a.subs,
		eventbus.Subscribe(bus, a.onBeforeCreate),
		eventbus.Subscribe(bus, a.onBeforeUpdate),
		eventbus.Subscribe(bus, a.onBeforeDelete),
		eventbus.Subscribe(bus, a.onClick),
	)
	return a
}

// ConsoleOptions returns the fixed widget configuration used by the console.
func ConsoleOptions(cfg AdapterConfig, bus *eventbus.Bus) Options {
	hourStart, hourEnd := cfg.HourStart, cfg.HourEnd
	if hourEnd <= hourStart {
		hourStart, hourEnd = 6, 22
	}
	calendars := make([]SubCalendar, len(EquipmentCalendars))
	copy(calendars, EquipmentCalendars)
	theme := make(map[string]string, len(Theme))
	for k, v := range Theme {
		theme[k] = v
	}
	return Options{
		DefaultView:  ViewWeek,
		TaskView:     false,
		ScheduleView: []string{"time"},
		Calendars:    calendars,
		Week: WeekOptions{
			StartDayOfWeek: time.Monday,
			DayNames:       DayNames,
			Workweek:       true,
			HourStart:      hourStart,
			HourEnd:        hourEnd,
			NarrowWeekend:  true,
		},
		Month: MonthOptions{
			StartDayOfWeek: time.Monday,
			DayNames:       DayNames,
			Workweek:       true,
			NarrowWeekend:  true,
		},
		Theme:    theme,
		Location: cfg.Location,
		Now:      cfg.Now,
		Bus:      bus,
	}
}

// Widget exposes the calendar model.
func (a *Adapter) Widget() *Widget {
	return a.widget
}

// Close detaches the handlers and empties the calendar.
func (a *Adapter) Close() {
	for _, sub := range a.subs {
		sub.Unsubscribe()
	}
	a.subs = nil
	a.widget.Clear()
}

// LoadScheduleData replaces the calendar contents with the backend's batches.
// On failure the calendar stays empty.
func (a *Adapter) LoadScheduleData(ctx context.Context) error {
	a.ui.ShowLoading()
	defer a.ui.HideLoading()

	a.widget.Clear()
	schedule, err := a.api.GetSchedule(ctx)
	if err != nil {
		a.logger.Error("failed to load schedule", zap.Error(err))
		a.ui.Notify(notification.KindError, MsgLoadFailure)
		return err
	}

	events := make([]Event, 0, len(schedule.Batches))
	for _, batch := range schedule.Batches {
		events = append(events, a.BatchToEvent(batch))
	}
	a.widget.CreateEvents(events)
	a.ui.SetStatistics(ComputeStatistics(schedule.Batches))
	a.logger.Debug("schedule loaded", zap.Int("batches", len(events)))
	return nil
}

// BatchToEvent maps a backend batch to a calendar event colored by product.
func (a *Adapter) BatchToEvent(batch models.Batch) Event {
	color := ProductColor(batch.ProductID)
	loc := a.widget.opts.Location
	return Event{
		ID:              batch.ID,
		CalendarID:      batch.EquipmentID,
		Title:           batch.ProductName,
		Category:        "time",
		Start:           batch.StartTime.In(loc),
		End:             batch.EndTime.In(loc),
		BackgroundColor: color,
		BorderColor:     color,
		Raw: EventRaw{
			ProductID:   batch.ProductID,
			EquipmentID: batch.EquipmentID,
			Process:     batch.ProcessName,
			LotNumber:   batch.LotNumber,
		},
	}
}

// ComputeStatistics counts batches and distinct product ids.
func ComputeStatistics(batches []models.Batch) Statistics {
	products := make(map[string]struct{}, len(batches))
	for _, b := range batches {
		products[b.ProductID] = struct{}{}
	}
	return Statistics{TotalBatches: len(batches), TotalProducts: len(products)}
}

// RemoveBatch deletes the batch on the backend and, when the backend reports
// success, removes it from the calendar.
func (a *Adapter) RemoveBatch(ctx context.Context, ev Event) (bool, error) {
	result, err := a.api.DeleteBatch(ctx, ev.ID)
	if err != nil {
		return false, err
	}
	if !result.Success {
		return false, nil
	}
	// The event may have moved to another lane since ev was captured.
	if current, ok := a.widget.FindEvent(ev.ID); ok {
		ev = current
	}
	a.widget.DeleteEvent(ev.ID, ev.CalendarID)
	return true, nil
}

// RangeLabel renders the visible date range.
func (a *Adapter) RangeLabel() string {
	return FormatDate(a.widget.DateRangeStart()) + " ~ " + FormatDate(a.widget.DateRangeEnd())
}

func (a *Adapter) onBeforeCreate(e BeforeCreateEvent) {
	a.widget.CreateEvents([]Event{{
		ID:         a.newID(),
		CalendarID: e.CalendarID,
		Title:      NewEventTitle,
		Category:   "time",
		Start:      e.Start,
		End:        e.End,
		IsAllday:   e.IsAllday,
		State:      "Busy",
		Raw:        EventRaw{EquipmentID: e.CalendarID},
		Unsaved:    true,
	}})
}

func (a *Adapter) onBeforeUpdate(e BeforeUpdateEvent) {
	ctx := contextOf(e.Context)
	ev := e.Event
	update := models.BatchUpdate{
		ID:         ev.ID,
		Start:      models.NewTimestamp(ev.Start),
		End:        models.NewTimestamp(ev.End),
		CalendarID: ev.CalendarID,
	}
	if e.Changes.Start != nil {
		update.Start = models.NewTimestamp(*e.Changes.Start)
	}
	if e.Changes.End != nil {
		update.End = models.NewTimestamp(*e.Changes.End)
	}
	if e.Changes.CalendarID != nil && *e.Changes.CalendarID != "" {
		update.CalendarID = *e.Changes.CalendarID
	}
	if err := a.validator.Struct(update); err != nil {
		a.logger.Warn("invalid batch update", zap.String("batch_id", ev.ID), zap.Error(err))
		a.ui.Notify(notification.KindError, MsgUpdateFailure)
		return
	}
	if !update.End.After(update.Start.Time) {
		a.logger.Warn("batch update ends before it starts", zap.String("batch_id", ev.ID))
		a.ui.Notify(notification.KindError, MsgUpdateFailure)
		return
	}

	result, err := a.api.UpdateBatch(ctx, update)
	if err != nil || !result.Success {
		a.logger.Warn("batch update rejected", zap.String("batch_id", ev.ID), zap.Error(err))
		a.ui.Notify(notification.KindError, MsgUpdateFailure)
		return
	}
	if err := a.widget.UpdateEvent(ev.ID, ev.CalendarID, e.Changes); err != nil {
		a.logger.Warn("updated batch vanished from calendar", zap.String("batch_id", ev.ID), zap.Error(err))
	}
	a.ui.Notify(notification.KindSuccess, MsgUpdateSuccess)
}

func (a *Adapter) onBeforeDelete(e BeforeDeleteEvent) {
	ev := e.Event
	req := confirm.Request{Action: "delete-event", Message: MsgDeleteConfirm}
	err := a.dialog.Confirm(contextOf(e.Context), req, func(ctx context.Context) error {
		ok, err := a.RemoveBatch(ctx, ev)
		if err != nil || !ok {
			a.logger.Warn("batch delete rejected", zap.String("batch_id", ev.ID), zap.Error(err))
			a.ui.Notify(notification.KindError, MsgDeleteFailure)
			return err
		}
		a.ui.Notify(notification.KindSuccess, MsgDeleteSuccess)
		return nil
	})
	if err != nil {
		a.logger.Warn("delete confirmation failed", zap.String("batch_id", ev.ID), zap.Error(err))
	}
}

func (a *Adapter) onClick(e ClickEvent) {
	ev := e.Event
	a.ui.OpenPopup(Popup{
		EventID:    ev.ID,
		CalendarID: ev.CalendarID,
		Title:      ev.Title,
		Product:    ev.Title,
		Process:    orDash(ev.Raw.Process),
		Equipment:  EquipmentName(ev.CalendarID),
		Start:      FormatDateTime(ev.Start),
		End:        FormatDateTime(ev.End),
		Lot:        orDash(ev.Raw.LotNumber),
		X:          e.ClientX,
		Y:          e.ClientY,
	})
}

// FormatDate renders a date as "2024. 1. 15.".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

// FormatDateTime renders a timestamp as "2024. 1. 15. 오후 2:30:00".
func FormatDateTime(t time.Time) string {
	meridiem, hour := "오전", t.Hour()
	if hour >= 12 {
		meridiem = "오후"
	}
	if hour%12 == 0 {
		hour = 12
	} else {
		hour %= 12
	}
	return fmt.Sprintf("%s %s %d:%02d:%02d", FormatDate(t), meridiem, hour, t.Minute(), t.Second())
}

func orDash(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

func contextOf(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
