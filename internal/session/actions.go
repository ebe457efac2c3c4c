package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/notification"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
	"github.com/noah-isme/aps-console/pkg/export"
)

// PrintFormat selects the print view output.
type PrintFormat string

const (
	PrintCSV PrintFormat = "csv"
	PrintPDF PrintFormat = "pdf"
)

// ParsePrintFormat validates raw; empty means PDF.
func ParsePrintFormat(raw string) (PrintFormat, error) {
	switch PrintFormat(raw) {
	case "":
		return PrintPDF, nil
	case PrintCSV, PrintPDF:
		return PrintFormat(raw), nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported print format %q", raw))
	}
}

// PrintHeaders are the print view columns.
var PrintHeaders = []string{"Batch", "Equipment", "Product", "Process", "Lot", "Start", "End"}

// Export downloads the backend's schedule export and hands it to the downloader.
func (c *Controller) Export(ctx context.Context, format apsclient.ExportFormat) (*SavedFile, error) {
	if format == "" {
		format = apsclient.ExportExcel
	}
	download, err := c.api.ExportSchedule(ctx, format)
	if err != nil {
		c.logger.Error("schedule export failed", zap.Error(err))
		c.Notify(notification.KindError, MsgExportFailure)
		return nil, err
	}
	saved, err := c.save(ctx, download.Filename, download.ContentType, download.Data)
	if err != nil {
		c.logger.Error("saving export failed", zap.Error(err))
		c.Notify(notification.KindError, MsgExportFailure)
		return nil, err
	}
	c.Notify(notification.KindSuccess, MsgExportSuccess)
	return saved, nil
}

// PrintDataset tabulates every event loaded in the calendar.
func (c *Controller) PrintDataset() export.Dataset {
	events := c.adapter.Widget().AllEvents()
	rows := make([]map[string]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, map[string]string{
			"Batch":     ev.ID,
			"Equipment": calendar.EquipmentName(ev.CalendarID),
			"Product":   ev.Title,
			"Process":   ev.Raw.Process,
			"Lot":       ev.Raw.LotNumber,
			"Start":     ev.Start.Format("2006-01-02 15:04"),
			"End":       ev.End.Format("2006-01-02 15:04"),
		})
	}
	return export.Dataset{
		Title:   "Production schedule " + c.adapter.RangeLabel(),
		Headers: PrintHeaders,
		Rows:    rows,
	}
}

// Print renders the loaded events and hands the file to the downloader.
func (c *Controller) Print(ctx context.Context, format PrintFormat) (*SavedFile, error) {
	data := c.PrintDataset()
	var (
		body        []byte
		err         error
		contentType string
	)
	switch format {
	case PrintCSV:
		body, err = c.csv.Render(data)
		contentType = "text/csv; charset=utf-8"
	default:
		format = PrintPDF
		body, err = c.pdf.Render(data)
		contentType = "application/pdf"
	}
	if err == nil {
		filename := fmt.Sprintf("schedule_print_%s.%s", c.now().UTC().Format("2006-01-02"), format)
		var saved *SavedFile
		saved, err = c.save(ctx, filename, contentType, body)
		if err == nil {
			c.Notify(notification.KindSuccess, MsgPrintSuccess)
			return saved, nil
		}
	}
	c.logger.Error("print view failed", zap.Error(err))
	c.Notify(notification.KindError, MsgPrintFailure)
	return nil, err
}

func (c *Controller) save(ctx context.Context, filename, contentType string, data []byte) (*SavedFile, error) {
	if c.downloader == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "no downloader configured")
	}
	saved, err := c.downloader.Save(ctx, c.id, filename, contentType, data)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.downloads = append(c.downloads, *saved)
	c.mu.Unlock()
	return saved, nil
}

// CreateEvent selects a time slot on an equipment lane.
func (c *Controller) CreateEvent(ctx context.Context, calendarID string, start, end time.Time, allday bool) {
	c.adapter.Widget().Select(ctx, calendarID, start, end, allday)
}

// ClickEvent opens the popup for an event.
func (c *Controller) ClickEvent(ctx context.Context, id string, x, y int) error {
	ev, err := c.findEvent(id)
	if err != nil {
		return err
	}
	return c.adapter.Widget().Click(ctx, ev.ID, ev.CalendarID, x, y)
}

// MoveEvent drags or resizes an event; the backend decides whether it sticks.
func (c *Controller) MoveEvent(ctx context.Context, id string, changes calendar.Changes) error {
	ev, err := c.findEvent(id)
	if err != nil {
		return err
	}
	if err := c.adapter.Widget().Drag(ctx, ev.ID, ev.CalendarID, changes); err != nil {
		return err
	}
	c.refreshSelection(ev.ID)
	return nil
}

// refreshSelection re-reads the selected event after it changed so the popup
// and a later delete see its current lane and times.
func (c *Controller) refreshSelection(id string) {
	current, ok := c.adapter.Widget().FindEvent(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil || c.selected.ID != id {
		return
	}
	if !ok {
		c.popup = nil
		c.selected = nil
		return
	}
	c.selected = &current
	if c.popup != nil && c.popup.EventID == id {
		c.popup.CalendarID = current.CalendarID
		c.popup.Equipment = calendar.EquipmentName(current.CalendarID)
		c.popup.Start = calendar.FormatDateTime(current.Start)
		c.popup.End = calendar.FormatDateTime(current.End)
	}
}

// RequestDeleteEvent asks the calendar to delete an event, subject to confirmation.
func (c *Controller) RequestDeleteEvent(ctx context.Context, id string) error {
	ev, err := c.findEvent(id)
	if err != nil {
		return err
	}
	return c.adapter.Widget().RequestDelete(ctx, ev.ID, ev.CalendarID)
}

func (c *Controller) findEvent(id string) (calendar.Event, error) {
	ev, ok := c.adapter.Widget().FindEvent(id)
	if !ok {
		return calendar.Event{}, appErrors.Clone(appErrors.ErrNotFound, "event "+id+" not found")
	}
	return ev, nil
}

// DeleteSelected deletes the event whose popup is open, after confirmation.
func (c *Controller) DeleteSelected(ctx context.Context) error {
	ev, ok := c.Selected()
	if !ok {
		c.Notify(notification.KindError, MsgNoSelection)
		return appErrors.ErrNoEventSelected
	}
	req := confirm.Request{Action: "delete-selected", Message: calendar.MsgDeleteConfirm}
	return c.dialog.Confirm(ctx, req, func(ctx context.Context) error {
		ok, err := c.adapter.RemoveBatch(ctx, ev)
		if err == nil && !ok {
			err = appErrors.ErrRejected
		}
		if err != nil {
			c.logger.Warn("delete of selected batch failed", zap.String("batch_id", ev.ID), zap.Error(err))
			c.Notify(notification.KindError, MsgDeleteFailure)
			return err
		}
		c.closePopupFor(ev.ID)
		c.Notify(notification.KindSuccess, MsgDeleted)
		return nil
	})
}

func (c *Controller) closePopupFor(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.popup != nil && c.popup.EventID == id {
		c.popup = nil
		c.selected = nil
	}
}

// EditSelected is not supported by the backend yet.
func (c *Controller) EditSelected() {
	c.Notify(notification.KindInfo, MsgEditNotAvailable)
}
