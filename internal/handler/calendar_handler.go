package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/dto"
	"github.com/noah-isme/aps-console/internal/session"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
	"github.com/noah-isme/aps-console/pkg/response"
)

// CalendarHandler drives the calendar, the side panels and the detail popup.
type CalendarHandler struct{}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

// Options godoc
// @Summary Calendar widget configuration
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/calendar/options [get]
func (h *CalendarHandler) Options(c *gin.Context) {
	ctrl, ok := controllerFromContext(c)
	if !ok {
		return
	}
	response.OK(c, ctrl.Adapter().Widget().Options())
}

// ChangeView godoc
// @Summary Switch between day, week and month
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.ChangeViewRequest true "View"
// @Success 200 {object} response.Envelope
// @Router /ui/view [post]
func (h *CalendarHandler) ChangeView(c *gin.Context) {
	var req dto.ChangeViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid view payload"))
		return
	}
	view, err := calendar.ParseView(req.View)
	if err != nil {
		respondError(c, bindError(err, err.Error()))
		return
	}
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.ChangeView(view)
		return nil
	})
}

// Prev godoc
// @Summary Move the calendar back
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/calendar/prev [post]
func (h *CalendarHandler) Prev(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.Prev()
		return nil
	})
}

// Next godoc
// @Summary Move the calendar forward
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/calendar/next [post]
func (h *CalendarHandler) Next(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.Next()
		return nil
	})
}

// Today godoc
// @Summary Jump to today
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/calendar/today [post]
func (h *CalendarHandler) Today(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.Today()
		return nil
	})
}

// SetAllEquipment godoc
// @Summary Check or uncheck every equipment
// @Tags Panels
// @Accept json
// @Produce json
// @Param payload body dto.SetAllEquipmentRequest true "Checked"
// @Success 200 {object} response.Envelope
// @Router /ui/equipment/all [post]
func (h *CalendarHandler) SetAllEquipment(c *gin.Context) {
	var req dto.SetAllEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid equipment payload"))
		return
	}
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.SetAllEquipment(*req.Checked)
		return nil
	})
}

// ToggleEquipment godoc
// @Summary Check or uncheck one equipment
// @Tags Panels
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param payload body dto.ToggleEquipmentRequest true "Checked"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /ui/equipment/{id} [post]
func (h *CalendarHandler) ToggleEquipment(c *gin.Context) {
	var req dto.ToggleEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid equipment payload"))
		return
	}
	id := c.Param("id")
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		return ctrl.ToggleEquipment(id, *req.Checked)
	})
}

// SearchProducts godoc
// @Summary Filter the product legend
// @Tags Panels
// @Accept json
// @Produce json
// @Param payload body dto.SearchProductsRequest true "Query"
// @Success 200 {object} response.Envelope
// @Router /ui/products/search [post]
func (h *CalendarHandler) SearchProducts(c *gin.Context) {
	var req dto.SearchProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid search payload"))
		return
	}
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.SearchProducts(req.Query)
		return nil
	})
}

// CreateEvent godoc
// @Summary Select a time slot
// @Description Adds a local, unsaved event to the calendar.
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Slot"
// @Success 200 {object} response.Envelope
// @Router /ui/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid event payload"))
		return
	}
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		ctrl.CreateEvent(ctx, req.CalendarID, req.Start, req.End, req.IsAllday)
		return nil
	})
}

// ClickEvent godoc
// @Summary Open the detail popup of an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.ClickEventRequest false "Click position"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /ui/events/{id}/click [post]
func (h *CalendarHandler) ClickEvent(c *gin.Context) {
	var req dto.ClickEventRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, bindError(err, "invalid click payload"))
			return
		}
	}
	id := c.Param("id")
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.ClickEvent(ctx, id, req.X, req.Y)
	})
}

// MoveEvent godoc
// @Summary Drag or resize an event
// @Description The backend decides whether the change sticks.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.MoveEventRequest true "Changes"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /ui/events/{id} [patch]
func (h *CalendarHandler) MoveEvent(c *gin.Context) {
	var req dto.MoveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid move payload"))
		return
	}
	if req.Empty() {
		respondError(c, appErrors.Clone(appErrors.ErrValidation, "start, end or calendarId required"))
		return
	}
	id := c.Param("id")
	changes := calendar.Changes{Start: req.Start, End: req.End, CalendarID: req.CalendarID}
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.MoveEvent(ctx, id, changes)
	})
}

// DeleteEvent godoc
// @Summary Request deletion of an event
// @Description Answers 202 with a confirmation token; the batch is deleted once the confirmation is accepted.
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /ui/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.RequestDeleteEvent(ctx, id)
	})
}

// DeleteSelected godoc
// @Summary Delete the event shown in the popup
// @Tags Events
// @Produce json
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /ui/events/selected/delete [post]
func (h *CalendarHandler) DeleteSelected(c *gin.Context) {
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.DeleteSelected(ctx)
	})
}

// EditSelected godoc
// @Summary Edit the event shown in the popup
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/events/selected/edit [post]
func (h *CalendarHandler) EditSelected(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.EditSelected()
		return nil
	})
}

// ClosePopup godoc
// @Summary Close the detail popup
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/popup/close [post]
func (h *CalendarHandler) ClosePopup(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.ClosePopup()
		return nil
	})
}

// GlobalClick godoc
// @Summary Report a page click
// @Description Closes the popup when the click landed outside it.
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.GlobalClickRequest true "Click"
// @Success 200 {object} response.Envelope
// @Router /ui/clicks [post]
func (h *CalendarHandler) GlobalClick(c *gin.Context) {
	var req dto.GlobalClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid click payload"))
		return
	}
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.GlobalClick(req.InsidePopup)
		return nil
	})
}
