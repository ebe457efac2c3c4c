package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/notification"
)

// RenderedEvent is a visible event plus its rendered time-slot HTML.
type RenderedEvent struct {
	calendar.Event
	HTML string `json:"html"`
}

// EquipmentPanel is the equipment checklist.
type EquipmentPanel struct {
	All   bool            `json:"all"`
	Items []EquipmentItem `json:"items"`
}

// ProductPanel is the searchable product legend.
type ProductPanel struct {
	Query string        `json:"query"`
	Items []ProductItem `json:"items"`
}

// State is a serializable snapshot of the whole session.
type State struct {
	SessionID     string                      `json:"sessionId"`
	CreatedAt     time.Time                   `json:"createdAt"`
	View          calendar.View               `json:"view"`
	RangeStart    time.Time                   `json:"rangeStart"`
	RangeEnd      time.Time                   `json:"rangeEnd"`
	RangeLabel    string                      `json:"rangeLabel"`
	Equipment     EquipmentPanel              `json:"equipment"`
	Products      ProductPanel                `json:"products"`
	Upload        UploadPanel                 `json:"upload"`
	Popup         *calendar.Popup             `json:"popup,omitempty"`
	Statistics    calendar.Statistics         `json:"statistics"`
	Notifications []notification.Notification `json:"notifications"`
	Confirmations []confirm.Pending           `json:"confirmations"`
	Downloads     []SavedFile                 `json:"downloads"`
	Loading       bool                        `json:"loading"`
	Events        []RenderedEvent             `json:"events"`
}

// State captures the current session snapshot.
func (c *Controller) State() State {
	widget := c.adapter.Widget()
	visible := widget.Events()
	events := make([]RenderedEvent, 0, len(visible))
	for _, ev := range visible {
		html, err := widget.RenderTime(ev)
		if err != nil {
			c.logger.Warn("failed to render event", zap.String("event_id", ev.ID), zap.Error(err))
		}
		events = append(events, RenderedEvent{Event: ev, HTML: html})
	}

	st := State{
		SessionID:     c.id,
		CreatedAt:     c.createdAt,
		View:          widget.View(),
		RangeStart:    widget.DateRangeStart(),
		RangeEnd:      widget.DateRangeEnd(),
		RangeLabel:    c.adapter.RangeLabel(),
		Notifications: c.notes.Active(),
		Confirmations: c.PendingConfirmations(),
		Events:        events,
	}
	if st.Confirmations == nil {
		st.Confirmations = []confirm.Pending{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	st.Equipment = EquipmentPanel{All: c.allEquipment, Items: append([]EquipmentItem{}, c.equipment...)}
	st.Products = ProductPanel{Query: c.query, Items: append([]ProductItem{}, c.products...)}
	st.Upload = c.upload
	if c.popup != nil {
		popup := *c.popup
		st.Popup = &popup
	}
	st.Statistics = c.stats
	st.Downloads = append([]SavedFile{}, c.downloads...)
	st.Loading = c.loading > 0
	return st
}
