package dto

import (
	"mime/multipart"
	"time"
)

// ChangeViewRequest switches the calendar layout.
type ChangeViewRequest struct {
	View string `json:"view" binding:"required,oneof=day week month"`
}

// SetAllEquipmentRequest checks or unchecks the whole equipment list.
type SetAllEquipmentRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// ToggleEquipmentRequest checks or unchecks one equipment box.
type ToggleEquipmentRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// SearchProductsRequest filters the product legend. An empty query shows everything.
type SearchProductsRequest struct {
	Query string `json:"query"`
}

// UploadFileRequest stages a sales plan from a multipart form.
type UploadFileRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// ExportRequest selects the backend export format.
type ExportRequest struct {
	Format string `json:"format" form:"format" binding:"omitempty,oneof=excel csv"`
}

// PrintRequest selects the print view format.
type PrintRequest struct {
	Format string `json:"format" form:"format" binding:"omitempty,oneof=csv pdf"`
}

// CreateEventRequest selects a time slot on an equipment lane.
type CreateEventRequest struct {
	CalendarID string    `json:"calendarId" binding:"required"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required,gtfield=Start"`
	IsAllday   bool      `json:"isAllday"`
}

// ClickEventRequest opens the detail popup at the click position.
type ClickEventRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MoveEventRequest drags or resizes an event. At least one field must be set.
type MoveEventRequest struct {
	Start      *time.Time `json:"start"`
	End        *time.Time `json:"end"`
	CalendarID *string    `json:"calendarId" binding:"omitempty,min=1"`
}

// Empty reports whether the request changes nothing.
func (r MoveEventRequest) Empty() bool {
	return r.Start == nil && r.End == nil && r.CalendarID == nil
}

// GlobalClickRequest reports a click anywhere on the page.
type GlobalClickRequest struct {
	InsidePopup bool `json:"insidePopup"`
}

// ResolveConfirmationRequest answers a pending confirmation.
type ResolveConfirmationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}
