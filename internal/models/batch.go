package models

// BatchStatus mirrors the backend's batch lifecycle label.
type BatchStatus string

const (
	BatchStatusPlanned BatchStatus = "planned"
)

// Batch is a scheduled production run of one product on one equipment unit.
type Batch struct {
	ID          string      `json:"id"`
	EquipmentID string      `json:"equipment_id"`
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	ProcessName string      `json:"process_name"`
	LotNumber   string      `json:"lot_number"`
	StartTime   Timestamp   `json:"start_time"`
	EndTime     Timestamp   `json:"end_time"`
	Quantity    *int        `json:"quantity,omitempty"`
	Status      BatchStatus `json:"status,omitempty"`
}

// BatchUpdate is the payload sent when a batch is moved or resized on the calendar.
type BatchUpdate struct {
	ID         string    `json:"id" validate:"required"`
	Start      Timestamp `json:"start" validate:"required"`
	End        Timestamp `json:"end" validate:"required"`
	CalendarID string    `json:"calendarId" validate:"required"`
}

// MutationResult is the backend acknowledgement for batch updates and deletes.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
