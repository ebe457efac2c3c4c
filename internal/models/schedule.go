package models

// ScheduleSummary carries the backend's own aggregate counts.
type ScheduleSummary struct {
	TotalBatches   int `json:"total_batches"`
	TotalProducts  int `json:"total_products"`
	TotalEquipment int `json:"total_equipment"`
}

// Schedule is the batch list returned by GET /schedule.
type Schedule struct {
	Batches []Batch          `json:"batches"`
	Summary *ScheduleSummary `json:"summary,omitempty"`
}

// GenerationResult is returned when the backend builds a schedule from the uploaded sales plan.
type GenerationResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	BatchesCreated int    `json:"batches_created"`
}

// UploadResult is returned after a sales plan upload.
type UploadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Rows    int    `json:"rows"`
}
