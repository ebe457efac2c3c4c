package apsclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/noah-isme/aps-console/internal/models"
)

// GetSchedule fetches the current batch list.
func (c *Client) GetSchedule(ctx context.Context) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := c.doJSON(ctx, "get_schedule", http.MethodGet, "/schedule", nil, &schedule); err != nil {
		return nil, err
	}
	if schedule.Batches == nil {
		schedule.Batches = []models.Batch{}
	}
	return &schedule, nil
}

// GenerateScheduleFromSales asks the backend to build a schedule from the
// previously uploaded sales plan. A nil salesData sends no body.
func (c *Client) GenerateScheduleFromSales(ctx context.Context, salesData interface{}) (*models.GenerationResult, error) {
	var result models.GenerationResult
	if err := c.doJSON(ctx, "generate_schedule", http.MethodPost, "/schedule/generate", salesData, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateBatch moves or resizes a batch.
func (c *Client) UpdateBatch(ctx context.Context, update models.BatchUpdate) (*models.MutationResult, error) {
	var result models.MutationResult
	path := "/batches/" + url.PathEscape(update.ID)
	if err := c.doJSON(ctx, "update_batch", http.MethodPut, path, update, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteBatch removes a batch.
func (c *Client) DeleteBatch(ctx context.Context, id string) (*models.MutationResult, error) {
	var result models.MutationResult
	path := "/batches/" + url.PathEscape(id)
	if err := c.doJSON(ctx, "delete_batch", http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
