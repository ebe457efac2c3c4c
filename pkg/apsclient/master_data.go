package apsclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/aps-console/internal/models"
)

// GetEquipment lists equipment units.
func (c *Client) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	if err := c.doJSON(ctx, "get_equipment", http.MethodGet, "/equipment", nil, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// GetProducts lists products.
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doJSON(ctx, "get_products", http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProcesses lists manufacturing processes.
func (c *Client) GetProcesses(ctx context.Context) ([]models.Process, error) {
	var processes []models.Process
	if err := c.doJSON(ctx, "get_processes", http.MethodGet, "/processes", nil, &processes); err != nil {
		return nil, err
	}
	return processes, nil
}
