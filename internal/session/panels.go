package session

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/models"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
)

var errConfirmationUnsupported = appErrors.Clone(appErrors.ErrNotFound, "this session confirms synchronously")

// EquipmentItem is one row of the equipment checklist.
type EquipmentItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Checked bool   `json:"checked"`
}

// ProductItem is one row of the product legend.
type ProductItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
}

func (c *Controller) renderEquipment(list []models.Equipment) {
	items := make([]EquipmentItem, 0, len(list))
	for _, eq := range list {
		color := eq.Color
		if color == "" {
			color = calendarColor(eq.ID)
		}
		items = append(items, EquipmentItem{ID: eq.ID, Name: eq.Name, Color: color, Checked: true})
	}
	c.mu.Lock()
	c.equipment = items
	c.allEquipment = true
	c.mu.Unlock()
	for _, item := range items {
		c.adapter.Widget().SetCalendarVisibility(item.ID, true)
	}
}

func (c *Controller) renderProducts(list []models.Product) {
	items := make([]ProductItem, 0, len(list))
	for _, p := range list {
		items = append(items, ProductItem{ID: p.ID, Name: p.Name, Color: calendar.ProductColor(p.ID), Visible: true})
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = items
	c.applyFilterLocked()
}

func calendarColor(id string) string {
	for _, sc := range calendar.EquipmentCalendars {
		if sc.ID == id {
			return sc.BackgroundColor
		}
	}
	return calendar.DefaultColor
}

// ChangeView switches the calendar layout and refreshes the range label.
func (c *Controller) ChangeView(view calendar.View) string {
	c.adapter.Widget().ChangeView(view)
	return c.adapter.RangeLabel()
}

// Prev moves the calendar back one unit of the current view.
func (c *Controller) Prev() string {
	c.adapter.Widget().Prev()
	return c.adapter.RangeLabel()
}

// Next moves the calendar forward one unit of the current view.
func (c *Controller) Next() string {
	c.adapter.Widget().Next()
	return c.adapter.RangeLabel()
}

// Today moves the calendar to the current date.
func (c *Controller) Today() string {
	c.adapter.Widget().Today()
	return c.adapter.RangeLabel()
}

// SetAllEquipment checks or unchecks every equipment box and shows or hides
// the matching sub-calendars.
func (c *Controller) SetAllEquipment(checked bool) {
	c.mu.Lock()
	c.allEquipment = checked
	ids := make([]string, len(c.equipment))
	for i := range c.equipment {
		c.equipment[i].Checked = checked
		ids[i] = c.equipment[i].ID
	}
	c.mu.Unlock()
	for _, id := range ids {
		c.adapter.Widget().SetCalendarVisibility(id, checked)
	}
}

// ToggleEquipment checks or unchecks one equipment box.
func (c *Controller) ToggleEquipment(id string, checked bool) error {
	c.mu.Lock()
	found := false
	all := true
	none := true
	for i := range c.equipment {
		if c.equipment[i].ID == id {
			c.equipment[i].Checked = checked
			found = true
		}
		all = all && c.equipment[i].Checked
		none = none && !c.equipment[i].Checked
	}
	if found {
		switch {
		case all:
			c.allEquipment = true
		case none:
			c.allEquipment = false
		}
	}
	c.mu.Unlock()
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "equipment "+id+" not found")
	}
	c.adapter.Widget().SetCalendarVisibility(id, checked)
	return nil
}

// SearchProducts filters the product legend by a caseless substring match.
func (c *Controller) SearchProducts(query string) []ProductItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.applyFilterLocked()
	return append([]ProductItem(nil), c.products...)
}

func (c *Controller) applyFilterLocked() {
	fold := cases.Fold()
	needle := fold.String(c.query)
	for i := range c.products {
		c.products[i].Visible = strings.Contains(fold.String(c.products[i].Name), needle)
	}
}

// ClosePopup hides the detail popup and clears the selection.
func (c *Controller) ClosePopup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.popup = nil
	c.selected = nil
}

// GlobalClick closes the popup when a click lands outside it.
func (c *Controller) GlobalClick(insidePopup bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.popup == nil || insidePopup {
		return false
	}
	c.popup = nil
	c.selected = nil
	return true
}

// Selected returns the event whose popup is open.
func (c *Controller) Selected() (calendar.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return calendar.Event{}, false
	}
	return *c.selected, true
}
