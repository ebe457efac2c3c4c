package models

// Equipment is a production unit; each one is rendered as a sub-calendar.
type Equipment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Product is a sellable item; batches reference it by ID.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code,omitempty"`
	Category *string `json:"category,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// Process is a manufacturing step such as mixing or coating.
type Process struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
