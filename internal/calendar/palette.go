package calendar

// DefaultColor is used for products missing from the color table.
const DefaultColor = "#95a5a6"

// SubCalendar is a named, colored lane; the console uses one per equipment unit.
type SubCalendar struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
}

// EquipmentCalendars is the fixed lane table handed to the widget.
var EquipmentCalendars = []SubCalendar{
	{ID: "EQ001", Name: "혼합기 1호", BackgroundColor: "#3498db"},
	{ID: "EQ002", Name: "혼합기 2호", BackgroundColor: "#2980b9"},
	{ID: "EQ003", Name: "타정기 1호", BackgroundColor: "#e74c3c"},
	{ID: "EQ004", Name: "타정기 2호", BackgroundColor: "#c0392b"},
	{ID: "EQ005", Name: "코팅기 1호", BackgroundColor: "#2ecc71"},
	{ID: "EQ006", Name: "코팅기 2호", BackgroundColor: "#27ae60"},
	{ID: "EQ007", Name: "포장기 1호", BackgroundColor: "#f39c12"},
	{ID: "EQ008", Name: "포장기 2호", BackgroundColor: "#d68910"},
}

// ProductColors maps product IDs to their calendar color.
var ProductColors = map[string]string{
	"500002": "#FF6B6B", // 기넥신에프정 40mg 100T
	"500005": "#4ECDC4", // 기넥신에프정 40mg 300T
	"500008": "#45B7D1", // 기넥신에프정 80mg 100T
	"505227": "#96CEB4", // 기넥신에프정 80mg 500T
	"500023": "#FECA57", // 리넥신정
	"500041": "#DDA0DD", // 조인스정
	"507123": "#98D8C8", // 페브릭정 40mg
	"507242": "#F7DC6F", // 신플랙스세이프정
}

// ProductColor returns the product's color or DefaultColor.
func ProductColor(productID string) string {
	if color, ok := ProductColors[productID]; ok {
		return color
	}
	return DefaultColor
}

// EquipmentName resolves a display name from the fixed table, falling back to the ID.
func EquipmentName(equipmentID string) string {
	for _, eq := range EquipmentCalendars {
		if eq.ID == equipmentID {
			return eq.Name
		}
	}
	return equipmentID
}
