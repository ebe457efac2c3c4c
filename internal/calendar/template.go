package calendar

import (
	"bytes"
	"html/template"
)

// Templates renders calendar entries to HTML fragments for the browser.
type Templates struct {
	Time         *template.Template
	MonthDayName *template.Template
}

var (
	timeTemplate = template.Must(template.New("time").Parse(
		`<div style="color: white; padding: 2px 4px;"><strong>{{.Title}}</strong><div style="font-size: 11px;">{{.Raw.Process}}</div></div>`))
	monthDayNameTemplate = template.Must(template.New("monthDayName").Parse(
		`<span style="font-weight: bold;">{{.Label}}</span>`))
)

// DefaultTemplates returns the time-slot and month day-name templates.
func DefaultTemplates() *Templates {
	return &Templates{Time: timeTemplate, MonthDayName: monthDayNameTemplate}
}

// RenderTime renders a time-slot entry (title plus process name).
func (w *Widget) RenderTime(ev Event) (string, error) {
	var buf bytes.Buffer
	if err := w.templates.Time.Execute(&buf, ev); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderMonthDayName renders a day-name header.
func (w *Widget) RenderMonthDayName(label string) (string, error) {
	var buf bytes.Buffer
	if err := w.templates.MonthDayName.Execute(&buf, struct{ Label string }{label}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
