package apsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ExportFormat selects the export file type.
type ExportFormat string

const (
	ExportExcel ExportFormat = "excel"
	ExportCSV   ExportFormat = "csv"
)

// Extension returns the file extension for the format.
func (f ExportFormat) Extension() string {
	if f == ExportExcel {
		return "xlsx"
	}
	return "csv"
}

// ContentType returns the MIME type used when serving the file.
func (f ExportFormat) ContentType() string {
	if f == ExportExcel {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// ParseExportFormat validates raw; empty means excel.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(raw) {
	case "", ExportExcel:
		return ExportExcel, nil
	case ExportCSV:
		return ExportCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// Download is an exported file ready to be saved.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportSchedule downloads the schedule as a spreadsheet. The filename is
// schedule_<UTC date>.<ext>.
func (c *Client) ExportSchedule(ctx context.Context, format ExportFormat) (*Download, error) {
	const operation = "export_schedule"
	if format == "" {
		format = ExportExcel
	}

	resp, err := c.do(ctx, request{
		operation: operation,
		kind:      KindExport,
		method:    http.MethodGet,
		path:      "/export/schedule",
		query:     url.Values{"format": []string{string(format)}},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", operation, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = format.ContentType()
	}
	return &Download{
		Filename:    ExportFilename(format, c.now()),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// ExportFilename builds schedule_<YYYY-MM-DD>.<ext> from the UTC date of now.
func ExportFilename(format ExportFormat, now time.Time) string {
	return fmt.Sprintf("schedule_%s.%s", now.UTC().Format("2006-01-02"), format.Extension())
}
