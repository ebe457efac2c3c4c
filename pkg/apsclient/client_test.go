package apsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-console/internal/models"
)

const testBaseURL = "http://backend.test/api"

func newMockedClient(t *testing.T, opts ...Option) (*Client, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: transport})}, opts...)
	return New(testBaseURL+"/", opts...), transport
}

func TestGetScheduleDecodesBatches(t *testing.T) {
	client, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/schedule",
		httpmock.NewStringResponder(http.StatusOK, `{
			"batches": [
				{"id": "BATCH001", "product_id": "500002", "product_name": "기넥신에프정 40mg 100T",
				 "equipment_id": "EQ001", "process_name": "혼합", "lot_number": "LOT20240101001",
				 "start_time": "2024-01-01T08:00:00", "end_time": "2024-01-01T10:00:00", "quantity": 1000}
			],
			"summary": {"total_batches": 1, "total_products": 1, "total_equipment": 1}
		}`))

	schedule, err := client.GetSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, schedule.Batches, 1)
	batch := schedule.Batches[0]
	require.Equal(t, "BATCH001", batch.ID)
	require.Equal(t, "EQ001", batch.EquipmentID)
	require.Equal(t, 8, batch.StartTime.Hour())
	require.NotNil(t, batch.Quantity)
	require.Equal(t, 1000, *batch.Quantity)
	require.Equal(t, 1, schedule.Summary.TotalProducts)
}

func TestGetScheduleEmptyListIsNotNil(t *testing.T) {
	client, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/schedule",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	schedule, err := client.GetSchedule(context.Background())
	require.NoError(t, err)
	require.NotNil(t, schedule.Batches)
	require.Empty(t, schedule.Batches)
}

func TestNon2xxReturnsStatusErrorWithPrefix(t *testing.T) {
	client, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/equipment",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"detail":"boom"}`))
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/upload/sales-plan",
		httpmock.NewStringResponder(http.StatusRequestEntityTooLarge, ``))
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/export/schedule?format=excel",
		httpmock.NewStringResponder(http.StatusNotFound, ``))

	_, err := client.GetEquipment(context.Background())
	require.EqualError(t, err, "API Error: 500")
	require.Equal(t, http.StatusInternalServerError, StatusCode(err))

	_, err = client.UploadSalesPlan(context.Background(), File{Name: "plan.xlsx", Content: strings.NewReader("x")})
	require.EqualError(t, err, "Upload Error: 413")

	_, err = client.ExportSchedule(context.Background(), "")
	require.EqualError(t, err, "Export Error: 404")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, KindExport, statusErr.Kind)
	require.Equal(t, "export_schedule", statusErr.Operation)
}

func TestUpdateBatchSendsPayload(t *testing.T) {
	client, transport := newMockedClient(t)
	var captured map[string]string
	transport.RegisterResponder(http.MethodPut, testBaseURL+"/batches/BATCH001",
		func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "application/json", req.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(req.Body).Decode(&captured))
			return httpmock.NewStringResponse(http.StatusOK, `{"success": true, "message": "Batch BATCH001 updated successfully"}`), nil
		})

	result, err := client.UpdateBatch(context.Background(), models.BatchUpdate{
		ID:         "BATCH001",
		Start:      models.NewTimestamp(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
		End:        models.NewTimestamp(time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC)),
		CalendarID: "EQ002",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "EQ002", captured["calendarId"])
	require.Equal(t, "2024-01-02T09:00:00Z", captured["start"])
}

func TestDeleteBatchEscapesID(t *testing.T) {
	client, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodDelete, testBaseURL+"/batches/LOT%2F7",
		httpmock.NewStringResponder(http.StatusOK, `{"success": false, "message": "Batch not found"}`))

	result, err := client.DeleteBatch(context.Background(), "LOT/7")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "Batch not found", result.Message)
}

func TestGenerateWithoutSalesDataSendsNoBody(t *testing.T) {
	client, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/schedule/generate",
		func(req *http.Request) (*http.Response, error) {
			if req.Body != nil {
				raw, _ := io.ReadAll(req.Body)
				require.Empty(t, raw)
			}
			return httpmock.NewStringResponse(http.StatusOK, `{"success": true, "batches_created": 16}`), nil
		})

	result, err := client.GenerateScheduleFromSales(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 16, result.BatchesCreated)
}

func TestUploadSalesPlanSendsMultipartFile(t *testing.T) {
	client, transport := newMockedClient(t)
	transport.RegisterResponder(http.MethodPost, testBaseURL+"/upload/sales-plan",
		func(req *http.Request) (*http.Response, error) {
			require.True(t, strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data"))
			require.NoError(t, req.ParseMultipartForm(1<<20))
			file, header, err := req.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			content, _ := io.ReadAll(file)
			require.Equal(t, "plan.xlsx", header.Filename)
			require.Equal(t, "spreadsheet-bytes", string(content))
			return httpmock.NewStringResponse(http.StatusOK, `{"success": true, "message": "Sales plan uploaded successfully", "rows": 10}`), nil
		})

	result, err := client.UploadSalesPlan(context.Background(), File{Name: "plan.xlsx", Content: strings.NewReader("spreadsheet-bytes")})
	require.NoError(t, err)
	require.Equal(t, 10, result.Rows)
}

func TestExportScheduleNamesFileByUTCDate(t *testing.T) {
	now := time.Date(2024, 5, 31, 23, 30, 0, 0, time.FixedZone("UTC-9", -9*3600))
	client, transport := newMockedClient(t, WithClock(func() time.Time { return now }))
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/export/schedule?format=excel",
		httpmock.NewBytesResponder(http.StatusOK, []byte("PK\x03\x04")))
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/export/schedule?format=csv",
		httpmock.NewStringResponder(http.StatusOK, "id,product\n"))

	download, err := client.ExportSchedule(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "schedule_2024-06-01.xlsx", download.Filename)
	require.Equal(t, ExportExcel.ContentType(), download.ContentType)
	require.Equal(t, []byte("PK\x03\x04"), download.Data)

	download, err = client.ExportSchedule(context.Background(), ExportCSV)
	require.NoError(t, err)
	require.Equal(t, "schedule_2024-06-01.csv", download.Filename)
}

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat("")
	require.NoError(t, err)
	require.Equal(t, ExportExcel, format)

	format, err = ParseExportFormat("csv")
	require.NoError(t, err)
	require.Equal(t, ExportCSV, format)

	_, err = ParseExportFormat("pdf")
	require.Error(t, err)
}

func TestHooksAndEditorsSeeEveryCall(t *testing.T) {
	var calls []Call
	client, transport := newMockedClient(t,
		WithHook(func(c Call) { calls = append(calls, c) }),
		WithRequestEditor(func(ctx context.Context, req *http.Request) {
			req.Header.Set("X-Request-ID", "req-1")
		}),
	)
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/processes",
		func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "req-1", req.Header.Get("X-Request-ID"))
			return httpmock.NewStringResponse(http.StatusOK, `[{"id":"P1","name":"혼합"}]`), nil
		})
	transport.RegisterResponder(http.MethodGet, testBaseURL+"/products",
		httpmock.NewStringResponder(http.StatusBadGateway, ``))

	processes, err := client.GetProcesses(context.Background())
	require.NoError(t, err)
	require.Len(t, processes, 1)
	_, err = client.GetProducts(context.Background())
	require.Error(t, err)

	require.Len(t, calls, 2)
	require.Equal(t, "get_processes", calls[0].Operation)
	require.Equal(t, http.StatusOK, calls[0].Status)
	require.NoError(t, calls[0].Err)
	require.Equal(t, http.StatusBadGateway, calls[1].Status)
	require.Error(t, calls[1].Err)
}
