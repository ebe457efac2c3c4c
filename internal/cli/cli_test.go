package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aps-console/internal/session"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
)

const backendURL = "http://backend.test/api"

const scheduleJSON = `{"batches": [
	{"id": "B1", "product_id": "500002", "product_name": "Ginexin 40mg", "equipment_id": "EQ001",
	 "process_name": "혼합", "lot_number": "LOT1", "start_time": "2024-01-16T08:00:00Z", "end_time": "2024-01-16T10:00:00Z"}
]}`

type harness struct {
	transport *httpmock.MockTransport
	out       bytes.Buffer
	errOut    bytes.Buffer
	in        string
	stdin     io.Reader
}

func newHarness() *harness {
	h := &harness{transport: httpmock.NewMockTransport()}
	h.transport.RegisterResponder(http.MethodGet, backendURL+"/schedule", httpmock.NewStringResponder(http.StatusOK, scheduleJSON))
	return h
}

func (h *harness) run(args ...string) error {
	var stdin io.Reader = strings.NewReader(h.in)
	if h.stdin != nil {
		stdin = h.stdin
	}
	app := &App{
		In:         stdin,
		Out:        &h.out,
		ErrOut:     &h.errOut,
		HTTPClient: &http.Client{Transport: h.transport},
		Now:        func() time.Time { return time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC) },
	}
	root := RootCommand(app)
	root.SetArgs(append([]string{"--backend", backendURL}, args...))
	root.SetOut(&h.out)
	root.SetErr(&h.errOut)
	return root.ExecuteContext(context.Background())
}

func (h *harness) calls(method, path string) int {
	return h.transport.GetCallCountInfo()[method+" "+backendURL+path]
}

func TestProductsSearchFoldsCase(t *testing.T) {
	h := newHarness()
	h.transport.RegisterResponder(http.MethodGet, backendURL+"/products", httpmock.NewStringResponder(http.StatusOK,
		`[{"id":"500002","name":"Ginexin 40mg"},{"id":"500023","name":"Lonexin"}]`))

	require.NoError(t, h.run("products", "--search", "GINEX"))
	assert.Contains(t, h.out.String(), "Ginexin 40mg")
	assert.NotContains(t, h.out.String(), "Lonexin")
	assert.Contains(t, h.out.String(), "#FF6B6B")
}

func TestScheduleListsBatches(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("schedule"))
	assert.Contains(t, h.out.String(), "B1")
	assert.Contains(t, h.out.String(), "1 batches, 1 products")
}

func TestBackendFailureSurfacesStatus(t *testing.T) {
	h := newHarness()
	h.transport.RegisterResponder(http.MethodGet, backendURL+"/equipment", httpmock.NewStringResponder(http.StatusServiceUnavailable, ``))

	err := h.run("equipment")
	require.Error(t, err)
	assert.Equal(t, "API Error: 503", err.Error())
}

func TestBatchDeleteWithYes(t *testing.T) {
	h := newHarness()
	h.transport.RegisterResponder(http.MethodDelete, backendURL+"/batches/B1", httpmock.NewStringResponder(http.StatusOK, `{"success":true}`))

	require.NoError(t, h.run("batch", "delete", "B1", "--yes"))
	assert.Equal(t, 1, h.calls(http.MethodDelete, "/batches/B1"))
	assert.Contains(t, h.errOut.String(), session.MsgDeleted)
}

func TestBatchDeleteDeclinedAtPrompt(t *testing.T) {
	h := newHarness()
	h.in = "n\n"
	h.transport.RegisterResponder(http.MethodDelete, backendURL+"/batches/B1", httpmock.NewStringResponder(http.StatusOK, `{"success":true}`))

	require.NoError(t, h.run("batch", "delete", "B1"))
	assert.Zero(t, h.calls(http.MethodDelete, "/batches/B1"))
	assert.Contains(t, h.errOut.String(), "[y/N]")
}

func TestBatchDeleteDeclinedWithoutTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	h := newHarness()
	h.stdin = r
	h.transport.RegisterResponder(http.MethodDelete, backendURL+"/batches/B1", httpmock.NewStringResponder(http.StatusOK, `{"success":true}`))

	require.NoError(t, h.run("batch", "delete", "B1"))
	assert.Zero(t, h.calls(http.MethodDelete, "/batches/B1"))
	assert.Contains(t, h.errOut.String(), "stdin is not a terminal")
}

func TestBatchDeleteRejectedFails(t *testing.T) {
	h := newHarness()
	h.in = "예\n"
	h.transport.RegisterResponder(http.MethodDelete, backendURL+"/batches/B1", httpmock.NewStringResponder(http.StatusOK, `{"success":false}`))

	err := h.run("batch", "delete", "B1")
	require.True(t, errors.Is(err, appErrors.ErrRejected))
	assert.Contains(t, h.errOut.String(), session.MsgDeleteFailure)
}

func TestBatchMoveRejectedReportsFailure(t *testing.T) {
	h := newHarness()
	h.transport.RegisterResponder(http.MethodPut, backendURL+"/batches/B1", httpmock.NewStringResponder(http.StatusOK, `{"success":false}`))

	err := h.run("batch", "move", "B1", "--start", "2024-01-18T08:00:00Z", "--end", "2024-01-18T10:00:00Z")
	require.ErrorIs(t, err, ErrReported)
	assert.Equal(t, 1, h.calls(http.MethodPut, "/batches/B1"))
}

func TestBatchMoveNeedsAChange(t *testing.T) {
	h := newHarness()
	require.Error(t, h.run("batch", "move", "B1"))
	assert.Zero(t, h.calls(http.MethodGet, "/schedule"))
}

func TestUploadRejectsNonSpreadsheet(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b"), 0o600))

	err := h.run("upload", path)
	require.ErrorIs(t, err, appErrors.ErrInvalidFileType)
	assert.Zero(t, h.calls(http.MethodPost, "/upload/sales-plan"))
}

func TestUploadWithYesGeneratesAndReloads(t *testing.T) {
	h := newHarness()
	h.transport.RegisterResponder(http.MethodPost, backendURL+"/upload/sales-plan", httpmock.NewStringResponder(http.StatusOK, `{"success":true,"rows":3}`))
	h.transport.RegisterResponder(http.MethodPost, backendURL+"/schedule/generate", httpmock.NewStringResponder(http.StatusOK, `{"success":true,"batches_created":1}`))
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("xlsx"), 0o600))

	require.NoError(t, h.run("upload", path, "--yes"))
	assert.Equal(t, 1, h.calls(http.MethodPost, "/upload/sales-plan"))
	assert.Equal(t, 1, h.calls(http.MethodPost, "/schedule/generate"))
	assert.Equal(t, 1, h.calls(http.MethodGet, "/schedule"))
	assert.Contains(t, h.errOut.String(), session.MsgGenerateSuccess)
}

func TestPrintWritesCSV(t *testing.T) {
	h := newHarness()
	dir := t.TempDir()

	require.NoError(t, h.run("print", "--format", "csv", "--out", dir))
	written := filepath.Join(dir, "schedule_print_2024-01-17.csv")
	assert.Equal(t, written, strings.TrimSpace(h.out.String()))
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LOT1")
}

func TestExportWritesBackendFile(t *testing.T) {
	h := newHarness()
	h.transport.RegisterResponder(http.MethodGet, backendURL+"/export/schedule?format=csv", httpmock.NewStringResponder(http.StatusOK, "id\nB1\n"))
	dir := t.TempDir()

	require.NoError(t, h.run("export", "--format", "csv", "--out", dir))
	data, err := os.ReadFile(filepath.Join(dir, "schedule_2024-01-17.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id\nB1\n", string(data))
}
