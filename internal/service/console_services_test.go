package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/models"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
	"github.com/noah-isme/aps-console/pkg/eventbus"
	"github.com/noah-isme/aps-console/pkg/storage"
)

type stubBackend struct {
	equipmentErr error
}

func (s *stubBackend) GetSchedule(context.Context) (*models.Schedule, error) {
	return &models.Schedule{Batches: []models.Batch{{
		ID:          "B1",
		EquipmentID: "EQ001",
		ProductID:   "500002",
		StartTime:   models.NewTimestamp(time.Now()),
		EndTime:     models.NewTimestamp(time.Now().Add(time.Hour)),
	}}}, nil
}

func (s *stubBackend) UpdateBatch(context.Context, models.BatchUpdate) (*models.MutationResult, error) {
	return &models.MutationResult{Success: true}, nil
}

func (s *stubBackend) DeleteBatch(context.Context, string) (*models.MutationResult, error) {
	return &models.MutationResult{Success: true}, nil
}

func (s *stubBackend) GetEquipment(context.Context) ([]models.Equipment, error) {
	if s.equipmentErr != nil {
		return nil, s.equipmentErr
	}
	return []models.Equipment{{ID: "EQ001", Name: "혼합기 1호"}}, nil
}

func (s *stubBackend) GetProducts(context.Context) ([]models.Product, error) {
	return []models.Product{{ID: "500002", Name: "기넥신에프정"}}, nil
}

func (s *stubBackend) GenerateScheduleFromSales(context.Context, interface{}) (*models.GenerationResult, error) {
	return &models.GenerationResult{Success: true}, nil
}

func (s *stubBackend) UploadSalesPlan(context.Context, apsclient.File) (*models.UploadResult, error) {
	return &models.UploadResult{Success: true}, nil
}

func (s *stubBackend) ExportSchedule(context.Context, apsclient.ExportFormat) (*apsclient.Download, error) {
	return &apsclient.Download{Filename: "schedule.xlsx", Data: []byte("xlsx")}, nil
}

func newSessionService(t *testing.T, backend *stubBackend, ttl time.Duration) (*SessionService, *MetricsService) {
	t.Helper()
	metrics := NewMetricsService()
	factory := func(id string) *session.Controller {
		return session.New(session.Config{ID: id, Calendar: calendar.AdapterConfig{}}, backend, nil, nil, nil, nil)
	}
	return NewSessionService(factory, metrics, SessionConfig{TTL: ttl, SweepInterval: 5 * time.Millisecond}, nil), metrics
}

func TestSessionServiceLifecycle(t *testing.T) {
	svc, metrics := newSessionService(t, &stubBackend{}, time.Minute)

	ctrl := svc.Create(context.Background())
	require.NotEmpty(t, ctrl.ID())
	assert.Equal(t, 1, ctrl.Adapter().Widget().Len())
	assert.Equal(t, 1, svc.Count())
	assert.Equal(t, int64(1), metrics.Snapshot().ActiveSessions)

	got, err := svc.Get(ctrl.ID())
	require.NoError(t, err)
	assert.Same(t, ctrl, got)

	require.NoError(t, svc.Delete(ctrl.ID()))
	assert.True(t, ctrl.Closed())
	assert.Equal(t, 0, svc.Count())
	assert.Equal(t, int64(0), metrics.Snapshot().ActiveSessions)

	_, err = svc.Get(ctrl.ID())
	require.ErrorIs(t, err, appErrors.ErrSessionNotFound)
	require.ErrorIs(t, svc.Delete(ctrl.ID()), appErrors.ErrSessionNotFound)
}

func TestSessionServiceInitFailureStillOpens(t *testing.T) {
	svc, metrics := newSessionService(t, &stubBackend{equipmentErr: errors.New("API Error: 500")}, time.Minute)

	ctrl := svc.Create(context.Background())
	st := ctrl.State()
	require.Len(t, st.Notifications, 1)
	assert.Equal(t, session.MsgInitFailure, st.Notifications[0].Message)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.notifications.WithLabelValues("error")))
	assert.Equal(t, eventbus.Stats{Published: 1}, svc.EventStats())
	svc.CloseAll()
	assert.True(t, ctrl.Closed())
}

func TestSessionServiceExpiryClosesController(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, metrics := newSessionService(t, &stubBackend{}, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	svc.StartSweeper(ctx)

	ctrl := svc.Create(context.Background())
	require.Eventually(t, ctrl.Closed, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(0), metrics.Snapshot().ActiveSessions)
	cancel()
}

func TestDownloadServiceSaveAndOpen(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewDownloadService(store, storage.NewSignedURLSigner("secret", time.Hour), DownloadConfig{}, nil)

	saved, err := svc.Save(context.Background(), "s1", "../schedule_2024-01-17.xlsx", "ignored", []byte("xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "schedule_2024-01-17.xlsx", saved.Filename)
	assert.Equal(t, 4, saved.Size)
	require.NotNil(t, saved.ExpiresAt)
	require.Contains(t, saved.URL, "/downloads/")

	token := saved.URL[len("/downloads/"):]
	dl, err := svc.Open(token)
	require.NoError(t, err)
	defer dl.File.Close()
	data, err := io.ReadAll(dl.File)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, "schedule_2024-01-17.xlsx", dl.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", dl.ContentType)

	_, err = svc.Open(token + "x")
	require.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.Save(context.Background(), "s1", "", "", nil)
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestDownloadServiceCleanupRemovesFiles(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewDownloadService(store, storage.NewSignedURLSigner("secret", time.Hour), DownloadConfig{RetainFor: time.Nanosecond}, nil)

	saved, err := svc.Save(context.Background(), "s1", "print.csv", "text/csv", []byte("a"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	svc.Cleanup()

	_, err = svc.Open(saved.URL[len("/downloads/"):])
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestMetricsServiceObservesBackendCalls(t *testing.T) {
	m := NewMetricsService()
	m.ObserveBackendCall(apsclient.Call{Operation: "GetSchedule", Status: 200, Duration: 10 * time.Millisecond})
	m.ObserveBackendCall(apsclient.Call{Operation: "GetSchedule", Err: errors.New("dial"), Duration: time.Millisecond})
	m.ObserveHTTPRequest("GET", "/ui/state", 200, 2*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.backendTotal.WithLabelValues("GetSchedule", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.backendTotal.WithLabelValues("GetSchedule", "error")))
	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.BackendCallsTotal)
	assert.Equal(t, uint64(1), snap.BackendErrorsTotal)
	assert.Equal(t, uint64(1), snap.RequestsTotal)

	var nilMetrics *MetricsService
	nilMetrics.ObserveBackendCall(apsclient.Call{})
	nilMetrics.SessionOpened()
	assert.Equal(t, MetricsSnapshot{}, nilMetrics.Snapshot())
}
