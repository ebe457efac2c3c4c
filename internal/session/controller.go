// Package session holds the per-operator console state: the calendar, the
// side panels and the upload flow, driven by HTTP handlers or the CLI.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/models"
	"github.com/noah-isme/aps-console/internal/notification"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	"github.com/noah-isme/aps-console/pkg/eventbus"
	"github.com/noah-isme/aps-console/pkg/export"
)

// Operator-facing messages.
const (
	MsgInitFailure      = "초기 데이터 로드 실패"
	MsgInvalidFileType  = "Excel 파일만 업로드 가능합니다."
	MsgFileTooLarge     = "파일 크기가 너무 큽니다."
	MsgNoFile           = "파일을 선택해주세요."
	MsgUploadSuccess    = "판매계획이 업로드되었습니다."
	MsgUploadFailure    = "업로드 실패"
	MsgGenerateConfirm  = "스케줄을 생성하시겠습니까?"
	MsgGenerateSuccess  = "스케줄이 생성되었습니다."
	MsgGenerateFailure  = "스케줄 생성 실패"
	MsgExportSuccess    = "스케줄이 내보내졌습니다."
	MsgExportFailure    = "내보내기 실패"
	MsgPrintSuccess     = "인쇄용 일정표가 생성되었습니다."
	MsgPrintFailure     = "인쇄용 일정표 생성 실패"
	MsgNoSelection      = "선택된 일정이 없습니다."
	MsgDeleted          = "삭제되었습니다."
	MsgDeleteFailure    = "삭제 실패"
	MsgEditNotAvailable = "수정 기능은 준비 중입니다."
)

// Backend is the subset of the APS client the console uses.
type Backend interface {
	GetSchedule(ctx context.Context) (*models.Schedule, error)
	UpdateBatch(ctx context.Context, update models.BatchUpdate) (*models.MutationResult, error)
	DeleteBatch(ctx context.Context, id string) (*models.MutationResult, error)
	GetEquipment(ctx context.Context) ([]models.Equipment, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GenerateScheduleFromSales(ctx context.Context, salesData interface{}) (*models.GenerationResult, error)
	UploadSalesPlan(ctx context.Context, file apsclient.File) (*models.UploadResult, error)
	ExportSchedule(ctx context.Context, format apsclient.ExportFormat) (*apsclient.Download, error)
}

// Downloader stores a generated file and tells the operator where to fetch it.
type Downloader interface {
	Save(ctx context.Context, sessionID, filename, contentType string, data []byte) (*SavedFile, error)
}

// SavedFile describes a file handed to the operator.
type SavedFile struct {
	Filename    string     `json:"filename"`
	ContentType string     `json:"contentType"`
	Size        int        `json:"size"`
	URL         string     `json:"url,omitempty"`
	Path        string     `json:"path,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// NotificationRaised is published on the session bus for every notification.
type NotificationRaised struct {
	SessionID    string
	Notification notification.Notification
}

type pendingLister interface {
	Pending() []confirm.Pending
}

type resolver interface {
	Resolve(ctx context.Context, token string, accept bool) error
}

// Config tunes a controller.
type Config struct {
	ID              string
	Calendar        calendar.AdapterConfig
	NotificationTTL time.Duration
	MaxUploadBytes  int64
	PrintFontPath   string
	Now             func() time.Time
}

// Controller is one console session. State mutations are serialized by mu;
// backend calls run without holding it.
type Controller struct {
	id         string
	api        Backend
	adapter    *calendar.Adapter
	notes      *notification.Center
	dialog     confirm.Dialog
	downloader Downloader
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
	now        func() time.Time
	maxUpload  int64
	createdAt  time.Time

	mu           sync.Mutex
	equipment    []EquipmentItem
	allEquipment bool
	products     []ProductItem
	query        string
	upload       UploadPanel
	staged       *StagedFile
	popup        *calendar.Popup
	selected     *calendar.Event
	stats        calendar.Statistics
	loading      int
	downloads    []SavedFile
	closed       bool
}

// New builds a controller. Call Init to load the initial data.
func New(cfg Config, api Backend, dialog confirm.Dialog, downloader Downloader, validate *validator.Validate, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Calendar.Now == nil {
		cfg.Calendar.Now = cfg.Now
	}
	if dialog == nil {
		dialog = confirm.AlwaysNo
	}
	logger = logger.With(zap.String("session_id", cfg.ID))
	c := &Controller{
		id:           cfg.ID,
		api:          api,
		notes:        notification.NewCenter(cfg.NotificationTTL, logger),
		dialog:       dialog,
		downloader:   downloader,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(cfg.PrintFontPath),
		logger:       logger,
		now:          cfg.Now,
		maxUpload:    cfg.MaxUploadBytes,
		createdAt:    cfg.Now(),
		allEquipment: true,
	}
	c.adapter = calendar.NewAdapter(api, c, dialog, validate, logger, cfg.Calendar)
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// CreatedAt reports when the session was opened.
func (c *Controller) CreatedAt() time.Time {
	return c.createdAt
}

// Adapter exposes the calendar adapter.
func (c *Controller) Adapter() *calendar.Adapter {
	return c.adapter
}

// Bus is the session's event bus. Calendar interaction events and
// NotificationRaised are published on it.
func (c *Controller) Bus() *eventbus.Bus {
	return c.adapter.Widget().Bus()
}

// Init loads equipment, products, then the schedule.
func (c *Controller) Init(ctx context.Context) error {
	equipment, err := c.api.GetEquipment(ctx)
	if err != nil {
		c.logger.Error("failed to load equipment", zap.Error(err))
		c.Notify(notification.KindError, MsgInitFailure)
		return err
	}
	c.renderEquipment(equipment)

	products, err := c.api.GetProducts(ctx)
	if err != nil {
		c.logger.Error("failed to load products", zap.Error(err))
		c.Notify(notification.KindError, MsgInitFailure)
		return err
	}
	c.renderProducts(products)

	return c.Reload(ctx)
}

// Reload refetches the schedule. The calendar is rebuilt, so any open popup
// and selection are dropped.
func (c *Controller) Reload(ctx context.Context) error {
	c.ClosePopup()
	return c.adapter.LoadScheduleData(ctx)
}

// Close tears the session down. It is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.staged = nil
	c.popup = nil
	c.selected = nil
	c.mu.Unlock()

	c.adapter.Close()
	c.notes.Clear()
	if f, ok := c.dialog.(interface{ Flush() }); ok {
		f.Flush()
	}
	c.logger.Debug("session closed")
}

// Closed reports whether Close was called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Notify implements calendar.UI.
func (c *Controller) Notify(kind notification.Kind, message string) {
	n := c.notes.Notify(kind, message)
	eventbus.Publish(c.Bus(), NotificationRaised{SessionID: c.id, Notification: n})
}

// ShowLoading implements calendar.UI.
func (c *Controller) ShowLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading++
}

// HideLoading implements calendar.UI.
func (c *Controller) HideLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading > 0 {
		c.loading--
	}
}

// OpenPopup implements calendar.UI; the clicked event becomes the selection.
func (c *Controller) OpenPopup(popup calendar.Popup) {
	ev, ok := c.adapter.Widget().GetEvent(popup.EventID, popup.CalendarID)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.popup = &popup
	if ok {
		c.selected = &ev
	} else {
		c.selected = nil
	}
}

// SetStatistics implements calendar.UI.
func (c *Controller) SetStatistics(stats calendar.Statistics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = stats
}

// Loading reports whether a loading indicator is shown.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading > 0
}

// ResolveConfirmation answers a parked confirmation when the session's
// dialog defers them.
func (c *Controller) ResolveConfirmation(ctx context.Context, token string, accept bool) error {
	r, ok := c.dialog.(resolver)
	if !ok {
		return errConfirmationUnsupported
	}
	return r.Resolve(ctx, token, accept)
}

// PendingConfirmations lists parked confirmations, if any.
func (c *Controller) PendingConfirmations() []confirm.Pending {
	if p, ok := c.dialog.(pendingLister); ok {
		return p.Pending()
	}
	return nil
}
