package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/dto"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
)

// ScheduleHandler covers the sales plan upload flow and the schedule-wide
// actions: generate, reload, export and print.
type ScheduleHandler struct {
	maxUploadBytes int64
}

// NewScheduleHandler constructs the handler. Uploads larger than
// maxUploadBytes are cut off while reading; zero means unlimited.
func NewScheduleHandler(maxUploadBytes int64) *ScheduleHandler {
	return &ScheduleHandler{maxUploadBytes: maxUploadBytes}
}

// OpenModal godoc
// @Summary Open the upload modal
// @Tags Upload
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/upload/modal [post]
func (h *ScheduleHandler) OpenModal(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.OpenUploadModal()
		return nil
	})
}

// CloseModal godoc
// @Summary Close the upload modal and drop the staged file
// @Tags Upload
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/upload/modal [delete]
func (h *ScheduleHandler) CloseModal(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.CloseUploadModal()
		return nil
	})
}

// DragOver godoc
// @Summary Highlight the drop zone
// @Tags Upload
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/upload/dragover [post]
func (h *ScheduleHandler) DragOver(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.DragOver()
		return nil
	})
}

// SelectFile godoc
// @Summary Stage a sales plan
// @Description Accepts .xlsx and .xls files. The file is not uploaded until POST /ui/upload.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Sales plan"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /ui/upload/file [post]
func (h *ScheduleHandler) SelectFile(c *gin.Context) {
	var req dto.UploadFileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err, "file is required"))
		return
	}
	f, err := req.File.Open()
	if err != nil {
		respondError(c, bindError(err, "unable to read file"))
		return
	}
	defer f.Close()

	var reader io.Reader = f
	if h.maxUploadBytes > 0 {
		reader = io.LimitReader(f, h.maxUploadBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		respondError(c, bindError(err, "unable to read file"))
		return
	}
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		return ctrl.SelectFile(req.File.Filename, data)
	})
}

// RemoveFile godoc
// @Summary Drop the staged file
// @Tags Upload
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ui/upload/file [delete]
func (h *ScheduleHandler) RemoveFile(c *gin.Context) {
	runAction(c, func(_ context.Context, ctrl *session.Controller) error {
		ctrl.RemoveFile()
		return nil
	})
}

// Upload godoc
// @Summary Upload the staged sales plan
// @Description On success answers 202 with a confirmation asking whether to generate a schedule now.
// @Tags Upload
// @Produce json
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /ui/upload [post]
func (h *ScheduleHandler) Upload(c *gin.Context) {
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.Upload(ctx)
	})
}

// Generate godoc
// @Summary Generate a schedule from the uploaded sales plan
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /ui/schedule/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.Generate(ctx)
	})
}

// Reload godoc
// @Summary Reload the schedule from the backend
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /ui/schedule/reload [post]
func (h *ScheduleHandler) Reload(c *gin.Context) {
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.Reload(ctx)
	})
}

// Export godoc
// @Summary Export the schedule
// @Description The exported file is listed under downloads in the returned state.
// @Tags Schedule
// @Produce json
// @Param format query string false "excel (default) or csv"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /ui/schedule/export [post]
func (h *ScheduleHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err, "invalid export format"))
		return
	}
	format, err := apsclient.ParseExportFormat(req.Format)
	if err != nil {
		respondError(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		_, err := ctrl.Export(ctx, format)
		return err
	})
}

// Print godoc
// @Summary Render a printable schedule
// @Description Renders the loaded events to PDF (default) or CSV; the file is listed under downloads in the returned state.
// @Tags Schedule
// @Produce json
// @Param format query string false "pdf (default) or csv"
// @Success 200 {object} response.Envelope
// @Router /ui/schedule/print [post]
func (h *ScheduleHandler) Print(c *gin.Context) {
	var req dto.PrintRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err, "invalid print format"))
		return
	}
	format, err := session.ParsePrintFormat(req.Format)
	if err != nil {
		respondError(c, err)
		return
	}
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		_, err := ctrl.Print(ctx, format)
		return err
	})
}
