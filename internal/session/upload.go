package session

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/notification"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
)

var spreadsheetName = regexp.MustCompile(`\.(xlsx|xls)$`)

// StagedFile is a sales plan waiting to be uploaded.
type StagedFile struct {
	Name string
	Data []byte
}

// UploadPanel mirrors the upload modal.
type UploadPanel struct {
	ModalOpen bool   `json:"modalOpen"`
	DragOver  bool   `json:"dragOver"`
	FileName  string `json:"fileName,omitempty"`
	FileReady bool   `json:"fileReady"`
	FileSize  int    `json:"fileSize,omitempty"`
}

// OpenUploadModal shows the upload modal.
func (c *Controller) OpenUploadModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upload.ModalOpen = true
}

// CloseUploadModal hides the modal and drops the staged file.
func (c *Controller) CloseUploadModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upload.ModalOpen = false
	c.removeFileLocked()
}

// DragOver highlights the drop zone.
func (c *Controller) DragOver() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upload.DragOver = true
}

// SelectFile stages a dropped or picked file. Only names ending in .xlsx or
// .xls are accepted; rejections leave the panel untouched.
func (c *Controller) SelectFile(name string, data []byte) error {
	c.mu.Lock()
	c.upload.DragOver = false
	c.mu.Unlock()

	if !spreadsheetName.MatchString(name) {
		c.Notify(notification.KindError, MsgInvalidFileType)
		return appErrors.ErrInvalidFileType
	}
	if c.maxUpload > 0 && int64(len(data)) > c.maxUpload {
		c.Notify(notification.KindError, MsgFileTooLarge)
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("file exceeds %d bytes", c.maxUpload))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged = &StagedFile{Name: name, Data: data}
	c.upload.FileName = name
	c.upload.FileReady = true
	c.upload.FileSize = len(data)
	return nil
}

// RemoveFile drops the staged file and restores the drop zone.
func (c *Controller) RemoveFile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeFileLocked()
}

func (c *Controller) removeFileLocked() {
	c.staged = nil
	c.upload.FileName = ""
	c.upload.FileReady = false
	c.upload.FileSize = 0
}

// Upload sends the staged sales plan. On success the modal closes and the
// operator is asked whether to generate a schedule right away.
func (c *Controller) Upload(ctx context.Context) error {
	c.mu.Lock()
	staged := c.staged
	c.mu.Unlock()
	if staged == nil {
		c.Notify(notification.KindError, MsgNoFile)
		return appErrors.ErrNoFileStaged
	}

	c.ShowLoading()
	defer c.HideLoading()

	result, err := c.api.UploadSalesPlan(ctx, apsclient.File{Name: staged.Name, Content: bytes.NewReader(staged.Data)})
	if err == nil && !result.Success {
		err = appErrors.Clone(appErrors.ErrRejected, result.Message)
	}
	if err != nil {
		c.logger.Error("sales plan upload failed", zap.String("file", staged.Name), zap.Error(err))
		c.Notify(notification.KindError, MsgUploadFailure)
		return err
	}

	c.CloseUploadModal()
	c.Notify(notification.KindSuccess, MsgUploadSuccess)
	c.logger.Info("sales plan uploaded", zap.String("file", staged.Name), zap.Int("rows", result.Rows))

	req := confirm.Request{Action: "generate-schedule", Message: MsgGenerateConfirm}
	return c.dialog.Confirm(ctx, req, c.Generate)
}

// Generate asks the backend to build a schedule from the uploaded plan and
// reloads the calendar when it succeeds.
func (c *Controller) Generate(ctx context.Context) error {
	c.ShowLoading()
	defer c.HideLoading()

	result, err := c.api.GenerateScheduleFromSales(ctx, nil)
	if err == nil && !result.Success {
		err = appErrors.Clone(appErrors.ErrRejected, result.Message)
	}
	if err != nil {
		c.logger.Error("schedule generation failed", zap.Error(err))
		c.Notify(notification.KindError, MsgGenerateFailure)
		return err
	}
	c.Notify(notification.KindSuccess, MsgGenerateSuccess)
	c.logger.Info("schedule generated", zap.Int("batches_created", result.BatchesCreated))
	return c.Reload(ctx)
}
