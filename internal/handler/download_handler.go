package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/service"
)

type downloadOpener interface {
	Open(token string) (*service.Download, error)
}

// DownloadHandler streams exported and printed files.
type DownloadHandler struct {
	downloads downloadOpener
}

// NewDownloadHandler constructs the handler.
func NewDownloadHandler(downloads *service.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloads: downloads}
}

// Get godoc
// @Summary Download an exported file
// @Tags Downloads
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /downloads/{token} [get]
func (h *DownloadHandler) Get(c *gin.Context) {
	download, err := h.downloads.Open(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer download.File.Close()

	info, err := download.File.Stat()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "private, no-store")
	c.DataFromReader(http.StatusOK, info.Size(), download.ContentType, download.File, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", download.Filename),
	})
}
