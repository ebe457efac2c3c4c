package service

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/session"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
	"github.com/noah-isme/aps-console/pkg/storage"
)

type fileStorage interface {
	Save(relPath string, data []byte) (string, error)
	Open(relPath string) (*os.File, error)
	Delete(relPath string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// DownloadConfig governs where downloads are published and how long they live.
type DownloadConfig struct {
	BaseURL         string
	CleanupInterval time.Duration
	RetainFor       time.Duration
}

// Download is an opened file ready to stream back to the operator.
type Download struct {
	File        *os.File
	Filename    string
	ContentType string
	ExpiresAt   time.Time
}

// DownloadService stores exported and printed files and hands out signed links.
type DownloadService struct {
	storage fileStorage
	signer  *storage.SignedURLSigner
	cfg     DownloadConfig
	logger  *zap.Logger
}

// NewDownloadService wires the download store.
func NewDownloadService(store fileStorage, signer *storage.SignedURLSigner, cfg DownloadConfig, logger *zap.Logger) *DownloadService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/downloads"
	}
	if cfg.RetainFor <= 0 {
		cfg.RetainFor = signer.TTL()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DownloadService{storage: store, signer: signer, cfg: cfg, logger: logger}
}

// Save implements session.Downloader.
func (s *DownloadService) Save(_ context.Context, sessionID, filename, contentType string, data []byte) (*session.SavedFile, error) {
	name := filepath.Base(filepath.Clean("/" + filename))
	if name == "/" || name == "." {
		return nil, appErrors.Clone(appErrors.ErrValidation, "filename is required")
	}
	relPath := path.Join(uuid.NewString(), name)
	if _, err := s.storage.Save(relPath, data); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store download")
	}
	token, expiresAt, err := s.signer.Generate(sessionID, relPath)
	if err != nil {
		_ = s.storage.Delete(relPath)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download")
	}
	s.logger.Info("download ready", zap.String("session_id", sessionID), zap.String("file", name), zap.Int("bytes", len(data)))
	return &session.SavedFile{
		Filename:    name,
		ContentType: contentType,
		Size:        len(data),
		URL:         strings.TrimRight(s.cfg.BaseURL, "/") + "/" + token,
		ExpiresAt:   &expiresAt,
	}, nil
}

// Open validates a download token and opens the referenced file.
func (s *DownloadService) Open(token string) (*Download, error) {
	_, relPath, expiresAt, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download link")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "download no longer available")
	}
	name := path.Base(relPath)
	return &Download{
		File:        file,
		Filename:    name,
		ContentType: contentTypeFor(name),
		ExpiresAt:   expiresAt,
	}, nil
}

// StartCleanup boots a goroutine that purges stale downloads until ctx is done.
func (s *DownloadService) StartCleanup(ctx context.Context) {
	if s.cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}

// Cleanup removes files older than the retention window.
func (s *DownloadService) Cleanup() {
	deleted, err := s.storage.CleanupOlderThan(s.cfg.RetainFor)
	if err != nil {
		s.logger.Warn("download cleanup failed", zap.Error(err))
		return
	}
	if len(deleted) > 0 {
		s.logger.Info("expired downloads removed", zap.Int("count", len(deleted)))
	}
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
