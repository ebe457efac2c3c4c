package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-console/internal/session"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
	"github.com/noah-isme/aps-console/pkg/eventbus"
)

// SessionFactory builds an uninitialised controller for a new session id.
type SessionFactory func(id string) *session.Controller

// SessionConfig governs session lifetime.
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// SessionService keeps open console sessions. Idle sessions expire after the
// TTL; expiry closes the controller.
type SessionService struct {
	items   *cache.Cache
	factory SessionFactory
	metrics *MetricsService
	cfg     SessionConfig
	logger  *zap.Logger
}

// NewSessionService constructs the session registry.
func NewSessionService(factory SessionFactory, metrics *MetricsService, cfg SessionConfig, logger *zap.Logger) *SessionService {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SessionService{
		items:   cache.New(cfg.TTL, 0),
		factory: factory,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
	s.items.OnEvicted(s.evicted)
	return s
}

// Create opens a session and loads its initial data. A failed initial load
// is reported inside the session, not as an error.
func (s *SessionService) Create(ctx context.Context) *session.Controller {
	id := uuid.NewString()
	ctrl := s.factory(id)
	eventbus.Subscribe(ctrl.Bus(), func(e session.NotificationRaised) {
		s.metrics.ObserveNotification(string(e.Notification.Kind))
	})
	s.items.SetDefault(id, ctrl)
	s.metrics.SessionOpened()
	s.logger.Info("session opened", zap.String("session_id", id))

	if err := ctrl.Init(ctx); err != nil {
		s.logger.Warn("initial data load failed", zap.String("session_id", id), zap.Error(err))
	}
	return ctrl
}

// Get returns a live session and extends its lifetime.
func (s *SessionService) Get(id string) (*session.Controller, error) {
	raw, ok := s.items.Get(id)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	ctrl := raw.(*session.Controller)
	s.items.SetDefault(id, ctrl)
	return ctrl, nil
}

// Delete closes a session.
func (s *SessionService) Delete(id string) error {
	if _, ok := s.items.Get(id); !ok {
		return appErrors.ErrSessionNotFound
	}
	s.items.Delete(id)
	return nil
}

// Count returns the number of tracked sessions.
func (s *SessionService) Count() int {
	return s.items.ItemCount()
}

// EventStats sums event bus delivery counters over the live sessions.
func (s *SessionService) EventStats() eventbus.Stats {
	var total eventbus.Stats
	for _, item := range s.items.Items() {
		ctrl, ok := item.Object.(*session.Controller)
		if !ok {
			continue
		}
		stats := ctrl.Bus().Stats()
		total.Published += stats.Published
		total.Failures += stats.Failures
	}
	return total
}

// Sweep closes every expired session.
func (s *SessionService) Sweep() {
	s.items.DeleteExpired()
}

// StartSweeper sweeps expired sessions until ctx is done.
func (s *SessionService) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// CloseAll closes every session, used on shutdown.
func (s *SessionService) CloseAll() {
	for id := range s.items.Items() {
		s.items.Delete(id)
	}
	s.Sweep()
}

func (s *SessionService) evicted(id string, value interface{}) {
	ctrl, ok := value.(*session.Controller)
	if !ok {
		return
	}
	ctrl.Close()
	s.metrics.SessionClosed()
	s.logger.Info("session closed", zap.String("session_id", id))
}
