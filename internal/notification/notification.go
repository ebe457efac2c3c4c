// Package notification keeps the short-lived toast messages shown to the operator.
package notification

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Kind selects the notification styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is one visible message. There is no dismiss action; it expires on its own.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	seq       uint64
}

// Center stores notifications until their TTL runs out.
type Center struct {
	items  *cache.Cache
	ttl    time.Duration
	seq    atomic.Uint64
	logger *zap.Logger
}

// NewCenter builds a notification center. Expired entries are filtered on read,
// so no janitor goroutine is started.
func NewCenter(ttl time.Duration, logger *zap.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Center{items: cache.New(ttl, 0), ttl: ttl, logger: logger}
}

// Notify shows a message of the given kind.
func (c *Center) Notify(kind Kind, message string) Notification {
	seq := c.seq.Add(1)
	now := time.Now()
	n := Notification{
		ID:        fmt.Sprintf("n%d", seq),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
		seq:       seq,
	}
	c.items.SetDefault(n.ID, n)
	c.logger.Debug("notification", zap.String("type", string(kind)), zap.String("message", message))
	return n
}

// Active returns unexpired notifications in the order they were raised.
func (c *Center) Active() []Notification {
	items := c.items.Items()
	out := make([]Notification, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Notification))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Clear removes every notification.
func (c *Center) Clear() {
	c.items.Flush()
}
