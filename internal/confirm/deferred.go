package confirm

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	appErrors "github.com/noah-isme/aps-console/pkg/errors"
)

// Pending is a parked confirmation waiting for an answer.
type Pending struct {
	Token     string    `json:"token"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type parked struct {
	pending Pending
	proceed func(context.Context) error
}

// Deferred parks actions under a token until Resolve is called. Unanswered
// confirmations expire after the configured TTL and are dropped.
type Deferred struct {
	mu    sync.Mutex
	items *cache.Cache
	now   func() time.Time
}

// NewDeferred builds a registry whose entries live for ttl.
func NewDeferred(ttl time.Duration) *Deferred {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Deferred{items: cache.New(ttl, 0), now: time.Now}
}

// Confirm implements Dialog. It never calls proceed directly.
func (d *Deferred) Confirm(_ context.Context, req Request, proceed func(context.Context) error) error {
	token := uuid.NewString()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items.SetDefault(token, &parked{
		pending: Pending{Token: token, Action: req.Action, Message: req.Message, CreatedAt: d.now()},
		proceed: proceed,
	})
	return nil
}

// Resolve answers a parked confirmation. Accepting runs the action once;
// the token is consumed either way.
func (d *Deferred) Resolve(ctx context.Context, token string, accept bool) error {
	d.mu.Lock()
	raw, ok := d.items.Get(token)
	if ok {
		d.items.Delete(token)
	}
	d.mu.Unlock()
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "confirmation not found or expired")
	}
	if !accept {
		return nil
	}
	return raw.(*parked).proceed(ctx)
}

// Pending lists outstanding confirmations, oldest first.
func (d *Deferred) Pending() []Pending {
	d.mu.Lock()
	defer d.mu.Unlock()
	items := d.items.Items()
	out := make([]Pending, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*parked).pending)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Token < out[j].Token
	})
	return out
}

// Flush drops every parked confirmation.
func (d *Deferred) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items.Flush()
}
