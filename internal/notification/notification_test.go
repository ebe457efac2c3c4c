package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCenterKeepsOrder(t *testing.T) {
	c := NewCenter(time.Minute, nil)
	c.Notify(KindSuccess, "업로드 완료")
	c.Notify(KindError, "실패")
	c.Notify(KindInfo, "안내")

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, KindSuccess, active[0].Kind)
	assert.Equal(t, KindError, active[1].Kind)
	assert.Equal(t, KindInfo, active[2].Kind)
	assert.Equal(t, "안내", active[2].Message)
	assert.Equal(t, active[0].CreatedAt.Add(time.Minute), active[0].ExpiresAt)
}

func TestCenterExpires(t *testing.T) {
	c := NewCenter(30*time.Millisecond, nil)
	c.Notify(KindInfo, "soon gone")
	require.Len(t, c.Active(), 1)

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.Active())
}

func TestCenterDefaultsAndClear(t *testing.T) {
	c := NewCenter(0, nil)
	n := c.Notify(KindError, "x")
	assert.Equal(t, DefaultTTL, n.ExpiresAt.Sub(n.CreatedAt))

	c.Clear()
	assert.Empty(t, c.Active())
}
