package confirm

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	appErrors "github.com/noah-isme/aps-console/pkg/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func counter(calls *int) func(context.Context) error {
	return func(context.Context) error {
		*calls++
		return nil
	}
}

func TestFixed(t *testing.T) {
	var calls int
	require.NoError(t, AlwaysNo.Confirm(context.Background(), Request{Action: "delete"}, counter(&calls)))
	assert.Equal(t, 0, calls)

	require.NoError(t, AlwaysYes.Confirm(context.Background(), Request{Action: "delete"}, counter(&calls)))
	assert.Equal(t, 1, calls)
}

func TestFuncPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	dialog := Func(func(context.Context, Request) (bool, error) { return true, boom })
	err := dialog.Confirm(context.Background(), Request{}, counter(&calls))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, calls)
}

func TestPromptAnswers(t *testing.T) {
	cases := map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		" 예 \n":   true,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"maybe\n": false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		var calls int
		prompt := NewPrompt(strings.NewReader(input), &out)
		require.NoError(t, prompt.Confirm(context.Background(), Request{Message: "Delete batch B1?"}, counter(&calls)))
		assert.Equal(t, want, calls == 1, "input %q", input)
		assert.Equal(t, "Delete batch B1? [y/N]: ", out.String())
	}
}

func TestPromptRejectsNonTerminalFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "answers")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString("y\n")
	require.NoError(t, err)

	var calls int
	err = NewPrompt(f, &bytes.Buffer{}).Confirm(context.Background(), Request{}, counter(&calls))
	require.ErrorIs(t, err, ErrNotInteractive)
	assert.Equal(t, 0, calls)
}

func TestDeferredRunsAtMostOnce(t *testing.T) {
	d := NewDeferred(time.Minute)
	var calls int
	require.NoError(t, d.Confirm(context.Background(), Request{Action: "delete", Message: "sure?"}, counter(&calls)))
	assert.Equal(t, 0, calls)

	pending := d.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "delete", pending[0].Action)

	require.NoError(t, d.Resolve(context.Background(), pending[0].Token, true))
	assert.Equal(t, 1, calls)

	err := d.Resolve(context.Background(), pending[0].Token, true)
	require.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Equal(t, 1, calls)
	assert.Empty(t, d.Pending())
}

func TestDeferredDeclineDropsAction(t *testing.T) {
	d := NewDeferred(time.Minute)
	var calls int
	require.NoError(t, d.Confirm(context.Background(), Request{Action: "delete"}, counter(&calls)))
	token := d.Pending()[0].Token

	require.NoError(t, d.Resolve(context.Background(), token, false))
	assert.Equal(t, 0, calls)
	assert.Empty(t, d.Pending())
}

func TestDeferredExpires(t *testing.T) {
	d := NewDeferred(20 * time.Millisecond)
	var calls int
	require.NoError(t, d.Confirm(context.Background(), Request{Action: "delete"}, counter(&calls)))
	token := d.Pending()[0].Token

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, d.Pending())
	require.Error(t, d.Resolve(context.Background(), token, true))
	assert.Equal(t, 0, calls)
}
