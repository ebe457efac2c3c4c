// Package confirm turns "are you sure?" steps into explicit request/response
// exchanges. The action to run on acceptance is passed along with the question
// so dialogs that cannot answer synchronously can park it.
package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned by Prompt when its input is not a terminal.
var ErrNotInteractive = errors.New("confirmation requires an interactive terminal")

// Request describes what is being confirmed.
type Request struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// Dialog asks for confirmation and runs proceed only when the answer is yes.
// A declined request returns nil without calling proceed.
type Dialog interface {
	Confirm(ctx context.Context, req Request, proceed func(context.Context) error) error
}

// Func adapts a plain answer function to Dialog.
type Func func(ctx context.Context, req Request) (bool, error)

// Confirm implements Dialog.
func (f Func) Confirm(ctx context.Context, req Request, proceed func(context.Context) error) error {
	ok, err := f(ctx, req)
	if err != nil || !ok {
		return err
	}
	return proceed(ctx)
}

// Fixed answers every request the same way.
type Fixed bool

const (
	AlwaysYes Fixed = true
	AlwaysNo  Fixed = false
)

// Confirm implements Dialog.
func (f Fixed) Confirm(ctx context.Context, _ Request, proceed func(context.Context) error) error {
	if !f {
		return nil
	}
	return proceed(ctx)
}

// Prompt asks on a terminal and reads a y/N answer.
type Prompt struct {
	in  io.Reader
	out io.Writer
}

// NewPrompt builds a prompt reading from in and writing questions to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: in, out: out}
}

// Confirm implements Dialog.
func (p *Prompt) Confirm(ctx context.Context, req Request, proceed func(context.Context) error) error {
	if f, ok := p.in.(interface{ Fd() uintptr }); ok && !term.IsTerminal(int(f.Fd())) {
		return ErrNotInteractive
	}
	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", req.Message); err != nil {
		return err
	}
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if !accepted(line) {
		return nil
	}
	return proceed(ctx)
}

func accepted(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "예", "네":
		return true
	default:
		return false
	}
}
