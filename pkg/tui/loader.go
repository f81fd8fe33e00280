package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dizitask/citadel/pkg/view"
)

// screenMsg is implemented by messages addressed to one screen.
type screenMsg interface {
	screenID() int
}

// loadedMsg carries the result of one load. It is applied only if its
// screen is still on the stack and gen is that screen's current generation.
type loadedMsg[T any] struct {
	screen int
	gen    view.Generation
	data   T
	err    error
}

func (m loadedMsg[T]) screenID() int { return m.screen }

// loader runs a screen's fetch as a tea.Cmd under a view.Session.
type loader[T any] struct {
	screen  int
	session *view.Session[T]
	fetch   func(context.Context) (T, error)
}

func newLoader[T any](screen int, failMessage string, fetch func(context.Context) (T, error)) *loader[T] {
	return &loader[T]{
		screen:  screen,
		session: view.NewSession[T](failMessage),
		fetch:   fetch,
	}
}

func (l *loader[T]) start(ctx context.Context) tea.Cmd {
	lctx, gen := l.session.Start(ctx)
	return l.cmd(lctx, gen)
}

// retry restarts a failed load. It returns nil in any other state.
func (l *loader[T]) retry(ctx context.Context) tea.Cmd {
	lctx, gen, ok := l.session.Retry(ctx)
	if !ok {
		return nil
	}

	return l.cmd(lctx, gen)
}

func (l *loader[T]) cmd(ctx context.Context, gen view.Generation) tea.Cmd {
	screen, fetch := l.screen, l.fetch
	return func() tea.Msg {
		data, err := fetch(ctx)
		return loadedMsg[T]{screen: screen, gen: gen, data: data, err: err}
	}
}

// resolve applies msg and reports whether it was current.
func (l *loader[T]) resolve(msg loadedMsg[T]) bool {
	return l.session.Resolve(msg.gen, msg.data, msg.err)
}

func (l *loader[T]) state() view.State[T] {
	return l.session.State()
}

func (l *loader[T]) close() {
	l.session.Close()
}
