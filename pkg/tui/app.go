package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/dizitask/citadel/pkg/view"
)

const (
	keyUp        = "up"
	keyUpAlt     = "k"
	keyDown      = "down"
	keyDownAlt   = "j"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keyBackspace = "backspace"
	keyRetry     = "r"
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"

	defaultWidth  = 100
	defaultHeight = 30

	// lines taken by the title, help and margins
	headerLines = 6
)

type Options struct {
	Client     iceandfire.Client
	Aggregator *aggregate.Aggregator
	PageSize   int
}

// App is the interactive browser. It keeps a stack of screens, houses at the
// bottom, and forwards each load result to the screen that asked for it.
type App struct {
	ctx     context.Context
	deps    *deps
	stack   []screen
	loading *LoadingState
	ticking bool
	width   int
	height  int
}

func NewApp(ctx context.Context, opts Options) *App {
	d := &deps{
		client:     opts.Client,
		aggregator: opts.Aggregator,
		pageSize:   opts.PageSize,
	}

	return &App{
		ctx:     ctx,
		deps:    d,
		stack:   []screen{newHousesScreen(d)},
		loading: NewLoadingState("Loading..."),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	app := NewApp(ctx, opts)
	defer app.closeAll()

	_, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.startLoad(a.top().load(a.ctx))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case spinner.TickMsg:
		if a.top().state() != view.StatusLoading {
			a.ticking = false
			return a, nil
		}
		return a, a.loading.Update(msg)

	case screenMsg:
		a.deliver(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg.String())
	}

	return a, nil
}

// deliver hands msg to its screen. Results for screens that were closed are
// dropped here; stale generations are dropped by the screen's session.
func (a *App) deliver(msg screenMsg) {
	for _, s := range a.stack {
		if s.id() == msg.screenID() {
			s.apply(msg)
			return
		}
	}

	clog.UsingCtx(clog.TUICtx).WithField("screen", msg.screenID()).Debug("dropping result for closed screen")
}

func (a *App) handleKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case keyQuit, keyCtrlC:
		a.closeAll()
		return a, tea.Quit

	case keyEsc, keyBackspace:
		a.pop()
		return a, nil

	case keyRetry:
		return a, a.startLoad(a.top().retry(a.ctx))
	}

	if next := a.top().key(k); next != nil {
		a.stack = append(a.stack, next)
		return a, a.startLoad(next.load(a.ctx))
	}

	return a, nil
}

// startLoad batches load with a spinner tick unless one is already running.
func (a *App) startLoad(load tea.Cmd) tea.Cmd {
	if load == nil {
		return nil
	}

	if a.ticking {
		return load
	}

	a.ticking = true

	return tea.Batch(load, a.loading.Init())
}

func (a *App) pop() {
	if len(a.stack) == 1 {
		return
	}

	top := a.top()
	top.close()
	a.stack = a.stack[:len(a.stack)-1]
}

func (a *App) closeAll() {
	for _, s := range a.stack {
		s.close()
	}
}

func (a *App) top() screen {
	return a.stack[len(a.stack)-1]
}

func (a *App) View() string {
	top := a.top()

	var b strings.Builder
	b.WriteString(a.breadcrumbs())
	b.WriteString("\n\n")

	switch top.state() {
	case view.StatusLoading:
		b.WriteString(a.loading.View())
	case view.StatusFailed:
		b.WriteString(RenderError(top.message()))
	default:
		b.WriteString(top.view(a.height))
	}

	b.WriteString(HelpStyle.Render(a.help()))

	return lipgloss.NewStyle().MaxWidth(a.width).Render(b.String())
}

func (a *App) breadcrumbs() string {
	titles := make([]string, len(a.stack))
	for i, s := range a.stack {
		titles[i] = s.title()
	}

	return MutedStyle.Render(strings.Join(titles, " › "))
}

func (a *App) help() string {
	parts := []string{"↑/↓ select", "enter open"}
	if len(a.stack) > 1 {
		parts = append(parts, "esc back")
	}
	if a.top().state() == view.StatusFailed {
		parts = append(parts, "r retry")
	}
	parts = append(parts, "q quit")

	return strings.Join(parts, " · ")
}
