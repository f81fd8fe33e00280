package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/display"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/dizitask/citadel/pkg/view"
)

// screen is one entry of the navigation stack.
type screen interface {
	id() int
	title() string
	load(ctx context.Context) tea.Cmd
	retry(ctx context.Context) tea.Cmd
	state() view.Status
	// message is the failure message while failed.
	message() string
	// apply handles a message addressed to this screen.
	apply(msg screenMsg)
	// key handles a navigation key and returns the screen to open, if any.
	key(k string) screen
	view(height int) string
	close()
}

type deps struct {
	client     iceandfire.Client
	aggregator *aggregate.Aggregator
	pageSize   int
	lastID     int
}

func (d *deps) nextID() int {
	d.lastID++
	return d.lastID
}

type housesScreen struct {
	sid    int
	deps   *deps
	loader *loader[[]display.HouseRow]
	cursor int
}

func newHousesScreen(d *deps) *housesScreen {
	s := &housesScreen{sid: d.nextID(), deps: d}
	s.loader = newLoader(s.sid, view.HouseListFailedMessage, func(ctx context.Context) ([]display.HouseRow, error) {
		houses, err := d.client.ListHouses(ctx, 1, d.pageSize)
		if err != nil {
			return nil, err
		}

		rows := make([]display.HouseRow, len(houses))
		for i := range houses {
			rows[i] = display.Row(&houses[i])
		}

		return rows, nil
	})

	return s
}

func (s *housesScreen) id() int                           { return s.sid }
func (s *housesScreen) title() string                     { return "Houses" }
func (s *housesScreen) load(ctx context.Context) tea.Cmd  { return s.loader.start(ctx) }
func (s *housesScreen) retry(ctx context.Context) tea.Cmd { return s.loader.retry(ctx) }
func (s *housesScreen) state() view.Status                { return s.loader.state().Status }
func (s *housesScreen) message() string                   { return s.loader.state().Message }
func (s *housesScreen) close()                            { s.loader.close() }

func (s *housesScreen) apply(msg screenMsg) {
	if m, ok := msg.(loadedMsg[[]display.HouseRow]); ok && s.loader.resolve(m) {
		s.cursor = 0
	}
}

func (s *housesScreen) key(k string) screen {
	st := s.loader.state()
	if !st.IsReady() {
		return nil
	}

	switch k {
	case keyUp, keyUpAlt:
		s.cursor = max(s.cursor-1, 0)
	case keyDown, keyDownAlt:
		s.cursor = min(s.cursor+1, max(len(st.Data)-1, 0))
	case keyEnter:
		if s.cursor < len(st.Data) {
			return newHouseScreen(s.deps, st.Data[s.cursor].ID)
		}
	}

	return nil
}

func (s *housesScreen) view(height int) string {
	rows := s.loader.state().Data
	lo, hi := window(len(rows), s.cursor, height-headerLines)
	return TitleStyle.Render("Houses") + "\n" + RenderHouseRows(rows[lo:hi], s.cursor-lo)
}

type houseScreen struct {
	sid     int
	deps    *deps
	houseID string
	loader  *loader[*aggregate.HouseDetail]
	cursor  int
}

func newHouseScreen(d *deps, houseID string) *houseScreen {
	s := &houseScreen{sid: d.nextID(), deps: d, houseID: houseID}
	s.loader = newLoader(s.sid, view.HouseFailedMessage, func(ctx context.Context) (*aggregate.HouseDetail, error) {
		return d.aggregator.House(ctx, houseID)
	})

	return s
}

func (s *houseScreen) id() int                           { return s.sid }
func (s *houseScreen) load(ctx context.Context) tea.Cmd  { return s.loader.start(ctx) }
func (s *houseScreen) retry(ctx context.Context) tea.Cmd { return s.loader.retry(ctx) }
func (s *houseScreen) state() view.Status                { return s.loader.state().Status }
func (s *houseScreen) message() string                   { return s.loader.state().Message }
func (s *houseScreen) close()                            { s.loader.close() }

func (s *houseScreen) title() string {
	if st := s.loader.state(); st.IsReady() {
		return display.Value(st.Data.House.Name, display.Unknown)
	}

	return "House " + s.houseID
}

func (s *houseScreen) apply(msg screenMsg) {
	if m, ok := msg.(loadedMsg[*aggregate.HouseDetail]); ok && s.loader.resolve(m) {
		s.cursor = 0
	}
}

func (s *houseScreen) key(k string) screen {
	st := s.loader.state()
	if !st.IsReady() {
		return nil
	}

	members := st.Data.Members
	switch k {
	case keyUp, keyUpAlt:
		s.cursor = max(s.cursor-1, 0)
	case keyDown, keyDownAlt:
		s.cursor = min(s.cursor+1, max(len(members)-1, 0))
	case keyEnter:
		if s.cursor < len(members) {
			return newCharacterScreen(s.deps, members[s.cursor].ID())
		}
	}

	return nil
}

func (s *houseScreen) view(height int) string {
	detail := s.loader.state().Data
	members := make([]display.MemberSummary, len(detail.Members))
	for i := range detail.Members {
		members[i] = display.Member(&detail.Members[i])
	}

	fields := display.HouseFields(detail.House)
	lo, hi := window(len(members), s.cursor, height-headerLines-len(fields)-3)

	return RenderHouse(s.title(), fields, members[lo:hi], s.cursor-lo)
}

type characterScreen struct {
	sid         int
	characterID string
	loader      *loader[*iceandfire.Character]
}

func newCharacterScreen(d *deps, characterID string) *characterScreen {
	s := &characterScreen{sid: d.nextID(), characterID: characterID}
	s.loader = newLoader(s.sid, view.CharacterFailedMessage, func(ctx context.Context) (*iceandfire.Character, error) {
		return d.client.GetCharacter(ctx, characterID)
	})

	return s
}

func (s *characterScreen) id() int                           { return s.sid }
func (s *characterScreen) load(ctx context.Context) tea.Cmd  { return s.loader.start(ctx) }
func (s *characterScreen) retry(ctx context.Context) tea.Cmd { return s.loader.retry(ctx) }
func (s *characterScreen) state() view.Status                { return s.loader.state().Status }
func (s *characterScreen) key(string) screen                 { return nil }
func (s *characterScreen) message() string                   { return s.loader.state().Message }
func (s *characterScreen) close()                            { s.loader.close() }

func (s *characterScreen) title() string {
	if st := s.loader.state(); st.IsReady() {
		return display.CharacterName(st.Data)
	}

	return "Character " + s.characterID
}

func (s *characterScreen) apply(msg screenMsg) {
	if m, ok := msg.(loadedMsg[*iceandfire.Character]); ok {
		s.loader.resolve(m)
	}
}

func (s *characterScreen) view(int) string {
	return RenderCharacter(s.title(), display.CharacterFields(s.loader.state().Data))
}

// window returns the bounds of a slice of at most size items out of n that
// keeps cursor visible.
func window(n, cursor, size int) (int, int) {
	if size < 1 {
		size = 1
	}

	if n <= size {
		return 0, n
	}

	lo := max(cursor-size/2, 0)
	hi := lo + size
	if hi > n {
		hi = n
		lo = n - size
	}

	return lo, hi
}
