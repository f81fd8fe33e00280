package webui

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/display"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/dizitask/citadel/pkg/view"
	"github.com/labstack/echo/v4"
)

// Page is the data handed to every template.
type Page struct {
	Title string
	Retry string
	State any
}

// HousePage is the ready data of the house view.
type HousePage struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Fields   []display.Field         `json:"fields"`
	Members  []display.MemberSummary `json:"members"`
	BackHref string                  `json:"back_href"`
}

func newHousePage(detail *aggregate.HouseDetail) *HousePage {
	h := detail.House
	members := make([]display.MemberSummary, len(detail.Members))
	for i := range detail.Members {
		members[i] = display.Member(&detail.Members[i])
	}

	return &HousePage{
		ID:       h.ID(),
		Name:     display.Value(h.Name, display.Unknown),
		Fields:   display.HouseFields(h),
		Members:  members,
		BackHref: "/houses#" + display.Anchor(h.Name),
	}
}

// CharacterPage is the ready data of the character view.
type CharacterPage struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Fields []display.Field `json:"fields"`
}

func newCharacterPage(c *iceandfire.Character) *CharacterPage {
	return &CharacterPage{
		ID:     c.ID(),
		Name:   display.CharacterName(c),
		Fields: display.CharacterFields(c),
	}
}

func houseRows(houses []iceandfire.House) []display.HouseRow {
	rows := make([]display.HouseRow, len(houses))
	for i := range houses {
		rows[i] = display.Row(&houses[i])
	}

	return rows
}

// validID accepts the positive integer ids the API uses.
func validID(id string) bool {
	n, err := strconv.Atoi(id)
	return err == nil && n > 0
}

func statusFor[T any](state view.State[T]) int {
	switch {
	case state.IsReady():
		return http.StatusOK
	case errors.Is(state.Err, iceandfire.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func logFailure[T any](c echo.Context, state view.State[T]) {
	if !state.CanRetry() {
		return
	}

	clog.UsingCtx(clog.WebCtx).
		WithField("path", c.Request().URL.Path).
		WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		WithError(state.Err).
		Warn("view failed")
}

func renderPage[T any](c echo.Context, template, title string, state view.State[T]) error {
	logFailure(c, state)

	return c.Render(statusFor(state), template, Page{
		Title: title,
		Retry: c.Request().URL.RequestURI(),
		State: state,
	})
}

func renderJSON[T any](c echo.Context, state view.State[T]) error {
	logFailure(c, state)

	return c.JSON(statusFor(state), state)
}

func renderInvalidID(c echo.Context, template, message string, asJSON bool) error {
	state := view.Failed[any](message, nil)
	if asJSON {
		return c.JSON(http.StatusBadRequest, state)
	}

	return c.Render(http.StatusBadRequest, template, Page{Title: "Not found", State: state})
}
