package webui

import (
	"context"

	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/view"
	"github.com/labstack/echo/v4"
)

type HouseController struct {
	aggregator *aggregate.Aggregator
}

func NewHouseController(aggregator *aggregate.Aggregator) *HouseController {
	return &HouseController{aggregator: aggregator}
}

func (c *HouseController) Show(ctx echo.Context) error {
	id := ctx.Param("id")
	if !validID(id) {
		return renderInvalidID(ctx, "house.html", view.HouseFailedMessage, false)
	}

	state := c.load(ctx, id)
	title := "House"
	if state.IsReady() {
		title = state.Data.Name
	}

	return renderPage(ctx, "house.html", title, state)
}

func (c *HouseController) ShowJSON(ctx echo.Context) error {
	id := ctx.Param("id")
	if !validID(id) {
		return renderInvalidID(ctx, "", view.HouseFailedMessage, true)
	}

	return renderJSON(ctx, c.load(ctx, id))
}

func (c *HouseController) load(ctx echo.Context, id string) view.State[*HousePage] {
	s := view.NewSession[*HousePage](view.HouseFailedMessage)
	defer s.Close()

	return s.Load(ctx.Request().Context(), func(ctx context.Context) (*HousePage, error) {
		detail, err := c.aggregator.House(ctx, id)
		if err != nil {
			return nil, err
		}

		return newHousePage(detail), nil
	})
}
