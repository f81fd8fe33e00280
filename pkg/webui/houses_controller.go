package webui

import (
	"context"

	"github.com/dizitask/citadel/pkg/display"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/dizitask/citadel/pkg/view"
	"github.com/labstack/echo/v4"
)

// HousesController serves the house list, the first page of houses only.
type HousesController struct {
	client   iceandfire.Client
	pageSize int
}

func NewHousesController(client iceandfire.Client, pageSize int) *HousesController {
	return &HousesController{client: client, pageSize: pageSize}
}

func (c *HousesController) Index(ctx echo.Context) error {
	return renderPage(ctx, "houses.html", "Houses", c.load(ctx))
}

func (c *HousesController) IndexJSON(ctx echo.Context) error {
	return renderJSON(ctx, c.load(ctx))
}

func (c *HousesController) load(ctx echo.Context) view.State[[]display.HouseRow] {
	s := view.NewSession[[]display.HouseRow](view.HouseListFailedMessage)
	defer s.Close()

	return s.Load(ctx.Request().Context(), func(ctx context.Context) ([]display.HouseRow, error) {
		houses, err := c.client.ListHouses(ctx, 1, c.pageSize)
		if err != nil {
			return nil, err
		}

		return houseRows(houses), nil
	})
}
