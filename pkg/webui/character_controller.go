package webui

import (
	"context"

	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/dizitask/citadel/pkg/view"
	"github.com/labstack/echo/v4"
)

type CharacterController struct {
	client iceandfire.Client
}

func NewCharacterController(client iceandfire.Client) *CharacterController {
	return &CharacterController{client: client}
}

func (c *CharacterController) Show(ctx echo.Context) error {
	id := ctx.Param("id")
	if !validID(id) {
		return renderInvalidID(ctx, "character.html", view.CharacterFailedMessage, false)
	}

	state := c.load(ctx, id)
	title := "Character"
	if state.IsReady() {
		title = state.Data.Name
	}

	return renderPage(ctx, "character.html", title, state)
}

func (c *CharacterController) ShowJSON(ctx echo.Context) error {
	id := ctx.Param("id")
	if !validID(id) {
		return renderInvalidID(ctx, "", view.CharacterFailedMessage, true)
	}

	return renderJSON(ctx, c.load(ctx, id))
}

func (c *CharacterController) load(ctx echo.Context, id string) view.State[*CharacterPage] {
	s := view.NewSession[*CharacterPage](view.CharacterFailedMessage)
	defer s.Close()

	return s.Load(ctx.Request().Context(), func(ctx context.Context) (*CharacterPage, error) {
		character, err := c.client.GetCharacter(ctx, id)
		if err != nil {
			return nil, err
		}

		return newCharacterPage(character), nil
	})
}
