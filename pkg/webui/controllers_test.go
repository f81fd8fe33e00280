package webui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiBase = "https://api.example/api"

func houseURL(id string) string     { return apiBase + "/houses/" + id }
func characterURL(id string) string { return apiBase + "/characters/" + id }

func newMockClient() *iceandfire.MockClient {
	return iceandfire.NewMockClient().
		AddHouse(iceandfire.House{
			URL:          houseURL("362"),
			Name:         "House Stark of Winterfell",
			Region:       "The North",
			Words:        "Winter is Coming",
			Seats:        []string{"Scattered (formerly Winterfell)"},
			SwornMembers: []string{characterURL("583"), characterURL("101"), characterURL("209")},
		}).
		AddHouse(iceandfire.House{URL: houseURL("1"), Name: "House Algood"}).
		AddCharacter(iceandfire.Character{URL: characterURL("583"), Name: "Jon Snow", Culture: "Northmen"}).
		AddCharacter(iceandfire.Character{URL: characterURL("209"), Aliases: []string{"The Blackfish"}}).
		Fail(iceandfire.CharacterKey("101"), errors.New("timeout"))
}

// setupEchoContext creates a context for target with the renderer installed.
func setupEchoContext(t *testing.T, target string, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	renderer, err := NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func TestHousesController_Index(t *testing.T) {
	controller := NewHousesController(newMockClient(), 50)

	ctx, rec := setupEchoContext(t, "/houses", nil, nil)
	require.NoError(t, controller.Index(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="house-stark-of-winterfell"`)
	assert.Contains(t, body, `href="/houses/362"`)
	assert.Contains(t, body, "No words", "a house without words says so")
	assert.Contains(t, body, "Unknown")
}

func TestHousesController_IndexFailure(t *testing.T) {
	client := newMockClient().Fail(iceandfire.HouseListKey, errors.New("connection refused"))
	controller := NewHousesController(client, 50)

	ctx, rec := setupEchoContext(t, "/houses", nil, nil)
	require.NoError(t, controller.Index(ctx))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Failed to load houses. Please try again later.")
	assert.Contains(t, body, `class="retry" href="/houses"`)
	assert.NotContains(t, body, "connection refused", "the cause is never shown")
}

func TestHouseController_Show(t *testing.T) {
	client := newMockClient()
	controller := NewHouseController(aggregate.NewAggregator(client, 0))

	ctx, rec := setupEchoContext(t, "/houses/362", []string{"id"}, []string{"362"})
	require.NoError(t, controller.Show(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "House Stark of Winterfell")
	assert.Contains(t, body, `href="/houses#house-stark-of-winterfell"`)
	assert.Contains(t, body, `id="character-583"`)
	assert.Contains(t, body, `id="character-209"`)
	assert.Contains(t, body, "The Blackfish")
	assert.NotContains(t, body, `id="character-101"`)
	assert.Less(t, strings.Index(body, "character-583"), strings.Index(body, "character-209"), "members keep reference order")
}

func TestHouseController_ShowJSON(t *testing.T) {
	controller := NewHouseController(aggregate.NewAggregator(newMockClient(), 0))

	ctx, rec := setupEchoContext(t, "/api/houses/362", []string{"id"}, []string{"362"})
	require.NoError(t, controller.ShowJSON(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status string    `json:"status"`
		Data   HousePage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ready", got.Status)
	assert.Equal(t, "362", got.Data.ID)
	require.Len(t, got.Data.Members, 2)
	assert.Equal(t, "Jon Snow", got.Data.Members[0].Name)
	assert.Equal(t, "The Blackfish", got.Data.Members[1].Name)
}

func TestHouseController_NotFound(t *testing.T) {
	controller := NewHouseController(aggregate.NewAggregator(newMockClient(), 0))

	ctx, rec := setupEchoContext(t, "/api/houses/999", []string{"id"}, []string{"999"})
	require.NoError(t, controller.ShowJSON(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Failed to load house details. Please try again later."}`, rec.Body.String())
}

func TestHouseController_InvalidID(t *testing.T) {
	client := newMockClient()
	controller := NewHouseController(aggregate.NewAggregator(client, 0))

	ctx, rec := setupEchoContext(t, "/houses/abc", []string{"id"}, []string{"abc"})
	require.NoError(t, controller.Show(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), `class="retry"`)
	assert.Empty(t, client.Calls(), "invalid ids never reach the API")
}

func TestCharacterController_Show(t *testing.T) {
	controller := NewCharacterController(newMockClient())

	ctx, rec := setupEchoContext(t, "/character/583", []string{"id"}, []string{"583"})
	require.NoError(t, controller.Show(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<h2 class="character-name">Jon Snow</h2>`)
	assert.Contains(t, body, "Northmen")
}

func TestCharacterController_Failure(t *testing.T) {
	client := newMockClient().Delay(iceandfire.CharacterKey("583"), time.Second)
	controller := NewCharacterController(client)

	ctx, rec := setupEchoContext(t, "/api/characters/583", []string{"id"}, []string{"583"})
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), 20*time.Millisecond)
	defer cancel()
	ctx.SetRequest(ctx.Request().WithContext(reqCtx))

	require.NoError(t, controller.ShowJSON(ctx))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Failed to load character details. Please try again later."}`, rec.Body.String())
}
