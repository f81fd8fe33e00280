package webui

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func setupRoutes(e *echo.Echo, opts Options) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/houses")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	housesController := NewHousesController(opts.Client, opts.PageSize)
	houseController := NewHouseController(opts.Aggregator)
	characterController := NewCharacterController(opts.Client)

	e.GET("/houses", housesController.Index)
	e.GET("/houses/:id", houseController.Show)
	e.GET("/character/:id", characterController.Show)

	g := e.Group("/api")
	g.GET("/houses", housesController.IndexJSON)
	g.GET("/houses/:id", houseController.ShowJSON)
	g.GET("/characters/:id", characterController.ShowJSON)

	logController := NewLogController()
	g.GET("/logging", logController.ShowLogging)
	g.POST("/logging/level", logController.SetLogLevel)
}
