package webui

import (
	"net/http"
	"sync"

	"github.com/dizitask/citadel/pkg/clog"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LogController reports and changes the server's log level at runtime.
type LogController struct {
	mu sync.Mutex
}

type logging struct {
	LogLevel string `json:"log_level"`
}

func NewLogController() *LogController {
	return &LogController{}
}

func (c *LogController) ShowLogging(ctx echo.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ctx.JSON(http.StatusOK, logging{LogLevel: clog.Level().String()})
}

func (c *LogController) SetLogLevel(ctx echo.Context) error {
	var req logging

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := clog.SetLevelFromString(req.LogLevel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			errors.Wrapf(err, "invalid log level %q", req.LogLevel).Error())
	}

	return ctx.JSON(http.StatusOK, logging{LogLevel: clog.Level().String()})
}
