package webui

import (
	"time"

	"github.com/apex/log"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/hashicorp/go-uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			id, err := uuid.GenerateUUID()
			if err != nil {
				return ""
			}

			return id
		},
	})
}

// accessLog logs one line per request once the handler (and any error
// handling) has produced the response.
func accessLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		res := c.Response()
		clog.UsingCtx(clog.WebCtx).WithFields(log.Fields{
			"method":     c.Request().Method,
			"path":       c.Request().URL.Path,
			"status":     res.Status,
			"request_id": res.Header().Get(echo.HeaderXRequestID),
			"elapsed":    time.Since(start).Round(time.Millisecond),
		}).Info("request")

		return nil
	}
}
