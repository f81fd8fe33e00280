package webui

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

type Options struct {
	Client     iceandfire.Client
	Aggregator *aggregate.Aggregator
	PageSize   int
}

// Server is the browser facing side of citadel: server rendered pages for the
// three viewers plus a JSON rendition of each.
type Server struct {
	e *echo.Echo
}

func NewServer(opts Options) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "loading templates")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(requestID())
	e.Use(accessLog)
	e.Use(middleware.Recover())

	setupRoutes(e, opts)

	return &Server{e: e}, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start blocks serving on port until Shutdown is called.
func (s *Server) Start(port int) error {
	clog.UsingCtx(clog.WebCtx).Infof("Listening on :%d", port)
	err := s.e.Start(":" + strconv.Itoa(port))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
