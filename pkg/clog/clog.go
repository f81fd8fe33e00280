package clog

import (
	"io"

	"github.com/apex/log"
)

// Named logging contexts used across citadel.
const (
	GlobalLoggerCtx = "global"
	ClientCtx       = "client"
	AggregateCtx    = "aggregate"
	WebCtx          = "webui"
	TUICtx          = "tui"
)

// ContextLogger is a single apex/log logger whose entries are tagged with the
// component ("ctx") that produced them.
type ContextLogger struct {
	logger  *log.Logger
	handler *Handler
}

func NewContextLogger(w io.Writer) *ContextLogger {
	h := NewHandler(w)
	return &ContextLogger{
		handler: h,
		logger: &log.Logger{
			Handler: h,
			Level:   log.InfoLevel,
		},
	}
}

func (l *ContextLogger) SetLevel(level log.Level) {
	l.logger.Level = level
}

func (l *ContextLogger) SetLevelFromString(s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	l.SetLevel(level)

	return nil
}

func (l *ContextLogger) SetOutput(w io.Writer) {
	l.handler.SetOutput(w)
}

func (l *ContextLogger) Close() {
	l.handler.Close()
}

func (l *ContextLogger) UsingCtx(ctx string) *log.Entry {
	return l.logger.WithField("ctx", ctx)
}

func (l *ContextLogger) Global() *log.Entry {
	return l.UsingCtx(GlobalLoggerCtx)
}

// Logger exposes the underlying logger so it can be installed as apex/log's
// package level default.
func (l *ContextLogger) Logger() *log.Logger {
	return l.logger
}

func (l *ContextLogger) Level() log.Level {
	return l.logger.Level
}
