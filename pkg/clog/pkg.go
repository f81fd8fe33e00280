package clog

import (
	"io"
	"os"

	"github.com/apex/log"
)

var clogger = NewContextLogger(os.Stderr)

func init() {
	log.Log = clogger.Logger()
}

func SetLevel(level log.Level) {
	clogger.SetLevel(level)
}

func SetLevelFromString(s string) error {
	return clogger.SetLevelFromString(s)
}

func SetOutput(w io.Writer) {
	clogger.SetOutput(w)
}

func Close() {
	clogger.Close()
}

func UsingCtx(ctx string) *log.Entry {
	return clogger.UsingCtx(ctx)
}

func Global() *log.Entry {
	return clogger.Global()
}

func Level() log.Level {
	return clogger.Level()
}
