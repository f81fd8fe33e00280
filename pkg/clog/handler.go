package clog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
)

// Handler writes apex/log entries as single lines:
//
//	LEVEL 2006-01-02 15:04:05 message                   key=value key=value
type Handler struct {
	mu     sync.Mutex
	Writer io.Writer
	now    func() time.Time
}

var levelToStrings = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{Writer: w, now: time.Now}
}

// SetOutput swaps the writer. The previous writer is closed unless it is
// stdout or stderr.
func (h *Handler) SetOutput(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	closeWriter(h.Writer)
	h.Writer = w
}

func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	closeWriter(h.Writer)
}

func closeWriter(w io.Writer) {
	if w == nil || w == os.Stdout || w == os.Stderr {
		return
	}

	if c, ok := w.(io.Closer); ok {
		_ = c.Close()
	}
}

func (h *Handler) HandleLog(e *log.Entry) error {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, "%5s %s %-25s", levelToStrings[e.Level], h.now().Format(time.DateTime), e.Message)

	for _, name := range names {
		_, _ = fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = fmt.Fprintln(h.Writer, b.String())

	return nil
}
