package logger

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
)

// Event names, written as the message of each log entry.
const (
	EventSessionStart   = "session_start"
	EventSessionEnd     = "session_end"
	EventRunCommand     = "run_command"
	EventUnknownCommand = "unknown_command"
	EventHandlerFailure = "handler_failure"
	EventPanic          = "panic"
	EventPagerSession   = "pager_session"
)

// Recorder captures interaction events for a shell session.
type Recorder struct {
	log *log.Logger
}

// NewJSONLinesRecorder creates a Recorder that exports events in newline
// delimited JSON object format. Unknown levels fall back to info.
func NewJSONLinesRecorder(w io.Writer, level string) *Recorder {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return &Recorder{
		log: log.NewWithOptions(w, log.Options{
			Level:           lvl,
			ReportTimestamp: true,
			Formatter:       log.JSONFormatter,
		}),
	}
}

// Discard returns a Recorder that drops every event.
func Discard() *Recorder {
	return NewJSONLinesRecorder(io.Discard, "error")
}

// NewSession creates a recorder with an attached session ID.
func (r *Recorder) NewSession() *Recorder {
	return &Recorder{log: r.log.With("session", fmt.Sprintf("%d", rand.Uint64()))}
}

type recorderKey struct{}

// NewContext returns a copy of ctx carrying r.
func NewContext(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, r)
}

// FromContext returns the Recorder carried by ctx, or one that discards
// events.
func FromContext(ctx context.Context) *Recorder {
	if r, ok := ctx.Value(recorderKey{}).(*Recorder); ok && r != nil {
		return r
	}
	return Discard()
}

// Logger exposes the underlying logger for operator messages.
func (r *Recorder) Logger() *log.Logger {
	return r.log
}

func (r *Recorder) SessionStart(user, host, dir string) {
	r.log.Info(EventSessionStart, "user", user, "host", host, "dir", dir)
}

func (r *Recorder) SessionEnd(reason string) {
	r.log.Info(EventSessionEnd, "reason", reason)
}

func (r *Recorder) RunCommand(argv []string) {
	r.log.Info(EventRunCommand, commandFields(argv)...)
}

func (r *Recorder) UnknownCommand(argv []string) {
	r.log.Warn(EventUnknownCommand, commandFields(argv)...)
}

func (r *Recorder) HandlerFailure(argv []string, err error) {
	r.log.Warn(EventHandlerFailure, append(commandFields(argv), "error", err.Error())...)
}

func (r *Recorder) Panic(argv []string, recovered interface{}, stack []byte) {
	r.log.Error(EventPanic, append(commandFields(argv),
		"error", fmt.Sprint(recovered),
		"stack", string(stack))...)
}

// PagerSession records the outcome of paging a single file.
func (r *Recorder) PagerSession(file, encoding string, lines, displays, searches int, quit bool) {
	r.log.Info(EventPagerSession,
		"file", file,
		"encoding", encoding,
		"lines", lines,
		"displays", displays,
		"searches", searches,
		"quit", quit)
}

func commandFields(argv []string) []interface{} {
	name := ""
	if len(argv) > 0 {
		name = argv[0]
	}
	return []interface{}{"command", name, "args", strings.Join(argv, " ")}
}
