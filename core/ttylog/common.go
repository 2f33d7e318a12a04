package ttylog

import (
	"io"
	"sync"
	"time"

	"github.com/josephlewis42/debsh/core/vos"
)

// Stream identifies the terminal stream an event was captured from.
type Stream int

const (
	StreamStdin Stream = iota
	StreamStdout
	StreamStderr
)

// Event is a chunk of terminal I/O.
type Event struct {
	Time   time.Time
	Stream Stream
	Data   []byte
}

// LogSink receives log events.
type LogSink func(e *Event) error

// LogSource adapts log readers.
type LogSource interface {
	// Next fetches the next available event. It returns io.EOF if the source
	// has no more events.
	Next() (*Event, error)
}

// NewRealTimePlayback plays back the events with the delays they were
// recorded with. If maxSleep > 0, it's used as the maximum duration to pause.
func NewRealTimePlayback(maxSleep time.Duration, next LogSink) LogSink {
	var once sync.Once
	var prev time.Time

	return func(e *Event) error {
		once.Do(func() {
			prev = e.Time
		})

		delay := e.Time.Sub(prev)
		prev = e.Time

		if maxSleep > 0 && delay > maxSleep {
			delay = maxSleep
		}
		if delay > 0 {
			time.Sleep(delay)
		}

		return next(e)
	}
}

// NewClientOutput writes stdout and stderr to the given writer.
func NewClientOutput(w io.Writer) LogSink {
	return func(e *Event) error {
		if e.Stream == StreamStdin {
			return nil
		}
		_, err := w.Write(e.Data)
		return err
	}
}

// Replay reads a stream of events to a callback.
func Replay(recording LogSource, callback LogSink) error {
	for {
		e, err := recording.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := callback(e); err != nil {
			return err
		}
	}
}

// Recorder tees the streams of a VIO into a LogSink.
type Recorder struct {
	*vos.VIOAdapter

	mutex  sync.Mutex
	clock  func() time.Time
	output LogSink
	err    error
}

var _ vos.VIO = (*Recorder)(nil)

// NewRecorder creates a recorder that forwards all I/O of toWrap to output.
// A nil clock uses time.Now.
func NewRecorder(toWrap vos.VIO, clock func() time.Time, output LogSink) *Recorder {
	if clock == nil {
		clock = time.Now
	}

	recorder := &Recorder{
		clock:  clock,
		output: output,
	}

	recorder.VIOAdapter = vos.NewVIOAdapter(
		&recorderReader{r: recorder, stream: StreamStdin, wrapped: toWrap.Stdin()},
		&recorderWriter{r: recorder, stream: StreamStdout, wrapped: toWrap.Stdout()},
		&recorderWriter{r: recorder, stream: StreamStderr, wrapped: toWrap.Stderr()},
	)

	return recorder
}

// Err returns the first error the sink reported. Sink failures never
// interrupt the session.
func (r *Recorder) Err() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.err
}

func (r *Recorder) record(stream Stream, data []byte) {
	if len(data) == 0 {
		return
	}

	e := &Event{
		Time:   r.clock(),
		Stream: stream,
		Data:   append([]byte(nil), data...),
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.err != nil {
		return
	}
	r.err = r.output(e)
}

type recorderReader struct {
	r       *Recorder
	stream  Stream
	wrapped io.Reader
}

func (rr *recorderReader) Read(p []byte) (int, error) {
	n, err := rr.wrapped.Read(p)
	rr.r.record(rr.stream, p[:n])
	return n, err
}

type recorderWriter struct {
	r       *Recorder
	stream  Stream
	wrapped io.Writer
}

func (rw *recorderWriter) Write(p []byte) (int, error) {
	n, err := rw.wrapped.Write(p)
	rw.r.record(rw.stream, p[:n])
	return n, err
}
