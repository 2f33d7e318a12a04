package ttylog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// AsciicastFileExt holds the suggested file extension for asciicast files.
const AsciicastFileExt = "cast"

type asciicastHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

func writeJSONLine(w io.Writer, structure interface{}) error {
	line, err := json.Marshal(structure)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// NewAsciicastLogSink creates a LogSink compatible with the asciicast v2
// format. The header is written with the first event.
//
// See: https://github.com/asciinema/asciinema/blob/develop/doc/asciicast-v2.md
func NewAsciicastLogSink(w io.Writer, width, height int, term string) LogSink {
	var (
		start time.Time
		once  sync.Once
	)

	return func(e *Event) error {
		var headerErr error
		once.Do(func() {
			start = e.Time
			header := asciicastHeader{
				Version:   2,
				Width:     width,
				Height:    height,
				Timestamp: start.Unix(),
				Title:     "debsh session",
			}
			if term != "" {
				header.Env = map[string]string{"TERM": term, "SHELL": "/bin/bash"}
			}
			headerErr = writeJSONLine(w, header)
		})
		if headerErr != nil {
			return headerErr
		}

		// Asciicast has no stderr stream so it's collapsed into stdout.
		direction := "o"
		if e.Stream == StreamStdin {
			direction = "i"
		}

		offset := microsecondsToSeconds(e.Time.Sub(start).Microseconds())
		return writeJSONLine(w, &asciicastLogLine{offset, direction, string(e.Data)})
	}
}

// AsciicastLogSource reads events from an asciicast v2 recording.
type AsciicastLogSource struct {
	r      *bufio.Reader
	header asciicastHeader
	start  time.Time
	err    error
	once   sync.Once
}

var _ LogSource = (*AsciicastLogSource)(nil)

// NewAsciicastLogSource reads log events from an Asciicast formatted file.
func NewAsciicastLogSource(r io.Reader) *AsciicastLogSource {
	return &AsciicastLogSource{r: bufio.NewReader(r)}
}

func (src *AsciicastLogSource) readHeader() {
	line, err := src.r.ReadBytes('\n')
	if err != nil {
		src.err = fmt.Errorf("reading header: %w", err)
		return
	}
	if err := json.Unmarshal(line, &src.header); err != nil {
		src.err = fmt.Errorf("parsing header: %w", err)
		return
	}
	if src.header.Version != 2 {
		src.err = fmt.Errorf("unsupported asciicast version %d", src.header.Version)
		return
	}
	src.start = time.Unix(src.header.Timestamp, 0)
}

// Size returns the terminal dimensions the recording was made with.
func (src *AsciicastLogSource) Size() (width, height int, err error) {
	src.once.Do(src.readHeader)
	return src.header.Width, src.header.Height, src.err
}

// Next gets the next event, it returns io.EOF if there are no more.
func (src *AsciicastLogSource) Next() (*Event, error) {
	src.once.Do(src.readHeader)
	if src.err != nil {
		return nil, src.err
	}

	for {
		line, err := src.r.ReadBytes('\n')
		if err == io.EOF && len(line) > 0 {
			err = nil
		}
		if err != nil {
			return nil, err
		}

		if len(line) <= 1 {
			continue
		}

		var asciicastLine asciicastLogLine
		if err := json.Unmarshal(line, &asciicastLine); err != nil {
			return nil, err
		}

		var stream Stream
		switch asciicastLine.EventType {
		case "o":
			stream = StreamStdout
		case "i":
			stream = StreamStdin
		default:
			// skip markers and resize events
			continue
		}

		offset := time.Duration(secondsToMicroseconds(asciicastLine.TimeSeconds)) * time.Microsecond
		return &Event{
			Time:   src.start.Add(offset),
			Stream: stream,
			Data:   []byte(asciicastLine.EventData),
		}, nil
	}
}

type asciicastLogLine struct {
	TimeSeconds float64
	EventType   string
	EventData   string
}

func (l *asciicastLogLine) UnmarshalJSON(data []byte) error {
	var v []interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if count := len(v); count != 3 {
		return fmt.Errorf("malformed line, expected 3 entries got %d", count)
	}

	var timeOk, typeOk, dataOk bool
	l.TimeSeconds, timeOk = v[0].(float64)
	l.EventType, typeOk = v[1].(string)
	l.EventData, dataOk = v[2].(string)

	if !timeOk || !typeOk || !dataOk {
		return fmt.Errorf("malformed data in line: %q", v)
	}

	return nil
}

func (l *asciicastLogLine) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{l.TimeSeconds, l.EventType, l.EventData})
}

func microsecondsToSeconds(microseconds int64) (seconds float64) {
	return (float64(microseconds) * float64(time.Microsecond)) / float64(time.Second)
}

func secondsToMicroseconds(seconds float64) (microseconds int64) {
	return int64(seconds*float64(time.Second)) / int64(time.Microsecond)
}
