package logger

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
)

// LogEntry is a single recorded event as read back from the log.
type LogEntry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Event   string `json:"msg"`
	Session string `json:"session"`

	Command string `json:"command"`
	Args    string `json:"args"`
	Error   string `json:"error"`

	File     string  `json:"file"`
	Encoding string  `json:"encoding"`
	Displays flexInt `json:"displays"`
	Searches flexInt `json:"searches"`
}

// flexInt accepts both JSON numbers and numeric strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n = json.Number(s)
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

func NewReport() *Report {
	return &Report{
		HandlerFailure: NewPathCounter("command", "error"),
	}
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       int        `json:"sessions"`
	Events         StrCounter `json:"events"`
	InvalidEntries StrCounter `json:"unknown_log_entries"`

	RunCommand     StrCounter   `json:"command_names"`
	UnknownCommand StrCounter   `json:"unknown_commands"`
	HandlerFailure *PathCounter `json:"handler_failures"`
	Panic          PanicReport  `json:"panic_report"`
	Pager          PagerReport  `json:"pager_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	r.Events.Increment(le.Event)

	switch le.Event {
	case EventSessionStart:
		r.Sessions++
	case EventRunCommand:
		r.RunCommand.Increment(le.Command)
	case EventUnknownCommand:
		r.UnknownCommand.Increment(le.Command)
	case EventHandlerFailure:
		r.HandlerFailure.Increment(le.Command, le.Error)
	case EventPanic:
		r.Panic.update(le)
	case EventPagerSession:
		r.Pager.update(le)
	case EventSessionEnd:
		// Ignore
	default:
		r.InvalidEntries.Increment(le.Event)
	}
}

type PanicReport struct {
	Contexts []string `json:"contexts"`
}

func (r *PanicReport) update(le *LogEntry) {
	r.Contexts = append(r.Contexts, le.Args+": "+le.Error)
}

type PagerReport struct {
	Files     int        `json:"files"`
	Displays  int        `json:"displays"`
	Searches  int        `json:"searches"`
	Encodings StrCounter `json:"encodings"`
}

func (r *PagerReport) update(le *LogEntry) {
	r.Files++
	r.Displays += int(le.Displays)
	r.Searches += int(le.Searches)
	r.Encodings.Increment(le.Encoding)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts tuples of strings.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
