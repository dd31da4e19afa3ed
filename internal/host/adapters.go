package host

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

// JSONLines writes one JSON value per event, newline separated.
// Not safe for concurrent use.
type JSONLines struct {
	enc *json.Encoder
	err error

	// SkipScroll drops per-frame scroll updates.
	SkipScroll bool
}

// NewJSONLines creates a JSON-lines adapter writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

// Send encodes e. After the first write error, further events are dropped.
func (j *JSONLines) Send(e runner.Event) {
	if j.err != nil {
		return
	}
	if j.SkipScroll && e.Type() == runner.EventScrollUpdate {
		return
	}
	msg, err := Message(e)
	if err != nil {
		j.err = err
		return
	}
	if err := j.enc.Encode(msg); err != nil {
		j.err = fmt.Errorf("host: write %s: %w", e.Type(), err)
	}
}

// Err returns the first error encountered, if any.
func (j *JSONLines) Err() error {
	return j.err
}

// Log reports events through a structured logger. Scroll updates are logged
// at debug level since there is one per frame.
type Log struct {
	logger *log.Logger
}

// NewLog creates a logging adapter.
func NewLog(logger *log.Logger) *Log {
	return &Log{logger: logger}
}

// Send logs e.
func (l *Log) Send(e runner.Event) {
	switch ev := e.(type) {
	case runner.ScrollUpdate:
		l.logger.Debug("scroll", "bottom", ev.BottomSpeed, "top", ev.TopSpeed)
	case runner.GameEnded:
		l.logger.Info("game ended",
			"score", ev.Score,
			"cause", ev.Cause,
			"main", ev.Main.CSS(),
			"sub", ev.Sub.CSS(),
			"marker", ev.MarkerX)
	case runner.ThemeAdopted:
		l.logger.Info("theme adopted", "main", ev.Main.CSS(), "sub", ev.Sub.CSS())
	case runner.ModalCloseRequested:
		l.logger.Info("close requested")
	default:
		l.logger.Warn("unknown host event", "type", e.Type())
	}
}

// Multi fans events out to several channels in order.
type Multi []runner.HostChannel

// Send forwards e to every channel.
func (m Multi) Send(e runner.Event) {
	for _, h := range m {
		if h != nil {
			h.Send(e)
		}
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	events []runner.Event
}

// Send appends e.
func (r *Recorder) Send(e runner.Event) {
	r.events = append(r.events, e)
}

// Events returns the recorded events.
func (r *Recorder) Events() []runner.Event {
	return r.events
}

// Count returns how many events of the given wire type were recorded.
func (r *Recorder) Count(typ string) int {
	n := 0
	for _, e := range r.events {
		if e.Type() == typ {
			n++
		}
	}
	return n
}

// Last returns the most recent event of the given wire type.
func (r *Recorder) Last(typ string) (runner.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type() == typ {
			return r.events[i], true
		}
	}
	return nil, false
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}
