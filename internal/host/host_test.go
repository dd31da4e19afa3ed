package host

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/palette"
	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

var (
	red  = palette.RGB{R: 255}
	cyan = palette.RGB{G: 255, B: 255}
)

func TestJSONLinesWireFormat(t *testing.T) {
	tests := []struct {
		name  string
		event runner.Event
		want  string
	}{
		{
			"scroll",
			runner.ScrollUpdate{BottomSpeed: 5, TopSpeed: 1},
			`{"type":"scrollUpdate","bottomSpeed":5,"topSpeed":1}`,
		},
		{
			"game ended",
			runner.GameEnded{Score: 3, Main: cyan, Sub: red, MarkerX: 136.8, Cause: runner.CauseFall},
			`{"type":"gameEnded","score":3,"mainColor":"rgb(0, 255, 255)","subColor":"rgb(255, 0, 0)","markerX":136.8,"cause":"fall"}`,
		},
		{
			"theme",
			runner.ThemeAdopted{Main: cyan, Sub: red},
			`{"type":"setThemeColors","mainColor":"rgb(0, 255, 255)","subColor":"rgb(255, 0, 0)"}`,
		},
		{
			"close",
			runner.ModalCloseRequested{},
			`"closeGameModal"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			j := NewJSONLines(&buf)
			j.Send(tc.event)
			if err := j.Err(); err != nil {
				t.Fatalf("Send() error: %v", err)
			}
			if got := buf.String(); got != tc.want+"\n" {
				t.Errorf("wire = %q, expected %q", got, tc.want+"\n")
			}
		})
	}
}

func TestJSONLinesSkipScroll(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONLines(&buf)
	j.SkipScroll = true

	j.Send(runner.ScrollUpdate{BottomSpeed: 5, TopSpeed: 1})
	j.Send(runner.ModalCloseRequested{})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || lines[0] != `"closeGameModal"` {
		t.Errorf("lines = %q, expected only the close message", lines)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestJSONLinesStopsAfterError(t *testing.T) {
	w := &failingWriter{}
	j := NewJSONLines(w)

	j.Send(runner.ModalCloseRequested{})
	j.Send(runner.ModalCloseRequested{})

	if err := j.Err(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Err() = %v, expected the write error", err)
	}
	if w.n != 1 {
		t.Errorf("writes = %d, expected 1", w.n)
	}
}

func TestLogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	l := NewLog(logger)

	l.Send(runner.ScrollUpdate{BottomSpeed: 5, TopSpeed: 1})
	if buf.Len() != 0 {
		t.Errorf("scroll updates should be debug only, got %q", buf.String())
	}

	l.Send(runner.GameEnded{Score: 7, Main: cyan, Sub: red})
	out := buf.String()
	if !strings.Contains(out, "game ended") || !strings.Contains(out, "score=7") {
		t.Errorf("log output = %q", out)
	}
}

func TestMultiAndRecorder(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	m := Multi{a, nil, b}

	m.Send(runner.ScrollUpdate{BottomSpeed: 5})
	m.Send(runner.ThemeAdopted{Main: cyan, Sub: red})
	m.Send(runner.ModalCloseRequested{})

	for _, r := range []*Recorder{a, b} {
		if len(r.Events()) != 3 {
			t.Fatalf("recorded %d events, expected 3", len(r.Events()))
		}
		if r.Count(runner.EventSetTheme) != 1 {
			t.Error("expected one theme event")
		}
		last, ok := r.Last(runner.EventSetTheme)
		if !ok || last.(runner.ThemeAdopted).Main != cyan {
			t.Errorf("Last() = %v, %v", last, ok)
		}
	}

	a.Reset()
	if len(a.Events()) != 0 {
		t.Error("Reset() should clear events")
	}
	if _, ok := a.Last(runner.EventCloseModal); ok {
		t.Error("Last() on an empty recorder should report false")
	}
}

func TestRecorderAsGameHost(t *testing.T) {
	rec := &Recorder{}
	var buf bytes.Buffer
	clock := core.NewManualClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	g := runner.New(config.DefaultRunnerConfig(),
		runner.WithClock(clock),
		runner.WithHost(Multi{rec, NewJSONLines(&buf)}))
	g.Reset(core.RuntimeConfig{ViewportW: 960, ViewportH: 528, TickRate: 60, Seed: 9})

	res := runner.Simulate(g, clock, runner.NewAutopilot(), 2000)

	if got := rec.Count(runner.EventScrollUpdate); got != res.Frames {
		t.Errorf("scroll updates = %d, expected one per frame (%d)", got, res.Frames)
	}
	wantEnded := 0
	if res.Status.Phase == runner.PhaseGameOver {
		wantEnded = 1
	}
	if got := rec.Count(runner.EventGameEnded); got != wantEnded {
		t.Errorf("game ended events = %d, expected %d", got, wantEnded)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != len(rec.Events()) {
		t.Errorf("wire lines = %d, expected %d", lines, len(rec.Events()))
	}
}
