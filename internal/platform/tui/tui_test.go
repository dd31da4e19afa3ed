package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reone-boardgame/palette-roulette/internal/config"
	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/host"
	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Runtime: core.RuntimeConfig{ViewportW: 960, ViewportH: 528, TickRate: 60, Seed: 11},
		Runner:  config.DefaultRunnerConfig(),
	})
}

// newClockedModel returns a model whose long presses are timed by a manual
// clock, plus a recorder of every host event.
func newClockedModel(t *testing.T) (Model, *core.ManualClock, *host.Recorder) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	rec := &host.Recorder{}
	m := NewModel(Options{
		Runtime: core.RuntimeConfig{ViewportW: 960, ViewportH: 528, TickRate: 60, Seed: 11},
		Runner:  config.DefaultRunnerConfig(),
		Host:    rec,
		Clock:   clock,
	})
	return m, clock, rec
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestScreenRendererArea(t *testing.T) {
	s := core.NewScreen(80, 22)
	r := NewScreenRenderer(s, 12, 24)

	tests := []struct {
		name string
		rect core.Rect
		want core.Area
	}{
		{"aligned", core.NewRect(120, 48, 24, 48), core.Area{X: 10, Y: 2, W: 2, H: 2}},
		{"partial cells round out", core.NewRect(100, 328, 73.6, 120), core.Area{X: 8, Y: 13, W: 7, H: 6}},
		{"tiny rect covers a cell", core.NewRect(13, 25, 1, 1), core.Area{X: 1, Y: 1, W: 1, H: 1}},
		{"clipped left", core.NewRect(-50, 0, 74, 24), core.Area{X: 0, Y: 0, W: 2, H: 1}},
		{"off screen", core.NewRect(2000, 0, 80, 80), core.Area{X: 80, Y: 0, W: 0, H: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.area(tc.rect); got != tc.want {
				t.Errorf("area(%+v) = %+v, expected %+v", tc.rect, got, tc.want)
			}
		})
	}

	w, h := r.Viewport()
	if w != 960 || h != 528 {
		t.Errorf("Viewport() = %dx%d, expected 960x528", w, h)
	}
}

func TestScreenRendererDraws(t *testing.T) {
	s := core.NewScreen(80, 22)
	r := NewScreenRenderer(s, 12, 24)

	r.Clear(core.Size{W: 960, H: 528})
	r.Ground(core.NewRect(0, 448, 960, 80))
	if s.GetCell(0, 18).Rune != GrassChar || s.GetCell(0, 19).Rune != GroundChar {
		t.Errorf("ground rows = %q / %q", s.Row(18), s.Row(19))
	}

	// pit spanning cells 20..29 fully, partial at both ends
	r.Pit(core.NewRect(235, 448, 130, 80))
	if s.GetCell(20, 19).Rune != ' ' || s.GetCell(29, 19).Rune != ' ' {
		t.Error("pit interior should be blank")
	}
	if s.GetCell(19, 19).Rune != GroundChar || s.GetCell(30, 19).Rune != GroundChar {
		t.Error("partially covered edge cells should stay ground")
	}

	r.Block(core.NewRect(480, 368, 80, 80))
	if s.GetCell(40, 16).Rune != BlockChar || s.GetCell(40, 16).Color != core.ColorGreen {
		t.Errorf("block cell = %+v", s.GetCell(40, 16))
	}

	r.Player(core.NewRect(100, 328, 73.6, 120), true)
	if s.GetCell(8, 18).Rune != LegLeft || s.GetCell(14, 18).Rune != LegRight {
		t.Errorf("grounded player should show legs, row = %q", s.Row(18))
	}

	r.Score(core.Point{X: 20, Y: 40}, 12)
	if !strings.HasPrefix(s.Row(0)[1:], "Score: 12") {
		t.Errorf("score row = %q", s.Row(0))
	}

	r.Marker(136.8)
	for y := 0; y < s.Height(); y++ {
		if s.GetCell(11, y).Rune != MarkerChar {
			t.Fatalf("marker missing at row %d", y)
		}
	}
}

func TestScreenRendererSun(t *testing.T) {
	s := core.NewScreen(20, 10)
	r := NewScreenRenderer(s, 12, 24)
	r.Sun(core.Point{X: 100, Y: 100}, 40)

	// cell (8,4) has center (102, 108), inside the radius
	if s.GetCell(8, 4).Rune != SunChar {
		t.Error("sun center cell should be filled")
	}
	if s.GetCell(0, 0).Rune == SunChar || s.GetCell(15, 4).Rune == SunChar {
		t.Error("cells outside the radius should stay empty")
	}
}

func TestKeyMapByPhase(t *testing.T) {
	k := DefaultKeyMap()
	space := tea.KeyMsg{Type: tea.KeySpace}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEscape}

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		phase      runner.Phase
		wantIntent Intent
		wantAction core.Action
	}{
		{"space starts", space, runner.PhaseStart, IntentAction, core.ActionStart},
		{"enter starts", enter, runner.PhaseStart, IntentAction, core.ActionStart},
		{"esc dismisses", esc, runner.PhaseStart, IntentAction, core.ActionClose},
		{"space taps", space, runner.PhaseRunning, IntentTap, core.ActionPressStart},
		{"up taps", tea.KeyMsg{Type: tea.KeyUp}, runner.PhaseRunning, IntentTap, core.ActionPressStart},
		{"enter holds", enter, runner.PhaseRunning, IntentHold, core.ActionPressStart},
		{"r restarts", runes("r"), runner.PhaseRunning, IntentAction, core.ActionRestart},
		{"a adopts", runes("a"), runner.PhaseGameOver, IntentAction, core.ActionAdopt},
		{"enter adopts", enter, runner.PhaseGameOver, IntentAction, core.ActionAdopt},
		{"space ignored at game over", space, runner.PhaseGameOver, IntentNone, core.ActionNone},
		{"q quits anywhere", runes("q"), runner.PhaseRunning, IntentQuit, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, runner.PhaseStart, IntentQuit, core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent, action := k.MapKey(tc.msg, tc.phase)
			if intent != tc.wantIntent || action != tc.wantAction {
				t.Errorf("MapKey() = %v/%v, expected %v/%v", intent, action, tc.wantIntent, tc.wantAction)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	if got := len(k.ForPhase(runner.PhaseRunning).ShortHelp()); got != 4 {
		t.Errorf("running help has %d bindings, expected 4", got)
	}
	if k.ForPhase(runner.PhaseGameOver).ShortHelp()[0].Help().Desc != "use colors" {
		t.Error("game over help should lead with adopting the colors")
	}
	if len(k.FullHelp()) != 2 {
		t.Error("full help should have two columns")
	}
}

func TestModelStartAndTick(t *testing.T) {
	m := newTestModel(t)
	if m.phase() != runner.PhaseStart {
		t.Fatalf("phase = %v, expected start", m.phase())
	}
	if !strings.Contains(m.View(), "PALETTE ROULETTE") {
		t.Error("start screen should show the title")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.phase() != runner.PhaseRunning {
		t.Fatalf("phase = %v, expected running", m.phase())
	}
	if cmd == nil || !m.ticking {
		t.Fatal("starting a run should schedule a frame")
	}

	// Another input while a tick is pending must not schedule a second one
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.ticking {
		t.Error("tick state lost")
	}

	m, cmd = update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("running frame should request the next one")
	}
	if m.game.Status().Frame != 1 {
		t.Errorf("frame = %d, expected 1", m.game.Status().Frame)
	}
}

func runUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 20000 && m.phase() != runner.PhaseGameOver; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if m.phase() != runner.PhaseGameOver {
		t.Fatal("run never ended")
	}
	return m
}

func TestModelAdoptTheme(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runUntilOver(t, m)

	if !m.result.Played {
		t.Fatal("game over should be recorded")
	}
	if m.ticking {
		t.Error("no frame should be pending after game over")
	}
	if !strings.Contains(m.footer(), m.game.Status().Theme.Main.Hex()) {
		t.Error("footer should show the main color")
	}

	m, cmd := update(t, m, runes("a"))
	if cmd == nil || !m.quitting {
		t.Fatal("adopting should quit")
	}
	res := m.Result()
	if !res.Adopted || !res.Closed {
		t.Errorf("result = %+v, expected adopted and closed", res)
	}
	if res.Theme != m.game.Status().Theme {
		t.Errorf("adopted theme %+v, expected %+v", res.Theme, m.game.Status().Theme)
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelCloseWithoutAdopting(t *testing.T) {
	m, _, rec := newClockedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = runUntilOver(t, m)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil || !m.quitting {
		t.Fatal("closing should quit")
	}
	res := m.Result()
	if res.Adopted || !res.Closed {
		t.Errorf("result = %+v, expected closed without adopting", res)
	}
	if n := rec.Count(runner.EventCloseModal); n != 1 {
		t.Errorf("close events = %d, expected 1", n)
	}
	if rec.Count(runner.EventSetTheme) != 0 {
		t.Error("closing must not send the colors")
	}
}

func TestModelMouse(t *testing.T) {
	m, clock, _ := newClockedModel(t)
	box := startBox(m.screen.Width(), m.screen.Height())

	// release on the start screen does nothing
	m, _ = update(t, m, tea.MouseMsg{X: box.X + 1, Y: box.Y + 1, Action: tea.MouseActionRelease})
	if m.phase() != runner.PhaseStart {
		t.Fatal("release should not start the run")
	}

	m, _ = update(t, m, tea.MouseMsg{X: box.X + 1, Y: box.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.phase() != runner.PhaseRunning {
		t.Fatal("click inside the box should start the run")
	}
	if m.game.Status().Pressed {
		t.Error("the starting click must not latch a jump")
	}

	m, _ = update(t, m, TickMsg{}) // land
	if !m.game.Status().OnGround {
		t.Fatal("player should be grounded after the first frame")
	}

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	st := m.game.Status()
	if st.OnGround || !st.Pressed {
		t.Fatalf("press should jump and latch, status = %+v", st)
	}

	clock.Advance(200 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})
	if !m.game.Status().Boosted {
		t.Error("holding past the long press should boost the jump")
	}

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease})
	if m.game.Status().Pressed {
		t.Error("release should clear the latched press")
	}

	// Outside click on a fresh start screen dismisses
	d := newTestModel(t)
	d, _ = update(t, d, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !d.Result().Closed || !d.quitting {
		t.Errorf("click outside the start box should close, result = %+v", d.Result())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.screen.Width() != 50 || m.screen.Height() != 18 {
		t.Errorf("screen = %dx%d, expected 50x18", m.screen.Width(), m.screen.Height())
	}
	st := m.game.Status()
	if st.Viewport != (core.Size{W: 600, H: 432}) {
		t.Errorf("viewport = %+v, expected 600x432", st.Viewport)
	}
	if st.Phase != runner.PhaseRunning || st.Frame != 0 {
		t.Errorf("resize should start a fresh run, got %+v", st)
	}
	if !m.game.JumpButtonVisible() || !strings.Contains(m.footer(), "JUMP") {
		t.Error("narrow terminal should show the jump control")
	}
}

func TestModelKeyHold(t *testing.T) {
	m, clock, _ := newClockedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{}) // land

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.holdID != 1 {
		t.Fatal("hold should schedule a release")
	}
	st := m.game.Status()
	if st.OnGround || !st.Pressed {
		t.Fatalf("hold should jump and latch, status = %+v", st)
	}

	clock.Advance(100 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})
	if m.game.Status().Boosted {
		t.Fatal("boost must wait for the long press threshold")
	}

	clock.Advance(100 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})
	if !m.game.Status().Boosted {
		t.Error("holding past the long press should boost the jump")
	}

	// a stale release from an older hold is ignored
	m, _ = update(t, m, releaseMsg{id: 0})
	if !m.game.Status().Pressed {
		t.Error("stale release must not end the hold")
	}
	m, _ = update(t, m, releaseMsg{id: 1})
	if m.game.Status().Pressed {
		t.Error("release should clear the latched press")
	}
}

func TestModelTapDoesNotBoost(t *testing.T) {
	m, clock, _ := newClockedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{}) // land

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	st := m.game.Status()
	if st.OnGround || st.Pressed {
		t.Fatalf("tap should jump without latching, status = %+v", st)
	}

	clock.Advance(200 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})
	if m.game.Status().Boosted {
		t.Error("a tap must not boost")
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "a", core.ColorGreen)
	s.DrawText(1, 0, "b", core.ColorGreen)
	s.DrawText(2, 0, "cd", core.ColorBrightRed)
	s.DrawText(0, 1, "wxyz", core.Color(200)) // unknown colors fall back to the default

	// Tests run without a color profile, so styling adds no escapes
	if got, want := RenderScreen(s), "abcd\nwxyz"; got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}
