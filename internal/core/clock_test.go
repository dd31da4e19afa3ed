package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(150 * time.Millisecond)
	if got := c.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("after Advance, elapsed = %v, expected 150ms", got)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero InputFrame should be empty")
	}

	f.Set(ActionPressStart)
	if !f.Has(ActionPressStart) {
		t.Error("Has(PressStart) should be true after Set")
	}
	if f.Has(ActionPressEnd) {
		t.Error("Has(PressEnd) should be false")
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}
}

func TestActionString(t *testing.T) {
	if ActionPressStart.String() != "PressStart" {
		t.Errorf("String() = %q", ActionPressStart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
