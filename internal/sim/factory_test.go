package sim

import (
	"math/rand"
	"testing"
)

func TestForLessonKnownEngines(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, id := range []string{"cavitation", "straingauge", "tensorcore", "overlay"} {
		e, err := ForLesson(id, rng)
		if err != nil {
			t.Fatalf("ForLesson(%q): %v", id, err)
		}
		if e.ID() != id {
			t.Errorf("engine for %q reports ID %q", id, e.ID())
		}
		// The generic surface must be usable blind: every control's getter
		// and setter round-trips, and readouts render.
		for _, c := range e.Controls() {
			v := c.Value()
			c.Set(v)
			if c.Value() != v {
				t.Errorf("%s/%s: set did not round-trip", id, c.Name)
			}
		}
		for _, tg := range e.Toggles() {
			on := tg.On()
			tg.Set(!on)
			if tg.On() == on {
				t.Errorf("%s/%s: toggle did not flip", id, tg.Name)
			}
			tg.Set(on)
		}
		if len(e.Readouts()) == 0 {
			t.Errorf("%s: no readouts", id)
		}
		e.Restore(e.Snapshot())
	}
}

func TestForLessonUnknown(t *testing.T) {
	if _, err := ForLesson("warpdrive", nil); err == nil {
		t.Fatal("expected error for unknown lesson")
	}
}

func TestControlAdjustClamps(t *testing.T) {
	e := NewOverlay()
	c := e.Controls()[0] // Overlay X, -20..20 step 1
	c.Set(20)
	c.Adjust(1)
	if c.Value() != 20 {
		t.Errorf("adjust past max: %v", c.Value())
	}
	c.Set(-20)
	c.Adjust(-1)
	if c.Value() != -20 {
		t.Errorf("adjust past min: %v", c.Value())
	}
	c.Set(0)
	c.Adjust(3)
	if c.Value() != 3 {
		t.Errorf("adjust by 3 steps: %v", c.Value())
	}
}
