package sim

import (
	"math"
	"math/rand"
	"testing"
)

// scriptedRand replays a fixed sequence of values, then repeats the last
// one forever.
type scriptedRand struct {
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	if r.i >= len(r.values) {
		return r.values[len(r.values)-1]
	}
	v := r.values[r.i]
	r.i++
	return v
}

func TestNoBubblesAtLowSpeed(t *testing.T) {
	// Always-spawn random values, but speed at the cutoff: nothing spawns.
	c := NewCavitation(&scriptedRand{values: []float64{0}})
	c.SpeedRPM = 50
	for i := 0; i < 100; i++ {
		c.Step()
	}
	if len(c.Bubbles()) != 0 {
		t.Errorf("spawned %d bubbles at spawn-cutoff speed", len(c.Bubbles()))
	}
}

func TestBubbleLifecycle(t *testing.T) {
	// First value spawns (0.0 < speed/200); the tail blocks further spawns
	// and blocks pruning, so one bubble runs the whole lifecycle.
	c := NewCavitation(&scriptedRand{values: []float64{0, 0.5, 0.5, 0.99}})
	c.SpeedRPM = 60
	c.Step()
	if len(c.Bubbles()) != 1 {
		t.Fatalf("got %d bubbles, want 1", len(c.Bubbles()))
	}
	if !c.Bubbles()[0].Growing {
		t.Fatal("new bubble should be growing")
	}

	// Grow until the collapse threshold flips it.
	for i := 0; i < 200 && !c.Bubbles()[0].Collapsing && !c.Bubbles()[0].Collapsed; i++ {
		c.Step()
	}
	b := c.Bubbles()[0]
	if !b.Collapsing {
		t.Fatalf("bubble never started collapsing: %+v", b)
	}
	if b.Radius < bubbleCollapseAt {
		t.Errorf("flipped to collapsing below threshold: %.2f", b.Radius)
	}

	// Shrink to collapsed.
	for i := 0; i < 200 && !c.Bubbles()[0].Collapsed; i++ {
		c.Step()
	}
	if !c.Bubbles()[0].Collapsed {
		t.Fatal("bubble never collapsed")
	}
}

func TestDamageOnlyAboveDamageSpeed(t *testing.T) {
	run := func(speed float64) float64 {
		c := NewCavitation(&scriptedRand{values: []float64{0, 0.5, 0.5}})
		c.SpeedRPM = speed
		for i := 0; i < 500; i++ {
			c.Step()
		}
		return c.Damage()
	}

	if d := run(60); d != 0 {
		t.Errorf("damage at 60 RPM = %.1f, want 0", d)
	}
	if d := run(90); d <= 0 {
		t.Errorf("damage at 90 RPM = %.1f, want > 0", d)
	}
}

func TestDamageSaturatesAndResets(t *testing.T) {
	c := NewCavitation(rand.New(rand.NewSource(7)))
	c.SpeedRPM = 100
	for i := 0; i < 20000; i++ {
		c.Step()
	}
	if c.Damage() != damageMax {
		t.Errorf("damage = %.1f, want saturated at %.0f", c.Damage(), damageMax)
	}
	c.ResetDamage()
	if c.Damage() != 0 {
		t.Errorf("damage after reset = %.1f", c.Damage())
	}
}

func TestBubbleRetentionCap(t *testing.T) {
	// Spawn every tick.
	c := NewCavitation(&scriptedRand{values: []float64{0}})
	c.SpeedRPM = 100
	for i := 0; i < 500; i++ {
		c.Step()
		if n := len(c.Bubbles()); n > cavitationMaxBubbles {
			t.Fatalf("retained %d bubbles, cap is %d", n, cavitationMaxBubbles)
		}
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func() (float64, int, float64) {
		c := NewCavitation(rand.New(rand.NewSource(42)))
		c.SpeedRPM = 85
		for i := 0; i < 300; i++ {
			c.Step()
		}
		return c.Damage(), len(c.Bubbles()), c.Angle()
	}
	d1, n1, a1 := run()
	d2, n2, a2 := run()
	if d1 != d2 || n1 != n2 || a1 != a2 {
		t.Errorf("seeded runs diverged: (%v,%v,%v) vs (%v,%v,%v)", d1, n1, a1, d2, n2, a2)
	}
}

func TestAngleWraps(t *testing.T) {
	c := NewCavitation(&scriptedRand{values: []float64{0.99}})
	c.SpeedRPM = 100
	for i := 0; i < 50; i++ {
		c.Step()
		if a := c.Angle(); a < 0 || a >= 360 {
			t.Fatalf("angle out of range: %.2f", a)
		}
	}
}

func TestStepNeverProducesNaN(t *testing.T) {
	c := NewCavitation(rand.New(rand.NewSource(3)))
	for speed := 0.0; speed <= 100; speed += 10 {
		c.SpeedRPM = speed
		for i := 0; i < 200; i++ {
			c.Step()
		}
		if math.IsNaN(c.Damage()) || math.IsNaN(c.Angle()) {
			t.Fatalf("NaN at speed %.0f", speed)
		}
		for _, b := range c.Bubbles() {
			if math.IsNaN(b.Radius) || math.IsNaN(b.Angle) || math.IsNaN(b.Dist) {
				t.Fatalf("NaN bubble at speed %.0f: %+v", speed, b)
			}
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	c := NewCavitation(rand.New(rand.NewSource(1)))
	c.SpeedRPM = 80
	for i := 0; i < 1000; i++ {
		c.Step()
	}
	snap := c.Snapshot()

	fresh := NewCavitation(rand.New(rand.NewSource(2)))
	fresh.Restore(snap)
	if fresh.SpeedRPM != 80 {
		t.Errorf("restored speed = %.1f", fresh.SpeedRPM)
	}
	if fresh.Damage() != c.Damage() {
		t.Errorf("restored damage = %.1f, want %.1f", fresh.Damage(), c.Damage())
	}

	// Hostile values clamp.
	fresh.Restore(map[string]float64{"speed_rpm": 900, "damage": -5})
	if fresh.SpeedRPM != 100 || fresh.Damage() != 0 {
		t.Errorf("restore did not clamp: %.1f, %.1f", fresh.SpeedRPM, fresh.Damage())
	}
}
