package sim

import (
	"fmt"
	"math"
)

// Rand is the random source injected into stochastic simulations so spawn
// and prune sequences are reproducible. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Bubble is one vapor bubble in the cavitation population.
type Bubble struct {
	ID         int
	Angle      float64 // degrees around the propeller
	Dist       float64 // distance from hub, in diagram units
	Radius     float64
	Growing    bool
	Collapsing bool
	Collapsed  bool
}

// Cavitation propeller tuning. The bubble lifecycle is the one genuinely
// time-stepped sub-simulation: bubbles spawn stochastically, grow, collapse,
// and are pruned, feeding a monotonic-until-reset damage accumulator.
const (
	cavitationMaxBubbles = 31
	cavitationSpawnSpeed = 50.0 // RPM above which bubbles can spawn
	cavitationDamageRPM  = 70.0 // RPM above which collapses erode the blade
	bubbleGrowthStep     = 0.6
	bubbleCollapseAt     = 12.0
	bubbleCollapseFactor = 0.8
	bubbleGoneBelow      = 1.0
	bubblePruneChance    = 0.1
	damageStep           = 2.0
	damageMax            = 100.0
	bubbleBandInner      = 26.0
	bubbleBandWidth      = 10.0
)

// Cavitation models propeller-driven bubble formation and collapse.
type Cavitation struct {
	rng Rand

	// SpeedRPM is the single slider input, 0..100.
	SpeedRPM float64

	angle   float64
	damage  float64
	bubbles []Bubble
	nextID  int
}

// NewCavitation creates the engine with an injected random source.
func NewCavitation(rng Rand) *Cavitation {
	return &Cavitation{rng: rng}
}

func (c *Cavitation) ID() string { return "cavitation" }

// Running reports whether the periodic tick should be active.
func (c *Cavitation) Running() bool {
	return c.SpeedRPM > 0
}

// Step advances the simulation one animation tick.
func (c *Cavitation) Step() {
	c.angle = math.Mod(c.angle+c.SpeedRPM, 360)

	if c.SpeedRPM > cavitationSpawnSpeed && c.rng.Float64() < c.SpeedRPM/200 {
		c.spawn()
	}

	kept := c.bubbles[:0]
	for _, b := range c.bubbles {
		switch {
		case b.Growing:
			b.Radius += bubbleGrowthStep
			if b.Radius >= bubbleCollapseAt {
				b.Growing = false
				b.Collapsing = true
			}
		case b.Collapsing:
			b.Radius *= bubbleCollapseFactor
			if b.Radius < bubbleGoneBelow {
				b.Collapsing = false
				b.Collapsed = true
				if c.SpeedRPM > cavitationDamageRPM {
					c.damage = math.Min(c.damage+damageStep, damageMax)
				}
			}
		case b.Collapsed:
			// Weighted choice against the injected source, so prune
			// sequences replay deterministically.
			if c.rng.Float64() < bubblePruneChance {
				continue
			}
		}
		kept = append(kept, b)
	}
	c.bubbles = kept
}

func (c *Cavitation) spawn() {
	b := Bubble{
		ID:      c.nextID,
		Angle:   c.rng.Float64() * 360,
		Dist:    bubbleBandInner + c.rng.Float64()*bubbleBandWidth,
		Radius:  1,
		Growing: true,
	}
	c.nextID++
	c.bubbles = append(c.bubbles, b)
	// Retain only the most recent bubbles.
	if len(c.bubbles) > cavitationMaxBubbles {
		c.bubbles = c.bubbles[len(c.bubbles)-cavitationMaxBubbles:]
	}
}

// Angle returns the current propeller angle in degrees.
func (c *Cavitation) Angle() float64 { return c.angle }

// Damage returns the cumulative blade damage, 0..100.
func (c *Cavitation) Damage() float64 { return c.damage }

// ResetDamage clears the damage accumulator. Explicit user action; nothing
// else ever decreases damage inside a session.
func (c *Cavitation) ResetDamage() { c.damage = 0 }

// Bubbles returns the live bubble population.
func (c *Cavitation) Bubbles() []Bubble { return c.bubbles }

func (c *Cavitation) Controls() []Control {
	return []Control{
		{
			Name: "Propeller speed", Unit: "RPM%", Min: 0, Max: 100, Step: 5,
			Value: func() float64 { return c.SpeedRPM },
			Set:   func(v float64) { c.SpeedRPM = v },
		},
	}
}

func (c *Cavitation) Toggles() []Toggle { return nil }

func (c *Cavitation) Actions() []Action {
	return []Action{
		{Key: "r", Label: "Reset damage", Do: c.ResetDamage},
	}
}

func (c *Cavitation) Readouts() []Readout {
	bubbleLevel := LevelInfo
	if c.SpeedRPM > cavitationSpawnSpeed {
		bubbleLevel = LevelWarn
	}
	damageLevel := LevelGood
	switch {
	case c.damage >= 60:
		damageLevel = LevelBad
	case c.damage >= 30:
		damageLevel = LevelWarn
	}
	return []Readout{
		{Label: "Active bubbles", Value: fmt.Sprintf("%d", len(c.bubbles)), Level: bubbleLevel},
		{Label: "Blade damage", Value: fmt.Sprintf("%.0f%%", c.damage), Level: damageLevel},
	}
}

func (c *Cavitation) Snapshot() map[string]float64 {
	return map[string]float64{
		"speed_rpm": c.SpeedRPM,
		"damage":    c.damage,
	}
}

func (c *Cavitation) Restore(raw map[string]float64) {
	if v, ok := raw["speed_rpm"]; ok {
		c.SpeedRPM = clamp(v, 0, 100)
	}
	if v, ok := raw["damage"]; ok {
		c.damage = clamp(v, 0, damageMax)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
