package sim

// Level grades a readout for display emphasis.
type Level int

const (
	LevelInfo Level = iota
	LevelGood
	LevelWarn
	LevelBad
)

// Control describes one bounded numeric input. The closures read and write
// the engine's state so the view layer can render any engine generically.
type Control struct {
	Name  string
	Unit  string
	Min   float64
	Max   float64
	Step  float64
	Value func() float64
	Set   func(float64)
}

// Adjust moves the control by n steps, clamped to its range.
func (c Control) Adjust(n int) {
	v := c.Value() + float64(n)*c.Step
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	c.Set(v)
}

// Percent returns the control's position in its range, for slider display.
func (c Control) Percent() float64 {
	if c.Max <= c.Min {
		return 0
	}
	return (c.Value() - c.Min) / (c.Max - c.Min)
}

// Toggle describes one boolean input.
type Toggle struct {
	Name string
	On   func() bool
	Set  func(bool)
}

// Readout is one derived quantity formatted for display.
type Readout struct {
	Label string
	Value string
	Level Level
}

// Engine is the common surface every simulation exposes to the view layer
// and the snapshot layer. Derived outputs are pure functions of the inputs;
// raw inputs round-trip through Snapshot/Restore, outputs are always
// re-derivable.
type Engine interface {
	ID() string
	Controls() []Control
	Toggles() []Toggle
	Readouts() []Readout
	Snapshot() map[string]float64
	Restore(map[string]float64)
}

// Stepper marks engines with a time-evolving sub-simulation that advances
// on a periodic tick while Running reports true.
type Stepper interface {
	Step()
	Running() bool
}

// Action is a one-shot engine operation bound to a key, like resetting an
// accumulator or kicking off a compute run.
type Action struct {
	Key   string
	Label string
	Do    func()
}

// Actor marks engines that expose one-shot actions beyond their controls.
type Actor interface {
	Actions() []Action
}

func snapBool(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func restoreBool(v float64) bool {
	return v != 0
}
