package sim

import "fmt"

// Precision is the numeric format fed to the tensor core model.
type Precision int

const (
	PrecisionFP32 Precision = iota
	PrecisionFP16
	PrecisionINT8
)

// AllPrecisions in cycling order for the toggle-style control.
var AllPrecisions = []Precision{PrecisionFP32, PrecisionFP16, PrecisionINT8}

func (p Precision) String() string {
	switch p {
	case PrecisionFP32:
		return "FP32"
	case PrecisionFP16:
		return "FP16"
	case PrecisionINT8:
		return "INT8"
	default:
		return "FP32"
	}
}

// Multiplier returns the throughput scaling for the precision: lower
// precision packs more operations per cycle.
func (p Precision) Multiplier() float64 {
	switch p {
	case PrecisionFP16:
		return 2
	case PrecisionINT8:
		return 4
	default:
		return 1
	}
}

// progressRate is the animated counter's advance per tick; lower precision
// visibly finishes sooner. Visualization only, not part of the throughput
// formula.
func (p Precision) progressRate() float64 {
	switch p {
	case PrecisionFP16:
		return 4
	case PrecisionINT8:
		return 8
	default:
		return 2
	}
}

// tensorCoreBoost is the speedup of the matrix-multiply-accumulate unit
// over scalar execution.
const tensorCoreBoost = 8.0

// TensorThroughput is the pure model: ops for one size×size matrix multiply,
// scaled by precision packing and the tensor core boost.
func TensorThroughput(matrixSize int, p Precision) float64 {
	if matrixSize < 2 {
		matrixSize = 2
	}
	if matrixSize > 4 {
		matrixSize = 4
	}
	baseOps := float64(matrixSize * matrixSize * matrixSize * 2)
	return baseOps * p.Multiplier() * tensorCoreBoost
}

// TensorCore wraps the throughput model plus the animated compute counter.
type TensorCore struct {
	MatrixSize int // 2, 3, or 4
	Precision  Precision

	progress  float64 // 0..100, monotonic per run
	computing bool
}

// NewTensorCore returns the engine at its lesson defaults.
func NewTensorCore() *TensorCore {
	return &TensorCore{MatrixSize: 4}
}

func (t *TensorCore) ID() string { return "tensorcore" }

// Throughput returns ops/cycle for the current inputs.
func (t *TensorCore) Throughput() float64 {
	return TensorThroughput(t.MatrixSize, t.Precision)
}

// StartCompute kicks off the animated progress counter from zero.
func (t *TensorCore) StartCompute() {
	t.progress = 0
	t.computing = true
}

// Progress returns the animated counter, 0..100.
func (t *TensorCore) Progress() float64 { return t.progress }

// Running reports whether the progress animation is still advancing.
func (t *TensorCore) Running() bool { return t.computing }

// Step advances the progress counter; it halts at 100.
func (t *TensorCore) Step() {
	if !t.computing {
		return
	}
	t.progress += t.Precision.progressRate()
	if t.progress >= 100 {
		t.progress = 100
		t.computing = false
	}
}

func (t *TensorCore) Controls() []Control {
	return []Control{
		{
			Name: "Matrix size", Unit: "×N", Min: 2, Max: 4, Step: 1,
			Value: func() float64 { return float64(t.MatrixSize) },
			Set:   func(v float64) { t.MatrixSize = int(v) },
		},
		{
			Name: "Precision", Unit: "", Min: 0, Max: float64(len(AllPrecisions) - 1), Step: 1,
			Value: func() float64 { return float64(t.Precision) },
			Set: func(v float64) {
				i := int(v)
				if i < 0 || i >= len(AllPrecisions) {
					i = 0
				}
				t.Precision = AllPrecisions[i]
			},
		},
	}
}

func (t *TensorCore) Toggles() []Toggle { return nil }

func (t *TensorCore) Actions() []Action {
	return []Action{
		{Key: "c", Label: "Run compute", Do: t.StartCompute},
	}
}

func (t *TensorCore) Readouts() []Readout {
	state := "idle"
	level := LevelInfo
	if t.computing {
		state = "computing"
		level = LevelWarn
	} else if t.progress >= 100 {
		state = "done"
		level = LevelGood
	}
	return []Readout{
		{Label: "Precision", Value: t.Precision.String(), Level: LevelInfo},
		{Label: "Throughput", Value: fmt.Sprintf("%.0f ops/cycle", t.Throughput()), Level: LevelGood},
		{Label: "Compute", Value: fmt.Sprintf("%s %.0f%%", state, t.progress), Level: level},
	}
}

func (t *TensorCore) Snapshot() map[string]float64 {
	return map[string]float64{
		"matrix_size": float64(t.MatrixSize),
		"precision":   float64(t.Precision),
	}
}

func (t *TensorCore) Restore(raw map[string]float64) {
	if v, ok := raw["matrix_size"]; ok {
		t.MatrixSize = int(clamp(v, 2, 4))
	}
	if v, ok := raw["precision"]; ok {
		i := int(v)
		if i >= 0 && i < len(AllPrecisions) {
			t.Precision = AllPrecisions[i]
		}
	}
}
