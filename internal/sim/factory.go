package sim

import "fmt"

// ForLesson constructs the engine a lesson's play phases drive. The random
// source is only consumed by stochastic engines.
func ForLesson(lessonID string, rng Rand) (Engine, error) {
	switch lessonID {
	case "cavitation":
		return NewCavitation(rng), nil
	case "straingauge":
		return NewStrainGauge(), nil
	case "tensorcore":
		return NewTensorCore(), nil
	case "overlay":
		return NewOverlay(), nil
	default:
		return nil, fmt.Errorf("no simulation engine for lesson %q", lessonID)
	}
}
