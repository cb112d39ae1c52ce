package lesson

// Gates supplies the lesson-specific pieces of the forward gate predicates.
// The zero value gates play phases on having been seen, which is the common
// case; lessons with a stricter rule (cavitation's damage threshold) set
// the ready funcs.
type Gates struct {
	// PlayReady, when non-nil, replaces the default "has been viewed"
	// predicate for the play phase.
	PlayReady func() bool

	// TwistPlayReady is the twist-arc mirror of PlayReady.
	TwistPlayReady func() bool
}

// CanAdvance evaluates the forward gate for the current phase. The
// "Continue" control is enabled only while this holds; GoNext enforces it
// as well.
func (c *Controller) CanAdvance() bool {
	s := c.session
	switch s.Current {
	case PhaseHook:
		return true
	case PhasePredict:
		return s.Prediction != ""
	case PhasePlay:
		if c.gates.PlayReady != nil {
			return c.gates.PlayReady()
		}
		return s.PlaySeen
	case PhaseReview:
		return true
	case PhaseTwistPredict:
		return s.TwistPrediction != ""
	case PhaseTwistPlay:
		if c.gates.TwistPlayReady != nil {
			return c.gates.TwistPlayReady()
		}
		return s.TwistPlaySeen
	case PhaseTwistReview:
		return true
	case PhaseTransfer:
		return s.Transfer.Unlocked()
	case PhaseTest:
		return s.Quiz.Passed()
	case PhaseMastery:
		// Terminal: nothing to advance to.
		return false
	default:
		return false
	}
}
