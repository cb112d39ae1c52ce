package lesson

// Phase identifies one stage of the ten-stage lesson sequence.
type Phase string

const (
	PhaseHook         Phase = "hook"
	PhasePredict      Phase = "predict"
	PhasePlay         Phase = "play"
	PhaseReview       Phase = "review"
	PhaseTwistPredict Phase = "twist_predict"
	PhaseTwistPlay    Phase = "twist_play"
	PhaseTwistReview  Phase = "twist_review"
	PhaseTransfer     Phase = "transfer"
	PhaseTest         Phase = "test"
	PhaseMastery      Phase = "mastery"
)

// PhaseOrder is the fixed traversal order. It is never reordered at runtime;
// navigation indexes into this slice.
var PhaseOrder = []Phase{
	PhaseHook,
	PhasePredict,
	PhasePlay,
	PhaseReview,
	PhaseTwistPredict,
	PhaseTwistPlay,
	PhaseTwistReview,
	PhaseTransfer,
	PhaseTest,
	PhaseMastery,
}

// PhaseIndex returns the position of p in PhaseOrder, or -1 if p is not a
// valid phase.
func PhaseIndex(p Phase) int {
	for i, q := range PhaseOrder {
		if q == p {
			return i
		}
	}
	return -1
}

// ParsePhase validates a host-supplied phase string. Invalid values return
// ok=false; callers fall back to PhaseHook.
func ParsePhase(s string) (Phase, bool) {
	p := Phase(s)
	if PhaseIndex(p) < 0 {
		return "", false
	}
	return p, true
}

// Valid reports whether p is a member of the fixed phase list.
func (p Phase) Valid() bool {
	return PhaseIndex(p) >= 0
}

// NextPhase returns the phase after p, or ok=false when p is terminal or
// invalid.
func NextPhase(p Phase) (Phase, bool) {
	i := PhaseIndex(p)
	if i < 0 || i >= len(PhaseOrder)-1 {
		return "", false
	}
	return PhaseOrder[i+1], true
}

// PrevPhase returns the phase before p, or ok=false when p is first or
// invalid.
func PrevPhase(p Phase) (Phase, bool) {
	i := PhaseIndex(p)
	if i <= 0 {
		return "", false
	}
	return PhaseOrder[i-1], true
}

// Title returns a display name for the phase header.
func (p Phase) Title() string {
	switch p {
	case PhaseHook:
		return "Hook"
	case PhasePredict:
		return "Predict"
	case PhasePlay:
		return "Play"
	case PhaseReview:
		return "Review"
	case PhaseTwistPredict:
		return "Twist: Predict"
	case PhaseTwistPlay:
		return "Twist: Play"
	case PhaseTwistReview:
		return "Twist: Review"
	case PhaseTransfer:
		return "Real World"
	case PhaseTest:
		return "Test"
	case PhaseMastery:
		return "Mastery"
	default:
		return string(p)
	}
}
