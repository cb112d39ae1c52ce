package lesson

import "testing"

func TestPhaseOrderFixed(t *testing.T) {
	want := []Phase{
		PhaseHook, PhasePredict, PhasePlay, PhaseReview,
		PhaseTwistPredict, PhaseTwistPlay, PhaseTwistReview,
		PhaseTransfer, PhaseTest, PhaseMastery,
	}
	if len(PhaseOrder) != len(want) {
		t.Fatalf("phase order has %d entries, want %d", len(PhaseOrder), len(want))
	}
	for i, p := range want {
		if PhaseOrder[i] != p {
			t.Errorf("order[%d] = %q, want %q", i, PhaseOrder[i], p)
		}
		if PhaseIndex(p) != i {
			t.Errorf("index(%q) = %d, want %d", p, PhaseIndex(p), i)
		}
	}
}

func TestNextPrevPhase(t *testing.T) {
	for i, p := range PhaseOrder {
		next, ok := NextPhase(p)
		if i == len(PhaseOrder)-1 {
			if ok {
				t.Errorf("next(%q) = %q, want none at terminal", p, next)
			}
		} else if !ok || next != PhaseOrder[i+1] {
			t.Errorf("next(%q) = %q, %v", p, next, ok)
		}

		prev, ok := PrevPhase(p)
		if i == 0 {
			if ok {
				t.Errorf("prev(%q) = %q, want none at first", p, prev)
			}
		} else if !ok || prev != PhaseOrder[i-1] {
			t.Errorf("prev(%q) = %q, %v", p, prev, ok)
		}
	}
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		in    string
		want  Phase
		valid bool
	}{
		{"hook", PhaseHook, true},
		{"twist_predict", PhaseTwistPredict, true},
		{"mastery", PhaseMastery, true},
		{"", "", false},
		{"twist-predict", "", false},
		{"HOOK", "", false},
		{"bogus", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePhase(tt.in)
		if ok != tt.valid || got != tt.want {
			t.Errorf("ParsePhase(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.valid)
		}
	}
}
