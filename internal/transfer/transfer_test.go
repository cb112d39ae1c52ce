package transfer

import "testing"

func TestUnlockRequiresAllCards(t *testing.T) {
	tr := NewTracker(4)
	for i := 0; i < 4; i++ {
		if tr.Unlocked() {
			t.Fatalf("unlocked with %d/4 cards", i)
		}
		tr.Reveal(i)
	}
	if !tr.Unlocked() {
		t.Error("not unlocked after all cards revealed")
	}
}

func TestDuplicateRevealDoesNotDoubleCount(t *testing.T) {
	tr := NewTracker(4)
	tr.Reveal(1)
	tr.Reveal(1)
	tr.Reveal(1)
	if tr.Count() != 1 {
		t.Errorf("count = %d, want 1", tr.Count())
	}
	if tr.Unlocked() {
		t.Error("unlocked from duplicate reveals")
	}
}

func TestRevealOutOfRangeIgnored(t *testing.T) {
	tr := NewTracker(2)
	tr.Reveal(-1)
	tr.Reveal(2)
	tr.Reveal(100)
	if tr.Count() != 0 {
		t.Errorf("count = %d, want 0", tr.Count())
	}
}

func TestZeroCardTrackerStartsUnlocked(t *testing.T) {
	tr := NewTracker(0)
	if !tr.Unlocked() {
		t.Error("empty tracker should be unlocked")
	}
}

func TestRevealedAndIndices(t *testing.T) {
	tr := NewTracker(3)
	tr.Reveal(0)
	tr.Reveal(2)
	if !tr.Revealed(0) || tr.Revealed(1) || !tr.Revealed(2) {
		t.Errorf("revealed flags wrong: %v %v %v", tr.Revealed(0), tr.Revealed(1), tr.Revealed(2))
	}
	got := tr.Indices()
	if len(got) != 2 {
		t.Errorf("indices = %v", got)
	}
}
