package transfer

// Tracker records which real-world application cards the learner has
// revealed. The set only grows within a session; there is no removal.
type Tracker struct {
	total    int
	revealed map[int]bool
}

// NewTracker creates a tracker for the given number of application cards.
func NewTracker(total int) *Tracker {
	if total < 0 {
		total = 0
	}
	return &Tracker{total: total, revealed: make(map[int]bool)}
}

// Reveal marks a card as acknowledged. Idempotent; out-of-range indices are
// ignored.
func (t *Tracker) Reveal(index int) {
	if index < 0 || index >= t.total {
		return
	}
	t.revealed[index] = true
}

// Revealed reports whether a card has been acknowledged.
func (t *Tracker) Revealed(index int) bool {
	return t.revealed[index]
}

// Count returns the number of distinct revealed cards.
func (t *Tracker) Count() int {
	return len(t.revealed)
}

// Total returns the number of cards required to unlock.
func (t *Tracker) Total() int {
	return t.total
}

// Unlocked reports whether every card has been revealed.
func (t *Tracker) Unlocked() bool {
	return len(t.revealed) == t.total
}

// Indices returns the revealed card indices for persistence.
func (t *Tracker) Indices() []int {
	out := make([]int, 0, len(t.revealed))
	for i := range t.revealed {
		out = append(out, i)
	}
	return out
}
