package lesson

import (
	"errors"
	"time"
)

const (
	// debounceWindow rejects a navigation issued too soon after the
	// previous accepted one, suppressing double-submission from rapid
	// repeated input events.
	debounceWindow = 200 * time.Millisecond

	// settleHold keeps the re-entrancy lock after an accepted navigation
	// while the view layer runs its transition.
	settleHold = 400 * time.Millisecond
)

// Navigation rejections are advisory: callers may ignore them. Rejected
// requests are dropped, never queued or retried.
var (
	ErrNavigationLocked = errors.New("navigation locked")
	ErrUnknownPhase     = errors.New("unknown phase")
	ErrGateClosed       = errors.New("phase gate not satisfied")
	ErrAtBoundary       = errors.New("no adjacent phase")
)

// Controller owns phase navigation for one lesson session: debouncing,
// gate evaluation, and phase-change notification. It is not safe for
// concurrent use; the execution model is single-threaded and event-driven.
type Controller struct {
	session  *Session
	gates    Gates
	notifier Notifier

	// now is the clock; replaced in tests for deterministic debounce.
	now func() time.Time

	lastNavAt   time.Time
	lockedUntil time.Time
}

// NewController wires a controller around session state. notifier may be
// nil when the host registers no callback.
func NewController(session *Session, gates Gates, notifier Notifier) *Controller {
	return &Controller{
		session:  session,
		gates:    gates,
		notifier: notifier,
		now:      time.Now,
	}
}

// Session returns the controlled session state.
func (c *Controller) Session() *Session {
	return c.session
}

// Current returns the active phase.
func (c *Controller) Current() Phase {
	return c.session.Current
}

// SyncExternalPhase forces the current phase to a host-supplied value
// outside the normal debounce and gating rules. This is a trusted override
// for resuming a saved session, not a learner action. Invalid phases are
// ignored.
func (c *Controller) SyncExternalPhase(requested Phase) {
	if !requested.Valid() {
		return
	}
	c.session.Current = requested
	c.markPlayPhases(requested)
}

// GoToPhase moves to target if the debounce window and settling lock
// permit. On acceptance it records the navigation time, holds the
// re-entrancy lock, and emits a phase_changed notification.
//
// The controller does not restrict direction here; the caller invokes it
// for the next phase only once the forward gate holds (see CanAdvance),
// while backward jumps are always legitimate.
func (c *Controller) GoToPhase(target Phase) error {
	if !target.Valid() {
		return ErrUnknownPhase
	}
	now := c.now()
	if now.Before(c.lockedUntil) {
		return ErrNavigationLocked
	}
	if !c.lastNavAt.IsZero() && now.Sub(c.lastNavAt) < debounceWindow {
		return ErrNavigationLocked
	}

	from := c.session.Current
	c.session.Current = target
	c.lastNavAt = now
	c.lockedUntil = now.Add(settleHold)
	c.markPlayPhases(target)

	c.emit(Event{
		Type:      EventPhaseChanged,
		SessionID: c.session.ID,
		LessonID:  c.session.LessonID,
		Phase:     target,
		From:      from,
		To:        target,
		At:        now,
	})
	return nil
}

// GoNext advances to the next phase in order. It enforces the current
// phase's forward gate and is a no-op at the terminal phase.
func (c *Controller) GoNext() error {
	next, ok := NextPhase(c.session.Current)
	if !ok {
		return ErrAtBoundary
	}
	if !c.CanAdvance() {
		return ErrGateClosed
	}
	return c.GoToPhase(next)
}

// GoBack moves to the previous phase. Backward motion has no gate and is
// always permitted except at the first phase.
func (c *Controller) GoBack() error {
	prev, ok := PrevPhase(c.session.Current)
	if !ok {
		return ErrAtBoundary
	}
	return c.GoToPhase(prev)
}

// RecordPrediction stores the learner's categorical guess for the active
// predict arc. Recording in any other phase is ignored.
func (c *Controller) RecordPrediction(categoryID string) {
	switch c.session.Current {
	case PhasePredict:
		c.session.Prediction = categoryID
	case PhaseTwistPredict:
		c.session.TwistPrediction = categoryID
	}
}

// RevealApplication acknowledges one real-world application card.
func (c *Controller) RevealApplication(index int) {
	c.session.Transfer.Reveal(index)
}

// RecordAnswer stores a quiz answer for the given question.
func (c *Controller) RecordAnswer(question int, optionID string) {
	c.session.Quiz.Record(question, optionID)
}

// SubmitQuiz scores the quiz and emits a quiz_submitted notification.
func (c *Controller) SubmitQuiz() {
	already := c.session.Quiz.Submitted()
	res := c.session.Quiz.Submit()
	if already {
		return
	}
	c.emit(Event{
		Type:      EventQuizSubmitted,
		SessionID: c.session.ID,
		LessonID:  c.session.LessonID,
		Phase:     c.session.Current,
		Score:     res.Score,
		Total:     res.Total,
		Passed:    res.Passed,
		At:        c.now(),
	})
}

// RetryQuiz clears quiz state for another attempt. The learner stays in
// the test phase; the cursor returns to the first question.
func (c *Controller) RetryQuiz() {
	c.session.Quiz.Retry()
}

// Complete fires the final mastery notification. Only meaningful in the
// mastery phase; ignored elsewhere.
func (c *Controller) Complete() {
	if c.session.Current != PhaseMastery {
		return
	}
	c.emit(Event{
		Type:      EventLessonCompleted,
		SessionID: c.session.ID,
		LessonID:  c.session.LessonID,
		Phase:     PhaseMastery,
		Score:     c.session.Quiz.Score(),
		Total:     len(c.session.Quiz.Bank().Questions),
		Passed:    c.session.Quiz.Passed(),
		At:        c.now(),
	})
}

// markPlayPhases flags the play phases as seen when entered. The flags feed
// the play gates for lessons without a stricter threshold.
func (c *Controller) markPlayPhases(p Phase) {
	switch p {
	case PhasePlay:
		c.session.PlaySeen = true
	case PhaseTwistPlay:
		c.session.TwistPlaySeen = true
	}
}

func (c *Controller) emit(e Event) {
	if c.notifier != nil {
		c.notifier.Notify(e)
	}
}
