package lesson

import "time"

// EventType tags outbound notifications to the host.
type EventType string

const (
	EventPhaseChanged    EventType = "phase_changed"
	EventQuizSubmitted   EventType = "quiz_submitted"
	EventLessonCompleted EventType = "lesson_completed"
)

// Event is the notification payload delivered to the host at well-defined
// points: every accepted navigation, quiz submission, and mastery
// completion.
type Event struct {
	Type      EventType
	SessionID string
	LessonID  string
	Phase     Phase
	From      Phase
	To        Phase
	Score     int
	Total     int
	Passed    bool
	At        time.Time
}

// Notifier receives outbound events. Implementations must not block; the
// controller calls them synchronously on the UI goroutine.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// MultiNotifier fans an event out to several notifiers in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(e Event) {
	for _, n := range m {
		n.Notify(e)
	}
}
