package lesson

import "time"

// tickMsg drives the simulation step loop during play phases.
type tickMsg time.Time

// noticeExpiredMsg clears the transient gate hint.
type noticeExpiredMsg struct{}
