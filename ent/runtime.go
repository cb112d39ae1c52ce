// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Coder9204/sparklab/ent/phaseevent"
	"github.com/Coder9204/sparklab/ent/quizevent"
	"github.com/Coder9204/sparklab/ent/schema"
	"github.com/Coder9204/sparklab/ent/sessionevent"
	"github.com/Coder9204/sparklab/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	phaseeventMixin := schema.PhaseEvent{}.Mixin()
	phaseeventMixinFields0 := phaseeventMixin[0].Fields()
	_ = phaseeventMixinFields0
	phaseeventFields := schema.PhaseEvent{}.Fields()
	_ = phaseeventFields
	// phaseeventDescTimestamp is the schema descriptor for timestamp field.
	phaseeventDescTimestamp := phaseeventMixinFields0[1].Descriptor()
	// phaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	phaseevent.DefaultTimestamp = phaseeventDescTimestamp.Default.(func() time.Time)
	// phaseeventDescSessionID is the schema descriptor for session_id field.
	phaseeventDescSessionID := phaseeventFields[0].Descriptor()
	// phaseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	phaseevent.SessionIDValidator = phaseeventDescSessionID.Validators[0].(func(string) error)
	// phaseeventDescLessonID is the schema descriptor for lesson_id field.
	phaseeventDescLessonID := phaseeventFields[1].Descriptor()
	// phaseevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	phaseevent.LessonIDValidator = phaseeventDescLessonID.Validators[0].(func(string) error)
	// phaseeventDescFromPhase is the schema descriptor for from_phase field.
	phaseeventDescFromPhase := phaseeventFields[2].Descriptor()
	// phaseevent.FromPhaseValidator is a validator for the "from_phase" field. It is called by the builders before save.
	phaseevent.FromPhaseValidator = phaseeventDescFromPhase.Validators[0].(func(string) error)
	// phaseeventDescToPhase is the schema descriptor for to_phase field.
	phaseeventDescToPhase := phaseeventFields[3].Descriptor()
	// phaseevent.ToPhaseValidator is a validator for the "to_phase" field. It is called by the builders before save.
	phaseevent.ToPhaseValidator = phaseeventDescToPhase.Validators[0].(func(string) error)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescLessonID is the schema descriptor for lesson_id field.
	quizeventDescLessonID := quizeventFields[1].Descriptor()
	// quizevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	quizevent.LessonIDValidator = quizeventDescLessonID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[1].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPhaseReached is the schema descriptor for phase_reached field.
	sessioneventDescPhaseReached := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPhaseReached holds the default value on creation for the phase_reached field.
	sessionevent.DefaultPhaseReached = sessioneventDescPhaseReached.Default.(string)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
