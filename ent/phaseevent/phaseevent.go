// Code generated by ent, DO NOT EDIT.

package phaseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the phaseevent type in the database.
	Label = "phase_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldFromPhase holds the string denoting the from_phase field in the database.
	FieldFromPhase = "from_phase"
	// FieldToPhase holds the string denoting the to_phase field in the database.
	FieldToPhase = "to_phase"
	// Table holds the table name of the phaseevent in the database.
	Table = "phase_events"
)

// Columns holds all SQL columns for phaseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLessonID,
	FieldFromPhase,
	FieldToPhase,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// FromPhaseValidator is a validator for the "from_phase" field. It is called by the builders before save.
	FromPhaseValidator func(string) error
	// ToPhaseValidator is a validator for the "to_phase" field. It is called by the builders before save.
	ToPhaseValidator func(string) error
)

// OrderOption defines the ordering options for the PhaseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByFromPhase orders the results by the from_phase field.
func ByFromPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromPhase, opts...).ToFunc()
}

// ByToPhase orders the results by the to_phase field.
func ByToPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToPhase, opts...).ToFunc()
}
