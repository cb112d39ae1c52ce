package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lesson session lifecycle: start, end, complete.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a lesson session"),
		field.String("lesson_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, end, or complete"),
		field.String("phase_reached").
			Default("").
			Comment("Phase at end (end/complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration (end/complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
