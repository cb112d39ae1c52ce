package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseEvent records one accepted lesson navigation.
type PhaseEvent struct {
	ent.Schema
}

func (PhaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PhaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a lesson session"),
		field.String("lesson_id").
			NotEmpty(),
		field.String("from_phase").
			NotEmpty(),
		field.String("to_phase").
			NotEmpty(),
	}
}

func (PhaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("to_phase"),
	}
}
