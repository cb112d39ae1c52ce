// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Coder9204/sparklab/ent/phaseevent"
)

// PhaseEventCreate is the builder for creating a PhaseEvent entity.
type PhaseEventCreate struct {
	config
	mutation *PhaseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PhaseEventCreate) SetSequence(v int64) *PhaseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PhaseEventCreate) SetTimestamp(v time.Time) *PhaseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PhaseEventCreate) SetNillableTimestamp(v *time.Time) *PhaseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PhaseEventCreate) SetSessionID(v string) *PhaseEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PhaseEventCreate) SetLessonID(v string) *PhaseEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetFromPhase sets the "from_phase" field.
func (_c *PhaseEventCreate) SetFromPhase(v string) *PhaseEventCreate {
	_c.mutation.SetFromPhase(v)
	return _c
}

// SetToPhase sets the "to_phase" field.
func (_c *PhaseEventCreate) SetToPhase(v string) *PhaseEventCreate {
	_c.mutation.SetToPhase(v)
	return _c
}

// Mutation returns the PhaseEventMutation object of the builder.
func (_c *PhaseEventCreate) Mutation() *PhaseEventMutation {
	return _c.mutation
}

// Save creates the PhaseEvent in the database.
func (_c *PhaseEventCreate) Save(ctx context.Context) (*PhaseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhaseEventCreate) SaveX(ctx context.Context) *PhaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhaseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := phaseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhaseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PhaseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PhaseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PhaseEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := phaseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "PhaseEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := phaseevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromPhase(); !ok {
		return &ValidationError{Name: "from_phase", err: errors.New(`ent: missing required field "PhaseEvent.from_phase"`)}
	}
	if v, ok := _c.mutation.FromPhase(); ok {
		if err := phaseevent.FromPhaseValidator(v); err != nil {
			return &ValidationError{Name: "from_phase", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.from_phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToPhase(); !ok {
		return &ValidationError{Name: "to_phase", err: errors.New(`ent: missing required field "PhaseEvent.to_phase"`)}
	}
	if v, ok := _c.mutation.ToPhase(); ok {
		if err := phaseevent.ToPhaseValidator(v); err != nil {
			return &ValidationError{Name: "to_phase", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.to_phase": %w`, err)}
		}
	}
	return nil
}

func (_c *PhaseEventCreate) sqlSave(ctx context.Context) (*PhaseEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhaseEventCreate) createSpec() (*PhaseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PhaseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phaseevent.Table, sqlgraph.NewFieldSpec(phaseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(phaseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(phaseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(phaseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(phaseevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.FromPhase(); ok {
		_spec.SetField(phaseevent.FieldFromPhase, field.TypeString, value)
		_node.FromPhase = value
	}
	if value, ok := _c.mutation.ToPhase(); ok {
		_spec.SetField(phaseevent.FieldToPhase, field.TypeString, value)
		_node.ToPhase = value
	}
	return _node, _spec
}

// PhaseEventCreateBulk is the builder for creating many PhaseEvent entities in bulk.
type PhaseEventCreateBulk struct {
	config
	err      error
	builders []*PhaseEventCreate
}

// Save creates the PhaseEvent entities in the database.
func (_c *PhaseEventCreateBulk) Save(ctx context.Context) ([]*PhaseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhaseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhaseEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PhaseEventCreateBulk) SaveX(ctx context.Context) []*PhaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
