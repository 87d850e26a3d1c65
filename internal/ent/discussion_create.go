// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/roundtable-bot/internal/ent/discussion"
)

// DiscussionCreate is the builder for creating a Discussion entity.
type DiscussionCreate struct {
	config
	mutation *DiscussionMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *DiscussionCreate) SetCreateTime(v time.Time) *DiscussionCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableCreateTime(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DiscussionCreate) SetUpdateTime(v time.Time) *DiscussionCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableUpdateTime(v *time.Time) *DiscussionCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetDiscussionID sets the "discussion_id" field.
func (_c *DiscussionCreate) SetDiscussionID(v string) *DiscussionCreate {
	_c.mutation.SetDiscussionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *DiscussionCreate) SetTopic(v string) *DiscussionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetAgents sets the "agents" field.
func (_c *DiscussionCreate) SetAgents(v string) *DiscussionCreate {
	_c.mutation.SetAgents(v)
	return _c
}

// SetChatHistory sets the "chat_history" field.
func (_c *DiscussionCreate) SetChatHistory(v string) *DiscussionCreate {
	_c.mutation.SetChatHistory(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *DiscussionCreate) SetSummary(v string) *DiscussionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetUser sets the "user" field.
func (_c *DiscussionCreate) SetUser(v string) *DiscussionCreate {
	_c.mutation.SetUser(v)
	return _c
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_c *DiscussionCreate) SetNillableUser(v *string) *DiscussionCreate {
	if v != nil {
		_c.SetUser(*v)
	}
	return _c
}

// Mutation returns the DiscussionMutation object of the builder.
func (_c *DiscussionCreate) Mutation() *DiscussionMutation {
	return _c.mutation
}

// Save creates the Discussion in the database.
func (_c *DiscussionCreate) Save(ctx context.Context) (*Discussion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscussionCreate) SaveX(ctx context.Context) *Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscussionCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := discussion.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := discussion.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscussionCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Discussion.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Discussion.update_time"`)}
	}
	if _, ok := _c.mutation.DiscussionID(); !ok {
		return &ValidationError{Name: "discussion_id", err: errors.New(`ent: missing required field "Discussion.discussion_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Discussion.topic"`)}
	}
	if _, ok := _c.mutation.Agents(); !ok {
		return &ValidationError{Name: "agents", err: errors.New(`ent: missing required field "Discussion.agents"`)}
	}
	if _, ok := _c.mutation.ChatHistory(); !ok {
		return &ValidationError{Name: "chat_history", err: errors.New(`ent: missing required field "Discussion.chat_history"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Discussion.summary"`)}
	}
	return nil
}

func (_c *DiscussionCreate) sqlSave(ctx context.Context) (*Discussion, error) {
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

func (_c *DiscussionCreate) createSpec() (*Discussion, *sqlgraph.CreateSpec) {
	var (
		_node = &Discussion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discussion.Table, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(discussion.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(discussion.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.DiscussionID(); ok {
		_spec.SetField(discussion.FieldDiscussionID, field.TypeString, value)
		_node.DiscussionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(discussion.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Agents(); ok {
		_spec.SetField(discussion.FieldAgents, field.TypeString, value)
		_node.Agents = value
	}
	if value, ok := _c.mutation.ChatHistory(); ok {
		_spec.SetField(discussion.FieldChatHistory, field.TypeString, value)
		_node.ChatHistory = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(discussion.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.User(); ok {
		_spec.SetField(discussion.FieldUser, field.TypeString, value)
		_node.User = value
	}
	return _node, _spec
}

// DiscussionCreateBulk is the builder for creating many Discussion entities in bulk.
type DiscussionCreateBulk struct {
	config
	err      error
	builders []*DiscussionCreate
}

// Save creates the Discussion entities in the database.
func (_c *DiscussionCreateBulk) Save(ctx context.Context) ([]*Discussion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Discussion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscussionMutation)
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
func (_c *DiscussionCreateBulk) SaveX(ctx context.Context) []*Discussion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
