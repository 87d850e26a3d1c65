// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/roundtable-bot/internal/ent/rating"
)

// RatingCreate is the builder for creating a Rating entity.
type RatingCreate struct {
	config
	mutation *RatingMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *RatingCreate) SetCreateTime(v time.Time) *RatingCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *RatingCreate) SetNillableCreateTime(v *time.Time) *RatingCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *RatingCreate) SetUpdateTime(v time.Time) *RatingCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *RatingCreate) SetNillableUpdateTime(v *time.Time) *RatingCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetDiscussionID sets the "discussion_id" field.
func (_c *RatingCreate) SetDiscussionID(v string) *RatingCreate {
	_c.mutation.SetDiscussionID(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *RatingCreate) SetIteration(v int) *RatingCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *RatingCreate) SetAgentName(v string) *RatingCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetUpvotes sets the "upvotes" field.
func (_c *RatingCreate) SetUpvotes(v int) *RatingCreate {
	_c.mutation.SetUpvotes(v)
	return _c
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_c *RatingCreate) SetNillableUpvotes(v *int) *RatingCreate {
	if v != nil {
		_c.SetUpvotes(*v)
	}
	return _c
}

// SetDownvotes sets the "downvotes" field.
func (_c *RatingCreate) SetDownvotes(v int) *RatingCreate {
	_c.mutation.SetDownvotes(v)
	return _c
}

// SetNillableDownvotes sets the "downvotes" field if the given value is not nil.
func (_c *RatingCreate) SetNillableDownvotes(v *int) *RatingCreate {
	if v != nil {
		_c.SetDownvotes(*v)
	}
	return _c
}

// Mutation returns the RatingMutation object of the builder.
func (_c *RatingCreate) Mutation() *RatingMutation {
	return _c.mutation
}

// Save creates the Rating in the database.
func (_c *RatingCreate) Save(ctx context.Context) (*Rating, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RatingCreate) SaveX(ctx context.Context) *Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RatingCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := rating.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := rating.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Upvotes(); !ok {
		v := rating.DefaultUpvotes
		_c.mutation.SetUpvotes(v)
	}
	if _, ok := _c.mutation.Downvotes(); !ok {
		v := rating.DefaultDownvotes
		_c.mutation.SetDownvotes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RatingCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Rating.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Rating.update_time"`)}
	}
	if _, ok := _c.mutation.DiscussionID(); !ok {
		return &ValidationError{Name: "discussion_id", err: errors.New(`ent: missing required field "Rating.discussion_id"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "Rating.iteration"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "Rating.agent_name"`)}
	}
	if _, ok := _c.mutation.Upvotes(); !ok {
		return &ValidationError{Name: "upvotes", err: errors.New(`ent: missing required field "Rating.upvotes"`)}
	}
	if _, ok := _c.mutation.Downvotes(); !ok {
		return &ValidationError{Name: "downvotes", err: errors.New(`ent: missing required field "Rating.downvotes"`)}
	}
	return nil
}

func (_c *RatingCreate) sqlSave(ctx context.Context) (*Rating, error) {
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

func (_c *RatingCreate) createSpec() (*Rating, *sqlgraph.CreateSpec) {
	var (
		_node = &Rating{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rating.Table, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(rating.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(rating.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.DiscussionID(); ok {
		_spec.SetField(rating.FieldDiscussionID, field.TypeString, value)
		_node.DiscussionID = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(rating.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(rating.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Upvotes(); ok {
		_spec.SetField(rating.FieldUpvotes, field.TypeInt, value)
		_node.Upvotes = value
	}
	if value, ok := _c.mutation.Downvotes(); ok {
		_spec.SetField(rating.FieldDownvotes, field.TypeInt, value)
		_node.Downvotes = value
	}
	return _node, _spec
}

// RatingCreateBulk is the builder for creating many Rating entities in bulk.
type RatingCreateBulk struct {
	config
	err      error
	builders []*RatingCreate
}

// Save creates the Rating entities in the database.
func (_c *RatingCreateBulk) Save(ctx context.Context) ([]*Rating, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rating, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RatingMutation)
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
func (_c *RatingCreateBulk) SaveX(ctx context.Context) []*Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
