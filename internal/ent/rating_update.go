// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/roundtable-bot/internal/ent/predicate"
	"github.com/fachebot/roundtable-bot/internal/ent/rating"
)

// RatingUpdate is the builder for updating Rating entities.
type RatingUpdate struct {
	config
	hooks    []Hook
	mutation *RatingMutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdate) Where(ps ...predicate.Rating) *RatingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *RatingUpdate) SetUpdateTime(v time.Time) *RatingUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetDiscussionID sets the "discussion_id" field.
func (_u *RatingUpdate) SetDiscussionID(v string) *RatingUpdate {
	_u.mutation.SetDiscussionID(v)
	return _u
}

// SetNillableDiscussionID sets the "discussion_id" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableDiscussionID(v *string) *RatingUpdate {
	if v != nil {
		_u.SetDiscussionID(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *RatingUpdate) SetIteration(v int) *RatingUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableIteration(v *int) *RatingUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *RatingUpdate) AddIteration(v int) *RatingUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *RatingUpdate) SetAgentName(v string) *RatingUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableAgentName(v *string) *RatingUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetUpvotes sets the "upvotes" field.
func (_u *RatingUpdate) SetUpvotes(v int) *RatingUpdate {
	_u.mutation.ResetUpvotes()
	_u.mutation.SetUpvotes(v)
	return _u
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableUpvotes(v *int) *RatingUpdate {
	if v != nil {
		_u.SetUpvotes(*v)
	}
	return _u
}

// AddUpvotes adds value to the "upvotes" field.
func (_u *RatingUpdate) AddUpvotes(v int) *RatingUpdate {
	_u.mutation.AddUpvotes(v)
	return _u
}

// SetDownvotes sets the "downvotes" field.
func (_u *RatingUpdate) SetDownvotes(v int) *RatingUpdate {
	_u.mutation.ResetDownvotes()
	_u.mutation.SetDownvotes(v)
	return _u
}

// SetNillableDownvotes sets the "downvotes" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableDownvotes(v *int) *RatingUpdate {
	if v != nil {
		_u.SetDownvotes(*v)
	}
	return _u
}

// AddDownvotes adds value to the "downvotes" field.
func (_u *RatingUpdate) AddDownvotes(v int) *RatingUpdate {
	_u.mutation.AddDownvotes(v)
	return _u
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdate) Mutation() *RatingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RatingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RatingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RatingUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := rating.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *RatingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(rating.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DiscussionID(); ok {
		_spec.SetField(rating.FieldDiscussionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(rating.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(rating.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(rating.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Upvotes(); ok {
		_spec.SetField(rating.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvotes(); ok {
		_spec.AddField(rating.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Downvotes(); ok {
		_spec.SetField(rating.FieldDownvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDownvotes(); ok {
		_spec.AddField(rating.FieldDownvotes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RatingUpdateOne is the builder for updating a single Rating entity.
type RatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RatingMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *RatingUpdateOne) SetUpdateTime(v time.Time) *RatingUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetDiscussionID sets the "discussion_id" field.
func (_u *RatingUpdateOne) SetDiscussionID(v string) *RatingUpdateOne {
	_u.mutation.SetDiscussionID(v)
	return _u
}

// SetNillableDiscussionID sets the "discussion_id" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableDiscussionID(v *string) *RatingUpdateOne {
	if v != nil {
		_u.SetDiscussionID(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *RatingUpdateOne) SetIteration(v int) *RatingUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableIteration(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *RatingUpdateOne) AddIteration(v int) *RatingUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *RatingUpdateOne) SetAgentName(v string) *RatingUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableAgentName(v *string) *RatingUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetUpvotes sets the "upvotes" field.
func (_u *RatingUpdateOne) SetUpvotes(v int) *RatingUpdateOne {
	_u.mutation.ResetUpvotes()
	_u.mutation.SetUpvotes(v)
	return _u
}

// SetNillableUpvotes sets the "upvotes" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableUpvotes(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetUpvotes(*v)
	}
	return _u
}

// AddUpvotes adds value to the "upvotes" field.
func (_u *RatingUpdateOne) AddUpvotes(v int) *RatingUpdateOne {
	_u.mutation.AddUpvotes(v)
	return _u
}

// SetDownvotes sets the "downvotes" field.
func (_u *RatingUpdateOne) SetDownvotes(v int) *RatingUpdateOne {
	_u.mutation.ResetDownvotes()
	_u.mutation.SetDownvotes(v)
	return _u
}

// SetNillableDownvotes sets the "downvotes" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableDownvotes(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetDownvotes(*v)
	}
	return _u
}

// AddDownvotes adds value to the "downvotes" field.
func (_u *RatingUpdateOne) AddDownvotes(v int) *RatingUpdateOne {
	_u.mutation.AddDownvotes(v)
	return _u
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdateOne) Mutation() *RatingMutation {
	return _u.mutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdateOne) Where(ps ...predicate.Rating) *RatingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RatingUpdateOne) Select(field string, fields ...string) *RatingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rating entity.
func (_u *RatingUpdateOne) Save(ctx context.Context) (*Rating, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdateOne) SaveX(ctx context.Context) *Rating {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RatingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RatingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := rating.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *RatingUpdateOne) sqlSave(ctx context.Context) (_node *Rating, err error) {
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rating.FieldID)
		for _, f := range fields {
			if !rating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rating.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(rating.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DiscussionID(); ok {
		_spec.SetField(rating.FieldDiscussionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(rating.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(rating.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(rating.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Upvotes(); ok {
		_spec.SetField(rating.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvotes(); ok {
		_spec.AddField(rating.FieldUpvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Downvotes(); ok {
		_spec.SetField(rating.FieldDownvotes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDownvotes(); ok {
		_spec.AddField(rating.FieldDownvotes, field.TypeInt, value)
	}
	_node = &Rating{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
