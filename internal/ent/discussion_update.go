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
	"github.com/fachebot/roundtable-bot/internal/ent/discussion"
	"github.com/fachebot/roundtable-bot/internal/ent/predicate"
)

// DiscussionUpdate is the builder for updating Discussion entities.
type DiscussionUpdate struct {
	config
	hooks    []Hook
	mutation *DiscussionMutation
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdate) Where(ps ...predicate.Discussion) *DiscussionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DiscussionUpdate) SetUpdateTime(v time.Time) *DiscussionUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetDiscussionID sets the "discussion_id" field.
func (_u *DiscussionUpdate) SetDiscussionID(v string) *DiscussionUpdate {
	_u.mutation.SetDiscussionID(v)
	return _u
}

// SetNillableDiscussionID sets the "discussion_id" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableDiscussionID(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetDiscussionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DiscussionUpdate) SetTopic(v string) *DiscussionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableTopic(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAgents sets the "agents" field.
func (_u *DiscussionUpdate) SetAgents(v string) *DiscussionUpdate {
	_u.mutation.SetAgents(v)
	return _u
}

// SetNillableAgents sets the "agents" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableAgents(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetAgents(*v)
	}
	return _u
}

// SetChatHistory sets the "chat_history" field.
func (_u *DiscussionUpdate) SetChatHistory(v string) *DiscussionUpdate {
	_u.mutation.SetChatHistory(v)
	return _u
}

// SetNillableChatHistory sets the "chat_history" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableChatHistory(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetChatHistory(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DiscussionUpdate) SetSummary(v string) *DiscussionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableSummary(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetUser sets the "user" field.
func (_u *DiscussionUpdate) SetUser(v string) *DiscussionUpdate {
	_u.mutation.SetUser(v)
	return _u
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_u *DiscussionUpdate) SetNillableUser(v *string) *DiscussionUpdate {
	if v != nil {
		_u.SetUser(*v)
	}
	return _u
}

// ClearUser clears the value of the "user" field.
func (_u *DiscussionUpdate) ClearUser() *DiscussionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdate) Mutation() *DiscussionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscussionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscussionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscussionUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := discussion.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *DiscussionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(discussion.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DiscussionID(); ok {
		_spec.SetField(discussion.FieldDiscussionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(discussion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(discussion.FieldAgents, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatHistory(); ok {
		_spec.SetField(discussion.FieldChatHistory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(discussion.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.User(); ok {
		_spec.SetField(discussion.FieldUser, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		_spec.ClearField(discussion.FieldUser, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscussionUpdateOne is the builder for updating a single Discussion entity.
type DiscussionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscussionMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *DiscussionUpdateOne) SetUpdateTime(v time.Time) *DiscussionUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetDiscussionID sets the "discussion_id" field.
func (_u *DiscussionUpdateOne) SetDiscussionID(v string) *DiscussionUpdateOne {
	_u.mutation.SetDiscussionID(v)
	return _u
}

// SetNillableDiscussionID sets the "discussion_id" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableDiscussionID(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetDiscussionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DiscussionUpdateOne) SetTopic(v string) *DiscussionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableTopic(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAgents sets the "agents" field.
func (_u *DiscussionUpdateOne) SetAgents(v string) *DiscussionUpdateOne {
	_u.mutation.SetAgents(v)
	return _u
}

// SetNillableAgents sets the "agents" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableAgents(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetAgents(*v)
	}
	return _u
}

// SetChatHistory sets the "chat_history" field.
func (_u *DiscussionUpdateOne) SetChatHistory(v string) *DiscussionUpdateOne {
	_u.mutation.SetChatHistory(v)
	return _u
}

// SetNillableChatHistory sets the "chat_history" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableChatHistory(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetChatHistory(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DiscussionUpdateOne) SetSummary(v string) *DiscussionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableSummary(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetUser sets the "user" field.
func (_u *DiscussionUpdateOne) SetUser(v string) *DiscussionUpdateOne {
	_u.mutation.SetUser(v)
	return _u
}

// SetNillableUser sets the "user" field if the given value is not nil.
func (_u *DiscussionUpdateOne) SetNillableUser(v *string) *DiscussionUpdateOne {
	if v != nil {
		_u.SetUser(*v)
	}
	return _u
}

// ClearUser clears the value of the "user" field.
func (_u *DiscussionUpdateOne) ClearUser() *DiscussionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Mutation returns the DiscussionMutation object of the builder.
func (_u *DiscussionUpdateOne) Mutation() *DiscussionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiscussionUpdate builder.
func (_u *DiscussionUpdateOne) Where(ps ...predicate.Discussion) *DiscussionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscussionUpdateOne) Select(field string, fields ...string) *DiscussionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Discussion entity.
func (_u *DiscussionUpdateOne) Save(ctx context.Context) (*Discussion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionUpdateOne) SaveX(ctx context.Context) *Discussion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscussionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiscussionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := discussion.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *DiscussionUpdateOne) sqlSave(ctx context.Context) (_node *Discussion, err error) {
	_spec := sqlgraph.NewUpdateSpec(discussion.Table, discussion.Columns, sqlgraph.NewFieldSpec(discussion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Discussion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discussion.FieldID)
		for _, f := range fields {
			if !discussion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discussion.FieldID {
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
		_spec.SetField(discussion.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DiscussionID(); ok {
		_spec.SetField(discussion.FieldDiscussionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(discussion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(discussion.FieldAgents, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChatHistory(); ok {
		_spec.SetField(discussion.FieldChatHistory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(discussion.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.User(); ok {
		_spec.SetField(discussion.FieldUser, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		_spec.ClearField(discussion.FieldUser, field.TypeString)
	}
	_node = &Discussion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
