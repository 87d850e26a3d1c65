// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/roundtable-bot/internal/ent/discussion"
	"github.com/fachebot/roundtable-bot/internal/ent/predicate"
	"github.com/fachebot/roundtable-bot/internal/ent/rating"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDiscussion = "Discussion"
	TypeRating     = "Rating"
)

// DiscussionMutation represents an operation that mutates the Discussion nodes in the graph.
type DiscussionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	discussion_id *string
	topic         *string
	agents        *string
	chat_history  *string
	summary       *string
	user          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Discussion, error)
	predicates    []predicate.Discussion
}

var _ ent.Mutation = (*DiscussionMutation)(nil)

// discussionOption allows management of the mutation configuration using functional options.
type discussionOption func(*DiscussionMutation)

// newDiscussionMutation creates new mutation for the Discussion entity.
func newDiscussionMutation(c config, op Op, opts ...discussionOption) *DiscussionMutation {
	m := &DiscussionMutation{
		config:        c,
		op:            op,
		typ:           TypeDiscussion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiscussionID sets the ID field of the mutation.
func withDiscussionID(id int) discussionOption {
	return func(m *DiscussionMutation) {
		var (
			err   error
			once  sync.Once
			value *Discussion
		)
		m.oldValue = func(ctx context.Context) (*Discussion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Discussion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiscussion sets the old Discussion of the mutation.
func withDiscussion(node *Discussion) discussionOption {
	return func(m *DiscussionMutation) {
		m.oldValue = func(context.Context) (*Discussion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiscussionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiscussionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiscussionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiscussionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Discussion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *DiscussionMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *DiscussionMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *DiscussionMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DiscussionMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DiscussionMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DiscussionMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetDiscussionID sets the "discussion_id" field.
func (m *DiscussionMutation) SetDiscussionID(s string) {
	m.discussion_id = &s
}

// DiscussionID returns the value of the "discussion_id" field in the mutation.
func (m *DiscussionMutation) DiscussionID() (r string, exists bool) {
	v := m.discussion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscussionID returns the old "discussion_id" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldDiscussionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscussionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscussionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscussionID: %w", err)
	}
	return oldValue.DiscussionID, nil
}

// ResetDiscussionID resets all changes to the "discussion_id" field.
func (m *DiscussionMutation) ResetDiscussionID() {
	m.discussion_id = nil
}

// SetTopic sets the "topic" field.
func (m *DiscussionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *DiscussionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *DiscussionMutation) ResetTopic() {
	m.topic = nil
}

// SetAgents sets the "agents" field.
func (m *DiscussionMutation) SetAgents(s string) {
	m.agents = &s
}

// Agents returns the value of the "agents" field in the mutation.
func (m *DiscussionMutation) Agents() (r string, exists bool) {
	v := m.agents
	if v == nil {
		return
	}
	return *v, true
}

// OldAgents returns the old "agents" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldAgents(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgents: %w", err)
	}
	return oldValue.Agents, nil
}

// ResetAgents resets all changes to the "agents" field.
func (m *DiscussionMutation) ResetAgents() {
	m.agents = nil
}

// SetChatHistory sets the "chat_history" field.
func (m *DiscussionMutation) SetChatHistory(s string) {
	m.chat_history = &s
}

// ChatHistory returns the value of the "chat_history" field in the mutation.
func (m *DiscussionMutation) ChatHistory() (r string, exists bool) {
	v := m.chat_history
	if v == nil {
		return
	}
	return *v, true
}

// OldChatHistory returns the old "chat_history" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldChatHistory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatHistory: %w", err)
	}
	return oldValue.ChatHistory, nil
}

// ResetChatHistory resets all changes to the "chat_history" field.
func (m *DiscussionMutation) ResetChatHistory() {
	m.chat_history = nil
}

// SetSummary sets the "summary" field.
func (m *DiscussionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *DiscussionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *DiscussionMutation) ResetSummary() {
	m.summary = nil
}

// SetUser sets the "user" field.
func (m *DiscussionMutation) SetUser(s string) {
	m.user = &s
}

// User returns the value of the "user" field in the mutation.
func (m *DiscussionMutation) User() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUser returns the old "user" field's value of the Discussion entity.
// If the Discussion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionMutation) OldUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUser: %w", err)
	}
	return oldValue.User, nil
}

// ClearUser clears the value of the "user" field.
func (m *DiscussionMutation) ClearUser() {
	m.user = nil
	m.clearedFields[discussion.FieldUser] = struct{}{}
}

// UserCleared returns if the "user" field was cleared in this mutation.
func (m *DiscussionMutation) UserCleared() bool {
	_, ok := m.clearedFields[discussion.FieldUser]
	return ok
}

// ResetUser resets all changes to the "user" field.
func (m *DiscussionMutation) ResetUser() {
	m.user = nil
	delete(m.clearedFields, discussion.FieldUser)
}

// Where appends a list predicates to the DiscussionMutation builder.
func (m *DiscussionMutation) Where(ps ...predicate.Discussion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiscussionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiscussionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Discussion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiscussionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiscussionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Discussion).
func (m *DiscussionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiscussionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.create_time != nil {
		fields = append(fields, discussion.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, discussion.FieldUpdateTime)
	}
	if m.discussion_id != nil {
		fields = append(fields, discussion.FieldDiscussionID)
	}
	if m.topic != nil {
		fields = append(fields, discussion.FieldTopic)
	}
	if m.agents != nil {
		fields = append(fields, discussion.FieldAgents)
	}
	if m.chat_history != nil {
		fields = append(fields, discussion.FieldChatHistory)
	}
	if m.summary != nil {
		fields = append(fields, discussion.FieldSummary)
	}
	if m.user != nil {
		fields = append(fields, discussion.FieldUser)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiscussionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case discussion.FieldCreateTime:
		return m.CreateTime()
	case discussion.FieldUpdateTime:
		return m.UpdateTime()
	case discussion.FieldDiscussionID:
		return m.DiscussionID()
	case discussion.FieldTopic:
		return m.Topic()
	case discussion.FieldAgents:
		return m.Agents()
	case discussion.FieldChatHistory:
		return m.ChatHistory()
	case discussion.FieldSummary:
		return m.Summary()
	case discussion.FieldUser:
		return m.User()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiscussionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case discussion.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case discussion.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case discussion.FieldDiscussionID:
		return m.OldDiscussionID(ctx)
	case discussion.FieldTopic:
		return m.OldTopic(ctx)
	case discussion.FieldAgents:
		return m.OldAgents(ctx)
	case discussion.FieldChatHistory:
		return m.OldChatHistory(ctx)
	case discussion.FieldSummary:
		return m.OldSummary(ctx)
	case discussion.FieldUser:
		return m.OldUser(ctx)
	}
	return nil, fmt.Errorf("unknown Discussion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscussionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case discussion.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case discussion.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case discussion.FieldDiscussionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscussionID(v)
		return nil
	case discussion.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case discussion.FieldAgents:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgents(v)
		return nil
	case discussion.FieldChatHistory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatHistory(v)
		return nil
	case discussion.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case discussion.FieldUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUser(v)
		return nil
	}
	return fmt.Errorf("unknown Discussion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiscussionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiscussionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscussionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Discussion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiscussionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(discussion.FieldUser) {
		fields = append(fields, discussion.FieldUser)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiscussionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiscussionMutation) ClearField(name string) error {
	switch name {
	case discussion.FieldUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Discussion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiscussionMutation) ResetField(name string) error {
	switch name {
	case discussion.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case discussion.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case discussion.FieldDiscussionID:
		m.ResetDiscussionID()
		return nil
	case discussion.FieldTopic:
		m.ResetTopic()
		return nil
	case discussion.FieldAgents:
		m.ResetAgents()
		return nil
	case discussion.FieldChatHistory:
		m.ResetChatHistory()
		return nil
	case discussion.FieldSummary:
		m.ResetSummary()
		return nil
	case discussion.FieldUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Discussion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiscussionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiscussionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiscussionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiscussionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiscussionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiscussionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiscussionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Discussion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiscussionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Discussion edge %s", name)
}

// RatingMutation represents an operation that mutates the Rating nodes in the graph.
type RatingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	discussion_id *string
	iteration     *int
	additeration  *int
	agent_name    *string
	upvotes       *int
	addupvotes    *int
	downvotes     *int
	adddownvotes  *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Rating, error)
	predicates    []predicate.Rating
}

var _ ent.Mutation = (*RatingMutation)(nil)

// ratingOption allows management of the mutation configuration using functional options.
type ratingOption func(*RatingMutation)

// newRatingMutation creates new mutation for the Rating entity.
func newRatingMutation(c config, op Op, opts ...ratingOption) *RatingMutation {
	m := &RatingMutation{
		config:        c,
		op:            op,
		typ:           TypeRating,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRatingID sets the ID field of the mutation.
func withRatingID(id int) ratingOption {
	return func(m *RatingMutation) {
		var (
			err   error
			once  sync.Once
			value *Rating
		)
		m.oldValue = func(ctx context.Context) (*Rating, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rating.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRating sets the old Rating of the mutation.
func withRating(node *Rating) ratingOption {
	return func(m *RatingMutation) {
		m.oldValue = func(context.Context) (*Rating, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RatingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RatingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RatingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RatingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rating.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *RatingMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *RatingMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *RatingMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *RatingMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *RatingMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *RatingMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetDiscussionID sets the "discussion_id" field.
func (m *RatingMutation) SetDiscussionID(s string) {
	m.discussion_id = &s
}

// DiscussionID returns the value of the "discussion_id" field in the mutation.
func (m *RatingMutation) DiscussionID() (r string, exists bool) {
	v := m.discussion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscussionID returns the old "discussion_id" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldDiscussionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscussionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscussionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscussionID: %w", err)
	}
	return oldValue.DiscussionID, nil
}

// ResetDiscussionID resets all changes to the "discussion_id" field.
func (m *RatingMutation) ResetDiscussionID() {
	m.discussion_id = nil
}

// SetIteration sets the "iteration" field.
func (m *RatingMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *RatingMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *RatingMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *RatingMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *RatingMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetAgentName sets the "agent_name" field.
func (m *RatingMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *RatingMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *RatingMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetUpvotes sets the "upvotes" field.
func (m *RatingMutation) SetUpvotes(i int) {
	m.upvotes = &i
	m.addupvotes = nil
}

// Upvotes returns the value of the "upvotes" field in the mutation.
func (m *RatingMutation) Upvotes() (r int, exists bool) {
	v := m.upvotes
	if v == nil {
		return
	}
	return *v, true
}

// OldUpvotes returns the old "upvotes" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldUpvotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpvotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpvotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpvotes: %w", err)
	}
	return oldValue.Upvotes, nil
}

// AddUpvotes adds i to the "upvotes" field.
func (m *RatingMutation) AddUpvotes(i int) {
	if m.addupvotes != nil {
		*m.addupvotes += i
	} else {
		m.addupvotes = &i
	}
}

// AddedUpvotes returns the value that was added to the "upvotes" field in this mutation.
func (m *RatingMutation) AddedUpvotes() (r int, exists bool) {
	v := m.addupvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpvotes resets all changes to the "upvotes" field.
func (m *RatingMutation) ResetUpvotes() {
	m.upvotes = nil
	m.addupvotes = nil
}

// SetDownvotes sets the "downvotes" field.
func (m *RatingMutation) SetDownvotes(i int) {
	m.downvotes = &i
	m.adddownvotes = nil
}

// Downvotes returns the value of the "downvotes" field in the mutation.
func (m *RatingMutation) Downvotes() (r int, exists bool) {
	v := m.downvotes
	if v == nil {
		return
	}
	return *v, true
}

// OldDownvotes returns the old "downvotes" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldDownvotes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownvotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownvotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownvotes: %w", err)
	}
	return oldValue.Downvotes, nil
}

// AddDownvotes adds i to the "downvotes" field.
func (m *RatingMutation) AddDownvotes(i int) {
	if m.adddownvotes != nil {
		*m.adddownvotes += i
	} else {
		m.adddownvotes = &i
	}
}

// AddedDownvotes returns the value that was added to the "downvotes" field in this mutation.
func (m *RatingMutation) AddedDownvotes() (r int, exists bool) {
	v := m.adddownvotes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDownvotes resets all changes to the "downvotes" field.
func (m *RatingMutation) ResetDownvotes() {
	m.downvotes = nil
	m.adddownvotes = nil
}

// Where appends a list predicates to the RatingMutation builder.
func (m *RatingMutation) Where(ps ...predicate.Rating) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RatingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RatingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rating, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RatingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RatingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rating).
func (m *RatingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RatingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.create_time != nil {
		fields = append(fields, rating.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, rating.FieldUpdateTime)
	}
	if m.discussion_id != nil {
		fields = append(fields, rating.FieldDiscussionID)
	}
	if m.iteration != nil {
		fields = append(fields, rating.FieldIteration)
	}
	if m.agent_name != nil {
		fields = append(fields, rating.FieldAgentName)
	}
	if m.upvotes != nil {
		fields = append(fields, rating.FieldUpvotes)
	}
	if m.downvotes != nil {
		fields = append(fields, rating.FieldDownvotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RatingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rating.FieldCreateTime:
		return m.CreateTime()
	case rating.FieldUpdateTime:
		return m.UpdateTime()
	case rating.FieldDiscussionID:
		return m.DiscussionID()
	case rating.FieldIteration:
		return m.Iteration()
	case rating.FieldAgentName:
		return m.AgentName()
	case rating.FieldUpvotes:
		return m.Upvotes()
	case rating.FieldDownvotes:
		return m.Downvotes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RatingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rating.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case rating.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case rating.FieldDiscussionID:
		return m.OldDiscussionID(ctx)
	case rating.FieldIteration:
		return m.OldIteration(ctx)
	case rating.FieldAgentName:
		return m.OldAgentName(ctx)
	case rating.FieldUpvotes:
		return m.OldUpvotes(ctx)
	case rating.FieldDownvotes:
		return m.OldDownvotes(ctx)
	}
	return nil, fmt.Errorf("unknown Rating field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RatingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rating.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case rating.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case rating.FieldDiscussionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscussionID(v)
		return nil
	case rating.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case rating.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case rating.FieldUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpvotes(v)
		return nil
	case rating.FieldDownvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownvotes(v)
		return nil
	}
	return fmt.Errorf("unknown Rating field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RatingMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, rating.FieldIteration)
	}
	if m.addupvotes != nil {
		fields = append(fields, rating.FieldUpvotes)
	}
	if m.adddownvotes != nil {
		fields = append(fields, rating.FieldDownvotes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RatingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rating.FieldIteration:
		return m.AddedIteration()
	case rating.FieldUpvotes:
		return m.AddedUpvotes()
	case rating.FieldDownvotes:
		return m.AddedDownvotes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RatingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rating.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case rating.FieldUpvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpvotes(v)
		return nil
	case rating.FieldDownvotes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDownvotes(v)
		return nil
	}
	return fmt.Errorf("unknown Rating numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RatingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RatingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RatingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Rating nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RatingMutation) ResetField(name string) error {
	switch name {
	case rating.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case rating.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case rating.FieldDiscussionID:
		m.ResetDiscussionID()
		return nil
	case rating.FieldIteration:
		m.ResetIteration()
		return nil
	case rating.FieldAgentName:
		m.ResetAgentName()
		return nil
	case rating.FieldUpvotes:
		m.ResetUpvotes()
		return nil
	case rating.FieldDownvotes:
		m.ResetDownvotes()
		return nil
	}
	return fmt.Errorf("unknown Rating field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RatingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RatingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RatingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RatingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RatingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RatingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RatingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Rating unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RatingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Rating edge %s", name)
}
