// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/roundtable-bot/internal/ent/discussion"
)

// Discussion is the model entity for the Discussion schema.
type Discussion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 讨论ID
	DiscussionID string `json:"discussion_id,omitempty"`
	// 讨论话题
	Topic string `json:"topic,omitempty"`
	// 参与成员名称列表（JSON）
	Agents string `json:"agents,omitempty"`
	// 完整讨论记录（JSON）
	ChatHistory string `json:"chat_history,omitempty"`
	// 最终总结
	Summary string `json:"summary,omitempty"`
	// 所属用户
	User         string `json:"user,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Discussion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case discussion.FieldID:
			values[i] = new(sql.NullInt64)
		case discussion.FieldDiscussionID, discussion.FieldTopic, discussion.FieldAgents, discussion.FieldChatHistory, discussion.FieldSummary, discussion.FieldUser:
			values[i] = new(sql.NullString)
		case discussion.FieldCreateTime, discussion.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Discussion fields.
func (_m *Discussion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case discussion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case discussion.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case discussion.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case discussion.FieldDiscussionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discussion_id", values[i])
			} else if value.Valid {
				_m.DiscussionID = value.String
			}
		case discussion.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case discussion.FieldAgents:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agents", values[i])
			} else if value.Valid {
				_m.Agents = value.String
			}
		case discussion.FieldChatHistory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_history", values[i])
			} else if value.Valid {
				_m.ChatHistory = value.String
			}
		case discussion.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case discussion.FieldUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user", values[i])
			} else if value.Valid {
				_m.User = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Discussion.
// This includes values selected through modifiers, order, etc.
func (_m *Discussion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Discussion.
// Note that you need to call Discussion.Unwrap() before calling this method if this Discussion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Discussion) Update() *DiscussionUpdateOne {
	return NewDiscussionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Discussion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Discussion) Unwrap() *Discussion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Discussion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Discussion) String() string {
	var builder strings.Builder
	builder.WriteString("Discussion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("discussion_id=")
	builder.WriteString(_m.DiscussionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("agents=")
	builder.WriteString(_m.Agents)
	builder.WriteString(", ")
	builder.WriteString("chat_history=")
	builder.WriteString(_m.ChatHistory)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("user=")
	builder.WriteString(_m.User)
	builder.WriteByte(')')
	return builder.String()
}

// Discussions is a parsable slice of Discussion.
type Discussions []*Discussion
