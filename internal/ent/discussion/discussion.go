// Code generated by ent, DO NOT EDIT.

package discussion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the discussion type in the database.
	Label = "discussion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldDiscussionID holds the string denoting the discussion_id field in the database.
	FieldDiscussionID = "discussion_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldAgents holds the string denoting the agents field in the database.
	FieldAgents = "agents"
	// FieldChatHistory holds the string denoting the chat_history field in the database.
	FieldChatHistory = "chat_history"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldUser holds the string denoting the user field in the database.
	FieldUser = "user"
	// Table holds the table name of the discussion in the database.
	Table = "discussions"
)

// Columns holds all SQL columns for discussion fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldDiscussionID,
	FieldTopic,
	FieldAgents,
	FieldChatHistory,
	FieldSummary,
	FieldUser,
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
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
)

// OrderOption defines the ordering options for the Discussion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByDiscussionID orders the results by the discussion_id field.
func ByDiscussionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscussionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByAgents orders the results by the agents field.
func ByAgents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgents, opts...).ToFunc()
}

// ByChatHistory orders the results by the chat_history field.
func ByChatHistory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatHistory, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByUser orders the results by the user field.
func ByUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUser, opts...).ToFunc()
}
