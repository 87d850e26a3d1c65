// Code generated by ent, DO NOT EDIT.

package discussion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/roundtable-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUpdateTime, v))
}

// DiscussionID applies equality check predicate on the "discussion_id" field. It's identical to DiscussionIDEQ.
func DiscussionID(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldDiscussionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldTopic, v))
}

// Agents applies equality check predicate on the "agents" field. It's identical to AgentsEQ.
func Agents(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldAgents, v))
}

// ChatHistory applies equality check predicate on the "chat_history" field. It's identical to ChatHistoryEQ.
func ChatHistory(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldChatHistory, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldSummary, v))
}

// User applies equality check predicate on the "user" field. It's identical to UserEQ.
func User(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUser, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldUpdateTime, v))
}

// DiscussionIDEQ applies the EQ predicate on the "discussion_id" field.
func DiscussionIDEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldDiscussionID, v))
}

// DiscussionIDNEQ applies the NEQ predicate on the "discussion_id" field.
func DiscussionIDNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldDiscussionID, v))
}

// DiscussionIDIn applies the In predicate on the "discussion_id" field.
func DiscussionIDIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldDiscussionID, vs...))
}

// DiscussionIDNotIn applies the NotIn predicate on the "discussion_id" field.
func DiscussionIDNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldDiscussionID, vs...))
}

// DiscussionIDGT applies the GT predicate on the "discussion_id" field.
func DiscussionIDGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldDiscussionID, v))
}

// DiscussionIDGTE applies the GTE predicate on the "discussion_id" field.
func DiscussionIDGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldDiscussionID, v))
}

// DiscussionIDLT applies the LT predicate on the "discussion_id" field.
func DiscussionIDLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldDiscussionID, v))
}

// DiscussionIDLTE applies the LTE predicate on the "discussion_id" field.
func DiscussionIDLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldDiscussionID, v))
}

// DiscussionIDContains applies the Contains predicate on the "discussion_id" field.
func DiscussionIDContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldDiscussionID, v))
}

// DiscussionIDHasPrefix applies the HasPrefix predicate on the "discussion_id" field.
func DiscussionIDHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldDiscussionID, v))
}

// DiscussionIDHasSuffix applies the HasSuffix predicate on the "discussion_id" field.
func DiscussionIDHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldDiscussionID, v))
}

// DiscussionIDEqualFold applies the EqualFold predicate on the "discussion_id" field.
func DiscussionIDEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldDiscussionID, v))
}

// DiscussionIDContainsFold applies the ContainsFold predicate on the "discussion_id" field.
func DiscussionIDContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldDiscussionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldTopic, v))
}

// AgentsEQ applies the EQ predicate on the "agents" field.
func AgentsEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldAgents, v))
}

// AgentsNEQ applies the NEQ predicate on the "agents" field.
func AgentsNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldAgents, v))
}

// AgentsIn applies the In predicate on the "agents" field.
func AgentsIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldAgents, vs...))
}

// AgentsNotIn applies the NotIn predicate on the "agents" field.
func AgentsNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldAgents, vs...))
}

// AgentsGT applies the GT predicate on the "agents" field.
func AgentsGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldAgents, v))
}

// AgentsGTE applies the GTE predicate on the "agents" field.
func AgentsGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldAgents, v))
}

// AgentsLT applies the LT predicate on the "agents" field.
func AgentsLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldAgents, v))
}

// AgentsLTE applies the LTE predicate on the "agents" field.
func AgentsLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldAgents, v))
}

// AgentsContains applies the Contains predicate on the "agents" field.
func AgentsContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldAgents, v))
}

// AgentsHasPrefix applies the HasPrefix predicate on the "agents" field.
func AgentsHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldAgents, v))
}

// AgentsHasSuffix applies the HasSuffix predicate on the "agents" field.
func AgentsHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldAgents, v))
}

// AgentsEqualFold applies the EqualFold predicate on the "agents" field.
func AgentsEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldAgents, v))
}

// AgentsContainsFold applies the ContainsFold predicate on the "agents" field.
func AgentsContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldAgents, v))
}

// ChatHistoryEQ applies the EQ predicate on the "chat_history" field.
func ChatHistoryEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldChatHistory, v))
}

// ChatHistoryNEQ applies the NEQ predicate on the "chat_history" field.
func ChatHistoryNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldChatHistory, v))
}

// ChatHistoryIn applies the In predicate on the "chat_history" field.
func ChatHistoryIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldChatHistory, vs...))
}

// ChatHistoryNotIn applies the NotIn predicate on the "chat_history" field.
func ChatHistoryNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldChatHistory, vs...))
}

// ChatHistoryGT applies the GT predicate on the "chat_history" field.
func ChatHistoryGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldChatHistory, v))
}

// ChatHistoryGTE applies the GTE predicate on the "chat_history" field.
func ChatHistoryGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldChatHistory, v))
}

// ChatHistoryLT applies the LT predicate on the "chat_history" field.
func ChatHistoryLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldChatHistory, v))
}

// ChatHistoryLTE applies the LTE predicate on the "chat_history" field.
func ChatHistoryLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldChatHistory, v))
}

// ChatHistoryContains applies the Contains predicate on the "chat_history" field.
func ChatHistoryContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldChatHistory, v))
}

// ChatHistoryHasPrefix applies the HasPrefix predicate on the "chat_history" field.
func ChatHistoryHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldChatHistory, v))
}

// ChatHistoryHasSuffix applies the HasSuffix predicate on the "chat_history" field.
func ChatHistoryHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldChatHistory, v))
}

// ChatHistoryEqualFold applies the EqualFold predicate on the "chat_history" field.
func ChatHistoryEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldChatHistory, v))
}

// ChatHistoryContainsFold applies the ContainsFold predicate on the "chat_history" field.
func ChatHistoryContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldChatHistory, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldSummary, v))
}

// UserEQ applies the EQ predicate on the "user" field.
func UserEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUser, v))
}

// UserNEQ applies the NEQ predicate on the "user" field.
func UserNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldUser, v))
}

// UserIn applies the In predicate on the "user" field.
func UserIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldUser, vs...))
}

// UserNotIn applies the NotIn predicate on the "user" field.
func UserNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldUser, vs...))
}

// UserGT applies the GT predicate on the "user" field.
func UserGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldUser, v))
}

// UserGTE applies the GTE predicate on the "user" field.
func UserGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldUser, v))
}

// UserLT applies the LT predicate on the "user" field.
func UserLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldUser, v))
}

// UserLTE applies the LTE predicate on the "user" field.
func UserLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldUser, v))
}

// UserContains applies the Contains predicate on the "user" field.
func UserContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldUser, v))
}

// UserHasPrefix applies the HasPrefix predicate on the "user" field.
func UserHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldUser, v))
}

// UserHasSuffix applies the HasSuffix predicate on the "user" field.
func UserHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldUser, v))
}

// UserIsNil applies the IsNil predicate on the "user" field.
func UserIsNil() predicate.Discussion {
	return predicate.Discussion(sql.FieldIsNull(FieldUser))
}

// UserNotNil applies the NotNil predicate on the "user" field.
func UserNotNil() predicate.Discussion {
	return predicate.Discussion(sql.FieldNotNull(FieldUser))
}

// UserEqualFold applies the EqualFold predicate on the "user" field.
func UserEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldUser, v))
}

// UserContainsFold applies the ContainsFold predicate on the "user" field.
func UserContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldUser, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.NotPredicates(p))
}
