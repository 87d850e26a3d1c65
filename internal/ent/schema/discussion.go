package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Discussion holds the schema definition for the Discussion entity.
type Discussion struct {
	ent.Schema
}

func (Discussion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Discussion.
func (Discussion) Fields() []ent.Field {
	return []ent.Field{
		field.String("discussion_id").Unique().Comment("讨论ID"),
		field.String("topic").Comment("讨论话题"),
		field.Text("agents").Comment("参与成员名称列表（JSON）"),
		field.Text("chat_history").Comment("完整讨论记录（JSON）"),
		field.Text("summary").Comment("最终总结"),
		field.String("user").Optional().Comment("所属用户"),
	}
}

// Indexes of the Discussion.
func (Discussion) Indexes() []ent.Index {
	return []ent.Index{
		// 索引：用于按用户查询历史讨论
		index.Fields("user"),
	}
}
