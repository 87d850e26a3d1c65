package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Rating holds the schema definition for the Rating entity.
type Rating struct {
	ent.Schema
}

func (Rating) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Rating.
func (Rating) Fields() []ent.Field {
	return []ent.Field{
		field.String("discussion_id").Comment("讨论ID"),
		field.Int("iteration").Comment("迭代轮次，1 基"),
		field.String("agent_name").Comment("被评价的成员名称"),
		field.Int("upvotes").Default(0).Comment("赞成票数"),
		field.Int("downvotes").Default(0).Comment("反对票数"),
	}
}

// Indexes of the Rating.
func (Rating) Indexes() []ent.Index {
	return []ent.Index{
		// 唯一索引：同一讨论、同一轮次、同一成员只有一条评分记录
		index.Fields("discussion_id", "iteration", "agent_name").Unique(),
	}
}
