// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiscussionsColumns holds the columns for the "discussions" table.
	DiscussionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "discussion_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "agents", Type: field.TypeString, Size: 2147483647},
		{Name: "chat_history", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "user", Type: field.TypeString, Nullable: true},
	}
	// DiscussionsTable holds the schema information for the "discussions" table.
	DiscussionsTable = &schema.Table{
		Name:       "discussions",
		Columns:    DiscussionsColumns,
		PrimaryKey: []*schema.Column{DiscussionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "discussion_user",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[8]},
			},
		},
	}
	// RatingsColumns holds the columns for the "ratings" table.
	RatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "discussion_id", Type: field.TypeString},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "upvotes", Type: field.TypeInt, Default: 0},
		{Name: "downvotes", Type: field.TypeInt, Default: 0},
	}
	// RatingsTable holds the schema information for the "ratings" table.
	RatingsTable = &schema.Table{
		Name:       "ratings",
		Columns:    RatingsColumns,
		PrimaryKey: []*schema.Column{RatingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rating_discussion_id_iteration_agent_name",
				Unique:  true,
				Columns: []*schema.Column{RatingsColumns[3], RatingsColumns[4], RatingsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiscussionsTable,
		RatingsTable,
	}
)

func init() {
}
