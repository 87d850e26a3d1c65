// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/roundtable-bot/internal/ent/discussion"
	"github.com/fachebot/roundtable-bot/internal/ent/rating"
	"github.com/fachebot/roundtable-bot/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	discussionMixin := schema.Discussion{}.Mixin()
	discussionMixinFields0 := discussionMixin[0].Fields()
	_ = discussionMixinFields0
	discussionFields := schema.Discussion{}.Fields()
	_ = discussionFields
	// discussionDescCreateTime is the schema descriptor for create_time field.
	discussionDescCreateTime := discussionMixinFields0[0].Descriptor()
	// discussion.DefaultCreateTime holds the default value on creation for the create_time field.
	discussion.DefaultCreateTime = discussionDescCreateTime.Default.(func() time.Time)
	// discussionDescUpdateTime is the schema descriptor for update_time field.
	discussionDescUpdateTime := discussionMixinFields0[1].Descriptor()
	// discussion.DefaultUpdateTime holds the default value on creation for the update_time field.
	discussion.DefaultUpdateTime = discussionDescUpdateTime.Default.(func() time.Time)
	// discussion.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	discussion.UpdateDefaultUpdateTime = discussionDescUpdateTime.UpdateDefault.(func() time.Time)
	ratingMixin := schema.Rating{}.Mixin()
	ratingMixinFields0 := ratingMixin[0].Fields()
	_ = ratingMixinFields0
	ratingFields := schema.Rating{}.Fields()
	_ = ratingFields
	// ratingDescCreateTime is the schema descriptor for create_time field.
	ratingDescCreateTime := ratingMixinFields0[0].Descriptor()
	// rating.DefaultCreateTime holds the default value on creation for the create_time field.
	rating.DefaultCreateTime = ratingDescCreateTime.Default.(func() time.Time)
	// ratingDescUpdateTime is the schema descriptor for update_time field.
	ratingDescUpdateTime := ratingMixinFields0[1].Descriptor()
	// rating.DefaultUpdateTime holds the default value on creation for the update_time field.
	rating.DefaultUpdateTime = ratingDescUpdateTime.Default.(func() time.Time)
	// rating.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	rating.UpdateDefaultUpdateTime = ratingDescUpdateTime.UpdateDefault.(func() time.Time)
	// ratingDescUpvotes is the schema descriptor for upvotes field.
	ratingDescUpvotes := ratingFields[3].Descriptor()
	// rating.DefaultUpvotes holds the default value on creation for the upvotes field.
	rating.DefaultUpvotes = ratingDescUpvotes.Default.(int)
	// ratingDescDownvotes is the schema descriptor for downvotes field.
	ratingDescDownvotes := ratingFields[4].Descriptor()
	// rating.DefaultDownvotes holds the default value on creation for the downvotes field.
	rating.DefaultDownvotes = ratingDescDownvotes.Default.(int)
}
