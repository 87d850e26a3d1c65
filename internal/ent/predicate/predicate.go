// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Discussion is the predicate function for discussion builders.
type Discussion func(*sql.Selector)

// Rating is the predicate function for rating builders.
type Rating func(*sql.Selector)
