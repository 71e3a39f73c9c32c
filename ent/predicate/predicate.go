// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Curriculum is the predicate function for curriculum builders.
type Curriculum func(*sql.Selector)

// CurriculumVersion is the predicate function for curriculumversion builders.
type CurriculumVersion func(*sql.Selector)
