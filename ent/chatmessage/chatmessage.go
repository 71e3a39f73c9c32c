// Code generated by ent, DO NOT EDIT.

package chatmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatmessage type in the database.
	Label = "chat_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldCurriculumID holds the string denoting the curriculum_id field in the database.
	FieldCurriculumID = "curriculum_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCurriculum holds the string denoting the curriculum edge name in mutations.
	EdgeCurriculum = "curriculum"
	// CurriculumFieldID holds the string denoting the ID field of the Curriculum.
	CurriculumFieldID = "curriculum_id"
	// Table holds the table name of the chatmessage in the database.
	Table = "chat_messages"
	// CurriculumTable is the table that holds the curriculum relation/edge.
	CurriculumTable = "chat_messages"
	// CurriculumInverseTable is the table name for the Curriculum entity.
	// It exists in this package in order to avoid circular dependency with the "curriculum" package.
	CurriculumInverseTable = "curriculums"
	// CurriculumColumn is the table column denoting the curriculum relation/edge.
	CurriculumColumn = "curriculum_id"
)

// Columns holds all SQL columns for chatmessage fields.
var Columns = []string{
	FieldID,
	FieldCurriculumID,
	FieldRole,
	FieldContent,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("chatmessage: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the ChatMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCurriculumID orders the results by the curriculum_id field.
func ByCurriculumID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurriculumID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCurriculumField orders the results by curriculum field.
func ByCurriculumField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCurriculumStep(), sql.OrderByField(field, opts...))
	}
}
func newCurriculumStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CurriculumInverseTable, CurriculumFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CurriculumTable, CurriculumColumn),
	)
}
