// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lecternhq/lectern/ent/curriculum"
)

// Curriculum is the model entity for the Curriculum schema.
type Curriculum struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner identity from the auth provider
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// TargetAudience holds the value of the "target_audience" field.
	TargetAudience *string `json:"target_audience,omitempty"`
	// Free-form course length, e.g. '8 weeks'
	Duration *string `json:"duration,omitempty"`
	// Type holds the value of the "type" field.
	Type curriculum.Type `json:"type,omitempty"`
	// Structured body: summary, objectives, chapters, resources
	Content map[string]interface{} `json:"content,omitempty"`
	// Difficulty, prerequisites, tools, language
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Shared read-only link enabled
	IsPublic bool `json:"is_public,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CurriculumQuery when eager-loading is set.
	Edges        CurriculumEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CurriculumEdges holds the relations/edges for other nodes in the graph.
type CurriculumEdges struct {
	// Versions holds the value of the versions edge.
	Versions []*CurriculumVersion `json:"versions,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e CurriculumEdges) VersionsOrErr() ([]*CurriculumVersion, error) {
	if e.loadedTypes[0] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e CurriculumEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[1] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Curriculum) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case curriculum.FieldContent, curriculum.FieldMetadata:
			values[i] = new([]byte)
		case curriculum.FieldIsPublic:
			values[i] = new(sql.NullBool)
		case curriculum.FieldID, curriculum.FieldUserID, curriculum.FieldTitle, curriculum.FieldTargetAudience, curriculum.FieldDuration, curriculum.FieldType:
			values[i] = new(sql.NullString)
		case curriculum.FieldCreatedAt, curriculum.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Curriculum fields.
func (_m *Curriculum) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case curriculum.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case curriculum.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case curriculum.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case curriculum.FieldTargetAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience", values[i])
			} else if value.Valid {
				_m.TargetAudience = new(string)
				*_m.TargetAudience = value.String
			}
		case curriculum.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = new(string)
				*_m.Duration = value.String
			}
		case curriculum.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = curriculum.Type(value.String)
			}
		case curriculum.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case curriculum.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case curriculum.FieldIsPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_public", values[i])
			} else if value.Valid {
				_m.IsPublic = value.Bool
			}
		case curriculum.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case curriculum.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Curriculum.
// This includes values selected through modifiers, order, etc.
func (_m *Curriculum) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVersions queries the "versions" edge of the Curriculum entity.
func (_m *Curriculum) QueryVersions() *CurriculumVersionQuery {
	return NewCurriculumClient(_m.config).QueryVersions(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the Curriculum entity.
func (_m *Curriculum) QueryChatMessages() *ChatMessageQuery {
	return NewCurriculumClient(_m.config).QueryChatMessages(_m)
}

// Update returns a builder for updating this Curriculum.
// Note that you need to call Curriculum.Unwrap() before calling this method if this Curriculum
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Curriculum) Update() *CurriculumUpdateOne {
	return NewCurriculumClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Curriculum entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Curriculum) Unwrap() *Curriculum {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Curriculum is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Curriculum) String() string {
	var builder strings.Builder
	builder.WriteString("Curriculum(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.TargetAudience; v != nil {
		builder.WriteString("target_audience=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Duration; v != nil {
		builder.WriteString("duration=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("is_public=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublic))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Curriculums is a parsable slice of Curriculum.
type Curriculums []*Curriculum
