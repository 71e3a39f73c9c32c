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
	"github.com/lecternhq/lectern/ent/curriculumversion"
)

// CurriculumVersion is the model entity for the CurriculumVersion schema.
type CurriculumVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CurriculumID holds the value of the "curriculum_id" field.
	CurriculumID string `json:"curriculum_id,omitempty"`
	// 1-based, monotonically increasing per curriculum
	VersionNumber int `json:"version_number,omitempty"`
	// Content holds the value of the "content" field.
	Content map[string]interface{} `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CurriculumVersionQuery when eager-loading is set.
	Edges        CurriculumVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CurriculumVersionEdges holds the relations/edges for other nodes in the graph.
type CurriculumVersionEdges struct {
	// Curriculum holds the value of the curriculum edge.
	Curriculum *Curriculum `json:"curriculum,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CurriculumOrErr returns the Curriculum value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CurriculumVersionEdges) CurriculumOrErr() (*Curriculum, error) {
	if e.Curriculum != nil {
		return e.Curriculum, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: curriculum.Label}
	}
	return nil, &NotLoadedError{edge: "curriculum"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CurriculumVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case curriculumversion.FieldContent:
			values[i] = new([]byte)
		case curriculumversion.FieldVersionNumber:
			values[i] = new(sql.NullInt64)
		case curriculumversion.FieldID, curriculumversion.FieldCurriculumID:
			values[i] = new(sql.NullString)
		case curriculumversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CurriculumVersion fields.
func (_m *CurriculumVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case curriculumversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case curriculumversion.FieldCurriculumID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field curriculum_id", values[i])
			} else if value.Valid {
				_m.CurriculumID = value.String
			}
		case curriculumversion.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case curriculumversion.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case curriculumversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CurriculumVersion.
// This includes values selected through modifiers, order, etc.
func (_m *CurriculumVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCurriculum queries the "curriculum" edge of the CurriculumVersion entity.
func (_m *CurriculumVersion) QueryCurriculum() *CurriculumQuery {
	return NewCurriculumVersionClient(_m.config).QueryCurriculum(_m)
}

// Update returns a builder for updating this CurriculumVersion.
// Note that you need to call CurriculumVersion.Unwrap() before calling this method if this CurriculumVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CurriculumVersion) Update() *CurriculumVersionUpdateOne {
	return NewCurriculumVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CurriculumVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CurriculumVersion) Unwrap() *CurriculumVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CurriculumVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CurriculumVersion) String() string {
	var builder strings.Builder
	builder.WriteString("CurriculumVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("curriculum_id=")
	builder.WriteString(_m.CurriculumID)
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CurriculumVersions is a parsable slice of CurriculumVersion.
type CurriculumVersions []*CurriculumVersion
