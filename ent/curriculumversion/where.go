// Code generated by ent, DO NOT EDIT.

package curriculumversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lecternhq/lectern/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldContainsFold(FieldID, id))
}

// CurriculumID applies equality check predicate on the "curriculum_id" field. It's identical to CurriculumIDEQ.
func CurriculumID(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldCurriculumID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CurriculumIDEQ applies the EQ predicate on the "curriculum_id" field.
func CurriculumIDEQ(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldCurriculumID, v))
}

// CurriculumIDNEQ applies the NEQ predicate on the "curriculum_id" field.
func CurriculumIDNEQ(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNEQ(FieldCurriculumID, v))
}

// CurriculumIDIn applies the In predicate on the "curriculum_id" field.
func CurriculumIDIn(vs ...string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldIn(FieldCurriculumID, vs...))
}

// CurriculumIDNotIn applies the NotIn predicate on the "curriculum_id" field.
func CurriculumIDNotIn(vs ...string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNotIn(FieldCurriculumID, vs...))
}

// CurriculumIDGT applies the GT predicate on the "curriculum_id" field.
func CurriculumIDGT(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGT(FieldCurriculumID, v))
}

// CurriculumIDGTE applies the GTE predicate on the "curriculum_id" field.
func CurriculumIDGTE(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGTE(FieldCurriculumID, v))
}

// CurriculumIDLT applies the LT predicate on the "curriculum_id" field.
func CurriculumIDLT(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLT(FieldCurriculumID, v))
}

// CurriculumIDLTE applies the LTE predicate on the "curriculum_id" field.
func CurriculumIDLTE(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLTE(FieldCurriculumID, v))
}

// CurriculumIDContains applies the Contains predicate on the "curriculum_id" field.
func CurriculumIDContains(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldContains(FieldCurriculumID, v))
}

// CurriculumIDHasPrefix applies the HasPrefix predicate on the "curriculum_id" field.
func CurriculumIDHasPrefix(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldHasPrefix(FieldCurriculumID, v))
}

// CurriculumIDHasSuffix applies the HasSuffix predicate on the "curriculum_id" field.
func CurriculumIDHasSuffix(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldHasSuffix(FieldCurriculumID, v))
}

// CurriculumIDEqualFold applies the EqualFold predicate on the "curriculum_id" field.
func CurriculumIDEqualFold(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEqualFold(FieldCurriculumID, v))
}

// CurriculumIDContainsFold applies the ContainsFold predicate on the "curriculum_id" field.
func CurriculumIDContainsFold(v string) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldContainsFold(FieldCurriculumID, v))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLTE(FieldVersionNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCurriculum applies the HasEdge predicate on the "curriculum" edge.
func HasCurriculum() predicate.CurriculumVersion {
	return predicate.CurriculumVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CurriculumTable, CurriculumColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCurriculumWith applies the HasEdge predicate on the "curriculum" edge with a given conditions (other predicates).
func HasCurriculumWith(preds ...predicate.Curriculum) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(func(s *sql.Selector) {
		step := newCurriculumStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CurriculumVersion) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CurriculumVersion) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CurriculumVersion) predicate.CurriculumVersion {
	return predicate.CurriculumVersion(sql.NotPredicates(p))
}
