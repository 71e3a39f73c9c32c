// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/ent/predicate"
)

// CurriculumVersionDelete is the builder for deleting a CurriculumVersion entity.
type CurriculumVersionDelete struct {
	config
	hooks    []Hook
	mutation *CurriculumVersionMutation
}

// Where appends a list predicates to the CurriculumVersionDelete builder.
func (_d *CurriculumVersionDelete) Where(ps ...predicate.CurriculumVersion) *CurriculumVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CurriculumVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CurriculumVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CurriculumVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(curriculumversion.Table, sqlgraph.NewFieldSpec(curriculumversion.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CurriculumVersionDeleteOne is the builder for deleting a single CurriculumVersion entity.
type CurriculumVersionDeleteOne struct {
	_d *CurriculumVersionDelete
}

// Where appends a list predicates to the CurriculumVersionDelete builder.
func (_d *CurriculumVersionDeleteOne) Where(ps ...predicate.CurriculumVersion) *CurriculumVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CurriculumVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{curriculumversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CurriculumVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
