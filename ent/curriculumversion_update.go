// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/ent/predicate"
)

// CurriculumVersionUpdate is the builder for updating CurriculumVersion entities.
type CurriculumVersionUpdate struct {
	config
	hooks    []Hook
	mutation *CurriculumVersionMutation
}

// Where appends a list predicates to the CurriculumVersionUpdate builder.
func (_u *CurriculumVersionUpdate) Where(ps ...predicate.CurriculumVersion) *CurriculumVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CurriculumVersionMutation object of the builder.
func (_u *CurriculumVersionUpdate) Mutation() *CurriculumVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CurriculumVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CurriculumVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumVersionUpdate) check() error {
	if _u.mutation.CurriculumCleared() && len(_u.mutation.CurriculumIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CurriculumVersion.curriculum"`)
	}
	return nil
}

func (_u *CurriculumVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculumversion.Table, curriculumversion.Columns, sqlgraph.NewFieldSpec(curriculumversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculumversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CurriculumVersionUpdateOne is the builder for updating a single CurriculumVersion entity.
type CurriculumVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurriculumVersionMutation
}

// Mutation returns the CurriculumVersionMutation object of the builder.
func (_u *CurriculumVersionUpdateOne) Mutation() *CurriculumVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CurriculumVersionUpdate builder.
func (_u *CurriculumVersionUpdateOne) Where(ps ...predicate.CurriculumVersion) *CurriculumVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CurriculumVersionUpdateOne) Select(field string, fields ...string) *CurriculumVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CurriculumVersion entity.
func (_u *CurriculumVersionUpdateOne) Save(ctx context.Context) (*CurriculumVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumVersionUpdateOne) SaveX(ctx context.Context) *CurriculumVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CurriculumVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumVersionUpdateOne) check() error {
	if _u.mutation.CurriculumCleared() && len(_u.mutation.CurriculumIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CurriculumVersion.curriculum"`)
	}
	return nil
}

func (_u *CurriculumVersionUpdateOne) sqlSave(ctx context.Context) (_node *CurriculumVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculumversion.Table, curriculumversion.Columns, sqlgraph.NewFieldSpec(curriculumversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CurriculumVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curriculumversion.FieldID)
		for _, f := range fields {
			if !curriculumversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curriculumversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &CurriculumVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculumversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
