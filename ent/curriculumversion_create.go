// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
)

// CurriculumVersionCreate is the builder for creating a CurriculumVersion entity.
type CurriculumVersionCreate struct {
	config
	mutation *CurriculumVersionMutation
	hooks    []Hook
}

// SetCurriculumID sets the "curriculum_id" field.
func (_c *CurriculumVersionCreate) SetCurriculumID(v string) *CurriculumVersionCreate {
	_c.mutation.SetCurriculumID(v)
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *CurriculumVersionCreate) SetVersionNumber(v int) *CurriculumVersionCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CurriculumVersionCreate) SetContent(v map[string]interface{}) *CurriculumVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CurriculumVersionCreate) SetCreatedAt(v time.Time) *CurriculumVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CurriculumVersionCreate) SetNillableCreatedAt(v *time.Time) *CurriculumVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CurriculumVersionCreate) SetID(v string) *CurriculumVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCurriculum sets the "curriculum" edge to the Curriculum entity.
func (_c *CurriculumVersionCreate) SetCurriculum(v *Curriculum) *CurriculumVersionCreate {
	return _c.SetCurriculumID(v.ID)
}

// Mutation returns the CurriculumVersionMutation object of the builder.
func (_c *CurriculumVersionCreate) Mutation() *CurriculumVersionMutation {
	return _c.mutation
}

// Save creates the CurriculumVersion in the database.
func (_c *CurriculumVersionCreate) Save(ctx context.Context) (*CurriculumVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CurriculumVersionCreate) SaveX(ctx context.Context) *CurriculumVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CurriculumVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := curriculumversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CurriculumVersionCreate) check() error {
	if _, ok := _c.mutation.CurriculumID(); !ok {
		return &ValidationError{Name: "curriculum_id", err: errors.New(`ent: missing required field "CurriculumVersion.curriculum_id"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "CurriculumVersion.version_number"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CurriculumVersion.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CurriculumVersion.created_at"`)}
	}
	if len(_c.mutation.CurriculumIDs()) == 0 {
		return &ValidationError{Name: "curriculum", err: errors.New(`ent: missing required edge "CurriculumVersion.curriculum"`)}
	}
	return nil
}

func (_c *CurriculumVersionCreate) sqlSave(ctx context.Context) (*CurriculumVersion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CurriculumVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CurriculumVersionCreate) createSpec() (*CurriculumVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &CurriculumVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(curriculumversion.Table, sqlgraph.NewFieldSpec(curriculumversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(curriculumversion.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(curriculumversion.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(curriculumversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CurriculumIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   curriculumversion.CurriculumTable,
			Columns: []string{curriculumversion.CurriculumColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CurriculumID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CurriculumVersionCreateBulk is the builder for creating many CurriculumVersion entities in bulk.
type CurriculumVersionCreateBulk struct {
	config
	err      error
	builders []*CurriculumVersionCreate
}

// Save creates the CurriculumVersion entities in the database.
func (_c *CurriculumVersionCreateBulk) Save(ctx context.Context) ([]*CurriculumVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CurriculumVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurriculumVersionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CurriculumVersionCreateBulk) SaveX(ctx context.Context) []*CurriculumVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
