// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
)

// CurriculumCreate is the builder for creating a Curriculum entity.
type CurriculumCreate struct {
	config
	mutation *CurriculumMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CurriculumCreate) SetUserID(v string) *CurriculumCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CurriculumCreate) SetTitle(v string) *CurriculumCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTargetAudience sets the "target_audience" field.
func (_c *CurriculumCreate) SetTargetAudience(v string) *CurriculumCreate {
	_c.mutation.SetTargetAudience(v)
	return _c
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableTargetAudience(v *string) *CurriculumCreate {
	if v != nil {
		_c.SetTargetAudience(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *CurriculumCreate) SetDuration(v string) *CurriculumCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableDuration(v *string) *CurriculumCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *CurriculumCreate) SetType(v curriculum.Type) *CurriculumCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableType(v *curriculum.Type) *CurriculumCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *CurriculumCreate) SetContent(v map[string]interface{}) *CurriculumCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CurriculumCreate) SetMetadata(v map[string]interface{}) *CurriculumCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *CurriculumCreate) SetIsPublic(v bool) *CurriculumCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableIsPublic(v *bool) *CurriculumCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CurriculumCreate) SetCreatedAt(v time.Time) *CurriculumCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableCreatedAt(v *time.Time) *CurriculumCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CurriculumCreate) SetUpdatedAt(v time.Time) *CurriculumCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CurriculumCreate) SetNillableUpdatedAt(v *time.Time) *CurriculumCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CurriculumCreate) SetID(v string) *CurriculumCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddVersionIDs adds the "versions" edge to the CurriculumVersion entity by IDs.
func (_c *CurriculumCreate) AddVersionIDs(ids ...string) *CurriculumCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the CurriculumVersion entity.
func (_c *CurriculumCreate) AddVersions(v ...*CurriculumVersion) *CurriculumCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_c *CurriculumCreate) AddChatMessageIDs(ids ...string) *CurriculumCreate {
	_c.mutation.AddChatMessageIDs(ids...)
	return _c
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_c *CurriculumCreate) AddChatMessages(v ...*ChatMessage) *CurriculumCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatMessageIDs(ids...)
}

// Mutation returns the CurriculumMutation object of the builder.
func (_c *CurriculumCreate) Mutation() *CurriculumMutation {
	return _c.mutation
}

// Save creates the Curriculum in the database.
func (_c *CurriculumCreate) Save(ctx context.Context) (*Curriculum, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CurriculumCreate) SaveX(ctx context.Context) *Curriculum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CurriculumCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := curriculum.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := curriculum.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := curriculum.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := curriculum.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CurriculumCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Curriculum.user_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Curriculum.title"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Curriculum.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := curriculum.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Curriculum.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Curriculum.content"`)}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`ent: missing required field "Curriculum.is_public"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Curriculum.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Curriculum.updated_at"`)}
	}
	return nil
}

func (_c *CurriculumCreate) sqlSave(ctx context.Context) (*Curriculum, error) {
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
			return nil, fmt.Errorf("unexpected Curriculum.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CurriculumCreate) createSpec() (*Curriculum, *sqlgraph.CreateSpec) {
	var (
		_node = &Curriculum{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(curriculum.Table, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(curriculum.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(curriculum.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TargetAudience(); ok {
		_spec.SetField(curriculum.FieldTargetAudience, field.TypeString, value)
		_node.TargetAudience = &value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(curriculum.FieldDuration, field.TypeString, value)
		_node.Duration = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(curriculum.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(curriculum.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(curriculum.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(curriculum.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(curriculum.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculum.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   curriculum.VersionsTable,
			Columns: []string{curriculum.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(curriculumversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   curriculum.ChatMessagesTable,
			Columns: []string{curriculum.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CurriculumCreateBulk is the builder for creating many Curriculum entities in bulk.
type CurriculumCreateBulk struct {
	config
	err      error
	builders []*CurriculumCreate
}

// Save creates the Curriculum entities in the database.
func (_c *CurriculumCreateBulk) Save(ctx context.Context) ([]*Curriculum, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Curriculum, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurriculumMutation)
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
func (_c *CurriculumCreateBulk) SaveX(ctx context.Context) []*Curriculum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CurriculumCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CurriculumCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
