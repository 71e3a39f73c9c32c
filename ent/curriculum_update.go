// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/ent/predicate"
)

// CurriculumUpdate is the builder for updating Curriculum entities.
type CurriculumUpdate struct {
	config
	hooks    []Hook
	mutation *CurriculumMutation
}

// Where appends a list predicates to the CurriculumUpdate builder.
func (_u *CurriculumUpdate) Where(ps ...predicate.Curriculum) *CurriculumUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CurriculumUpdate) SetTitle(v string) *CurriculumUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableTitle(v *string) *CurriculumUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *CurriculumUpdate) SetTargetAudience(v string) *CurriculumUpdate {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableTargetAudience(v *string) *CurriculumUpdate {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *CurriculumUpdate) ClearTargetAudience() *CurriculumUpdate {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *CurriculumUpdate) SetDuration(v string) *CurriculumUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableDuration(v *string) *CurriculumUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *CurriculumUpdate) ClearDuration() *CurriculumUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetType sets the "type" field.
func (_u *CurriculumUpdate) SetType(v curriculum.Type) *CurriculumUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableType(v *curriculum.Type) *CurriculumUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CurriculumUpdate) SetContent(v map[string]interface{}) *CurriculumUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CurriculumUpdate) SetMetadata(v map[string]interface{}) *CurriculumUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CurriculumUpdate) ClearMetadata() *CurriculumUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *CurriculumUpdate) SetIsPublic(v bool) *CurriculumUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableIsPublic(v *bool) *CurriculumUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurriculumUpdate) SetUpdatedAt(v time.Time) *CurriculumUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CurriculumUpdate) SetNillableUpdatedAt(v *time.Time) *CurriculumUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the CurriculumVersion entity by IDs.
func (_u *CurriculumUpdate) AddVersionIDs(ids ...string) *CurriculumUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the CurriculumVersion entity.
func (_u *CurriculumUpdate) AddVersions(v ...*CurriculumVersion) *CurriculumUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *CurriculumUpdate) AddChatMessageIDs(ids ...string) *CurriculumUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *CurriculumUpdate) AddChatMessages(v ...*ChatMessage) *CurriculumUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the CurriculumMutation object of the builder.
func (_u *CurriculumUpdate) Mutation() *CurriculumMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the CurriculumVersion entity.
func (_u *CurriculumUpdate) ClearVersions() *CurriculumUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to CurriculumVersion entities by IDs.
func (_u *CurriculumUpdate) RemoveVersionIDs(ids ...string) *CurriculumUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to CurriculumVersion entities.
func (_u *CurriculumUpdate) RemoveVersions(v ...*CurriculumVersion) *CurriculumUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *CurriculumUpdate) ClearChatMessages() *CurriculumUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *CurriculumUpdate) RemoveChatMessageIDs(ids ...string) *CurriculumUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *CurriculumUpdate) RemoveChatMessages(v ...*ChatMessage) *CurriculumUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CurriculumUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CurriculumUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := curriculum.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Curriculum.type": %w`, err)}
		}
	}
	return nil
}

func (_u *CurriculumUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculum.Table, curriculum.Columns, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(curriculum.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(curriculum.FieldTargetAudience, field.TypeString, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(curriculum.FieldTargetAudience, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(curriculum.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(curriculum.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(curriculum.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(curriculum.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(curriculum.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(curriculum.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(curriculum.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculum.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CurriculumUpdateOne is the builder for updating a single Curriculum entity.
type CurriculumUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurriculumMutation
}

// SetTitle sets the "title" field.
func (_u *CurriculumUpdateOne) SetTitle(v string) *CurriculumUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableTitle(v *string) *CurriculumUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *CurriculumUpdateOne) SetTargetAudience(v string) *CurriculumUpdateOne {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableTargetAudience(v *string) *CurriculumUpdateOne {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *CurriculumUpdateOne) ClearTargetAudience() *CurriculumUpdateOne {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *CurriculumUpdateOne) SetDuration(v string) *CurriculumUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableDuration(v *string) *CurriculumUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *CurriculumUpdateOne) ClearDuration() *CurriculumUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetType sets the "type" field.
func (_u *CurriculumUpdateOne) SetType(v curriculum.Type) *CurriculumUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableType(v *curriculum.Type) *CurriculumUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CurriculumUpdateOne) SetContent(v map[string]interface{}) *CurriculumUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CurriculumUpdateOne) SetMetadata(v map[string]interface{}) *CurriculumUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CurriculumUpdateOne) ClearMetadata() *CurriculumUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *CurriculumUpdateOne) SetIsPublic(v bool) *CurriculumUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableIsPublic(v *bool) *CurriculumUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CurriculumUpdateOne) SetUpdatedAt(v time.Time) *CurriculumUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CurriculumUpdateOne) SetNillableUpdatedAt(v *time.Time) *CurriculumUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddVersionIDs adds the "versions" edge to the CurriculumVersion entity by IDs.
func (_u *CurriculumUpdateOne) AddVersionIDs(ids ...string) *CurriculumUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the CurriculumVersion entity.
func (_u *CurriculumUpdateOne) AddVersions(v ...*CurriculumVersion) *CurriculumUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *CurriculumUpdateOne) AddChatMessageIDs(ids ...string) *CurriculumUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *CurriculumUpdateOne) AddChatMessages(v ...*ChatMessage) *CurriculumUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the CurriculumMutation object of the builder.
func (_u *CurriculumUpdateOne) Mutation() *CurriculumMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the CurriculumVersion entity.
func (_u *CurriculumUpdateOne) ClearVersions() *CurriculumUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to CurriculumVersion entities by IDs.
func (_u *CurriculumUpdateOne) RemoveVersionIDs(ids ...string) *CurriculumUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to CurriculumVersion entities.
func (_u *CurriculumUpdateOne) RemoveVersions(v ...*CurriculumVersion) *CurriculumUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *CurriculumUpdateOne) ClearChatMessages() *CurriculumUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *CurriculumUpdateOne) RemoveChatMessageIDs(ids ...string) *CurriculumUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *CurriculumUpdateOne) RemoveChatMessages(v ...*ChatMessage) *CurriculumUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Where appends a list predicates to the CurriculumUpdate builder.
func (_u *CurriculumUpdateOne) Where(ps ...predicate.Curriculum) *CurriculumUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CurriculumUpdateOne) Select(field string, fields ...string) *CurriculumUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Curriculum entity.
func (_u *CurriculumUpdateOne) Save(ctx context.Context) (*Curriculum, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CurriculumUpdateOne) SaveX(ctx context.Context) *Curriculum {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CurriculumUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CurriculumUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CurriculumUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := curriculum.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Curriculum.type": %w`, err)}
		}
	}
	return nil
}

func (_u *CurriculumUpdateOne) sqlSave(ctx context.Context) (_node *Curriculum, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curriculum.Table, curriculum.Columns, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Curriculum.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curriculum.FieldID)
		for _, f := range fields {
			if !curriculum.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curriculum.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(curriculum.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(curriculum.FieldTargetAudience, field.TypeString, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(curriculum.FieldTargetAudience, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(curriculum.FieldDuration, field.TypeString, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(curriculum.FieldDuration, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(curriculum.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(curriculum.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(curriculum.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(curriculum.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(curriculum.FieldIsPublic, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(curriculum.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Curriculum{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curriculum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
