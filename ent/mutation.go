// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage       = "ChatMessage"
	TypeCurriculum        = "Curriculum"
	TypeCurriculumVersion = "CurriculumVersion"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	role              *chatmessage.Role
	content           *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	curriculum        *string
	clearedcurriculum bool
	done              bool
	oldValue          func(context.Context) (*ChatMessage, error)
	predicates        []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCurriculumID sets the "curriculum_id" field.
func (m *ChatMessageMutation) SetCurriculumID(s string) {
	m.curriculum = &s
}

// CurriculumID returns the value of the "curriculum_id" field in the mutation.
func (m *ChatMessageMutation) CurriculumID() (r string, exists bool) {
	v := m.curriculum
	if v == nil {
		return
	}
	return *v, true
}

// OldCurriculumID returns the old "curriculum_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCurriculumID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurriculumID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurriculumID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurriculumID: %w", err)
	}
	return oldValue.CurriculumID, nil
}

// ResetCurriculumID resets all changes to the "curriculum_id" field.
func (m *ChatMessageMutation) ResetCurriculumID() {
	m.curriculum = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCurriculum clears the "curriculum" edge to the Curriculum entity.
func (m *ChatMessageMutation) ClearCurriculum() {
	m.clearedcurriculum = true
	m.clearedFields[chatmessage.FieldCurriculumID] = struct{}{}
}

// CurriculumCleared reports if the "curriculum" edge to the Curriculum entity was cleared.
func (m *ChatMessageMutation) CurriculumCleared() bool {
	return m.clearedcurriculum
}

// CurriculumIDs returns the "curriculum" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CurriculumID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) CurriculumIDs() (ids []string) {
	if id := m.curriculum; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCurriculum resets all changes to the "curriculum" edge.
func (m *ChatMessageMutation) ResetCurriculum() {
	m.curriculum = nil
	m.clearedcurriculum = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.curriculum != nil {
		fields = append(fields, chatmessage.FieldCurriculumID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldCurriculumID:
		return m.CurriculumID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldCurriculumID:
		return m.OldCurriculumID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldCurriculumID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurriculumID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldCurriculumID:
		m.ResetCurriculumID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.curriculum != nil {
		edges = append(edges, chatmessage.EdgeCurriculum)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeCurriculum:
		if id := m.curriculum; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcurriculum {
		edges = append(edges, chatmessage.EdgeCurriculum)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeCurriculum:
		return m.clearedcurriculum
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeCurriculum:
		m.ClearCurriculum()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeCurriculum:
		m.ResetCurriculum()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// CurriculumMutation represents an operation that mutates the Curriculum nodes in the graph.
type CurriculumMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	title                *string
	target_audience      *string
	duration             *string
	_type                *curriculum.Type
	content              *map[string]interface{}
	metadata             *map[string]interface{}
	is_public            *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	versions             map[string]struct{}
	removedversions      map[string]struct{}
	clearedversions      bool
	chat_messages        map[string]struct{}
	removedchat_messages map[string]struct{}
	clearedchat_messages bool
	done                 bool
	oldValue             func(context.Context) (*Curriculum, error)
	predicates           []predicate.Curriculum
}

var _ ent.Mutation = (*CurriculumMutation)(nil)

// curriculumOption allows management of the mutation configuration using functional options.
type curriculumOption func(*CurriculumMutation)

// newCurriculumMutation creates new mutation for the Curriculum entity.
func newCurriculumMutation(c config, op Op, opts ...curriculumOption) *CurriculumMutation {
	m := &CurriculumMutation{
		config:        c,
		op:            op,
		typ:           TypeCurriculum,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCurriculumID sets the ID field of the mutation.
func withCurriculumID(id string) curriculumOption {
	return func(m *CurriculumMutation) {
		var (
			err   error
			once  sync.Once
			value *Curriculum
		)
		m.oldValue = func(ctx context.Context) (*Curriculum, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Curriculum.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCurriculum sets the old Curriculum of the mutation.
func withCurriculum(node *Curriculum) curriculumOption {
	return func(m *CurriculumMutation) {
		m.oldValue = func(context.Context) (*Curriculum, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CurriculumMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CurriculumMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Curriculum entities.
func (m *CurriculumMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CurriculumMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CurriculumMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Curriculum.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CurriculumMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CurriculumMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CurriculumMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *CurriculumMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CurriculumMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CurriculumMutation) ResetTitle() {
	m.title = nil
}

// SetTargetAudience sets the "target_audience" field.
func (m *CurriculumMutation) SetTargetAudience(s string) {
	m.target_audience = &s
}

// TargetAudience returns the value of the "target_audience" field in the mutation.
func (m *CurriculumMutation) TargetAudience() (r string, exists bool) {
	v := m.target_audience
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudience returns the old "target_audience" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldTargetAudience(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudience: %w", err)
	}
	return oldValue.TargetAudience, nil
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (m *CurriculumMutation) ClearTargetAudience() {
	m.target_audience = nil
	m.clearedFields[curriculum.FieldTargetAudience] = struct{}{}
}

// TargetAudienceCleared returns if the "target_audience" field was cleared in this mutation.
func (m *CurriculumMutation) TargetAudienceCleared() bool {
	_, ok := m.clearedFields[curriculum.FieldTargetAudience]
	return ok
}

// ResetTargetAudience resets all changes to the "target_audience" field.
func (m *CurriculumMutation) ResetTargetAudience() {
	m.target_audience = nil
	delete(m.clearedFields, curriculum.FieldTargetAudience)
}

// SetDuration sets the "duration" field.
func (m *CurriculumMutation) SetDuration(s string) {
	m.duration = &s
}

// Duration returns the value of the "duration" field in the mutation.
func (m *CurriculumMutation) Duration() (r string, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldDuration(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// ClearDuration clears the value of the "duration" field.
func (m *CurriculumMutation) ClearDuration() {
	m.duration = nil
	m.clearedFields[curriculum.FieldDuration] = struct{}{}
}

// DurationCleared returns if the "duration" field was cleared in this mutation.
func (m *CurriculumMutation) DurationCleared() bool {
	_, ok := m.clearedFields[curriculum.FieldDuration]
	return ok
}

// ResetDuration resets all changes to the "duration" field.
func (m *CurriculumMutation) ResetDuration() {
	m.duration = nil
	delete(m.clearedFields, curriculum.FieldDuration)
}

// SetType sets the "type" field.
func (m *CurriculumMutation) SetType(c curriculum.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CurriculumMutation) GetType() (r curriculum.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldType(ctx context.Context) (v curriculum.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CurriculumMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *CurriculumMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *CurriculumMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CurriculumMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *CurriculumMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CurriculumMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CurriculumMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[curriculum.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CurriculumMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[curriculum.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CurriculumMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, curriculum.FieldMetadata)
}

// SetIsPublic sets the "is_public" field.
func (m *CurriculumMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *CurriculumMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *CurriculumMutation) ResetIsPublic() {
	m.is_public = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CurriculumMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CurriculumMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CurriculumMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CurriculumMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CurriculumMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Curriculum entity.
// If the Curriculum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CurriculumMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddVersionIDs adds the "versions" edge to the CurriculumVersion entity by ids.
func (m *CurriculumMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the CurriculumVersion entity.
func (m *CurriculumMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the CurriculumVersion entity was cleared.
func (m *CurriculumMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the CurriculumVersion entity by IDs.
func (m *CurriculumMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the CurriculumVersion entity.
func (m *CurriculumMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *CurriculumMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *CurriculumMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *CurriculumMutation) AddChatMessageIDs(ids ...string) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *CurriculumMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *CurriculumMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *CurriculumMutation) RemoveChatMessageIDs(ids ...string) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *CurriculumMutation) RemovedChatMessagesIDs() (ids []string) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *CurriculumMutation) ChatMessagesIDs() (ids []string) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *CurriculumMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// Where appends a list predicates to the CurriculumMutation builder.
func (m *CurriculumMutation) Where(ps ...predicate.Curriculum) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CurriculumMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CurriculumMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Curriculum, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CurriculumMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CurriculumMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Curriculum).
func (m *CurriculumMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CurriculumMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, curriculum.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, curriculum.FieldTitle)
	}
	if m.target_audience != nil {
		fields = append(fields, curriculum.FieldTargetAudience)
	}
	if m.duration != nil {
		fields = append(fields, curriculum.FieldDuration)
	}
	if m._type != nil {
		fields = append(fields, curriculum.FieldType)
	}
	if m.content != nil {
		fields = append(fields, curriculum.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, curriculum.FieldMetadata)
	}
	if m.is_public != nil {
		fields = append(fields, curriculum.FieldIsPublic)
	}
	if m.created_at != nil {
		fields = append(fields, curriculum.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, curriculum.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CurriculumMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case curriculum.FieldUserID:
		return m.UserID()
	case curriculum.FieldTitle:
		return m.Title()
	case curriculum.FieldTargetAudience:
		return m.TargetAudience()
	case curriculum.FieldDuration:
		return m.Duration()
	case curriculum.FieldType:
		return m.GetType()
	case curriculum.FieldContent:
		return m.Content()
	case curriculum.FieldMetadata:
		return m.Metadata()
	case curriculum.FieldIsPublic:
		return m.IsPublic()
	case curriculum.FieldCreatedAt:
		return m.CreatedAt()
	case curriculum.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CurriculumMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case curriculum.FieldUserID:
		return m.OldUserID(ctx)
	case curriculum.FieldTitle:
		return m.OldTitle(ctx)
	case curriculum.FieldTargetAudience:
		return m.OldTargetAudience(ctx)
	case curriculum.FieldDuration:
		return m.OldDuration(ctx)
	case curriculum.FieldType:
		return m.OldType(ctx)
	case curriculum.FieldContent:
		return m.OldContent(ctx)
	case curriculum.FieldMetadata:
		return m.OldMetadata(ctx)
	case curriculum.FieldIsPublic:
		return m.OldIsPublic(ctx)
	case curriculum.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case curriculum.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Curriculum field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurriculumMutation) SetField(name string, value ent.Value) error {
	switch name {
	case curriculum.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case curriculum.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case curriculum.FieldTargetAudience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudience(v)
		return nil
	case curriculum.FieldDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case curriculum.FieldType:
		v, ok := value.(curriculum.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case curriculum.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case curriculum.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case curriculum.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	case curriculum.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case curriculum.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Curriculum field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CurriculumMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CurriculumMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurriculumMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Curriculum numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CurriculumMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(curriculum.FieldTargetAudience) {
		fields = append(fields, curriculum.FieldTargetAudience)
	}
	if m.FieldCleared(curriculum.FieldDuration) {
		fields = append(fields, curriculum.FieldDuration)
	}
	if m.FieldCleared(curriculum.FieldMetadata) {
		fields = append(fields, curriculum.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CurriculumMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CurriculumMutation) ClearField(name string) error {
	switch name {
	case curriculum.FieldTargetAudience:
		m.ClearTargetAudience()
		return nil
	case curriculum.FieldDuration:
		m.ClearDuration()
		return nil
	case curriculum.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Curriculum nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CurriculumMutation) ResetField(name string) error {
	switch name {
	case curriculum.FieldUserID:
		m.ResetUserID()
		return nil
	case curriculum.FieldTitle:
		m.ResetTitle()
		return nil
	case curriculum.FieldTargetAudience:
		m.ResetTargetAudience()
		return nil
	case curriculum.FieldDuration:
		m.ResetDuration()
		return nil
	case curriculum.FieldType:
		m.ResetType()
		return nil
	case curriculum.FieldContent:
		m.ResetContent()
		return nil
	case curriculum.FieldMetadata:
		m.ResetMetadata()
		return nil
	case curriculum.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	case curriculum.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case curriculum.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Curriculum field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CurriculumMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.versions != nil {
		edges = append(edges, curriculum.EdgeVersions)
	}
	if m.chat_messages != nil {
		edges = append(edges, curriculum.EdgeChatMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CurriculumMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case curriculum.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case curriculum.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CurriculumMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedversions != nil {
		edges = append(edges, curriculum.EdgeVersions)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, curriculum.EdgeChatMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CurriculumMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case curriculum.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	case curriculum.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CurriculumMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedversions {
		edges = append(edges, curriculum.EdgeVersions)
	}
	if m.clearedchat_messages {
		edges = append(edges, curriculum.EdgeChatMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CurriculumMutation) EdgeCleared(name string) bool {
	switch name {
	case curriculum.EdgeVersions:
		return m.clearedversions
	case curriculum.EdgeChatMessages:
		return m.clearedchat_messages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CurriculumMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Curriculum unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CurriculumMutation) ResetEdge(name string) error {
	switch name {
	case curriculum.EdgeVersions:
		m.ResetVersions()
		return nil
	case curriculum.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	}
	return fmt.Errorf("unknown Curriculum edge %s", name)
}

// CurriculumVersionMutation represents an operation that mutates the CurriculumVersion nodes in the graph.
type CurriculumVersionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	version_number    *int
	addversion_number *int
	content           *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	curriculum        *string
	clearedcurriculum bool
	done              bool
	oldValue          func(context.Context) (*CurriculumVersion, error)
	predicates        []predicate.CurriculumVersion
}

var _ ent.Mutation = (*CurriculumVersionMutation)(nil)

// curriculumversionOption allows management of the mutation configuration using functional options.
type curriculumversionOption func(*CurriculumVersionMutation)

// newCurriculumVersionMutation creates new mutation for the CurriculumVersion entity.
func newCurriculumVersionMutation(c config, op Op, opts ...curriculumversionOption) *CurriculumVersionMutation {
	m := &CurriculumVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeCurriculumVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCurriculumVersionID sets the ID field of the mutation.
func withCurriculumVersionID(id string) curriculumversionOption {
	return func(m *CurriculumVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *CurriculumVersion
		)
		m.oldValue = func(ctx context.Context) (*CurriculumVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CurriculumVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCurriculumVersion sets the old CurriculumVersion of the mutation.
func withCurriculumVersion(node *CurriculumVersion) curriculumversionOption {
	return func(m *CurriculumVersionMutation) {
		m.oldValue = func(context.Context) (*CurriculumVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CurriculumVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CurriculumVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CurriculumVersion entities.
func (m *CurriculumVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CurriculumVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CurriculumVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CurriculumVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCurriculumID sets the "curriculum_id" field.
func (m *CurriculumVersionMutation) SetCurriculumID(s string) {
	m.curriculum = &s
}

// CurriculumID returns the value of the "curriculum_id" field in the mutation.
func (m *CurriculumVersionMutation) CurriculumID() (r string, exists bool) {
	v := m.curriculum
	if v == nil {
		return
	}
	return *v, true
}

// OldCurriculumID returns the old "curriculum_id" field's value of the CurriculumVersion entity.
// If the CurriculumVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumVersionMutation) OldCurriculumID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurriculumID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurriculumID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurriculumID: %w", err)
	}
	return oldValue.CurriculumID, nil
}

// ResetCurriculumID resets all changes to the "curriculum_id" field.
func (m *CurriculumVersionMutation) ResetCurriculumID() {
	m.curriculum = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *CurriculumVersionMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *CurriculumVersionMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the CurriculumVersion entity.
// If the CurriculumVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumVersionMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *CurriculumVersionMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *CurriculumVersionMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *CurriculumVersionMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetContent sets the "content" field.
func (m *CurriculumVersionMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *CurriculumVersionMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CurriculumVersion entity.
// If the CurriculumVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumVersionMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CurriculumVersionMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CurriculumVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CurriculumVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CurriculumVersion entity.
// If the CurriculumVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurriculumVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CurriculumVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCurriculum clears the "curriculum" edge to the Curriculum entity.
func (m *CurriculumVersionMutation) ClearCurriculum() {
	m.clearedcurriculum = true
	m.clearedFields[curriculumversion.FieldCurriculumID] = struct{}{}
}

// CurriculumCleared reports if the "curriculum" edge to the Curriculum entity was cleared.
func (m *CurriculumVersionMutation) CurriculumCleared() bool {
	return m.clearedcurriculum
}

// CurriculumIDs returns the "curriculum" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CurriculumID instead. It exists only for internal usage by the builders.
func (m *CurriculumVersionMutation) CurriculumIDs() (ids []string) {
	if id := m.curriculum; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCurriculum resets all changes to the "curriculum" edge.
func (m *CurriculumVersionMutation) ResetCurriculum() {
	m.curriculum = nil
	m.clearedcurriculum = false
}

// Where appends a list predicates to the CurriculumVersionMutation builder.
func (m *CurriculumVersionMutation) Where(ps ...predicate.CurriculumVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CurriculumVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CurriculumVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CurriculumVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CurriculumVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CurriculumVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CurriculumVersion).
func (m *CurriculumVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CurriculumVersionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.curriculum != nil {
		fields = append(fields, curriculumversion.FieldCurriculumID)
	}
	if m.version_number != nil {
		fields = append(fields, curriculumversion.FieldVersionNumber)
	}
	if m.content != nil {
		fields = append(fields, curriculumversion.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, curriculumversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CurriculumVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case curriculumversion.FieldCurriculumID:
		return m.CurriculumID()
	case curriculumversion.FieldVersionNumber:
		return m.VersionNumber()
	case curriculumversion.FieldContent:
		return m.Content()
	case curriculumversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CurriculumVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case curriculumversion.FieldCurriculumID:
		return m.OldCurriculumID(ctx)
	case curriculumversion.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case curriculumversion.FieldContent:
		return m.OldContent(ctx)
	case curriculumversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CurriculumVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurriculumVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case curriculumversion.FieldCurriculumID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurriculumID(v)
		return nil
	case curriculumversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case curriculumversion.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case curriculumversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CurriculumVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CurriculumVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, curriculumversion.FieldVersionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CurriculumVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case curriculumversion.FieldVersionNumber:
		return m.AddedVersionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurriculumVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case curriculumversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown CurriculumVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CurriculumVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CurriculumVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CurriculumVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CurriculumVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CurriculumVersionMutation) ResetField(name string) error {
	switch name {
	case curriculumversion.FieldCurriculumID:
		m.ResetCurriculumID()
		return nil
	case curriculumversion.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case curriculumversion.FieldContent:
		m.ResetContent()
		return nil
	case curriculumversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CurriculumVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CurriculumVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.curriculum != nil {
		edges = append(edges, curriculumversion.EdgeCurriculum)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CurriculumVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case curriculumversion.EdgeCurriculum:
		if id := m.curriculum; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CurriculumVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CurriculumVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CurriculumVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcurriculum {
		edges = append(edges, curriculumversion.EdgeCurriculum)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CurriculumVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case curriculumversion.EdgeCurriculum:
		return m.clearedcurriculum
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CurriculumVersionMutation) ClearEdge(name string) error {
	switch name {
	case curriculumversion.EdgeCurriculum:
		m.ClearCurriculum()
		return nil
	}
	return fmt.Errorf("unknown CurriculumVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CurriculumVersionMutation) ResetEdge(name string) error {
	switch name {
	case curriculumversion.EdgeCurriculum:
		m.ResetCurriculum()
		return nil
	}
	return fmt.Errorf("unknown CurriculumVersion edge %s", name)
}
