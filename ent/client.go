// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/lecternhq/lectern/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// Curriculum is the client for interacting with the Curriculum builders.
	Curriculum *CurriculumClient
	// CurriculumVersion is the client for interacting with the CurriculumVersion builders.
	CurriculumVersion *CurriculumVersionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.Curriculum = NewCurriculumClient(c.config)
	c.CurriculumVersion = NewCurriculumVersionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ChatMessage:       NewChatMessageClient(cfg),
		Curriculum:        NewCurriculumClient(cfg),
		CurriculumVersion: NewCurriculumVersionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ChatMessage:       NewChatMessageClient(cfg),
		Curriculum:        NewCurriculumClient(cfg),
		CurriculumVersion: NewCurriculumVersionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatMessage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ChatMessage.Use(hooks...)
	c.Curriculum.Use(hooks...)
	c.CurriculumVersion.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChatMessage.Intercept(interceptors...)
	c.Curriculum.Intercept(interceptors...)
	c.CurriculumVersion.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *CurriculumMutation:
		return c.Curriculum.mutate(ctx, m)
	case *CurriculumVersionMutation:
		return c.CurriculumVersion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCurriculum queries the curriculum edge of a ChatMessage.
func (c *ChatMessageClient) QueryCurriculum(_m *ChatMessage) *CurriculumQuery {
	query := (&CurriculumClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatmessage.Table, chatmessage.FieldID, id),
			sqlgraph.To(curriculum.Table, curriculum.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatmessage.CurriculumTable, chatmessage.CurriculumColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// CurriculumClient is a client for the Curriculum schema.
type CurriculumClient struct {
	config
}

// NewCurriculumClient returns a client for the Curriculum from the given config.
func NewCurriculumClient(c config) *CurriculumClient {
	return &CurriculumClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `curriculum.Hooks(f(g(h())))`.
func (c *CurriculumClient) Use(hooks ...Hook) {
	c.hooks.Curriculum = append(c.hooks.Curriculum, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `curriculum.Intercept(f(g(h())))`.
func (c *CurriculumClient) Intercept(interceptors ...Interceptor) {
	c.inters.Curriculum = append(c.inters.Curriculum, interceptors...)
}

// Create returns a builder for creating a Curriculum entity.
func (c *CurriculumClient) Create() *CurriculumCreate {
	mutation := newCurriculumMutation(c.config, OpCreate)
	return &CurriculumCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Curriculum entities.
func (c *CurriculumClient) CreateBulk(builders ...*CurriculumCreate) *CurriculumCreateBulk {
	return &CurriculumCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CurriculumClient) MapCreateBulk(slice any, setFunc func(*CurriculumCreate, int)) *CurriculumCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CurriculumCreateBulk{err: fmt.Errorf("calling to CurriculumClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CurriculumCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CurriculumCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Curriculum.
func (c *CurriculumClient) Update() *CurriculumUpdate {
	mutation := newCurriculumMutation(c.config, OpUpdate)
	return &CurriculumUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CurriculumClient) UpdateOne(_m *Curriculum) *CurriculumUpdateOne {
	mutation := newCurriculumMutation(c.config, OpUpdateOne, withCurriculum(_m))
	return &CurriculumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CurriculumClient) UpdateOneID(id string) *CurriculumUpdateOne {
	mutation := newCurriculumMutation(c.config, OpUpdateOne, withCurriculumID(id))
	return &CurriculumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Curriculum.
func (c *CurriculumClient) Delete() *CurriculumDelete {
	mutation := newCurriculumMutation(c.config, OpDelete)
	return &CurriculumDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CurriculumClient) DeleteOne(_m *Curriculum) *CurriculumDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CurriculumClient) DeleteOneID(id string) *CurriculumDeleteOne {
	builder := c.Delete().Where(curriculum.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CurriculumDeleteOne{builder}
}

// Query returns a query builder for Curriculum.
func (c *CurriculumClient) Query() *CurriculumQuery {
	return &CurriculumQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCurriculum},
		inters: c.Interceptors(),
	}
}

// Get returns a Curriculum entity by its id.
func (c *CurriculumClient) Get(ctx context.Context, id string) (*Curriculum, error) {
	return c.Query().Where(curriculum.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CurriculumClient) GetX(ctx context.Context, id string) *Curriculum {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a Curriculum.
func (c *CurriculumClient) QueryVersions(_m *Curriculum) *CurriculumVersionQuery {
	query := (&CurriculumVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(curriculum.Table, curriculum.FieldID, id),
			sqlgraph.To(curriculumversion.Table, curriculumversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, curriculum.VersionsTable, curriculum.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatMessages queries the chat_messages edge of a Curriculum.
func (c *CurriculumClient) QueryChatMessages(_m *Curriculum) *ChatMessageQuery {
	query := (&ChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(curriculum.Table, curriculum.FieldID, id),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, curriculum.ChatMessagesTable, curriculum.ChatMessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CurriculumClient) Hooks() []Hook {
	return c.hooks.Curriculum
}

// Interceptors returns the client interceptors.
func (c *CurriculumClient) Interceptors() []Interceptor {
	return c.inters.Curriculum
}

func (c *CurriculumClient) mutate(ctx context.Context, m *CurriculumMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CurriculumCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CurriculumUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CurriculumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CurriculumDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Curriculum mutation op: %q", m.Op())
	}
}

// CurriculumVersionClient is a client for the CurriculumVersion schema.
type CurriculumVersionClient struct {
	config
}

// NewCurriculumVersionClient returns a client for the CurriculumVersion from the given config.
func NewCurriculumVersionClient(c config) *CurriculumVersionClient {
	return &CurriculumVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `curriculumversion.Hooks(f(g(h())))`.
func (c *CurriculumVersionClient) Use(hooks ...Hook) {
	c.hooks.CurriculumVersion = append(c.hooks.CurriculumVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `curriculumversion.Intercept(f(g(h())))`.
func (c *CurriculumVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CurriculumVersion = append(c.inters.CurriculumVersion, interceptors...)
}

// Create returns a builder for creating a CurriculumVersion entity.
func (c *CurriculumVersionClient) Create() *CurriculumVersionCreate {
	mutation := newCurriculumVersionMutation(c.config, OpCreate)
	return &CurriculumVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CurriculumVersion entities.
func (c *CurriculumVersionClient) CreateBulk(builders ...*CurriculumVersionCreate) *CurriculumVersionCreateBulk {
	return &CurriculumVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CurriculumVersionClient) MapCreateBulk(slice any, setFunc func(*CurriculumVersionCreate, int)) *CurriculumVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CurriculumVersionCreateBulk{err: fmt.Errorf("calling to CurriculumVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CurriculumVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CurriculumVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CurriculumVersion.
func (c *CurriculumVersionClient) Update() *CurriculumVersionUpdate {
	mutation := newCurriculumVersionMutation(c.config, OpUpdate)
	return &CurriculumVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CurriculumVersionClient) UpdateOne(_m *CurriculumVersion) *CurriculumVersionUpdateOne {
	mutation := newCurriculumVersionMutation(c.config, OpUpdateOne, withCurriculumVersion(_m))
	return &CurriculumVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CurriculumVersionClient) UpdateOneID(id string) *CurriculumVersionUpdateOne {
	mutation := newCurriculumVersionMutation(c.config, OpUpdateOne, withCurriculumVersionID(id))
	return &CurriculumVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CurriculumVersion.
func (c *CurriculumVersionClient) Delete() *CurriculumVersionDelete {
	mutation := newCurriculumVersionMutation(c.config, OpDelete)
	return &CurriculumVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CurriculumVersionClient) DeleteOne(_m *CurriculumVersion) *CurriculumVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CurriculumVersionClient) DeleteOneID(id string) *CurriculumVersionDeleteOne {
	builder := c.Delete().Where(curriculumversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CurriculumVersionDeleteOne{builder}
}

// Query returns a query builder for CurriculumVersion.
func (c *CurriculumVersionClient) Query() *CurriculumVersionQuery {
	return &CurriculumVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCurriculumVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a CurriculumVersion entity by its id.
func (c *CurriculumVersionClient) Get(ctx context.Context, id string) (*CurriculumVersion, error) {
	return c.Query().Where(curriculumversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CurriculumVersionClient) GetX(ctx context.Context, id string) *CurriculumVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCurriculum queries the curriculum edge of a CurriculumVersion.
func (c *CurriculumVersionClient) QueryCurriculum(_m *CurriculumVersion) *CurriculumQuery {
	query := (&CurriculumClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(curriculumversion.Table, curriculumversion.FieldID, id),
			sqlgraph.To(curriculum.Table, curriculum.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, curriculumversion.CurriculumTable, curriculumversion.CurriculumColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CurriculumVersionClient) Hooks() []Hook {
	return c.hooks.CurriculumVersion
}

// Interceptors returns the client interceptors.
func (c *CurriculumVersionClient) Interceptors() []Interceptor {
	return c.inters.CurriculumVersion
}

func (c *CurriculumVersionClient) mutate(ctx context.Context, m *CurriculumVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CurriculumVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CurriculumVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CurriculumVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CurriculumVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CurriculumVersion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatMessage, Curriculum, CurriculumVersion []ent.Hook
	}
	inters struct {
		ChatMessage, Curriculum, CurriculumVersion []ent.Interceptor
	}
)
