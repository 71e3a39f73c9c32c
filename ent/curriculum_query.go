// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/ent/predicate"
)

// CurriculumQuery is the builder for querying Curriculum entities.
type CurriculumQuery struct {
	config
	ctx              *QueryContext
	order            []curriculum.OrderOption
	inters           []Interceptor
	predicates       []predicate.Curriculum
	withVersions     *CurriculumVersionQuery
	withChatMessages *ChatMessageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CurriculumQuery builder.
func (_q *CurriculumQuery) Where(ps ...predicate.Curriculum) *CurriculumQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CurriculumQuery) Limit(limit int) *CurriculumQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CurriculumQuery) Offset(offset int) *CurriculumQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CurriculumQuery) Unique(unique bool) *CurriculumQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CurriculumQuery) Order(o ...curriculum.OrderOption) *CurriculumQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVersions chains the current query on the "versions" edge.
func (_q *CurriculumQuery) QueryVersions() *CurriculumVersionQuery {
	query := (&CurriculumVersionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(curriculum.Table, curriculum.FieldID, selector),
			sqlgraph.To(curriculumversion.Table, curriculumversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, curriculum.VersionsTable, curriculum.VersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChatMessages chains the current query on the "chat_messages" edge.
func (_q *CurriculumQuery) QueryChatMessages() *ChatMessageQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(curriculum.Table, curriculum.FieldID, selector),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, curriculum.ChatMessagesTable, curriculum.ChatMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Curriculum entity from the query.
// Returns a *NotFoundError when no Curriculum was found.
func (_q *CurriculumQuery) First(ctx context.Context) (*Curriculum, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{curriculum.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CurriculumQuery) FirstX(ctx context.Context) *Curriculum {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Curriculum ID from the query.
// Returns a *NotFoundError when no Curriculum ID was found.
func (_q *CurriculumQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{curriculum.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CurriculumQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Curriculum entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Curriculum entity is found.
// Returns a *NotFoundError when no Curriculum entities are found.
func (_q *CurriculumQuery) Only(ctx context.Context) (*Curriculum, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{curriculum.Label}
	default:
		return nil, &NotSingularError{curriculum.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CurriculumQuery) OnlyX(ctx context.Context) *Curriculum {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Curriculum ID in the query.
// Returns a *NotSingularError when more than one Curriculum ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CurriculumQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{curriculum.Label}
	default:
		err = &NotSingularError{curriculum.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CurriculumQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Curriculums.
func (_q *CurriculumQuery) All(ctx context.Context) ([]*Curriculum, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Curriculum, *CurriculumQuery]()
	return withInterceptors[[]*Curriculum](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CurriculumQuery) AllX(ctx context.Context) []*Curriculum {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Curriculum IDs.
func (_q *CurriculumQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(curriculum.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CurriculumQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CurriculumQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CurriculumQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CurriculumQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CurriculumQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CurriculumQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CurriculumQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CurriculumQuery) Clone() *CurriculumQuery {
	if _q == nil {
		return nil
	}
	return &CurriculumQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]curriculum.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Curriculum{}, _q.predicates...),
		withVersions:     _q.withVersions.Clone(),
		withChatMessages: _q.withChatMessages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVersions tells the query-builder to eager-load the nodes that are connected to
// the "versions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CurriculumQuery) WithVersions(opts ...func(*CurriculumVersionQuery)) *CurriculumQuery {
	query := (&CurriculumVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVersions = query
	return _q
}

// WithChatMessages tells the query-builder to eager-load the nodes that are connected to
// the "chat_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CurriculumQuery) WithChatMessages(opts ...func(*ChatMessageQuery)) *CurriculumQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChatMessages = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Curriculum.Query().
//		GroupBy(curriculum.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CurriculumQuery) GroupBy(field string, fields ...string) *CurriculumGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CurriculumGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = curriculum.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.Curriculum.Query().
//		Select(curriculum.FieldUserID).
//		Scan(ctx, &v)
func (_q *CurriculumQuery) Select(fields ...string) *CurriculumSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CurriculumSelect{CurriculumQuery: _q}
	sbuild.label = curriculum.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CurriculumSelect configured with the given aggregations.
func (_q *CurriculumQuery) Aggregate(fns ...AggregateFunc) *CurriculumSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CurriculumQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !curriculum.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CurriculumQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Curriculum, error) {
	var (
		nodes       = []*Curriculum{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withVersions != nil,
			_q.withChatMessages != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Curriculum).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Curriculum{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withVersions; query != nil {
		if err := _q.loadVersions(ctx, query, nodes,
			func(n *Curriculum) { n.Edges.Versions = []*CurriculumVersion{} },
			func(n *Curriculum, e *CurriculumVersion) { n.Edges.Versions = append(n.Edges.Versions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChatMessages; query != nil {
		if err := _q.loadChatMessages(ctx, query, nodes,
			func(n *Curriculum) { n.Edges.ChatMessages = []*ChatMessage{} },
			func(n *Curriculum, e *ChatMessage) { n.Edges.ChatMessages = append(n.Edges.ChatMessages, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CurriculumQuery) loadVersions(ctx context.Context, query *CurriculumVersionQuery, nodes []*Curriculum, init func(*Curriculum), assign func(*Curriculum, *CurriculumVersion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Curriculum)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(curriculumversion.FieldCurriculumID)
	}
	query.Where(predicate.CurriculumVersion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(curriculum.VersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CurriculumID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "curriculum_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CurriculumQuery) loadChatMessages(ctx context.Context, query *ChatMessageQuery, nodes []*Curriculum, init func(*Curriculum), assign func(*Curriculum, *ChatMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Curriculum)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatmessage.FieldCurriculumID)
	}
	query.Where(predicate.ChatMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(curriculum.ChatMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CurriculumID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "curriculum_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CurriculumQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CurriculumQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(curriculum.Table, curriculum.Columns, sqlgraph.NewFieldSpec(curriculum.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curriculum.FieldID)
		for i := range fields {
			if fields[i] != curriculum.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CurriculumQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(curriculum.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = curriculum.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CurriculumGroupBy is the group-by builder for Curriculum entities.
type CurriculumGroupBy struct {
	selector
	build *CurriculumQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CurriculumGroupBy) Aggregate(fns ...AggregateFunc) *CurriculumGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CurriculumGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CurriculumQuery, *CurriculumGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CurriculumGroupBy) sqlScan(ctx context.Context, root *CurriculumQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CurriculumSelect is the builder for selecting fields of Curriculum entities.
type CurriculumSelect struct {
	*CurriculumQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CurriculumSelect) Aggregate(fns ...AggregateFunc) *CurriculumSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CurriculumSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CurriculumQuery, *CurriculumSelect](ctx, _s.CurriculumQuery, _s, _s.inters, v)
}

func (_s *CurriculumSelect) sqlScan(ctx context.Context, root *CurriculumQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
