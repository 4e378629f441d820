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
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// AuditQuery is the builder for querying Audit entities.
type AuditQuery struct {
	config
	ctx          *QueryContext
	order        []audit.OrderOption
	inters       []Interceptor
	predicates   []predicate.Audit
	withBuilding *BuildingQuery
	withReports  *DetailedReportQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AuditQuery builder.
func (aq *AuditQuery) Where(ps ...predicate.Audit) *AuditQuery {
	aq.predicates = append(aq.predicates, ps...)
	return aq
}

// Limit the number of records to be returned by this query.
func (aq *AuditQuery) Limit(limit int) *AuditQuery {
	aq.ctx.Limit = &limit
	return aq
}

// Offset to start from.
func (aq *AuditQuery) Offset(offset int) *AuditQuery {
	aq.ctx.Offset = &offset
	return aq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aq *AuditQuery) Unique(unique bool) *AuditQuery {
	aq.ctx.Unique = &unique
	return aq
}

// Order specifies how the records should be ordered.
func (aq *AuditQuery) Order(o ...audit.OrderOption) *AuditQuery {
	aq.order = append(aq.order, o...)
	return aq
}

// QueryBuilding chains the current query on the "building" edge.
func (aq *AuditQuery) QueryBuilding() *BuildingQuery {
	query := (&BuildingClient{config: aq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := aq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := aq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, audit.BuildingTable, audit.BuildingColumn),
		)
		fromU = sqlgraph.SetNeighbors(aq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReports chains the current query on the "reports" edge.
func (aq *AuditQuery) QueryReports() *DetailedReportQuery {
	query := (&DetailedReportClient{config: aq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := aq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := aq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, selector),
			sqlgraph.To(detailedreport.Table, detailedreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ReportsTable, audit.ReportsColumn),
		)
		fromU = sqlgraph.SetNeighbors(aq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Audit entity from the query.
// Returns a *NotFoundError when no Audit was found.
func (aq *AuditQuery) First(ctx context.Context) (*Audit, error) {
	nodes, err := aq.Limit(1).All(setContextOp(ctx, aq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{audit.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aq *AuditQuery) FirstX(ctx context.Context) *Audit {
	node, err := aq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Audit ID from the query.
// Returns a *NotFoundError when no Audit ID was found.
func (aq *AuditQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = aq.Limit(1).IDs(setContextOp(ctx, aq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{audit.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aq *AuditQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := aq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Audit entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Audit entity is found.
// Returns a *NotFoundError when no Audit entities are found.
func (aq *AuditQuery) Only(ctx context.Context) (*Audit, error) {
	nodes, err := aq.Limit(2).All(setContextOp(ctx, aq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{audit.Label}
	default:
		return nil, &NotSingularError{audit.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aq *AuditQuery) OnlyX(ctx context.Context) *Audit {
	node, err := aq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Audit ID in the query.
// Returns a *NotSingularError when more than one Audit ID is found.
// Returns a *NotFoundError when no entities are found.
func (aq *AuditQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = aq.Limit(2).IDs(setContextOp(ctx, aq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{audit.Label}
	default:
		err = &NotSingularError{audit.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aq *AuditQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := aq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Audits.
func (aq *AuditQuery) All(ctx context.Context) ([]*Audit, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryAll)
	if err := aq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Audit, *AuditQuery]()
	return withInterceptors[[]*Audit](ctx, aq, qr, aq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aq *AuditQuery) AllX(ctx context.Context) []*Audit {
	nodes, err := aq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Audit IDs.
func (aq *AuditQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if aq.ctx.Unique == nil && aq.path != nil {
		aq.Unique(true)
	}
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryIDs)
	if err = aq.Select(audit.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aq *AuditQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := aq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aq *AuditQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryCount)
	if err := aq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aq, querierCount[*AuditQuery](), aq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aq *AuditQuery) CountX(ctx context.Context) int {
	count, err := aq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aq *AuditQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryExist)
	switch _, err := aq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aq *AuditQuery) ExistX(ctx context.Context) bool {
	exist, err := aq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AuditQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aq *AuditQuery) Clone() *AuditQuery {
	if aq == nil {
		return nil
	}
	return &AuditQuery{
		config:       aq.config,
		ctx:          aq.ctx.Clone(),
		order:        append([]audit.OrderOption{}, aq.order...),
		inters:       append([]Interceptor{}, aq.inters...),
		predicates:   append([]predicate.Audit{}, aq.predicates...),
		withBuilding: aq.withBuilding.Clone(),
		withReports:  aq.withReports.Clone(),
		// clone intermediate query.
		sql:  aq.sql.Clone(),
		path: aq.path,
	}
}

// WithBuilding tells the query-builder to eager-load the nodes that are connected to
// the "building" edge. The optional arguments are used to configure the query builder of the edge.
func (aq *AuditQuery) WithBuilding(opts ...func(*BuildingQuery)) *AuditQuery {
	query := (&BuildingClient{config: aq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	aq.withBuilding = query
	return aq
}

// WithReports tells the query-builder to eager-load the nodes that are connected to
// the "reports" edge. The optional arguments are used to configure the query builder of the edge.
func (aq *AuditQuery) WithReports(opts ...func(*DetailedReportQuery)) *AuditQuery {
	query := (&DetailedReportClient{config: aq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	aq.withReports = query
	return aq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BuildingID uuid.UUID `json:"building_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Audit.Query().
//		GroupBy(audit.FieldBuildingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aq *AuditQuery) GroupBy(field string, fields ...string) *AuditGroupBy {
	aq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AuditGroupBy{build: aq}
	grbuild.flds = &aq.ctx.Fields
	grbuild.label = audit.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BuildingID uuid.UUID `json:"building_id,omitempty"`
//	}
//
//	client.Audit.Query().
//		Select(audit.FieldBuildingID).
//		Scan(ctx, &v)
func (aq *AuditQuery) Select(fields ...string) *AuditSelect {
	aq.ctx.Fields = append(aq.ctx.Fields, fields...)
	sbuild := &AuditSelect{AuditQuery: aq}
	sbuild.label = audit.Label
	sbuild.flds, sbuild.scan = &aq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AuditSelect configured with the given aggregations.
func (aq *AuditQuery) Aggregate(fns ...AggregateFunc) *AuditSelect {
	return aq.Select().Aggregate(fns...)
}

func (aq *AuditQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aq); err != nil {
				return err
			}
		}
	}
	for _, f := range aq.ctx.Fields {
		if !audit.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aq.path != nil {
		prev, err := aq.path(ctx)
		if err != nil {
			return err
		}
		aq.sql = prev
	}
	return nil
}

func (aq *AuditQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Audit, error) {
	var (
		nodes       = []*Audit{}
		_spec       = aq.querySpec()
		loadedTypes = [2]bool{
			aq.withBuilding != nil,
			aq.withReports != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Audit).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Audit{config: aq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := aq.withBuilding; query != nil {
		if err := aq.loadBuilding(ctx, query, nodes, nil,
			func(n *Audit, e *Building) { n.Edges.Building = e }); err != nil {
			return nil, err
		}
	}
	if query := aq.withReports; query != nil {
		if err := aq.loadReports(ctx, query, nodes,
			func(n *Audit) { n.Edges.Reports = []*DetailedReport{} },
			func(n *Audit, e *DetailedReport) { n.Edges.Reports = append(n.Edges.Reports, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (aq *AuditQuery) loadBuilding(ctx context.Context, query *BuildingQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *Building)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Audit)
	for i := range nodes {
		fk := nodes[i].BuildingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(building.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "building_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (aq *AuditQuery) loadReports(ctx context.Context, query *DetailedReportQuery, nodes []*Audit, init func(*Audit), assign func(*Audit, *DetailedReport)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Audit)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(detailedreport.FieldAuditID)
	}
	query.Where(predicate.DetailedReport(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(audit.ReportsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuditID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (aq *AuditQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aq.querySpec()
	_spec.Node.Columns = aq.ctx.Fields
	if len(aq.ctx.Fields) > 0 {
		_spec.Unique = aq.ctx.Unique != nil && *aq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aq.driver, _spec)
}

func (aq *AuditQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID))
	_spec.From = aq.sql
	if unique := aq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aq.path != nil {
		_spec.Unique = true
	}
	if fields := aq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for i := range fields {
			if fields[i] != audit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if aq.withBuilding != nil {
			_spec.Node.AddColumnOnce(audit.FieldBuildingID)
		}
	}
	if ps := aq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aq *AuditQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aq.driver.Dialect())
	t1 := builder.Table(audit.Table)
	columns := aq.ctx.Fields
	if len(columns) == 0 {
		columns = audit.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aq.sql != nil {
		selector = aq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aq.ctx.Unique != nil && *aq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aq.predicates {
		p(selector)
	}
	for _, p := range aq.order {
		p(selector)
	}
	if offset := aq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AuditGroupBy is the group-by builder for Audit entities.
type AuditGroupBy struct {
	selector
	build *AuditQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (agb *AuditGroupBy) Aggregate(fns ...AggregateFunc) *AuditGroupBy {
	agb.fns = append(agb.fns, fns...)
	return agb
}

// Scan applies the selector query and scans the result into the given value.
func (agb *AuditGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, agb.build.ctx, ent.OpQueryGroupBy)
	if err := agb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuditQuery, *AuditGroupBy](ctx, agb.build, agb, agb.build.inters, v)
}

func (agb *AuditGroupBy) sqlScan(ctx context.Context, root *AuditQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(agb.fns))
	for _, fn := range agb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*agb.flds)+len(agb.fns))
		for _, f := range *agb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*agb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := agb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AuditSelect is the builder for selecting fields of Audit entities.
type AuditSelect struct {
	*AuditQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (as *AuditSelect) Aggregate(fns ...AggregateFunc) *AuditSelect {
	as.fns = append(as.fns, fns...)
	return as
}

// Scan applies the selector query and scans the result into the given value.
func (as *AuditSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, as.ctx, ent.OpQuerySelect)
	if err := as.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuditQuery, *AuditSelect](ctx, as.AuditQuery, as, as.inters, v)
}

func (as *AuditSelect) sqlScan(ctx context.Context, root *AuditQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(as.fns))
	for _, fn := range as.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*as.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := as.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
