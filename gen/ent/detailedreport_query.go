// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// DetailedReportQuery is the builder for querying DetailedReport entities.
type DetailedReportQuery struct {
	config
	ctx          *QueryContext
	order        []detailedreport.OrderOption
	inters       []Interceptor
	predicates   []predicate.DetailedReport
	withBuilding *BuildingQuery
	withAudit    *AuditQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DetailedReportQuery builder.
func (drq *DetailedReportQuery) Where(ps ...predicate.DetailedReport) *DetailedReportQuery {
	drq.predicates = append(drq.predicates, ps...)
	return drq
}

// Limit the number of records to be returned by this query.
func (drq *DetailedReportQuery) Limit(limit int) *DetailedReportQuery {
	drq.ctx.Limit = &limit
	return drq
}

// Offset to start from.
func (drq *DetailedReportQuery) Offset(offset int) *DetailedReportQuery {
	drq.ctx.Offset = &offset
	return drq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (drq *DetailedReportQuery) Unique(unique bool) *DetailedReportQuery {
	drq.ctx.Unique = &unique
	return drq
}

// Order specifies how the records should be ordered.
func (drq *DetailedReportQuery) Order(o ...detailedreport.OrderOption) *DetailedReportQuery {
	drq.order = append(drq.order, o...)
	return drq
}

// QueryBuilding chains the current query on the "building" edge.
func (drq *DetailedReportQuery) QueryBuilding() *BuildingQuery {
	query := (&BuildingClient{config: drq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := drq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := drq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(detailedreport.Table, detailedreport.FieldID, selector),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detailedreport.BuildingTable, detailedreport.BuildingColumn),
		)
		fromU = sqlgraph.SetNeighbors(drq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAudit chains the current query on the "audit" edge.
func (drq *DetailedReportQuery) QueryAudit() *AuditQuery {
	query := (&AuditClient{config: drq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := drq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := drq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(detailedreport.Table, detailedreport.FieldID, selector),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detailedreport.AuditTable, detailedreport.AuditColumn),
		)
		fromU = sqlgraph.SetNeighbors(drq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DetailedReport entity from the query.
// Returns a *NotFoundError when no DetailedReport was found.
func (drq *DetailedReportQuery) First(ctx context.Context) (*DetailedReport, error) {
	nodes, err := drq.Limit(1).All(setContextOp(ctx, drq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{detailedreport.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (drq *DetailedReportQuery) FirstX(ctx context.Context) *DetailedReport {
	node, err := drq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DetailedReport ID from the query.
// Returns a *NotFoundError when no DetailedReport ID was found.
func (drq *DetailedReportQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = drq.Limit(1).IDs(setContextOp(ctx, drq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{detailedreport.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (drq *DetailedReportQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := drq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DetailedReport entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DetailedReport entity is found.
// Returns a *NotFoundError when no DetailedReport entities are found.
func (drq *DetailedReportQuery) Only(ctx context.Context) (*DetailedReport, error) {
	nodes, err := drq.Limit(2).All(setContextOp(ctx, drq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{detailedreport.Label}
	default:
		return nil, &NotSingularError{detailedreport.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (drq *DetailedReportQuery) OnlyX(ctx context.Context) *DetailedReport {
	node, err := drq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DetailedReport ID in the query.
// Returns a *NotSingularError when more than one DetailedReport ID is found.
// Returns a *NotFoundError when no entities are found.
func (drq *DetailedReportQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = drq.Limit(2).IDs(setContextOp(ctx, drq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{detailedreport.Label}
	default:
		err = &NotSingularError{detailedreport.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (drq *DetailedReportQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := drq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DetailedReports.
func (drq *DetailedReportQuery) All(ctx context.Context) ([]*DetailedReport, error) {
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryAll)
	if err := drq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DetailedReport, *DetailedReportQuery]()
	return withInterceptors[[]*DetailedReport](ctx, drq, qr, drq.inters)
}

// AllX is like All, but panics if an error occurs.
func (drq *DetailedReportQuery) AllX(ctx context.Context) []*DetailedReport {
	nodes, err := drq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DetailedReport IDs.
func (drq *DetailedReportQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if drq.ctx.Unique == nil && drq.path != nil {
		drq.Unique(true)
	}
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryIDs)
	if err = drq.Select(detailedreport.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (drq *DetailedReportQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := drq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (drq *DetailedReportQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryCount)
	if err := drq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, drq, querierCount[*DetailedReportQuery](), drq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (drq *DetailedReportQuery) CountX(ctx context.Context) int {
	count, err := drq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (drq *DetailedReportQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, drq.ctx, ent.OpQueryExist)
	switch _, err := drq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (drq *DetailedReportQuery) ExistX(ctx context.Context) bool {
	exist, err := drq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DetailedReportQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (drq *DetailedReportQuery) Clone() *DetailedReportQuery {
	if drq == nil {
		return nil
	}
	return &DetailedReportQuery{
		config:       drq.config,
		ctx:          drq.ctx.Clone(),
		order:        append([]detailedreport.OrderOption{}, drq.order...),
		inters:       append([]Interceptor{}, drq.inters...),
		predicates:   append([]predicate.DetailedReport{}, drq.predicates...),
		withBuilding: drq.withBuilding.Clone(),
		withAudit:    drq.withAudit.Clone(),
		// clone intermediate query.
		sql:  drq.sql.Clone(),
		path: drq.path,
	}
}

// WithBuilding tells the query-builder to eager-load the nodes that are connected to
// the "building" edge. The optional arguments are used to configure the query builder of the edge.
func (drq *DetailedReportQuery) WithBuilding(opts ...func(*BuildingQuery)) *DetailedReportQuery {
	query := (&BuildingClient{config: drq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	drq.withBuilding = query
	return drq
}

// WithAudit tells the query-builder to eager-load the nodes that are connected to
// the "audit" edge. The optional arguments are used to configure the query builder of the edge.
func (drq *DetailedReportQuery) WithAudit(opts ...func(*AuditQuery)) *DetailedReportQuery {
	query := (&AuditClient{config: drq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	drq.withAudit = query
	return drq
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
//	client.DetailedReport.Query().
//		GroupBy(detailedreport.FieldBuildingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (drq *DetailedReportQuery) GroupBy(field string, fields ...string) *DetailedReportGroupBy {
	drq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DetailedReportGroupBy{build: drq}
	grbuild.flds = &drq.ctx.Fields
	grbuild.label = detailedreport.Label
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
//	client.DetailedReport.Query().
//		Select(detailedreport.FieldBuildingID).
//		Scan(ctx, &v)
func (drq *DetailedReportQuery) Select(fields ...string) *DetailedReportSelect {
	drq.ctx.Fields = append(drq.ctx.Fields, fields...)
	sbuild := &DetailedReportSelect{DetailedReportQuery: drq}
	sbuild.label = detailedreport.Label
	sbuild.flds, sbuild.scan = &drq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DetailedReportSelect configured with the given aggregations.
func (drq *DetailedReportQuery) Aggregate(fns ...AggregateFunc) *DetailedReportSelect {
	return drq.Select().Aggregate(fns...)
}

func (drq *DetailedReportQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range drq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, drq); err != nil {
				return err
			}
		}
	}
	for _, f := range drq.ctx.Fields {
		if !detailedreport.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if drq.path != nil {
		prev, err := drq.path(ctx)
		if err != nil {
			return err
		}
		drq.sql = prev
	}
	return nil
}

func (drq *DetailedReportQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DetailedReport, error) {
	var (
		nodes       = []*DetailedReport{}
		_spec       = drq.querySpec()
		loadedTypes = [2]bool{
			drq.withBuilding != nil,
			drq.withAudit != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DetailedReport).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DetailedReport{config: drq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, drq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := drq.withBuilding; query != nil {
		if err := drq.loadBuilding(ctx, query, nodes, nil,
			func(n *DetailedReport, e *Building) { n.Edges.Building = e }); err != nil {
			return nil, err
		}
	}
	if query := drq.withAudit; query != nil {
		if err := drq.loadAudit(ctx, query, nodes, nil,
			func(n *DetailedReport, e *Audit) { n.Edges.Audit = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (drq *DetailedReportQuery) loadBuilding(ctx context.Context, query *BuildingQuery, nodes []*DetailedReport, init func(*DetailedReport), assign func(*DetailedReport, *Building)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DetailedReport)
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
func (drq *DetailedReportQuery) loadAudit(ctx context.Context, query *AuditQuery, nodes []*DetailedReport, init func(*DetailedReport), assign func(*DetailedReport, *Audit)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DetailedReport)
	for i := range nodes {
		fk := nodes[i].AuditID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(audit.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "audit_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (drq *DetailedReportQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := drq.querySpec()
	_spec.Node.Columns = drq.ctx.Fields
	if len(drq.ctx.Fields) > 0 {
		_spec.Unique = drq.ctx.Unique != nil && *drq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, drq.driver, _spec)
}

func (drq *DetailedReportQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(detailedreport.Table, detailedreport.Columns, sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID))
	_spec.From = drq.sql
	if unique := drq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if drq.path != nil {
		_spec.Unique = true
	}
	if fields := drq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detailedreport.FieldID)
		for i := range fields {
			if fields[i] != detailedreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if drq.withBuilding != nil {
			_spec.Node.AddColumnOnce(detailedreport.FieldBuildingID)
		}
		if drq.withAudit != nil {
			_spec.Node.AddColumnOnce(detailedreport.FieldAuditID)
		}
	}
	if ps := drq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := drq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := drq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := drq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (drq *DetailedReportQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(drq.driver.Dialect())
	t1 := builder.Table(detailedreport.Table)
	columns := drq.ctx.Fields
	if len(columns) == 0 {
		columns = detailedreport.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if drq.sql != nil {
		selector = drq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if drq.ctx.Unique != nil && *drq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range drq.predicates {
		p(selector)
	}
	for _, p := range drq.order {
		p(selector)
	}
	if offset := drq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := drq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DetailedReportGroupBy is the group-by builder for DetailedReport entities.
type DetailedReportGroupBy struct {
	selector
	build *DetailedReportQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (drgb *DetailedReportGroupBy) Aggregate(fns ...AggregateFunc) *DetailedReportGroupBy {
	drgb.fns = append(drgb.fns, fns...)
	return drgb
}

// Scan applies the selector query and scans the result into the given value.
func (drgb *DetailedReportGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, drgb.build.ctx, ent.OpQueryGroupBy)
	if err := drgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DetailedReportQuery, *DetailedReportGroupBy](ctx, drgb.build, drgb, drgb.build.inters, v)
}

func (drgb *DetailedReportGroupBy) sqlScan(ctx context.Context, root *DetailedReportQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(drgb.fns))
	for _, fn := range drgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*drgb.flds)+len(drgb.fns))
		for _, f := range *drgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*drgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := drgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DetailedReportSelect is the builder for selecting fields of DetailedReport entities.
type DetailedReportSelect struct {
	*DetailedReportQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (drs *DetailedReportSelect) Aggregate(fns ...AggregateFunc) *DetailedReportSelect {
	drs.fns = append(drs.fns, fns...)
	return drs
}

// Scan applies the selector query and scans the result into the given value.
func (drs *DetailedReportSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, drs.ctx, ent.OpQuerySelect)
	if err := drs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DetailedReportQuery, *DetailedReportSelect](ctx, drs.DetailedReportQuery, drs, drs.inters, v)
}

func (drs *DetailedReportSelect) sqlScan(ctx context.Context, root *DetailedReportQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(drs.fns))
	for _, fn := range drs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*drs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := drs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
