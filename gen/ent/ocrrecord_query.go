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
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// OCRRecordQuery is the builder for querying OCRRecord entities.
type OCRRecordQuery struct {
	config
	ctx          *QueryContext
	order        []ocrrecord.OrderOption
	inters       []Interceptor
	predicates   []predicate.OCRRecord
	withBuilding *BuildingQuery
	withFile     *AuditFileQuery
	withFKs      bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OCRRecordQuery builder.
func (orq *OCRRecordQuery) Where(ps ...predicate.OCRRecord) *OCRRecordQuery {
	orq.predicates = append(orq.predicates, ps...)
	return orq
}

// Limit the number of records to be returned by this query.
func (orq *OCRRecordQuery) Limit(limit int) *OCRRecordQuery {
	orq.ctx.Limit = &limit
	return orq
}

// Offset to start from.
func (orq *OCRRecordQuery) Offset(offset int) *OCRRecordQuery {
	orq.ctx.Offset = &offset
	return orq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (orq *OCRRecordQuery) Unique(unique bool) *OCRRecordQuery {
	orq.ctx.Unique = &unique
	return orq
}

// Order specifies how the records should be ordered.
func (orq *OCRRecordQuery) Order(o ...ocrrecord.OrderOption) *OCRRecordQuery {
	orq.order = append(orq.order, o...)
	return orq
}

// QueryBuilding chains the current query on the "building" edge.
func (orq *OCRRecordQuery) QueryBuilding() *BuildingQuery {
	query := (&BuildingClient{config: orq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := orq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := orq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrrecord.Table, ocrrecord.FieldID, selector),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ocrrecord.BuildingTable, ocrrecord.BuildingColumn),
		)
		fromU = sqlgraph.SetNeighbors(orq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFile chains the current query on the "file" edge.
func (orq *OCRRecordQuery) QueryFile() *AuditFileQuery {
	query := (&AuditFileClient{config: orq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := orq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := orq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrrecord.Table, ocrrecord.FieldID, selector),
			sqlgraph.To(auditfile.Table, auditfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ocrrecord.FileTable, ocrrecord.FileColumn),
		)
		fromU = sqlgraph.SetNeighbors(orq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first OCRRecord entity from the query.
// Returns a *NotFoundError when no OCRRecord was found.
func (orq *OCRRecordQuery) First(ctx context.Context) (*OCRRecord, error) {
	nodes, err := orq.Limit(1).All(setContextOp(ctx, orq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{ocrrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (orq *OCRRecordQuery) FirstX(ctx context.Context) *OCRRecord {
	node, err := orq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OCRRecord ID from the query.
// Returns a *NotFoundError when no OCRRecord ID was found.
func (orq *OCRRecordQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = orq.Limit(1).IDs(setContextOp(ctx, orq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{ocrrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (orq *OCRRecordQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := orq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OCRRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OCRRecord entity is found.
// Returns a *NotFoundError when no OCRRecord entities are found.
func (orq *OCRRecordQuery) Only(ctx context.Context) (*OCRRecord, error) {
	nodes, err := orq.Limit(2).All(setContextOp(ctx, orq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{ocrrecord.Label}
	default:
		return nil, &NotSingularError{ocrrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (orq *OCRRecordQuery) OnlyX(ctx context.Context) *OCRRecord {
	node, err := orq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OCRRecord ID in the query.
// Returns a *NotSingularError when more than one OCRRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (orq *OCRRecordQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = orq.Limit(2).IDs(setContextOp(ctx, orq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{ocrrecord.Label}
	default:
		err = &NotSingularError{ocrrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (orq *OCRRecordQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := orq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OCRRecords.
func (orq *OCRRecordQuery) All(ctx context.Context) ([]*OCRRecord, error) {
	ctx = setContextOp(ctx, orq.ctx, ent.OpQueryAll)
	if err := orq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OCRRecord, *OCRRecordQuery]()
	return withInterceptors[[]*OCRRecord](ctx, orq, qr, orq.inters)
}

// AllX is like All, but panics if an error occurs.
func (orq *OCRRecordQuery) AllX(ctx context.Context) []*OCRRecord {
	nodes, err := orq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OCRRecord IDs.
func (orq *OCRRecordQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if orq.ctx.Unique == nil && orq.path != nil {
		orq.Unique(true)
	}
	ctx = setContextOp(ctx, orq.ctx, ent.OpQueryIDs)
	if err = orq.Select(ocrrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (orq *OCRRecordQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := orq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (orq *OCRRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, orq.ctx, ent.OpQueryCount)
	if err := orq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, orq, querierCount[*OCRRecordQuery](), orq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (orq *OCRRecordQuery) CountX(ctx context.Context) int {
	count, err := orq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (orq *OCRRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, orq.ctx, ent.OpQueryExist)
	switch _, err := orq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (orq *OCRRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := orq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OCRRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (orq *OCRRecordQuery) Clone() *OCRRecordQuery {
	if orq == nil {
		return nil
	}
	return &OCRRecordQuery{
		config:       orq.config,
		ctx:          orq.ctx.Clone(),
		order:        append([]ocrrecord.OrderOption{}, orq.order...),
		inters:       append([]Interceptor{}, orq.inters...),
		predicates:   append([]predicate.OCRRecord{}, orq.predicates...),
		withBuilding: orq.withBuilding.Clone(),
		withFile:     orq.withFile.Clone(),
		// clone intermediate query.
		sql:  orq.sql.Clone(),
		path: orq.path,
	}
}

// WithBuilding tells the query-builder to eager-load the nodes that are connected to
// the "building" edge. The optional arguments are used to configure the query builder of the edge.
func (orq *OCRRecordQuery) WithBuilding(opts ...func(*BuildingQuery)) *OCRRecordQuery {
	query := (&BuildingClient{config: orq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	orq.withBuilding = query
	return orq
}

// WithFile tells the query-builder to eager-load the nodes that are connected to
// the "file" edge. The optional arguments are used to configure the query builder of the edge.
func (orq *OCRRecordQuery) WithFile(opts ...func(*AuditFileQuery)) *OCRRecordQuery {
	query := (&AuditFileClient{config: orq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	orq.withFile = query
	return orq
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
//	client.OCRRecord.Query().
//		GroupBy(ocrrecord.FieldBuildingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (orq *OCRRecordQuery) GroupBy(field string, fields ...string) *OCRRecordGroupBy {
	orq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OCRRecordGroupBy{build: orq}
	grbuild.flds = &orq.ctx.Fields
	grbuild.label = ocrrecord.Label
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
//	client.OCRRecord.Query().
//		Select(ocrrecord.FieldBuildingID).
//		Scan(ctx, &v)
func (orq *OCRRecordQuery) Select(fields ...string) *OCRRecordSelect {
	orq.ctx.Fields = append(orq.ctx.Fields, fields...)
	sbuild := &OCRRecordSelect{OCRRecordQuery: orq}
	sbuild.label = ocrrecord.Label
	sbuild.flds, sbuild.scan = &orq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OCRRecordSelect configured with the given aggregations.
func (orq *OCRRecordQuery) Aggregate(fns ...AggregateFunc) *OCRRecordSelect {
	return orq.Select().Aggregate(fns...)
}

func (orq *OCRRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range orq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, orq); err != nil {
				return err
			}
		}
	}
	for _, f := range orq.ctx.Fields {
		if !ocrrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if orq.path != nil {
		prev, err := orq.path(ctx)
		if err != nil {
			return err
		}
		orq.sql = prev
	}
	return nil
}

func (orq *OCRRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OCRRecord, error) {
	var (
		nodes       = []*OCRRecord{}
		withFKs     = orq.withFKs
		_spec       = orq.querySpec()
		loadedTypes = [2]bool{
			orq.withBuilding != nil,
			orq.withFile != nil,
		}
	)
	if orq.withFile != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, ocrrecord.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OCRRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OCRRecord{config: orq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, orq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := orq.withBuilding; query != nil {
		if err := orq.loadBuilding(ctx, query, nodes, nil,
			func(n *OCRRecord, e *Building) { n.Edges.Building = e }); err != nil {
			return nil, err
		}
	}
	if query := orq.withFile; query != nil {
		if err := orq.loadFile(ctx, query, nodes, nil,
			func(n *OCRRecord, e *AuditFile) { n.Edges.File = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (orq *OCRRecordQuery) loadBuilding(ctx context.Context, query *BuildingQuery, nodes []*OCRRecord, init func(*OCRRecord), assign func(*OCRRecord, *Building)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*OCRRecord)
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
func (orq *OCRRecordQuery) loadFile(ctx context.Context, query *AuditFileQuery, nodes []*OCRRecord, init func(*OCRRecord), assign func(*OCRRecord, *AuditFile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*OCRRecord)
	for i := range nodes {
		if nodes[i].audit_file_ocr == nil {
			continue
		}
		fk := *nodes[i].audit_file_ocr
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(auditfile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "audit_file_ocr" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (orq *OCRRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := orq.querySpec()
	_spec.Node.Columns = orq.ctx.Fields
	if len(orq.ctx.Fields) > 0 {
		_spec.Unique = orq.ctx.Unique != nil && *orq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, orq.driver, _spec)
}

func (orq *OCRRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(ocrrecord.Table, ocrrecord.Columns, sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID))
	_spec.From = orq.sql
	if unique := orq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if orq.path != nil {
		_spec.Unique = true
	}
	if fields := orq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrrecord.FieldID)
		for i := range fields {
			if fields[i] != ocrrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if orq.withBuilding != nil {
			_spec.Node.AddColumnOnce(ocrrecord.FieldBuildingID)
		}
	}
	if ps := orq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := orq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := orq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := orq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (orq *OCRRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(orq.driver.Dialect())
	t1 := builder.Table(ocrrecord.Table)
	columns := orq.ctx.Fields
	if len(columns) == 0 {
		columns = ocrrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if orq.sql != nil {
		selector = orq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if orq.ctx.Unique != nil && *orq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range orq.predicates {
		p(selector)
	}
	for _, p := range orq.order {
		p(selector)
	}
	if offset := orq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := orq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// OCRRecordGroupBy is the group-by builder for OCRRecord entities.
type OCRRecordGroupBy struct {
	selector
	build *OCRRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (orgb *OCRRecordGroupBy) Aggregate(fns ...AggregateFunc) *OCRRecordGroupBy {
	orgb.fns = append(orgb.fns, fns...)
	return orgb
}

// Scan applies the selector query and scans the result into the given value.
func (orgb *OCRRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, orgb.build.ctx, ent.OpQueryGroupBy)
	if err := orgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OCRRecordQuery, *OCRRecordGroupBy](ctx, orgb.build, orgb, orgb.build.inters, v)
}

func (orgb *OCRRecordGroupBy) sqlScan(ctx context.Context, root *OCRRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(orgb.fns))
	for _, fn := range orgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*orgb.flds)+len(orgb.fns))
		for _, f := range *orgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*orgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := orgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// OCRRecordSelect is the builder for selecting fields of OCRRecord entities.
type OCRRecordSelect struct {
	*OCRRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ors *OCRRecordSelect) Aggregate(fns ...AggregateFunc) *OCRRecordSelect {
	ors.fns = append(ors.fns, fns...)
	return ors
}

// Scan applies the selector query and scans the result into the given value.
func (ors *OCRRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ors.ctx, ent.OpQuerySelect)
	if err := ors.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OCRRecordQuery, *OCRRecordSelect](ctx, ors.OCRRecordQuery, ors, ors.inters, v)
}

func (ors *OCRRecordSelect) sqlScan(ctx context.Context, root *OCRRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ors.fns))
	for _, fn := range ors.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ors.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ors.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
