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
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// AuditFileQuery is the builder for querying AuditFile entities.
type AuditFileQuery struct {
	config
	ctx          *QueryContext
	order        []auditfile.OrderOption
	inters       []Interceptor
	predicates   []predicate.AuditFile
	withBuilding *BuildingQuery
	withOcr      *OCRRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AuditFileQuery builder.
func (afq *AuditFileQuery) Where(ps ...predicate.AuditFile) *AuditFileQuery {
	afq.predicates = append(afq.predicates, ps...)
	return afq
}

// Limit the number of records to be returned by this query.
func (afq *AuditFileQuery) Limit(limit int) *AuditFileQuery {
	afq.ctx.Limit = &limit
	return afq
}

// Offset to start from.
func (afq *AuditFileQuery) Offset(offset int) *AuditFileQuery {
	afq.ctx.Offset = &offset
	return afq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (afq *AuditFileQuery) Unique(unique bool) *AuditFileQuery {
	afq.ctx.Unique = &unique
	return afq
}

// Order specifies how the records should be ordered.
func (afq *AuditFileQuery) Order(o ...auditfile.OrderOption) *AuditFileQuery {
	afq.order = append(afq.order, o...)
	return afq
}

// QueryBuilding chains the current query on the "building" edge.
func (afq *AuditFileQuery) QueryBuilding() *BuildingQuery {
	query := (&BuildingClient{config: afq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := afq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := afq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(auditfile.Table, auditfile.FieldID, selector),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditfile.BuildingTable, auditfile.BuildingColumn),
		)
		fromU = sqlgraph.SetNeighbors(afq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOcr chains the current query on the "ocr" edge.
func (afq *AuditFileQuery) QueryOcr() *OCRRecordQuery {
	query := (&OCRRecordClient{config: afq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := afq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := afq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(auditfile.Table, auditfile.FieldID, selector),
			sqlgraph.To(ocrrecord.Table, ocrrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, auditfile.OcrTable, auditfile.OcrColumn),
		)
		fromU = sqlgraph.SetNeighbors(afq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AuditFile entity from the query.
// Returns a *NotFoundError when no AuditFile was found.
func (afq *AuditFileQuery) First(ctx context.Context) (*AuditFile, error) {
	nodes, err := afq.Limit(1).All(setContextOp(ctx, afq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{auditfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (afq *AuditFileQuery) FirstX(ctx context.Context) *AuditFile {
	node, err := afq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AuditFile ID from the query.
// Returns a *NotFoundError when no AuditFile ID was found.
func (afq *AuditFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = afq.Limit(1).IDs(setContextOp(ctx, afq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{auditfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (afq *AuditFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := afq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AuditFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AuditFile entity is found.
// Returns a *NotFoundError when no AuditFile entities are found.
func (afq *AuditFileQuery) Only(ctx context.Context) (*AuditFile, error) {
	nodes, err := afq.Limit(2).All(setContextOp(ctx, afq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{auditfile.Label}
	default:
		return nil, &NotSingularError{auditfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (afq *AuditFileQuery) OnlyX(ctx context.Context) *AuditFile {
	node, err := afq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AuditFile ID in the query.
// Returns a *NotSingularError when more than one AuditFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (afq *AuditFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = afq.Limit(2).IDs(setContextOp(ctx, afq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{auditfile.Label}
	default:
		err = &NotSingularError{auditfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (afq *AuditFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := afq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AuditFiles.
func (afq *AuditFileQuery) All(ctx context.Context) ([]*AuditFile, error) {
	ctx = setContextOp(ctx, afq.ctx, ent.OpQueryAll)
	if err := afq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AuditFile, *AuditFileQuery]()
	return withInterceptors[[]*AuditFile](ctx, afq, qr, afq.inters)
}

// AllX is like All, but panics if an error occurs.
func (afq *AuditFileQuery) AllX(ctx context.Context) []*AuditFile {
	nodes, err := afq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AuditFile IDs.
func (afq *AuditFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if afq.ctx.Unique == nil && afq.path != nil {
		afq.Unique(true)
	}
	ctx = setContextOp(ctx, afq.ctx, ent.OpQueryIDs)
	if err = afq.Select(auditfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (afq *AuditFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := afq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (afq *AuditFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, afq.ctx, ent.OpQueryCount)
	if err := afq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, afq, querierCount[*AuditFileQuery](), afq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (afq *AuditFileQuery) CountX(ctx context.Context) int {
	count, err := afq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (afq *AuditFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, afq.ctx, ent.OpQueryExist)
	switch _, err := afq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (afq *AuditFileQuery) ExistX(ctx context.Context) bool {
	exist, err := afq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AuditFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (afq *AuditFileQuery) Clone() *AuditFileQuery {
	if afq == nil {
		return nil
	}
	return &AuditFileQuery{
		config:       afq.config,
		ctx:          afq.ctx.Clone(),
		order:        append([]auditfile.OrderOption{}, afq.order...),
		inters:       append([]Interceptor{}, afq.inters...),
		predicates:   append([]predicate.AuditFile{}, afq.predicates...),
		withBuilding: afq.withBuilding.Clone(),
		withOcr:      afq.withOcr.Clone(),
		// clone intermediate query.
		sql:  afq.sql.Clone(),
		path: afq.path,
	}
}

// WithBuilding tells the query-builder to eager-load the nodes that are connected to
// the "building" edge. The optional arguments are used to configure the query builder of the edge.
func (afq *AuditFileQuery) WithBuilding(opts ...func(*BuildingQuery)) *AuditFileQuery {
	query := (&BuildingClient{config: afq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	afq.withBuilding = query
	return afq
}

// WithOcr tells the query-builder to eager-load the nodes that are connected to
// the "ocr" edge. The optional arguments are used to configure the query builder of the edge.
func (afq *AuditFileQuery) WithOcr(opts ...func(*OCRRecordQuery)) *AuditFileQuery {
	query := (&OCRRecordClient{config: afq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	afq.withOcr = query
	return afq
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
//	client.AuditFile.Query().
//		GroupBy(auditfile.FieldBuildingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (afq *AuditFileQuery) GroupBy(field string, fields ...string) *AuditFileGroupBy {
	afq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AuditFileGroupBy{build: afq}
	grbuild.flds = &afq.ctx.Fields
	grbuild.label = auditfile.Label
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
//	client.AuditFile.Query().
//		Select(auditfile.FieldBuildingID).
//		Scan(ctx, &v)
func (afq *AuditFileQuery) Select(fields ...string) *AuditFileSelect {
	afq.ctx.Fields = append(afq.ctx.Fields, fields...)
	sbuild := &AuditFileSelect{AuditFileQuery: afq}
	sbuild.label = auditfile.Label
	sbuild.flds, sbuild.scan = &afq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AuditFileSelect configured with the given aggregations.
func (afq *AuditFileQuery) Aggregate(fns ...AggregateFunc) *AuditFileSelect {
	return afq.Select().Aggregate(fns...)
}

func (afq *AuditFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range afq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, afq); err != nil {
				return err
			}
		}
	}
	for _, f := range afq.ctx.Fields {
		if !auditfile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if afq.path != nil {
		prev, err := afq.path(ctx)
		if err != nil {
			return err
		}
		afq.sql = prev
	}
	return nil
}

func (afq *AuditFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AuditFile, error) {
	var (
		nodes       = []*AuditFile{}
		_spec       = afq.querySpec()
		loadedTypes = [2]bool{
			afq.withBuilding != nil,
			afq.withOcr != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AuditFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AuditFile{config: afq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, afq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := afq.withBuilding; query != nil {
		if err := afq.loadBuilding(ctx, query, nodes, nil,
			func(n *AuditFile, e *Building) { n.Edges.Building = e }); err != nil {
			return nil, err
		}
	}
	if query := afq.withOcr; query != nil {
		if err := afq.loadOcr(ctx, query, nodes, nil,
			func(n *AuditFile, e *OCRRecord) { n.Edges.Ocr = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (afq *AuditFileQuery) loadBuilding(ctx context.Context, query *BuildingQuery, nodes []*AuditFile, init func(*AuditFile), assign func(*AuditFile, *Building)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AuditFile)
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
func (afq *AuditFileQuery) loadOcr(ctx context.Context, query *OCRRecordQuery, nodes []*AuditFile, init func(*AuditFile), assign func(*AuditFile, *OCRRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*AuditFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	query.withFKs = true
	query.Where(predicate.OCRRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(auditfile.OcrColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.audit_file_ocr
		if fk == nil {
			return fmt.Errorf(`foreign-key "audit_file_ocr" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "audit_file_ocr" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (afq *AuditFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := afq.querySpec()
	_spec.Node.Columns = afq.ctx.Fields
	if len(afq.ctx.Fields) > 0 {
		_spec.Unique = afq.ctx.Unique != nil && *afq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, afq.driver, _spec)
}

func (afq *AuditFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(auditfile.Table, auditfile.Columns, sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID))
	_spec.From = afq.sql
	if unique := afq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if afq.path != nil {
		_spec.Unique = true
	}
	if fields := afq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditfile.FieldID)
		for i := range fields {
			if fields[i] != auditfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if afq.withBuilding != nil {
			_spec.Node.AddColumnOnce(auditfile.FieldBuildingID)
		}
	}
	if ps := afq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := afq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := afq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := afq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (afq *AuditFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(afq.driver.Dialect())
	t1 := builder.Table(auditfile.Table)
	columns := afq.ctx.Fields
	if len(columns) == 0 {
		columns = auditfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if afq.sql != nil {
		selector = afq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if afq.ctx.Unique != nil && *afq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range afq.predicates {
		p(selector)
	}
	for _, p := range afq.order {
		p(selector)
	}
	if offset := afq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := afq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AuditFileGroupBy is the group-by builder for AuditFile entities.
type AuditFileGroupBy struct {
	selector
	build *AuditFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (afgb *AuditFileGroupBy) Aggregate(fns ...AggregateFunc) *AuditFileGroupBy {
	afgb.fns = append(afgb.fns, fns...)
	return afgb
}

// Scan applies the selector query and scans the result into the given value.
func (afgb *AuditFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, afgb.build.ctx, ent.OpQueryGroupBy)
	if err := afgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuditFileQuery, *AuditFileGroupBy](ctx, afgb.build, afgb, afgb.build.inters, v)
}

func (afgb *AuditFileGroupBy) sqlScan(ctx context.Context, root *AuditFileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(afgb.fns))
	for _, fn := range afgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*afgb.flds)+len(afgb.fns))
		for _, f := range *afgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*afgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := afgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AuditFileSelect is the builder for selecting fields of AuditFile entities.
type AuditFileSelect struct {
	*AuditFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (afs *AuditFileSelect) Aggregate(fns ...AggregateFunc) *AuditFileSelect {
	afs.fns = append(afs.fns, fns...)
	return afs
}

// Scan applies the selector query and scans the result into the given value.
func (afs *AuditFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, afs.ctx, ent.OpQuerySelect)
	if err := afs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AuditFileQuery, *AuditFileSelect](ctx, afs.AuditFileQuery, afs, afs.inters, v)
}

func (afs *AuditFileSelect) sqlScan(ctx context.Context, root *AuditFileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(afs.fns))
	for _, fn := range afs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*afs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := afs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
