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
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/predicate"
	"github.com/hrunx/es2square/gen/ent/room"
)

// BuildingQuery is the builder for querying Building entities.
type BuildingQuery struct {
	config
	ctx            *QueryContext
	order          []building.OrderOption
	inters         []Interceptor
	predicates     []predicate.Building
	withRooms      *RoomQuery
	withEquipment  *EquipmentQuery
	withFiles      *AuditFileQuery
	withOcrRecords *OCRRecordQuery
	withAudits     *AuditQuery
	withReports    *DetailedReportQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BuildingQuery builder.
func (bq *BuildingQuery) Where(ps ...predicate.Building) *BuildingQuery {
	bq.predicates = append(bq.predicates, ps...)
	return bq
}

// Limit the number of records to be returned by this query.
func (bq *BuildingQuery) Limit(limit int) *BuildingQuery {
	bq.ctx.Limit = &limit
	return bq
}

// Offset to start from.
func (bq *BuildingQuery) Offset(offset int) *BuildingQuery {
	bq.ctx.Offset = &offset
	return bq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (bq *BuildingQuery) Unique(unique bool) *BuildingQuery {
	bq.ctx.Unique = &unique
	return bq
}

// Order specifies how the records should be ordered.
func (bq *BuildingQuery) Order(o ...building.OrderOption) *BuildingQuery {
	bq.order = append(bq.order, o...)
	return bq
}

// QueryRooms chains the current query on the "rooms" edge.
func (bq *BuildingQuery) QueryRooms() *RoomQuery {
	query := (&RoomClient{config: bq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, selector),
			sqlgraph.To(room.Table, room.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.RoomsTable, building.RoomsColumn),
		)
		fromU = sqlgraph.SetNeighbors(bq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEquipment chains the current query on the "equipment" edge.
func (bq *BuildingQuery) QueryEquipment() *EquipmentQuery {
	query := (&EquipmentClient{config: bq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, selector),
			sqlgraph.To(equipment.Table, equipment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.EquipmentTable, building.EquipmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(bq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFiles chains the current query on the "files" edge.
func (bq *BuildingQuery) QueryFiles() *AuditFileQuery {
	query := (&AuditFileClient{config: bq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, selector),
			sqlgraph.To(auditfile.Table, auditfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.FilesTable, building.FilesColumn),
		)
		fromU = sqlgraph.SetNeighbors(bq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOcrRecords chains the current query on the "ocr_records" edge.
func (bq *BuildingQuery) QueryOcrRecords() *OCRRecordQuery {
	query := (&OCRRecordClient{config: bq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, selector),
			sqlgraph.To(ocrrecord.Table, ocrrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.OcrRecordsTable, building.OcrRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(bq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAudits chains the current query on the "audits" edge.
func (bq *BuildingQuery) QueryAudits() *AuditQuery {
	query := (&AuditClient{config: bq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, selector),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.AuditsTable, building.AuditsColumn),
		)
		fromU = sqlgraph.SetNeighbors(bq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReports chains the current query on the "reports" edge.
func (bq *BuildingQuery) QueryReports() *DetailedReportQuery {
	query := (&DetailedReportClient{config: bq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := bq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := bq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, selector),
			sqlgraph.To(detailedreport.Table, detailedreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.ReportsTable, building.ReportsColumn),
		)
		fromU = sqlgraph.SetNeighbors(bq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Building entity from the query.
// Returns a *NotFoundError when no Building was found.
func (bq *BuildingQuery) First(ctx context.Context) (*Building, error) {
	nodes, err := bq.Limit(1).All(setContextOp(ctx, bq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{building.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (bq *BuildingQuery) FirstX(ctx context.Context) *Building {
	node, err := bq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Building ID from the query.
// Returns a *NotFoundError when no Building ID was found.
func (bq *BuildingQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = bq.Limit(1).IDs(setContextOp(ctx, bq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{building.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (bq *BuildingQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := bq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Building entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Building entity is found.
// Returns a *NotFoundError when no Building entities are found.
func (bq *BuildingQuery) Only(ctx context.Context) (*Building, error) {
	nodes, err := bq.Limit(2).All(setContextOp(ctx, bq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{building.Label}
	default:
		return nil, &NotSingularError{building.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (bq *BuildingQuery) OnlyX(ctx context.Context) *Building {
	node, err := bq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Building ID in the query.
// Returns a *NotSingularError when more than one Building ID is found.
// Returns a *NotFoundError when no entities are found.
func (bq *BuildingQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = bq.Limit(2).IDs(setContextOp(ctx, bq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{building.Label}
	default:
		err = &NotSingularError{building.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (bq *BuildingQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := bq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Buildings.
func (bq *BuildingQuery) All(ctx context.Context) ([]*Building, error) {
	ctx = setContextOp(ctx, bq.ctx, ent.OpQueryAll)
	if err := bq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Building, *BuildingQuery]()
	return withInterceptors[[]*Building](ctx, bq, qr, bq.inters)
}

// AllX is like All, but panics if an error occurs.
func (bq *BuildingQuery) AllX(ctx context.Context) []*Building {
	nodes, err := bq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Building IDs.
func (bq *BuildingQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if bq.ctx.Unique == nil && bq.path != nil {
		bq.Unique(true)
	}
	ctx = setContextOp(ctx, bq.ctx, ent.OpQueryIDs)
	if err = bq.Select(building.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (bq *BuildingQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := bq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (bq *BuildingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, bq.ctx, ent.OpQueryCount)
	if err := bq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, bq, querierCount[*BuildingQuery](), bq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (bq *BuildingQuery) CountX(ctx context.Context) int {
	count, err := bq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (bq *BuildingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, bq.ctx, ent.OpQueryExist)
	switch _, err := bq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (bq *BuildingQuery) ExistX(ctx context.Context) bool {
	exist, err := bq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BuildingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (bq *BuildingQuery) Clone() *BuildingQuery {
	if bq == nil {
		return nil
	}
	return &BuildingQuery{
		config:         bq.config,
		ctx:            bq.ctx.Clone(),
		order:          append([]building.OrderOption{}, bq.order...),
		inters:         append([]Interceptor{}, bq.inters...),
		predicates:     append([]predicate.Building{}, bq.predicates...),
		withRooms:      bq.withRooms.Clone(),
		withEquipment:  bq.withEquipment.Clone(),
		withFiles:      bq.withFiles.Clone(),
		withOcrRecords: bq.withOcrRecords.Clone(),
		withAudits:     bq.withAudits.Clone(),
		withReports:    bq.withReports.Clone(),
		// clone intermediate query.
		sql:  bq.sql.Clone(),
		path: bq.path,
	}
}

// WithRooms tells the query-builder to eager-load the nodes that are connected to
// the "rooms" edge. The optional arguments are used to configure the query builder of the edge.
func (bq *BuildingQuery) WithRooms(opts ...func(*RoomQuery)) *BuildingQuery {
	query := (&RoomClient{config: bq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bq.withRooms = query
	return bq
}

// WithEquipment tells the query-builder to eager-load the nodes that are connected to
// the "equipment" edge. The optional arguments are used to configure the query builder of the edge.
func (bq *BuildingQuery) WithEquipment(opts ...func(*EquipmentQuery)) *BuildingQuery {
	query := (&EquipmentClient{config: bq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bq.withEquipment = query
	return bq
}

// WithFiles tells the query-builder to eager-load the nodes that are connected to
// the "files" edge. The optional arguments are used to configure the query builder of the edge.
func (bq *BuildingQuery) WithFiles(opts ...func(*AuditFileQuery)) *BuildingQuery {
	query := (&AuditFileClient{config: bq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bq.withFiles = query
	return bq
}

// WithOcrRecords tells the query-builder to eager-load the nodes that are connected to
// the "ocr_records" edge. The optional arguments are used to configure the query builder of the edge.
func (bq *BuildingQuery) WithOcrRecords(opts ...func(*OCRRecordQuery)) *BuildingQuery {
	query := (&OCRRecordClient{config: bq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bq.withOcrRecords = query
	return bq
}

// WithAudits tells the query-builder to eager-load the nodes that are connected to
// the "audits" edge. The optional arguments are used to configure the query builder of the edge.
func (bq *BuildingQuery) WithAudits(opts ...func(*AuditQuery)) *BuildingQuery {
	query := (&AuditClient{config: bq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bq.withAudits = query
	return bq
}

// WithReports tells the query-builder to eager-load the nodes that are connected to
// the "reports" edge. The optional arguments are used to configure the query builder of the edge.
func (bq *BuildingQuery) WithReports(opts ...func(*DetailedReportQuery)) *BuildingQuery {
	query := (&DetailedReportClient{config: bq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	bq.withReports = query
	return bq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Building.Query().
//		GroupBy(building.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (bq *BuildingQuery) GroupBy(field string, fields ...string) *BuildingGroupBy {
	bq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BuildingGroupBy{build: bq}
	grbuild.flds = &bq.ctx.Fields
	grbuild.label = building.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Building.Query().
//		Select(building.FieldName).
//		Scan(ctx, &v)
func (bq *BuildingQuery) Select(fields ...string) *BuildingSelect {
	bq.ctx.Fields = append(bq.ctx.Fields, fields...)
	sbuild := &BuildingSelect{BuildingQuery: bq}
	sbuild.label = building.Label
	sbuild.flds, sbuild.scan = &bq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BuildingSelect configured with the given aggregations.
func (bq *BuildingQuery) Aggregate(fns ...AggregateFunc) *BuildingSelect {
	return bq.Select().Aggregate(fns...)
}

func (bq *BuildingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range bq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, bq); err != nil {
				return err
			}
		}
	}
	for _, f := range bq.ctx.Fields {
		if !building.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if bq.path != nil {
		prev, err := bq.path(ctx)
		if err != nil {
			return err
		}
		bq.sql = prev
	}
	return nil
}

func (bq *BuildingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Building, error) {
	var (
		nodes       = []*Building{}
		_spec       = bq.querySpec()
		loadedTypes = [6]bool{
			bq.withRooms != nil,
			bq.withEquipment != nil,
			bq.withFiles != nil,
			bq.withOcrRecords != nil,
			bq.withAudits != nil,
			bq.withReports != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Building).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Building{config: bq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, bq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := bq.withRooms; query != nil {
		if err := bq.loadRooms(ctx, query, nodes,
			func(n *Building) { n.Edges.Rooms = []*Room{} },
			func(n *Building, e *Room) { n.Edges.Rooms = append(n.Edges.Rooms, e) }); err != nil {
			return nil, err
		}
	}
	if query := bq.withEquipment; query != nil {
		if err := bq.loadEquipment(ctx, query, nodes,
			func(n *Building) { n.Edges.Equipment = []*Equipment{} },
			func(n *Building, e *Equipment) { n.Edges.Equipment = append(n.Edges.Equipment, e) }); err != nil {
			return nil, err
		}
	}
	if query := bq.withFiles; query != nil {
		if err := bq.loadFiles(ctx, query, nodes,
			func(n *Building) { n.Edges.Files = []*AuditFile{} },
			func(n *Building, e *AuditFile) { n.Edges.Files = append(n.Edges.Files, e) }); err != nil {
			return nil, err
		}
	}
	if query := bq.withOcrRecords; query != nil {
		if err := bq.loadOcrRecords(ctx, query, nodes,
			func(n *Building) { n.Edges.OcrRecords = []*OCRRecord{} },
			func(n *Building, e *OCRRecord) { n.Edges.OcrRecords = append(n.Edges.OcrRecords, e) }); err != nil {
			return nil, err
		}
	}
	if query := bq.withAudits; query != nil {
		if err := bq.loadAudits(ctx, query, nodes,
			func(n *Building) { n.Edges.Audits = []*Audit{} },
			func(n *Building, e *Audit) { n.Edges.Audits = append(n.Edges.Audits, e) }); err != nil {
			return nil, err
		}
	}
	if query := bq.withReports; query != nil {
		if err := bq.loadReports(ctx, query, nodes,
			func(n *Building) { n.Edges.Reports = []*DetailedReport{} },
			func(n *Building, e *DetailedReport) { n.Edges.Reports = append(n.Edges.Reports, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (bq *BuildingQuery) loadRooms(ctx context.Context, query *RoomQuery, nodes []*Building, init func(*Building), assign func(*Building, *Room)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Building)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(room.FieldBuildingID)
	}
	query.Where(predicate.Room(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(building.RoomsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuildingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "building_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (bq *BuildingQuery) loadEquipment(ctx context.Context, query *EquipmentQuery, nodes []*Building, init func(*Building), assign func(*Building, *Equipment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Building)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(equipment.FieldBuildingID)
	}
	query.Where(predicate.Equipment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(building.EquipmentColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuildingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "building_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (bq *BuildingQuery) loadFiles(ctx context.Context, query *AuditFileQuery, nodes []*Building, init func(*Building), assign func(*Building, *AuditFile)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Building)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(auditfile.FieldBuildingID)
	}
	query.Where(predicate.AuditFile(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(building.FilesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuildingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "building_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (bq *BuildingQuery) loadOcrRecords(ctx context.Context, query *OCRRecordQuery, nodes []*Building, init func(*Building), assign func(*Building, *OCRRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Building)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ocrrecord.FieldBuildingID)
	}
	query.Where(predicate.OCRRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(building.OcrRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuildingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "building_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (bq *BuildingQuery) loadAudits(ctx context.Context, query *AuditQuery, nodes []*Building, init func(*Building), assign func(*Building, *Audit)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Building)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(audit.FieldBuildingID)
	}
	query.Where(predicate.Audit(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(building.AuditsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuildingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "building_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (bq *BuildingQuery) loadReports(ctx context.Context, query *DetailedReportQuery, nodes []*Building, init func(*Building), assign func(*Building, *DetailedReport)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Building)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(detailedreport.FieldBuildingID)
	}
	query.Where(predicate.DetailedReport(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(building.ReportsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BuildingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "building_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (bq *BuildingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := bq.querySpec()
	_spec.Node.Columns = bq.ctx.Fields
	if len(bq.ctx.Fields) > 0 {
		_spec.Unique = bq.ctx.Unique != nil && *bq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, bq.driver, _spec)
}

func (bq *BuildingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(building.Table, building.Columns, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	_spec.From = bq.sql
	if unique := bq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if bq.path != nil {
		_spec.Unique = true
	}
	if fields := bq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, building.FieldID)
		for i := range fields {
			if fields[i] != building.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := bq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := bq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := bq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := bq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (bq *BuildingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(bq.driver.Dialect())
	t1 := builder.Table(building.Table)
	columns := bq.ctx.Fields
	if len(columns) == 0 {
		columns = building.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if bq.sql != nil {
		selector = bq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if bq.ctx.Unique != nil && *bq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range bq.predicates {
		p(selector)
	}
	for _, p := range bq.order {
		p(selector)
	}
	if offset := bq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := bq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BuildingGroupBy is the group-by builder for Building entities.
type BuildingGroupBy struct {
	selector
	build *BuildingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (bgb *BuildingGroupBy) Aggregate(fns ...AggregateFunc) *BuildingGroupBy {
	bgb.fns = append(bgb.fns, fns...)
	return bgb
}

// Scan applies the selector query and scans the result into the given value.
func (bgb *BuildingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bgb.build.ctx, ent.OpQueryGroupBy)
	if err := bgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BuildingQuery, *BuildingGroupBy](ctx, bgb.build, bgb, bgb.build.inters, v)
}

func (bgb *BuildingGroupBy) sqlScan(ctx context.Context, root *BuildingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(bgb.fns))
	for _, fn := range bgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*bgb.flds)+len(bgb.fns))
		for _, f := range *bgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*bgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BuildingSelect is the builder for selecting fields of Building entities.
type BuildingSelect struct {
	*BuildingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bs *BuildingSelect) Aggregate(fns ...AggregateFunc) *BuildingSelect {
	bs.fns = append(bs.fns, fns...)
	return bs
}

// Scan applies the selector query and scans the result into the given value.
func (bs *BuildingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bs.ctx, ent.OpQuerySelect)
	if err := bs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BuildingQuery, *BuildingSelect](ctx, bs.BuildingQuery, bs, bs.inters, v)
}

func (bs *BuildingSelect) sqlScan(ctx context.Context, root *BuildingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bs.fns))
	for _, fn := range bs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
