// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/gen/ent/room"
	"github.com/hrunx/es2square/gen/ent/translation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Audit is the client for interacting with the Audit builders.
	Audit *AuditClient
	// AuditFile is the client for interacting with the AuditFile builders.
	AuditFile *AuditFileClient
	// Building is the client for interacting with the Building builders.
	Building *BuildingClient
	// DetailedReport is the client for interacting with the DetailedReport builders.
	DetailedReport *DetailedReportClient
	// Equipment is the client for interacting with the Equipment builders.
	Equipment *EquipmentClient
	// OCRRecord is the client for interacting with the OCRRecord builders.
	OCRRecord *OCRRecordClient
	// Room is the client for interacting with the Room builders.
	Room *RoomClient
	// Translation is the client for interacting with the Translation builders.
	Translation *TranslationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Audit = NewAuditClient(c.config)
	c.AuditFile = NewAuditFileClient(c.config)
	c.Building = NewBuildingClient(c.config)
	c.DetailedReport = NewDetailedReportClient(c.config)
	c.Equipment = NewEquipmentClient(c.config)
	c.OCRRecord = NewOCRRecordClient(c.config)
	c.Room = NewRoomClient(c.config)
	c.Translation = NewTranslationClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Audit:          NewAuditClient(cfg),
		AuditFile:      NewAuditFileClient(cfg),
		Building:       NewBuildingClient(cfg),
		DetailedReport: NewDetailedReportClient(cfg),
		Equipment:      NewEquipmentClient(cfg),
		OCRRecord:      NewOCRRecordClient(cfg),
		Room:           NewRoomClient(cfg),
		Translation:    NewTranslationClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Audit:          NewAuditClient(cfg),
		AuditFile:      NewAuditFileClient(cfg),
		Building:       NewBuildingClient(cfg),
		DetailedReport: NewDetailedReportClient(cfg),
		Equipment:      NewEquipmentClient(cfg),
		OCRRecord:      NewOCRRecordClient(cfg),
		Room:           NewRoomClient(cfg),
		Translation:    NewTranslationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Audit.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Audit, c.AuditFile, c.Building, c.DetailedReport, c.Equipment, c.OCRRecord,
		c.Room, c.Translation,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Audit, c.AuditFile, c.Building, c.DetailedReport, c.Equipment, c.OCRRecord,
		c.Room, c.Translation,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditMutation:
		return c.Audit.mutate(ctx, m)
	case *AuditFileMutation:
		return c.AuditFile.mutate(ctx, m)
	case *BuildingMutation:
		return c.Building.mutate(ctx, m)
	case *DetailedReportMutation:
		return c.DetailedReport.mutate(ctx, m)
	case *EquipmentMutation:
		return c.Equipment.mutate(ctx, m)
	case *OCRRecordMutation:
		return c.OCRRecord.mutate(ctx, m)
	case *RoomMutation:
		return c.Room.mutate(ctx, m)
	case *TranslationMutation:
		return c.Translation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditClient is a client for the Audit schema.
type AuditClient struct {
	config
}

// NewAuditClient returns a client for the Audit from the given config.
func NewAuditClient(c config) *AuditClient {
	return &AuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audit.Hooks(f(g(h())))`.
func (c *AuditClient) Use(hooks ...Hook) {
	c.hooks.Audit = append(c.hooks.Audit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audit.Intercept(f(g(h())))`.
func (c *AuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.Audit = append(c.inters.Audit, interceptors...)
}

// Create returns a builder for creating a Audit entity.
func (c *AuditClient) Create() *AuditCreate {
	mutation := newAuditMutation(c.config, OpCreate)
	return &AuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Audit entities.
func (c *AuditClient) CreateBulk(builders ...*AuditCreate) *AuditCreateBulk {
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditClient) MapCreateBulk(slice any, setFunc func(*AuditCreate, int)) *AuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditCreateBulk{err: fmt.Errorf("calling to AuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Audit.
func (c *AuditClient) Update() *AuditUpdate {
	mutation := newAuditMutation(c.config, OpUpdate)
	return &AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditClient) UpdateOne(a *Audit) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAudit(a))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditClient) UpdateOneID(id uuid.UUID) *AuditUpdateOne {
	mutation := newAuditMutation(c.config, OpUpdateOne, withAuditID(id))
	return &AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Audit.
func (c *AuditClient) Delete() *AuditDelete {
	mutation := newAuditMutation(c.config, OpDelete)
	return &AuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditClient) DeleteOne(a *Audit) *AuditDeleteOne {
	return c.DeleteOneID(a.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditClient) DeleteOneID(id uuid.UUID) *AuditDeleteOne {
	builder := c.Delete().Where(audit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditDeleteOne{builder}
}

// Query returns a query builder for Audit.
func (c *AuditClient) Query() *AuditQuery {
	return &AuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a Audit entity by its id.
func (c *AuditClient) Get(ctx context.Context, id uuid.UUID) (*Audit, error) {
	return c.Query().Where(audit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditClient) GetX(ctx context.Context, id uuid.UUID) *Audit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilding queries the building edge of a Audit.
func (c *AuditClient) QueryBuilding(a *Audit) *BuildingQuery {
	query := (&BuildingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, audit.BuildingTable, audit.BuildingColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Audit.
func (c *AuditClient) QueryReports(a *Audit) *DetailedReportQuery {
	query := (&DetailedReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(audit.Table, audit.FieldID, id),
			sqlgraph.To(detailedreport.Table, detailedreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, audit.ReportsTable, audit.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditClient) Hooks() []Hook {
	return c.hooks.Audit
}

// Interceptors returns the client interceptors.
func (c *AuditClient) Interceptors() []Interceptor {
	return c.inters.Audit
}

func (c *AuditClient) mutate(ctx context.Context, m *AuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Audit mutation op: %q", m.Op())
	}
}

// AuditFileClient is a client for the AuditFile schema.
type AuditFileClient struct {
	config
}

// NewAuditFileClient returns a client for the AuditFile from the given config.
func NewAuditFileClient(c config) *AuditFileClient {
	return &AuditFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditfile.Hooks(f(g(h())))`.
func (c *AuditFileClient) Use(hooks ...Hook) {
	c.hooks.AuditFile = append(c.hooks.AuditFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditfile.Intercept(f(g(h())))`.
func (c *AuditFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditFile = append(c.inters.AuditFile, interceptors...)
}

// Create returns a builder for creating a AuditFile entity.
func (c *AuditFileClient) Create() *AuditFileCreate {
	mutation := newAuditFileMutation(c.config, OpCreate)
	return &AuditFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditFile entities.
func (c *AuditFileClient) CreateBulk(builders ...*AuditFileCreate) *AuditFileCreateBulk {
	return &AuditFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditFileClient) MapCreateBulk(slice any, setFunc func(*AuditFileCreate, int)) *AuditFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditFileCreateBulk{err: fmt.Errorf("calling to AuditFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditFile.
func (c *AuditFileClient) Update() *AuditFileUpdate {
	mutation := newAuditFileMutation(c.config, OpUpdate)
	return &AuditFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditFileClient) UpdateOne(af *AuditFile) *AuditFileUpdateOne {
	mutation := newAuditFileMutation(c.config, OpUpdateOne, withAuditFile(af))
	return &AuditFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditFileClient) UpdateOneID(id uuid.UUID) *AuditFileUpdateOne {
	mutation := newAuditFileMutation(c.config, OpUpdateOne, withAuditFileID(id))
	return &AuditFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditFile.
func (c *AuditFileClient) Delete() *AuditFileDelete {
	mutation := newAuditFileMutation(c.config, OpDelete)
	return &AuditFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditFileClient) DeleteOne(af *AuditFile) *AuditFileDeleteOne {
	return c.DeleteOneID(af.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditFileClient) DeleteOneID(id uuid.UUID) *AuditFileDeleteOne {
	builder := c.Delete().Where(auditfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditFileDeleteOne{builder}
}

// Query returns a query builder for AuditFile.
func (c *AuditFileClient) Query() *AuditFileQuery {
	return &AuditFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditFile},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditFile entity by its id.
func (c *AuditFileClient) Get(ctx context.Context, id uuid.UUID) (*AuditFile, error) {
	return c.Query().Where(auditfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditFileClient) GetX(ctx context.Context, id uuid.UUID) *AuditFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilding queries the building edge of a AuditFile.
func (c *AuditFileClient) QueryBuilding(af *AuditFile) *BuildingQuery {
	query := (&BuildingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := af.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditfile.Table, auditfile.FieldID, id),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditfile.BuildingTable, auditfile.BuildingColumn),
		)
		fromV = sqlgraph.Neighbors(af.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOcr queries the ocr edge of a AuditFile.
func (c *AuditFileClient) QueryOcr(af *AuditFile) *OCRRecordQuery {
	query := (&OCRRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := af.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditfile.Table, auditfile.FieldID, id),
			sqlgraph.To(ocrrecord.Table, ocrrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, auditfile.OcrTable, auditfile.OcrColumn),
		)
		fromV = sqlgraph.Neighbors(af.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditFileClient) Hooks() []Hook {
	return c.hooks.AuditFile
}

// Interceptors returns the client interceptors.
func (c *AuditFileClient) Interceptors() []Interceptor {
	return c.inters.AuditFile
}

func (c *AuditFileClient) mutate(ctx context.Context, m *AuditFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditFile mutation op: %q", m.Op())
	}
}

// BuildingClient is a client for the Building schema.
type BuildingClient struct {
	config
}

// NewBuildingClient returns a client for the Building from the given config.
func NewBuildingClient(c config) *BuildingClient {
	return &BuildingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `building.Hooks(f(g(h())))`.
func (c *BuildingClient) Use(hooks ...Hook) {
	c.hooks.Building = append(c.hooks.Building, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `building.Intercept(f(g(h())))`.
func (c *BuildingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Building = append(c.inters.Building, interceptors...)
}

// Create returns a builder for creating a Building entity.
func (c *BuildingClient) Create() *BuildingCreate {
	mutation := newBuildingMutation(c.config, OpCreate)
	return &BuildingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Building entities.
func (c *BuildingClient) CreateBulk(builders ...*BuildingCreate) *BuildingCreateBulk {
	return &BuildingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuildingClient) MapCreateBulk(slice any, setFunc func(*BuildingCreate, int)) *BuildingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuildingCreateBulk{err: fmt.Errorf("calling to BuildingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuildingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuildingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Building.
func (c *BuildingClient) Update() *BuildingUpdate {
	mutation := newBuildingMutation(c.config, OpUpdate)
	return &BuildingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuildingClient) UpdateOne(b *Building) *BuildingUpdateOne {
	mutation := newBuildingMutation(c.config, OpUpdateOne, withBuilding(b))
	return &BuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuildingClient) UpdateOneID(id uuid.UUID) *BuildingUpdateOne {
	mutation := newBuildingMutation(c.config, OpUpdateOne, withBuildingID(id))
	return &BuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Building.
func (c *BuildingClient) Delete() *BuildingDelete {
	mutation := newBuildingMutation(c.config, OpDelete)
	return &BuildingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuildingClient) DeleteOne(b *Building) *BuildingDeleteOne {
	return c.DeleteOneID(b.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuildingClient) DeleteOneID(id uuid.UUID) *BuildingDeleteOne {
	builder := c.Delete().Where(building.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuildingDeleteOne{builder}
}

// Query returns a query builder for Building.
func (c *BuildingClient) Query() *BuildingQuery {
	return &BuildingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuilding},
		inters: c.Interceptors(),
	}
}

// Get returns a Building entity by its id.
func (c *BuildingClient) Get(ctx context.Context, id uuid.UUID) (*Building, error) {
	return c.Query().Where(building.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuildingClient) GetX(ctx context.Context, id uuid.UUID) *Building {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRooms queries the rooms edge of a Building.
func (c *BuildingClient) QueryRooms(b *Building) *RoomQuery {
	query := (&RoomClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := b.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, id),
			sqlgraph.To(room.Table, room.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.RoomsTable, building.RoomsColumn),
		)
		fromV = sqlgraph.Neighbors(b.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEquipment queries the equipment edge of a Building.
func (c *BuildingClient) QueryEquipment(b *Building) *EquipmentQuery {
	query := (&EquipmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := b.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, id),
			sqlgraph.To(equipment.Table, equipment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.EquipmentTable, building.EquipmentColumn),
		)
		fromV = sqlgraph.Neighbors(b.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Building.
func (c *BuildingClient) QueryFiles(b *Building) *AuditFileQuery {
	query := (&AuditFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := b.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, id),
			sqlgraph.To(auditfile.Table, auditfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.FilesTable, building.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(b.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOcrRecords queries the ocr_records edge of a Building.
func (c *BuildingClient) QueryOcrRecords(b *Building) *OCRRecordQuery {
	query := (&OCRRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := b.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, id),
			sqlgraph.To(ocrrecord.Table, ocrrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.OcrRecordsTable, building.OcrRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(b.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAudits queries the audits edge of a Building.
func (c *BuildingClient) QueryAudits(b *Building) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := b.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.AuditsTable, building.AuditsColumn),
		)
		fromV = sqlgraph.Neighbors(b.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Building.
func (c *BuildingClient) QueryReports(b *Building) *DetailedReportQuery {
	query := (&DetailedReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := b.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(building.Table, building.FieldID, id),
			sqlgraph.To(detailedreport.Table, detailedreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, building.ReportsTable, building.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(b.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BuildingClient) Hooks() []Hook {
	return c.hooks.Building
}

// Interceptors returns the client interceptors.
func (c *BuildingClient) Interceptors() []Interceptor {
	return c.inters.Building
}

func (c *BuildingClient) mutate(ctx context.Context, m *BuildingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuildingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuildingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuildingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Building mutation op: %q", m.Op())
	}
}

// DetailedReportClient is a client for the DetailedReport schema.
type DetailedReportClient struct {
	config
}

// NewDetailedReportClient returns a client for the DetailedReport from the given config.
func NewDetailedReportClient(c config) *DetailedReportClient {
	return &DetailedReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `detailedreport.Hooks(f(g(h())))`.
func (c *DetailedReportClient) Use(hooks ...Hook) {
	c.hooks.DetailedReport = append(c.hooks.DetailedReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `detailedreport.Intercept(f(g(h())))`.
func (c *DetailedReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.DetailedReport = append(c.inters.DetailedReport, interceptors...)
}

// Create returns a builder for creating a DetailedReport entity.
func (c *DetailedReportClient) Create() *DetailedReportCreate {
	mutation := newDetailedReportMutation(c.config, OpCreate)
	return &DetailedReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DetailedReport entities.
func (c *DetailedReportClient) CreateBulk(builders ...*DetailedReportCreate) *DetailedReportCreateBulk {
	return &DetailedReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DetailedReportClient) MapCreateBulk(slice any, setFunc func(*DetailedReportCreate, int)) *DetailedReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DetailedReportCreateBulk{err: fmt.Errorf("calling to DetailedReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DetailedReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DetailedReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DetailedReport.
func (c *DetailedReportClient) Update() *DetailedReportUpdate {
	mutation := newDetailedReportMutation(c.config, OpUpdate)
	return &DetailedReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DetailedReportClient) UpdateOne(dr *DetailedReport) *DetailedReportUpdateOne {
	mutation := newDetailedReportMutation(c.config, OpUpdateOne, withDetailedReport(dr))
	return &DetailedReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DetailedReportClient) UpdateOneID(id uuid.UUID) *DetailedReportUpdateOne {
	mutation := newDetailedReportMutation(c.config, OpUpdateOne, withDetailedReportID(id))
	return &DetailedReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DetailedReport.
func (c *DetailedReportClient) Delete() *DetailedReportDelete {
	mutation := newDetailedReportMutation(c.config, OpDelete)
	return &DetailedReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DetailedReportClient) DeleteOne(dr *DetailedReport) *DetailedReportDeleteOne {
	return c.DeleteOneID(dr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DetailedReportClient) DeleteOneID(id uuid.UUID) *DetailedReportDeleteOne {
	builder := c.Delete().Where(detailedreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DetailedReportDeleteOne{builder}
}

// Query returns a query builder for DetailedReport.
func (c *DetailedReportClient) Query() *DetailedReportQuery {
	return &DetailedReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDetailedReport},
		inters: c.Interceptors(),
	}
}

// Get returns a DetailedReport entity by its id.
func (c *DetailedReportClient) Get(ctx context.Context, id uuid.UUID) (*DetailedReport, error) {
	return c.Query().Where(detailedreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DetailedReportClient) GetX(ctx context.Context, id uuid.UUID) *DetailedReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilding queries the building edge of a DetailedReport.
func (c *DetailedReportClient) QueryBuilding(dr *DetailedReport) *BuildingQuery {
	query := (&BuildingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detailedreport.Table, detailedreport.FieldID, id),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detailedreport.BuildingTable, detailedreport.BuildingColumn),
		)
		fromV = sqlgraph.Neighbors(dr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAudit queries the audit edge of a DetailedReport.
func (c *DetailedReportClient) QueryAudit(dr *DetailedReport) *AuditQuery {
	query := (&AuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detailedreport.Table, detailedreport.FieldID, id),
			sqlgraph.To(audit.Table, audit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detailedreport.AuditTable, detailedreport.AuditColumn),
		)
		fromV = sqlgraph.Neighbors(dr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DetailedReportClient) Hooks() []Hook {
	return c.hooks.DetailedReport
}

// Interceptors returns the client interceptors.
func (c *DetailedReportClient) Interceptors() []Interceptor {
	return c.inters.DetailedReport
}

func (c *DetailedReportClient) mutate(ctx context.Context, m *DetailedReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DetailedReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DetailedReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DetailedReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DetailedReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DetailedReport mutation op: %q", m.Op())
	}
}

// EquipmentClient is a client for the Equipment schema.
type EquipmentClient struct {
	config
}

// NewEquipmentClient returns a client for the Equipment from the given config.
func NewEquipmentClient(c config) *EquipmentClient {
	return &EquipmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `equipment.Hooks(f(g(h())))`.
func (c *EquipmentClient) Use(hooks ...Hook) {
	c.hooks.Equipment = append(c.hooks.Equipment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `equipment.Intercept(f(g(h())))`.
func (c *EquipmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Equipment = append(c.inters.Equipment, interceptors...)
}

// Create returns a builder for creating a Equipment entity.
func (c *EquipmentClient) Create() *EquipmentCreate {
	mutation := newEquipmentMutation(c.config, OpCreate)
	return &EquipmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Equipment entities.
func (c *EquipmentClient) CreateBulk(builders ...*EquipmentCreate) *EquipmentCreateBulk {
	return &EquipmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EquipmentClient) MapCreateBulk(slice any, setFunc func(*EquipmentCreate, int)) *EquipmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EquipmentCreateBulk{err: fmt.Errorf("calling to EquipmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EquipmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EquipmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Equipment.
func (c *EquipmentClient) Update() *EquipmentUpdate {
	mutation := newEquipmentMutation(c.config, OpUpdate)
	return &EquipmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EquipmentClient) UpdateOne(e *Equipment) *EquipmentUpdateOne {
	mutation := newEquipmentMutation(c.config, OpUpdateOne, withEquipment(e))
	return &EquipmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EquipmentClient) UpdateOneID(id uuid.UUID) *EquipmentUpdateOne {
	mutation := newEquipmentMutation(c.config, OpUpdateOne, withEquipmentID(id))
	return &EquipmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Equipment.
func (c *EquipmentClient) Delete() *EquipmentDelete {
	mutation := newEquipmentMutation(c.config, OpDelete)
	return &EquipmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EquipmentClient) DeleteOne(e *Equipment) *EquipmentDeleteOne {
	return c.DeleteOneID(e.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EquipmentClient) DeleteOneID(id uuid.UUID) *EquipmentDeleteOne {
	builder := c.Delete().Where(equipment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EquipmentDeleteOne{builder}
}

// Query returns a query builder for Equipment.
func (c *EquipmentClient) Query() *EquipmentQuery {
	return &EquipmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEquipment},
		inters: c.Interceptors(),
	}
}

// Get returns a Equipment entity by its id.
func (c *EquipmentClient) Get(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	return c.Query().Where(equipment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EquipmentClient) GetX(ctx context.Context, id uuid.UUID) *Equipment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilding queries the building edge of a Equipment.
func (c *EquipmentClient) QueryBuilding(e *Equipment) *BuildingQuery {
	query := (&BuildingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := e.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(equipment.Table, equipment.FieldID, id),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, equipment.BuildingTable, equipment.BuildingColumn),
		)
		fromV = sqlgraph.Neighbors(e.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoom queries the room edge of a Equipment.
func (c *EquipmentClient) QueryRoom(e *Equipment) *RoomQuery {
	query := (&RoomClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := e.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(equipment.Table, equipment.FieldID, id),
			sqlgraph.To(room.Table, room.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, equipment.RoomTable, equipment.RoomColumn),
		)
		fromV = sqlgraph.Neighbors(e.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EquipmentClient) Hooks() []Hook {
	return c.hooks.Equipment
}

// Interceptors returns the client interceptors.
func (c *EquipmentClient) Interceptors() []Interceptor {
	return c.inters.Equipment
}

func (c *EquipmentClient) mutate(ctx context.Context, m *EquipmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EquipmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EquipmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EquipmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EquipmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Equipment mutation op: %q", m.Op())
	}
}

// OCRRecordClient is a client for the OCRRecord schema.
type OCRRecordClient struct {
	config
}

// NewOCRRecordClient returns a client for the OCRRecord from the given config.
func NewOCRRecordClient(c config) *OCRRecordClient {
	return &OCRRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ocrrecord.Hooks(f(g(h())))`.
func (c *OCRRecordClient) Use(hooks ...Hook) {
	c.hooks.OCRRecord = append(c.hooks.OCRRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ocrrecord.Intercept(f(g(h())))`.
func (c *OCRRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.OCRRecord = append(c.inters.OCRRecord, interceptors...)
}

// Create returns a builder for creating a OCRRecord entity.
func (c *OCRRecordClient) Create() *OCRRecordCreate {
	mutation := newOCRRecordMutation(c.config, OpCreate)
	return &OCRRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OCRRecord entities.
func (c *OCRRecordClient) CreateBulk(builders ...*OCRRecordCreate) *OCRRecordCreateBulk {
	return &OCRRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OCRRecordClient) MapCreateBulk(slice any, setFunc func(*OCRRecordCreate, int)) *OCRRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OCRRecordCreateBulk{err: fmt.Errorf("calling to OCRRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OCRRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OCRRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OCRRecord.
func (c *OCRRecordClient) Update() *OCRRecordUpdate {
	mutation := newOCRRecordMutation(c.config, OpUpdate)
	return &OCRRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OCRRecordClient) UpdateOne(or *OCRRecord) *OCRRecordUpdateOne {
	mutation := newOCRRecordMutation(c.config, OpUpdateOne, withOCRRecord(or))
	return &OCRRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OCRRecordClient) UpdateOneID(id uuid.UUID) *OCRRecordUpdateOne {
	mutation := newOCRRecordMutation(c.config, OpUpdateOne, withOCRRecordID(id))
	return &OCRRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OCRRecord.
func (c *OCRRecordClient) Delete() *OCRRecordDelete {
	mutation := newOCRRecordMutation(c.config, OpDelete)
	return &OCRRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OCRRecordClient) DeleteOne(or *OCRRecord) *OCRRecordDeleteOne {
	return c.DeleteOneID(or.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OCRRecordClient) DeleteOneID(id uuid.UUID) *OCRRecordDeleteOne {
	builder := c.Delete().Where(ocrrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OCRRecordDeleteOne{builder}
}

// Query returns a query builder for OCRRecord.
func (c *OCRRecordClient) Query() *OCRRecordQuery {
	return &OCRRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOCRRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a OCRRecord entity by its id.
func (c *OCRRecordClient) Get(ctx context.Context, id uuid.UUID) (*OCRRecord, error) {
	return c.Query().Where(ocrrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OCRRecordClient) GetX(ctx context.Context, id uuid.UUID) *OCRRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilding queries the building edge of a OCRRecord.
func (c *OCRRecordClient) QueryBuilding(or *OCRRecord) *BuildingQuery {
	query := (&BuildingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := or.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrrecord.Table, ocrrecord.FieldID, id),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ocrrecord.BuildingTable, ocrrecord.BuildingColumn),
		)
		fromV = sqlgraph.Neighbors(or.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFile queries the file edge of a OCRRecord.
func (c *OCRRecordClient) QueryFile(or *OCRRecord) *AuditFileQuery {
	query := (&AuditFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := or.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrrecord.Table, ocrrecord.FieldID, id),
			sqlgraph.To(auditfile.Table, auditfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ocrrecord.FileTable, ocrrecord.FileColumn),
		)
		fromV = sqlgraph.Neighbors(or.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OCRRecordClient) Hooks() []Hook {
	return c.hooks.OCRRecord
}

// Interceptors returns the client interceptors.
func (c *OCRRecordClient) Interceptors() []Interceptor {
	return c.inters.OCRRecord
}

func (c *OCRRecordClient) mutate(ctx context.Context, m *OCRRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OCRRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OCRRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OCRRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OCRRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OCRRecord mutation op: %q", m.Op())
	}
}

// RoomClient is a client for the Room schema.
type RoomClient struct {
	config
}

// NewRoomClient returns a client for the Room from the given config.
func NewRoomClient(c config) *RoomClient {
	return &RoomClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `room.Hooks(f(g(h())))`.
func (c *RoomClient) Use(hooks ...Hook) {
	c.hooks.Room = append(c.hooks.Room, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `room.Intercept(f(g(h())))`.
func (c *RoomClient) Intercept(interceptors ...Interceptor) {
	c.inters.Room = append(c.inters.Room, interceptors...)
}

// Create returns a builder for creating a Room entity.
func (c *RoomClient) Create() *RoomCreate {
	mutation := newRoomMutation(c.config, OpCreate)
	return &RoomCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Room entities.
func (c *RoomClient) CreateBulk(builders ...*RoomCreate) *RoomCreateBulk {
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoomClient) MapCreateBulk(slice any, setFunc func(*RoomCreate, int)) *RoomCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoomCreateBulk{err: fmt.Errorf("calling to RoomClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoomCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Room.
func (c *RoomClient) Update() *RoomUpdate {
	mutation := newRoomMutation(c.config, OpUpdate)
	return &RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoomClient) UpdateOne(r *Room) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoom(r))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoomClient) UpdateOneID(id uuid.UUID) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoomID(id))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Room.
func (c *RoomClient) Delete() *RoomDelete {
	mutation := newRoomMutation(c.config, OpDelete)
	return &RoomDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoomClient) DeleteOne(r *Room) *RoomDeleteOne {
	return c.DeleteOneID(r.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoomClient) DeleteOneID(id uuid.UUID) *RoomDeleteOne {
	builder := c.Delete().Where(room.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoomDeleteOne{builder}
}

// Query returns a query builder for Room.
func (c *RoomClient) Query() *RoomQuery {
	return &RoomQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoom},
		inters: c.Interceptors(),
	}
}

// Get returns a Room entity by its id.
func (c *RoomClient) Get(ctx context.Context, id uuid.UUID) (*Room, error) {
	return c.Query().Where(room.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoomClient) GetX(ctx context.Context, id uuid.UUID) *Room {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilding queries the building edge of a Room.
func (c *RoomClient) QueryBuilding(r *Room) *BuildingQuery {
	query := (&BuildingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := r.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(room.Table, room.FieldID, id),
			sqlgraph.To(building.Table, building.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, room.BuildingTable, room.BuildingColumn),
		)
		fromV = sqlgraph.Neighbors(r.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEquipment queries the equipment edge of a Room.
func (c *RoomClient) QueryEquipment(r *Room) *EquipmentQuery {
	query := (&EquipmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := r.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(room.Table, room.FieldID, id),
			sqlgraph.To(equipment.Table, equipment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, room.EquipmentTable, room.EquipmentColumn),
		)
		fromV = sqlgraph.Neighbors(r.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoomClient) Hooks() []Hook {
	return c.hooks.Room
}

// Interceptors returns the client interceptors.
func (c *RoomClient) Interceptors() []Interceptor {
	return c.inters.Room
}

func (c *RoomClient) mutate(ctx context.Context, m *RoomMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoomCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoomDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Room mutation op: %q", m.Op())
	}
}

// TranslationClient is a client for the Translation schema.
type TranslationClient struct {
	config
}

// NewTranslationClient returns a client for the Translation from the given config.
func NewTranslationClient(c config) *TranslationClient {
	return &TranslationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `translation.Hooks(f(g(h())))`.
func (c *TranslationClient) Use(hooks ...Hook) {
	c.hooks.Translation = append(c.hooks.Translation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `translation.Intercept(f(g(h())))`.
func (c *TranslationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Translation = append(c.inters.Translation, interceptors...)
}

// Create returns a builder for creating a Translation entity.
func (c *TranslationClient) Create() *TranslationCreate {
	mutation := newTranslationMutation(c.config, OpCreate)
	return &TranslationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Translation entities.
func (c *TranslationClient) CreateBulk(builders ...*TranslationCreate) *TranslationCreateBulk {
	return &TranslationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranslationClient) MapCreateBulk(slice any, setFunc func(*TranslationCreate, int)) *TranslationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranslationCreateBulk{err: fmt.Errorf("calling to TranslationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranslationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranslationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Translation.
func (c *TranslationClient) Update() *TranslationUpdate {
	mutation := newTranslationMutation(c.config, OpUpdate)
	return &TranslationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranslationClient) UpdateOne(t *Translation) *TranslationUpdateOne {
	mutation := newTranslationMutation(c.config, OpUpdateOne, withTranslation(t))
	return &TranslationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranslationClient) UpdateOneID(id uuid.UUID) *TranslationUpdateOne {
	mutation := newTranslationMutation(c.config, OpUpdateOne, withTranslationID(id))
	return &TranslationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Translation.
func (c *TranslationClient) Delete() *TranslationDelete {
	mutation := newTranslationMutation(c.config, OpDelete)
	return &TranslationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranslationClient) DeleteOne(t *Translation) *TranslationDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranslationClient) DeleteOneID(id uuid.UUID) *TranslationDeleteOne {
	builder := c.Delete().Where(translation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranslationDeleteOne{builder}
}

// Query returns a query builder for Translation.
func (c *TranslationClient) Query() *TranslationQuery {
	return &TranslationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranslation},
		inters: c.Interceptors(),
	}
}

// Get returns a Translation entity by its id.
func (c *TranslationClient) Get(ctx context.Context, id uuid.UUID) (*Translation, error) {
	return c.Query().Where(translation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranslationClient) GetX(ctx context.Context, id uuid.UUID) *Translation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TranslationClient) Hooks() []Hook {
	return c.hooks.Translation
}

// Interceptors returns the client interceptors.
func (c *TranslationClient) Interceptors() []Interceptor {
	return c.inters.Translation
}

func (c *TranslationClient) mutate(ctx context.Context, m *TranslationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranslationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranslationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranslationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranslationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Translation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Audit, AuditFile, Building, DetailedReport, Equipment, OCRRecord, Room,
		Translation []ent.Hook
	}
	inters struct {
		Audit, AuditFile, Building, DetailedReport, Equipment, OCRRecord, Room,
		Translation []ent.Interceptor
	}
)
