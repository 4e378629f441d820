// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
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
	"github.com/hrunx/es2square/gen/ent/room"
)

// BuildingCreate is the builder for creating a Building entity.
type BuildingCreate struct {
	config
	mutation *BuildingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (bc *BuildingCreate) SetName(s string) *BuildingCreate {
	bc.mutation.SetName(s)
	return bc
}

// SetAddress sets the "address" field.
func (bc *BuildingCreate) SetAddress(s string) *BuildingCreate {
	bc.mutation.SetAddress(s)
	return bc
}

// SetType sets the "type" field.
func (bc *BuildingCreate) SetType(s string) *BuildingCreate {
	bc.mutation.SetType(s)
	return bc
}

// SetArea sets the "area" field.
func (bc *BuildingCreate) SetArea(f float64) *BuildingCreate {
	bc.mutation.SetArea(f)
	return bc
}

// SetConstructionYear sets the "construction_year" field.
func (bc *BuildingCreate) SetConstructionYear(i int) *BuildingCreate {
	bc.mutation.SetConstructionYear(i)
	return bc
}

// SetNillableConstructionYear sets the "construction_year" field if the given value is not nil.
func (bc *BuildingCreate) SetNillableConstructionYear(i *int) *BuildingCreate {
	if i != nil {
		bc.SetConstructionYear(*i)
	}
	return bc
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (bc *BuildingCreate) SetRoomsDeclared(i int) *BuildingCreate {
	bc.mutation.SetRoomsDeclared(i)
	return bc
}

// SetNillableRoomsDeclared sets the "rooms_declared" field if the given value is not nil.
func (bc *BuildingCreate) SetNillableRoomsDeclared(i *int) *BuildingCreate {
	if i != nil {
		bc.SetRoomsDeclared(*i)
	}
	return bc
}

// SetResidents sets the "residents" field.
func (bc *BuildingCreate) SetResidents(i int) *BuildingCreate {
	bc.mutation.SetResidents(i)
	return bc
}

// SetNillableResidents sets the "residents" field if the given value is not nil.
func (bc *BuildingCreate) SetNillableResidents(i *int) *BuildingCreate {
	if i != nil {
		bc.SetResidents(*i)
	}
	return bc
}

// SetCreatedAt sets the "created_at" field.
func (bc *BuildingCreate) SetCreatedAt(t time.Time) *BuildingCreate {
	bc.mutation.SetCreatedAt(t)
	return bc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bc *BuildingCreate) SetNillableCreatedAt(t *time.Time) *BuildingCreate {
	if t != nil {
		bc.SetCreatedAt(*t)
	}
	return bc
}

// SetUpdatedAt sets the "updated_at" field.
func (bc *BuildingCreate) SetUpdatedAt(t time.Time) *BuildingCreate {
	bc.mutation.SetUpdatedAt(t)
	return bc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bc *BuildingCreate) SetNillableUpdatedAt(t *time.Time) *BuildingCreate {
	if t != nil {
		bc.SetUpdatedAt(*t)
	}
	return bc
}

// SetID sets the "id" field.
func (bc *BuildingCreate) SetID(u uuid.UUID) *BuildingCreate {
	bc.mutation.SetID(u)
	return bc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (bc *BuildingCreate) SetNillableID(u *uuid.UUID) *BuildingCreate {
	if u != nil {
		bc.SetID(*u)
	}
	return bc
}

// AddRoomIDs adds the "rooms" edge to the Room entity by IDs.
func (bc *BuildingCreate) AddRoomIDs(ids ...uuid.UUID) *BuildingCreate {
	bc.mutation.AddRoomIDs(ids...)
	return bc
}

// AddRooms adds the "rooms" edges to the Room entity.
func (bc *BuildingCreate) AddRooms(r ...*Room) *BuildingCreate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bc.AddRoomIDs(ids...)
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by IDs.
func (bc *BuildingCreate) AddEquipmentIDs(ids ...uuid.UUID) *BuildingCreate {
	bc.mutation.AddEquipmentIDs(ids...)
	return bc
}

// AddEquipment adds the "equipment" edges to the Equipment entity.
func (bc *BuildingCreate) AddEquipment(e ...*Equipment) *BuildingCreate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return bc.AddEquipmentIDs(ids...)
}

// AddFileIDs adds the "files" edge to the AuditFile entity by IDs.
func (bc *BuildingCreate) AddFileIDs(ids ...uuid.UUID) *BuildingCreate {
	bc.mutation.AddFileIDs(ids...)
	return bc
}

// AddFiles adds the "files" edges to the AuditFile entity.
func (bc *BuildingCreate) AddFiles(a ...*AuditFile) *BuildingCreate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return bc.AddFileIDs(ids...)
}

// AddOcrRecordIDs adds the "ocr_records" edge to the OCRRecord entity by IDs.
func (bc *BuildingCreate) AddOcrRecordIDs(ids ...uuid.UUID) *BuildingCreate {
	bc.mutation.AddOcrRecordIDs(ids...)
	return bc
}

// AddOcrRecords adds the "ocr_records" edges to the OCRRecord entity.
func (bc *BuildingCreate) AddOcrRecords(o ...*OCRRecord) *BuildingCreate {
	ids := make([]uuid.UUID, len(o))
	for i := range o {
		ids[i] = o[i].ID
	}
	return bc.AddOcrRecordIDs(ids...)
}

// AddAuditIDs adds the "audits" edge to the Audit entity by IDs.
func (bc *BuildingCreate) AddAuditIDs(ids ...uuid.UUID) *BuildingCreate {
	bc.mutation.AddAuditIDs(ids...)
	return bc
}

// AddAudits adds the "audits" edges to the Audit entity.
func (bc *BuildingCreate) AddAudits(a ...*Audit) *BuildingCreate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return bc.AddAuditIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the DetailedReport entity by IDs.
func (bc *BuildingCreate) AddReportIDs(ids ...uuid.UUID) *BuildingCreate {
	bc.mutation.AddReportIDs(ids...)
	return bc
}

// AddReports adds the "reports" edges to the DetailedReport entity.
func (bc *BuildingCreate) AddReports(d ...*DetailedReport) *BuildingCreate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return bc.AddReportIDs(ids...)
}

// Mutation returns the BuildingMutation object of the builder.
func (bc *BuildingCreate) Mutation() *BuildingMutation {
	return bc.mutation
}

// Save creates the Building in the database.
func (bc *BuildingCreate) Save(ctx context.Context) (*Building, error) {
	bc.defaults()
	return withHooks(ctx, bc.sqlSave, bc.mutation, bc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bc *BuildingCreate) SaveX(ctx context.Context) *Building {
	v, err := bc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bc *BuildingCreate) Exec(ctx context.Context) error {
	_, err := bc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bc *BuildingCreate) ExecX(ctx context.Context) {
	if err := bc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bc *BuildingCreate) defaults() {
	if _, ok := bc.mutation.CreatedAt(); !ok {
		v := building.DefaultCreatedAt()
		bc.mutation.SetCreatedAt(v)
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		v := building.DefaultUpdatedAt()
		bc.mutation.SetUpdatedAt(v)
	}
	if _, ok := bc.mutation.ID(); !ok {
		v := building.DefaultID()
		bc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bc *BuildingCreate) check() error {
	if _, ok := bc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Building.name"`)}
	}
	if v, ok := bc.mutation.Name(); ok {
		if err := building.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Building.name": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Building.address"`)}
	}
	if v, ok := bc.mutation.Address(); ok {
		if err := building.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Building.address": %w`, err)}
		}
	}
	if _, ok := bc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Building.type"`)}
	}
	if v, ok := bc.mutation.GetType(); ok {
		if err := building.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Building.type": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "Building.area"`)}
	}
	if v, ok := bc.mutation.Area(); ok {
		if err := building.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "Building.area": %w`, err)}
		}
	}
	if _, ok := bc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Building.created_at"`)}
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Building.updated_at"`)}
	}
	return nil
}

func (bc *BuildingCreate) sqlSave(ctx context.Context) (*Building, error) {
	if err := bc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	bc.mutation.id = &_node.ID
	bc.mutation.done = true
	return _node, nil
}

func (bc *BuildingCreate) createSpec() (*Building, *sqlgraph.CreateSpec) {
	var (
		_node = &Building{config: bc.config}
		_spec = sqlgraph.NewCreateSpec(building.Table, sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = bc.conflict
	if id, ok := bc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := bc.mutation.Name(); ok {
		_spec.SetField(building.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := bc.mutation.Address(); ok {
		_spec.SetField(building.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := bc.mutation.GetType(); ok {
		_spec.SetField(building.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := bc.mutation.Area(); ok {
		_spec.SetField(building.FieldArea, field.TypeFloat64, value)
		_node.Area = value
	}
	if value, ok := bc.mutation.ConstructionYear(); ok {
		_spec.SetField(building.FieldConstructionYear, field.TypeInt, value)
		_node.ConstructionYear = &value
	}
	if value, ok := bc.mutation.RoomsDeclared(); ok {
		_spec.SetField(building.FieldRoomsDeclared, field.TypeInt, value)
		_node.RoomsDeclared = &value
	}
	if value, ok := bc.mutation.Residents(); ok {
		_spec.SetField(building.FieldResidents, field.TypeInt, value)
		_node.Residents = &value
	}
	if value, ok := bc.mutation.CreatedAt(); ok {
		_spec.SetField(building.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bc.mutation.UpdatedAt(); ok {
		_spec.SetField(building.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := bc.mutation.RoomsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.RoomsTable,
			Columns: []string{building.RoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := bc.mutation.EquipmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.EquipmentTable,
			Columns: []string{building.EquipmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := bc.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.FilesTable,
			Columns: []string{building.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := bc.mutation.OcrRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.OcrRecordsTable,
			Columns: []string{building.OcrRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := bc.mutation.AuditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.AuditsTable,
			Columns: []string{building.AuditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := bc.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   building.ReportsTable,
			Columns: []string{building.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detailedreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Building.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildingUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (bc *BuildingCreate) OnConflict(opts ...sql.ConflictOption) *BuildingUpsertOne {
	bc.conflict = opts
	return &BuildingUpsertOne{
		create: bc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bc *BuildingCreate) OnConflictColumns(columns ...string) *BuildingUpsertOne {
	bc.conflict = append(bc.conflict, sql.ConflictColumns(columns...))
	return &BuildingUpsertOne{
		create: bc,
	}
}

type (
	// BuildingUpsertOne is the builder for "upsert"-ing
	//  one Building node.
	BuildingUpsertOne struct {
		create *BuildingCreate
	}

	// BuildingUpsert is the "OnConflict" setter.
	BuildingUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *BuildingUpsert) SetName(v string) *BuildingUpsert {
	u.Set(building.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateName() *BuildingUpsert {
	u.SetExcluded(building.FieldName)
	return u
}

// SetAddress sets the "address" field.
func (u *BuildingUpsert) SetAddress(v string) *BuildingUpsert {
	u.Set(building.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateAddress() *BuildingUpsert {
	u.SetExcluded(building.FieldAddress)
	return u
}

// SetType sets the "type" field.
func (u *BuildingUpsert) SetType(v string) *BuildingUpsert {
	u.Set(building.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateType() *BuildingUpsert {
	u.SetExcluded(building.FieldType)
	return u
}

// SetArea sets the "area" field.
func (u *BuildingUpsert) SetArea(v float64) *BuildingUpsert {
	u.Set(building.FieldArea, v)
	return u
}

// UpdateArea sets the "area" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateArea() *BuildingUpsert {
	u.SetExcluded(building.FieldArea)
	return u
}

// AddArea adds v to the "area" field.
func (u *BuildingUpsert) AddArea(v float64) *BuildingUpsert {
	u.Add(building.FieldArea, v)
	return u
}

// SetConstructionYear sets the "construction_year" field.
func (u *BuildingUpsert) SetConstructionYear(v int) *BuildingUpsert {
	u.Set(building.FieldConstructionYear, v)
	return u
}

// UpdateConstructionYear sets the "construction_year" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateConstructionYear() *BuildingUpsert {
	u.SetExcluded(building.FieldConstructionYear)
	return u
}

// AddConstructionYear adds v to the "construction_year" field.
func (u *BuildingUpsert) AddConstructionYear(v int) *BuildingUpsert {
	u.Add(building.FieldConstructionYear, v)
	return u
}

// ClearConstructionYear clears the value of the "construction_year" field.
func (u *BuildingUpsert) ClearConstructionYear() *BuildingUpsert {
	u.SetNull(building.FieldConstructionYear)
	return u
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (u *BuildingUpsert) SetRoomsDeclared(v int) *BuildingUpsert {
	u.Set(building.FieldRoomsDeclared, v)
	return u
}

// UpdateRoomsDeclared sets the "rooms_declared" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateRoomsDeclared() *BuildingUpsert {
	u.SetExcluded(building.FieldRoomsDeclared)
	return u
}

// AddRoomsDeclared adds v to the "rooms_declared" field.
func (u *BuildingUpsert) AddRoomsDeclared(v int) *BuildingUpsert {
	u.Add(building.FieldRoomsDeclared, v)
	return u
}

// ClearRoomsDeclared clears the value of the "rooms_declared" field.
func (u *BuildingUpsert) ClearRoomsDeclared() *BuildingUpsert {
	u.SetNull(building.FieldRoomsDeclared)
	return u
}

// SetResidents sets the "residents" field.
func (u *BuildingUpsert) SetResidents(v int) *BuildingUpsert {
	u.Set(building.FieldResidents, v)
	return u
}

// UpdateResidents sets the "residents" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateResidents() *BuildingUpsert {
	u.SetExcluded(building.FieldResidents)
	return u
}

// AddResidents adds v to the "residents" field.
func (u *BuildingUpsert) AddResidents(v int) *BuildingUpsert {
	u.Add(building.FieldResidents, v)
	return u
}

// ClearResidents clears the value of the "residents" field.
func (u *BuildingUpsert) ClearResidents() *BuildingUpsert {
	u.SetNull(building.FieldResidents)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildingUpsert) SetUpdatedAt(v time.Time) *BuildingUpsert {
	u.Set(building.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildingUpsert) UpdateUpdatedAt() *BuildingUpsert {
	u.SetExcluded(building.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(building.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildingUpsertOne) UpdateNewValues() *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(building.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(building.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Building.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuildingUpsertOne) Ignore() *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildingUpsertOne) DoNothing() *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildingCreate.OnConflict
// documentation for more info.
func (u *BuildingUpsertOne) Update(set func(*BuildingUpsert)) *BuildingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildingUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BuildingUpsertOne) SetName(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateName() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *BuildingUpsertOne) SetAddress(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateAddress() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateAddress()
	})
}

// SetType sets the "type" field.
func (u *BuildingUpsertOne) SetType(v string) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateType() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateType()
	})
}

// SetArea sets the "area" field.
func (u *BuildingUpsertOne) SetArea(v float64) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetArea(v)
	})
}

// AddArea adds v to the "area" field.
func (u *BuildingUpsertOne) AddArea(v float64) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddArea(v)
	})
}

// UpdateArea sets the "area" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateArea() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateArea()
	})
}

// SetConstructionYear sets the "construction_year" field.
func (u *BuildingUpsertOne) SetConstructionYear(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetConstructionYear(v)
	})
}

// AddConstructionYear adds v to the "construction_year" field.
func (u *BuildingUpsertOne) AddConstructionYear(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddConstructionYear(v)
	})
}

// UpdateConstructionYear sets the "construction_year" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateConstructionYear() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateConstructionYear()
	})
}

// ClearConstructionYear clears the value of the "construction_year" field.
func (u *BuildingUpsertOne) ClearConstructionYear() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearConstructionYear()
	})
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (u *BuildingUpsertOne) SetRoomsDeclared(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetRoomsDeclared(v)
	})
}

// AddRoomsDeclared adds v to the "rooms_declared" field.
func (u *BuildingUpsertOne) AddRoomsDeclared(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddRoomsDeclared(v)
	})
}

// UpdateRoomsDeclared sets the "rooms_declared" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateRoomsDeclared() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateRoomsDeclared()
	})
}

// ClearRoomsDeclared clears the value of the "rooms_declared" field.
func (u *BuildingUpsertOne) ClearRoomsDeclared() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearRoomsDeclared()
	})
}

// SetResidents sets the "residents" field.
func (u *BuildingUpsertOne) SetResidents(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetResidents(v)
	})
}

// AddResidents adds v to the "residents" field.
func (u *BuildingUpsertOne) AddResidents(v int) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.AddResidents(v)
	})
}

// UpdateResidents sets the "residents" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateResidents() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateResidents()
	})
}

// ClearResidents clears the value of the "residents" field.
func (u *BuildingUpsertOne) ClearResidents() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearResidents()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildingUpsertOne) SetUpdatedAt(v time.Time) *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildingUpsertOne) UpdateUpdatedAt() *BuildingUpsertOne {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BuildingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuildingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuildingUpsertOne.ID is not supported by MySQL driver. Use BuildingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuildingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuildingCreateBulk is the builder for creating many Building entities in bulk.
type BuildingCreateBulk struct {
	config
	err      error
	builders []*BuildingCreate
	conflict []sql.ConflictOption
}

// Save creates the Building entities in the database.
func (bcb *BuildingCreateBulk) Save(ctx context.Context) ([]*Building, error) {
	if bcb.err != nil {
		return nil, bcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bcb.builders))
	nodes := make([]*Building, len(bcb.builders))
	mutators := make([]Mutator, len(bcb.builders))
	for i := range bcb.builders {
		func(i int, root context.Context) {
			builder := bcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, bcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = bcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, bcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bcb *BuildingCreateBulk) SaveX(ctx context.Context) []*Building {
	v, err := bcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcb *BuildingCreateBulk) Exec(ctx context.Context) error {
	_, err := bcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcb *BuildingCreateBulk) ExecX(ctx context.Context) {
	if err := bcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Building.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildingUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (bcb *BuildingCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuildingUpsertBulk {
	bcb.conflict = opts
	return &BuildingUpsertBulk{
		create: bcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bcb *BuildingCreateBulk) OnConflictColumns(columns ...string) *BuildingUpsertBulk {
	bcb.conflict = append(bcb.conflict, sql.ConflictColumns(columns...))
	return &BuildingUpsertBulk{
		create: bcb,
	}
}

// BuildingUpsertBulk is the builder for "upsert"-ing
// a bulk of Building nodes.
type BuildingUpsertBulk struct {
	create *BuildingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(building.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildingUpsertBulk) UpdateNewValues() *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(building.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(building.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Building.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuildingUpsertBulk) Ignore() *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildingUpsertBulk) DoNothing() *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildingCreateBulk.OnConflict
// documentation for more info.
func (u *BuildingUpsertBulk) Update(set func(*BuildingUpsert)) *BuildingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildingUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BuildingUpsertBulk) SetName(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateName() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *BuildingUpsertBulk) SetAddress(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateAddress() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateAddress()
	})
}

// SetType sets the "type" field.
func (u *BuildingUpsertBulk) SetType(v string) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateType() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateType()
	})
}

// SetArea sets the "area" field.
func (u *BuildingUpsertBulk) SetArea(v float64) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetArea(v)
	})
}

// AddArea adds v to the "area" field.
func (u *BuildingUpsertBulk) AddArea(v float64) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddArea(v)
	})
}

// UpdateArea sets the "area" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateArea() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateArea()
	})
}

// SetConstructionYear sets the "construction_year" field.
func (u *BuildingUpsertBulk) SetConstructionYear(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetConstructionYear(v)
	})
}

// AddConstructionYear adds v to the "construction_year" field.
func (u *BuildingUpsertBulk) AddConstructionYear(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddConstructionYear(v)
	})
}

// UpdateConstructionYear sets the "construction_year" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateConstructionYear() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateConstructionYear()
	})
}

// ClearConstructionYear clears the value of the "construction_year" field.
func (u *BuildingUpsertBulk) ClearConstructionYear() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearConstructionYear()
	})
}

// SetRoomsDeclared sets the "rooms_declared" field.
func (u *BuildingUpsertBulk) SetRoomsDeclared(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetRoomsDeclared(v)
	})
}

// AddRoomsDeclared adds v to the "rooms_declared" field.
func (u *BuildingUpsertBulk) AddRoomsDeclared(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddRoomsDeclared(v)
	})
}

// UpdateRoomsDeclared sets the "rooms_declared" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateRoomsDeclared() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateRoomsDeclared()
	})
}

// ClearRoomsDeclared clears the value of the "rooms_declared" field.
func (u *BuildingUpsertBulk) ClearRoomsDeclared() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearRoomsDeclared()
	})
}

// SetResidents sets the "residents" field.
func (u *BuildingUpsertBulk) SetResidents(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetResidents(v)
	})
}

// AddResidents adds v to the "residents" field.
func (u *BuildingUpsertBulk) AddResidents(v int) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.AddResidents(v)
	})
}

// UpdateResidents sets the "residents" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateResidents() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateResidents()
	})
}

// ClearResidents clears the value of the "residents" field.
func (u *BuildingUpsertBulk) ClearResidents() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.ClearResidents()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildingUpsertBulk) SetUpdatedAt(v time.Time) *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildingUpsertBulk) UpdateUpdatedAt() *BuildingUpsertBulk {
	return u.Update(func(s *BuildingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BuildingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuildingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
