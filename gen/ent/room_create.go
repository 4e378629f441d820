// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/room"
)

// RoomCreate is the builder for creating a Room entity.
type RoomCreate struct {
	config
	mutation *RoomMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildingID sets the "building_id" field.
func (rc *RoomCreate) SetBuildingID(u uuid.UUID) *RoomCreate {
	rc.mutation.SetBuildingID(u)
	return rc
}

// SetName sets the "name" field.
func (rc *RoomCreate) SetName(s string) *RoomCreate {
	rc.mutation.SetName(s)
	return rc
}

// SetArea sets the "area" field.
func (rc *RoomCreate) SetArea(f float64) *RoomCreate {
	rc.mutation.SetArea(f)
	return rc
}

// SetLightingType sets the "lighting_type" field.
func (rc *RoomCreate) SetLightingType(s string) *RoomCreate {
	rc.mutation.SetLightingType(s)
	return rc
}

// SetNillableLightingType sets the "lighting_type" field if the given value is not nil.
func (rc *RoomCreate) SetNillableLightingType(s *string) *RoomCreate {
	if s != nil {
		rc.SetLightingType(*s)
	}
	return rc
}

// SetNumFixtures sets the "num_fixtures" field.
func (rc *RoomCreate) SetNumFixtures(i int) *RoomCreate {
	rc.mutation.SetNumFixtures(i)
	return rc
}

// SetNillableNumFixtures sets the "num_fixtures" field if the given value is not nil.
func (rc *RoomCreate) SetNillableNumFixtures(i *int) *RoomCreate {
	if i != nil {
		rc.SetNumFixtures(*i)
	}
	return rc
}

// SetAcType sets the "ac_type" field.
func (rc *RoomCreate) SetAcType(s string) *RoomCreate {
	rc.mutation.SetAcType(s)
	return rc
}

// SetNillableAcType sets the "ac_type" field if the given value is not nil.
func (rc *RoomCreate) SetNillableAcType(s *string) *RoomCreate {
	if s != nil {
		rc.SetAcType(*s)
	}
	return rc
}

// SetAcSize sets the "ac_size" field.
func (rc *RoomCreate) SetAcSize(f float64) *RoomCreate {
	rc.mutation.SetAcSize(f)
	return rc
}

// SetNillableAcSize sets the "ac_size" field if the given value is not nil.
func (rc *RoomCreate) SetNillableAcSize(f *float64) *RoomCreate {
	if f != nil {
		rc.SetAcSize(*f)
	}
	return rc
}

// SetWindows sets the "windows" field.
func (rc *RoomCreate) SetWindows(i int) *RoomCreate {
	rc.mutation.SetWindows(i)
	return rc
}

// SetNillableWindows sets the "windows" field if the given value is not nil.
func (rc *RoomCreate) SetNillableWindows(i *int) *RoomCreate {
	if i != nil {
		rc.SetWindows(*i)
	}
	return rc
}

// SetRoomData sets the "room_data" field.
func (rc *RoomCreate) SetRoomData(jm json.RawMessage) *RoomCreate {
	rc.mutation.SetRoomData(jm)
	return rc
}

// SetNotes sets the "notes" field.
func (rc *RoomCreate) SetNotes(s string) *RoomCreate {
	rc.mutation.SetNotes(s)
	return rc
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (rc *RoomCreate) SetNillableNotes(s *string) *RoomCreate {
	if s != nil {
		rc.SetNotes(*s)
	}
	return rc
}

// SetCreatedAt sets the "created_at" field.
func (rc *RoomCreate) SetCreatedAt(t time.Time) *RoomCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rc *RoomCreate) SetNillableCreatedAt(t *time.Time) *RoomCreate {
	if t != nil {
		rc.SetCreatedAt(*t)
	}
	return rc
}

// SetID sets the "id" field.
func (rc *RoomCreate) SetID(u uuid.UUID) *RoomCreate {
	rc.mutation.SetID(u)
	return rc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rc *RoomCreate) SetNillableID(u *uuid.UUID) *RoomCreate {
	if u != nil {
		rc.SetID(*u)
	}
	return rc
}

// SetBuilding sets the "building" edge to the Building entity.
func (rc *RoomCreate) SetBuilding(b *Building) *RoomCreate {
	return rc.SetBuildingID(b.ID)
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by IDs.
func (rc *RoomCreate) AddEquipmentIDs(ids ...uuid.UUID) *RoomCreate {
	rc.mutation.AddEquipmentIDs(ids...)
	return rc
}

// AddEquipment adds the "equipment" edges to the Equipment entity.
func (rc *RoomCreate) AddEquipment(e ...*Equipment) *RoomCreate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return rc.AddEquipmentIDs(ids...)
}

// Mutation returns the RoomMutation object of the builder.
func (rc *RoomCreate) Mutation() *RoomMutation {
	return rc.mutation
}

// Save creates the Room in the database.
func (rc *RoomCreate) Save(ctx context.Context) (*Room, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *RoomCreate) SaveX(ctx context.Context) *Room {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *RoomCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *RoomCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *RoomCreate) defaults() {
	if _, ok := rc.mutation.CreatedAt(); !ok {
		v := room.DefaultCreatedAt()
		rc.mutation.SetCreatedAt(v)
	}
	if _, ok := rc.mutation.ID(); !ok {
		v := room.DefaultID()
		rc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *RoomCreate) check() error {
	if _, ok := rc.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "Room.building_id"`)}
	}
	if _, ok := rc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Room.name"`)}
	}
	if v, ok := rc.mutation.Name(); ok {
		if err := room.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Room.name": %w`, err)}
		}
	}
	if _, ok := rc.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "Room.area"`)}
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Room.created_at"`)}
	}
	if len(rc.mutation.BuildingIDs()) == 0 {
		return &ValidationError{Name: "building", err: errors.New(`ent: missing required edge "Room.building"`)}
	}
	return nil
}

func (rc *RoomCreate) sqlSave(ctx context.Context) (*Room, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
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
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *RoomCreate) createSpec() (*Room, *sqlgraph.CreateSpec) {
	var (
		_node = &Room{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(room.Table, sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = rc.conflict
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rc.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := rc.mutation.Area(); ok {
		_spec.SetField(room.FieldArea, field.TypeFloat64, value)
		_node.Area = value
	}
	if value, ok := rc.mutation.LightingType(); ok {
		_spec.SetField(room.FieldLightingType, field.TypeString, value)
		_node.LightingType = &value
	}
	if value, ok := rc.mutation.NumFixtures(); ok {
		_spec.SetField(room.FieldNumFixtures, field.TypeInt, value)
		_node.NumFixtures = &value
	}
	if value, ok := rc.mutation.AcType(); ok {
		_spec.SetField(room.FieldAcType, field.TypeString, value)
		_node.AcType = &value
	}
	if value, ok := rc.mutation.AcSize(); ok {
		_spec.SetField(room.FieldAcSize, field.TypeFloat64, value)
		_node.AcSize = &value
	}
	if value, ok := rc.mutation.Windows(); ok {
		_spec.SetField(room.FieldWindows, field.TypeInt, value)
		_node.Windows = &value
	}
	if value, ok := rc.mutation.RoomData(); ok {
		_spec.SetField(room.FieldRoomData, field.TypeJSON, value)
		_node.RoomData = value
	}
	if value, ok := rc.mutation.Notes(); ok {
		_spec.SetField(room.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(room.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := rc.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   room.BuildingTable,
			Columns: []string{room.BuildingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BuildingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rc.mutation.EquipmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   room.EquipmentTable,
			Columns: []string{room.EquipmentColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.Create().
//		SetBuildingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (rc *RoomCreate) OnConflict(opts ...sql.ConflictOption) *RoomUpsertOne {
	rc.conflict = opts
	return &RoomUpsertOne{
		create: rc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rc *RoomCreate) OnConflictColumns(columns ...string) *RoomUpsertOne {
	rc.conflict = append(rc.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertOne{
		create: rc,
	}
}

type (
	// RoomUpsertOne is the builder for "upsert"-ing
	//  one Room node.
	RoomUpsertOne struct {
		create *RoomCreate
	}

	// RoomUpsert is the "OnConflict" setter.
	RoomUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuildingID sets the "building_id" field.
func (u *RoomUpsert) SetBuildingID(v uuid.UUID) *RoomUpsert {
	u.Set(room.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *RoomUpsert) UpdateBuildingID() *RoomUpsert {
	u.SetExcluded(room.FieldBuildingID)
	return u
}

// SetName sets the "name" field.
func (u *RoomUpsert) SetName(v string) *RoomUpsert {
	u.Set(room.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsert) UpdateName() *RoomUpsert {
	u.SetExcluded(room.FieldName)
	return u
}

// SetArea sets the "area" field.
func (u *RoomUpsert) SetArea(v float64) *RoomUpsert {
	u.Set(room.FieldArea, v)
	return u
}

// UpdateArea sets the "area" field to the value that was provided on create.
func (u *RoomUpsert) UpdateArea() *RoomUpsert {
	u.SetExcluded(room.FieldArea)
	return u
}

// AddArea adds v to the "area" field.
func (u *RoomUpsert) AddArea(v float64) *RoomUpsert {
	u.Add(room.FieldArea, v)
	return u
}

// SetLightingType sets the "lighting_type" field.
func (u *RoomUpsert) SetLightingType(v string) *RoomUpsert {
	u.Set(room.FieldLightingType, v)
	return u
}

// UpdateLightingType sets the "lighting_type" field to the value that was provided on create.
func (u *RoomUpsert) UpdateLightingType() *RoomUpsert {
	u.SetExcluded(room.FieldLightingType)
	return u
}

// ClearLightingType clears the value of the "lighting_type" field.
func (u *RoomUpsert) ClearLightingType() *RoomUpsert {
	u.SetNull(room.FieldLightingType)
	return u
}

// SetNumFixtures sets the "num_fixtures" field.
func (u *RoomUpsert) SetNumFixtures(v int) *RoomUpsert {
	u.Set(room.FieldNumFixtures, v)
	return u
}

// UpdateNumFixtures sets the "num_fixtures" field to the value that was provided on create.
func (u *RoomUpsert) UpdateNumFixtures() *RoomUpsert {
	u.SetExcluded(room.FieldNumFixtures)
	return u
}

// AddNumFixtures adds v to the "num_fixtures" field.
func (u *RoomUpsert) AddNumFixtures(v int) *RoomUpsert {
	u.Add(room.FieldNumFixtures, v)
	return u
}

// ClearNumFixtures clears the value of the "num_fixtures" field.
func (u *RoomUpsert) ClearNumFixtures() *RoomUpsert {
	u.SetNull(room.FieldNumFixtures)
	return u
}

// SetAcType sets the "ac_type" field.
func (u *RoomUpsert) SetAcType(v string) *RoomUpsert {
	u.Set(room.FieldAcType, v)
	return u
}

// UpdateAcType sets the "ac_type" field to the value that was provided on create.
func (u *RoomUpsert) UpdateAcType() *RoomUpsert {
	u.SetExcluded(room.FieldAcType)
	return u
}

// ClearAcType clears the value of the "ac_type" field.
func (u *RoomUpsert) ClearAcType() *RoomUpsert {
	u.SetNull(room.FieldAcType)
	return u
}

// SetAcSize sets the "ac_size" field.
func (u *RoomUpsert) SetAcSize(v float64) *RoomUpsert {
	u.Set(room.FieldAcSize, v)
	return u
}

// UpdateAcSize sets the "ac_size" field to the value that was provided on create.
func (u *RoomUpsert) UpdateAcSize() *RoomUpsert {
	u.SetExcluded(room.FieldAcSize)
	return u
}

// AddAcSize adds v to the "ac_size" field.
func (u *RoomUpsert) AddAcSize(v float64) *RoomUpsert {
	u.Add(room.FieldAcSize, v)
	return u
}

// ClearAcSize clears the value of the "ac_size" field.
func (u *RoomUpsert) ClearAcSize() *RoomUpsert {
	u.SetNull(room.FieldAcSize)
	return u
}

// SetWindows sets the "windows" field.
func (u *RoomUpsert) SetWindows(v int) *RoomUpsert {
	u.Set(room.FieldWindows, v)
	return u
}

// UpdateWindows sets the "windows" field to the value that was provided on create.
func (u *RoomUpsert) UpdateWindows() *RoomUpsert {
	u.SetExcluded(room.FieldWindows)
	return u
}

// AddWindows adds v to the "windows" field.
func (u *RoomUpsert) AddWindows(v int) *RoomUpsert {
	u.Add(room.FieldWindows, v)
	return u
}

// ClearWindows clears the value of the "windows" field.
func (u *RoomUpsert) ClearWindows() *RoomUpsert {
	u.SetNull(room.FieldWindows)
	return u
}

// SetRoomData sets the "room_data" field.
func (u *RoomUpsert) SetRoomData(v json.RawMessage) *RoomUpsert {
	u.Set(room.FieldRoomData, v)
	return u
}

// UpdateRoomData sets the "room_data" field to the value that was provided on create.
func (u *RoomUpsert) UpdateRoomData() *RoomUpsert {
	u.SetExcluded(room.FieldRoomData)
	return u
}

// ClearRoomData clears the value of the "room_data" field.
func (u *RoomUpsert) ClearRoomData() *RoomUpsert {
	u.SetNull(room.FieldRoomData)
	return u
}

// SetNotes sets the "notes" field.
func (u *RoomUpsert) SetNotes(v string) *RoomUpsert {
	u.Set(room.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *RoomUpsert) UpdateNotes() *RoomUpsert {
	u.SetExcluded(room.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *RoomUpsert) ClearNotes() *RoomUpsert {
	u.SetNull(room.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertOne) UpdateNewValues() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(room.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(room.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoomUpsertOne) Ignore() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertOne) DoNothing() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreate.OnConflict
// documentation for more info.
func (u *RoomUpsertOne) Update(set func(*RoomUpsert)) *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *RoomUpsertOne) SetBuildingID(v uuid.UUID) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateBuildingID() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateBuildingID()
	})
}

// SetName sets the "name" field.
func (u *RoomUpsertOne) SetName(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateName() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateName()
	})
}

// SetArea sets the "area" field.
func (u *RoomUpsertOne) SetArea(v float64) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetArea(v)
	})
}

// AddArea adds v to the "area" field.
func (u *RoomUpsertOne) AddArea(v float64) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.AddArea(v)
	})
}

// UpdateArea sets the "area" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateArea() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateArea()
	})
}

// SetLightingType sets the "lighting_type" field.
func (u *RoomUpsertOne) SetLightingType(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetLightingType(v)
	})
}

// UpdateLightingType sets the "lighting_type" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateLightingType() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateLightingType()
	})
}

// ClearLightingType clears the value of the "lighting_type" field.
func (u *RoomUpsertOne) ClearLightingType() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearLightingType()
	})
}

// SetNumFixtures sets the "num_fixtures" field.
func (u *RoomUpsertOne) SetNumFixtures(v int) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetNumFixtures(v)
	})
}

// AddNumFixtures adds v to the "num_fixtures" field.
func (u *RoomUpsertOne) AddNumFixtures(v int) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.AddNumFixtures(v)
	})
}

// UpdateNumFixtures sets the "num_fixtures" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateNumFixtures() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateNumFixtures()
	})
}

// ClearNumFixtures clears the value of the "num_fixtures" field.
func (u *RoomUpsertOne) ClearNumFixtures() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearNumFixtures()
	})
}

// SetAcType sets the "ac_type" field.
func (u *RoomUpsertOne) SetAcType(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetAcType(v)
	})
}

// UpdateAcType sets the "ac_type" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateAcType() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateAcType()
	})
}

// ClearAcType clears the value of the "ac_type" field.
func (u *RoomUpsertOne) ClearAcType() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearAcType()
	})
}

// SetAcSize sets the "ac_size" field.
func (u *RoomUpsertOne) SetAcSize(v float64) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetAcSize(v)
	})
}

// AddAcSize adds v to the "ac_size" field.
func (u *RoomUpsertOne) AddAcSize(v float64) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.AddAcSize(v)
	})
}

// UpdateAcSize sets the "ac_size" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateAcSize() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateAcSize()
	})
}

// ClearAcSize clears the value of the "ac_size" field.
func (u *RoomUpsertOne) ClearAcSize() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearAcSize()
	})
}

// SetWindows sets the "windows" field.
func (u *RoomUpsertOne) SetWindows(v int) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetWindows(v)
	})
}

// AddWindows adds v to the "windows" field.
func (u *RoomUpsertOne) AddWindows(v int) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.AddWindows(v)
	})
}

// UpdateWindows sets the "windows" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateWindows() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWindows()
	})
}

// ClearWindows clears the value of the "windows" field.
func (u *RoomUpsertOne) ClearWindows() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearWindows()
	})
}

// SetRoomData sets the "room_data" field.
func (u *RoomUpsertOne) SetRoomData(v json.RawMessage) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetRoomData(v)
	})
}

// UpdateRoomData sets the "room_data" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateRoomData() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateRoomData()
	})
}

// ClearRoomData clears the value of the "room_data" field.
func (u *RoomUpsertOne) ClearRoomData() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearRoomData()
	})
}

// SetNotes sets the "notes" field.
func (u *RoomUpsertOne) SetNotes(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateNotes() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *RoomUpsertOne) ClearNotes() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *RoomUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoomUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoomUpsertOne.ID is not supported by MySQL driver. Use RoomUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoomUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoomCreateBulk is the builder for creating many Room entities in bulk.
type RoomCreateBulk struct {
	config
	err      error
	builders []*RoomCreate
	conflict []sql.ConflictOption
}

// Save creates the Room entities in the database.
func (rcb *RoomCreateBulk) Save(ctx context.Context) ([]*Room, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Room, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = rcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *RoomCreateBulk) SaveX(ctx context.Context) []*Room {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *RoomCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *RoomCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (rcb *RoomCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoomUpsertBulk {
	rcb.conflict = opts
	return &RoomUpsertBulk{
		create: rcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rcb *RoomCreateBulk) OnConflictColumns(columns ...string) *RoomUpsertBulk {
	rcb.conflict = append(rcb.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertBulk{
		create: rcb,
	}
}

// RoomUpsertBulk is the builder for "upsert"-ing
// a bulk of Room nodes.
type RoomUpsertBulk struct {
	create *RoomCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertBulk) UpdateNewValues() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(room.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(room.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoomUpsertBulk) Ignore() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertBulk) DoNothing() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreateBulk.OnConflict
// documentation for more info.
func (u *RoomUpsertBulk) Update(set func(*RoomUpsert)) *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *RoomUpsertBulk) SetBuildingID(v uuid.UUID) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateBuildingID() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateBuildingID()
	})
}

// SetName sets the "name" field.
func (u *RoomUpsertBulk) SetName(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateName() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateName()
	})
}

// SetArea sets the "area" field.
func (u *RoomUpsertBulk) SetArea(v float64) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetArea(v)
	})
}

// AddArea adds v to the "area" field.
func (u *RoomUpsertBulk) AddArea(v float64) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.AddArea(v)
	})
}

// UpdateArea sets the "area" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateArea() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateArea()
	})
}

// SetLightingType sets the "lighting_type" field.
func (u *RoomUpsertBulk) SetLightingType(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetLightingType(v)
	})
}

// UpdateLightingType sets the "lighting_type" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateLightingType() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateLightingType()
	})
}

// ClearLightingType clears the value of the "lighting_type" field.
func (u *RoomUpsertBulk) ClearLightingType() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearLightingType()
	})
}

// SetNumFixtures sets the "num_fixtures" field.
func (u *RoomUpsertBulk) SetNumFixtures(v int) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetNumFixtures(v)
	})
}

// AddNumFixtures adds v to the "num_fixtures" field.
func (u *RoomUpsertBulk) AddNumFixtures(v int) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.AddNumFixtures(v)
	})
}

// UpdateNumFixtures sets the "num_fixtures" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateNumFixtures() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateNumFixtures()
	})
}

// ClearNumFixtures clears the value of the "num_fixtures" field.
func (u *RoomUpsertBulk) ClearNumFixtures() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearNumFixtures()
	})
}

// SetAcType sets the "ac_type" field.
func (u *RoomUpsertBulk) SetAcType(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetAcType(v)
	})
}

// UpdateAcType sets the "ac_type" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateAcType() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateAcType()
	})
}

// ClearAcType clears the value of the "ac_type" field.
func (u *RoomUpsertBulk) ClearAcType() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearAcType()
	})
}

// SetAcSize sets the "ac_size" field.
func (u *RoomUpsertBulk) SetAcSize(v float64) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetAcSize(v)
	})
}

// AddAcSize adds v to the "ac_size" field.
func (u *RoomUpsertBulk) AddAcSize(v float64) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.AddAcSize(v)
	})
}

// UpdateAcSize sets the "ac_size" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateAcSize() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateAcSize()
	})
}

// ClearAcSize clears the value of the "ac_size" field.
func (u *RoomUpsertBulk) ClearAcSize() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearAcSize()
	})
}

// SetWindows sets the "windows" field.
func (u *RoomUpsertBulk) SetWindows(v int) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetWindows(v)
	})
}

// AddWindows adds v to the "windows" field.
func (u *RoomUpsertBulk) AddWindows(v int) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.AddWindows(v)
	})
}

// UpdateWindows sets the "windows" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateWindows() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWindows()
	})
}

// ClearWindows clears the value of the "windows" field.
func (u *RoomUpsertBulk) ClearWindows() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearWindows()
	})
}

// SetRoomData sets the "room_data" field.
func (u *RoomUpsertBulk) SetRoomData(v json.RawMessage) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetRoomData(v)
	})
}

// UpdateRoomData sets the "room_data" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateRoomData() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateRoomData()
	})
}

// ClearRoomData clears the value of the "room_data" field.
func (u *RoomUpsertBulk) ClearRoomData() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearRoomData()
	})
}

// SetNotes sets the "notes" field.
func (u *RoomUpsertBulk) SetNotes(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateNotes() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *RoomUpsertBulk) ClearNotes() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *RoomUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoomCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
