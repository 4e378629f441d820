// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/predicate"
	"github.com/hrunx/es2square/gen/ent/room"
)

// RoomUpdate is the builder for updating Room entities.
type RoomUpdate struct {
	config
	hooks    []Hook
	mutation *RoomMutation
}

// Where appends a list predicates to the RoomUpdate builder.
func (ru *RoomUpdate) Where(ps ...predicate.Room) *RoomUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetBuildingID sets the "building_id" field.
func (ru *RoomUpdate) SetBuildingID(u uuid.UUID) *RoomUpdate {
	ru.mutation.SetBuildingID(u)
	return ru
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableBuildingID(u *uuid.UUID) *RoomUpdate {
	if u != nil {
		ru.SetBuildingID(*u)
	}
	return ru
}

// SetName sets the "name" field.
func (ru *RoomUpdate) SetName(s string) *RoomUpdate {
	ru.mutation.SetName(s)
	return ru
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableName(s *string) *RoomUpdate {
	if s != nil {
		ru.SetName(*s)
	}
	return ru
}

// SetArea sets the "area" field.
func (ru *RoomUpdate) SetArea(f float64) *RoomUpdate {
	ru.mutation.ResetArea()
	ru.mutation.SetArea(f)
	return ru
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableArea(f *float64) *RoomUpdate {
	if f != nil {
		ru.SetArea(*f)
	}
	return ru
}

// AddArea adds f to the "area" field.
func (ru *RoomUpdate) AddArea(f float64) *RoomUpdate {
	ru.mutation.AddArea(f)
	return ru
}

// SetLightingType sets the "lighting_type" field.
func (ru *RoomUpdate) SetLightingType(s string) *RoomUpdate {
	ru.mutation.SetLightingType(s)
	return ru
}

// SetNillableLightingType sets the "lighting_type" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableLightingType(s *string) *RoomUpdate {
	if s != nil {
		ru.SetLightingType(*s)
	}
	return ru
}

// ClearLightingType clears the value of the "lighting_type" field.
func (ru *RoomUpdate) ClearLightingType() *RoomUpdate {
	ru.mutation.ClearLightingType()
	return ru
}

// SetNumFixtures sets the "num_fixtures" field.
func (ru *RoomUpdate) SetNumFixtures(i int) *RoomUpdate {
	ru.mutation.ResetNumFixtures()
	ru.mutation.SetNumFixtures(i)
	return ru
}

// SetNillableNumFixtures sets the "num_fixtures" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableNumFixtures(i *int) *RoomUpdate {
	if i != nil {
		ru.SetNumFixtures(*i)
	}
	return ru
}

// AddNumFixtures adds i to the "num_fixtures" field.
func (ru *RoomUpdate) AddNumFixtures(i int) *RoomUpdate {
	ru.mutation.AddNumFixtures(i)
	return ru
}

// ClearNumFixtures clears the value of the "num_fixtures" field.
func (ru *RoomUpdate) ClearNumFixtures() *RoomUpdate {
	ru.mutation.ClearNumFixtures()
	return ru
}

// SetAcType sets the "ac_type" field.
func (ru *RoomUpdate) SetAcType(s string) *RoomUpdate {
	ru.mutation.SetAcType(s)
	return ru
}

// SetNillableAcType sets the "ac_type" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableAcType(s *string) *RoomUpdate {
	if s != nil {
		ru.SetAcType(*s)
	}
	return ru
}

// ClearAcType clears the value of the "ac_type" field.
func (ru *RoomUpdate) ClearAcType() *RoomUpdate {
	ru.mutation.ClearAcType()
	return ru
}

// SetAcSize sets the "ac_size" field.
func (ru *RoomUpdate) SetAcSize(f float64) *RoomUpdate {
	ru.mutation.ResetAcSize()
	ru.mutation.SetAcSize(f)
	return ru
}

// SetNillableAcSize sets the "ac_size" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableAcSize(f *float64) *RoomUpdate {
	if f != nil {
		ru.SetAcSize(*f)
	}
	return ru
}

// AddAcSize adds f to the "ac_size" field.
func (ru *RoomUpdate) AddAcSize(f float64) *RoomUpdate {
	ru.mutation.AddAcSize(f)
	return ru
}

// ClearAcSize clears the value of the "ac_size" field.
func (ru *RoomUpdate) ClearAcSize() *RoomUpdate {
	ru.mutation.ClearAcSize()
	return ru
}

// SetWindows sets the "windows" field.
func (ru *RoomUpdate) SetWindows(i int) *RoomUpdate {
	ru.mutation.ResetWindows()
	ru.mutation.SetWindows(i)
	return ru
}

// SetNillableWindows sets the "windows" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableWindows(i *int) *RoomUpdate {
	if i != nil {
		ru.SetWindows(*i)
	}
	return ru
}

// AddWindows adds i to the "windows" field.
func (ru *RoomUpdate) AddWindows(i int) *RoomUpdate {
	ru.mutation.AddWindows(i)
	return ru
}

// ClearWindows clears the value of the "windows" field.
func (ru *RoomUpdate) ClearWindows() *RoomUpdate {
	ru.mutation.ClearWindows()
	return ru
}

// SetRoomData sets the "room_data" field.
func (ru *RoomUpdate) SetRoomData(jm json.RawMessage) *RoomUpdate {
	ru.mutation.SetRoomData(jm)
	return ru
}

// AppendRoomData appends jm to the "room_data" field.
func (ru *RoomUpdate) AppendRoomData(jm json.RawMessage) *RoomUpdate {
	ru.mutation.AppendRoomData(jm)
	return ru
}

// ClearRoomData clears the value of the "room_data" field.
func (ru *RoomUpdate) ClearRoomData() *RoomUpdate {
	ru.mutation.ClearRoomData()
	return ru
}

// SetNotes sets the "notes" field.
func (ru *RoomUpdate) SetNotes(s string) *RoomUpdate {
	ru.mutation.SetNotes(s)
	return ru
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ru *RoomUpdate) SetNillableNotes(s *string) *RoomUpdate {
	if s != nil {
		ru.SetNotes(*s)
	}
	return ru
}

// ClearNotes clears the value of the "notes" field.
func (ru *RoomUpdate) ClearNotes() *RoomUpdate {
	ru.mutation.ClearNotes()
	return ru
}

// SetBuilding sets the "building" edge to the Building entity.
func (ru *RoomUpdate) SetBuilding(b *Building) *RoomUpdate {
	return ru.SetBuildingID(b.ID)
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by IDs.
func (ru *RoomUpdate) AddEquipmentIDs(ids ...uuid.UUID) *RoomUpdate {
	ru.mutation.AddEquipmentIDs(ids...)
	return ru
}

// AddEquipment adds the "equipment" edges to the Equipment entity.
func (ru *RoomUpdate) AddEquipment(e ...*Equipment) *RoomUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ru.AddEquipmentIDs(ids...)
}

// Mutation returns the RoomMutation object of the builder.
func (ru *RoomUpdate) Mutation() *RoomMutation {
	return ru.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (ru *RoomUpdate) ClearBuilding() *RoomUpdate {
	ru.mutation.ClearBuilding()
	return ru
}

// ClearEquipment clears all "equipment" edges to the Equipment entity.
func (ru *RoomUpdate) ClearEquipment() *RoomUpdate {
	ru.mutation.ClearEquipment()
	return ru
}

// RemoveEquipmentIDs removes the "equipment" edge to Equipment entities by IDs.
func (ru *RoomUpdate) RemoveEquipmentIDs(ids ...uuid.UUID) *RoomUpdate {
	ru.mutation.RemoveEquipmentIDs(ids...)
	return ru
}

// RemoveEquipment removes "equipment" edges to Equipment entities.
func (ru *RoomUpdate) RemoveEquipment(e ...*Equipment) *RoomUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ru.RemoveEquipmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RoomUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RoomUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RoomUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RoomUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *RoomUpdate) check() error {
	if v, ok := ru.mutation.Name(); ok {
		if err := room.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Room.name": %w`, err)}
		}
	}
	if ru.mutation.BuildingCleared() && len(ru.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Room.building"`)
	}
	return nil
}

func (ru *RoomUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(room.Table, room.Columns, sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
	}
	if value, ok := ru.mutation.Area(); ok {
		_spec.SetField(room.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedArea(); ok {
		_spec.AddField(room.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.LightingType(); ok {
		_spec.SetField(room.FieldLightingType, field.TypeString, value)
	}
	if ru.mutation.LightingTypeCleared() {
		_spec.ClearField(room.FieldLightingType, field.TypeString)
	}
	if value, ok := ru.mutation.NumFixtures(); ok {
		_spec.SetField(room.FieldNumFixtures, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedNumFixtures(); ok {
		_spec.AddField(room.FieldNumFixtures, field.TypeInt, value)
	}
	if ru.mutation.NumFixturesCleared() {
		_spec.ClearField(room.FieldNumFixtures, field.TypeInt)
	}
	if value, ok := ru.mutation.AcType(); ok {
		_spec.SetField(room.FieldAcType, field.TypeString, value)
	}
	if ru.mutation.AcTypeCleared() {
		_spec.ClearField(room.FieldAcType, field.TypeString)
	}
	if value, ok := ru.mutation.AcSize(); ok {
		_spec.SetField(room.FieldAcSize, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedAcSize(); ok {
		_spec.AddField(room.FieldAcSize, field.TypeFloat64, value)
	}
	if ru.mutation.AcSizeCleared() {
		_spec.ClearField(room.FieldAcSize, field.TypeFloat64)
	}
	if value, ok := ru.mutation.Windows(); ok {
		_spec.SetField(room.FieldWindows, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedWindows(); ok {
		_spec.AddField(room.FieldWindows, field.TypeInt, value)
	}
	if ru.mutation.WindowsCleared() {
		_spec.ClearField(room.FieldWindows, field.TypeInt)
	}
	if value, ok := ru.mutation.RoomData(); ok {
		_spec.SetField(room.FieldRoomData, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedRoomData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, room.FieldRoomData, value)
		})
	}
	if ru.mutation.RoomDataCleared() {
		_spec.ClearField(room.FieldRoomData, field.TypeJSON)
	}
	if value, ok := ru.mutation.Notes(); ok {
		_spec.SetField(room.FieldNotes, field.TypeString, value)
	}
	if ru.mutation.NotesCleared() {
		_spec.ClearField(room.FieldNotes, field.TypeString)
	}
	if ru.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ru.mutation.EquipmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.RemovedEquipmentIDs(); len(nodes) > 0 && !ru.mutation.EquipmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.EquipmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{room.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RoomUpdateOne is the builder for updating a single Room entity.
type RoomUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoomMutation
}

// SetBuildingID sets the "building_id" field.
func (ruo *RoomUpdateOne) SetBuildingID(u uuid.UUID) *RoomUpdateOne {
	ruo.mutation.SetBuildingID(u)
	return ruo
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableBuildingID(u *uuid.UUID) *RoomUpdateOne {
	if u != nil {
		ruo.SetBuildingID(*u)
	}
	return ruo
}

// SetName sets the "name" field.
func (ruo *RoomUpdateOne) SetName(s string) *RoomUpdateOne {
	ruo.mutation.SetName(s)
	return ruo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableName(s *string) *RoomUpdateOne {
	if s != nil {
		ruo.SetName(*s)
	}
	return ruo
}

// SetArea sets the "area" field.
func (ruo *RoomUpdateOne) SetArea(f float64) *RoomUpdateOne {
	ruo.mutation.ResetArea()
	ruo.mutation.SetArea(f)
	return ruo
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableArea(f *float64) *RoomUpdateOne {
	if f != nil {
		ruo.SetArea(*f)
	}
	return ruo
}

// AddArea adds f to the "area" field.
func (ruo *RoomUpdateOne) AddArea(f float64) *RoomUpdateOne {
	ruo.mutation.AddArea(f)
	return ruo
}

// SetLightingType sets the "lighting_type" field.
func (ruo *RoomUpdateOne) SetLightingType(s string) *RoomUpdateOne {
	ruo.mutation.SetLightingType(s)
	return ruo
}

// SetNillableLightingType sets the "lighting_type" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableLightingType(s *string) *RoomUpdateOne {
	if s != nil {
		ruo.SetLightingType(*s)
	}
	return ruo
}

// ClearLightingType clears the value of the "lighting_type" field.
func (ruo *RoomUpdateOne) ClearLightingType() *RoomUpdateOne {
	ruo.mutation.ClearLightingType()
	return ruo
}

// SetNumFixtures sets the "num_fixtures" field.
func (ruo *RoomUpdateOne) SetNumFixtures(i int) *RoomUpdateOne {
	ruo.mutation.ResetNumFixtures()
	ruo.mutation.SetNumFixtures(i)
	return ruo
}

// SetNillableNumFixtures sets the "num_fixtures" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableNumFixtures(i *int) *RoomUpdateOne {
	if i != nil {
		ruo.SetNumFixtures(*i)
	}
	return ruo
}

// AddNumFixtures adds i to the "num_fixtures" field.
func (ruo *RoomUpdateOne) AddNumFixtures(i int) *RoomUpdateOne {
	ruo.mutation.AddNumFixtures(i)
	return ruo
}

// ClearNumFixtures clears the value of the "num_fixtures" field.
func (ruo *RoomUpdateOne) ClearNumFixtures() *RoomUpdateOne {
	ruo.mutation.ClearNumFixtures()
	return ruo
}

// SetAcType sets the "ac_type" field.
func (ruo *RoomUpdateOne) SetAcType(s string) *RoomUpdateOne {
	ruo.mutation.SetAcType(s)
	return ruo
}

// SetNillableAcType sets the "ac_type" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableAcType(s *string) *RoomUpdateOne {
	if s != nil {
		ruo.SetAcType(*s)
	}
	return ruo
}

// ClearAcType clears the value of the "ac_type" field.
func (ruo *RoomUpdateOne) ClearAcType() *RoomUpdateOne {
	ruo.mutation.ClearAcType()
	return ruo
}

// SetAcSize sets the "ac_size" field.
func (ruo *RoomUpdateOne) SetAcSize(f float64) *RoomUpdateOne {
	ruo.mutation.ResetAcSize()
	ruo.mutation.SetAcSize(f)
	return ruo
}

// SetNillableAcSize sets the "ac_size" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableAcSize(f *float64) *RoomUpdateOne {
	if f != nil {
		ruo.SetAcSize(*f)
	}
	return ruo
}

// AddAcSize adds f to the "ac_size" field.
func (ruo *RoomUpdateOne) AddAcSize(f float64) *RoomUpdateOne {
	ruo.mutation.AddAcSize(f)
	return ruo
}

// ClearAcSize clears the value of the "ac_size" field.
func (ruo *RoomUpdateOne) ClearAcSize() *RoomUpdateOne {
	ruo.mutation.ClearAcSize()
	return ruo
}

// SetWindows sets the "windows" field.
func (ruo *RoomUpdateOne) SetWindows(i int) *RoomUpdateOne {
	ruo.mutation.ResetWindows()
	ruo.mutation.SetWindows(i)
	return ruo
}

// SetNillableWindows sets the "windows" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableWindows(i *int) *RoomUpdateOne {
	if i != nil {
		ruo.SetWindows(*i)
	}
	return ruo
}

// AddWindows adds i to the "windows" field.
func (ruo *RoomUpdateOne) AddWindows(i int) *RoomUpdateOne {
	ruo.mutation.AddWindows(i)
	return ruo
}

// ClearWindows clears the value of the "windows" field.
func (ruo *RoomUpdateOne) ClearWindows() *RoomUpdateOne {
	ruo.mutation.ClearWindows()
	return ruo
}

// SetRoomData sets the "room_data" field.
func (ruo *RoomUpdateOne) SetRoomData(jm json.RawMessage) *RoomUpdateOne {
	ruo.mutation.SetRoomData(jm)
	return ruo
}

// AppendRoomData appends jm to the "room_data" field.
func (ruo *RoomUpdateOne) AppendRoomData(jm json.RawMessage) *RoomUpdateOne {
	ruo.mutation.AppendRoomData(jm)
	return ruo
}

// ClearRoomData clears the value of the "room_data" field.
func (ruo *RoomUpdateOne) ClearRoomData() *RoomUpdateOne {
	ruo.mutation.ClearRoomData()
	return ruo
}

// SetNotes sets the "notes" field.
func (ruo *RoomUpdateOne) SetNotes(s string) *RoomUpdateOne {
	ruo.mutation.SetNotes(s)
	return ruo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ruo *RoomUpdateOne) SetNillableNotes(s *string) *RoomUpdateOne {
	if s != nil {
		ruo.SetNotes(*s)
	}
	return ruo
}

// ClearNotes clears the value of the "notes" field.
func (ruo *RoomUpdateOne) ClearNotes() *RoomUpdateOne {
	ruo.mutation.ClearNotes()
	return ruo
}

// SetBuilding sets the "building" edge to the Building entity.
func (ruo *RoomUpdateOne) SetBuilding(b *Building) *RoomUpdateOne {
	return ruo.SetBuildingID(b.ID)
}

// AddEquipmentIDs adds the "equipment" edge to the Equipment entity by IDs.
func (ruo *RoomUpdateOne) AddEquipmentIDs(ids ...uuid.UUID) *RoomUpdateOne {
	ruo.mutation.AddEquipmentIDs(ids...)
	return ruo
}

// AddEquipment adds the "equipment" edges to the Equipment entity.
func (ruo *RoomUpdateOne) AddEquipment(e ...*Equipment) *RoomUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ruo.AddEquipmentIDs(ids...)
}

// Mutation returns the RoomMutation object of the builder.
func (ruo *RoomUpdateOne) Mutation() *RoomMutation {
	return ruo.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (ruo *RoomUpdateOne) ClearBuilding() *RoomUpdateOne {
	ruo.mutation.ClearBuilding()
	return ruo
}

// ClearEquipment clears all "equipment" edges to the Equipment entity.
func (ruo *RoomUpdateOne) ClearEquipment() *RoomUpdateOne {
	ruo.mutation.ClearEquipment()
	return ruo
}

// RemoveEquipmentIDs removes the "equipment" edge to Equipment entities by IDs.
func (ruo *RoomUpdateOne) RemoveEquipmentIDs(ids ...uuid.UUID) *RoomUpdateOne {
	ruo.mutation.RemoveEquipmentIDs(ids...)
	return ruo
}

// RemoveEquipment removes "equipment" edges to Equipment entities.
func (ruo *RoomUpdateOne) RemoveEquipment(e ...*Equipment) *RoomUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ruo.RemoveEquipmentIDs(ids...)
}

// Where appends a list predicates to the RoomUpdate builder.
func (ruo *RoomUpdateOne) Where(ps ...predicate.Room) *RoomUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RoomUpdateOne) Select(field string, fields ...string) *RoomUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Room entity.
func (ruo *RoomUpdateOne) Save(ctx context.Context) (*Room, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RoomUpdateOne) SaveX(ctx context.Context) *Room {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RoomUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RoomUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *RoomUpdateOne) check() error {
	if v, ok := ruo.mutation.Name(); ok {
		if err := room.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Room.name": %w`, err)}
		}
	}
	if ruo.mutation.BuildingCleared() && len(ruo.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Room.building"`)
	}
	return nil
}

func (ruo *RoomUpdateOne) sqlSave(ctx context.Context) (_node *Room, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(room.Table, room.Columns, sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Room.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, room.FieldID)
		for _, f := range fields {
			if !room.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != room.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.Name(); ok {
		_spec.SetField(room.FieldName, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Area(); ok {
		_spec.SetField(room.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedArea(); ok {
		_spec.AddField(room.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.LightingType(); ok {
		_spec.SetField(room.FieldLightingType, field.TypeString, value)
	}
	if ruo.mutation.LightingTypeCleared() {
		_spec.ClearField(room.FieldLightingType, field.TypeString)
	}
	if value, ok := ruo.mutation.NumFixtures(); ok {
		_spec.SetField(room.FieldNumFixtures, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedNumFixtures(); ok {
		_spec.AddField(room.FieldNumFixtures, field.TypeInt, value)
	}
	if ruo.mutation.NumFixturesCleared() {
		_spec.ClearField(room.FieldNumFixtures, field.TypeInt)
	}
	if value, ok := ruo.mutation.AcType(); ok {
		_spec.SetField(room.FieldAcType, field.TypeString, value)
	}
	if ruo.mutation.AcTypeCleared() {
		_spec.ClearField(room.FieldAcType, field.TypeString)
	}
	if value, ok := ruo.mutation.AcSize(); ok {
		_spec.SetField(room.FieldAcSize, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedAcSize(); ok {
		_spec.AddField(room.FieldAcSize, field.TypeFloat64, value)
	}
	if ruo.mutation.AcSizeCleared() {
		_spec.ClearField(room.FieldAcSize, field.TypeFloat64)
	}
	if value, ok := ruo.mutation.Windows(); ok {
		_spec.SetField(room.FieldWindows, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedWindows(); ok {
		_spec.AddField(room.FieldWindows, field.TypeInt, value)
	}
	if ruo.mutation.WindowsCleared() {
		_spec.ClearField(room.FieldWindows, field.TypeInt)
	}
	if value, ok := ruo.mutation.RoomData(); ok {
		_spec.SetField(room.FieldRoomData, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedRoomData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, room.FieldRoomData, value)
		})
	}
	if ruo.mutation.RoomDataCleared() {
		_spec.ClearField(room.FieldRoomData, field.TypeJSON)
	}
	if value, ok := ruo.mutation.Notes(); ok {
		_spec.SetField(room.FieldNotes, field.TypeString, value)
	}
	if ruo.mutation.NotesCleared() {
		_spec.ClearField(room.FieldNotes, field.TypeString)
	}
	if ruo.mutation.BuildingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ruo.mutation.EquipmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.RemovedEquipmentIDs(); len(nodes) > 0 && !ruo.mutation.EquipmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.EquipmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Room{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{room.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
