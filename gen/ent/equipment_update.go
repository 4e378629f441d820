// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/predicate"
	"github.com/hrunx/es2square/gen/ent/room"
)

// EquipmentUpdate is the builder for updating Equipment entities.
type EquipmentUpdate struct {
	config
	hooks    []Hook
	mutation *EquipmentMutation
}

// Where appends a list predicates to the EquipmentUpdate builder.
func (eu *EquipmentUpdate) Where(ps ...predicate.Equipment) *EquipmentUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetBuildingID sets the "building_id" field.
func (eu *EquipmentUpdate) SetBuildingID(u uuid.UUID) *EquipmentUpdate {
	eu.mutation.SetBuildingID(u)
	return eu
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableBuildingID(u *uuid.UUID) *EquipmentUpdate {
	if u != nil {
		eu.SetBuildingID(*u)
	}
	return eu
}

// SetRoomID sets the "room_id" field.
func (eu *EquipmentUpdate) SetRoomID(u uuid.UUID) *EquipmentUpdate {
	eu.mutation.SetRoomID(u)
	return eu
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableRoomID(u *uuid.UUID) *EquipmentUpdate {
	if u != nil {
		eu.SetRoomID(*u)
	}
	return eu
}

// ClearRoomID clears the value of the "room_id" field.
func (eu *EquipmentUpdate) ClearRoomID() *EquipmentUpdate {
	eu.mutation.ClearRoomID()
	return eu
}

// SetName sets the "name" field.
func (eu *EquipmentUpdate) SetName(s string) *EquipmentUpdate {
	eu.mutation.SetName(s)
	return eu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableName(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetName(*s)
	}
	return eu
}

// SetCategory sets the "category" field.
func (eu *EquipmentUpdate) SetCategory(s string) *EquipmentUpdate {
	eu.mutation.SetCategory(s)
	return eu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableCategory(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetCategory(*s)
	}
	return eu
}

// SetSubType sets the "sub_type" field.
func (eu *EquipmentUpdate) SetSubType(s string) *EquipmentUpdate {
	eu.mutation.SetSubType(s)
	return eu
}

// SetNillableSubType sets the "sub_type" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableSubType(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetSubType(*s)
	}
	return eu
}

// ClearSubType clears the value of the "sub_type" field.
func (eu *EquipmentUpdate) ClearSubType() *EquipmentUpdate {
	eu.mutation.ClearSubType()
	return eu
}

// SetLocation sets the "location" field.
func (eu *EquipmentUpdate) SetLocation(s string) *EquipmentUpdate {
	eu.mutation.SetLocation(s)
	return eu
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableLocation(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetLocation(*s)
	}
	return eu
}

// ClearLocation clears the value of the "location" field.
func (eu *EquipmentUpdate) ClearLocation() *EquipmentUpdate {
	eu.mutation.ClearLocation()
	return eu
}

// SetRatedPower sets the "rated_power" field.
func (eu *EquipmentUpdate) SetRatedPower(f float64) *EquipmentUpdate {
	eu.mutation.ResetRatedPower()
	eu.mutation.SetRatedPower(f)
	return eu
}

// SetNillableRatedPower sets the "rated_power" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableRatedPower(f *float64) *EquipmentUpdate {
	if f != nil {
		eu.SetRatedPower(*f)
	}
	return eu
}

// AddRatedPower adds f to the "rated_power" field.
func (eu *EquipmentUpdate) AddRatedPower(f float64) *EquipmentUpdate {
	eu.mutation.AddRatedPower(f)
	return eu
}

// SetEfficiency sets the "efficiency" field.
func (eu *EquipmentUpdate) SetEfficiency(f float64) *EquipmentUpdate {
	eu.mutation.ResetEfficiency()
	eu.mutation.SetEfficiency(f)
	return eu
}

// SetNillableEfficiency sets the "efficiency" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableEfficiency(f *float64) *EquipmentUpdate {
	if f != nil {
		eu.SetEfficiency(*f)
	}
	return eu
}

// AddEfficiency adds f to the "efficiency" field.
func (eu *EquipmentUpdate) AddEfficiency(f float64) *EquipmentUpdate {
	eu.mutation.AddEfficiency(f)
	return eu
}

// ClearEfficiency clears the value of the "efficiency" field.
func (eu *EquipmentUpdate) ClearEfficiency() *EquipmentUpdate {
	eu.mutation.ClearEfficiency()
	return eu
}

// SetOperatingHours sets the "operating_hours" field.
func (eu *EquipmentUpdate) SetOperatingHours(f float64) *EquipmentUpdate {
	eu.mutation.ResetOperatingHours()
	eu.mutation.SetOperatingHours(f)
	return eu
}

// SetNillableOperatingHours sets the "operating_hours" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableOperatingHours(f *float64) *EquipmentUpdate {
	if f != nil {
		eu.SetOperatingHours(*f)
	}
	return eu
}

// AddOperatingHours adds f to the "operating_hours" field.
func (eu *EquipmentUpdate) AddOperatingHours(f float64) *EquipmentUpdate {
	eu.mutation.AddOperatingHours(f)
	return eu
}

// ClearOperatingHours clears the value of the "operating_hours" field.
func (eu *EquipmentUpdate) ClearOperatingHours() *EquipmentUpdate {
	eu.mutation.ClearOperatingHours()
	return eu
}

// SetOperatingDays sets the "operating_days" field.
func (eu *EquipmentUpdate) SetOperatingDays(f float64) *EquipmentUpdate {
	eu.mutation.ResetOperatingDays()
	eu.mutation.SetOperatingDays(f)
	return eu
}

// SetNillableOperatingDays sets the "operating_days" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableOperatingDays(f *float64) *EquipmentUpdate {
	if f != nil {
		eu.SetOperatingDays(*f)
	}
	return eu
}

// AddOperatingDays adds f to the "operating_days" field.
func (eu *EquipmentUpdate) AddOperatingDays(f float64) *EquipmentUpdate {
	eu.mutation.AddOperatingDays(f)
	return eu
}

// ClearOperatingDays clears the value of the "operating_days" field.
func (eu *EquipmentUpdate) ClearOperatingDays() *EquipmentUpdate {
	eu.mutation.ClearOperatingDays()
	return eu
}

// SetLoadFactor sets the "load_factor" field.
func (eu *EquipmentUpdate) SetLoadFactor(s string) *EquipmentUpdate {
	eu.mutation.SetLoadFactor(s)
	return eu
}

// SetNillableLoadFactor sets the "load_factor" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableLoadFactor(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetLoadFactor(*s)
	}
	return eu
}

// ClearLoadFactor clears the value of the "load_factor" field.
func (eu *EquipmentUpdate) ClearLoadFactor() *EquipmentUpdate {
	eu.mutation.ClearLoadFactor()
	return eu
}

// SetCondition sets the "condition" field.
func (eu *EquipmentUpdate) SetCondition(s string) *EquipmentUpdate {
	eu.mutation.SetCondition(s)
	return eu
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableCondition(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetCondition(*s)
	}
	return eu
}

// ClearCondition clears the value of the "condition" field.
func (eu *EquipmentUpdate) ClearCondition() *EquipmentUpdate {
	eu.mutation.ClearCondition()
	return eu
}

// SetAge sets the "age" field.
func (eu *EquipmentUpdate) SetAge(i int) *EquipmentUpdate {
	eu.mutation.ResetAge()
	eu.mutation.SetAge(i)
	return eu
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableAge(i *int) *EquipmentUpdate {
	if i != nil {
		eu.SetAge(*i)
	}
	return eu
}

// AddAge adds i to the "age" field.
func (eu *EquipmentUpdate) AddAge(i int) *EquipmentUpdate {
	eu.mutation.AddAge(i)
	return eu
}

// ClearAge clears the value of the "age" field.
func (eu *EquipmentUpdate) ClearAge() *EquipmentUpdate {
	eu.mutation.ClearAge()
	return eu
}

// SetControlSystem sets the "control_system" field.
func (eu *EquipmentUpdate) SetControlSystem(s string) *EquipmentUpdate {
	eu.mutation.SetControlSystem(s)
	return eu
}

// SetNillableControlSystem sets the "control_system" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableControlSystem(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetControlSystem(*s)
	}
	return eu
}

// ClearControlSystem clears the value of the "control_system" field.
func (eu *EquipmentUpdate) ClearControlSystem() *EquipmentUpdate {
	eu.mutation.ClearControlSystem()
	return eu
}

// SetEnergyMetered sets the "energy_metered" field.
func (eu *EquipmentUpdate) SetEnergyMetered(b bool) *EquipmentUpdate {
	eu.mutation.SetEnergyMetered(b)
	return eu
}

// SetNillableEnergyMetered sets the "energy_metered" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableEnergyMetered(b *bool) *EquipmentUpdate {
	if b != nil {
		eu.SetEnergyMetered(*b)
	}
	return eu
}

// SetIotConnected sets the "iot_connected" field.
func (eu *EquipmentUpdate) SetIotConnected(b bool) *EquipmentUpdate {
	eu.mutation.SetIotConnected(b)
	return eu
}

// SetNillableIotConnected sets the "iot_connected" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableIotConnected(b *bool) *EquipmentUpdate {
	if b != nil {
		eu.SetIotConnected(*b)
	}
	return eu
}

// SetNotes sets the "notes" field.
func (eu *EquipmentUpdate) SetNotes(s string) *EquipmentUpdate {
	eu.mutation.SetNotes(s)
	return eu
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (eu *EquipmentUpdate) SetNillableNotes(s *string) *EquipmentUpdate {
	if s != nil {
		eu.SetNotes(*s)
	}
	return eu
}

// ClearNotes clears the value of the "notes" field.
func (eu *EquipmentUpdate) ClearNotes() *EquipmentUpdate {
	eu.mutation.ClearNotes()
	return eu
}

// SetBuilding sets the "building" edge to the Building entity.
func (eu *EquipmentUpdate) SetBuilding(b *Building) *EquipmentUpdate {
	return eu.SetBuildingID(b.ID)
}

// SetRoom sets the "room" edge to the Room entity.
func (eu *EquipmentUpdate) SetRoom(r *Room) *EquipmentUpdate {
	return eu.SetRoomID(r.ID)
}

// Mutation returns the EquipmentMutation object of the builder.
func (eu *EquipmentUpdate) Mutation() *EquipmentMutation {
	return eu.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (eu *EquipmentUpdate) ClearBuilding() *EquipmentUpdate {
	eu.mutation.ClearBuilding()
	return eu
}

// ClearRoom clears the "room" edge to the Room entity.
func (eu *EquipmentUpdate) ClearRoom() *EquipmentUpdate {
	eu.mutation.ClearRoom()
	return eu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *EquipmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *EquipmentUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *EquipmentUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *EquipmentUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eu *EquipmentUpdate) check() error {
	if v, ok := eu.mutation.Name(); ok {
		if err := equipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Equipment.name": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Category(); ok {
		if err := equipment.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Equipment.category": %w`, err)}
		}
	}
	if v, ok := eu.mutation.RatedPower(); ok {
		if err := equipment.RatedPowerValidator(v); err != nil {
			return &ValidationError{Name: "rated_power", err: fmt.Errorf(`ent: validator failed for field "Equipment.rated_power": %w`, err)}
		}
	}
	if eu.mutation.BuildingCleared() && len(eu.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Equipment.building"`)
	}
	return nil
}

func (eu *EquipmentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(equipment.Table, equipment.Columns, sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eu.mutation.Name(); ok {
		_spec.SetField(equipment.FieldName, field.TypeString, value)
	}
	if value, ok := eu.mutation.Category(); ok {
		_spec.SetField(equipment.FieldCategory, field.TypeString, value)
	}
	if value, ok := eu.mutation.SubType(); ok {
		_spec.SetField(equipment.FieldSubType, field.TypeString, value)
	}
	if eu.mutation.SubTypeCleared() {
		_spec.ClearField(equipment.FieldSubType, field.TypeString)
	}
	if value, ok := eu.mutation.Location(); ok {
		_spec.SetField(equipment.FieldLocation, field.TypeString, value)
	}
	if eu.mutation.LocationCleared() {
		_spec.ClearField(equipment.FieldLocation, field.TypeString)
	}
	if value, ok := eu.mutation.RatedPower(); ok {
		_spec.SetField(equipment.FieldRatedPower, field.TypeFloat64, value)
	}
	if value, ok := eu.mutation.AddedRatedPower(); ok {
		_spec.AddField(equipment.FieldRatedPower, field.TypeFloat64, value)
	}
	if value, ok := eu.mutation.Efficiency(); ok {
		_spec.SetField(equipment.FieldEfficiency, field.TypeFloat64, value)
	}
	if value, ok := eu.mutation.AddedEfficiency(); ok {
		_spec.AddField(equipment.FieldEfficiency, field.TypeFloat64, value)
	}
	if eu.mutation.EfficiencyCleared() {
		_spec.ClearField(equipment.FieldEfficiency, field.TypeFloat64)
	}
	if value, ok := eu.mutation.OperatingHours(); ok {
		_spec.SetField(equipment.FieldOperatingHours, field.TypeFloat64, value)
	}
	if value, ok := eu.mutation.AddedOperatingHours(); ok {
		_spec.AddField(equipment.FieldOperatingHours, field.TypeFloat64, value)
	}
	if eu.mutation.OperatingHoursCleared() {
		_spec.ClearField(equipment.FieldOperatingHours, field.TypeFloat64)
	}
	if value, ok := eu.mutation.OperatingDays(); ok {
		_spec.SetField(equipment.FieldOperatingDays, field.TypeFloat64, value)
	}
	if value, ok := eu.mutation.AddedOperatingDays(); ok {
		_spec.AddField(equipment.FieldOperatingDays, field.TypeFloat64, value)
	}
	if eu.mutation.OperatingDaysCleared() {
		_spec.ClearField(equipment.FieldOperatingDays, field.TypeFloat64)
	}
	if value, ok := eu.mutation.LoadFactor(); ok {
		_spec.SetField(equipment.FieldLoadFactor, field.TypeString, value)
	}
	if eu.mutation.LoadFactorCleared() {
		_spec.ClearField(equipment.FieldLoadFactor, field.TypeString)
	}
	if value, ok := eu.mutation.Condition(); ok {
		_spec.SetField(equipment.FieldCondition, field.TypeString, value)
	}
	if eu.mutation.ConditionCleared() {
		_spec.ClearField(equipment.FieldCondition, field.TypeString)
	}
	if value, ok := eu.mutation.Age(); ok {
		_spec.SetField(equipment.FieldAge, field.TypeInt, value)
	}
	if value, ok := eu.mutation.AddedAge(); ok {
		_spec.AddField(equipment.FieldAge, field.TypeInt, value)
	}
	if eu.mutation.AgeCleared() {
		_spec.ClearField(equipment.FieldAge, field.TypeInt)
	}
	if value, ok := eu.mutation.ControlSystem(); ok {
		_spec.SetField(equipment.FieldControlSystem, field.TypeString, value)
	}
	if eu.mutation.ControlSystemCleared() {
		_spec.ClearField(equipment.FieldControlSystem, field.TypeString)
	}
	if value, ok := eu.mutation.EnergyMetered(); ok {
		_spec.SetField(equipment.FieldEnergyMetered, field.TypeBool, value)
	}
	if value, ok := eu.mutation.IotConnected(); ok {
		_spec.SetField(equipment.FieldIotConnected, field.TypeBool, value)
	}
	if value, ok := eu.mutation.Notes(); ok {
		_spec.SetField(equipment.FieldNotes, field.TypeString, value)
	}
	if eu.mutation.NotesCleared() {
		_spec.ClearField(equipment.FieldNotes, field.TypeString)
	}
	if eu.mutation.BuildingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.BuildingTable,
			Columns: []string{equipment.BuildingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eu.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.BuildingTable,
			Columns: []string{equipment.BuildingColumn},
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
	if eu.mutation.RoomCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.RoomTable,
			Columns: []string{equipment.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eu.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.RoomTable,
			Columns: []string{equipment.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{equipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// EquipmentUpdateOne is the builder for updating a single Equipment entity.
type EquipmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EquipmentMutation
}

// SetBuildingID sets the "building_id" field.
func (euo *EquipmentUpdateOne) SetBuildingID(u uuid.UUID) *EquipmentUpdateOne {
	euo.mutation.SetBuildingID(u)
	return euo
}

// SetNillableBuildingID sets the "building_id" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableBuildingID(u *uuid.UUID) *EquipmentUpdateOne {
	if u != nil {
		euo.SetBuildingID(*u)
	}
	return euo
}

// SetRoomID sets the "room_id" field.
func (euo *EquipmentUpdateOne) SetRoomID(u uuid.UUID) *EquipmentUpdateOne {
	euo.mutation.SetRoomID(u)
	return euo
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableRoomID(u *uuid.UUID) *EquipmentUpdateOne {
	if u != nil {
		euo.SetRoomID(*u)
	}
	return euo
}

// ClearRoomID clears the value of the "room_id" field.
func (euo *EquipmentUpdateOne) ClearRoomID() *EquipmentUpdateOne {
	euo.mutation.ClearRoomID()
	return euo
}

// SetName sets the "name" field.
func (euo *EquipmentUpdateOne) SetName(s string) *EquipmentUpdateOne {
	euo.mutation.SetName(s)
	return euo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableName(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetName(*s)
	}
	return euo
}

// SetCategory sets the "category" field.
func (euo *EquipmentUpdateOne) SetCategory(s string) *EquipmentUpdateOne {
	euo.mutation.SetCategory(s)
	return euo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableCategory(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetCategory(*s)
	}
	return euo
}

// SetSubType sets the "sub_type" field.
func (euo *EquipmentUpdateOne) SetSubType(s string) *EquipmentUpdateOne {
	euo.mutation.SetSubType(s)
	return euo
}

// SetNillableSubType sets the "sub_type" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableSubType(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetSubType(*s)
	}
	return euo
}

// ClearSubType clears the value of the "sub_type" field.
func (euo *EquipmentUpdateOne) ClearSubType() *EquipmentUpdateOne {
	euo.mutation.ClearSubType()
	return euo
}

// SetLocation sets the "location" field.
func (euo *EquipmentUpdateOne) SetLocation(s string) *EquipmentUpdateOne {
	euo.mutation.SetLocation(s)
	return euo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableLocation(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetLocation(*s)
	}
	return euo
}

// ClearLocation clears the value of the "location" field.
func (euo *EquipmentUpdateOne) ClearLocation() *EquipmentUpdateOne {
	euo.mutation.ClearLocation()
	return euo
}

// SetRatedPower sets the "rated_power" field.
func (euo *EquipmentUpdateOne) SetRatedPower(f float64) *EquipmentUpdateOne {
	euo.mutation.ResetRatedPower()
	euo.mutation.SetRatedPower(f)
	return euo
}

// SetNillableRatedPower sets the "rated_power" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableRatedPower(f *float64) *EquipmentUpdateOne {
	if f != nil {
		euo.SetRatedPower(*f)
	}
	return euo
}

// AddRatedPower adds f to the "rated_power" field.
func (euo *EquipmentUpdateOne) AddRatedPower(f float64) *EquipmentUpdateOne {
	euo.mutation.AddRatedPower(f)
	return euo
}

// SetEfficiency sets the "efficiency" field.
func (euo *EquipmentUpdateOne) SetEfficiency(f float64) *EquipmentUpdateOne {
	euo.mutation.ResetEfficiency()
	euo.mutation.SetEfficiency(f)
	return euo
}

// SetNillableEfficiency sets the "efficiency" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableEfficiency(f *float64) *EquipmentUpdateOne {
	if f != nil {
		euo.SetEfficiency(*f)
	}
	return euo
}

// AddEfficiency adds f to the "efficiency" field.
func (euo *EquipmentUpdateOne) AddEfficiency(f float64) *EquipmentUpdateOne {
	euo.mutation.AddEfficiency(f)
	return euo
}

// ClearEfficiency clears the value of the "efficiency" field.
func (euo *EquipmentUpdateOne) ClearEfficiency() *EquipmentUpdateOne {
	euo.mutation.ClearEfficiency()
	return euo
}

// SetOperatingHours sets the "operating_hours" field.
func (euo *EquipmentUpdateOne) SetOperatingHours(f float64) *EquipmentUpdateOne {
	euo.mutation.ResetOperatingHours()
	euo.mutation.SetOperatingHours(f)
	return euo
}

// SetNillableOperatingHours sets the "operating_hours" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableOperatingHours(f *float64) *EquipmentUpdateOne {
	if f != nil {
		euo.SetOperatingHours(*f)
	}
	return euo
}

// AddOperatingHours adds f to the "operating_hours" field.
func (euo *EquipmentUpdateOne) AddOperatingHours(f float64) *EquipmentUpdateOne {
	euo.mutation.AddOperatingHours(f)
	return euo
}

// ClearOperatingHours clears the value of the "operating_hours" field.
func (euo *EquipmentUpdateOne) ClearOperatingHours() *EquipmentUpdateOne {
	euo.mutation.ClearOperatingHours()
	return euo
}

// SetOperatingDays sets the "operating_days" field.
func (euo *EquipmentUpdateOne) SetOperatingDays(f float64) *EquipmentUpdateOne {
	euo.mutation.ResetOperatingDays()
	euo.mutation.SetOperatingDays(f)
	return euo
}

// SetNillableOperatingDays sets the "operating_days" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableOperatingDays(f *float64) *EquipmentUpdateOne {
	if f != nil {
		euo.SetOperatingDays(*f)
	}
	return euo
}

// AddOperatingDays adds f to the "operating_days" field.
func (euo *EquipmentUpdateOne) AddOperatingDays(f float64) *EquipmentUpdateOne {
	euo.mutation.AddOperatingDays(f)
	return euo
}

// ClearOperatingDays clears the value of the "operating_days" field.
func (euo *EquipmentUpdateOne) ClearOperatingDays() *EquipmentUpdateOne {
	euo.mutation.ClearOperatingDays()
	return euo
}

// SetLoadFactor sets the "load_factor" field.
func (euo *EquipmentUpdateOne) SetLoadFactor(s string) *EquipmentUpdateOne {
	euo.mutation.SetLoadFactor(s)
	return euo
}

// SetNillableLoadFactor sets the "load_factor" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableLoadFactor(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetLoadFactor(*s)
	}
	return euo
}

// ClearLoadFactor clears the value of the "load_factor" field.
func (euo *EquipmentUpdateOne) ClearLoadFactor() *EquipmentUpdateOne {
	euo.mutation.ClearLoadFactor()
	return euo
}

// SetCondition sets the "condition" field.
func (euo *EquipmentUpdateOne) SetCondition(s string) *EquipmentUpdateOne {
	euo.mutation.SetCondition(s)
	return euo
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableCondition(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetCondition(*s)
	}
	return euo
}

// ClearCondition clears the value of the "condition" field.
func (euo *EquipmentUpdateOne) ClearCondition() *EquipmentUpdateOne {
	euo.mutation.ClearCondition()
	return euo
}

// SetAge sets the "age" field.
func (euo *EquipmentUpdateOne) SetAge(i int) *EquipmentUpdateOne {
	euo.mutation.ResetAge()
	euo.mutation.SetAge(i)
	return euo
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableAge(i *int) *EquipmentUpdateOne {
	if i != nil {
		euo.SetAge(*i)
	}
	return euo
}

// AddAge adds i to the "age" field.
func (euo *EquipmentUpdateOne) AddAge(i int) *EquipmentUpdateOne {
	euo.mutation.AddAge(i)
	return euo
}

// ClearAge clears the value of the "age" field.
func (euo *EquipmentUpdateOne) ClearAge() *EquipmentUpdateOne {
	euo.mutation.ClearAge()
	return euo
}

// SetControlSystem sets the "control_system" field.
func (euo *EquipmentUpdateOne) SetControlSystem(s string) *EquipmentUpdateOne {
	euo.mutation.SetControlSystem(s)
	return euo
}

// SetNillableControlSystem sets the "control_system" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableControlSystem(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetControlSystem(*s)
	}
	return euo
}

// ClearControlSystem clears the value of the "control_system" field.
func (euo *EquipmentUpdateOne) ClearControlSystem() *EquipmentUpdateOne {
	euo.mutation.ClearControlSystem()
	return euo
}

// SetEnergyMetered sets the "energy_metered" field.
func (euo *EquipmentUpdateOne) SetEnergyMetered(b bool) *EquipmentUpdateOne {
	euo.mutation.SetEnergyMetered(b)
	return euo
}

// SetNillableEnergyMetered sets the "energy_metered" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableEnergyMetered(b *bool) *EquipmentUpdateOne {
	if b != nil {
		euo.SetEnergyMetered(*b)
	}
	return euo
}

// SetIotConnected sets the "iot_connected" field.
func (euo *EquipmentUpdateOne) SetIotConnected(b bool) *EquipmentUpdateOne {
	euo.mutation.SetIotConnected(b)
	return euo
}

// SetNillableIotConnected sets the "iot_connected" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableIotConnected(b *bool) *EquipmentUpdateOne {
	if b != nil {
		euo.SetIotConnected(*b)
	}
	return euo
}

// SetNotes sets the "notes" field.
func (euo *EquipmentUpdateOne) SetNotes(s string) *EquipmentUpdateOne {
	euo.mutation.SetNotes(s)
	return euo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (euo *EquipmentUpdateOne) SetNillableNotes(s *string) *EquipmentUpdateOne {
	if s != nil {
		euo.SetNotes(*s)
	}
	return euo
}

// ClearNotes clears the value of the "notes" field.
func (euo *EquipmentUpdateOne) ClearNotes() *EquipmentUpdateOne {
	euo.mutation.ClearNotes()
	return euo
}

// SetBuilding sets the "building" edge to the Building entity.
func (euo *EquipmentUpdateOne) SetBuilding(b *Building) *EquipmentUpdateOne {
	return euo.SetBuildingID(b.ID)
}

// SetRoom sets the "room" edge to the Room entity.
func (euo *EquipmentUpdateOne) SetRoom(r *Room) *EquipmentUpdateOne {
	return euo.SetRoomID(r.ID)
}

// Mutation returns the EquipmentMutation object of the builder.
func (euo *EquipmentUpdateOne) Mutation() *EquipmentMutation {
	return euo.mutation
}

// ClearBuilding clears the "building" edge to the Building entity.
func (euo *EquipmentUpdateOne) ClearBuilding() *EquipmentUpdateOne {
	euo.mutation.ClearBuilding()
	return euo
}

// ClearRoom clears the "room" edge to the Room entity.
func (euo *EquipmentUpdateOne) ClearRoom() *EquipmentUpdateOne {
	euo.mutation.ClearRoom()
	return euo
}

// Where appends a list predicates to the EquipmentUpdate builder.
func (euo *EquipmentUpdateOne) Where(ps ...predicate.Equipment) *EquipmentUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *EquipmentUpdateOne) Select(field string, fields ...string) *EquipmentUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Equipment entity.
func (euo *EquipmentUpdateOne) Save(ctx context.Context) (*Equipment, error) {
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *EquipmentUpdateOne) SaveX(ctx context.Context) *Equipment {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *EquipmentUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *EquipmentUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (euo *EquipmentUpdateOne) check() error {
	if v, ok := euo.mutation.Name(); ok {
		if err := equipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Equipment.name": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Category(); ok {
		if err := equipment.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Equipment.category": %w`, err)}
		}
	}
	if v, ok := euo.mutation.RatedPower(); ok {
		if err := equipment.RatedPowerValidator(v); err != nil {
			return &ValidationError{Name: "rated_power", err: fmt.Errorf(`ent: validator failed for field "Equipment.rated_power": %w`, err)}
		}
	}
	if euo.mutation.BuildingCleared() && len(euo.mutation.BuildingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Equipment.building"`)
	}
	return nil
}

func (euo *EquipmentUpdateOne) sqlSave(ctx context.Context) (_node *Equipment, err error) {
	if err := euo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(equipment.Table, equipment.Columns, sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Equipment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, equipment.FieldID)
		for _, f := range fields {
			if !equipment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != equipment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := euo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := euo.mutation.Name(); ok {
		_spec.SetField(equipment.FieldName, field.TypeString, value)
	}
	if value, ok := euo.mutation.Category(); ok {
		_spec.SetField(equipment.FieldCategory, field.TypeString, value)
	}
	if value, ok := euo.mutation.SubType(); ok {
		_spec.SetField(equipment.FieldSubType, field.TypeString, value)
	}
	if euo.mutation.SubTypeCleared() {
		_spec.ClearField(equipment.FieldSubType, field.TypeString)
	}
	if value, ok := euo.mutation.Location(); ok {
		_spec.SetField(equipment.FieldLocation, field.TypeString, value)
	}
	if euo.mutation.LocationCleared() {
		_spec.ClearField(equipment.FieldLocation, field.TypeString)
	}
	if value, ok := euo.mutation.RatedPower(); ok {
		_spec.SetField(equipment.FieldRatedPower, field.TypeFloat64, value)
	}
	if value, ok := euo.mutation.AddedRatedPower(); ok {
		_spec.AddField(equipment.FieldRatedPower, field.TypeFloat64, value)
	}
	if value, ok := euo.mutation.Efficiency(); ok {
		_spec.SetField(equipment.FieldEfficiency, field.TypeFloat64, value)
	}
	if value, ok := euo.mutation.AddedEfficiency(); ok {
		_spec.AddField(equipment.FieldEfficiency, field.TypeFloat64, value)
	}
	if euo.mutation.EfficiencyCleared() {
		_spec.ClearField(equipment.FieldEfficiency, field.TypeFloat64)
	}
	if value, ok := euo.mutation.OperatingHours(); ok {
		_spec.SetField(equipment.FieldOperatingHours, field.TypeFloat64, value)
	}
	if value, ok := euo.mutation.AddedOperatingHours(); ok {
		_spec.AddField(equipment.FieldOperatingHours, field.TypeFloat64, value)
	}
	if euo.mutation.OperatingHoursCleared() {
		_spec.ClearField(equipment.FieldOperatingHours, field.TypeFloat64)
	}
	if value, ok := euo.mutation.OperatingDays(); ok {
		_spec.SetField(equipment.FieldOperatingDays, field.TypeFloat64, value)
	}
	if value, ok := euo.mutation.AddedOperatingDays(); ok {
		_spec.AddField(equipment.FieldOperatingDays, field.TypeFloat64, value)
	}
	if euo.mutation.OperatingDaysCleared() {
		_spec.ClearField(equipment.FieldOperatingDays, field.TypeFloat64)
	}
	if value, ok := euo.mutation.LoadFactor(); ok {
		_spec.SetField(equipment.FieldLoadFactor, field.TypeString, value)
	}
	if euo.mutation.LoadFactorCleared() {
		_spec.ClearField(equipment.FieldLoadFactor, field.TypeString)
	}
	if value, ok := euo.mutation.Condition(); ok {
		_spec.SetField(equipment.FieldCondition, field.TypeString, value)
	}
	if euo.mutation.ConditionCleared() {
		_spec.ClearField(equipment.FieldCondition, field.TypeString)
	}
	if value, ok := euo.mutation.Age(); ok {
		_spec.SetField(equipment.FieldAge, field.TypeInt, value)
	}
	if value, ok := euo.mutation.AddedAge(); ok {
		_spec.AddField(equipment.FieldAge, field.TypeInt, value)
	}
	if euo.mutation.AgeCleared() {
		_spec.ClearField(equipment.FieldAge, field.TypeInt)
	}
	if value, ok := euo.mutation.ControlSystem(); ok {
		_spec.SetField(equipment.FieldControlSystem, field.TypeString, value)
	}
	if euo.mutation.ControlSystemCleared() {
		_spec.ClearField(equipment.FieldControlSystem, field.TypeString)
	}
	if value, ok := euo.mutation.EnergyMetered(); ok {
		_spec.SetField(equipment.FieldEnergyMetered, field.TypeBool, value)
	}
	if value, ok := euo.mutation.IotConnected(); ok {
		_spec.SetField(equipment.FieldIotConnected, field.TypeBool, value)
	}
	if value, ok := euo.mutation.Notes(); ok {
		_spec.SetField(equipment.FieldNotes, field.TypeString, value)
	}
	if euo.mutation.NotesCleared() {
		_spec.ClearField(equipment.FieldNotes, field.TypeString)
	}
	if euo.mutation.BuildingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.BuildingTable,
			Columns: []string{equipment.BuildingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(building.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := euo.mutation.BuildingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.BuildingTable,
			Columns: []string{equipment.BuildingColumn},
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
	if euo.mutation.RoomCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.RoomTable,
			Columns: []string{equipment.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := euo.mutation.RoomIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   equipment.RoomTable,
			Columns: []string{equipment.RoomColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(room.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Equipment{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{equipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
