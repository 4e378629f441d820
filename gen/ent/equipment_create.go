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
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/room"
)

// EquipmentCreate is the builder for creating a Equipment entity.
type EquipmentCreate struct {
	config
	mutation *EquipmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildingID sets the "building_id" field.
func (ec *EquipmentCreate) SetBuildingID(u uuid.UUID) *EquipmentCreate {
	ec.mutation.SetBuildingID(u)
	return ec
}

// SetRoomID sets the "room_id" field.
func (ec *EquipmentCreate) SetRoomID(u uuid.UUID) *EquipmentCreate {
	ec.mutation.SetRoomID(u)
	return ec
}

// SetNillableRoomID sets the "room_id" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableRoomID(u *uuid.UUID) *EquipmentCreate {
	if u != nil {
		ec.SetRoomID(*u)
	}
	return ec
}

// SetName sets the "name" field.
func (ec *EquipmentCreate) SetName(s string) *EquipmentCreate {
	ec.mutation.SetName(s)
	return ec
}

// SetCategory sets the "category" field.
func (ec *EquipmentCreate) SetCategory(s string) *EquipmentCreate {
	ec.mutation.SetCategory(s)
	return ec
}

// SetSubType sets the "sub_type" field.
func (ec *EquipmentCreate) SetSubType(s string) *EquipmentCreate {
	ec.mutation.SetSubType(s)
	return ec
}

// SetNillableSubType sets the "sub_type" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableSubType(s *string) *EquipmentCreate {
	if s != nil {
		ec.SetSubType(*s)
	}
	return ec
}

// SetLocation sets the "location" field.
func (ec *EquipmentCreate) SetLocation(s string) *EquipmentCreate {
	ec.mutation.SetLocation(s)
	return ec
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableLocation(s *string) *EquipmentCreate {
	if s != nil {
		ec.SetLocation(*s)
	}
	return ec
}

// SetRatedPower sets the "rated_power" field.
func (ec *EquipmentCreate) SetRatedPower(f float64) *EquipmentCreate {
	ec.mutation.SetRatedPower(f)
	return ec
}

// SetEfficiency sets the "efficiency" field.
func (ec *EquipmentCreate) SetEfficiency(f float64) *EquipmentCreate {
	ec.mutation.SetEfficiency(f)
	return ec
}

// SetNillableEfficiency sets the "efficiency" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableEfficiency(f *float64) *EquipmentCreate {
	if f != nil {
		ec.SetEfficiency(*f)
	}
	return ec
}

// SetOperatingHours sets the "operating_hours" field.
func (ec *EquipmentCreate) SetOperatingHours(f float64) *EquipmentCreate {
	ec.mutation.SetOperatingHours(f)
	return ec
}

// SetNillableOperatingHours sets the "operating_hours" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableOperatingHours(f *float64) *EquipmentCreate {
	if f != nil {
		ec.SetOperatingHours(*f)
	}
	return ec
}

// SetOperatingDays sets the "operating_days" field.
func (ec *EquipmentCreate) SetOperatingDays(f float64) *EquipmentCreate {
	ec.mutation.SetOperatingDays(f)
	return ec
}

// SetNillableOperatingDays sets the "operating_days" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableOperatingDays(f *float64) *EquipmentCreate {
	if f != nil {
		ec.SetOperatingDays(*f)
	}
	return ec
}

// SetLoadFactor sets the "load_factor" field.
func (ec *EquipmentCreate) SetLoadFactor(s string) *EquipmentCreate {
	ec.mutation.SetLoadFactor(s)
	return ec
}

// SetNillableLoadFactor sets the "load_factor" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableLoadFactor(s *string) *EquipmentCreate {
	if s != nil {
		ec.SetLoadFactor(*s)
	}
	return ec
}

// SetCondition sets the "condition" field.
func (ec *EquipmentCreate) SetCondition(s string) *EquipmentCreate {
	ec.mutation.SetCondition(s)
	return ec
}

// SetNillableCondition sets the "condition" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableCondition(s *string) *EquipmentCreate {
	if s != nil {
		ec.SetCondition(*s)
	}
	return ec
}

// SetAge sets the "age" field.
func (ec *EquipmentCreate) SetAge(i int) *EquipmentCreate {
	ec.mutation.SetAge(i)
	return ec
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableAge(i *int) *EquipmentCreate {
	if i != nil {
		ec.SetAge(*i)
	}
	return ec
}

// SetControlSystem sets the "control_system" field.
func (ec *EquipmentCreate) SetControlSystem(s string) *EquipmentCreate {
	ec.mutation.SetControlSystem(s)
	return ec
}

// SetNillableControlSystem sets the "control_system" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableControlSystem(s *string) *EquipmentCreate {
	if s != nil {
		ec.SetControlSystem(*s)
	}
	return ec
}

// SetEnergyMetered sets the "energy_metered" field.
func (ec *EquipmentCreate) SetEnergyMetered(b bool) *EquipmentCreate {
	ec.mutation.SetEnergyMetered(b)
	return ec
}

// SetNillableEnergyMetered sets the "energy_metered" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableEnergyMetered(b *bool) *EquipmentCreate {
	if b != nil {
		ec.SetEnergyMetered(*b)
	}
	return ec
}

// SetIotConnected sets the "iot_connected" field.
func (ec *EquipmentCreate) SetIotConnected(b bool) *EquipmentCreate {
	ec.mutation.SetIotConnected(b)
	return ec
}

// SetNillableIotConnected sets the "iot_connected" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableIotConnected(b *bool) *EquipmentCreate {
	if b != nil {
		ec.SetIotConnected(*b)
	}
	return ec
}

// SetNotes sets the "notes" field.
func (ec *EquipmentCreate) SetNotes(s string) *EquipmentCreate {
	ec.mutation.SetNotes(s)
	return ec
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableNotes(s *string) *EquipmentCreate {
	if s != nil {
		ec.SetNotes(*s)
	}
	return ec
}

// SetCreatedAt sets the "created_at" field.
func (ec *EquipmentCreate) SetCreatedAt(t time.Time) *EquipmentCreate {
	ec.mutation.SetCreatedAt(t)
	return ec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableCreatedAt(t *time.Time) *EquipmentCreate {
	if t != nil {
		ec.SetCreatedAt(*t)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *EquipmentCreate) SetID(u uuid.UUID) *EquipmentCreate {
	ec.mutation.SetID(u)
	return ec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ec *EquipmentCreate) SetNillableID(u *uuid.UUID) *EquipmentCreate {
	if u != nil {
		ec.SetID(*u)
	}
	return ec
}

// SetBuilding sets the "building" edge to the Building entity.
func (ec *EquipmentCreate) SetBuilding(b *Building) *EquipmentCreate {
	return ec.SetBuildingID(b.ID)
}

// SetRoom sets the "room" edge to the Room entity.
func (ec *EquipmentCreate) SetRoom(r *Room) *EquipmentCreate {
	return ec.SetRoomID(r.ID)
}

// Mutation returns the EquipmentMutation object of the builder.
func (ec *EquipmentCreate) Mutation() *EquipmentMutation {
	return ec.mutation
}

// Save creates the Equipment in the database.
func (ec *EquipmentCreate) Save(ctx context.Context) (*Equipment, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *EquipmentCreate) SaveX(ctx context.Context) *Equipment {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *EquipmentCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *EquipmentCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *EquipmentCreate) defaults() {
	if _, ok := ec.mutation.EnergyMetered(); !ok {
		v := equipment.DefaultEnergyMetered
		ec.mutation.SetEnergyMetered(v)
	}
	if _, ok := ec.mutation.IotConnected(); !ok {
		v := equipment.DefaultIotConnected
		ec.mutation.SetIotConnected(v)
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		v := equipment.DefaultCreatedAt()
		ec.mutation.SetCreatedAt(v)
	}
	if _, ok := ec.mutation.ID(); !ok {
		v := equipment.DefaultID()
		ec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *EquipmentCreate) check() error {
	if _, ok := ec.mutation.BuildingID(); !ok {
		return &ValidationError{Name: "building_id", err: errors.New(`ent: missing required field "Equipment.building_id"`)}
	}
	if _, ok := ec.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Equipment.name"`)}
	}
	if v, ok := ec.mutation.Name(); ok {
		if err := equipment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Equipment.name": %w`, err)}
		}
	}
	if _, ok := ec.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Equipment.category"`)}
	}
	if v, ok := ec.mutation.Category(); ok {
		if err := equipment.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Equipment.category": %w`, err)}
		}
	}
	if _, ok := ec.mutation.RatedPower(); !ok {
		return &ValidationError{Name: "rated_power", err: errors.New(`ent: missing required field "Equipment.rated_power"`)}
	}
	if v, ok := ec.mutation.RatedPower(); ok {
		if err := equipment.RatedPowerValidator(v); err != nil {
			return &ValidationError{Name: "rated_power", err: fmt.Errorf(`ent: validator failed for field "Equipment.rated_power": %w`, err)}
		}
	}
	if _, ok := ec.mutation.EnergyMetered(); !ok {
		return &ValidationError{Name: "energy_metered", err: errors.New(`ent: missing required field "Equipment.energy_metered"`)}
	}
	if _, ok := ec.mutation.IotConnected(); !ok {
		return &ValidationError{Name: "iot_connected", err: errors.New(`ent: missing required field "Equipment.iot_connected"`)}
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Equipment.created_at"`)}
	}
	if len(ec.mutation.BuildingIDs()) == 0 {
		return &ValidationError{Name: "building", err: errors.New(`ent: missing required edge "Equipment.building"`)}
	}
	return nil
}

func (ec *EquipmentCreate) sqlSave(ctx context.Context) (*Equipment, error) {
	if err := ec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ec.driver, _spec); err != nil {
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
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *EquipmentCreate) createSpec() (*Equipment, *sqlgraph.CreateSpec) {
	var (
		_node = &Equipment{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(equipment.Table, sqlgraph.NewFieldSpec(equipment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = ec.conflict
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ec.mutation.Name(); ok {
		_spec.SetField(equipment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ec.mutation.Category(); ok {
		_spec.SetField(equipment.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := ec.mutation.SubType(); ok {
		_spec.SetField(equipment.FieldSubType, field.TypeString, value)
		_node.SubType = value
	}
	if value, ok := ec.mutation.Location(); ok {
		_spec.SetField(equipment.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := ec.mutation.RatedPower(); ok {
		_spec.SetField(equipment.FieldRatedPower, field.TypeFloat64, value)
		_node.RatedPower = value
	}
	if value, ok := ec.mutation.Efficiency(); ok {
		_spec.SetField(equipment.FieldEfficiency, field.TypeFloat64, value)
		_node.Efficiency = value
	}
	if value, ok := ec.mutation.OperatingHours(); ok {
		_spec.SetField(equipment.FieldOperatingHours, field.TypeFloat64, value)
		_node.OperatingHours = value
	}
	if value, ok := ec.mutation.OperatingDays(); ok {
		_spec.SetField(equipment.FieldOperatingDays, field.TypeFloat64, value)
		_node.OperatingDays = value
	}
	if value, ok := ec.mutation.LoadFactor(); ok {
		_spec.SetField(equipment.FieldLoadFactor, field.TypeString, value)
		_node.LoadFactor = value
	}
	if value, ok := ec.mutation.Condition(); ok {
		_spec.SetField(equipment.FieldCondition, field.TypeString, value)
		_node.Condition = value
	}
	if value, ok := ec.mutation.Age(); ok {
		_spec.SetField(equipment.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := ec.mutation.ControlSystem(); ok {
		_spec.SetField(equipment.FieldControlSystem, field.TypeString, value)
		_node.ControlSystem = value
	}
	if value, ok := ec.mutation.EnergyMetered(); ok {
		_spec.SetField(equipment.FieldEnergyMetered, field.TypeBool, value)
		_node.EnergyMetered = value
	}
	if value, ok := ec.mutation.IotConnected(); ok {
		_spec.SetField(equipment.FieldIotConnected, field.TypeBool, value)
		_node.IotConnected = value
	}
	if value, ok := ec.mutation.Notes(); ok {
		_spec.SetField(equipment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := ec.mutation.CreatedAt(); ok {
		_spec.SetField(equipment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := ec.mutation.BuildingIDs(); len(nodes) > 0 {
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
		_node.BuildingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ec.mutation.RoomIDs(); len(nodes) > 0 {
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
		_node.RoomID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Equipment.Create().
//		SetBuildingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EquipmentUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (ec *EquipmentCreate) OnConflict(opts ...sql.ConflictOption) *EquipmentUpsertOne {
	ec.conflict = opts
	return &EquipmentUpsertOne{
		create: ec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Equipment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ec *EquipmentCreate) OnConflictColumns(columns ...string) *EquipmentUpsertOne {
	ec.conflict = append(ec.conflict, sql.ConflictColumns(columns...))
	return &EquipmentUpsertOne{
		create: ec,
	}
}

type (
	// EquipmentUpsertOne is the builder for "upsert"-ing
	//  one Equipment node.
	EquipmentUpsertOne struct {
		create *EquipmentCreate
	}

	// EquipmentUpsert is the "OnConflict" setter.
	EquipmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuildingID sets the "building_id" field.
func (u *EquipmentUpsert) SetBuildingID(v uuid.UUID) *EquipmentUpsert {
	u.Set(equipment.FieldBuildingID, v)
	return u
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateBuildingID() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldBuildingID)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *EquipmentUpsert) SetRoomID(v uuid.UUID) *EquipmentUpsert {
	u.Set(equipment.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateRoomID() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldRoomID)
	return u
}

// ClearRoomID clears the value of the "room_id" field.
func (u *EquipmentUpsert) ClearRoomID() *EquipmentUpsert {
	u.SetNull(equipment.FieldRoomID)
	return u
}

// SetName sets the "name" field.
func (u *EquipmentUpsert) SetName(v string) *EquipmentUpsert {
	u.Set(equipment.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateName() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldName)
	return u
}

// SetCategory sets the "category" field.
func (u *EquipmentUpsert) SetCategory(v string) *EquipmentUpsert {
	u.Set(equipment.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateCategory() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldCategory)
	return u
}

// SetSubType sets the "sub_type" field.
func (u *EquipmentUpsert) SetSubType(v string) *EquipmentUpsert {
	u.Set(equipment.FieldSubType, v)
	return u
}

// UpdateSubType sets the "sub_type" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateSubType() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldSubType)
	return u
}

// ClearSubType clears the value of the "sub_type" field.
func (u *EquipmentUpsert) ClearSubType() *EquipmentUpsert {
	u.SetNull(equipment.FieldSubType)
	return u
}

// SetLocation sets the "location" field.
func (u *EquipmentUpsert) SetLocation(v string) *EquipmentUpsert {
	u.Set(equipment.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateLocation() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *EquipmentUpsert) ClearLocation() *EquipmentUpsert {
	u.SetNull(equipment.FieldLocation)
	return u
}

// SetRatedPower sets the "rated_power" field.
func (u *EquipmentUpsert) SetRatedPower(v float64) *EquipmentUpsert {
	u.Set(equipment.FieldRatedPower, v)
	return u
}

// UpdateRatedPower sets the "rated_power" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateRatedPower() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldRatedPower)
	return u
}

// AddRatedPower adds v to the "rated_power" field.
func (u *EquipmentUpsert) AddRatedPower(v float64) *EquipmentUpsert {
	u.Add(equipment.FieldRatedPower, v)
	return u
}

// SetEfficiency sets the "efficiency" field.
func (u *EquipmentUpsert) SetEfficiency(v float64) *EquipmentUpsert {
	u.Set(equipment.FieldEfficiency, v)
	return u
}

// UpdateEfficiency sets the "efficiency" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateEfficiency() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldEfficiency)
	return u
}

// AddEfficiency adds v to the "efficiency" field.
func (u *EquipmentUpsert) AddEfficiency(v float64) *EquipmentUpsert {
	u.Add(equipment.FieldEfficiency, v)
	return u
}

// ClearEfficiency clears the value of the "efficiency" field.
func (u *EquipmentUpsert) ClearEfficiency() *EquipmentUpsert {
	u.SetNull(equipment.FieldEfficiency)
	return u
}

// SetOperatingHours sets the "operating_hours" field.
func (u *EquipmentUpsert) SetOperatingHours(v float64) *EquipmentUpsert {
	u.Set(equipment.FieldOperatingHours, v)
	return u
}

// UpdateOperatingHours sets the "operating_hours" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateOperatingHours() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldOperatingHours)
	return u
}

// AddOperatingHours adds v to the "operating_hours" field.
func (u *EquipmentUpsert) AddOperatingHours(v float64) *EquipmentUpsert {
	u.Add(equipment.FieldOperatingHours, v)
	return u
}

// ClearOperatingHours clears the value of the "operating_hours" field.
func (u *EquipmentUpsert) ClearOperatingHours() *EquipmentUpsert {
	u.SetNull(equipment.FieldOperatingHours)
	return u
}

// SetOperatingDays sets the "operating_days" field.
func (u *EquipmentUpsert) SetOperatingDays(v float64) *EquipmentUpsert {
	u.Set(equipment.FieldOperatingDays, v)
	return u
}

// UpdateOperatingDays sets the "operating_days" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateOperatingDays() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldOperatingDays)
	return u
}

// AddOperatingDays adds v to the "operating_days" field.
func (u *EquipmentUpsert) AddOperatingDays(v float64) *EquipmentUpsert {
	u.Add(equipment.FieldOperatingDays, v)
	return u
}

// ClearOperatingDays clears the value of the "operating_days" field.
func (u *EquipmentUpsert) ClearOperatingDays() *EquipmentUpsert {
	u.SetNull(equipment.FieldOperatingDays)
	return u
}

// SetLoadFactor sets the "load_factor" field.
func (u *EquipmentUpsert) SetLoadFactor(v string) *EquipmentUpsert {
	u.Set(equipment.FieldLoadFactor, v)
	return u
}

// UpdateLoadFactor sets the "load_factor" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateLoadFactor() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldLoadFactor)
	return u
}

// ClearLoadFactor clears the value of the "load_factor" field.
func (u *EquipmentUpsert) ClearLoadFactor() *EquipmentUpsert {
	u.SetNull(equipment.FieldLoadFactor)
	return u
}

// SetCondition sets the "condition" field.
func (u *EquipmentUpsert) SetCondition(v string) *EquipmentUpsert {
	u.Set(equipment.FieldCondition, v)
	return u
}

// UpdateCondition sets the "condition" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateCondition() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldCondition)
	return u
}

// ClearCondition clears the value of the "condition" field.
func (u *EquipmentUpsert) ClearCondition() *EquipmentUpsert {
	u.SetNull(equipment.FieldCondition)
	return u
}

// SetAge sets the "age" field.
func (u *EquipmentUpsert) SetAge(v int) *EquipmentUpsert {
	u.Set(equipment.FieldAge, v)
	return u
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateAge() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldAge)
	return u
}

// AddAge adds v to the "age" field.
func (u *EquipmentUpsert) AddAge(v int) *EquipmentUpsert {
	u.Add(equipment.FieldAge, v)
	return u
}

// ClearAge clears the value of the "age" field.
func (u *EquipmentUpsert) ClearAge() *EquipmentUpsert {
	u.SetNull(equipment.FieldAge)
	return u
}

// SetControlSystem sets the "control_system" field.
func (u *EquipmentUpsert) SetControlSystem(v string) *EquipmentUpsert {
	u.Set(equipment.FieldControlSystem, v)
	return u
}

// UpdateControlSystem sets the "control_system" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateControlSystem() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldControlSystem)
	return u
}

// ClearControlSystem clears the value of the "control_system" field.
func (u *EquipmentUpsert) ClearControlSystem() *EquipmentUpsert {
	u.SetNull(equipment.FieldControlSystem)
	return u
}

// SetEnergyMetered sets the "energy_metered" field.
func (u *EquipmentUpsert) SetEnergyMetered(v bool) *EquipmentUpsert {
	u.Set(equipment.FieldEnergyMetered, v)
	return u
}

// UpdateEnergyMetered sets the "energy_metered" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateEnergyMetered() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldEnergyMetered)
	return u
}

// SetIotConnected sets the "iot_connected" field.
func (u *EquipmentUpsert) SetIotConnected(v bool) *EquipmentUpsert {
	u.Set(equipment.FieldIotConnected, v)
	return u
}

// UpdateIotConnected sets the "iot_connected" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateIotConnected() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldIotConnected)
	return u
}

// SetNotes sets the "notes" field.
func (u *EquipmentUpsert) SetNotes(v string) *EquipmentUpsert {
	u.Set(equipment.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EquipmentUpsert) UpdateNotes() *EquipmentUpsert {
	u.SetExcluded(equipment.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *EquipmentUpsert) ClearNotes() *EquipmentUpsert {
	u.SetNull(equipment.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Equipment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(equipment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EquipmentUpsertOne) UpdateNewValues() *EquipmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(equipment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(equipment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Equipment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EquipmentUpsertOne) Ignore() *EquipmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EquipmentUpsertOne) DoNothing() *EquipmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EquipmentCreate.OnConflict
// documentation for more info.
func (u *EquipmentUpsertOne) Update(set func(*EquipmentUpsert)) *EquipmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EquipmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *EquipmentUpsertOne) SetBuildingID(v uuid.UUID) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateBuildingID() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateBuildingID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *EquipmentUpsertOne) SetRoomID(v uuid.UUID) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateRoomID() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *EquipmentUpsertOne) ClearRoomID() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearRoomID()
	})
}

// SetName sets the "name" field.
func (u *EquipmentUpsertOne) SetName(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateName() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *EquipmentUpsertOne) SetCategory(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateCategory() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateCategory()
	})
}

// SetSubType sets the "sub_type" field.
func (u *EquipmentUpsertOne) SetSubType(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetSubType(v)
	})
}

// UpdateSubType sets the "sub_type" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateSubType() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateSubType()
	})
}

// ClearSubType clears the value of the "sub_type" field.
func (u *EquipmentUpsertOne) ClearSubType() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearSubType()
	})
}

// SetLocation sets the "location" field.
func (u *EquipmentUpsertOne) SetLocation(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateLocation() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EquipmentUpsertOne) ClearLocation() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearLocation()
	})
}

// SetRatedPower sets the "rated_power" field.
func (u *EquipmentUpsertOne) SetRatedPower(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetRatedPower(v)
	})
}

// AddRatedPower adds v to the "rated_power" field.
func (u *EquipmentUpsertOne) AddRatedPower(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddRatedPower(v)
	})
}

// UpdateRatedPower sets the "rated_power" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateRatedPower() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateRatedPower()
	})
}

// SetEfficiency sets the "efficiency" field.
func (u *EquipmentUpsertOne) SetEfficiency(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetEfficiency(v)
	})
}

// AddEfficiency adds v to the "efficiency" field.
func (u *EquipmentUpsertOne) AddEfficiency(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddEfficiency(v)
	})
}

// UpdateEfficiency sets the "efficiency" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateEfficiency() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateEfficiency()
	})
}

// ClearEfficiency clears the value of the "efficiency" field.
func (u *EquipmentUpsertOne) ClearEfficiency() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearEfficiency()
	})
}

// SetOperatingHours sets the "operating_hours" field.
func (u *EquipmentUpsertOne) SetOperatingHours(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetOperatingHours(v)
	})
}

// AddOperatingHours adds v to the "operating_hours" field.
func (u *EquipmentUpsertOne) AddOperatingHours(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddOperatingHours(v)
	})
}

// UpdateOperatingHours sets the "operating_hours" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateOperatingHours() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateOperatingHours()
	})
}

// ClearOperatingHours clears the value of the "operating_hours" field.
func (u *EquipmentUpsertOne) ClearOperatingHours() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearOperatingHours()
	})
}

// SetOperatingDays sets the "operating_days" field.
func (u *EquipmentUpsertOne) SetOperatingDays(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetOperatingDays(v)
	})
}

// AddOperatingDays adds v to the "operating_days" field.
func (u *EquipmentUpsertOne) AddOperatingDays(v float64) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddOperatingDays(v)
	})
}

// UpdateOperatingDays sets the "operating_days" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateOperatingDays() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateOperatingDays()
	})
}

// ClearOperatingDays clears the value of the "operating_days" field.
func (u *EquipmentUpsertOne) ClearOperatingDays() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearOperatingDays()
	})
}

// SetLoadFactor sets the "load_factor" field.
func (u *EquipmentUpsertOne) SetLoadFactor(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetLoadFactor(v)
	})
}

// UpdateLoadFactor sets the "load_factor" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateLoadFactor() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateLoadFactor()
	})
}

// ClearLoadFactor clears the value of the "load_factor" field.
func (u *EquipmentUpsertOne) ClearLoadFactor() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearLoadFactor()
	})
}

// SetCondition sets the "condition" field.
func (u *EquipmentUpsertOne) SetCondition(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetCondition(v)
	})
}

// UpdateCondition sets the "condition" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateCondition() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateCondition()
	})
}

// ClearCondition clears the value of the "condition" field.
func (u *EquipmentUpsertOne) ClearCondition() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearCondition()
	})
}

// SetAge sets the "age" field.
func (u *EquipmentUpsertOne) SetAge(v int) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *EquipmentUpsertOne) AddAge(v int) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateAge() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateAge()
	})
}

// ClearAge clears the value of the "age" field.
func (u *EquipmentUpsertOne) ClearAge() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearAge()
	})
}

// SetControlSystem sets the "control_system" field.
func (u *EquipmentUpsertOne) SetControlSystem(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetControlSystem(v)
	})
}

// UpdateControlSystem sets the "control_system" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateControlSystem() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateControlSystem()
	})
}

// ClearControlSystem clears the value of the "control_system" field.
func (u *EquipmentUpsertOne) ClearControlSystem() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearControlSystem()
	})
}

// SetEnergyMetered sets the "energy_metered" field.
func (u *EquipmentUpsertOne) SetEnergyMetered(v bool) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetEnergyMetered(v)
	})
}

// UpdateEnergyMetered sets the "energy_metered" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateEnergyMetered() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateEnergyMetered()
	})
}

// SetIotConnected sets the "iot_connected" field.
func (u *EquipmentUpsertOne) SetIotConnected(v bool) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetIotConnected(v)
	})
}

// UpdateIotConnected sets the "iot_connected" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateIotConnected() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateIotConnected()
	})
}

// SetNotes sets the "notes" field.
func (u *EquipmentUpsertOne) SetNotes(v string) *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EquipmentUpsertOne) UpdateNotes() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EquipmentUpsertOne) ClearNotes() *EquipmentUpsertOne {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *EquipmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EquipmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EquipmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EquipmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EquipmentUpsertOne.ID is not supported by MySQL driver. Use EquipmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EquipmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EquipmentCreateBulk is the builder for creating many Equipment entities in bulk.
type EquipmentCreateBulk struct {
	config
	err      error
	builders []*EquipmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Equipment entities in the database.
func (ecb *EquipmentCreateBulk) Save(ctx context.Context) ([]*Equipment, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Equipment, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EquipmentMutation)
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
					_, err = mutators[i+1].Mutate(root, ecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ecb *EquipmentCreateBulk) SaveX(ctx context.Context) []*Equipment {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *EquipmentCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *EquipmentCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Equipment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EquipmentUpsert) {
//			SetBuildingID(v+v).
//		}).
//		Exec(ctx)
func (ecb *EquipmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *EquipmentUpsertBulk {
	ecb.conflict = opts
	return &EquipmentUpsertBulk{
		create: ecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Equipment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ecb *EquipmentCreateBulk) OnConflictColumns(columns ...string) *EquipmentUpsertBulk {
	ecb.conflict = append(ecb.conflict, sql.ConflictColumns(columns...))
	return &EquipmentUpsertBulk{
		create: ecb,
	}
}

// EquipmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Equipment nodes.
type EquipmentUpsertBulk struct {
	create *EquipmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Equipment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(equipment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EquipmentUpsertBulk) UpdateNewValues() *EquipmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(equipment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(equipment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Equipment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EquipmentUpsertBulk) Ignore() *EquipmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EquipmentUpsertBulk) DoNothing() *EquipmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EquipmentCreateBulk.OnConflict
// documentation for more info.
func (u *EquipmentUpsertBulk) Update(set func(*EquipmentUpsert)) *EquipmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EquipmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuildingID sets the "building_id" field.
func (u *EquipmentUpsertBulk) SetBuildingID(v uuid.UUID) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetBuildingID(v)
	})
}

// UpdateBuildingID sets the "building_id" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateBuildingID() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateBuildingID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *EquipmentUpsertBulk) SetRoomID(v uuid.UUID) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateRoomID() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateRoomID()
	})
}

// ClearRoomID clears the value of the "room_id" field.
func (u *EquipmentUpsertBulk) ClearRoomID() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearRoomID()
	})
}

// SetName sets the "name" field.
func (u *EquipmentUpsertBulk) SetName(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateName() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *EquipmentUpsertBulk) SetCategory(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateCategory() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateCategory()
	})
}

// SetSubType sets the "sub_type" field.
func (u *EquipmentUpsertBulk) SetSubType(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetSubType(v)
	})
}

// UpdateSubType sets the "sub_type" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateSubType() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateSubType()
	})
}

// ClearSubType clears the value of the "sub_type" field.
func (u *EquipmentUpsertBulk) ClearSubType() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearSubType()
	})
}

// SetLocation sets the "location" field.
func (u *EquipmentUpsertBulk) SetLocation(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateLocation() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EquipmentUpsertBulk) ClearLocation() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearLocation()
	})
}

// SetRatedPower sets the "rated_power" field.
func (u *EquipmentUpsertBulk) SetRatedPower(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetRatedPower(v)
	})
}

// AddRatedPower adds v to the "rated_power" field.
func (u *EquipmentUpsertBulk) AddRatedPower(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddRatedPower(v)
	})
}

// UpdateRatedPower sets the "rated_power" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateRatedPower() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateRatedPower()
	})
}

// SetEfficiency sets the "efficiency" field.
func (u *EquipmentUpsertBulk) SetEfficiency(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetEfficiency(v)
	})
}

// AddEfficiency adds v to the "efficiency" field.
func (u *EquipmentUpsertBulk) AddEfficiency(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddEfficiency(v)
	})
}

// UpdateEfficiency sets the "efficiency" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateEfficiency() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateEfficiency()
	})
}

// ClearEfficiency clears the value of the "efficiency" field.
func (u *EquipmentUpsertBulk) ClearEfficiency() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearEfficiency()
	})
}

// SetOperatingHours sets the "operating_hours" field.
func (u *EquipmentUpsertBulk) SetOperatingHours(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetOperatingHours(v)
	})
}

// AddOperatingHours adds v to the "operating_hours" field.
func (u *EquipmentUpsertBulk) AddOperatingHours(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddOperatingHours(v)
	})
}

// UpdateOperatingHours sets the "operating_hours" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateOperatingHours() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateOperatingHours()
	})
}

// ClearOperatingHours clears the value of the "operating_hours" field.
func (u *EquipmentUpsertBulk) ClearOperatingHours() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearOperatingHours()
	})
}

// SetOperatingDays sets the "operating_days" field.
func (u *EquipmentUpsertBulk) SetOperatingDays(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetOperatingDays(v)
	})
}

// AddOperatingDays adds v to the "operating_days" field.
func (u *EquipmentUpsertBulk) AddOperatingDays(v float64) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddOperatingDays(v)
	})
}

// UpdateOperatingDays sets the "operating_days" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateOperatingDays() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateOperatingDays()
	})
}

// ClearOperatingDays clears the value of the "operating_days" field.
func (u *EquipmentUpsertBulk) ClearOperatingDays() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearOperatingDays()
	})
}

// SetLoadFactor sets the "load_factor" field.
func (u *EquipmentUpsertBulk) SetLoadFactor(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetLoadFactor(v)
	})
}

// UpdateLoadFactor sets the "load_factor" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateLoadFactor() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateLoadFactor()
	})
}

// ClearLoadFactor clears the value of the "load_factor" field.
func (u *EquipmentUpsertBulk) ClearLoadFactor() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearLoadFactor()
	})
}

// SetCondition sets the "condition" field.
func (u *EquipmentUpsertBulk) SetCondition(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetCondition(v)
	})
}

// UpdateCondition sets the "condition" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateCondition() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateCondition()
	})
}

// ClearCondition clears the value of the "condition" field.
func (u *EquipmentUpsertBulk) ClearCondition() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearCondition()
	})
}

// SetAge sets the "age" field.
func (u *EquipmentUpsertBulk) SetAge(v int) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetAge(v)
	})
}

// AddAge adds v to the "age" field.
func (u *EquipmentUpsertBulk) AddAge(v int) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.AddAge(v)
	})
}

// UpdateAge sets the "age" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateAge() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateAge()
	})
}

// ClearAge clears the value of the "age" field.
func (u *EquipmentUpsertBulk) ClearAge() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearAge()
	})
}

// SetControlSystem sets the "control_system" field.
func (u *EquipmentUpsertBulk) SetControlSystem(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetControlSystem(v)
	})
}

// UpdateControlSystem sets the "control_system" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateControlSystem() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateControlSystem()
	})
}

// ClearControlSystem clears the value of the "control_system" field.
func (u *EquipmentUpsertBulk) ClearControlSystem() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearControlSystem()
	})
}

// SetEnergyMetered sets the "energy_metered" field.
func (u *EquipmentUpsertBulk) SetEnergyMetered(v bool) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetEnergyMetered(v)
	})
}

// UpdateEnergyMetered sets the "energy_metered" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateEnergyMetered() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateEnergyMetered()
	})
}

// SetIotConnected sets the "iot_connected" field.
func (u *EquipmentUpsertBulk) SetIotConnected(v bool) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetIotConnected(v)
	})
}

// UpdateIotConnected sets the "iot_connected" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateIotConnected() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateIotConnected()
	})
}

// SetNotes sets the "notes" field.
func (u *EquipmentUpsertBulk) SetNotes(v string) *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *EquipmentUpsertBulk) UpdateNotes() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *EquipmentUpsertBulk) ClearNotes() *EquipmentUpsertBulk {
	return u.Update(func(s *EquipmentUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *EquipmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EquipmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EquipmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EquipmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
