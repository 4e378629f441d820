// Code generated by ent, DO NOT EDIT.

package equipment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldID, id))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldBuildingID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldRoomID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCategory, v))
}

// SubType applies equality check predicate on the "sub_type" field. It's identical to SubTypeEQ.
func SubType(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldSubType, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldLocation, v))
}

// RatedPower applies equality check predicate on the "rated_power" field. It's identical to RatedPowerEQ.
func RatedPower(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldRatedPower, v))
}

// Efficiency applies equality check predicate on the "efficiency" field. It's identical to EfficiencyEQ.
func Efficiency(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldEfficiency, v))
}

// OperatingHours applies equality check predicate on the "operating_hours" field. It's identical to OperatingHoursEQ.
func OperatingHours(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldOperatingHours, v))
}

// OperatingDays applies equality check predicate on the "operating_days" field. It's identical to OperatingDaysEQ.
func OperatingDays(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldOperatingDays, v))
}

// LoadFactor applies equality check predicate on the "load_factor" field. It's identical to LoadFactorEQ.
func LoadFactor(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldLoadFactor, v))
}

// Condition applies equality check predicate on the "condition" field. It's identical to ConditionEQ.
func Condition(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCondition, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldAge, v))
}

// ControlSystem applies equality check predicate on the "control_system" field. It's identical to ControlSystemEQ.
func ControlSystem(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldControlSystem, v))
}

// EnergyMetered applies equality check predicate on the "energy_metered" field. It's identical to EnergyMeteredEQ.
func EnergyMetered(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldEnergyMetered, v))
}

// IotConnected applies equality check predicate on the "iot_connected" field. It's identical to IotConnectedEQ.
func IotConnected(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIotConnected, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCreatedAt, v))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldBuildingID, vs...))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...uuid.UUID) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDIsNil applies the IsNil predicate on the "room_id" field.
func RoomIDIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldRoomID))
}

// RoomIDNotNil applies the NotNil predicate on the "room_id" field.
func RoomIDNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldRoomID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldCategory, v))
}

// SubTypeEQ applies the EQ predicate on the "sub_type" field.
func SubTypeEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldSubType, v))
}

// SubTypeNEQ applies the NEQ predicate on the "sub_type" field.
func SubTypeNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldSubType, v))
}

// SubTypeIn applies the In predicate on the "sub_type" field.
func SubTypeIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldSubType, vs...))
}

// SubTypeNotIn applies the NotIn predicate on the "sub_type" field.
func SubTypeNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldSubType, vs...))
}

// SubTypeGT applies the GT predicate on the "sub_type" field.
func SubTypeGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldSubType, v))
}

// SubTypeGTE applies the GTE predicate on the "sub_type" field.
func SubTypeGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldSubType, v))
}

// SubTypeLT applies the LT predicate on the "sub_type" field.
func SubTypeLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldSubType, v))
}

// SubTypeLTE applies the LTE predicate on the "sub_type" field.
func SubTypeLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldSubType, v))
}

// SubTypeContains applies the Contains predicate on the "sub_type" field.
func SubTypeContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldSubType, v))
}

// SubTypeHasPrefix applies the HasPrefix predicate on the "sub_type" field.
func SubTypeHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldSubType, v))
}

// SubTypeHasSuffix applies the HasSuffix predicate on the "sub_type" field.
func SubTypeHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldSubType, v))
}

// SubTypeIsNil applies the IsNil predicate on the "sub_type" field.
func SubTypeIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldSubType))
}

// SubTypeNotNil applies the NotNil predicate on the "sub_type" field.
func SubTypeNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldSubType))
}

// SubTypeEqualFold applies the EqualFold predicate on the "sub_type" field.
func SubTypeEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldSubType, v))
}

// SubTypeContainsFold applies the ContainsFold predicate on the "sub_type" field.
func SubTypeContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldSubType, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldLocation, v))
}

// RatedPowerEQ applies the EQ predicate on the "rated_power" field.
func RatedPowerEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldRatedPower, v))
}

// RatedPowerNEQ applies the NEQ predicate on the "rated_power" field.
func RatedPowerNEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldRatedPower, v))
}

// RatedPowerIn applies the In predicate on the "rated_power" field.
func RatedPowerIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldRatedPower, vs...))
}

// RatedPowerNotIn applies the NotIn predicate on the "rated_power" field.
func RatedPowerNotIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldRatedPower, vs...))
}

// RatedPowerGT applies the GT predicate on the "rated_power" field.
func RatedPowerGT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldRatedPower, v))
}

// RatedPowerGTE applies the GTE predicate on the "rated_power" field.
func RatedPowerGTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldRatedPower, v))
}

// RatedPowerLT applies the LT predicate on the "rated_power" field.
func RatedPowerLT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldRatedPower, v))
}

// RatedPowerLTE applies the LTE predicate on the "rated_power" field.
func RatedPowerLTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldRatedPower, v))
}

// EfficiencyEQ applies the EQ predicate on the "efficiency" field.
func EfficiencyEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldEfficiency, v))
}

// EfficiencyNEQ applies the NEQ predicate on the "efficiency" field.
func EfficiencyNEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldEfficiency, v))
}

// EfficiencyIn applies the In predicate on the "efficiency" field.
func EfficiencyIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldEfficiency, vs...))
}

// EfficiencyNotIn applies the NotIn predicate on the "efficiency" field.
func EfficiencyNotIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldEfficiency, vs...))
}

// EfficiencyGT applies the GT predicate on the "efficiency" field.
func EfficiencyGT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldEfficiency, v))
}

// EfficiencyGTE applies the GTE predicate on the "efficiency" field.
func EfficiencyGTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldEfficiency, v))
}

// EfficiencyLT applies the LT predicate on the "efficiency" field.
func EfficiencyLT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldEfficiency, v))
}

// EfficiencyLTE applies the LTE predicate on the "efficiency" field.
func EfficiencyLTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldEfficiency, v))
}

// EfficiencyIsNil applies the IsNil predicate on the "efficiency" field.
func EfficiencyIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldEfficiency))
}

// EfficiencyNotNil applies the NotNil predicate on the "efficiency" field.
func EfficiencyNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldEfficiency))
}

// OperatingHoursEQ applies the EQ predicate on the "operating_hours" field.
func OperatingHoursEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldOperatingHours, v))
}

// OperatingHoursNEQ applies the NEQ predicate on the "operating_hours" field.
func OperatingHoursNEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldOperatingHours, v))
}

// OperatingHoursIn applies the In predicate on the "operating_hours" field.
func OperatingHoursIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldOperatingHours, vs...))
}

// OperatingHoursNotIn applies the NotIn predicate on the "operating_hours" field.
func OperatingHoursNotIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldOperatingHours, vs...))
}

// OperatingHoursGT applies the GT predicate on the "operating_hours" field.
func OperatingHoursGT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldOperatingHours, v))
}

// OperatingHoursGTE applies the GTE predicate on the "operating_hours" field.
func OperatingHoursGTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldOperatingHours, v))
}

// OperatingHoursLT applies the LT predicate on the "operating_hours" field.
func OperatingHoursLT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldOperatingHours, v))
}

// OperatingHoursLTE applies the LTE predicate on the "operating_hours" field.
func OperatingHoursLTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldOperatingHours, v))
}

// OperatingHoursIsNil applies the IsNil predicate on the "operating_hours" field.
func OperatingHoursIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldOperatingHours))
}

// OperatingHoursNotNil applies the NotNil predicate on the "operating_hours" field.
func OperatingHoursNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldOperatingHours))
}

// OperatingDaysEQ applies the EQ predicate on the "operating_days" field.
func OperatingDaysEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldOperatingDays, v))
}

// OperatingDaysNEQ applies the NEQ predicate on the "operating_days" field.
func OperatingDaysNEQ(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldOperatingDays, v))
}

// OperatingDaysIn applies the In predicate on the "operating_days" field.
func OperatingDaysIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldOperatingDays, vs...))
}

// OperatingDaysNotIn applies the NotIn predicate on the "operating_days" field.
func OperatingDaysNotIn(vs ...float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldOperatingDays, vs...))
}

// OperatingDaysGT applies the GT predicate on the "operating_days" field.
func OperatingDaysGT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldOperatingDays, v))
}

// OperatingDaysGTE applies the GTE predicate on the "operating_days" field.
func OperatingDaysGTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldOperatingDays, v))
}

// OperatingDaysLT applies the LT predicate on the "operating_days" field.
func OperatingDaysLT(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldOperatingDays, v))
}

// OperatingDaysLTE applies the LTE predicate on the "operating_days" field.
func OperatingDaysLTE(v float64) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldOperatingDays, v))
}

// OperatingDaysIsNil applies the IsNil predicate on the "operating_days" field.
func OperatingDaysIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldOperatingDays))
}

// OperatingDaysNotNil applies the NotNil predicate on the "operating_days" field.
func OperatingDaysNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldOperatingDays))
}

// LoadFactorEQ applies the EQ predicate on the "load_factor" field.
func LoadFactorEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldLoadFactor, v))
}

// LoadFactorNEQ applies the NEQ predicate on the "load_factor" field.
func LoadFactorNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldLoadFactor, v))
}

// LoadFactorIn applies the In predicate on the "load_factor" field.
func LoadFactorIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldLoadFactor, vs...))
}

// LoadFactorNotIn applies the NotIn predicate on the "load_factor" field.
func LoadFactorNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldLoadFactor, vs...))
}

// LoadFactorGT applies the GT predicate on the "load_factor" field.
func LoadFactorGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldLoadFactor, v))
}

// LoadFactorGTE applies the GTE predicate on the "load_factor" field.
func LoadFactorGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldLoadFactor, v))
}

// LoadFactorLT applies the LT predicate on the "load_factor" field.
func LoadFactorLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldLoadFactor, v))
}

// LoadFactorLTE applies the LTE predicate on the "load_factor" field.
func LoadFactorLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldLoadFactor, v))
}

// LoadFactorContains applies the Contains predicate on the "load_factor" field.
func LoadFactorContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldLoadFactor, v))
}

// LoadFactorHasPrefix applies the HasPrefix predicate on the "load_factor" field.
func LoadFactorHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldLoadFactor, v))
}

// LoadFactorHasSuffix applies the HasSuffix predicate on the "load_factor" field.
func LoadFactorHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldLoadFactor, v))
}

// LoadFactorIsNil applies the IsNil predicate on the "load_factor" field.
func LoadFactorIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldLoadFactor))
}

// LoadFactorNotNil applies the NotNil predicate on the "load_factor" field.
func LoadFactorNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldLoadFactor))
}

// LoadFactorEqualFold applies the EqualFold predicate on the "load_factor" field.
func LoadFactorEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldLoadFactor, v))
}

// LoadFactorContainsFold applies the ContainsFold predicate on the "load_factor" field.
func LoadFactorContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldLoadFactor, v))
}

// ConditionEQ applies the EQ predicate on the "condition" field.
func ConditionEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCondition, v))
}

// ConditionNEQ applies the NEQ predicate on the "condition" field.
func ConditionNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCondition, v))
}

// ConditionIn applies the In predicate on the "condition" field.
func ConditionIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCondition, vs...))
}

// ConditionNotIn applies the NotIn predicate on the "condition" field.
func ConditionNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCondition, vs...))
}

// ConditionGT applies the GT predicate on the "condition" field.
func ConditionGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCondition, v))
}

// ConditionGTE applies the GTE predicate on the "condition" field.
func ConditionGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCondition, v))
}

// ConditionLT applies the LT predicate on the "condition" field.
func ConditionLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCondition, v))
}

// ConditionLTE applies the LTE predicate on the "condition" field.
func ConditionLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCondition, v))
}

// ConditionContains applies the Contains predicate on the "condition" field.
func ConditionContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldCondition, v))
}

// ConditionHasPrefix applies the HasPrefix predicate on the "condition" field.
func ConditionHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldCondition, v))
}

// ConditionHasSuffix applies the HasSuffix predicate on the "condition" field.
func ConditionHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldCondition, v))
}

// ConditionIsNil applies the IsNil predicate on the "condition" field.
func ConditionIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldCondition))
}

// ConditionNotNil applies the NotNil predicate on the "condition" field.
func ConditionNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldCondition))
}

// ConditionEqualFold applies the EqualFold predicate on the "condition" field.
func ConditionEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldCondition, v))
}

// ConditionContainsFold applies the ContainsFold predicate on the "condition" field.
func ConditionContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldCondition, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldAge, v))
}

// AgeIsNil applies the IsNil predicate on the "age" field.
func AgeIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldAge))
}

// AgeNotNil applies the NotNil predicate on the "age" field.
func AgeNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldAge))
}

// ControlSystemEQ applies the EQ predicate on the "control_system" field.
func ControlSystemEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldControlSystem, v))
}

// ControlSystemNEQ applies the NEQ predicate on the "control_system" field.
func ControlSystemNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldControlSystem, v))
}

// ControlSystemIn applies the In predicate on the "control_system" field.
func ControlSystemIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldControlSystem, vs...))
}

// ControlSystemNotIn applies the NotIn predicate on the "control_system" field.
func ControlSystemNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldControlSystem, vs...))
}

// ControlSystemGT applies the GT predicate on the "control_system" field.
func ControlSystemGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldControlSystem, v))
}

// ControlSystemGTE applies the GTE predicate on the "control_system" field.
func ControlSystemGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldControlSystem, v))
}

// ControlSystemLT applies the LT predicate on the "control_system" field.
func ControlSystemLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldControlSystem, v))
}

// ControlSystemLTE applies the LTE predicate on the "control_system" field.
func ControlSystemLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldControlSystem, v))
}

// ControlSystemContains applies the Contains predicate on the "control_system" field.
func ControlSystemContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldControlSystem, v))
}

// ControlSystemHasPrefix applies the HasPrefix predicate on the "control_system" field.
func ControlSystemHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldControlSystem, v))
}

// ControlSystemHasSuffix applies the HasSuffix predicate on the "control_system" field.
func ControlSystemHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldControlSystem, v))
}

// ControlSystemIsNil applies the IsNil predicate on the "control_system" field.
func ControlSystemIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldControlSystem))
}

// ControlSystemNotNil applies the NotNil predicate on the "control_system" field.
func ControlSystemNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldControlSystem))
}

// ControlSystemEqualFold applies the EqualFold predicate on the "control_system" field.
func ControlSystemEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldControlSystem, v))
}

// ControlSystemContainsFold applies the ContainsFold predicate on the "control_system" field.
func ControlSystemContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldControlSystem, v))
}

// EnergyMeteredEQ applies the EQ predicate on the "energy_metered" field.
func EnergyMeteredEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldEnergyMetered, v))
}

// EnergyMeteredNEQ applies the NEQ predicate on the "energy_metered" field.
func EnergyMeteredNEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldEnergyMetered, v))
}

// IotConnectedEQ applies the EQ predicate on the "iot_connected" field.
func IotConnectedEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldIotConnected, v))
}

// IotConnectedNEQ applies the NEQ predicate on the "iot_connected" field.
func IotConnectedNEQ(v bool) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldIotConnected, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Equipment {
	return predicate.Equipment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Equipment {
	return predicate.Equipment(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Equipment {
	return predicate.Equipment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBuilding applies the HasEdge predicate on the "building" edge.
func HasBuilding() predicate.Equipment {
	return predicate.Equipment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildingWith applies the HasEdge predicate on the "building" edge with a given conditions (other predicates).
func HasBuildingWith(preds ...predicate.Building) predicate.Equipment {
	return predicate.Equipment(func(s *sql.Selector) {
		step := newBuildingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRoom applies the HasEdge predicate on the "room" edge.
func HasRoom() predicate.Equipment {
	return predicate.Equipment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoomWith applies the HasEdge predicate on the "room" edge with a given conditions (other predicates).
func HasRoomWith(preds ...predicate.Room) predicate.Equipment {
	return predicate.Equipment(func(s *sql.Selector) {
		step := newRoomStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Equipment) predicate.Equipment {
	return predicate.Equipment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Equipment) predicate.Equipment {
	return predicate.Equipment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Equipment) predicate.Equipment {
	return predicate.Equipment(sql.NotPredicates(p))
}
