// Code generated by ent, DO NOT EDIT.

package room

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldID, id))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldBuildingID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldName, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v float64) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldArea, v))
}

// LightingType applies equality check predicate on the "lighting_type" field. It's identical to LightingTypeEQ.
func LightingType(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldLightingType, v))
}

// NumFixtures applies equality check predicate on the "num_fixtures" field. It's identical to NumFixturesEQ.
func NumFixtures(v int) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldNumFixtures, v))
}

// AcType applies equality check predicate on the "ac_type" field. It's identical to AcTypeEQ.
func AcType(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldAcType, v))
}

// AcSize applies equality check predicate on the "ac_size" field. It's identical to AcSizeEQ.
func AcSize(v float64) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldAcSize, v))
}

// Windows applies equality check predicate on the "windows" field. It's identical to WindowsEQ.
func Windows(v int) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldWindows, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldCreatedAt, v))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldBuildingID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldName, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v float64) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v float64) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...float64) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...float64) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v float64) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v float64) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v float64) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v float64) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldArea, v))
}

// LightingTypeEQ applies the EQ predicate on the "lighting_type" field.
func LightingTypeEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldLightingType, v))
}

// LightingTypeNEQ applies the NEQ predicate on the "lighting_type" field.
func LightingTypeNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldLightingType, v))
}

// LightingTypeIn applies the In predicate on the "lighting_type" field.
func LightingTypeIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldLightingType, vs...))
}

// LightingTypeNotIn applies the NotIn predicate on the "lighting_type" field.
func LightingTypeNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldLightingType, vs...))
}

// LightingTypeGT applies the GT predicate on the "lighting_type" field.
func LightingTypeGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldLightingType, v))
}

// LightingTypeGTE applies the GTE predicate on the "lighting_type" field.
func LightingTypeGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldLightingType, v))
}

// LightingTypeLT applies the LT predicate on the "lighting_type" field.
func LightingTypeLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldLightingType, v))
}

// LightingTypeLTE applies the LTE predicate on the "lighting_type" field.
func LightingTypeLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldLightingType, v))
}

// LightingTypeContains applies the Contains predicate on the "lighting_type" field.
func LightingTypeContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldLightingType, v))
}

// LightingTypeHasPrefix applies the HasPrefix predicate on the "lighting_type" field.
func LightingTypeHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldLightingType, v))
}

// LightingTypeHasSuffix applies the HasSuffix predicate on the "lighting_type" field.
func LightingTypeHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldLightingType, v))
}

// LightingTypeIsNil applies the IsNil predicate on the "lighting_type" field.
func LightingTypeIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldLightingType))
}

// LightingTypeNotNil applies the NotNil predicate on the "lighting_type" field.
func LightingTypeNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldLightingType))
}

// LightingTypeEqualFold applies the EqualFold predicate on the "lighting_type" field.
func LightingTypeEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldLightingType, v))
}

// LightingTypeContainsFold applies the ContainsFold predicate on the "lighting_type" field.
func LightingTypeContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldLightingType, v))
}

// NumFixturesEQ applies the EQ predicate on the "num_fixtures" field.
func NumFixturesEQ(v int) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldNumFixtures, v))
}

// NumFixturesNEQ applies the NEQ predicate on the "num_fixtures" field.
func NumFixturesNEQ(v int) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldNumFixtures, v))
}

// NumFixturesIn applies the In predicate on the "num_fixtures" field.
func NumFixturesIn(vs ...int) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldNumFixtures, vs...))
}

// NumFixturesNotIn applies the NotIn predicate on the "num_fixtures" field.
func NumFixturesNotIn(vs ...int) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldNumFixtures, vs...))
}

// NumFixturesGT applies the GT predicate on the "num_fixtures" field.
func NumFixturesGT(v int) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldNumFixtures, v))
}

// NumFixturesGTE applies the GTE predicate on the "num_fixtures" field.
func NumFixturesGTE(v int) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldNumFixtures, v))
}

// NumFixturesLT applies the LT predicate on the "num_fixtures" field.
func NumFixturesLT(v int) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldNumFixtures, v))
}

// NumFixturesLTE applies the LTE predicate on the "num_fixtures" field.
func NumFixturesLTE(v int) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldNumFixtures, v))
}

// NumFixturesIsNil applies the IsNil predicate on the "num_fixtures" field.
func NumFixturesIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldNumFixtures))
}

// NumFixturesNotNil applies the NotNil predicate on the "num_fixtures" field.
func NumFixturesNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldNumFixtures))
}

// AcTypeEQ applies the EQ predicate on the "ac_type" field.
func AcTypeEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldAcType, v))
}

// AcTypeNEQ applies the NEQ predicate on the "ac_type" field.
func AcTypeNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldAcType, v))
}

// AcTypeIn applies the In predicate on the "ac_type" field.
func AcTypeIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldAcType, vs...))
}

// AcTypeNotIn applies the NotIn predicate on the "ac_type" field.
func AcTypeNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldAcType, vs...))
}

// AcTypeGT applies the GT predicate on the "ac_type" field.
func AcTypeGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldAcType, v))
}

// AcTypeGTE applies the GTE predicate on the "ac_type" field.
func AcTypeGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldAcType, v))
}

// AcTypeLT applies the LT predicate on the "ac_type" field.
func AcTypeLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldAcType, v))
}

// AcTypeLTE applies the LTE predicate on the "ac_type" field.
func AcTypeLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldAcType, v))
}

// AcTypeContains applies the Contains predicate on the "ac_type" field.
func AcTypeContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldAcType, v))
}

// AcTypeHasPrefix applies the HasPrefix predicate on the "ac_type" field.
func AcTypeHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldAcType, v))
}

// AcTypeHasSuffix applies the HasSuffix predicate on the "ac_type" field.
func AcTypeHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldAcType, v))
}

// AcTypeIsNil applies the IsNil predicate on the "ac_type" field.
func AcTypeIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldAcType))
}

// AcTypeNotNil applies the NotNil predicate on the "ac_type" field.
func AcTypeNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldAcType))
}

// AcTypeEqualFold applies the EqualFold predicate on the "ac_type" field.
func AcTypeEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldAcType, v))
}

// AcTypeContainsFold applies the ContainsFold predicate on the "ac_type" field.
func AcTypeContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldAcType, v))
}

// AcSizeEQ applies the EQ predicate on the "ac_size" field.
func AcSizeEQ(v float64) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldAcSize, v))
}

// AcSizeNEQ applies the NEQ predicate on the "ac_size" field.
func AcSizeNEQ(v float64) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldAcSize, v))
}

// AcSizeIn applies the In predicate on the "ac_size" field.
func AcSizeIn(vs ...float64) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldAcSize, vs...))
}

// AcSizeNotIn applies the NotIn predicate on the "ac_size" field.
func AcSizeNotIn(vs ...float64) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldAcSize, vs...))
}

// AcSizeGT applies the GT predicate on the "ac_size" field.
func AcSizeGT(v float64) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldAcSize, v))
}

// AcSizeGTE applies the GTE predicate on the "ac_size" field.
func AcSizeGTE(v float64) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldAcSize, v))
}

// AcSizeLT applies the LT predicate on the "ac_size" field.
func AcSizeLT(v float64) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldAcSize, v))
}

// AcSizeLTE applies the LTE predicate on the "ac_size" field.
func AcSizeLTE(v float64) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldAcSize, v))
}

// AcSizeIsNil applies the IsNil predicate on the "ac_size" field.
func AcSizeIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldAcSize))
}

// AcSizeNotNil applies the NotNil predicate on the "ac_size" field.
func AcSizeNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldAcSize))
}

// WindowsEQ applies the EQ predicate on the "windows" field.
func WindowsEQ(v int) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldWindows, v))
}

// WindowsNEQ applies the NEQ predicate on the "windows" field.
func WindowsNEQ(v int) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldWindows, v))
}

// WindowsIn applies the In predicate on the "windows" field.
func WindowsIn(vs ...int) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldWindows, vs...))
}

// WindowsNotIn applies the NotIn predicate on the "windows" field.
func WindowsNotIn(vs ...int) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldWindows, vs...))
}

// WindowsGT applies the GT predicate on the "windows" field.
func WindowsGT(v int) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldWindows, v))
}

// WindowsGTE applies the GTE predicate on the "windows" field.
func WindowsGTE(v int) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldWindows, v))
}

// WindowsLT applies the LT predicate on the "windows" field.
func WindowsLT(v int) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldWindows, v))
}

// WindowsLTE applies the LTE predicate on the "windows" field.
func WindowsLTE(v int) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldWindows, v))
}

// WindowsIsNil applies the IsNil predicate on the "windows" field.
func WindowsIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldWindows))
}

// WindowsNotNil applies the NotNil predicate on the "windows" field.
func WindowsNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldWindows))
}

// RoomDataIsNil applies the IsNil predicate on the "room_data" field.
func RoomDataIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldRoomData))
}

// RoomDataNotNil applies the NotNil predicate on the "room_data" field.
func RoomDataNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldRoomData))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBuilding applies the HasEdge predicate on the "building" edge.
func HasBuilding() predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildingWith applies the HasEdge predicate on the "building" edge with a given conditions (other predicates).
func HasBuildingWith(preds ...predicate.Building) predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := newBuildingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEquipment applies the HasEdge predicate on the "equipment" edge.
func HasEquipment() predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EquipmentTable, EquipmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEquipmentWith applies the HasEdge predicate on the "equipment" edge with a given conditions (other predicates).
func HasEquipmentWith(preds ...predicate.Equipment) predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := newEquipmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Room) predicate.Room {
	return predicate.Room(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Room) predicate.Room {
	return predicate.Room(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Room) predicate.Room {
	return predicate.Room(sql.NotPredicates(p))
}
