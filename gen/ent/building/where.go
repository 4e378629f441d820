// Code generated by ent, DO NOT EDIT.

package building

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldName, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldAddress, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldType, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v float64) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldArea, v))
}

// ConstructionYear applies equality check predicate on the "construction_year" field. It's identical to ConstructionYearEQ.
func ConstructionYear(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldConstructionYear, v))
}

// RoomsDeclared applies equality check predicate on the "rooms_declared" field. It's identical to RoomsDeclaredEQ.
func RoomsDeclared(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldRoomsDeclared, v))
}

// Residents applies equality check predicate on the "residents" field. It's identical to ResidentsEQ.
func Residents(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldResidents, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldName, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldAddress, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Building {
	return predicate.Building(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Building {
	return predicate.Building(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Building {
	return predicate.Building(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Building {
	return predicate.Building(sql.FieldContainsFold(FieldType, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v float64) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v float64) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...float64) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...float64) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v float64) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v float64) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v float64) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v float64) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldArea, v))
}

// ConstructionYearEQ applies the EQ predicate on the "construction_year" field.
func ConstructionYearEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldConstructionYear, v))
}

// ConstructionYearNEQ applies the NEQ predicate on the "construction_year" field.
func ConstructionYearNEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldConstructionYear, v))
}

// ConstructionYearIn applies the In predicate on the "construction_year" field.
func ConstructionYearIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldConstructionYear, vs...))
}

// ConstructionYearNotIn applies the NotIn predicate on the "construction_year" field.
func ConstructionYearNotIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldConstructionYear, vs...))
}

// ConstructionYearGT applies the GT predicate on the "construction_year" field.
func ConstructionYearGT(v int) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldConstructionYear, v))
}

// ConstructionYearGTE applies the GTE predicate on the "construction_year" field.
func ConstructionYearGTE(v int) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldConstructionYear, v))
}

// ConstructionYearLT applies the LT predicate on the "construction_year" field.
func ConstructionYearLT(v int) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldConstructionYear, v))
}

// ConstructionYearLTE applies the LTE predicate on the "construction_year" field.
func ConstructionYearLTE(v int) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldConstructionYear, v))
}

// ConstructionYearIsNil applies the IsNil predicate on the "construction_year" field.
func ConstructionYearIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldConstructionYear))
}

// ConstructionYearNotNil applies the NotNil predicate on the "construction_year" field.
func ConstructionYearNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldConstructionYear))
}

// RoomsDeclaredEQ applies the EQ predicate on the "rooms_declared" field.
func RoomsDeclaredEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldRoomsDeclared, v))
}

// RoomsDeclaredNEQ applies the NEQ predicate on the "rooms_declared" field.
func RoomsDeclaredNEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldRoomsDeclared, v))
}

// RoomsDeclaredIn applies the In predicate on the "rooms_declared" field.
func RoomsDeclaredIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldRoomsDeclared, vs...))
}

// RoomsDeclaredNotIn applies the NotIn predicate on the "rooms_declared" field.
func RoomsDeclaredNotIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldRoomsDeclared, vs...))
}

// RoomsDeclaredGT applies the GT predicate on the "rooms_declared" field.
func RoomsDeclaredGT(v int) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldRoomsDeclared, v))
}

// RoomsDeclaredGTE applies the GTE predicate on the "rooms_declared" field.
func RoomsDeclaredGTE(v int) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldRoomsDeclared, v))
}

// RoomsDeclaredLT applies the LT predicate on the "rooms_declared" field.
func RoomsDeclaredLT(v int) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldRoomsDeclared, v))
}

// RoomsDeclaredLTE applies the LTE predicate on the "rooms_declared" field.
func RoomsDeclaredLTE(v int) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldRoomsDeclared, v))
}

// RoomsDeclaredIsNil applies the IsNil predicate on the "rooms_declared" field.
func RoomsDeclaredIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldRoomsDeclared))
}

// RoomsDeclaredNotNil applies the NotNil predicate on the "rooms_declared" field.
func RoomsDeclaredNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldRoomsDeclared))
}

// ResidentsEQ applies the EQ predicate on the "residents" field.
func ResidentsEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldResidents, v))
}

// ResidentsNEQ applies the NEQ predicate on the "residents" field.
func ResidentsNEQ(v int) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldResidents, v))
}

// ResidentsIn applies the In predicate on the "residents" field.
func ResidentsIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldResidents, vs...))
}

// ResidentsNotIn applies the NotIn predicate on the "residents" field.
func ResidentsNotIn(vs ...int) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldResidents, vs...))
}

// ResidentsGT applies the GT predicate on the "residents" field.
func ResidentsGT(v int) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldResidents, v))
}

// ResidentsGTE applies the GTE predicate on the "residents" field.
func ResidentsGTE(v int) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldResidents, v))
}

// ResidentsLT applies the LT predicate on the "residents" field.
func ResidentsLT(v int) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldResidents, v))
}

// ResidentsLTE applies the LTE predicate on the "residents" field.
func ResidentsLTE(v int) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldResidents, v))
}

// ResidentsIsNil applies the IsNil predicate on the "residents" field.
func ResidentsIsNil() predicate.Building {
	return predicate.Building(sql.FieldIsNull(FieldResidents))
}

// ResidentsNotNil applies the NotNil predicate on the "residents" field.
func ResidentsNotNil() predicate.Building {
	return predicate.Building(sql.FieldNotNull(FieldResidents))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Building {
	return predicate.Building(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Building {
	return predicate.Building(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRooms applies the HasEdge predicate on the "rooms" edge.
func HasRooms() predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RoomsTable, RoomsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoomsWith applies the HasEdge predicate on the "rooms" edge with a given conditions (other predicates).
func HasRoomsWith(preds ...predicate.Room) predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := newRoomsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEquipment applies the HasEdge predicate on the "equipment" edge.
func HasEquipment() predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EquipmentTable, EquipmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEquipmentWith applies the HasEdge predicate on the "equipment" edge with a given conditions (other predicates).
func HasEquipmentWith(preds ...predicate.Equipment) predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := newEquipmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.AuditFile) predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOcrRecords applies the HasEdge predicate on the "ocr_records" edge.
func HasOcrRecords() predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OcrRecordsTable, OcrRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOcrRecordsWith applies the HasEdge predicate on the "ocr_records" edge with a given conditions (other predicates).
func HasOcrRecordsWith(preds ...predicate.OCRRecord) predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := newOcrRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAudits applies the HasEdge predicate on the "audits" edge.
func HasAudits() predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditsWith applies the HasEdge predicate on the "audits" edge with a given conditions (other predicates).
func HasAuditsWith(preds ...predicate.Audit) predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := newAuditsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.DetailedReport) predicate.Building {
	return predicate.Building(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Building) predicate.Building {
	return predicate.Building(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Building) predicate.Building {
	return predicate.Building(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Building) predicate.Building {
	return predicate.Building(sql.NotPredicates(p))
}
