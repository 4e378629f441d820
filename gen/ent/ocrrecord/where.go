// Code generated by ent, DO NOT EDIT.

package ocrrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldLTE(FieldID, id))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldBuildingID, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldRawText, v))
}

// IsFloorPlan applies equality check predicate on the "is_floor_plan" field. It's identical to IsFloorPlanEQ.
func IsFloorPlan(v bool) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldIsFloorPlan, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNotIn(FieldBuildingID, vs...))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldContainsFold(FieldRawText, v))
}

// ProcessedTextIsNil applies the IsNil predicate on the "processed_text" field.
func ProcessedTextIsNil() predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldIsNull(FieldProcessedText))
}

// ProcessedTextNotNil applies the NotNil predicate on the "processed_text" field.
func ProcessedTextNotNil() predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNotNull(FieldProcessedText))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNotNull(FieldMetadata))
}

// IsFloorPlanEQ applies the EQ predicate on the "is_floor_plan" field.
func IsFloorPlanEQ(v bool) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldIsFloorPlan, v))
}

// IsFloorPlanNEQ applies the NEQ predicate on the "is_floor_plan" field.
func IsFloorPlanNEQ(v bool) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNEQ(FieldIsFloorPlan, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OCRRecord {
	return predicate.OCRRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBuilding applies the HasEdge predicate on the "building" edge.
func HasBuilding() predicate.OCRRecord {
	return predicate.OCRRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildingWith applies the HasEdge predicate on the "building" edge with a given conditions (other predicates).
func HasBuildingWith(preds ...predicate.Building) predicate.OCRRecord {
	return predicate.OCRRecord(func(s *sql.Selector) {
		step := newBuildingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.OCRRecord {
	return predicate.OCRRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.AuditFile) predicate.OCRRecord {
	return predicate.OCRRecord(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OCRRecord) predicate.OCRRecord {
	return predicate.OCRRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OCRRecord) predicate.OCRRecord {
	return predicate.OCRRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OCRRecord) predicate.OCRRecord {
	return predicate.OCRRecord(sql.NotPredicates(p))
}
