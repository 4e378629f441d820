// Code generated by ent, DO NOT EDIT.

package audit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldID, id))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldBuildingID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldUpdatedAt, v))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldBuildingID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldStatus, v))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldFindings))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldRecommendations))
}

// KeyMetricsIsNil applies the IsNil predicate on the "key_metrics" field.
func KeyMetricsIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldKeyMetrics))
}

// KeyMetricsNotNil applies the NotNil predicate on the "key_metrics" field.
func KeyMetricsNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldKeyMetrics))
}

// ExecutiveSummaryIsNil applies the IsNil predicate on the "executive_summary" field.
func ExecutiveSummaryIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldExecutiveSummary))
}

// ExecutiveSummaryNotNil applies the NotNil predicate on the "executive_summary" field.
func ExecutiveSummaryNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldExecutiveSummary))
}

// AiRawIsNil applies the IsNil predicate on the "ai_raw" field.
func AiRawIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldAiRaw))
}

// AiRawNotNil applies the NotNil predicate on the "ai_raw" field.
func AiRawNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldAiRaw))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBuilding applies the HasEdge predicate on the "building" edge.
func HasBuilding() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildingWith applies the HasEdge predicate on the "building" edge with a given conditions (other predicates).
func HasBuildingWith(preds ...predicate.Building) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newBuildingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.DetailedReport) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.NotPredicates(p))
}
