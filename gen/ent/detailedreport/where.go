// Code generated by ent, DO NOT EDIT.

package detailedreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldLTE(FieldID, id))
}

// BuildingID applies equality check predicate on the "building_id" field. It's identical to BuildingIDEQ.
func BuildingID(v uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldBuildingID, v))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldAuditID, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldGeneratedAt, v))
}

// BuildingIDEQ applies the EQ predicate on the "building_id" field.
func BuildingIDEQ(v uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldBuildingID, v))
}

// BuildingIDNEQ applies the NEQ predicate on the "building_id" field.
func BuildingIDNEQ(v uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNEQ(FieldBuildingID, v))
}

// BuildingIDIn applies the In predicate on the "building_id" field.
func BuildingIDIn(vs ...uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldIn(FieldBuildingID, vs...))
}

// BuildingIDNotIn applies the NotIn predicate on the "building_id" field.
func BuildingIDNotIn(vs ...uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNotIn(FieldBuildingID, vs...))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...uuid.UUID) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNotIn(FieldAuditID, vs...))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.DetailedReport {
	return predicate.DetailedReport(sql.FieldLTE(FieldGeneratedAt, v))
}

// HasBuilding applies the HasEdge predicate on the "building" edge.
func HasBuilding() predicate.DetailedReport {
	return predicate.DetailedReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildingWith applies the HasEdge predicate on the "building" edge with a given conditions (other predicates).
func HasBuildingWith(preds ...predicate.Building) predicate.DetailedReport {
	return predicate.DetailedReport(func(s *sql.Selector) {
		step := newBuildingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.DetailedReport {
	return predicate.DetailedReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.DetailedReport {
	return predicate.DetailedReport(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DetailedReport) predicate.DetailedReport {
	return predicate.DetailedReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DetailedReport) predicate.DetailedReport {
	return predicate.DetailedReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DetailedReport) predicate.DetailedReport {
	return predicate.DetailedReport(sql.NotPredicates(p))
}
