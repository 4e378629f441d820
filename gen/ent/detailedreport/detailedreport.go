// Code generated by ent, DO NOT EDIT.

package detailedreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the detailedreport type in the database.
	Label = "detailed_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBuildingID holds the string denoting the building_id field in the database.
	FieldBuildingID = "building_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeBuilding holds the string denoting the building edge name in mutations.
	EdgeBuilding = "building"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// Table holds the table name of the detailedreport in the database.
	Table = "detailed_reports"
	// BuildingTable is the table that holds the building relation/edge.
	BuildingTable = "detailed_reports"
	// BuildingInverseTable is the table name for the Building entity.
	// It exists in this package in order to avoid circular dependency with the "building" package.
	BuildingInverseTable = "buildings"
	// BuildingColumn is the table column denoting the building relation/edge.
	BuildingColumn = "building_id"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "detailed_reports"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for detailedreport fields.
var Columns = []string{
	FieldID,
	FieldBuildingID,
	FieldAuditID,
	FieldContent,
	FieldGeneratedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DetailedReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuildingID orders the results by the building_id field.
func ByBuildingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByBuildingField orders the results by building field.
func ByBuildingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildingStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuditField orders the results by audit field.
func ByAuditField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditStep(), sql.OrderByField(field, opts...))
	}
}
func newBuildingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
	)
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
