// Code generated by ent, DO NOT EDIT.

package audit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the audit type in the database.
	Label = "audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBuildingID holds the string denoting the building_id field in the database.
	FieldBuildingID = "building_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFindings holds the string denoting the findings field in the database.
	FieldFindings = "findings"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldKeyMetrics holds the string denoting the key_metrics field in the database.
	FieldKeyMetrics = "key_metrics"
	// FieldExecutiveSummary holds the string denoting the executive_summary field in the database.
	FieldExecutiveSummary = "executive_summary"
	// FieldAiRaw holds the string denoting the ai_raw field in the database.
	FieldAiRaw = "ai_raw"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBuilding holds the string denoting the building edge name in mutations.
	EdgeBuilding = "building"
	// EdgeReports holds the string denoting the reports edge name in mutations.
	EdgeReports = "reports"
	// Table holds the table name of the audit in the database.
	Table = "audits"
	// BuildingTable is the table that holds the building relation/edge.
	BuildingTable = "audits"
	// BuildingInverseTable is the table name for the Building entity.
	// It exists in this package in order to avoid circular dependency with the "building" package.
	BuildingInverseTable = "buildings"
	// BuildingColumn is the table column denoting the building relation/edge.
	BuildingColumn = "building_id"
	// ReportsTable is the table that holds the reports relation/edge.
	ReportsTable = "detailed_reports"
	// ReportsInverseTable is the table name for the DetailedReport entity.
	// It exists in this package in order to avoid circular dependency with the "detailedreport" package.
	ReportsInverseTable = "detailed_reports"
	// ReportsColumn is the table column denoting the reports relation/edge.
	ReportsColumn = "audit_id"
)

// Columns holds all SQL columns for audit fields.
var Columns = []string{
	FieldID,
	FieldBuildingID,
	FieldType,
	FieldStatus,
	FieldFindings,
	FieldRecommendations,
	FieldKeyMetrics,
	FieldExecutiveSummary,
	FieldAiRaw,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Audit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuildingID orders the results by the building_id field.
func ByBuildingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBuildingField orders the results by building field.
func ByBuildingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildingStep(), sql.OrderByField(field, opts...))
	}
}

// ByReportsCount orders the results by reports count.
func ByReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReportsStep(), opts...)
	}
}

// ByReports orders the results by reports terms.
func ByReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBuildingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
	)
}
func newReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
	)
}
