// Code generated by ent, DO NOT EDIT.

package ocrrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ocrrecord type in the database.
	Label = "ocr_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBuildingID holds the string denoting the building_id field in the database.
	FieldBuildingID = "building_id"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldProcessedText holds the string denoting the processed_text field in the database.
	FieldProcessedText = "processed_text"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIsFloorPlan holds the string denoting the is_floor_plan field in the database.
	FieldIsFloorPlan = "is_floor_plan"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBuilding holds the string denoting the building edge name in mutations.
	EdgeBuilding = "building"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the ocrrecord in the database.
	Table = "ocr_records"
	// BuildingTable is the table that holds the building relation/edge.
	BuildingTable = "ocr_records"
	// BuildingInverseTable is the table name for the Building entity.
	// It exists in this package in order to avoid circular dependency with the "building" package.
	BuildingInverseTable = "buildings"
	// BuildingColumn is the table column denoting the building relation/edge.
	BuildingColumn = "building_id"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "ocr_records"
	// FileInverseTable is the table name for the AuditFile entity.
	// It exists in this package in order to avoid circular dependency with the "auditfile" package.
	FileInverseTable = "audit_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "audit_file_ocr"
)

// Columns holds all SQL columns for ocrrecord fields.
var Columns = []string{
	FieldID,
	FieldBuildingID,
	FieldRawText,
	FieldProcessedText,
	FieldMetadata,
	FieldIsFloorPlan,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "ocr_records"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"audit_file_ocr",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsFloorPlan holds the default value on creation for the "is_floor_plan" field.
	DefaultIsFloorPlan bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OCRRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuildingID orders the results by the building_id field.
func ByBuildingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingID, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByIsFloorPlan orders the results by the is_floor_plan field.
func ByIsFloorPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFloorPlan, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBuildingField orders the results by building field.
func ByBuildingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildingStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newBuildingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
	)
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, FileTable, FileColumn),
	)
}
