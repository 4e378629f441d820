// Code generated by ent, DO NOT EDIT.

package auditfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the auditfile type in the database.
	Label = "audit_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBuildingID holds the string denoting the building_id field in the database.
	FieldBuildingID = "building_id"
	// FieldFileURL holds the string denoting the file_url field in the database.
	FieldFileURL = "file_url"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldOcrRecordID holds the string denoting the ocr_record_id field in the database.
	FieldOcrRecordID = "ocr_record_id"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeBuilding holds the string denoting the building edge name in mutations.
	EdgeBuilding = "building"
	// EdgeOcr holds the string denoting the ocr edge name in mutations.
	EdgeOcr = "ocr"
	// Table holds the table name of the auditfile in the database.
	Table = "audit_files"
	// BuildingTable is the table that holds the building relation/edge.
	BuildingTable = "audit_files"
	// BuildingInverseTable is the table name for the Building entity.
	// It exists in this package in order to avoid circular dependency with the "building" package.
	BuildingInverseTable = "buildings"
	// BuildingColumn is the table column denoting the building relation/edge.
	BuildingColumn = "building_id"
	// OcrTable is the table that holds the ocr relation/edge.
	OcrTable = "ocr_records"
	// OcrInverseTable is the table name for the OCRRecord entity.
	// It exists in this package in order to avoid circular dependency with the "ocrrecord" package.
	OcrInverseTable = "ocr_records"
	// OcrColumn is the table column denoting the ocr relation/edge.
	OcrColumn = "audit_file_ocr"
)

// Columns holds all SQL columns for auditfile fields.
var Columns = []string{
	FieldID,
	FieldBuildingID,
	FieldFileURL,
	FieldFileName,
	FieldFileType,
	FieldFileSize,
	FieldProcessingStatus,
	FieldOcrRecordID,
	FieldUploadedAt,
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
	// FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	FileURLValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	FileTypeValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AuditFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuildingID orders the results by the building_id field.
func ByBuildingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingID, opts...).ToFunc()
}

// ByFileURL orders the results by the file_url field.
func ByFileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileURL, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByOcrRecordID orders the results by the ocr_record_id field.
func ByOcrRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrRecordID, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByBuildingField orders the results by building field.
func ByBuildingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildingStep(), sql.OrderByField(field, opts...))
	}
}

// ByOcrField orders the results by ocr field.
func ByOcrField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOcrStep(), sql.OrderByField(field, opts...))
	}
}
func newBuildingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
	)
}
func newOcrStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OcrInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, OcrTable, OcrColumn),
	)
}
