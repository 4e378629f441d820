// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
)

// AuditFile is the model entity for the AuditFile schema.
type AuditFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// FileURL holds the value of the "file_url" field.
	FileURL string `json:"file_url,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// OcrRecordID holds the value of the "ocr_record_id" field.
	OcrRecordID *uuid.UUID `json:"ocr_record_id,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditFileQuery when eager-loading is set.
	Edges        AuditFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditFileEdges holds the relations/edges for other nodes in the graph.
type AuditFileEdges struct {
	// Building holds the value of the building edge.
	Building *Building `json:"building,omitempty"`
	// Ocr holds the value of the ocr edge.
	Ocr *OCRRecord `json:"ocr,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BuildingOrErr returns the Building value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditFileEdges) BuildingOrErr() (*Building, error) {
	if e.Building != nil {
		return e.Building, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: building.Label}
	}
	return nil, &NotLoadedError{edge: "building"}
}

// OcrOrErr returns the Ocr value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditFileEdges) OcrOrErr() (*OCRRecord, error) {
	if e.Ocr != nil {
		return e.Ocr, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: ocrrecord.Label}
	}
	return nil, &NotLoadedError{edge: "ocr"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditfile.FieldOcrRecordID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case auditfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case auditfile.FieldFileURL, auditfile.FieldFileName, auditfile.FieldFileType, auditfile.FieldProcessingStatus:
			values[i] = new(sql.NullString)
		case auditfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case auditfile.FieldID, auditfile.FieldBuildingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditFile fields.
func (af *AuditFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				af.ID = *value
			}
		case auditfile.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				af.BuildingID = *value
			}
		case auditfile.FieldFileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_url", values[i])
			} else if value.Valid {
				af.FileURL = value.String
			}
		case auditfile.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				af.FileName = value.String
			}
		case auditfile.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				af.FileType = value.String
			}
		case auditfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				af.FileSize = int(value.Int64)
			}
		case auditfile.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				af.ProcessingStatus = value.String
			}
		case auditfile.FieldOcrRecordID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_record_id", values[i])
			} else if value.Valid {
				af.OcrRecordID = new(uuid.UUID)
				*af.OcrRecordID = *value.S.(*uuid.UUID)
			}
		case auditfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				af.UploadedAt = value.Time
			}
		default:
			af.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditFile.
// This includes values selected through modifiers, order, etc.
func (af *AuditFile) Value(name string) (ent.Value, error) {
	return af.selectValues.Get(name)
}

// QueryBuilding queries the "building" edge of the AuditFile entity.
func (af *AuditFile) QueryBuilding() *BuildingQuery {
	return NewAuditFileClient(af.config).QueryBuilding(af)
}

// QueryOcr queries the "ocr" edge of the AuditFile entity.
func (af *AuditFile) QueryOcr() *OCRRecordQuery {
	return NewAuditFileClient(af.config).QueryOcr(af)
}

// Update returns a builder for updating this AuditFile.
// Note that you need to call AuditFile.Unwrap() before calling this method if this AuditFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (af *AuditFile) Update() *AuditFileUpdateOne {
	return NewAuditFileClient(af.config).UpdateOne(af)
}

// Unwrap unwraps the AuditFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (af *AuditFile) Unwrap() *AuditFile {
	_tx, ok := af.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditFile is not a transactional entity")
	}
	af.config.driver = _tx.drv
	return af
}

// String implements the fmt.Stringer.
func (af *AuditFile) String() string {
	var builder strings.Builder
	builder.WriteString("AuditFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", af.ID))
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", af.BuildingID))
	builder.WriteString(", ")
	builder.WriteString("file_url=")
	builder.WriteString(af.FileURL)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(af.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(af.FileType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", af.FileSize))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(af.ProcessingStatus)
	builder.WriteString(", ")
	if v := af.OcrRecordID; v != nil {
		builder.WriteString("ocr_record_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(af.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditFiles is a parsable slice of AuditFile.
type AuditFiles []*AuditFile
