// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
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

// OCRRecord is the model entity for the OCRRecord schema.
type OCRRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// ProcessedText holds the value of the "processed_text" field.
	ProcessedText json.RawMessage `json:"processed_text,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata json.RawMessage `json:"metadata,omitempty"`
	// IsFloorPlan holds the value of the "is_floor_plan" field.
	IsFloorPlan bool `json:"is_floor_plan,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OCRRecordQuery when eager-loading is set.
	Edges          OCRRecordEdges `json:"edges"`
	audit_file_ocr *uuid.UUID
	selectValues   sql.SelectValues
}

// OCRRecordEdges holds the relations/edges for other nodes in the graph.
type OCRRecordEdges struct {
	// Building holds the value of the building edge.
	Building *Building `json:"building,omitempty"`
	// File holds the value of the file edge.
	File *AuditFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BuildingOrErr returns the Building value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OCRRecordEdges) BuildingOrErr() (*Building, error) {
	if e.Building != nil {
		return e.Building, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: building.Label}
	}
	return nil, &NotLoadedError{edge: "building"}
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OCRRecordEdges) FileOrErr() (*AuditFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: auditfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OCRRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrrecord.FieldProcessedText, ocrrecord.FieldMetadata:
			values[i] = new([]byte)
		case ocrrecord.FieldIsFloorPlan:
			values[i] = new(sql.NullBool)
		case ocrrecord.FieldRawText:
			values[i] = new(sql.NullString)
		case ocrrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case ocrrecord.FieldID, ocrrecord.FieldBuildingID:
			values[i] = new(uuid.UUID)
		case ocrrecord.ForeignKeys[0]: // audit_file_ocr
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OCRRecord fields.
func (or *OCRRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				or.ID = *value
			}
		case ocrrecord.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				or.BuildingID = *value
			}
		case ocrrecord.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				or.RawText = value.String
			}
		case ocrrecord.FieldProcessedText:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processed_text", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &or.ProcessedText); err != nil {
					return fmt.Errorf("unmarshal field processed_text: %w", err)
				}
			}
		case ocrrecord.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &or.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case ocrrecord.FieldIsFloorPlan:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_floor_plan", values[i])
			} else if value.Valid {
				or.IsFloorPlan = value.Bool
			}
		case ocrrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				or.CreatedAt = value.Time
			}
		case ocrrecord.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field audit_file_ocr", values[i])
			} else if value.Valid {
				or.audit_file_ocr = new(uuid.UUID)
				*or.audit_file_ocr = *value.S.(*uuid.UUID)
			}
		default:
			or.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OCRRecord.
// This includes values selected through modifiers, order, etc.
func (or *OCRRecord) Value(name string) (ent.Value, error) {
	return or.selectValues.Get(name)
}

// QueryBuilding queries the "building" edge of the OCRRecord entity.
func (or *OCRRecord) QueryBuilding() *BuildingQuery {
	return NewOCRRecordClient(or.config).QueryBuilding(or)
}

// QueryFile queries the "file" edge of the OCRRecord entity.
func (or *OCRRecord) QueryFile() *AuditFileQuery {
	return NewOCRRecordClient(or.config).QueryFile(or)
}

// Update returns a builder for updating this OCRRecord.
// Note that you need to call OCRRecord.Unwrap() before calling this method if this OCRRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (or *OCRRecord) Update() *OCRRecordUpdateOne {
	return NewOCRRecordClient(or.config).UpdateOne(or)
}

// Unwrap unwraps the OCRRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (or *OCRRecord) Unwrap() *OCRRecord {
	_tx, ok := or.config.driver.(*txDriver)
	if !ok {
		panic("ent: OCRRecord is not a transactional entity")
	}
	or.config.driver = _tx.drv
	return or
}

// String implements the fmt.Stringer.
func (or *OCRRecord) String() string {
	var builder strings.Builder
	builder.WriteString("OCRRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", or.ID))
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", or.BuildingID))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(or.RawText)
	builder.WriteString(", ")
	builder.WriteString("processed_text=")
	builder.WriteString(fmt.Sprintf("%v", or.ProcessedText))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", or.Metadata))
	builder.WriteString(", ")
	builder.WriteString("is_floor_plan=")
	builder.WriteString(fmt.Sprintf("%v", or.IsFloorPlan))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(or.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OCRRecords is a parsable slice of OCRRecord.
type OCRRecords []*OCRRecord
