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
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
)

// DetailedReport is the model entity for the DetailedReport schema.
type DetailedReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID uuid.UUID `json:"audit_id,omitempty"`
	// Content holds the value of the "content" field.
	Content json.RawMessage `json:"content,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DetailedReportQuery when eager-loading is set.
	Edges        DetailedReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DetailedReportEdges holds the relations/edges for other nodes in the graph.
type DetailedReportEdges struct {
	// Building holds the value of the building edge.
	Building *Building `json:"building,omitempty"`
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BuildingOrErr returns the Building value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DetailedReportEdges) BuildingOrErr() (*Building, error) {
	if e.Building != nil {
		return e.Building, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: building.Label}
	}
	return nil, &NotLoadedError{edge: "building"}
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DetailedReportEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DetailedReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case detailedreport.FieldContent:
			values[i] = new([]byte)
		case detailedreport.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		case detailedreport.FieldID, detailedreport.FieldBuildingID, detailedreport.FieldAuditID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DetailedReport fields.
func (dr *DetailedReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case detailedreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				dr.ID = *value
			}
		case detailedreport.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				dr.BuildingID = *value
			}
		case detailedreport.FieldAuditID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value != nil {
				dr.AuditID = *value
			}
		case detailedreport.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &dr.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case detailedreport.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				dr.GeneratedAt = value.Time
			}
		default:
			dr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DetailedReport.
// This includes values selected through modifiers, order, etc.
func (dr *DetailedReport) Value(name string) (ent.Value, error) {
	return dr.selectValues.Get(name)
}

// QueryBuilding queries the "building" edge of the DetailedReport entity.
func (dr *DetailedReport) QueryBuilding() *BuildingQuery {
	return NewDetailedReportClient(dr.config).QueryBuilding(dr)
}

// QueryAudit queries the "audit" edge of the DetailedReport entity.
func (dr *DetailedReport) QueryAudit() *AuditQuery {
	return NewDetailedReportClient(dr.config).QueryAudit(dr)
}

// Update returns a builder for updating this DetailedReport.
// Note that you need to call DetailedReport.Unwrap() before calling this method if this DetailedReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (dr *DetailedReport) Update() *DetailedReportUpdateOne {
	return NewDetailedReportClient(dr.config).UpdateOne(dr)
}

// Unwrap unwraps the DetailedReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dr *DetailedReport) Unwrap() *DetailedReport {
	_tx, ok := dr.config.driver.(*txDriver)
	if !ok {
		panic("ent: DetailedReport is not a transactional entity")
	}
	dr.config.driver = _tx.drv
	return dr
}

// String implements the fmt.Stringer.
func (dr *DetailedReport) String() string {
	var builder strings.Builder
	builder.WriteString("DetailedReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dr.ID))
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", dr.BuildingID))
	builder.WriteString(", ")
	builder.WriteString("audit_id=")
	builder.WriteString(fmt.Sprintf("%v", dr.AuditID))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", dr.Content))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(dr.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DetailedReports is a parsable slice of DetailedReport.
type DetailedReports []*DetailedReport
