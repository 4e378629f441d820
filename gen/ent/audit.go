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
)

// Audit is the model entity for the Audit schema.
type Audit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Findings holds the value of the "findings" field.
	Findings json.RawMessage `json:"findings,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations json.RawMessage `json:"recommendations,omitempty"`
	// KeyMetrics holds the value of the "key_metrics" field.
	KeyMetrics json.RawMessage `json:"key_metrics,omitempty"`
	// ExecutiveSummary holds the value of the "executive_summary" field.
	ExecutiveSummary json.RawMessage `json:"executive_summary,omitempty"`
	// AiRaw holds the value of the "ai_raw" field.
	AiRaw json.RawMessage `json:"ai_raw,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditQuery when eager-loading is set.
	Edges        AuditEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditEdges holds the relations/edges for other nodes in the graph.
type AuditEdges struct {
	// Building holds the value of the building edge.
	Building *Building `json:"building,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*DetailedReport `json:"reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BuildingOrErr returns the Building value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) BuildingOrErr() (*Building, error) {
	if e.Building != nil {
		return e.Building, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: building.Label}
	}
	return nil, &NotLoadedError{edge: "building"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) ReportsOrErr() ([]*DetailedReport, error) {
	if e.loadedTypes[1] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Audit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audit.FieldFindings, audit.FieldRecommendations, audit.FieldKeyMetrics, audit.FieldExecutiveSummary, audit.FieldAiRaw:
			values[i] = new([]byte)
		case audit.FieldType, audit.FieldStatus:
			values[i] = new(sql.NullString)
		case audit.FieldCreatedAt, audit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case audit.FieldID, audit.FieldBuildingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Audit fields.
func (a *Audit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				a.ID = *value
			}
		case audit.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				a.BuildingID = *value
			}
		case audit.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				a.Type = value.String
			}
		case audit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				a.Status = value.String
			}
		case audit.FieldFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.Findings); err != nil {
					return fmt.Errorf("unmarshal field findings: %w", err)
				}
			}
		case audit.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case audit.FieldKeyMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.KeyMetrics); err != nil {
					return fmt.Errorf("unmarshal field key_metrics: %w", err)
				}
			}
		case audit.FieldExecutiveSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field executive_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.ExecutiveSummary); err != nil {
					return fmt.Errorf("unmarshal field executive_summary: %w", err)
				}
			}
		case audit.FieldAiRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.AiRaw); err != nil {
					return fmt.Errorf("unmarshal field ai_raw: %w", err)
				}
			}
		case audit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case audit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Audit.
// This includes values selected through modifiers, order, etc.
func (a *Audit) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryBuilding queries the "building" edge of the Audit entity.
func (a *Audit) QueryBuilding() *BuildingQuery {
	return NewAuditClient(a.config).QueryBuilding(a)
}

// QueryReports queries the "reports" edge of the Audit entity.
func (a *Audit) QueryReports() *DetailedReportQuery {
	return NewAuditClient(a.config).QueryReports(a)
}

// Update returns a builder for updating this Audit.
// Note that you need to call Audit.Unwrap() before calling this method if this Audit
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Audit) Update() *AuditUpdateOne {
	return NewAuditClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Audit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Audit) Unwrap() *Audit {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Audit is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Audit) String() string {
	var builder strings.Builder
	builder.WriteString("Audit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", a.BuildingID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(a.Type)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(a.Status)
	builder.WriteString(", ")
	builder.WriteString("findings=")
	builder.WriteString(fmt.Sprintf("%v", a.Findings))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", a.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("key_metrics=")
	builder.WriteString(fmt.Sprintf("%v", a.KeyMetrics))
	builder.WriteString(", ")
	builder.WriteString("executive_summary=")
	builder.WriteString(fmt.Sprintf("%v", a.ExecutiveSummary))
	builder.WriteString(", ")
	builder.WriteString("ai_raw=")
	builder.WriteString(fmt.Sprintf("%v", a.AiRaw))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Audits is a parsable slice of Audit.
type Audits []*Audit
