// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hrunx/es2square/gen/ent/building"
)

// Building is the model entity for the Building schema.
type Building struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Area holds the value of the "area" field.
	Area float64 `json:"area,omitempty"`
	// ConstructionYear holds the value of the "construction_year" field.
	ConstructionYear *int `json:"construction_year,omitempty"`
	// RoomsDeclared holds the value of the "rooms_declared" field.
	RoomsDeclared *int `json:"rooms_declared,omitempty"`
	// Residents holds the value of the "residents" field.
	Residents *int `json:"residents,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuildingQuery when eager-loading is set.
	Edges        BuildingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuildingEdges holds the relations/edges for other nodes in the graph.
type BuildingEdges struct {
	// Rooms holds the value of the rooms edge.
	Rooms []*Room `json:"rooms,omitempty"`
	// Equipment holds the value of the equipment edge.
	Equipment []*Equipment `json:"equipment,omitempty"`
	// Files holds the value of the files edge.
	Files []*AuditFile `json:"files,omitempty"`
	// OcrRecords holds the value of the ocr_records edge.
	OcrRecords []*OCRRecord `json:"ocr_records,omitempty"`
	// Audits holds the value of the audits edge.
	Audits []*Audit `json:"audits,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*DetailedReport `json:"reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// RoomsOrErr returns the Rooms value or an error if the edge
// was not loaded in eager-loading.
func (e BuildingEdges) RoomsOrErr() ([]*Room, error) {
	if e.loadedTypes[0] {
		return e.Rooms, nil
	}
	return nil, &NotLoadedError{edge: "rooms"}
}

// EquipmentOrErr returns the Equipment value or an error if the edge
// was not loaded in eager-loading.
func (e BuildingEdges) EquipmentOrErr() ([]*Equipment, error) {
	if e.loadedTypes[1] {
		return e.Equipment, nil
	}
	return nil, &NotLoadedError{edge: "equipment"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e BuildingEdges) FilesOrErr() ([]*AuditFile, error) {
	if e.loadedTypes[2] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// OcrRecordsOrErr returns the OcrRecords value or an error if the edge
// was not loaded in eager-loading.
func (e BuildingEdges) OcrRecordsOrErr() ([]*OCRRecord, error) {
	if e.loadedTypes[3] {
		return e.OcrRecords, nil
	}
	return nil, &NotLoadedError{edge: "ocr_records"}
}

// AuditsOrErr returns the Audits value or an error if the edge
// was not loaded in eager-loading.
func (e BuildingEdges) AuditsOrErr() ([]*Audit, error) {
	if e.loadedTypes[4] {
		return e.Audits, nil
	}
	return nil, &NotLoadedError{edge: "audits"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e BuildingEdges) ReportsOrErr() ([]*DetailedReport, error) {
	if e.loadedTypes[5] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Building) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case building.FieldArea:
			values[i] = new(sql.NullFloat64)
		case building.FieldConstructionYear, building.FieldRoomsDeclared, building.FieldResidents:
			values[i] = new(sql.NullInt64)
		case building.FieldName, building.FieldAddress, building.FieldType:
			values[i] = new(sql.NullString)
		case building.FieldCreatedAt, building.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case building.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Building fields.
func (b *Building) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case building.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				b.ID = *value
			}
		case building.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				b.Name = value.String
			}
		case building.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				b.Address = value.String
			}
		case building.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				b.Type = value.String
			}
		case building.FieldArea:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				b.Area = value.Float64
			}
		case building.FieldConstructionYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field construction_year", values[i])
			} else if value.Valid {
				b.ConstructionYear = new(int)
				*b.ConstructionYear = int(value.Int64)
			}
		case building.FieldRoomsDeclared:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rooms_declared", values[i])
			} else if value.Valid {
				b.RoomsDeclared = new(int)
				*b.RoomsDeclared = int(value.Int64)
			}
		case building.FieldResidents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field residents", values[i])
			} else if value.Valid {
				b.Residents = new(int)
				*b.Residents = int(value.Int64)
			}
		case building.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				b.CreatedAt = value.Time
			}
		case building.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				b.UpdatedAt = value.Time
			}
		default:
			b.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Building.
// This includes values selected through modifiers, order, etc.
func (b *Building) Value(name string) (ent.Value, error) {
	return b.selectValues.Get(name)
}

// QueryRooms queries the "rooms" edge of the Building entity.
func (b *Building) QueryRooms() *RoomQuery {
	return NewBuildingClient(b.config).QueryRooms(b)
}

// QueryEquipment queries the "equipment" edge of the Building entity.
func (b *Building) QueryEquipment() *EquipmentQuery {
	return NewBuildingClient(b.config).QueryEquipment(b)
}

// QueryFiles queries the "files" edge of the Building entity.
func (b *Building) QueryFiles() *AuditFileQuery {
	return NewBuildingClient(b.config).QueryFiles(b)
}

// QueryOcrRecords queries the "ocr_records" edge of the Building entity.
func (b *Building) QueryOcrRecords() *OCRRecordQuery {
	return NewBuildingClient(b.config).QueryOcrRecords(b)
}

// QueryAudits queries the "audits" edge of the Building entity.
func (b *Building) QueryAudits() *AuditQuery {
	return NewBuildingClient(b.config).QueryAudits(b)
}

// QueryReports queries the "reports" edge of the Building entity.
func (b *Building) QueryReports() *DetailedReportQuery {
	return NewBuildingClient(b.config).QueryReports(b)
}

// Update returns a builder for updating this Building.
// Note that you need to call Building.Unwrap() before calling this method if this Building
// was returned from a transaction, and the transaction was committed or rolled back.
func (b *Building) Update() *BuildingUpdateOne {
	return NewBuildingClient(b.config).UpdateOne(b)
}

// Unwrap unwraps the Building entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (b *Building) Unwrap() *Building {
	_tx, ok := b.config.driver.(*txDriver)
	if !ok {
		panic("ent: Building is not a transactional entity")
	}
	b.config.driver = _tx.drv
	return b
}

// String implements the fmt.Stringer.
func (b *Building) String() string {
	var builder strings.Builder
	builder.WriteString("Building(")
	builder.WriteString(fmt.Sprintf("id=%v, ", b.ID))
	builder.WriteString("name=")
	builder.WriteString(b.Name)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(b.Address)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(b.Type)
	builder.WriteString(", ")
	builder.WriteString("area=")
	builder.WriteString(fmt.Sprintf("%v", b.Area))
	builder.WriteString(", ")
	if v := b.ConstructionYear; v != nil {
		builder.WriteString("construction_year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := b.RoomsDeclared; v != nil {
		builder.WriteString("rooms_declared=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := b.Residents; v != nil {
		builder.WriteString("residents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(b.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(b.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Buildings is a parsable slice of Building.
type Buildings []*Building
