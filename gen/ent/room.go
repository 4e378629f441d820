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
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/gen/ent/room"
)

// Room is the model entity for the Room schema.
type Room struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Area holds the value of the "area" field.
	Area float64 `json:"area,omitempty"`
	// LightingType holds the value of the "lighting_type" field.
	LightingType *string `json:"lighting_type,omitempty"`
	// NumFixtures holds the value of the "num_fixtures" field.
	NumFixtures *int `json:"num_fixtures,omitempty"`
	// AcType holds the value of the "ac_type" field.
	AcType *string `json:"ac_type,omitempty"`
	// AcSize holds the value of the "ac_size" field.
	AcSize *float64 `json:"ac_size,omitempty"`
	// Windows holds the value of the "windows" field.
	Windows *int `json:"windows,omitempty"`
	// RoomData holds the value of the "room_data" field.
	RoomData json.RawMessage `json:"room_data,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoomQuery when eager-loading is set.
	Edges        RoomEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoomEdges holds the relations/edges for other nodes in the graph.
type RoomEdges struct {
	// Building holds the value of the building edge.
	Building *Building `json:"building,omitempty"`
	// Equipment holds the value of the equipment edge.
	Equipment []*Equipment `json:"equipment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BuildingOrErr returns the Building value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoomEdges) BuildingOrErr() (*Building, error) {
	if e.Building != nil {
		return e.Building, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: building.Label}
	}
	return nil, &NotLoadedError{edge: "building"}
}

// EquipmentOrErr returns the Equipment value or an error if the edge
// was not loaded in eager-loading.
func (e RoomEdges) EquipmentOrErr() ([]*Equipment, error) {
	if e.loadedTypes[1] {
		return e.Equipment, nil
	}
	return nil, &NotLoadedError{edge: "equipment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Room) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case room.FieldRoomData:
			values[i] = new([]byte)
		case room.FieldArea, room.FieldAcSize:
			values[i] = new(sql.NullFloat64)
		case room.FieldNumFixtures, room.FieldWindows:
			values[i] = new(sql.NullInt64)
		case room.FieldName, room.FieldLightingType, room.FieldAcType, room.FieldNotes:
			values[i] = new(sql.NullString)
		case room.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case room.FieldID, room.FieldBuildingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Room fields.
func (r *Room) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case room.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				r.ID = *value
			}
		case room.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				r.BuildingID = *value
			}
		case room.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				r.Name = value.String
			}
		case room.FieldArea:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				r.Area = value.Float64
			}
		case room.FieldLightingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lighting_type", values[i])
			} else if value.Valid {
				r.LightingType = new(string)
				*r.LightingType = value.String
			}
		case room.FieldNumFixtures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_fixtures", values[i])
			} else if value.Valid {
				r.NumFixtures = new(int)
				*r.NumFixtures = int(value.Int64)
			}
		case room.FieldAcType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ac_type", values[i])
			} else if value.Valid {
				r.AcType = new(string)
				*r.AcType = value.String
			}
		case room.FieldAcSize:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ac_size", values[i])
			} else if value.Valid {
				r.AcSize = new(float64)
				*r.AcSize = value.Float64
			}
		case room.FieldWindows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field windows", values[i])
			} else if value.Valid {
				r.Windows = new(int)
				*r.Windows = int(value.Int64)
			}
		case room.FieldRoomData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field room_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &r.RoomData); err != nil {
					return fmt.Errorf("unmarshal field room_data: %w", err)
				}
			}
		case room.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				r.Notes = new(string)
				*r.Notes = value.String
			}
		case room.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				r.CreatedAt = value.Time
			}
		default:
			r.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Room.
// This includes values selected through modifiers, order, etc.
func (r *Room) Value(name string) (ent.Value, error) {
	return r.selectValues.Get(name)
}

// QueryBuilding queries the "building" edge of the Room entity.
func (r *Room) QueryBuilding() *BuildingQuery {
	return NewRoomClient(r.config).QueryBuilding(r)
}

// QueryEquipment queries the "equipment" edge of the Room entity.
func (r *Room) QueryEquipment() *EquipmentQuery {
	return NewRoomClient(r.config).QueryEquipment(r)
}

// Update returns a builder for updating this Room.
// Note that you need to call Room.Unwrap() before calling this method if this Room
// was returned from a transaction, and the transaction was committed or rolled back.
func (r *Room) Update() *RoomUpdateOne {
	return NewRoomClient(r.config).UpdateOne(r)
}

// Unwrap unwraps the Room entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (r *Room) Unwrap() *Room {
	_tx, ok := r.config.driver.(*txDriver)
	if !ok {
		panic("ent: Room is not a transactional entity")
	}
	r.config.driver = _tx.drv
	return r
}

// String implements the fmt.Stringer.
func (r *Room) String() string {
	var builder strings.Builder
	builder.WriteString("Room(")
	builder.WriteString(fmt.Sprintf("id=%v, ", r.ID))
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", r.BuildingID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(r.Name)
	builder.WriteString(", ")
	builder.WriteString("area=")
	builder.WriteString(fmt.Sprintf("%v", r.Area))
	builder.WriteString(", ")
	if v := r.LightingType; v != nil {
		builder.WriteString("lighting_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := r.NumFixtures; v != nil {
		builder.WriteString("num_fixtures=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := r.AcType; v != nil {
		builder.WriteString("ac_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := r.AcSize; v != nil {
		builder.WriteString("ac_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := r.Windows; v != nil {
		builder.WriteString("windows=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("room_data=")
	builder.WriteString(fmt.Sprintf("%v", r.RoomData))
	builder.WriteString(", ")
	if v := r.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(r.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Rooms is a parsable slice of Room.
type Rooms []*Room
