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
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/gen/ent/room"
)

// Equipment is the model entity for the Equipment schema.
type Equipment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BuildingID holds the value of the "building_id" field.
	BuildingID uuid.UUID `json:"building_id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID *uuid.UUID `json:"room_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// SubType holds the value of the "sub_type" field.
	SubType string `json:"sub_type,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// RatedPower holds the value of the "rated_power" field.
	RatedPower float64 `json:"rated_power,omitempty"`
	// Efficiency holds the value of the "efficiency" field.
	Efficiency float64 `json:"efficiency,omitempty"`
	// OperatingHours holds the value of the "operating_hours" field.
	OperatingHours float64 `json:"operating_hours,omitempty"`
	// OperatingDays holds the value of the "operating_days" field.
	OperatingDays float64 `json:"operating_days,omitempty"`
	// LoadFactor holds the value of the "load_factor" field.
	LoadFactor string `json:"load_factor,omitempty"`
	// Condition holds the value of the "condition" field.
	Condition string `json:"condition,omitempty"`
	// Age holds the value of the "age" field.
	Age int `json:"age,omitempty"`
	// ControlSystem holds the value of the "control_system" field.
	ControlSystem string `json:"control_system,omitempty"`
	// EnergyMetered holds the value of the "energy_metered" field.
	EnergyMetered bool `json:"energy_metered,omitempty"`
	// IotConnected holds the value of the "iot_connected" field.
	IotConnected bool `json:"iot_connected,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EquipmentQuery when eager-loading is set.
	Edges        EquipmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EquipmentEdges holds the relations/edges for other nodes in the graph.
type EquipmentEdges struct {
	// Building holds the value of the building edge.
	Building *Building `json:"building,omitempty"`
	// Room holds the value of the room edge.
	Room *Room `json:"room,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BuildingOrErr returns the Building value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EquipmentEdges) BuildingOrErr() (*Building, error) {
	if e.Building != nil {
		return e.Building, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: building.Label}
	}
	return nil, &NotLoadedError{edge: "building"}
}

// RoomOrErr returns the Room value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EquipmentEdges) RoomOrErr() (*Room, error) {
	if e.Room != nil {
		return e.Room, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: room.Label}
	}
	return nil, &NotLoadedError{edge: "room"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Equipment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case equipment.FieldRoomID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case equipment.FieldEnergyMetered, equipment.FieldIotConnected:
			values[i] = new(sql.NullBool)
		case equipment.FieldRatedPower, equipment.FieldEfficiency, equipment.FieldOperatingHours, equipment.FieldOperatingDays:
			values[i] = new(sql.NullFloat64)
		case equipment.FieldAge:
			values[i] = new(sql.NullInt64)
		case equipment.FieldName, equipment.FieldCategory, equipment.FieldSubType, equipment.FieldLocation, equipment.FieldLoadFactor, equipment.FieldCondition, equipment.FieldControlSystem, equipment.FieldNotes:
			values[i] = new(sql.NullString)
		case equipment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case equipment.FieldID, equipment.FieldBuildingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Equipment fields.
func (e *Equipment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case equipment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				e.ID = *value
			}
		case equipment.FieldBuildingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field building_id", values[i])
			} else if value != nil {
				e.BuildingID = *value
			}
		case equipment.FieldRoomID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				e.RoomID = new(uuid.UUID)
				*e.RoomID = *value.S.(*uuid.UUID)
			}
		case equipment.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				e.Name = value.String
			}
		case equipment.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				e.Category = value.String
			}
		case equipment.FieldSubType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_type", values[i])
			} else if value.Valid {
				e.SubType = value.String
			}
		case equipment.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				e.Location = value.String
			}
		case equipment.FieldRatedPower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rated_power", values[i])
			} else if value.Valid {
				e.RatedPower = value.Float64
			}
		case equipment.FieldEfficiency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field efficiency", values[i])
			} else if value.Valid {
				e.Efficiency = value.Float64
			}
		case equipment.FieldOperatingHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field operating_hours", values[i])
			} else if value.Valid {
				e.OperatingHours = value.Float64
			}
		case equipment.FieldOperatingDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field operating_days", values[i])
			} else if value.Valid {
				e.OperatingDays = value.Float64
			}
		case equipment.FieldLoadFactor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field load_factor", values[i])
			} else if value.Valid {
				e.LoadFactor = value.String
			}
		case equipment.FieldCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition", values[i])
			} else if value.Valid {
				e.Condition = value.String
			}
		case equipment.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				e.Age = int(value.Int64)
			}
		case equipment.FieldControlSystem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field control_system", values[i])
			} else if value.Valid {
				e.ControlSystem = value.String
			}
		case equipment.FieldEnergyMetered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field energy_metered", values[i])
			} else if value.Valid {
				e.EnergyMetered = value.Bool
			}
		case equipment.FieldIotConnected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field iot_connected", values[i])
			} else if value.Valid {
				e.IotConnected = value.Bool
			}
		case equipment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				e.Notes = new(string)
				*e.Notes = value.String
			}
		case equipment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				e.CreatedAt = value.Time
			}
		default:
			e.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Equipment.
// This includes values selected through modifiers, order, etc.
func (e *Equipment) Value(name string) (ent.Value, error) {
	return e.selectValues.Get(name)
}

// QueryBuilding queries the "building" edge of the Equipment entity.
func (e *Equipment) QueryBuilding() *BuildingQuery {
	return NewEquipmentClient(e.config).QueryBuilding(e)
}

// QueryRoom queries the "room" edge of the Equipment entity.
func (e *Equipment) QueryRoom() *RoomQuery {
	return NewEquipmentClient(e.config).QueryRoom(e)
}

// Update returns a builder for updating this Equipment.
// Note that you need to call Equipment.Unwrap() before calling this method if this Equipment
// was returned from a transaction, and the transaction was committed or rolled back.
func (e *Equipment) Update() *EquipmentUpdateOne {
	return NewEquipmentClient(e.config).UpdateOne(e)
}

// Unwrap unwraps the Equipment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (e *Equipment) Unwrap() *Equipment {
	_tx, ok := e.config.driver.(*txDriver)
	if !ok {
		panic("ent: Equipment is not a transactional entity")
	}
	e.config.driver = _tx.drv
	return e
}

// String implements the fmt.Stringer.
func (e *Equipment) String() string {
	var builder strings.Builder
	builder.WriteString("Equipment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", e.ID))
	builder.WriteString("building_id=")
	builder.WriteString(fmt.Sprintf("%v", e.BuildingID))
	builder.WriteString(", ")
	if v := e.RoomID; v != nil {
		builder.WriteString("room_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(e.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(e.Category)
	builder.WriteString(", ")
	builder.WriteString("sub_type=")
	builder.WriteString(e.SubType)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(e.Location)
	builder.WriteString(", ")
	builder.WriteString("rated_power=")
	builder.WriteString(fmt.Sprintf("%v", e.RatedPower))
	builder.WriteString(", ")
	builder.WriteString("efficiency=")
	builder.WriteString(fmt.Sprintf("%v", e.Efficiency))
	builder.WriteString(", ")
	builder.WriteString("operating_hours=")
	builder.WriteString(fmt.Sprintf("%v", e.OperatingHours))
	builder.WriteString(", ")
	builder.WriteString("operating_days=")
	builder.WriteString(fmt.Sprintf("%v", e.OperatingDays))
	builder.WriteString(", ")
	builder.WriteString("load_factor=")
	builder.WriteString(e.LoadFactor)
	builder.WriteString(", ")
	builder.WriteString("condition=")
	builder.WriteString(e.Condition)
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", e.Age))
	builder.WriteString(", ")
	builder.WriteString("control_system=")
	builder.WriteString(e.ControlSystem)
	builder.WriteString(", ")
	builder.WriteString("energy_metered=")
	builder.WriteString(fmt.Sprintf("%v", e.EnergyMetered))
	builder.WriteString(", ")
	builder.WriteString("iot_connected=")
	builder.WriteString(fmt.Sprintf("%v", e.IotConnected))
	builder.WriteString(", ")
	if v := e.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(e.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EquipmentSlice is a parsable slice of Equipment.
type EquipmentSlice []*Equipment
