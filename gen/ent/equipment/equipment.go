// Code generated by ent, DO NOT EDIT.

package equipment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the equipment type in the database.
	Label = "equipment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBuildingID holds the string denoting the building_id field in the database.
	FieldBuildingID = "building_id"
	// FieldRoomID holds the string denoting the room_id field in the database.
	FieldRoomID = "room_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubType holds the string denoting the sub_type field in the database.
	FieldSubType = "sub_type"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldRatedPower holds the string denoting the rated_power field in the database.
	FieldRatedPower = "rated_power"
	// FieldEfficiency holds the string denoting the efficiency field in the database.
	FieldEfficiency = "efficiency"
	// FieldOperatingHours holds the string denoting the operating_hours field in the database.
	FieldOperatingHours = "operating_hours"
	// FieldOperatingDays holds the string denoting the operating_days field in the database.
	FieldOperatingDays = "operating_days"
	// FieldLoadFactor holds the string denoting the load_factor field in the database.
	FieldLoadFactor = "load_factor"
	// FieldCondition holds the string denoting the condition field in the database.
	FieldCondition = "condition"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldControlSystem holds the string denoting the control_system field in the database.
	FieldControlSystem = "control_system"
	// FieldEnergyMetered holds the string denoting the energy_metered field in the database.
	FieldEnergyMetered = "energy_metered"
	// FieldIotConnected holds the string denoting the iot_connected field in the database.
	FieldIotConnected = "iot_connected"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBuilding holds the string denoting the building edge name in mutations.
	EdgeBuilding = "building"
	// EdgeRoom holds the string denoting the room edge name in mutations.
	EdgeRoom = "room"
	// Table holds the table name of the equipment in the database.
	Table = "equipment"
	// BuildingTable is the table that holds the building relation/edge.
	BuildingTable = "equipment"
	// BuildingInverseTable is the table name for the Building entity.
	// It exists in this package in order to avoid circular dependency with the "building" package.
	BuildingInverseTable = "buildings"
	// BuildingColumn is the table column denoting the building relation/edge.
	BuildingColumn = "building_id"
	// RoomTable is the table that holds the room relation/edge.
	RoomTable = "equipment"
	// RoomInverseTable is the table name for the Room entity.
	// It exists in this package in order to avoid circular dependency with the "room" package.
	RoomInverseTable = "rooms"
	// RoomColumn is the table column denoting the room relation/edge.
	RoomColumn = "room_id"
)

// Columns holds all SQL columns for equipment fields.
var Columns = []string{
	FieldID,
	FieldBuildingID,
	FieldRoomID,
	FieldName,
	FieldCategory,
	FieldSubType,
	FieldLocation,
	FieldRatedPower,
	FieldEfficiency,
	FieldOperatingHours,
	FieldOperatingDays,
	FieldLoadFactor,
	FieldCondition,
	FieldAge,
	FieldControlSystem,
	FieldEnergyMetered,
	FieldIotConnected,
	FieldNotes,
	FieldCreatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// RatedPowerValidator is a validator for the "rated_power" field. It is called by the builders before save.
	RatedPowerValidator func(float64) error
	// DefaultEnergyMetered holds the default value on creation for the "energy_metered" field.
	DefaultEnergyMetered bool
	// DefaultIotConnected holds the default value on creation for the "iot_connected" field.
	DefaultIotConnected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Equipment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuildingID orders the results by the building_id field.
func ByBuildingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingID, opts...).ToFunc()
}

// ByRoomID orders the results by the room_id field.
func ByRoomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoomID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubType orders the results by the sub_type field.
func BySubType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubType, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByRatedPower orders the results by the rated_power field.
func ByRatedPower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatedPower, opts...).ToFunc()
}

// ByEfficiency orders the results by the efficiency field.
func ByEfficiency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfficiency, opts...).ToFunc()
}

// ByOperatingHours orders the results by the operating_hours field.
func ByOperatingHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatingHours, opts...).ToFunc()
}

// ByOperatingDays orders the results by the operating_days field.
func ByOperatingDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatingDays, opts...).ToFunc()
}

// ByLoadFactor orders the results by the load_factor field.
func ByLoadFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadFactor, opts...).ToFunc()
}

// ByCondition orders the results by the condition field.
func ByCondition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCondition, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByControlSystem orders the results by the control_system field.
func ByControlSystem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldControlSystem, opts...).ToFunc()
}

// ByEnergyMetered orders the results by the energy_metered field.
func ByEnergyMetered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergyMetered, opts...).ToFunc()
}

// ByIotConnected orders the results by the iot_connected field.
func ByIotConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIotConnected, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
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

// ByRoomField orders the results by room field.
func ByRoomField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoomStep(), sql.OrderByField(field, opts...))
	}
}
func newBuildingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuildingTable, BuildingColumn),
	)
}
func newRoomStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoomInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
	)
}
