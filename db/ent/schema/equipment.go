package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Equipment struct{ ent.Schema }

func (Equipment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "equipment"},
	}
}

func (Equipment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("building_id", uuid.UUID{}),
		field.UUID("room_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("sub_type").Optional(),
		// free-text room reference captured in the wizard; room linkage is by
		// name, not ID
		field.String("location").Optional(),
		field.Float("rated_power").Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.Float("efficiency").Optional(),
		field.Float("operating_hours").Optional(),
		field.Float("operating_days").Optional(),
		field.String("load_factor").Optional(),
		field.String("condition").Optional(),
		field.Int("age").Optional(),
		field.String("control_system").Optional(),
		field.Bool("energy_metered").Default(false),
		field.Bool("iot_connected").Default(false),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Equipment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("building", Building.Type).
			Ref("equipment").
			Field("building_id").
			Required().
			Unique(),
		edge.From("room", Room.Type).
			Ref("equipment").
			Field("room_id").
			Unique(),
	}
}

func (Equipment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id"),
		index.Fields("building_id", "category"),
	}
}
