package schema

import (
	"encoding/json"
	"errors"
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

var errInvalidBuildingType = errors.New("invalid building type")

type Room struct{ ent.Schema }

func (Room) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rooms"},
	}
}

func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("building_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// retained rooms always have area > 0; zero-area extractions are
		// dropped before insert
		field.Float("area").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("lighting_type").Optional().Nillable(),
		field.Int("num_fixtures").Optional().Nillable(),
		field.String("ac_type").Optional().Nillable(),
		field.Float("ac_size").Optional().Nillable(),
		field.Int("windows").Optional().Nillable(),
		// dimensions, extracted_from_ocr, is_default, ocr_record_id
		field.JSON("room_data", json.RawMessage{}).Optional(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Room) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("building", Building.Type).
			Ref("rooms").
			Field("building_id").
			Required().
			Unique(),
		edge.To("equipment", Equipment.Type),
	}
}

func (Room) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id", "created_at"),
	}
}
