package schema

import (
	"encoding/json"
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

type OCRRecord struct{ ent.Schema }

func (OCRRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_records"},
	}
}

func (OCRRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("building_id", uuid.UUID{}),
		field.Text("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// structured extraction: {"type":"floor_plan","rooms":[...]} for plans
		field.JSON("processed_text", json.RawMessage{}).Optional(),
		// file name/type/size, processed_at, is_floor_plan
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.Bool("is_floor_plan").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (OCRRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("building", Building.Type).
			Ref("ocr_records").
			Field("building_id").
			Required().
			Unique(),
		edge.From("file", AuditFile.Type).
			Ref("ocr").
			Unique(),
	}
}

func (OCRRecord) Indexes() []ent.Index {
	return []ent.Index{
		// every lookup is scoped to the owning building; floor-plan fetches
		// additionally filter on is_floor_plan
		index.Fields("building_id", "is_floor_plan", "created_at"),
	}
}
