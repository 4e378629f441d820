package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DetailedReport is the durable cache of generated level-II/III analyses.
type DetailedReport struct{ ent.Schema }

func (DetailedReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "detailed_reports"},
	}
}

func (DetailedReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("building_id", uuid.UUID{}),
		field.UUID("audit_id", uuid.UUID{}),
		field.JSON("content", json.RawMessage{}),
		field.Time("generated_at").Default(time.Now),
	}
}

func (DetailedReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("building", Building.Type).
			Ref("reports").
			Field("building_id").
			Required().
			Unique(),
		edge.From("audit", Audit.Type).
			Ref("reports").
			Field("audit_id").
			Required().
			Unique(),
	}
}

func (DetailedReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id", "generated_at"),
	}
}
