package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/hrunx/es2square/constants"
)

type AuditFile struct{ ent.Schema }

func (AuditFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_files"},
	}
}

func (AuditFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("building_id", uuid.UUID{}),
		field.String("file_url").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("file_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("processing_status").
			Default(string(constants.FileStatusPending)),
		field.UUID("ocr_record_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (AuditFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("building", Building.Type).
			Ref("files").
			Field("building_id").
			Required().
			Unique(),
		// ONE file -> ONE ocr record
		edge.To("ocr", OCRRecord.Type).Unique(),
	}
}

func (AuditFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id", "uploaded_at"),
		index.Fields("file_url"),
	}
}
