package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/hrunx/es2square/constants"
)

type Building struct{ ent.Schema }

func (Building) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "buildings"},
	}
}

func (Building) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("address").NotEmpty(),
		field.String("type").NotEmpty().
			Validate(func(s string) error {
				if constants.ValidBuildingType(s) {
					return nil
				}
				return errInvalidBuildingType
			}),
		field.Float("area").Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("construction_year").Optional().Nillable(),
		field.Int("rooms_declared").Optional().Nillable(),
		field.Int("residents").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Building) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE building -> MANY rooms/equipment/files/ocr/audits
		edge.To("rooms", Room.Type),
		edge.To("equipment", Equipment.Type),
		edge.To("files", AuditFile.Type),
		edge.To("ocr_records", OCRRecord.Type),
		edge.To("audits", Audit.Type),
		edge.To("reports", DetailedReport.Type),
	}
}
