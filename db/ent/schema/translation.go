package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Translation struct{ ent.Schema }

func (Translation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "translations"},
	}
}

func (Translation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("key").NotEmpty(),
		field.String("locale").NotEmpty().MinLen(2).MaxLen(8),
		field.String("value").NotEmpty(),
		// "ui" or "technical"
		field.String("kind").Default("ui"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Translation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key", "locale").Unique(),
		index.Fields("locale"),
	}
}
