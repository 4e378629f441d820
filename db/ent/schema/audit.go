package schema

import (
	"encoding/json"
	"errors"
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

var errInvalidAuditType = errors.New("invalid audit type")

type Audit struct{ ent.Schema }

func (Audit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audits"},
	}
}

func (Audit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("building_id", uuid.UUID{}),
		field.String("type").NotEmpty().
			Validate(func(s string) error {
				if s == string(constants.AuditInitial) || s == string(constants.AuditDetailed) {
					return nil
				}
				return errInvalidAuditType
			}),
		field.String("status").
			Default(string(constants.AuditStatusPending)),
		field.JSON("findings", json.RawMessage{}).Optional(),
		field.JSON("recommendations", json.RawMessage{}).Optional(),
		field.JSON("key_metrics", json.RawMessage{}).Optional(),
		field.JSON("executive_summary", json.RawMessage{}).Optional(),
		// unmodified AI payload kept for forensic replay
		field.JSON("ai_raw", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Audit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("building", Building.Type).
			Ref("audits").
			Field("building_id").
			Required().
			Unique(),
		edge.To("reports", DetailedReport.Type),
	}
}

func (Audit) Indexes() []ent.Index {
	return []ent.Index{
		// at most one live audit per (building, type); upserts target this
		index.Fields("building_id", "type").Unique(),
	}
}
